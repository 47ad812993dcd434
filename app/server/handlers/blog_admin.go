package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"inkwell-blog/app/server/constants"
	"inkwell-blog/app/server/middlewares"
	"inkwell-blog/app/server/models"
)

type postForm struct {
	Title    string
	Subtitle string
	Body     string
	ImgURL   string
}

func bindPostForm(c echo.Context) (postForm, string) {
	form := postForm{
		Title:    strings.TrimSpace(c.FormValue("title")),
		Subtitle: strings.TrimSpace(c.FormValue("subtitle")),
		Body:     strings.TrimSpace(c.FormValue("body")),
		ImgURL:   strings.TrimSpace(c.FormValue("img_url")),
	}
	if form.Title == "" || form.Subtitle == "" || form.Body == "" || form.ImgURL == "" {
		return form, "All fields are required"
	}

	return form, ""
}

func (a *App) NewPostForm(c echo.Context) error {
	return a.render(c, http.StatusOK, "make-post", map[string]any{
		"Action": "/new-post",
		"Form":   postForm{},
	})
}

func (a *App) NewPostSubmit(c echo.Context) error {
	form, formError := bindPostForm(c)
	if formError != "" {
		return a.render(c, http.StatusBadRequest, "make-post", map[string]any{
			"Action": "/new-post",
			"Form":   form,
			"Error":  formError,
		})
	}

	user := middlewares.User(c)

	post := models.BlogPost{
		Title:    form.Title,
		Subtitle: form.Subtitle,
		Body:     form.Body,
		ImgURL:   form.ImgURL,
		Date:     time.Now().Format(constants.PostDateFormat),
		AuthorID: user.ID,
	}
	if err := a.db.WithContext(c.Request().Context()).Create(&post).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return a.render(c, http.StatusConflict, "make-post", map[string]any{
				"Action": "/new-post",
				"Form":   form,
				"Error":  "A post with that title already exists",
			})
		}
		a.l.Error("failed to create post", zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	return c.Redirect(http.StatusSeeOther, "/")
}

func (a *App) EditPostForm(c echo.Context) error {
	post, statusCode, err := a.loadPost(c)
	if err != nil {
		if statusCode == http.StatusInternalServerError {
			a.l.Error("failed to load post", zap.Error(err))
		}
		return a.er(c, statusCode)
	}

	return a.render(c, http.StatusOK, "make-post", map[string]any{
		"IsEdit": true,
		"Action": fmt.Sprintf("/edit-post/%d", post.ID),
		"Form": postForm{
			Title:    post.Title,
			Subtitle: post.Subtitle,
			Body:     post.Body,
			ImgURL:   post.ImgURL,
		},
	})
}

func (a *App) EditPostSubmit(c echo.Context) error {
	post, statusCode, err := a.loadPost(c)
	if err != nil {
		if statusCode == http.StatusInternalServerError {
			a.l.Error("failed to load post", zap.Error(err))
		}
		return a.er(c, statusCode)
	}

	form, formError := bindPostForm(c)
	if formError != "" {
		return a.render(c, http.StatusBadRequest, "make-post", map[string]any{
			"IsEdit": true,
			"Action": fmt.Sprintf("/edit-post/%d", post.ID),
			"Form":   form,
			"Error":  formError,
		})
	}

	user := middlewares.User(c)

	// The editor becomes the author; the creation date never changes.
	if err := a.db.WithContext(c.Request().Context()).
		Model(&models.BlogPost{}).
		Where("id = ?", post.ID).
		Updates(map[string]any{
			"title":     form.Title,
			"subtitle":  form.Subtitle,
			"body":      form.Body,
			"img_url":   form.ImgURL,
			"author_id": user.ID,
		}).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return a.render(c, http.StatusConflict, "make-post", map[string]any{
				"IsEdit": true,
				"Action": fmt.Sprintf("/edit-post/%d", post.ID),
				"Form":   form,
				"Error":  "A post with that title already exists",
			})
		}
		a.l.Error("failed to update post", zap.Uint("id", post.ID), zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	return c.Redirect(http.StatusSeeOther, fmt.Sprintf("/post/%d", post.ID))
}

func (a *App) DeletePost(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return a.er(c, http.StatusBadRequest)
	}

	rctx := c.Request().Context()

	var post models.BlogPost
	if err := a.db.WithContext(rctx).First(&post, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return a.er(c, http.StatusNotFound)
		}
		a.l.Error("failed to load post", zap.Uint("id", id), zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	// Comments go with their post. Deletes are unscoped: a soft-deleted row
	// would keep holding the unique title against future posts.
	if err := a.db.WithContext(rctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Where("post_id = ?", post.ID).Delete(&models.Comment{}).Error; err != nil {
			return fmt.Errorf("delete comments: %w", err)
		}
		if err := tx.Unscoped().Delete(&models.BlogPost{}, post.ID).Error; err != nil {
			return fmt.Errorf("delete post: %w", err)
		}
		return nil
	}); err != nil {
		a.l.Error("failed to delete post", zap.Uint("id", post.ID), zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	return c.Redirect(http.StatusSeeOther, "/")
}

package handlers

import (
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"inkwell-blog/app/server/flash"
	"inkwell-blog/app/server/middlewares"
	"inkwell-blog/app/server/models"
)

type commentView struct {
	ID         uint
	Text       string
	AuthorName string
	AvatarURL  string
}

// loadPost fetches the post addressed by the :id parameter.
func (a *App) loadPost(c echo.Context) (*models.BlogPost, int, error) {
	id, err := paramID(c)
	if err != nil {
		return nil, http.StatusBadRequest, fmt.Errorf("invalid post id: %w", err)
	}

	var post models.BlogPost
	if err := a.db.WithContext(c.Request().Context()).Preload("Author").First(&post, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, http.StatusNotFound, fmt.Errorf("post %d not found", id)
		}
		return nil, http.StatusInternalServerError, fmt.Errorf("load post %d: %w", id, err)
	}

	return &post, http.StatusOK, nil
}

func (a *App) ShowPost(c echo.Context) error {
	return a.showPost(c, "")
}

func (a *App) showPost(c echo.Context, commentError string) error {
	post, statusCode, err := a.loadPost(c)
	if err != nil {
		if statusCode == http.StatusInternalServerError {
			a.l.Error("failed to load post", zap.Error(err))
		}
		return a.er(c, statusCode)
	}

	rctx := c.Request().Context()

	var comments []models.Comment
	if err := a.db.WithContext(rctx).Preload("Author").Order("id ASC").Find(&comments, "post_id = ?", post.ID).Error; err != nil {
		a.l.Error("failed to list comments", zap.Uint("post", post.ID), zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	views := make([]commentView, 0, len(comments))
	for _, comment := range comments {
		views = append(views, commentView{
			ID:         comment.ID,
			Text:       comment.Text,
			AuthorName: comment.Author.Name,
			AvatarURL:  avatarURL(comment.Author.Email),
		})
	}

	data := map[string]any{
		"Post": post,
		// the post body is rich text authored by the admin
		"Body":     template.HTML(post.Body),
		"Comments": views,
	}
	statusCode = http.StatusOK
	if commentError != "" {
		data["CommentError"] = commentError
		statusCode = http.StatusBadRequest
	}

	return a.render(c, statusCode, "post", data)
}

func (a *App) AddComment(c echo.Context) error {
	post, statusCode, err := a.loadPost(c)
	if err != nil {
		if statusCode == http.StatusInternalServerError {
			a.l.Error("failed to load post", zap.Error(err))
		}
		return a.er(c, statusCode)
	}

	user := middlewares.User(c)
	if user == nil {
		flash.Set(c, "You need to be logged in or registered to comment")
		return c.Redirect(http.StatusSeeOther, "/login")
	}

	text := strings.TrimSpace(c.FormValue("comment"))
	if text == "" {
		return a.showPost(c, "Comment text is required")
	}

	comment := models.Comment{
		Text:     text,
		AuthorID: user.ID,
		PostID:   post.ID,
	}
	if err := a.db.WithContext(c.Request().Context()).Create(&comment).Error; err != nil {
		a.l.Error("failed to create comment", zap.Uint("post", post.ID), zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	return c.Redirect(http.StatusSeeOther, fmt.Sprintf("/post/%d", post.ID))
}

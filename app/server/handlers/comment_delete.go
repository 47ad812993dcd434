package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"inkwell-blog/app/server/constants"
	"inkwell-blog/app/server/middlewares"
	"inkwell-blog/app/server/models"
)

func (a *App) DeleteComment(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return a.er(c, http.StatusBadRequest)
	}

	rctx := c.Request().Context()

	var comment models.Comment
	if err := a.db.WithContext(rctx).First(&comment, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return a.er(c, http.StatusNotFound)
		}
		a.l.Error("failed to load comment", zap.Uint("id", id), zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	// The historical behavior lets any signed-in user delete any comment;
	// the strict policy limits deletion to the author or the admin.
	if a.commentDeletePolicy == constants.CommentDeleteOwnerOrAdmin {
		user := middlewares.User(c)
		if user.ID != comment.AuthorID && !user.IsAdmin() {
			return a.er(c, http.StatusForbidden)
		}
	}

	// unscoped so the row is actually removed, not soft-deleted
	if err := a.db.WithContext(rctx).Unscoped().Delete(&models.Comment{}, comment.ID).Error; err != nil {
		a.l.Error("failed to delete comment", zap.Uint("id", comment.ID), zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	return c.Redirect(http.StatusSeeOther, fmt.Sprintf("/post/%d", comment.PostID))
}

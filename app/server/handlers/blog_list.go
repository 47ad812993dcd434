package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"inkwell-blog/app/server/models"
)

func (a *App) Index(c echo.Context) error {
	rctx := c.Request().Context()

	var posts []models.BlogPost
	if err := a.db.WithContext(rctx).Preload("Author").Order("id ASC").Find(&posts).Error; err != nil {
		a.l.Error("failed to list posts", zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	return a.render(c, http.StatusOK, "index", map[string]any{
		"Posts": posts,
	})
}

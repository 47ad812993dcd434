package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

func (a *App) About(c echo.Context) error {
	return a.render(c, http.StatusOK, "about", map[string]any{
		"Year": time.Now().Year(),
	})
}

func (a *App) ContactForm(c echo.Context) error {
	return a.render(c, http.StatusOK, "contact", map[string]any{
		"Year": time.Now().Year(),
	})
}

func (a *App) ContactSubmit(c echo.Context) error {
	name := strings.TrimSpace(c.FormValue("name"))
	email := strings.TrimSpace(c.FormValue("email"))
	phone := strings.TrimSpace(c.FormValue("phone"))
	message := strings.TrimSpace(c.FormValue("message"))
	if name == "" || email == "" || message == "" {
		return a.render(c, http.StatusBadRequest, "contact", map[string]any{
			"Year":  time.Now().Year(),
			"Error": "Name, email and message are required",
		})
	}

	if err := a.mail.Send(name, email, phone, message); err != nil {
		a.l.Error("failed to relay contact message", zap.Error(err))
		return a.render(c, http.StatusOK, "contact", map[string]any{
			"Year":       time.Now().Year(),
			"SendFailed": true,
		})
	}

	return a.render(c, http.StatusOK, "contact", map[string]any{
		"Year":    time.Now().Year(),
		"MsgSent": true,
	})
}

package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/alexedwards/argon2id"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"inkwell-blog/app/server/constants"
	"inkwell-blog/app/server/flash"
	"inkwell-blog/app/server/models"
)

func (a *App) LoginForm(c echo.Context) error {
	return a.render(c, http.StatusOK, "login", nil)
}

func (a *App) LoginSubmit(c echo.Context) error {
	rctx := c.Request().Context()

	email := strings.TrimSpace(c.FormValue("email"))
	password := c.FormValue("password")
	if email == "" || password == "" {
		return a.render(c, http.StatusBadRequest, "login", map[string]any{
			"Error": "All fields are required",
			"Email": email,
		})
	}

	var user models.User
	if err := a.db.WithContext(rctx).First(&user, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			flash.Set(c, "Email does not exist in our system, please try again.")
			return c.Redirect(http.StatusSeeOther, "/login")
		}
		a.l.Error("failed to find user", zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	// Verify the supplied password against the stored hash
	if match, _, err := argon2id.CheckHash(password, user.Password); err != nil {
		a.l.Error("failed to check password", zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	} else if !match {
		flash.Set(c, "Password incorrect, please try again.")
		return c.Redirect(http.StatusSeeOther, "/login")
	}

	return a.establishSession(c, &user)
}

// establishSession logs the user in and sends them to the front page.
func (a *App) establishSession(c echo.Context, user *models.User) error {
	token, expires, err := a.sess.Create(c.Request().Context(), user.ID)
	if err != nil {
		a.l.Error("failed to create session", zap.Uint("user", user.ID), zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	c.SetCookie(&http.Cookie{
		Name:     constants.SessionCookieName,
		Value:    token,
		Path:     "/",
		Expires:  expires,
		HttpOnly: true,
	})

	return c.Redirect(http.StatusSeeOther, "/")
}

func (a *App) Logout(c echo.Context) error {
	if cookie, err := c.Cookie(constants.SessionCookieName); err == nil && cookie.Value != "" {
		if err := a.sess.Destroy(c.Request().Context(), cookie.Value); err != nil {
			a.l.Error("failed to destroy session", zap.Error(err))
		}
	}

	c.SetCookie(&http.Cookie{
		Name:     constants.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
	})

	return c.Redirect(http.StatusSeeOther, "/")
}

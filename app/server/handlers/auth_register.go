package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/alexedwards/argon2id"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"inkwell-blog/app/server/flash"
	"inkwell-blog/app/server/models"
)

func (a *App) RegisterForm(c echo.Context) error {
	return a.render(c, http.StatusOK, "register", nil)
}

func (a *App) RegisterSubmit(c echo.Context) error {
	rctx := c.Request().Context()

	name := strings.TrimSpace(c.FormValue("name"))
	email := strings.TrimSpace(c.FormValue("email"))
	password := c.FormValue("password")
	if name == "" || email == "" || password == "" {
		return a.render(c, http.StatusBadRequest, "register", map[string]any{
			"Error": "All fields are required",
			"Name":  name,
			"Email": email,
		})
	}

	// A taken email sends the visitor to the login page instead
	var existing models.User
	if err := a.db.WithContext(rctx).First(&existing, "email = ?", email).Error; err == nil {
		flash.Set(c, "You've already signed up with that email. log in instead")
		return c.Redirect(http.StatusSeeOther, "/login")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		a.l.Error("failed to check existing email", zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	passwordHash, err := argon2id.CreateHash(password, argon2id.DefaultParams)
	if err != nil {
		a.l.Error("failed to hash password", zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	user := models.User{
		Name:     name,
		Email:    email,
		Password: passwordHash,
	}
	if err := a.db.WithContext(rctx).Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// lost the race against a concurrent registration
			flash.Set(c, "You've already signed up with that email. log in instead")
			return c.Redirect(http.StatusSeeOther, "/login")
		}
		a.l.Error("failed to create user", zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	return a.establishSession(c, &user)
}

package middlewares

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"inkwell-blog/app/server/constants"
	"inkwell-blog/app/server/flash"
	"inkwell-blog/app/server/models"
	"inkwell-blog/app/server/sessions"
)

// CurrentUser resolves the session cookie into a user row and stores it on
// the request context. Any failure leaves the request anonymous; handlers
// never look at ambient session state themselves.
func CurrentUser(db *gorm.DB, sess *sessions.Manager, l *zap.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(constants.SessionCookieName)
			if err != nil || cookie.Value == "" {
				return next(c)
			}

			rctx := c.Request().Context()

			userID, err := sess.Resolve(rctx, cookie.Value)
			if err != nil {
				if !errors.Is(err, sessions.ErrNoSession) {
					l.Error("failed to resolve session", zap.Error(err))
				}
				return next(c)
			}

			var user models.User
			if err := db.WithContext(rctx).First(&user, "id = ?", userID).Error; err != nil {
				if !errors.Is(err, gorm.ErrRecordNotFound) {
					l.Error("failed to load session user", zap.Uint("id", userID), zap.Error(err))
				}
				return next(c)
			}

			c.Set(constants.ContextKeyUser, &user)

			return next(c)
		}
	}
}

// User returns the identity resolved by CurrentUser, or nil for anonymous
// requests.
func User(c echo.Context) *models.User {
	user, _ := c.Get(constants.ContextKeyUser).(*models.User)
	return user
}

// RequireUser redirects anonymous requests to the login page with a notice.
func RequireUser() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if User(c) == nil {
				flash.Set(c, "You need to be logged in or registered to comment")
				return c.Redirect(http.StatusSeeOther, "/login")
			}

			return next(c)
		}
	}
}

// RequireAdmin denies everyone but the admin account, authenticated or not.
func RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user := User(c)
			if user == nil || !user.IsAdmin() {
				return c.Render(http.StatusForbidden, "error", map[string]any{
					"Code":     http.StatusForbidden,
					"Message":  http.StatusText(http.StatusForbidden),
					"LoggedIn": user != nil,
				})
			}

			return next(c)
		}
	}
}

package handlers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"inkwell-blog/app/server/flash"
	"inkwell-blog/app/server/middlewares"
)

// render fills in the fields every page expects before handing off to the
// template.
func (a *App) render(c echo.Context, statusCode int, name string, data map[string]any) error {
	if data == nil {
		data = map[string]any{}
	}

	user := middlewares.User(c)
	data["LoggedIn"] = user != nil
	data["IsAdmin"] = user != nil && user.IsAdmin()
	data["User"] = user
	if _, ok := data["Flash"]; !ok {
		data["Flash"] = flash.Take(c)
	}

	return c.Render(statusCode, name, data)
}

func (a *App) er(c echo.Context, statusCode int) error {
	return a.render(c, statusCode, "error", map[string]any{
		"Code":    statusCode,
		"Message": http.StatusText(statusCode),
	})
}

func paramID(c echo.Context) (uint, error) {
	idUint64, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, err
	}

	return uint(idUint64), nil
}

package handlers

import (
	"github.com/labstack/echo/v4"

	"inkwell-blog/app/server/middlewares"
)

// Register wires every route of the blog onto the echo instance.
func Register(e *echo.Echo, a *App) {
	e.Use(middlewares.CurrentUser(a.db, a.sess, a.l))

	e.GET("/", a.Index)

	e.GET("/register", a.RegisterForm)
	e.POST("/register", a.RegisterSubmit)
	e.GET("/login", a.LoginForm)
	e.POST("/login", a.LoginSubmit)
	e.GET("/logout", a.Logout)

	e.GET("/post/:id", a.ShowPost)
	e.POST("/post/:id", a.AddComment)
	e.GET("/delete-comment/:id", a.DeleteComment, middlewares.RequireUser())

	e.GET("/new-post", a.NewPostForm, middlewares.RequireAdmin())
	e.POST("/new-post", a.NewPostSubmit, middlewares.RequireAdmin())
	e.GET("/edit-post/:id", a.EditPostForm, middlewares.RequireAdmin())
	e.POST("/edit-post/:id", a.EditPostSubmit, middlewares.RequireAdmin())
	e.GET("/delete/:id", a.DeletePost, middlewares.RequireAdmin())

	e.GET("/about", a.About)
	e.GET("/contact", a.ContactForm)
	e.POST("/contact", a.ContactSubmit)
}

package main

import (
	"fmt"
	"inkwell-blog/app/server/constants"
	"inkwell-blog/app/server/handlers"
	"inkwell-blog/app/server/inits"
	"inkwell-blog/app/server/mailer"
	"inkwell-blog/app/server/sessions"
	"inkwell-blog/app/server/templates"
	"log"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

func main() {
	// Configuration
	cfg, err := inits.Config()
	if err != nil {
		log.Fatal(fmt.Errorf("error loading config: %w", err))
	}

	// Logging
	l, err := inits.Logger(!cfg.System.IsProd)
	if err != nil {
		log.Fatal(fmt.Errorf("error initializing logger: %w", err))
	}

	l.Debug("logger initialized")

	// Database
	db, err := inits.DB(cfg.System.DBConnectionString)
	if err != nil {
		l.Fatal("error initializing DB connection", zap.Error(err))
	}

	// Redis
	rdb, err := inits.Redis(cfg.System.RedisConnectionString)
	if err != nil {
		l.Fatal("error initializing Redis connection", zap.Error(err))
	}

	// Sessions
	sess, err := sessions.New(rdb, cfg.Security.SignatureSecretKey, constants.SessionDuration)
	if err != nil {
		l.Fatal("error initializing session manager", zap.Error(err))
	}

	// Contact relay
	mail := mailer.New(cfg.Mail.Host, cfg.Mail.Port, cfg.Mail.Address, cfg.Mail.Password)

	// Templates
	renderer, err := templates.New()
	if err != nil {
		l.Fatal("error initializing templates", zap.Error(err))
	}

	// Handler app
	handlerApp := handlers.NewApp(l, db, sess, mail, cfg.Policy.CommentDelete)

	// Echo server
	e := echo.New()
	e.Renderer = renderer
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:    true,
		LogStatus: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			l.Info("request",
				zap.String("URI", v.URI),
				zap.Int("status", v.Status),
			)

			return nil
		},
	}))
	e.Use(middleware.Recover())

	// Routes
	handlers.Register(e, handlerApp)

	// Serve
	if err := e.Start(cfg.System.Listen); err != nil {
		l.Fatal("shutting down the server", zap.Error(err))
	}
}

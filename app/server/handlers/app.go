package handlers

import (
	"go.uber.org/zap"
	"gorm.io/gorm"

	"inkwell-blog/app/server/sessions"
)

// MailRelay delivers a contact-form submission to the site operator.
type MailRelay interface {
	Send(name, email, phone, message string) error
}

type App struct {
	l    *zap.Logger       // logging
	db   *gorm.DB          // database
	sess *sessions.Manager // session store
	mail MailRelay         // contact relay

	commentDeletePolicy string
}

func NewApp(l *zap.Logger, db *gorm.DB, sess *sessions.Manager, mail MailRelay, commentDeletePolicy string) *App {
	return &App{
		l:    l,
		db:   db,
		sess: sess,
		mail: mail,

		commentDeletePolicy: commentDeletePolicy,
	}
}

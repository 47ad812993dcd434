package constants

import "time"

const (
	SessionCookieName = "blog_session"
	SessionDuration   = 7 * 24 * time.Hour

	CacheKeySession = "blog:session:%s"
)

// ContextKeyUser holds the *models.User resolved for the current request.
const ContextKeyUser = "user"

package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	SessionCookieName   = "podcast_session"
	ContextSessionIDKey = "sessionID"
	sessionCookieMaxAge = 7 * 24 * 60 * 60
)

// SessionMiddleware issues a session cookie on first contact and exposes its id on the context.
func SessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, err := c.Cookie(SessionCookieName)
		if err != nil || uuid.Validate(sessionID) != nil {
			sessionID = uuid.NewString()
		}
		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(SessionCookieName, sessionID, sessionCookieMaxAge, "/", "", false, true)
		c.Set(ContextSessionIDKey, sessionID)

		c.Next()
	}
}

func SessionID(c *gin.Context) string {
	return c.GetString(ContextSessionIDKey)
}

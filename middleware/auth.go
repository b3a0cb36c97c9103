package middleware

import (
	"net/http"

	"gistpress/models"
	"gistpress/services"

	"github.com/gin-gonic/gin"
)

// SessionCookie is the name of the signed session cookie.
const SessionCookie = "session"

const sessionKey = "session"

// Session decodes the session cookie, when present, into the request
// context. Invalid or expired cookies are treated the same as no session.
func Session(auth services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, err := c.Cookie(SessionCookie)
		if err == nil && raw != "" {
			if sess, err := auth.VerifySession(raw); err == nil {
				c.Set(sessionKey, *sess)
			}
		}
		c.Next()
	}
}

// AuthRequired redirects anonymous requests to the login entry point.
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := CurrentSession(c); !ok {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

// CurrentSession returns the decoded session for this request, if any.
func CurrentSession(c *gin.Context) (models.Session, bool) {
	v, exists := c.Get(sessionKey)
	if !exists {
		return models.Session{}, false
	}
	sess, ok := v.(models.Session)
	return sess, ok
}

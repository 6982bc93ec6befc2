package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const sessionCookie = "fuelbill_session"

// SessionMiddleware resolves the caller's session ID. Clients send it
// in the X-Session-ID header; browsers that do not set headers fall
// back to a cookie. First-time callers get a fresh ID, echoed both
// ways so either kind of client can hold on to it.
func SessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, ok := resolveSessionID(c)
		if !ok {
			sessionID = uuid.New()
			c.SetCookie(sessionCookie, sessionID.String(), 0, "/", "", false, true)
		}

		c.Set("session_id", sessionID)
		c.Header("X-Session-ID", sessionID.String())
		c.Next()
	}
}

func resolveSessionID(c *gin.Context) (uuid.UUID, bool) {
	if header := c.GetHeader("X-Session-ID"); header != "" {
		if id, err := uuid.Parse(header); err == nil {
			return id, true
		}
	}
	if cookie, err := c.Cookie(sessionCookie); err == nil {
		if id, err := uuid.Parse(cookie); err == nil {
			return id, true
		}
	}
	return uuid.Nil, false
}

package middleware

import (
	"net/http"

	"artgallery/internal/pkg/response"
	"artgallery/internal/pkg/session"

	"github.com/gin-gonic/gin"
)

// Session resolves the anonymous session for the request and (re)sets the
// cookie on the response. The id is stored under "session_id".
func Session(m *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, token, fresh, err := m.Resolve(c.Request)
		if err != nil {
			_ = c.Error(err)
			response.Error(c, http.StatusInternalServerError, response.CodeInternal, "Failed to start session")
			c.Abort()
			return
		}

		http.SetCookie(c.Writer, m.Cookie(token))
		c.Set("session_id", id)
		c.Set("session_fresh", fresh)
		c.Next()
	}
}

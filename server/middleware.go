package server

import (
	"net/http"

	"roll-point/session"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	ctxSession   = "session"
	ctxSessionID = "session_id"
)

// withSession resolves the session cookie, issuing a new id when absent, and
// loads the server-side session into the request context.
func (s *Server) withSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := c.Cookie(s.cookieName)
		if err != nil || id == "" {
			id = uuid.NewString()
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(s.cookieName, id, int(s.cookieTTL.Seconds()), "/", "", false, true)
		}

		sess, err := s.sessions.Get(c.Request.Context(), id)
		if err != nil {
			fail(c, err)
			c.Abort()
			return
		}
		c.Set(ctxSessionID, id)
		c.Set(ctxSession, sess)
		c.Next()
	}
}

// requireAuth rejects requests whose session has no authenticated identity.
func (s *Server) requireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !s.session(c).LoggedIn() {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "Authentication required",
			})
			return
		}
		c.Next()
	}
}

func (s *Server) session(c *gin.Context) *session.Session {
	return c.MustGet(ctxSession).(*session.Session)
}

func (s *Server) saveSession(c *gin.Context) error {
	return s.sessions.Save(c.Request.Context(), c.GetString(ctxSessionID), s.session(c))
}

func (s *Server) deleteSession(c *gin.Context) error {
	return s.sessions.Delete(c.Request.Context(), c.GetString(ctxSessionID))
}

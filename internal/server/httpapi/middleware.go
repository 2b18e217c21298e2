package httpapi

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/mborg/chatboard/internal/server/auth"
)

const identityKey = "identity"

// requestLogger tags every request with a generated id and writes one access
// log line when the handler chain finishes.
func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := uuid.NewString()
		c.Header("X-Request-Id", requestID)

		start := time.Now()
		c.Next()

		s.logger.With("request_id", requestID).Info(c.Request.Context(), "request handled",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
		)
	}
}

// requireLogin authenticates the request from the chatAuth cookie. A request
// passes only when the credential's signature and window verify AND the
// server-held login window still covers the named user; every other outcome is
// a 401, clearing the cookie whenever one was presented. On success the
// verified identity is attached to the request context for ownership checks.
func (s *Server) requireLogin() gin.HandlerFunc {
	return func(c *gin.Context) {
		const rejection = "Invalid or missing authorization token"

		credential, err := c.Cookie(AuthCookieName)
		if err != nil || credential == "" {
			c.AbortWithStatusJSON(401, gin.H{"error": rejection})
			return
		}

		identity, err := auth.ParseToken(credential, s.jwtSecret)
		if err != nil {
			s.clearAuthCookie(c)
			c.AbortWithStatusJSON(401, gin.H{"error": rejection})
			return
		}

		// Server-held state can revoke an otherwise-valid credential.
		user, err := s.chat.IsLoggedIn(c.Request.Context(), identity.Username)
		if err != nil || user == nil {
			s.clearAuthCookie(c)
			c.AbortWithStatusJSON(401, gin.H{"error": rejection})
			return
		}

		c.Set(identityKey, identity)
		c.Next()
	}
}

func identityFrom(c *gin.Context) (*auth.Identity, bool) {
	v, ok := c.Get(identityKey)
	if !ok {
		return nil, false
	}
	identity, ok := v.(*auth.Identity)
	return identity, ok
}

// sendAuthCookie mints a credential for the user and delivers it as an
// httpOnly session cookie, unreadable from script and gone when the browser
// closes. The token's own window is the hard cap on replay.
func (s *Server) sendAuthCookie(c *gin.Context, id int64, username string) error {
	token, err := auth.GenerateToken(id, username, s.jwtSecret, s.tokenValidity)
	if err != nil {
		return err
	}
	c.SetCookie(AuthCookieName, token, 0, "/", "", false, true)
	return nil
}

func (s *Server) clearAuthCookie(c *gin.Context) {
	c.SetCookie(AuthCookieName, "", -1, "/", "", false, true)
}

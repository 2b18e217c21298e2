// Package httpapi exposes the chat board over REST. It is a thin boundary:
// request bodies and params are parsed into primitives, the business layer is
// called, and its return values and errors are mapped onto HTTP status codes.
// The session credential travels in the httpOnly chatAuth cookie.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mborg/chatboard/internal/logging"
	"github.com/mborg/chatboard/internal/server/config"
	"github.com/mborg/chatboard/internal/server/services"
)

// AuthCookieName is the cookie carrying the signed session credential.
const AuthCookieName = "chatAuth"

type Server struct {
	address       string
	chat          *services.ChatService
	logger        logging.Logger
	jwtSecret     []byte
	tokenValidity time.Duration
	engine        *gin.Engine
}

func NewServer(cfg *config.Config, chat *services.ChatService, l logging.Logger) *Server {
	s := &Server{
		address:       cfg.Addr,
		chat:          chat,
		logger:        l.With("module", "httpapi"),
		jwtSecret:     []byte(cfg.SecretKey),
		tokenValidity: cfg.AuthTokenValidity,
	}

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery(), s.requestLogger())

	engine.POST("/user/login", s.login)

	msg := engine.Group("/msg", s.requireLogin())
	msg.POST("", s.addMsg)
	msg.GET("", s.listMsgs)
	msg.GET("/:id", s.findMsg)
	msg.DELETE("/:id", s.deleteMsg)

	s.engine = engine
	return s
}

// Handler exposes the routing tree, mainly for tests.
func (s *Server) Handler() http.Handler { return s.engine }

// Run serves HTTP until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.address,
		Handler: s.engine,
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

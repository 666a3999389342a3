// Package server serves the built site and relays the contact form.
package server

import (
	"context"
	"errors"
	"net/http"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/Zachkp/cvsite/internal/contact"
	"github.com/Zachkp/cvsite/internal/logger"
)

const shutdownTimeout = 5 * time.Second

type Config struct {
	Port string
	Mode string
	Root string
}

type Server struct {
	cfg       Config
	engine    *gin.Engine
	recipient func() string
	log       zerolog.Logger
}

// New wires the routes. recipient supplies the address contact messages are
// addressed to; it is read on every submission so rebuilds take effect.
func New(cfg Config, recipient func() string) *Server {
	if cfg.Mode != "" {
		gin.SetMode(cfg.Mode)
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	s := &Server{
		cfg:       cfg,
		engine:    gin.New(),
		recipient: recipient,
		log:       logger.Component("server"),
	}
	s.engine.Use(gin.Recovery(), visitorLogger(s.log, newIPHasher()))

	s.engine.GET("/cv.json", noStore(), func(c *gin.Context) {
		c.File(filepath.Join(s.cfg.Root, "cv.json"))
	})
	s.engine.POST("/contact", s.handleContact)
	s.engine.NoRoute(staticFiles(cfg.Root))
	return s
}

func (s *Server) Handler() http.Handler { return s.engine }

// Run listens on the configured port until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              ":" + s.cfg.Port,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		s.log.Info().Str("addr", srv.Addr).Str("root", s.cfg.Root).Msg("serving site")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// handleContact answers the form with a redirect to a prepared mailto link.
func (s *Server) handleContact(c *gin.Context) {
	var msg contact.Message
	if err := c.ShouldBind(&msg); err != nil {
		c.String(http.StatusBadRequest, "Sorry, the message could not be read.")
		return
	}
	uri, err := contact.MailtoURI(s.recipient(), msg)
	if err != nil {
		s.log.Warn().Err(err).Msg("contact form submitted without a recipient")
		c.String(http.StatusServiceUnavailable, "Sorry, there is no contact address configured. Please try again later.")
		return
	}
	c.Redirect(http.StatusSeeOther, uri)
}

func noStore() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Cache-Control", "no-store")
		c.Header("Pragma", "no-cache")
		c.Next()
	}
}

func staticFiles(root string) gin.HandlerFunc {
	files := http.FileServer(gin.Dir(root, false))
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
			c.String(http.StatusNotFound, "404 page not found")
			return
		}
		files.ServeHTTP(c.Writer, c.Request)
	}
}

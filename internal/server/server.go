// Package server wires the portfolio sections to gin: full page rendering,
// HTMX fragment endpoints for the section transitions, a JSON view, metrics
// and the admin area.
package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/portfolio/internal/admin"
	"github.com/Zachkp/portfolio/internal/metrics"
	"github.com/Zachkp/portfolio/internal/session"
	"github.com/Zachkp/portfolio/internal/tracking"
)

const shutdownTimeout = 10 * time.Second

// Tracker receives engagement data.
type Tracker interface {
	TrackVisit(v tracking.Visit)
	TrackEvent(e tracking.Event)
}

type nopTracker struct{}

func (nopTracker) TrackVisit(tracking.Visit) {}
func (nopTracker) TrackEvent(tracking.Event) {}

// Options configures a Server. Sessions is required; the rest fall back to
// no-op or fresh instances.
type Options struct {
	Sessions      *session.Store
	Tracker       Tracker
	Metrics       *metrics.Recorder
	Admin         *admin.Handler
	Logger        *slog.Logger
	Title         string
	SessionTTL    time.Duration
	Retention     time.Duration
	SecureCookies bool
}

// Server is the portfolio HTTP server.
type Server struct {
	engine     *gin.Engine
	sessions   *session.Store
	tracker    Tracker
	metrics    *metrics.Recorder
	log        *slog.Logger
	title      string
	sessionTTL time.Duration
	retention  time.Duration
	secure     bool
}

// New builds the gin engine and registers every route.
func New(o Options) (*Server, error) {
	if o.Sessions == nil {
		return nil, errors.New("server: sessions store is required")
	}

	s := &Server{
		sessions:   o.Sessions,
		tracker:    o.Tracker,
		metrics:    o.Metrics,
		log:        o.Logger,
		title:      o.Title,
		sessionTTL: o.SessionTTL,
		retention:  o.Retention,
		secure:     o.SecureCookies,
	}
	if s.tracker == nil {
		s.tracker = nopTracker{}
	}
	if s.metrics == nil {
		s.metrics = metrics.New()
	}
	if s.log == nil {
		s.log = slog.Default()
	}
	if s.title == "" {
		s.title = "Portfolio"
	}
	if s.sessionTTL <= 0 {
		s.sessionTTL = 30 * time.Minute
	}

	tmpl, err := Templates(true)
	if err != nil {
		return nil, err
	}

	r := gin.New()
	r.Use(gin.Recovery())
	if gin.Mode() == gin.DebugMode {
		r.Use(gin.Logger())
	} else {
		r.Use(requestLogger(s.log))
	}
	r.Use(s.metrics.Middleware())
	r.Use(tracking.Middleware(s.tracker))
	r.SetHTMLTemplate(tmpl)

	r.Static("/images", "./images")
	r.Static("/static", "./static")

	s.routes(r)
	if o.Admin != nil {
		o.Admin.Register(r)
	}

	s.engine = r
	return s, nil
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("portfolio listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		s.log.Info("shutting down portfolio server")
		return srv.Shutdown(shutdownCtx)
	}
}

func requestLogger(log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Info("request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
		)
	}
}

package tracking

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

const writeTimeout = 5 * time.Second

// skippedPrefixes are never tracked: assets, the admin area, the privacy
// page itself and machine endpoints.
var skippedPrefixes = []string{"/static/", "/images/", "/admin", "/favicon", "/privacy", "/metrics", "/healthz", "/api/"}

// Tracker writes to a Store in the background so requests never wait on
// SQLite. Failures are logged and dropped.
type Tracker struct {
	store *Store
	log   *slog.Logger
	wg    sync.WaitGroup
}

// NewTracker wraps store.
func NewTracker(store *Store, log *slog.Logger) *Tracker {
	return &Tracker{store: store, log: log}
}

// TrackVisit records v asynchronously.
func (t *Tracker) TrackVisit(v Visit) {
	t.run(func(ctx context.Context) error { return t.store.RecordVisit(ctx, v) })
}

// TrackEvent records e asynchronously.
func (t *Tracker) TrackEvent(e Event) {
	t.run(func(ctx context.Context) error { return t.store.RecordEvent(ctx, e) })
}

// Wait blocks until every pending write has finished.
func (t *Tracker) Wait() {
	t.wg.Wait()
}

func (t *Tracker) run(write func(context.Context) error) {
	t.wg.Add(1)
	go func() {
		defer t.wg.Done()
		ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
		defer cancel()
		if err := write(ctx); err != nil {
			t.log.Error("error recording tracking data", "error", err)
		}
	}()
}

// VisitTracker receives page views.
type VisitTracker interface {
	TrackVisit(v Visit)
}

// DoNotTrack reports whether the client asked not to be tracked.
func DoNotTrack(c *gin.Context) bool {
	return c.GetHeader("DNT") == "1"
}

// Middleware records full page views, skipping HTMX fragment requests,
// assets, admin pages and clients that send "DNT: 1".
func Middleware(t VisitTracker) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if c.Request.Method != "GET" || skipped(path) || DoNotTrack(c) || c.GetHeader("HX-Request") == "true" {
			c.Next()
			return
		}

		t.TrackVisit(Visit{IP: c.ClientIP(), UserAgent: c.GetHeader("User-Agent"), Path: path})
		c.Next()
	}
}

func skipped(path string) bool {
	for _, prefix := range skippedPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

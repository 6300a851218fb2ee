package main

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/Zachkp/portfolio/internal/admin"
	"github.com/Zachkp/portfolio/internal/config"
	"github.com/Zachkp/portfolio/internal/content"
	"github.com/Zachkp/portfolio/internal/metrics"
	"github.com/Zachkp/portfolio/internal/server"
	"github.com/Zachkp/portfolio/internal/session"
	"github.com/Zachkp/portfolio/internal/tracking"
)

const sweepInterval = time.Minute

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the portfolio web server",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		return err
	}

	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	slog.SetDefault(log)
	gin.SetMode(cfg.GinMode)

	lib, err := content.Load(cfg.ContentFile)
	if err != nil {
		return err
	}

	store, err := tracking.Open(ctx, cfg.DBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if removed, err := store.Cleanup(ctx, cfg.Retention); err != nil {
		log.Error("Privacy cleanup failed", "err", err)
	} else if removed > 0 {
		log.Info("Privacy cleanup: removed old tracking records", "count", removed)
	}

	tracker := tracking.NewTracker(store, log)
	defer tracker.Wait()

	if cfg.UsingDefaultCredentials() && gin.Mode() == gin.DebugMode {
		log.Warn("Using default admin credentials. Set PORTFOLIO_ADMIN_USERNAME and PORTFOLIO_ADMIN_PASSWORD for production")
	}

	adm, err := admin.New(admin.Config{
		Username:      cfg.AdminUsername,
		Password:      cfg.AdminPassword,
		Secret:        cfg.AdminSecret,
		Retention:     cfg.Retention,
		SecureCookies: cfg.SecureCookies,
	}, store, lib, log)
	if err != nil {
		return err
	}

	rec := metrics.New()
	sessions := session.NewStore(lib, cfg.SessionTTL, session.WithSizeHook(rec.SetSessions))

	srv, err := server.New(server.Options{
		Sessions:      sessions,
		Tracker:       tracker,
		Metrics:       rec,
		Admin:         adm,
		Logger:        log,
		Title:         siteTitle,
		SessionTTL:    cfg.SessionTTL,
		Retention:     cfg.Retention,
		SecureCookies: cfg.SecureCookies,
	})
	if err != nil {
		return err
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer stop()
		return srv.Run(gctx, cfg.Addr)
	})
	g.Go(func() error {
		return sessions.Run(gctx, sweepInterval)
	})
	return g.Wait()
}

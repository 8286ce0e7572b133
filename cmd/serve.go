package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/fpdocs/internal/metrics"
	"github.com/ziadkadry99/fpdocs/internal/pages"
	"github.com/ziadkadry99/fpdocs/internal/server"
	"github.com/ziadkadry99/fpdocs/internal/session"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the documentation server",
	Long:  `Starts the HTTP server that renders documentation pages and drives live navigation sessions over a websocket.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().Int("port", 0, "port to listen on (overrides config)")
	serveCmd.Flags().Bool("open", false, "open browser automatically")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if port, _ := cmd.Flags().GetInt("port"); port != 0 {
		cfg.Port = port
	}
	open, _ := cmd.Flags().GetBool("open")

	registry, err := pages.NewRegistry(cfg.HighlightStyle)
	if err != nil {
		return fmt.Errorf("building pages: %w", err)
	}
	table := pages.Sections()

	var prom *metrics.PrometheusRecorder
	var recorder metrics.Recorder = metrics.NoopRecorder{}
	if cfg.Metrics {
		prom = metrics.NewPrometheusRecorder(nil)
		recorder = prom
	}

	sessions := session.NewManager(registry, table, session.Options{
		SiteName:        cfg.SiteName,
		Recorder:        recorder,
		Verbose:         verbose,
		MaxPending:      cfg.MaxPendingSessions,
		AllowAllOrigins: cfg.AllowAllOrigins,
	})

	sweeper, err := session.NewSweeper(sessions, cfg.SweepIntervalDuration(), cfg.SessionTTLDuration())
	if err != nil {
		return fmt.Errorf("creating session sweeper: %w", err)
	}
	sweeper.Start()
	defer sweeper.Stop()

	srv := server.New(server.Config{
		Port:     cfg.Port,
		AllowAll: cfg.AllowAllOrigins,
	}, registry, table, sessions, prom)

	// Graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		fmt.Fprintln(os.Stderr, "\nShutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
	}()

	url := fmt.Sprintf("http://localhost:%d", cfg.Port)
	fmt.Fprintf(os.Stderr, "fpdocs %s serving %q at %s\n", version(), cfg.SiteName, url)
	fmt.Fprintf(os.Stderr, "  Pages: %d\n", registry.Len())
	fmt.Fprintf(os.Stderr, "  Session TTL: %s\n", cfg.SessionTTLDuration())
	if prom != nil {
		fmt.Fprintf(os.Stderr, "  Metrics: %s/metrics\n", url)
	}

	if open {
		openBrowser(url)
	}

	if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// cmd/web/main.go
//
// Roasted Fig café site – HTTP entry point.
//
// Startup sequence
// ----------------
//
//  1. Load env vars (optional conf/.env).
//
//  2. Load layered configuration (YAML + FIG_ env overrides).
//
//  3. Start daily rotating logger (tees to console when running in a TTY).
//
//  4. Load the menu catalog and gallery manifest; start the menu file
//     watcher and the daily-special rotation.
//
//  5. Build the view engine and start its template watcher.
//
//  6. Wire the notification center and the chi router; serve with hardened
//     timeouts until SIGINT/SIGTERM, then drain connections.
//
// Large comment blocks are framed by blank “//” lines; inline comments use
// a single “//”.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"github.com/roastedfig/website/internal/config"
	"github.com/roastedfig/website/internal/gallery"
	"github.com/roastedfig/website/internal/logger"
	"github.com/roastedfig/website/internal/menu"
	"github.com/roastedfig/website/internal/notify"
	"github.com/roastedfig/website/internal/server"
	"github.com/roastedfig/website/internal/view"
	"github.com/roastedfig/website/internal/web"
)

const shutdownGrace = 10 * time.Second

// runningInTTY returns true when stdout is a character device.
func runningInTTY() bool {
	fi, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}

func init() { _ = godotenv.Load() }

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logOut, err := logger.New(cfg.Paths.Root, runningInTTY())
	if err != nil {
		log.Fatalf("start logger: %v", err)
	}

	//
	// ── 1.  Menu catalog + daily special ────────────────────────────────
	//
	catalog, err := menu.Load(filepath.Join(cfg.Paths.Root, "conf", "menu.yaml"))
	if err != nil {
		logOut.Fatalf("load menu: %v", err)
	}
	if err := catalog.Watch(); err != nil {
		logOut.Warnf("menu watch unavailable: %v", err)
	}
	rotation, err := catalog.StartRotation()
	if err != nil {
		logOut.Fatalf("start special rotation: %v", err)
	}
	defer rotation.Stop()

	//
	// ── 2.  Gallery manifest ────────────────────────────────────────────
	//
	ring, err := gallery.Load(filepath.Join(cfg.Paths.Root, "conf", "gallery.yaml"))
	if err != nil {
		logOut.Fatalf("load gallery: %v", err)
	}

	//
	// ── 3.  View engine + template watcher ──────────────────────────────
	//
	renderer := view.NewRenderer(cfg.Paths.Root)
	go func() {
		if err := renderer.Watch(); err != nil {
			logOut.Warnf("template watch unavailable: %v", err)
		}
	}()

	//
	// ── 4.  Notification center + router ────────────────────────────────
	//
	center := notify.New()
	handlers := web.New(cfg, renderer, center, catalog, ring, logOut)
	srv := server.New(cfg.HTTP.ListenAddr, web.NewRouter(handlers))

	//
	// ── 5.  Serve until signalled, then drain ───────────────────────────
	//
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logOut.Infow("listening", "addr", cfg.HTTP.ListenAddr, "site", cfg.Site.Name)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logOut.Infow("shutting down")
		drain, cancel := context.WithTimeout(context.Background(), shutdownGrace)
		defer cancel()
		return srv.Shutdown(drain)
	})

	if err := g.Wait(); err != nil {
		logOut.Fatalf("server: %v", err)
	}
	logOut.Infow("bye")
}

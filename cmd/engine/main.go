package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/gofrs/flock"
	flags "github.com/jessevdk/go-flags"
	"github.com/joho/godotenv"

	"github.com/PremDutta/pm-job-hub/internal/config"
	"github.com/PremDutta/pm-job-hub/internal/events"
	"github.com/PremDutta/pm-job-hub/internal/httpapi"
	"github.com/PremDutta/pm-job-hub/internal/scrape"
	"github.com/PremDutta/pm-job-hub/internal/store"
)

type options struct {
	Config  string `short:"c" long:"config" env:"PMJOBHUB_CONFIG" description:"Path to the default config file" default:"config/config.yml"`
	DataDir string `short:"d" long:"data-dir" env:"PMJOBHUB_DATA_DIR" description:"Directory for the database, user config and lock file"`
	Port    int    `short:"p" long:"port" env:"PMJOBHUB_PORT" description:"Override the configured listen port"`
}

func main() {
	// .env is optional, env vars win over it
	_ = godotenv.Load()

	var opts options
	if _, err := flags.Parse(&opts); err != nil {
		var fe *flags.Error
		if errors.As(err, &fe) && fe.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if opts.DataDir == "" {
		opts.DataDir = "."
	}
	if err := os.MkdirAll(opts.DataDir, 0o755); err != nil {
		log.Fatal(err)
	}

	// one engine per data dir; a second instance would fight over sqlite
	lock := flock.New(filepath.Join(opts.DataDir, "engine.lock"))
	locked, err := lock.TryLock()
	if err != nil {
		log.Fatalf("lock failed: %v", err)
	}
	if !locked {
		log.Fatalf("another engine instance already owns %s", opts.DataDir)
	}
	defer lock.Unlock()

	userCfgPath, err := config.EnsureUserConfig(opts.DataDir, opts.Config)
	if err != nil {
		log.Fatalf("config bootstrap failed: %v", err)
	}

	var cfgVal atomic.Value // stores config.Config
	loadCfg := func() (config.Config, error) {
		cfg, err := config.Load(userCfgPath)
		if err != nil {
			return cfg, err
		}
		normalized, vr := config.NormalizeAndValidate(cfg)
		for _, wmsg := range vr.Warnings {
			log.Printf("level=warn msg=\"config\" detail=%q", wmsg)
		}
		if !vr.OK() {
			return cfg, fmt.Errorf("config invalid: %v", vr.Errors)
		}
		return normalized, nil
	}
	cfg, err := loadCfg()
	if err != nil {
		log.Fatalf("config load failed (%s): %v", userCfgPath, err)
	}
	if opts.Port > 0 {
		cfg.App.Port = opts.Port
	}
	cfgVal.Store(cfg)

	dbPath := filepath.Join(opts.DataDir, "pmjobhub.db")
	db, err := store.Open(dbPath)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()
	if err := store.Migrate(db.Pool); err != nil {
		log.Fatalf("migrate failed: %v", err)
	}
	if n, err := store.CleanupOldJobs(db.Pool); err != nil {
		log.Printf("level=warn msg=\"cleanup failed\" err=%v", err)
	} else if n > 0 {
		log.Printf("level=info msg=\"cleanup\" deleted=%d", n)
	}

	hub := events.NewHub()
	runner := scrape.NewRunner(db, hub, func() config.Config {
		return cfgVal.Load().(config.Config)
	})

	mux := httpapi.NewMux(httpapi.Deps{
		DB:          db.Pool,
		Hub:         hub,
		Runner:      runner,
		CfgVal:      &cfgVal,
		UserCfgPath: userCfgPath,
		LoadCfg:     loadCfg,
	})

	handler := httpapi.Chain(mux,
		httpapi.RequestID,
		httpapi.Recover,
		httpapi.AccessLog,
		httpapi.Cors,
	)

	addr := fmt.Sprintf("127.0.0.1:%d", cfg.App.Port)
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("engine listening on http://%s (db=%s)", addr, dbPath)

	srv := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal(err)
		}
	}()

	<-done
	log.Printf("shutting down")
	runner.Cancel()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctx)
}

package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bryanwahyu/automaton-legal/internal/bootstrap"
	"github.com/bryanwahyu/automaton-legal/internal/config"
	"github.com/bryanwahyu/automaton-legal/internal/infra/httpserver"
	"github.com/bryanwahyu/automaton-legal/internal/logger"
)

func main() {
	// path config.yaml
	path := "config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		path = v
	}

	cfg, err := config.Load(path)
	if err != nil {
		log.Fatalf("config load error: %v", err)
	}

	lg, err := logger.New(cfg.Log.Mode, cfg.Log.Level)
	if err != nil {
		log.Fatalf("logger init error: %v", err)
	}
	defer lg.Sync()

	ctx := context.Background()

	app, err := bootstrap.Build(ctx, cfg, lg, nil)
	if err != nil {
		lg.Fatal("bootstrap failed", "error", err)
	}
	defer app.Close()

	handler := httpserver.NewRouter(app.Services, httpserver.Options{
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		APIKeys:        cfg.Auth.APIKeys,
		RateCapacity:   cfg.RateLimit.Capacity,
		RateRefill:     cfg.RateLimit.RefillRate,
		MaxUploadBytes: cfg.Server.MaxUploadMB << 20,
		HealthCheckers: app.Health,
		Log:            lg,
	})

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  60 * time.Second,
	}

	// run server
	go func() {
		lg.Info("server listening", "addr", addr, "storage", cfg.Storage.Driver, "ocr", cfg.OCR.Provider)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			lg.Fatal("server error", "error", err)
		}
	}()

	// graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
	lg.Info("shutting down server...")

	ctx2, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx2); err != nil {
		lg.Error("shutdown error", "error", err)
	}
}

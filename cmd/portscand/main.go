// cmd/portscand/main.go
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mfreeman451/portscan/pkg/api"
	"github.com/mfreeman451/portscan/pkg/config"
	"github.com/mfreeman451/portscan/pkg/models"
	"github.com/mfreeman451/portscan/pkg/scan"
	"github.com/mfreeman451/portscan/pkg/store"
)

const pruneInterval = time.Hour

func main() {
	log.Printf("Starting portscand...")

	configPath := flag.String("config", "/etc/portscan/portscand.json", "Path to daemon config file")
	flag.Parse()

	cfg := config.DaemonConfig{
		ListenAddr:         ":8090",
		DefaultTimeout:     config.Duration(time.Second),
		DefaultConcurrency: 50,
	}

	if _, err := os.Stat(*configPath); err == nil {
		if err := config.LoadAndValidate(*configPath, &cfg); err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	} else {
		log.Printf("No config at %s, using defaults", *configPath)
	}

	reportStore := store.NewInMemoryStore()

	defaults := models.ScanRequest{
		StartPort:   scan.MinPort,
		EndPort:     1024,
		Concurrency: cfg.DefaultConcurrency,
		Timeout:     time.Duration(cfg.DefaultTimeout),
		RateLimit:   cfg.DefaultRateLimit,
	}

	factory := func(progress scan.ProgressFunc) scan.Scanner {
		return scan.NewCoordinator(scan.WithProgress(progress))
	}

	server := api.NewAPIServer(reportStore, factory, defaults)

	if retention := time.Duration(cfg.ReportRetention); retention > 0 {
		go pruneLoop(reportStore, retention)
	}

	errChan := make(chan error, 1)
	go func() {
		errChan <- server.Start(cfg.ListenAddr)
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigChan:
		log.Printf("Received signal %v, shutting down", sig)
	case err := <-errChan:
		log.Fatalf("API server error: %v", err)
	}
}

func pruneLoop(s store.Store, retention time.Duration) {
	ticker := time.NewTicker(pruneInterval)
	defer ticker.Stop()

	for range ticker.C {
		if err := s.PruneReports(context.Background(), retention); err != nil {
			log.Printf("Failed to prune reports: %v", err)
		}
	}
}

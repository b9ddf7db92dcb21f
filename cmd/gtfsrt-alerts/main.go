package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/theoremus-urban-solutions/gtfsrt-alerts/config"
	"github.com/theoremus-urban-solutions/gtfsrt-alerts/gtfsrt"
	"github.com/theoremus-urban-solutions/gtfsrt-alerts/internal"
	"github.com/theoremus-urban-solutions/gtfsrt-alerts/invalidate"
	"github.com/theoremus-urban-solutions/gtfsrt-alerts/pipeline"
	"github.com/theoremus-urban-solutions/gtfsrt-alerts/storage"
)

// The binary runs one ingestion batch and exits; an external scheduler
// (cron or similar) re-invokes it. A non-zero exit marks a failed run.
func main() {
	configPath := flag.String("config", "config.yml", "path to configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	logger := internal.NewLogger(cfg.LogLevel)

	repo, err := storage.Open(cfg.Database.Driver, cfg.Database.DSN)
	if err != nil {
		logger.Error("open database", "err", err)
		os.Exit(1)
	}
	defer func() { _ = repo.Close() }()

	var notifier invalidate.Notifier
	if cfg.Invalidation.Enabled {
		kn := invalidate.NewKafkaNotifier(cfg.Invalidation.Brokers, cfg.Invalidation.Topic)
		defer func() { _ = kn.Close() }()
		notifier = kn
	} else {
		notifier = invalidate.NewLogNotifier(logger)
	}

	client := gtfsrt.NewClient(time.Duration(cfg.Feed.TimeoutMS) * time.Millisecond)
	p := pipeline.New(cfg.Feed.ServiceAlertsURL, client, repo, notifier, logger)

	if _, err := p.Run(context.Background()); err != nil {
		logger.Error("batch failed", "err", err)
		os.Exit(1)
	}
}

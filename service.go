package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"

	"golang.org/x/exp/slog"
	"golang.org/x/time/rate"
	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"

	"ytscope/config"
	"ytscope/export"
	"ytscope/extract"
	"ytscope/fetcher"
	"ytscope/handler"
	"ytscope/model"
	"ytscope/worker"
)

func main() {
	oneshot := flag.Bool("oneshot", false, "fetch one video, write the output files and exit")
	flag.Parse()

	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(os.Stderr))

	cfg := config.Load()
	if cfg.APIKey == "" {
		logger.Error("YOUTUBE_API_KEY is not set", fmt.Errorf("missing api key"))
		os.Exit(1)
	}

	ytClient, err := youtube.NewService(ctx, option.WithAPIKey(cfg.APIKey))
	if err != nil {
		logger.Error("unable to create youtube service", err)
		os.Exit(1)
	}
	yt := fetcher.NewYoutube(ytClient)

	var limiter *rate.Limiter
	if cfg.PageInterval > 0 {
		limiter = rate.NewLimiter(rate.Every(cfg.PageInterval), 1)
	}
	collector := fetcher.NewCollector(yt, limiter, logger)

	exporter, err := export.NewExporter(cfg.OutputDir, logger)
	if err != nil {
		logger.Error("unable to create exporter", err)
		os.Exit(1)
	}
	pipeline := extract.NewPipeline(yt, collector, exporter, logger)

	if *oneshot {
		if cfg.VideoID == "" {
			logger.Error("YOUTUBE_VIDEO_ID is not set", fmt.Errorf("missing video id"))
			os.Exit(1)
		}
		result := pipeline.Run(ctx, model.ExtractRequest{VideoID: cfg.VideoID})
		if result.Error != "" {
			logger.Error("extraction failed", errors.New(result.Error))
			os.Exit(1)
		}
		return
	}

	if cfg.NATSUrl != "" {
		extractWorker, err := worker.NewWorker(cfg.NATSUrl, pipeline, logger)
		if err != nil {
			logger.Error("unable to connect to nats", err)
			os.Exit(1)
		}
		if err := extractWorker.Start(ctx); err != nil {
			logger.Error("unable to start extract worker", err)
			os.Exit(1)
		}
		defer extractWorker.Stop()
		logger.Info("extract worker started")
	}

	go http.ListenAndServe(fmt.Sprintf(":%s", cfg.APIPort), handler.NewServer(yt, collector, yt, cfg, logger))
	logger.Info("http server started", slog.String("port", cfg.APIPort))

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt)
	<-done

	logger.Info("service stopped")
}

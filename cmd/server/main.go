package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/basharkhan/brainly/internal/logging"
	"github.com/basharkhan/brainly/internal/server"
	"github.com/basharkhan/brainly/internal/server/cluster"
	"github.com/basharkhan/brainly/internal/server/config"
)

func main() {

	// Optional; env vars usually come from the environment in production.
	_ = godotenv.Load()

	ctx := context.Background()
	cfg := config.LoadConfig()

	if cluster.IsWorker() {
		app, err := server.NewApp(cfg)
		if err != nil {
			log.Printf("%v", err)
			return
		}
		app.Run(ctx)
		return
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stdout, nil)))
	s := cluster.NewSupervisor(logger, cluster.NumWorkers(cfg.WorkersPerCore))
	if err := s.Run(ctx); err != nil {
		log.Printf("%v", err)
	}
}

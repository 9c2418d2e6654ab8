package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"coffeeshop/cmd"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

func main() {
	os.Exit(start())
}

// start runs the service until a signal arrives and returns the exit code.
// Deferred cleanup completes before main exits.
func start() int {
	loadDotEnv()

	config, err := cmd.LoadConfig()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: config.LogLevel}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, config, logger); err != nil {
		logger.Error("coffee shop stopped with error", "error", err)
		return 1
	}
	return 0
}

// loadDotEnv reads .env when present. A missing file is not an error.
func loadDotEnv() {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Fatalf("Error loading .env file: %v", err)
	}
}

func run(ctx context.Context, config cmd.Config, logger *slog.Logger) error {
	app, err := cmd.NewCompositionRoot(ctx, config, logger, os.Stdout)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := app.Close(); closeErr != nil {
			logger.Warn("close resources", "error", closeErr)
		}
	}()

	jobManager, err := app.CreateJobManager()
	if err != nil {
		return err
	}
	if err := jobManager.StartAll(); err != nil {
		return err
	}
	defer jobManager.StopAll()

	e, err := app.CreateRouter()
	if err != nil {
		return err
	}
	address := fmt.Sprintf("0.0.0.0:%s", config.HTTPPort)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("http server listening", "address", address)
		if err := e.Start(address); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return e.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

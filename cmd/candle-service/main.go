package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/zetamarkets/pyth-history/app/consumer"
	"github.com/zetamarkets/pyth-history/pkg/config"
	"github.com/zetamarkets/pyth-history/pkg/httplib/healthcheck"
	"github.com/zetamarkets/pyth-history/pkg/logger"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	appLogger, err := logger.NewLogger(cfg.Log.Options()...)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer appLogger.Sync()

	priceConsumer, err := consumer.InitPriceConsumer(ctx, *cfg, appLogger)
	if err != nil {
		appLogger.Error(err, logger.Field{Key: "action", Value: "init_price_consumer"})
		os.Exit(1)
	}

	health := healthcheck.New(appLogger, map[string]healthcheck.Pinger{
		"redis": priceConsumer.Redis,
	})
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           health.Handler(http.NotFoundHandler()),
		ReadHeaderTimeout: 5 * time.Second,
	}

	appLogger.Info("Candle service started",
		logger.Field{Key: "app", Value: cfg.App.Name},
		logger.Field{Key: "environment", Value: cfg.App.Environment},
		logger.Field{Key: "http_port", Value: cfg.App.Port},
		logger.Field{Key: "symbols", Value: cfg.Store.Symbols},
	)

	consumerErr := make(chan error, 1)
	wg := sync.WaitGroup{}
	wg.Add(2)
	go func() {
		defer wg.Done()
		consumerErr <- priceConsumer.Consumer.Start(ctx)
	}()
	go func() {
		defer wg.Done()
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Error(err, logger.Field{Key: "action", Value: "http_server"})
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-quit:
	case err := <-consumerErr:
		if err != nil {
			appLogger.Error(err, logger.Field{Key: "action", Value: "price_consumer"})
		}
	}

	appLogger.Info("Shutting down candle service...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		appLogger.Error(err, logger.Field{Key: "action", Value: "http_shutdown"})
	}
	if err := priceConsumer.Close(shutdownCtx); err != nil {
		appLogger.Error(err, logger.Field{Key: "action", Value: "close_price_consumer"})
	}
	wg.Wait()

	appLogger.Info("Candle service stopped")
}

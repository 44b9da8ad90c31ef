package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pix-donation-gateway/internal/api"
	paymentGateway "github.com/pix-donation-gateway/internal/application/payment/gateway"
	paymentProcessor "github.com/pix-donation-gateway/internal/application/payment/processors"
	"github.com/pix-donation-gateway/internal/config"
	"github.com/pix-donation-gateway/internal/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger := logging.NewJSONLogger(os.Stdout)
	if err := cfg.Credentials.Validate(); err != nil {
		logger.Error("starting without provider credentials", map[string]any{"error": err.Error()})
	}

	pp := paymentProcessor.NewPaymentProcessor(cfg.ProviderURL, cfg.ProviderTimeout, logger)
	gw := paymentGateway.New(pp, cfg.Credentials, logger)

	blockCh := make(chan error, 1)
	httpServer := api.Setup(cfg.Addr(), gw)
	go func() {
		err := httpServer.ListenAndServe()
		if err != nil {
			blockCh <- fmt.Errorf("failed to run server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-quit:
	case err := <-blockCh:
		log.Fatal(err)
	}
	log.Println("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		log.Fatalf("http server shutdown failed: %v", err)
	}
	log.Println("server exiting.")
}

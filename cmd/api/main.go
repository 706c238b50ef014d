package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "WeightLossDataGenerator/docs"
	"WeightLossDataGenerator/internal/auth"
	"WeightLossDataGenerator/internal/config"
	"WeightLossDataGenerator/internal/dataset"
	"WeightLossDataGenerator/internal/handler"
	"WeightLossDataGenerator/internal/storage"
)

// @title                       Weight Loss Data Generator API
// @version                     1.0
// @description                 Generates synthetic weight-loss program datasets as CSV.
// @host                        localhost:8080
// @BasePath                    /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 Type "Bearer" followed by a space and the JWT.
func main() {
	cfg := config.Load()
	auth.SetSigningKey(cfg.JWTSecret)

	if err := storage.InitDB(cfg.DatabasePath); err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer storage.Close()

	archiver, err := dataset.NewArchiver(cfg.DatasetDir)
	if err != nil {
		log.Fatalf("failed to prepare dataset directory: %v", err)
	}

	router := handler.SetupRouter(cfg, handler.NewDatasetHandler(cfg, archiver))

	server := &http.Server{
		Addr:        cfg.HTTPAddress,
		Handler:     router,
		ReadTimeout: 5 * time.Second,
		IdleTimeout: 60 * time.Second,
	}

	shutdownCh := make(chan os.Signal, 1)
	signal.Notify(shutdownCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Printf("weight-loss datagen listening on %s (default rows %d, max rows %d)", cfg.HTTPAddress, cfg.DefaultRows, cfg.MaxRows)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	<-shutdownCh

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("graceful shutdown failed: %v", err)
	}
}

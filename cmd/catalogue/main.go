package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"wigsandmore-backend/internal/catalogue"
	"wigsandmore-backend/pkg/config"
	"wigsandmore-backend/pkg/logger"
	"wigsandmore-backend/pkg/mongodb"
	"wigsandmore-backend/pkg/shutdown"
)

func main() {
	cfg := config.Load(config.Config{
		Port:          3001,
		MongoDatabase: "wigs-catalogue",
		UploadDir:     "uploads",
	})
	log := logger.New(logger.Options{Service: "catalogue", Env: cfg.AppEnv, Level: cfg.LogLevel})

	ctx, cancel := shutdown.WithSignals(context.Background())
	defer cancel()

	client, err := mongodb.Connect(ctx, cfg.MongoURI)
	if err != nil {
		log.Error("mongo connect failed", "err", err, "uri", cfg.MongoURI)
		os.Exit(1)
	}
	defer client.Disconnect(context.Background())

	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		log.Error("upload dir unavailable", "err", err, "dir", cfg.UploadDir)
		os.Exit(1)
	}

	r := gin.Default()
	r.Use(cors.New(corsConfig(cfg.CORSOrigins)))

	store := catalogue.NewMongoStore(client.Database(cfg.MongoDatabase))
	catalogue.NewHandler(store, cfg.UploadDir, log).Register(r)

	addr := fmt.Sprintf(":%d", cfg.Port)
	server := &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Info("catalogue service starting", "addr", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("http server error", "err", err)
			cancel()
		}
	}()

	<-ctx.Done()
	log.Info("shutdown requested")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("http shutdown error", "err", err)
	}
	log.Info("bye")
}

func corsConfig(origins string) cors.Config {
	return cors.Config{
		AllowOrigins: strings.Split(origins, ","),
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Authorization"},
	}
}

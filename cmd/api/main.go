package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/petcaremt/petcare-api/internal/config"
	dbpkg "github.com/petcaremt/petcare-api/internal/db"
	"github.com/petcaremt/petcare-api/internal/logging"
	"github.com/petcaremt/petcare-api/internal/routes"
	"github.com/petcaremt/petcare-api/internal/seed"
)

func main() {

	logger := logging.NewLogger()
	defer logger.Sync()

	cfg := config.Load()
	db := dbpkg.NewDB(cfg, logger)

	if cfg.SeedOnStartup {
		if err := seed.Run(db, logger); err != nil {
			logger.Fatal("failed to seed database", zap.Error(err))
		}
	}

	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg, logger)

	srv := &http.Server{
		Addr:    cfg.Addr(),
		Handler: r,
	}

	go func() {
		logger.Info("server running", zap.String("addr", cfg.Addr()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("failed to start server", zap.Error(err))
		}
	}()

	// Ciclo de vida explícito: espera sinal, drena requisições, fecha o pool.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("forced shutdown", zap.Error(err))
	}

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

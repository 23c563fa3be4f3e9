package main

import (
	"go.uber.org/zap"

	"github.com/petcaremt/petcare-api/internal/config"
	dbpkg "github.com/petcaremt/petcare-api/internal/db"
	"github.com/petcaremt/petcare-api/internal/logging"
	"github.com/petcaremt/petcare-api/internal/seed"
)

func main() {
	logger := logging.NewLogger()
	defer logger.Sync()

	cfg := config.Load()
	db := dbpkg.NewDB(cfg, logger)

	if err := seed.Run(db, logger); err != nil {
		logger.Fatal("seed failed", zap.Error(err))
	}

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

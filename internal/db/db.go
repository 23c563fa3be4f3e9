package db

import (
	"time"

	"github.com/glebarez/sqlite"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/petcaremt/petcare-api/internal/config"
	"github.com/petcaremt/petcare-api/internal/models"
)

// NewDB abre o pool de conexões do processo. O driver sqlite existe para
// desenvolvimento local e testes; produção usa postgres.
func NewDB(cfg *config.Config, logger *zap.Logger) *gorm.DB {
	gormConfig := &gorm.Config{
		PrepareStmt: true,
	}

	var (
		db  *gorm.DB
		err error
	)

	switch cfg.DBDriver {
	case "sqlite":
		db, err = gorm.Open(sqlite.Open(cfg.DBUrl), gormConfig)
	default:
		db, err = gorm.Open(postgres.Open(cfg.DBUrl), gormConfig)
	}
	if err != nil {
		logger.Fatal("failed to connect database", zap.Error(err))
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.Fatal("failed to get sql.DB", zap.Error(err))
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := Migrate(db); err != nil {
		logger.Fatal("failed to migrate", zap.Error(err))
	}

	return db
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Address{},
		&models.Specialty{},
		&models.ServiceType{},
		&models.Service{},
		&models.Sitter{},
		&models.Owner{},
		&models.Pet{},
		&models.Reservation{},
		&models.Review{},
		&models.AuditLog{},
	)
}

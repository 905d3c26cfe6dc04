package db

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"github.com/hqlam/laptopshop/internal/config"
	"github.com/hqlam/laptopshop/internal/pkg/logger"
	"github.com/hqlam/laptopshop/internal/utils"
)

type Service struct {
	db  *gorm.DB
	log *logger.Logger
}

// New opens the relational store selected by cfg. Sqlite is the desktop
// deployment; postgres is kept for server-grade installs sharing the same
// schema.
func New(cfg config.DBConfig, logg *logger.Logger) (*Service, error) {
	serviceLog := logg.With("service", "DBService")

	gormLog := gormLogger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		gormLogger.Config{
			SlowThreshold:             1 * time.Second,
			LogLevel:                  gormLogger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)

	var dialector gorm.Dialector
	switch cfg.Driver {
	case "", "sqlite":
		dialector = sqlite.Open(cfg.Path)
	case "postgres":
		dialector = postgres.Open(cfg.DSN)
	default:
		return nil, fmt.Errorf("unsupported db driver %q", cfg.Driver)
	}

	gdb, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormLog,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s store: %w", cfg.Driver, err)
	}

	if cfg.Driver == "" || cfg.Driver == "sqlite" {
		if err := gdb.Exec(`PRAGMA foreign_keys = ON;`).Error; err != nil {
			return nil, fmt.Errorf("failed to enable sqlite foreign keys: %w", err)
		}
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to access underlying connection pool: %w", err)
	}
	// Single-user desktop process: one connection is enough and keeps sqlite
	// happy; overridable for the postgres deployment.
	sqlDB.SetMaxOpenConns(utils.GetEnvAsInt("LAPTOPSHOP_MAX_OPEN_CONNS", 1, serviceLog))

	return &Service{db: gdb, log: serviceLog}, nil
}

func (s *Service) DB() *gorm.DB { return s.db }

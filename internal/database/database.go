package database

import (
	"fmt"
	"time"

	"github.com/sokha-dev/showfolio/internal/config"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func ConnectReturnGormDB(cfg config.DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		cfg.DB_HOST,
		cfg.DB_PORT,
		cfg.DB_USERNAME,
		cfg.DB_PASSWORD,
		cfg.DB_DATABASE,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		// Map driver duplicate-key errors onto gorm.ErrDuplicatedKey so the
		// unique name/slug constraint surfaces as one error type.
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDb, err := db.DB()
	if err != nil {
		return nil, err
	}

	sqlDb.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDb.SetMaxIdleConns(cfg.MaxIdleConns)

	maxIdleTime, err := time.ParseDuration(cfg.MaxIdleTime)
	if err == nil {
		sqlDb.SetConnMaxIdleTime(maxIdleTime)
	}

	return db, nil
}

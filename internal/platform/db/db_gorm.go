// Package db opens the gorm connection and runs schema migrations.
package db

import (
	"fmt"
	"log/slog"
	"time"

	gpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"taskmaster/internal/config"
	authentity "taskmaster/internal/feature/auth/domain/entity"
	taskentity "taskmaster/internal/feature/tasks/domain/entity"
)

// retryInterval is the pause between connection attempts while the database
// is still coming up.
const retryInterval = 3 * time.Second

// Opener abstracts gorm.Open so connection retries are testable.
type Opener func(dsn string) (*gorm.DB, error)

// BuildDSN assembles the Postgres DSN from the loaded configuration.
func BuildDSN(cfg config.Config) string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
		cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort)
}

// ConnectWithRetry keeps attempting to open the database until it succeeds
// or the timeout elapses. Container orchestration often starts the app
// before the database accepts connections.
func ConnectWithRetry(dsn string, timeout time.Duration, open Opener) (*gorm.DB, error) {
	deadline := time.Now().Add(timeout)
	for {
		db, err := open(dsn)
		if err == nil {
			return db, nil
		}
		if time.Now().After(deadline) {
			return nil, fmt.Errorf("database connect failed after %s: %w", timeout, err)
		}
		slog.Warn("database connect failed, retrying", "error", err)
		time.Sleep(retryInterval)
	}
}

// Open connects to Postgres and, when cfg.RunMigrations is set, migrates
// the user and task tables.
func Open(cfg config.Config) (*gorm.DB, error) {
	open := func(dsn string) (*gorm.DB, error) {
		return gorm.Open(gpostgres.Open(dsn), &gorm.Config{TranslateError: true})
	}

	db, err := ConnectWithRetry(BuildDSN(cfg), 60*time.Second, open)
	if err != nil {
		return nil, err
	}

	if cfg.RunMigrations {
		if err := db.AutoMigrate(
			&authentity.User{},
			&taskentity.Task{},
		); err != nil {
			return nil, fmt.Errorf("failed to migrate: %w", err)
		}
	}

	return db, nil
}

package config

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

// NewPostgresDB opens the pool sized by the DB_* settings. Idle connections
// never exceed the open limit.
func NewPostgresDB(cfg *Config) (*sqlx.DB, error) {
	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required when STORE_DRIVER=%s", cfg.StoreDriver)
	}

	db, err := sqlx.Connect("postgres", cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}

	applyPool(db, cfg)
	return db, nil
}

func applyPool(db *sqlx.DB, cfg *Config) {
	idle := cfg.DBMaxIdleConns
	if cfg.DBMaxOpenConns > 0 && idle > cfg.DBMaxOpenConns {
		idle = cfg.DBMaxOpenConns
	}
	db.SetMaxOpenConns(cfg.DBMaxOpenConns)
	db.SetMaxIdleConns(idle)
	db.SetConnMaxLifetime(cfg.DBConnMaxLifetime)
}

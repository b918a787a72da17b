package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"eventdeck/internal/domain"

	"github.com/lib/pq"
)

// Open validates the connection string, opens a pooled *sql.DB, and pings it.
// A DSN that cannot be parsed is reported as domain.ErrStorageConfig so the
// caller can distinguish operational misconfiguration from transient failures.
func Open(ctx context.Context, dsn string) (*sql.DB, error) {
	if dsn == "" {
		return nil, fmt.Errorf("%w: empty connection string", domain.ErrStorageConfig)
	}
	if _, err := pq.ParseURL(dsn); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrStorageConfig, err)
	}

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrStorageConfig, err)
	}
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return db, nil
}

// Postgres error codes mapped to domain sentinels.
const (
	pgUniqueViolation     pq.ErrorCode = "23505"
	pgForeignKeyViolation pq.ErrorCode = "23503"
)

func isPGError(err error, code pq.ErrorCode) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == code
}

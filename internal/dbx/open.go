package dbx

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/avast/retry-go/v4"
	_ "github.com/jackc/pgx/v5/stdlib"
)

const pingDelay = 300 * time.Millisecond

// WarnLogger receives retry warnings while the database is unreachable.
type WarnLogger interface {
	Warn(ctx context.Context, msg string, args ...any)
}

// OpenPostgres opens a pgx-backed *sql.DB and pings it up to attempts times.
func OpenPostgres(ctx context.Context, dsn string, attempts uint, l WarnLogger) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}

	if attempts == 0 {
		attempts = 1
	}

	err = retry.Do(
		func() error { return db.PingContext(ctx) },
		retry.Context(ctx),
		retry.Delay(pingDelay),
		retry.Attempts(attempts),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(attempt uint, err error) {
			if l != nil {
				l.Warn(ctx, "failed ping to database", "err", err, "attempt", attempt)
			}
		}),
	)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping to database: %w", err)
	}

	return db, nil
}

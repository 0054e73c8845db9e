package database

import (
	"context"
	"fmt"
	"sync"
	"time"

	"gateguard/internal/config"
	"gateguard/internal/platform/database/postgres"
	"gateguard/internal/platform/logger"
)

// Lifecycle owns the connection pool behind the postgres schema store.
type Lifecycle struct {
	cfg    *config.DatabaseConfig
	logger logger.Logger
	db     *postgres.DB
	mu     sync.Mutex

	connect func(cfg postgres.Config) (*postgres.DB, error)
}

func NewDatabaseLifecycle(cfg *config.DatabaseConfig, log logger.Logger) *Lifecycle {
	return &Lifecycle{
		cfg:     cfg,
		logger:  log.With(logger.String("component", "postgres")),
		connect: postgres.New,
	}
}

// Start opens the pool and pings it, retrying up to POSTGRES_CONNECT_ATTEMPTS
// times with a doubling backoff. A pool left over from an earlier Start is
// closed first.
func (d *Lifecycle) Start(ctx context.Context) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.db != nil {
		d.logger.Warn("Database connection already exists, closing existing connection")
		if err := d.db.Close(); err != nil {
			d.logger.Error("Failed to close existing database connection", logger.Error(err))
		}
		d.db = nil
	}

	pg := &d.cfg.Postgres
	attempts := max(pg.ConnectAttempts, 1)
	backoff := pg.ConnectBackoff

	d.logger.Info("Starting database connection",
		logger.String("dsn", pg.Redacted()),
		logger.Int("max_attempts", attempts))

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		db, err := d.open(ctx)
		if err == nil {
			d.db = db
			d.logger.Info("Successfully connected to PostgreSQL database", logger.Int("attempt", attempt))
			return nil
		}
		lastErr = err

		if attempt == attempts {
			break
		}

		d.logger.Warn("PostgreSQL not reachable, retrying",
			logger.Int("attempt", attempt),
			logger.Duration("backoff", backoff),
			logger.Error(err))

		select {
		case <-ctx.Done():
			return fmt.Errorf("connect to postgres: %w", ctx.Err())
		case <-time.After(backoff):
		}
		backoff *= 2
	}

	return fmt.Errorf("connect to postgres after %d attempts: %w", attempts, lastErr)
}

func (d *Lifecycle) open(ctx context.Context) (*postgres.DB, error) {
	db, err := d.connect(&d.cfg.Postgres)
	if err != nil {
		d.logger.Error("Failed to create PostgreSQL connection", logger.Error(err))
		return nil, err
	}

	if err := db.Ping(ctx); err != nil {
		if closeErr := db.Close(); closeErr != nil {
			d.logger.Error("Failed to close database after ping failure", logger.Error(closeErr))
		}
		return nil, err
	}
	return db, nil
}

func (d *Lifecycle) Stop(ctx context.Context) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.db == nil {
		return nil
	}

	d.logger.Info("Closing database connection")

	done := make(chan error, 1)
	go func() {
		done <- d.db.Close()
	}()

	select {
	case err := <-done:
		d.db = nil
		if err != nil {
			d.logger.Error("Error closing database connection", logger.Error(err))
			return err
		}
		d.logger.Info("Database connection closed successfully")
		return nil
	case <-ctx.Done():
		d.logger.Warn("Database shutdown timeout, forcing close")
		d.db = nil
		return ctx.Err()
	}
}

// Connection returns the live pool, or nil before Start succeeds.
func (d *Lifecycle) Connection() *postgres.DB {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.db
}

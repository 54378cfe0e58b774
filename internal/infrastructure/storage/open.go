package storage

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/yourusername/telegram-admin-bot/internal/domain/repository"
)

// Supported DB_DRIVER values.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

// UserStore is a user repository that owns a connection.
type UserStore interface {
	repository.UserRepository
	io.Closer
}

// Options selects and configures the user store backend.
type Options struct {
	Driver      string
	SQLitePath  string
	PostgresDSN string
	Postgres    PostgresOptions
	LockTimeout time.Duration
}

// OpenUserStore opens the backend named by opts.Driver.
func OpenUserStore(ctx context.Context, opts Options) (UserStore, error) {
	switch strings.ToLower(strings.TrimSpace(opts.Driver)) {
	case "", DriverSQLite:
		return OpenSQLiteUserRepository(opts.SQLitePath, opts.LockTimeout)
	case DriverPostgres:
		if strings.TrimSpace(opts.PostgresDSN) == "" {
			return nil, fmt.Errorf("postgres dsn is required")
		}
		pgOpts := opts.Postgres
		if pgOpts.LockTimeout <= 0 {
			pgOpts.LockTimeout = opts.LockTimeout
		}
		return NewPostgresUserRepository(ctx, opts.PostgresDSN, pgOpts)
	case DriverMemory:
		return nopCloser{NewMemoryUserRepository()}, nil
	default:
		return nil, fmt.Errorf("unknown db driver %q", opts.Driver)
	}
}

type nopCloser struct {
	*MemoryUserRepository
}

func (nopCloser) Close() error { return nil }

package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/yourusername/telegram-admin-bot/internal/domain/constants"
	"github.com/yourusername/telegram-admin-bot/internal/domain/entity"
	"github.com/yourusername/telegram-admin-bot/internal/domain/repository"
)

// PostgresOptions tunes the connection retry loop and query lock timeout.
type PostgresOptions struct {
	ConnectAttempts int
	ConnectDelay    time.Duration
	LockTimeout     time.Duration
}

// PostgresUserRepository reads the users table from PostgreSQL.
type PostgresUserRepository struct {
	db          *sql.DB
	lockTimeout time.Duration
}

// NewPostgresUserRepository connects with retries and configures the pool.
func NewPostgresUserRepository(ctx context.Context, dsn string, opts PostgresOptions) (*PostgresUserRepository, error) {
	db, err := openPostgresWithRetry(ctx, dsn, opts.ConnectAttempts, opts.ConnectDelay)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)

	lockTimeout := opts.LockTimeout
	if lockTimeout <= 0 {
		lockTimeout = constants.DefaultDBLockTimeout
	}
	return &PostgresUserRepository{db: db, lockTimeout: lockTimeout}, nil
}

// Close closes the pool.
func (p *PostgresUserRepository) Close() error {
	if p == nil || p.db == nil {
		return nil
	}
	return p.db.Close()
}

func (p *PostgresUserRepository) ListUsers(ctx context.Context, onlyMissingCode bool) ([]entity.User, error) {
	ctx, cancel := context.WithTimeout(ctx, p.lockTimeout)
	defer cancel()

	query := `
	SELECT user_id, name, username, phone, code
	FROM users`
	if onlyMissingCode {
		query += `
	WHERE code IS NULL OR code = ''`
	}
	query += `
	ORDER BY user_id`

	rows, err := p.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query users: %w", err)
	}
	defer rows.Close()
	return scanUsers(rows)
}

func (p *PostgresUserRepository) GetUser(ctx context.Context, id int64) (*entity.User, error) {
	ctx, cancel := context.WithTimeout(ctx, p.lockTimeout)
	defer cancel()

	row := p.db.QueryRowContext(ctx, `
	SELECT user_id, name, username, phone, code
	FROM users
	WHERE user_id = $1`, id)
	user, err := scanUser(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrUserNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return user, nil
}

package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/yourusername/telegram-admin-bot/internal/domain/constants"
	"github.com/yourusername/telegram-admin-bot/internal/domain/entity"
	"github.com/yourusername/telegram-admin-bot/internal/domain/repository"
	_ "modernc.org/sqlite"
)

// SQLiteUserRepository reads the bot's users table from a SQLite file.
// The table itself is owned by the registration flow:
//
//	users(user_id INTEGER PRIMARY KEY, name TEXT, username TEXT, phone TEXT, code TEXT)
type SQLiteUserRepository struct {
	db          *sql.DB
	lockTimeout time.Duration
}

// OpenSQLiteUserRepository opens the SQLite database at path read-only. The
// file must already exist. lockTimeout bounds how long a query waits for a
// locked database.
func OpenSQLiteUserRepository(path string, lockTimeout time.Duration) (*SQLiteUserRepository, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("sqlite path is required")
	}
	if lockTimeout <= 0 {
		lockTimeout = constants.DefaultDBLockTimeout
	}

	dsn := fmt.Sprintf("file:%s?mode=ro&_pragma=busy_timeout(%d)",
		filepath.ToSlash(filepath.Clean(path)), lockTimeout.Milliseconds())
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	return &SQLiteUserRepository{db: db, lockTimeout: lockTimeout}, nil
}

// Close closes the underlying database.
func (s *SQLiteUserRepository) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *SQLiteUserRepository) ListUsers(ctx context.Context, onlyMissingCode bool) ([]entity.User, error) {
	ctx, cancel := context.WithTimeout(ctx, s.lockTimeout)
	defer cancel()

	query := `SELECT user_id, name, username, phone, code FROM users`
	if onlyMissingCode {
		query += ` WHERE code IS NULL OR code = ''`
	}
	query += ` ORDER BY rowid`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query users: %w", err)
	}
	defer rows.Close()
	return scanUsers(rows)
}

func (s *SQLiteUserRepository) GetUser(ctx context.Context, id int64) (*entity.User, error) {
	ctx, cancel := context.WithTimeout(ctx, s.lockTimeout)
	defer cancel()

	row := s.db.QueryRowContext(ctx, `SELECT user_id, name, username, phone, code FROM users WHERE user_id = ?`, id)
	user, err := scanUser(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrUserNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return user, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

// scanUser maps nullable text columns to empty strings.
func scanUser(row rowScanner) (*entity.User, error) {
	var (
		u                           entity.User
		name, username, phone, code sql.NullString
	)
	if err := row.Scan(&u.ID, &name, &username, &phone, &code); err != nil {
		return nil, err
	}
	u.Name = name.String
	u.Username = username.String
	u.Phone = phone.String
	u.Code = code.String
	return &u, nil
}

func scanUsers(rows *sql.Rows) ([]entity.User, error) {
	users := make([]entity.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, *u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return users, nil
}

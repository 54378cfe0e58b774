package repository

import (
	"context"
	"errors"

	"github.com/yourusername/telegram-admin-bot/internal/domain/entity"
)

// ErrUserNotFound is returned when no user row matches the requested id.
var ErrUserNotFound = errors.New("user not found")

// UserRepository foydalanuvchilar jadvali uchun read-only interface
type UserRepository interface {
	// ListUsers returns every user in store order; with onlyMissingCode it keeps
	// only rows whose code is NULL or empty.
	ListUsers(ctx context.Context, onlyMissingCode bool) ([]entity.User, error)

	// GetUser returns ErrUserNotFound when the id is unknown.
	GetUser(ctx context.Context, id int64) (*entity.User, error)
}

package storage

import (
	"context"
	"sync"

	"github.com/yourusername/telegram-admin-bot/internal/domain/entity"
	"github.com/yourusername/telegram-admin-bot/internal/domain/repository"
)

// MemoryUserRepository keeps users in insertion order. Used as a fallback
// when no database is configured and as a fixture in tests.
type MemoryUserRepository struct {
	mu    sync.RWMutex
	users []entity.User
}

// NewMemoryUserRepository in-memory user repository yaratish
func NewMemoryUserRepository(users ...entity.User) *MemoryUserRepository {
	repo := &MemoryUserRepository{}
	for _, u := range users {
		repo.Add(u)
	}
	return repo
}

// Add inserts a user or replaces the row with the same id in place.
func (m *MemoryUserRepository) Add(user entity.User) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.users {
		if m.users[i].ID == user.ID {
			m.users[i] = user
			return
		}
	}
	m.users = append(m.users, user)
}

// ListUsers foydalanuvchilar ro'yxatini olish
func (m *MemoryUserRepository) ListUsers(ctx context.Context, onlyMissingCode bool) ([]entity.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]entity.User, 0, len(m.users))
	for _, u := range m.users {
		if onlyMissingCode && u.HasCode() {
			continue
		}
		out = append(out, u)
	}
	return out, nil
}

// GetUser bitta foydalanuvchini id bo'yicha olish
func (m *MemoryUserRepository) GetUser(ctx context.Context, id int64) (*entity.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, u := range m.users {
		if u.ID == id {
			found := u
			return &found, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

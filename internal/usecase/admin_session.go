package usecase

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/yourusername/telegram-admin-bot/internal/domain/constants"
)

// AdminSession holds one admin's panel state between button presses.
type AdminSession struct {
	AdminID  int64
	FilterOn bool
	Page     int

	// Panel message currently showing the listing, and the text rendered into it.
	ChatID    int64
	MessageID int
	LastView  string

	LastSeen time.Time
}

// SessionManager owns admin sessions: created on first interaction, evicted
// after idleTimeout without activity, lost on restart.
type SessionManager struct {
	mu          sync.Mutex
	sessions    map[int64]*AdminSession
	idleTimeout time.Duration
	now         func() time.Time
}

// NewSessionManager yangi sessiya menejeri yaratish
func NewSessionManager(idleTimeout time.Duration) *SessionManager {
	if idleTimeout <= 0 {
		idleTimeout = constants.DefaultSessionIdleTimeout
	}
	return &SessionManager{
		sessions:    make(map[int64]*AdminSession),
		idleTimeout: idleTimeout,
		now:         time.Now,
	}
}

// caller holds m.mu
func (m *SessionManager) session(adminID int64) *AdminSession {
	s, ok := m.sessions[adminID]
	if !ok {
		s = &AdminSession{AdminID: adminID, Page: 1}
		m.sessions[adminID] = s
	}
	s.LastSeen = m.now()
	return s
}

// Get returns a copy of the admin's session, creating it on first use.
func (m *SessionManager) Get(adminID int64) AdminSession {
	m.mu.Lock()
	defer m.mu.Unlock()
	return *m.session(adminID)
}

// Update applies fn to the admin's session under the lock and returns the result.
func (m *SessionManager) Update(adminID int64, fn func(s *AdminSession)) AdminSession {
	m.mu.Lock()
	defer m.mu.Unlock()
	s := m.session(adminID)
	fn(s)
	return *s
}

// ToggleFilter flips the "only without code" filter and resets to page 1.
func (m *SessionManager) ToggleFilter(adminID int64) AdminSession {
	return m.Update(adminID, func(s *AdminSession) {
		s.FilterOn = !s.FilterOn
		s.Page = 1
	})
}

// Remember records the panel message and the page rendered into it.
func (m *SessionManager) Remember(adminID int64, page int, chatID int64, messageID int, view string) {
	m.Update(adminID, func(s *AdminSession) {
		s.Page = page
		s.ChatID = chatID
		s.MessageID = messageID
		s.LastView = view
	})
}

// Len returns the number of live sessions.
func (m *SessionManager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

// EvictIdle removes sessions idle longer than the timeout and returns how many went.
func (m *SessionManager) EvictIdle(now time.Time) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	removed := 0
	for id, s := range m.sessions {
		if now.Sub(s.LastSeen) > m.idleTimeout {
			delete(m.sessions, id)
			removed++
		}
	}
	return removed
}

// Run evicts idle sessions every interval until ctx is done.
func (m *SessionManager) Run(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = constants.SessionCleanupInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := m.EvictIdle(m.now()); n > 0 {
				log.Printf("♻️ %d ta admin sessiya tozalandi (timeout)", n)
			}
		}
	}
}

package entity

import "strings"

// User botda ro'yxatdan o'tgan foydalanuvchi
type User struct {
	ID       int64  `json:"user_id"`
	Name     string `json:"name"`
	Username string `json:"username,omitempty"` // Ixtiyoriy
	Phone    string `json:"phone"`
	Code     string `json:"code,omitempty"` // Tasdiqlash kodi, ixtiyoriy
}

// HasCode reports whether a verification code is stored for the user. It
// matches the SQL filter on NULL or empty code, so "  " counts as a code.
func (u User) HasCode() bool {
	return u.Code != ""
}

// Handle returns "@username", or "" when no username is known.
func (u User) Handle() string {
	name := strings.TrimPrefix(strings.TrimSpace(u.Username), "@")
	if name == "" {
		return ""
	}
	return "@" + name
}

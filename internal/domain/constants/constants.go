package constants

import "time"

// Admin panel konstantalari
const (
	// PageSize bitta sahifadagi foydalanuvchilar soni
	PageSize = 3

	// DefaultDBLockTimeout bazadagi lock uchun kutish vaqti
	DefaultDBLockTimeout = 10 * time.Second

	// DefaultSessionIdleTimeout admin sessiyasi shu vaqt ishlatilmasa o'chiriladi
	DefaultSessionIdleTimeout = 2 * time.Hour

	// SessionCleanupInterval sessiyalarni tozalash oralig'i
	SessionCleanupInterval = 15 * time.Minute
)

// Eksport fayl konstantalari
const (
	UsernamePlaceholder = "Не указан"
	CodePlaceholder     = "—"
)

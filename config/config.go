package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/yourusername/telegram-admin-bot/internal/domain/constants"
)

// Config ilovaning konfiguratsiyasi
type Config struct {
	TelegramToken     string  `env:"TELEGRAM_BOT_TOKEN"`
	AdminChatID       int64   `env:"ADMIN_CHAT_ID"`
	AdminIDs          []int64 `env:"ADMIN_IDS" envSeparator:","`
	AllowEmptySecrets bool    `env:"ALLOW_EMPTY_SECRETS" envDefault:"false"`

	DBDriver      string        `env:"DB_DRIVER" envDefault:"sqlite"`
	SQLitePath    string        `env:"SQLITE_PATH" envDefault:"bot.db"`
	DBLockTimeout time.Duration `env:"DB_LOCK_TIMEOUT"`

	PostgresDSN      string `env:"POSTGRES_DSN"`
	PostgresHost     string `env:"POSTGRES_HOST"`
	PostgresPort     string `env:"POSTGRES_PORT"`
	PostgresUser     string `env:"POSTGRES_USER"`
	PostgresPassword string `env:"POSTGRES_PASSWORD"`
	PostgresDB       string `env:"POSTGRES_DB"`
	PostgresSSLMode  string `env:"POSTGRES_SSLMODE"`

	PostgresConnectAttempts     int `env:"POSTGRES_CONNECT_MAX_ATTEMPTS" envDefault:"20"`
	PostgresConnectRetrySeconds int `env:"POSTGRES_CONNECT_RETRY_SECONDS" envDefault:"2"`

	ExportDir          string        `env:"EXPORT_DIR"`
	SessionIdleTimeout time.Duration `env:"SESSION_IDLE_TIMEOUT"`
}

// Load konfiguratsiyani yuklash
func Load() (*Config, error) {
	// .env faylini yuklash (mavjud bo'lsa)
	_ = godotenv.Load()
	return Parse()
}

// Parse reads the process environment into a Config without touching .env.
func Parse() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	c.DBDriver = strings.ToLower(strings.TrimSpace(c.DBDriver))
	if c.DBLockTimeout <= 0 {
		c.DBLockTimeout = constants.DefaultDBLockTimeout
	}
	if c.SessionIdleTimeout <= 0 {
		c.SessionIdleTimeout = constants.DefaultSessionIdleTimeout
	}
	if strings.TrimSpace(c.ExportDir) == "" {
		c.ExportDir = os.TempDir()
	}
}

// Validate checks required settings. With AllowEmptySecrets the token and
// admin chat may be missing; main then waits for a signal instead of starting.
func (c *Config) Validate() error {
	switch c.DBDriver {
	case "sqlite", "postgres", "memory":
	default:
		return fmt.Errorf("DB_DRIVER noto'g'ri: %q (sqlite, postgres yoki memory)", c.DBDriver)
	}
	if c.DBDriver == "sqlite" && strings.TrimSpace(c.SQLitePath) == "" {
		return fmt.Errorf("SQLITE_PATH environment variable bo'sh")
	}

	if c.AllowEmptySecrets {
		return nil
	}
	if strings.TrimSpace(c.TelegramToken) == "" {
		return fmt.Errorf("TELEGRAM_BOT_TOKEN environment variable bo'sh")
	}
	if c.AdminChatID == 0 {
		return fmt.Errorf("ADMIN_CHAT_ID environment variable bo'sh")
	}
	return nil
}

// PostgresConnectDelay is the pause between connection attempts.
func (c *Config) PostgresConnectDelay() time.Duration {
	return time.Duration(c.PostgresConnectRetrySeconds) * time.Second
}

// IsAdmin reports whether userID may open the panel. An empty ADMIN_IDS list
// admits everybody; the export recipient is always admitted.
func (c *Config) IsAdmin(userID int64) bool {
	if len(c.AdminIDs) == 0 {
		return true
	}
	if c.AdminChatID != 0 && userID == c.AdminChatID {
		return true
	}
	for _, id := range c.AdminIDs {
		if id == userID {
			return true
		}
	}
	return false
}

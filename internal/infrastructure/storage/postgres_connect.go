package storage

import (
	"context"
	"database/sql"
	"fmt"
	"net"
	"net/url"
	"strings"
	"time"

	_ "github.com/lib/pq"
)

const (
	postgresConnectAttemptsDefault = 20
	postgresConnectDelayDefault    = 2 * time.Second
)

// PostgresParams describes a connection when no full DSN is given.
type PostgresParams struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// BuildPostgresDSN assembles a postgres:// URL. It returns "" when host,
// user or database name is missing.
func BuildPostgresDSN(p PostgresParams) string {
	host := strings.TrimSpace(p.Host)
	user := strings.TrimSpace(p.User)
	db := strings.TrimPrefix(strings.TrimSpace(p.DBName), "/")
	if host == "" || user == "" || db == "" {
		return ""
	}
	port := strings.TrimSpace(p.Port)
	if port == "" {
		port = "5432"
	}
	sslmode := strings.TrimSpace(p.SSLMode)
	if sslmode == "" {
		sslmode = "disable"
	}

	u := url.URL{
		Scheme: "postgres",
		Host:   net.JoinHostPort(host, port),
		Path:   "/" + db,
	}
	if p.Password == "" {
		u.User = url.User(user)
	} else {
		u.User = url.UserPassword(user, p.Password)
	}
	q := u.Query()
	q.Set("sslmode", sslmode)
	u.RawQuery = q.Encode()
	return u.String()
}

// openPostgresWithRetry waits for the database to come up (docker-compose
// starts the bot and postgres together).
func openPostgresWithRetry(ctx context.Context, dsn string, attempts int, delay time.Duration) (*sql.DB, error) {
	if attempts <= 0 {
		attempts = postgresConnectAttemptsDefault
	}
	if delay <= 0 {
		delay = postgresConnectDelayDefault
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		db, err := sql.Open("postgres", dsn)
		if err == nil {
			if pingErr := db.PingContext(ctx); pingErr == nil {
				return db, nil
			} else {
				err = pingErr
			}
		}
		if db != nil {
			_ = db.Close()
		}
		lastErr = err
		if attempt < attempts {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(delay):
			}
		}
	}
	if lastErr == nil {
		lastErr = fmt.Errorf("postgres connection failed")
	}
	return nil, lastErr
}

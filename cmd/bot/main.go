package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/yourusername/telegram-admin-bot/config"
	"github.com/yourusername/telegram-admin-bot/internal/delivery/telegram"
	"github.com/yourusername/telegram-admin-bot/internal/infrastructure/storage"
	"github.com/yourusername/telegram-admin-bot/internal/usecase"
	"github.com/yourusername/telegram-admin-bot/pkg/logger"
)

func main() {
	initDefaultTimezone()

	// Logger ni ishga tushirish
	logger.Init()
	defer func() { _ = logger.Sync() }()
	logger.InfoLogger.Println("🚀 Ilova ishga tushmoqda...")

	// Konfiguratsiyani yuklash
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Konfiguratsiya yuklanmadi: %v", err)
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	if cfg.AllowEmptySecrets {
		missing := []string{}
		if isEmptyOrDisabled(cfg.TelegramToken) {
			missing = append(missing, "TELEGRAM_BOT_TOKEN")
		}
		if cfg.AdminChatID == 0 {
			missing = append(missing, "ADMIN_CHAT_ID")
		}
		if len(missing) > 0 {
			logger.InfoLogger.Printf("Secretlar yetishmayapti (%s). Bot vaqtincha ishga tushmaydi.", strings.Join(missing, ", "))
			<-sigChan
			return
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// 1. User store
	store, err := storage.OpenUserStore(ctx, storeOptions(cfg))
	if err != nil {
		log.Fatalf("❌ Baza ochilmadi (%s): %v", cfg.DBDriver, err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.ErrorLogger.Printf("Bazani yopishda xatolik: %v", err)
		}
	}()
	logger.InfoLogger.Printf("✅ Baza tayyor (%s)", cfg.DBDriver)

	// 2. Use cases
	adminPanel := usecase.NewAdminPanelUseCase(store, cfg.ExportDir)
	sessions := usecase.NewSessionManager(cfg.SessionIdleTimeout)
	logger.InfoLogger.Println("✅ Use cases tayyor")

	// 3. Telegram bot handler
	botHandler, err := telegram.NewBotHandler(
		cfg.TelegramToken,
		cfg.AdminChatID,
		cfg.IsAdmin,
		adminPanel,
		sessions,
	)
	if err != nil {
		log.Fatalf("❌ Bot handler yaratilmadi: %v", err)
	}
	logger.InfoLogger.Printf("✅ Telegram bot tayyor: @%s", botHandler.GetBotUsername())

	done := make(chan struct{})
	go func() {
		defer close(done)
		if err := botHandler.Start(ctx); !isCleanStop(err) {
			logger.ErrorLogger.Printf("❌ Bot xatosi: %v", err)
		}
	}()

	logger.InfoLogger.Println("🤖 Bot ishlayapti. To'xtatish uchun Ctrl+C ni bosing.")

	// Signal kutish
	select {
	case <-sigChan:
		logger.InfoLogger.Println("⏳ To'xtatish signali qabul qilindi...")
	case <-done:
		logger.InfoLogger.Println("⏳ Update kanali yopildi...")
	}

	// Graceful shutdown
	cancel()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		logger.ErrorLogger.Println("Bot 5 soniyada to'xtamadi")
	}
	logger.InfoLogger.Println("✅ Bot to'xtatildi.")
}

func storeOptions(cfg *config.Config) storage.Options {
	dsn := strings.TrimSpace(cfg.PostgresDSN)
	if dsn == "" {
		dsn = storage.BuildPostgresDSN(storage.PostgresParams{
			Host:     cfg.PostgresHost,
			Port:     cfg.PostgresPort,
			User:     cfg.PostgresUser,
			Password: cfg.PostgresPassword,
			DBName:   cfg.PostgresDB,
			SSLMode:  cfg.PostgresSSLMode,
		})
	}
	return storage.Options{
		Driver:      cfg.DBDriver,
		SQLitePath:  cfg.SQLitePath,
		PostgresDSN: dsn,
		Postgres: storage.PostgresOptions{
			ConnectAttempts: cfg.PostgresConnectAttempts,
			ConnectDelay:    cfg.PostgresConnectDelay(),
		},
		LockTimeout: cfg.DBLockTimeout,
	}
}

// isCleanStop reports whether Start returned because of shutdown, not failure.
func isCleanStop(err error) bool {
	return err == nil || errors.Is(err, context.Canceled)
}

func initDefaultTimezone() {
	const tzName = "Asia/Tashkent"
	if loc, err := time.LoadLocation(tzName); err == nil {
		time.Local = loc
		return
	}
	time.Local = time.FixedZone(tzName, 5*60*60)
}

func isEmptyOrDisabled(value string) bool {
	value = strings.TrimSpace(value)
	if value == "" {
		return true
	}
	return strings.EqualFold(value, "disabled")
}

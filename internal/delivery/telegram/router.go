package telegram

import (
	"context"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/yourusername/telegram-admin-bot/internal/domain/constants"
)

// Start botni ishga tushirish
func (h *BotHandler) Start(ctx context.Context) error {
	go h.sessions.Run(ctx, constants.SessionCleanupInterval)

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := h.bot.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			h.bot.StopReceivingUpdates()
			return ctx.Err()
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			h.dispatch(ctx, update)
		}
	}
}

func (h *BotHandler) dispatch(ctx context.Context, update tgbotapi.Update) {
	if update.CallbackQuery != nil {
		go h.handleCallback(ctx, update.CallbackQuery)
		return
	}
	if update.Message == nil {
		return
	}
	go h.handleMessage(ctx, update.Message)
}

// handleMessage xabarni qayta ishlash
func (h *BotHandler) handleMessage(ctx context.Context, message *tgbotapi.Message) {
	if message == nil || message.From == nil || message.Chat == nil {
		return
	}
	if message.IsCommand() || strings.HasPrefix(strings.TrimSpace(message.Text), "/") {
		h.handleCommand(ctx, message)
	}
}

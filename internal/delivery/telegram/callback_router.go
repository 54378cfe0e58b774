package telegram

import (
	"context"
	"errors"
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Callback query larini qayta ishlash
func (h *BotHandler) handleCallback(ctx context.Context, cq *tgbotapi.CallbackQuery) {
	if cq == nil || cq.From == nil {
		return
	}
	// Inline-mode messages carry no chat; the panel never produces them.
	if cq.Message == nil || cq.Message.Chat == nil {
		h.answerCallback(cq, "", false)
		return
	}

	if !h.isAdmin(cq.From.ID) {
		h.answerCallback(cq, msgAdminOnly, true)
		return
	}

	action, err := decodeCallback(cq.Data)
	if err != nil {
		h.handleCallbackDecodeError(cq, err)
		return
	}

	switch a := action.(type) {
	case viewUsersAction:
		h.handleViewUsers(ctx, cq)
	case pageAction:
		h.handlePage(ctx, cq, a)
	case toggleFilterAction:
		h.handleToggleFilter(ctx, cq)
	case userDetailsAction:
		h.handleUserDetails(ctx, cq, a.UserID)
	case exportAllAction:
		h.handleExportAll(ctx, cq)
	default:
		log.Printf("callback action without handler: %T", action)
		h.answerCallback(cq, "", false)
	}
}

func (h *BotHandler) handleCallbackDecodeError(cq *tgbotapi.CallbackQuery, err error) {
	var cbErr *callbackError
	if errors.Is(err, errUnknownCallback) || !errors.As(err, &cbErr) {
		log.Printf("unknown callback from %d: %v", cq.From.ID, err)
		h.answerCallback(cq, "", false)
		return
	}
	log.Printf("malformed callback from %d: %v", cq.From.ID, err)
	switch cbErr.kind {
	case cbUserDetails:
		h.answerCallback(cq, msgBadUserID, true)
	default:
		h.answerCallback(cq, msgBadPage, true)
	}
}

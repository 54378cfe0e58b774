package telegram

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/yourusername/telegram-admin-bot/internal/domain/repository"
)

// handleUserDetails writes the user's record to a file, sends it to the admin
// chat and removes the file whatever the outcome.
func (h *BotHandler) handleUserDetails(ctx context.Context, cq *tgbotapi.CallbackQuery, userID int64) {
	export, err := h.adminPanel.ExportUser(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			h.answerCallback(cq, msgFileNotFound, true)
			return
		}
		log.Printf("user export error: %v", err)
		h.answerCallback(cq, msgDatabaseError, true)
		return
	}
	defer func() {
		if err := export.Remove(); err != nil {
			log.Printf("user export cleanup error: %v", err)
		}
	}()

	f, err := os.Open(export.Path)
	if err != nil {
		log.Printf("user export open error: %v", err)
		h.answerCallback(cq, msgFileSendFailed, true)
		return
	}
	defer f.Close()

	doc := tgbotapi.NewDocument(h.adminChatID, tgbotapi.FileReader{Name: export.FileName(), Reader: f})
	doc.Caption = export.Caption
	if _, err := h.bot.Send(doc); err != nil {
		logSendError("user export", err)
		h.answerCallback(cq, msgFileSendFailed, true)
		return
	}
	h.answerCallback(cq, msgFileSent, false)
}

// handleExportAll sends every user as an XLSX workbook to the requesting chat.
func (h *BotHandler) handleExportAll(ctx context.Context, cq *tgbotapi.CallbackQuery) {
	if err := h.sendAllUsersXLSX(ctx, cq.Message.Chat.ID); err != nil {
		h.answerCallback(cq, msgExportAllFailed, true)
		return
	}
	h.answerCallback(cq, msgExportAllSent, false)
}

func (h *BotHandler) sendAllUsersXLSX(ctx context.Context, chatID int64) error {
	data, count, err := h.adminPanel.ExportAllXLSX(ctx)
	if err != nil {
		log.Printf("user export xlsx error: %v", err)
		return err
	}

	filename := fmt.Sprintf("users_%s.xlsx", time.Now().Format("20060102_150405"))
	doc := tgbotapi.NewDocument(chatID, tgbotapi.FileBytes{Name: filename, Bytes: data})
	doc.Caption = fmt.Sprintf("👥 Экспорт пользователей\nВсего: %d", count)
	if _, err := h.bot.Send(doc); err != nil {
		logSendError("user export xlsx", err)
		return err
	}
	return nil
}

package telegram

import (
	"context"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// commandName returns the command without "/" and "@botname".
func commandName(message *tgbotapi.Message) string {
	if message.IsCommand() {
		return strings.ToLower(message.Command())
	}
	fields := strings.Fields(strings.TrimSpace(message.Text))
	if len(fields) == 0 {
		return ""
	}
	name := strings.TrimPrefix(fields[0], "/")
	if at := strings.Index(name, "@"); at >= 0 {
		name = name[:at]
	}
	return strings.ToLower(name)
}

func (h *BotHandler) handleCommand(ctx context.Context, message *tgbotapi.Message) {
	cmd := commandName(message)
	switch cmd {
	case "start", "admin", "users", "export_users":
	default:
		return
	}

	if !h.isAdmin(message.From.ID) {
		h.sendMessage(message.Chat.ID, msgAdminOnly)
		return
	}

	switch cmd {
	case "start", "admin":
		h.sendAdminMenu(message.Chat.ID)
	case "users":
		h.sendUsersPanel(ctx, message.From.ID, message.Chat.ID)
	case "export_users":
		h.deleteCommandMessage(message)
		if err := h.sendAllUsersXLSX(ctx, message.Chat.ID); err != nil {
			h.sendMessage(message.Chat.ID, msgExportAllFailed)
		}
	}
}

func adminMenuKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("👥 Пользователи", viewUsersAction{}.callbackData()),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(btnExportAll, exportAllAction{}.callbackData()),
		),
	)
}

func (h *BotHandler) sendAdminMenu(chatID int64) {
	if _, err := h.sendText(chatID, "🛠 <b>Админ-панель</b>", tgbotapi.ModeHTML, adminMenuKeyboard()); err != nil {
		logSendError("admin menu", err)
	}
}

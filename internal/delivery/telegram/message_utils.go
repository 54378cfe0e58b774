package telegram

import (
	"log"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// deleteMessage xabarni o'chirish. Failures are cosmetic: logged and swallowed.
func (h *BotHandler) deleteMessage(chatID int64, msgID int) bool {
	if h.bot == nil || chatID == 0 || msgID == 0 {
		return false
	}
	del := tgbotapi.NewDeleteMessage(chatID, msgID)
	if _, err := h.bot.Request(del); err != nil {
		log.Printf("Не удалось удалить сообщение: %v", err)
		return false
	}
	return true
}

// deleteCommandMessage komanda xabarini o'chirish, qayta urinish bilan
func (h *BotHandler) deleteCommandMessage(msg *tgbotapi.Message) {
	if msg == nil || msg.Chat == nil {
		return
	}
	chatID := msg.Chat.ID
	msgID := msg.MessageID
	if h.deleteMessage(chatID, msgID) {
		return
	}
	go func() {
		time.Sleep(500 * time.Millisecond)
		h.deleteMessage(chatID, msgID)
	}()
}

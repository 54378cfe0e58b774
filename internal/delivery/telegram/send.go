package telegram

import (
	"fmt"
	"log"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// sendText sends a message with optional parseMode/replyMarkup.
func (h *BotHandler) sendText(chatID int64, text string, parseMode string, replyMarkup interface{}) (*tgbotapi.Message, error) {
	if h.bot == nil {
		return nil, fmt.Errorf("telegram bot is nil")
	}
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = parseMode
	if replyMarkup != nil {
		msg.ReplyMarkup = replyMarkup
	}
	sent, err := h.bot.Send(msg)
	if err != nil {
		return nil, err
	}
	return &sent, nil
}

// sendMessage oddiy xabar yuborish
func (h *BotHandler) sendMessage(chatID int64, text string) {
	if strings.TrimSpace(text) == "" {
		log.Printf("⚠️ Bo'sh xabar yuborilmoqchi bo'ldi! ChatID: %d", chatID)
		return
	}
	if _, err := h.sendText(chatID, text, "", nil); err != nil {
		log.Printf("Xabar yuborishda xatolik: %v", err)
	}
}

// editText replaces the text and inline keyboard of a bot message.
func (h *BotHandler) editText(chatID int64, messageID int, text string, markup tgbotapi.InlineKeyboardMarkup) error {
	if h.bot == nil {
		return fmt.Errorf("telegram bot is nil")
	}
	edit := tgbotapi.NewEditMessageTextAndMarkup(chatID, messageID, text, markup)
	edit.ParseMode = tgbotapi.ModeHTML
	_, err := h.bot.Send(edit)
	return err
}

// answerCallback stops the button spinner; alert shows a modal notice.
func (h *BotHandler) answerCallback(cq *tgbotapi.CallbackQuery, text string, alert bool) {
	if h.bot == nil || cq == nil {
		return
	}
	callback := tgbotapi.NewCallback(cq.ID, text)
	callback.ShowAlert = alert
	if _, err := h.bot.Request(callback); err != nil {
		log.Printf("Callback javobida xatolik: %v", err)
	}
}

func logSendError(what string, err error) {
	log.Printf("%s send error: %v", what, err)
}

// isNotModifiedError matches Telegram's reply to an edit that changes nothing.
func isNotModifiedError(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(strings.ToLower(err.Error()), "message is not modified")
}

package telegram

import (
	"context"
	"fmt"
	"html"
	"log"
	"regexp"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/yourusername/telegram-admin-bot/internal/domain/entity"
	"github.com/yourusername/telegram-admin-bot/internal/usecase"
)

func escapeHTML(s string) string {
	return tgbotapi.EscapeText(tgbotapi.ModeHTML, s)
}

// renderUserCard formats one user block of the listing.
func renderUserCard(u entity.User) string {
	handle := u.Handle()
	if handle == "" {
		handle = usernameNotProvided
	}
	codeStatus := codeStatusMissing
	if u.HasCode() {
		codeStatus = codeStatusPresent
	}
	return fmt.Sprintf(
		"👤 <b>Имя:</b> %s\n"+
			"🔗 <b>Username:</b> %s\n"+
			"📱 <b>Телефон:</b> <code>%s</code>\n"+
			"🆔 <b>ID:</b> %d\n"+
			"🔢 <b>КОД:</b> %s",
		escapeHTML(u.Name), escapeHTML(handle), escapeHTML(u.Phone), u.ID, codeStatus)
}

// renderUsersPage builds the HTML text of a listing page.
func renderUsersPage(view usecase.PageView) string {
	cards := make([]string, 0, len(view.Users))
	for _, u := range view.Users {
		cards = append(cards, renderUserCard(u))
	}
	return fmt.Sprintf("📋 <b>Список пользователей (страница %d/%d):</b>\n\n%s\n\n%s",
		view.Page, view.TotalPages, strings.Join(cards, "\n\n"), msgPanelFooter)
}

// usersKeyboard: one download row per user, navigation, filter toggle, bulk export.
func usersKeyboard(view usecase.PageView) tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(view.Users)+3)
	for _, u := range view.Users {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📄 Скачать: "+u.Name, userDetailsAction{UserID: u.ID}.callbackData()),
		))
	}

	var nav []tgbotapi.InlineKeyboardButton
	if view.HasPrev() {
		nav = append(nav, tgbotapi.NewInlineKeyboardButtonData(btnPrev, pageAction{Page: view.Page - 1, Direction: pagePrev}.callbackData()))
	}
	if view.HasNext() {
		nav = append(nav, tgbotapi.NewInlineKeyboardButtonData(btnNext, pageAction{Page: view.Page + 1, Direction: pageNext}.callbackData()))
	}
	if len(nav) > 0 {
		rows = append(rows, nav)
	}

	status := filterStatusOff
	if view.FilterOn {
		status = filterStatusOn
	}
	rows = append(rows,
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(fmt.Sprintf("🔍 Показать только без кода (%s)", status), toggleFilterAction{}.callbackData()),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(btnExportAll, exportAllAction{}.callbackData()),
		),
	)
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

var reHTMLTag = regexp.MustCompile(`<[^>]*>`)

// plainText approximates what Telegram stores in Message.Text for HTML we sent.
func plainText(htmlText string) string {
	return html.UnescapeString(reHTMLTag.ReplaceAllString(htmlText, ""))
}

// sameView reports whether text is already shown in msg. The session copy is
// authoritative for the panel message it tracks; other messages (sent before a
// restart) are compared by their plain text.
func sameView(session usecase.AdminSession, msg *tgbotapi.Message, text string) bool {
	if msg == nil {
		return false
	}
	if session.MessageID != 0 && session.MessageID == msg.MessageID {
		return session.LastView == text
	}
	return strings.TrimSpace(msg.Text) == strings.TrimSpace(plainText(text))
}

// loadPage computes a page and answers the callback itself on empty/error.
func (h *BotHandler) loadPage(ctx context.Context, cq *tgbotapi.CallbackQuery, filterOn bool, page int) (usecase.PageView, bool) {
	view, err := h.adminPanel.ComputePage(ctx, filterOn, page)
	if err != nil {
		log.Printf("admin panel page error: %v", err)
		h.answerCallback(cq, msgDatabaseError, true)
		return view, false
	}
	if view.Empty() {
		h.answerCallback(cq, msgNoUsers, true)
		return view, false
	}
	return view, true
}

// handleViewUsers replaces the menu message with page 1 of the listing.
func (h *BotHandler) handleViewUsers(ctx context.Context, cq *tgbotapi.CallbackQuery) {
	adminID := cq.From.ID
	session := h.sessions.Get(adminID)

	view, ok := h.loadPage(ctx, cq, session.FilterOn, 1)
	if !ok {
		return
	}
	text := renderUsersPage(view)

	chatID := cq.Message.Chat.ID
	h.deleteMessage(chatID, cq.Message.MessageID)

	sent, err := h.sendText(chatID, text, tgbotapi.ModeHTML, usersKeyboard(view))
	if err != nil {
		logSendError("users page", err)
		h.answerCallback(cq, msgPanelEditFailed, true)
		return
	}
	h.answerCallback(cq, "", false)
	h.sessions.Remember(adminID, view.Page, chatID, sent.MessageID, text)
}

// sendUsersPanel sends the listing as a new message (the /users command).
func (h *BotHandler) sendUsersPanel(ctx context.Context, adminID, chatID int64) {
	session := h.sessions.Get(adminID)
	view, err := h.adminPanel.ComputePage(ctx, session.FilterOn, 1)
	if err != nil {
		log.Printf("admin panel page error: %v", err)
		h.sendMessage(chatID, msgDatabaseError)
		return
	}
	if view.Empty() {
		h.sendMessage(chatID, msgNoUsers)
		return
	}
	text := renderUsersPage(view)
	sent, err := h.sendText(chatID, text, tgbotapi.ModeHTML, usersKeyboard(view))
	if err != nil {
		logSendError("users page", err)
		return
	}
	h.sessions.Remember(adminID, view.Page, chatID, sent.MessageID, text)
}

// handlePage edits the panel message to the requested page (clamped).
func (h *BotHandler) handlePage(ctx context.Context, cq *tgbotapi.CallbackQuery, action pageAction) {
	adminID := cq.From.ID
	session := h.sessions.Get(adminID)

	view, ok := h.loadPage(ctx, cq, session.FilterOn, action.Page)
	if !ok {
		return
	}
	h.showPage(cq, adminID, view)
}

// handleToggleFilter flips the admin's filter and shows page 1 of the new view.
func (h *BotHandler) handleToggleFilter(ctx context.Context, cq *tgbotapi.CallbackQuery) {
	adminID := cq.From.ID
	session := h.sessions.ToggleFilter(adminID)

	view, ok := h.loadPage(ctx, cq, session.FilterOn, 1)
	if !ok {
		return
	}
	if sameView(session, cq.Message, renderUsersPage(view)) {
		h.answerCallback(cq, msgAlreadyUpToDate, true)
		return
	}
	h.showPage(cq, adminID, view)
}

func (h *BotHandler) showPage(cq *tgbotapi.CallbackQuery, adminID int64, view usecase.PageView) {
	chatID := cq.Message.Chat.ID
	msgID := cq.Message.MessageID
	text := renderUsersPage(view)

	if err := h.editText(chatID, msgID, text, usersKeyboard(view)); err != nil {
		if isNotModifiedError(err) {
			h.answerCallback(cq, msgAlreadyUpToDate, true)
			h.sessions.Remember(adminID, view.Page, chatID, msgID, text)
			return
		}
		log.Printf("users page edit error: %v", err)
		h.answerCallback(cq, msgPanelEditFailed, true)
		return
	}
	h.answerCallback(cq, "", false)
	h.sessions.Remember(adminID, view.Page, chatID, msgID, text)
}

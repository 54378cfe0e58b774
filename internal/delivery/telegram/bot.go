package telegram

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/yourusername/telegram-admin-bot/internal/usecase"
)

// telegramAPI is the part of *tgbotapi.BotAPI the handler uses.
type telegramAPI interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
	GetUpdatesChan(config tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel
	StopReceivingUpdates()
}

// BotHandler Telegram bot handler
type BotHandler struct {
	bot         telegramAPI
	botUsername string

	// Single-user exports are always delivered here.
	adminChatID int64
	isAdmin     func(userID int64) bool

	adminPanel usecase.AdminPanelUseCase
	sessions   *usecase.SessionManager
}

// NewBotHandler yangi bot handler yaratish. A nil isAdmin admits everybody.
func NewBotHandler(
	token string,
	adminChatID int64,
	isAdmin func(userID int64) bool,
	adminPanel usecase.AdminPanelUseCase,
	sessions *usecase.SessionManager,
) (*BotHandler, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to create bot: %w", err)
	}
	handler := newBotHandler(bot, adminChatID, isAdmin, adminPanel, sessions)
	handler.botUsername = bot.Self.UserName
	return handler, nil
}

func newBotHandler(
	api telegramAPI,
	adminChatID int64,
	isAdmin func(userID int64) bool,
	adminPanel usecase.AdminPanelUseCase,
	sessions *usecase.SessionManager,
) *BotHandler {
	if isAdmin == nil {
		isAdmin = func(int64) bool { return true }
	}
	if sessions == nil {
		sessions = usecase.NewSessionManager(0)
	}
	return &BotHandler{
		bot:         api,
		adminChatID: adminChatID,
		isAdmin:     isAdmin,
		adminPanel:  adminPanel,
		sessions:    sessions,
	}
}

// GetBotUsername returns the bot's username from Telegram API state.
func (h *BotHandler) GetBotUsername() string {
	return h.botUsername
}

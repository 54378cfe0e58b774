package telegram

import (
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/yourusername/telegram-admin-bot/internal/domain/entity"
	"github.com/yourusername/telegram-admin-bot/internal/infrastructure/storage"
	"github.com/yourusername/telegram-admin-bot/internal/usecase"
)

// fakeAPI records everything the handler sends to Telegram.
type fakeAPI struct {
	mu        sync.Mutex
	sent      []tgbotapi.Chattable
	requests  []tgbotapi.Chattable
	sendErr   error
	editErr   error
	deleteErr error
	nextID    int
	onSend    func(c tgbotapi.Chattable)
	updates   chan tgbotapi.Update
	stopped   bool
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{nextID: 1000, updates: make(chan tgbotapi.Update, 10)}
}

func (f *fakeAPI) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, c)
	if f.onSend != nil {
		f.onSend(c)
	}
	if _, ok := c.(tgbotapi.EditMessageTextConfig); ok && f.editErr != nil {
		return tgbotapi.Message{}, f.editErr
	}
	if f.sendErr != nil {
		return tgbotapi.Message{}, f.sendErr
	}
	f.nextID++
	return tgbotapi.Message{MessageID: f.nextID}, nil
}

func (f *fakeAPI) Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.requests = append(f.requests, c)
	if _, ok := c.(tgbotapi.DeleteMessageConfig); ok && f.deleteErr != nil {
		return nil, f.deleteErr
	}
	return &tgbotapi.APIResponse{Ok: true}, nil
}

func (f *fakeAPI) GetUpdatesChan(tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel {
	return f.updates
}

func (f *fakeAPI) StopReceivingUpdates() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.stopped = true
}

// reset forgets recorded traffic between steps of a scenario.
func (f *fakeAPI) reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = nil
	f.requests = nil
}

func (f *fakeAPI) callbacks() []tgbotapi.CallbackConfig {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []tgbotapi.CallbackConfig
	for _, r := range f.requests {
		if cb, ok := r.(tgbotapi.CallbackConfig); ok {
			out = append(out, cb)
		}
	}
	return out
}

func (f *fakeAPI) deletes() []tgbotapi.DeleteMessageConfig {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []tgbotapi.DeleteMessageConfig
	for _, r := range f.requests {
		if del, ok := r.(tgbotapi.DeleteMessageConfig); ok {
			out = append(out, del)
		}
	}
	return out
}

func (f *fakeAPI) messages() []tgbotapi.MessageConfig {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []tgbotapi.MessageConfig
	for _, s := range f.sent {
		if msg, ok := s.(tgbotapi.MessageConfig); ok {
			out = append(out, msg)
		}
	}
	return out
}

func (f *fakeAPI) edits() []tgbotapi.EditMessageTextConfig {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []tgbotapi.EditMessageTextConfig
	for _, s := range f.sent {
		if edit, ok := s.(tgbotapi.EditMessageTextConfig); ok {
			out = append(out, edit)
		}
	}
	return out
}

func (f *fakeAPI) documents() []tgbotapi.DocumentConfig {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []tgbotapi.DocumentConfig
	for _, s := range f.sent {
		if doc, ok := s.(tgbotapi.DocumentConfig); ok {
			out = append(out, doc)
		}
	}
	return out
}

const (
	testAdminID     = int64(501)
	testAdminChatID = int64(777)
	testChatID      = int64(501)
)

// sevenUsers: 7 users, ids 3 and 6 without a code; even ids have a username.
func sevenUsers() []entity.User {
	names := []string{"Иван", "Пётр", "Анна", "Олег", "Мария", "Сергей", "Ольга"}
	users := make([]entity.User, 0, len(names))
	for i, name := range names {
		id := int64(i + 1)
		u := entity.User{ID: id, Name: name, Phone: fmt.Sprintf("+7999000000%d", id), Code: "1234"}
		if id%2 == 0 {
			u.Username = fmt.Sprintf("user%d", id)
		}
		if id == 3 || id == 6 {
			u.Code = ""
		}
		users = append(users, u)
	}
	return users
}

type testEnv struct {
	api      *fakeAPI
	handler  *BotHandler
	repo     *storage.MemoryUserRepository
	sessions *usecase.SessionManager
	dir      string
}

func newTestEnv(t *testing.T, users ...entity.User) *testEnv {
	t.Helper()
	api := newFakeAPI()
	repo := storage.NewMemoryUserRepository(users...)
	dir := t.TempDir()
	sessions := usecase.NewSessionManager(time.Hour)
	isAdmin := func(id int64) bool { return id == testAdminID }
	handler := newBotHandler(api, testAdminChatID, isAdmin, usecase.NewAdminPanelUseCase(repo, dir), sessions)
	return &testEnv{api: api, handler: handler, repo: repo, sessions: sessions, dir: dir}
}

func callbackQuery(from int64, messageID int, data string) *tgbotapi.CallbackQuery {
	return &tgbotapi.CallbackQuery{
		ID:   "cb-1",
		From: &tgbotapi.User{ID: from, UserName: "admin"},
		Message: &tgbotapi.Message{
			MessageID: messageID,
			Chat:      &tgbotapi.Chat{ID: testChatID, Type: "private"},
		},
		Data: data,
	}
}

func lastCallback(t *testing.T, api *fakeAPI) tgbotapi.CallbackConfig {
	t.Helper()
	cbs := api.callbacks()
	if len(cbs) == 0 {
		t.Fatal("callback javob berilmadi")
	}
	if len(cbs) > 1 {
		t.Fatalf("callback %d marta javob berildi, bir marta kutilgan", len(cbs))
	}
	return cbs[len(cbs)-1]
}

var errTelegram = errors.New("telegram: Bad Request")

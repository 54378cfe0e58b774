package usecase

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
	"github.com/yourusername/telegram-admin-bot/internal/domain/constants"
	"github.com/yourusername/telegram-admin-bot/internal/domain/entity"
	"github.com/yourusername/telegram-admin-bot/internal/domain/repository"
)

// AdminPanelUseCase admin panel business logic
type AdminPanelUseCase interface {
	ComputePage(ctx context.Context, filterOn bool, page int) (PageView, error)
	ExportUser(ctx context.Context, userID int64) (*UserExport, error)
	ExportAllXLSX(ctx context.Context) ([]byte, int, error)
}

// PageView is one page of the (optionally filtered) user listing.
type PageView struct {
	Users      []entity.User
	Page       int
	TotalPages int
	FilterOn   bool
}

// Empty reports whether no users matched; callers show a notice instead of a page.
func (v PageView) Empty() bool {
	return len(v.Users) == 0
}

// HasPrev and HasNext drive the navigation buttons.
func (v PageView) HasPrev() bool { return v.Page > 1 }
func (v PageView) HasNext() bool { return v.Page < v.TotalPages }

// UserExport is a transient file written for one user. The caller sends it and
// must call Remove afterwards.
type UserExport struct {
	UserID  int64
	Path    string
	Caption string
}

// FileName is the name the admin sees. The on-disk path carries a unique suffix.
func (e *UserExport) FileName() string {
	return fmt.Sprintf("user_%d.txt", e.UserID)
}

// Remove deletes the export file; a file that is already gone is not an error.
func (e *UserExport) Remove() error {
	if e == nil || e.Path == "" {
		return nil
	}
	if err := os.Remove(e.Path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

type adminPanelUseCase struct {
	userRepo  repository.UserRepository
	exportDir string
}

// NewAdminPanelUseCase yangi AdminPanelUseCase yaratish. An empty exportDir
// means os.TempDir().
func NewAdminPanelUseCase(userRepo repository.UserRepository, exportDir string) AdminPanelUseCase {
	if strings.TrimSpace(exportDir) == "" {
		exportDir = os.TempDir()
	}
	return &adminPanelUseCase{
		userRepo:  userRepo,
		exportDir: exportDir,
	}
}

// ComputePage sahifani hisoblash
func (u *adminPanelUseCase) ComputePage(ctx context.Context, filterOn bool, page int) (PageView, error) {
	users, err := u.userRepo.ListUsers(ctx, filterOn)
	if err != nil {
		return PageView{}, fmt.Errorf("failed to list users: %w", err)
	}
	view := paginate(users, page)
	view.FilterOn = filterOn
	return view, nil
}

// paginate slices users into pages of constants.PageSize, clamping page into
// [1, totalPages]. An empty input yields page 1 of 1 with no users.
func paginate(users []entity.User, page int) PageView {
	if len(users) == 0 {
		return PageView{Page: 1, TotalPages: 1}
	}
	totalPages := (len(users) + constants.PageSize - 1) / constants.PageSize
	page = max(1, min(page, totalPages))

	start := (page - 1) * constants.PageSize
	end := min(start+constants.PageSize, len(users))

	pageUsers := make([]entity.User, end-start)
	copy(pageUsers, users[start:end])
	return PageView{
		Users:      pageUsers,
		Page:       page,
		TotalPages: totalPages,
	}
}

// ExportUser foydalanuvchi ma'lumotlarini matn fayliga yozish
func (u *adminPanelUseCase) ExportUser(ctx context.Context, userID int64) (*UserExport, error) {
	user, err := u.userRepo.GetUser(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get user %d: %w", userID, err)
	}

	if err := os.MkdirAll(u.exportDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to prepare export dir: %w", err)
	}
	export := &UserExport{
		UserID:  userID,
		Path:    filepath.Join(u.exportDir, fmt.Sprintf("user_%d_%s.txt", userID, uuid.New().String())),
		Caption: fmt.Sprintf("📂 Данные пользователя %d.", userID),
	}
	if err := os.WriteFile(export.Path, []byte(FormatUserExport(*user)), 0o600); err != nil {
		_ = export.Remove()
		return nil, fmt.Errorf("failed to write export: %w", err)
	}
	return export, nil
}

// FormatUserExport renders the four labeled lines of a single-user export.
func FormatUserExport(user entity.User) string {
	handle := user.Handle()
	if handle == "" {
		handle = constants.UsernamePlaceholder
	}
	code := user.Code
	if !user.HasCode() {
		code = constants.CodePlaceholder
	}

	var b strings.Builder
	fmt.Fprintf(&b, "👤 Имя: %s\n", user.Name)
	fmt.Fprintf(&b, "🔗 Username: %s\n", handle)
	fmt.Fprintf(&b, "📱 Номер телефона: %s\n", user.Phone)
	fmt.Fprintf(&b, "🔢 Код подтверждения: %s\n", code)
	return b.String()
}

// ExportAllXLSX barcha foydalanuvchilarni Excel faylga eksport qilish
func (u *adminPanelUseCase) ExportAllXLSX(ctx context.Context) ([]byte, int, error) {
	users, err := u.userRepo.ListUsers(ctx, false)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list users: %w", err)
	}
	data, err := buildUsersXLSX(users)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build xlsx: %w", err)
	}
	return data, len(users), nil
}

func userExportHeaders() []string {
	return []string{
		"User ID",
		"Name",
		"Username",
		"Phone",
		"Code",
		"Has Code",
	}
}

func userExportRowValues(user entity.User) []interface{} {
	hasCode := "no"
	if user.HasCode() {
		hasCode = "yes"
	}
	return []interface{}{
		user.ID,
		user.Name,
		user.Handle(),
		user.Phone,
		user.Code,
		hasCode,
	}
}

func buildUsersXLSX(users []entity.User) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)

	for i, h := range userExportHeaders() {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, err
		}
	}

	for i, user := range users {
		rowIdx := i + 2
		for c, v := range userExportRowValues(user) {
			cell, err := excelize.CoordinatesToCellName(c+1, rowIdx)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, err
			}
		}
	}

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

package telegram

// User-facing texts of the admin panel.
const (
	msgNoUsers          = "📭 В базе нет пользователей."
	msgAlreadyUpToDate  = "⚠️ Список уже обновлён!"
	msgBadUserID        = "❌ Ошибка! Неверный ID пользователя."
	msgBadPage          = "❌ Ошибка! Неверный номер страницы."
	msgFileNotFound     = "❌ Ошибка! Файл не найден."
	msgFileSendFailed   = "❌ Ошибка! Не удалось отправить файл."
	msgFileSent         = "📄 Файл с данными отправлен админу!"
	msgDatabaseError    = "⚠️ Ошибка базы данных. Попробуйте позже."
	msgAdminOnly        = "❌ Эта панель доступна только администраторам."
	msgExportAllFailed  = "❌ Не удалось подготовить Excel файл."
	msgExportAllSent    = "📊 Excel файл отправлен!"
	msgPanelEditFailed  = "⚠️ Не удалось обновить список."
	msgPanelFooter      = "🔽 Нажмите кнопку ниже, чтобы скачать полную информацию:"
	btnPrev             = "⬅️ Назад"
	btnNext             = "➡️ Вперёд"
	btnExportAll        = "📊 Экспорт всех (Excel)"
	filterStatusOn      = "✅ Включен"
	filterStatusOff     = "❌ Выключен"
	codeStatusPresent   = "✅ Есть"
	codeStatusMissing   = "❌ Нет"
	usernameNotProvided = "Не указан"
)

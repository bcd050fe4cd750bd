// Package app держит состояние окна и реализует два способа его отрисовки:
// одноразовый запуск в терминале и локальную HTTP-панель управления.
package app

import (
	"errors"
	"sync"

	"github.com/google/uuid"
	"github.com/tempizhere/shortyio/internal/bridge"
	"github.com/tempizhere/shortyio/internal/clipboard"
	"github.com/tempizhere/shortyio/internal/models"
	"go.uber.org/zap"
)

// ErrNoResult возвращается при попытке скопировать ссылку до успешного ответа
var ErrNoResult = errors.New("no short link to copy")

// Submitter отправляет запросы в фоне и отдаёт почтовый ящик с результатом
type Submitter interface {
	Submit(req models.LinkRequest, settings models.Settings) (uuid.UUID, error)
	Slot() *bridge.OutcomeSlot
}

// SettingsStore загружает и сохраняет настройки
type SettingsStore interface {
	Load() models.Settings
	Save(settings models.Settings) error
}

// App состояние окна: форма, результат, ошибка, флаг загрузки и настройки
type App struct {
	bridge    Submitter
	store     SettingsStore
	clipboard clipboard.Clipboard
	logger    *zap.Logger

	mu       sync.Mutex
	view     models.View
	settings models.Settings
	lastErr  error
}

// NewApp загружает настройки один раз и предзаполняет URL из буфера обмена
func NewApp(b Submitter, store SettingsStore, cb clipboard.Clipboard, logger *zap.Logger) *App {
	if logger == nil {
		logger = zap.NewNop()
	}
	a := &App{
		bridge:    b,
		store:     store,
		clipboard: cb,
		logger:    logger,
		settings:  store.Load(),
	}
	a.view.Form = models.LinkForm{
		URL:          clipboard.PrefillURL(cb),
		RedirectType: models.DefaultRedirectType,
	}
	return a
}

// Frame выполняется на каждой перерисовке: забирает результат из почтового ящика в состояние окна
func (a *App) Frame() models.View {
	a.mu.Lock()
	defer a.mu.Unlock()

	slot := a.bridge.Slot()
	if outcome, ok := slot.Drain(); ok {
		if outcome.Err != nil {
			a.view.Result = nil
			a.view.Error = outcome.Err.Error()
			a.lastErr = outcome.Err
		} else {
			a.view.Result = outcome.Result
			a.view.Error = ""
			a.lastErr = nil
		}
	}
	a.view.Loading = slot.Loading()
	return a.view
}

// Form возвращает текущие поля формы
func (a *App) Form() models.LinkForm {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.view.Form
}

// SetForm заменяет поля формы. Нулевой код редиректа заменяется на 301.
func (a *App) SetForm(form models.LinkForm) {
	if form.RedirectType == 0 {
		form.RedirectType = models.DefaultRedirectType
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	a.view.Form = form
}

// Settings возвращает текущие настройки
func (a *App) Settings() models.Settings {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.settings
}

// OverrideSettings меняет настройки на время работы процесса, не сохраняя их
func (a *App) OverrideSettings(apiKey, domain string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if apiKey != "" {
		a.settings.APIKey = apiKey
	}
	if domain != "" {
		a.settings.Domain = domain
	}
}

// Submit отправляет текущую форму. Пока предыдущий запрос выполняется, новая отправка отклоняется.
func (a *App) Submit() (uuid.UUID, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.bridge.Slot().Loading() {
		return uuid.Nil, bridge.ErrInFlight
	}

	req := models.NewLinkRequest(a.view.Form, a.settings)
	id, err := a.bridge.Submit(req, a.settings)
	if err != nil {
		var validationErr *bridge.ValidationError
		if errors.As(err, &validationErr) {
			a.view.Error = err.Error()
			a.lastErr = err
		}
		return uuid.Nil, err
	}

	a.view.Loading = true
	a.view.Error = ""
	a.view.Result = nil
	a.lastErr = nil
	return id, nil
}

// LastError возвращает ошибку, показанную в окне, с исходным типом
func (a *App) LastError() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.lastErr
}

// OpenSettings открывает панель настроек
func (a *App) OpenSettings() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.view.ShowSettings = true
}

// CloseSettings закрывает панель настроек без сохранения
func (a *App) CloseSettings() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.view.ShowSettings = false
}

// SaveSettings сохраняет настройки и закрывает панель.
// Ошибка записи логируется, а панель закрывается в любом случае.
func (a *App) SaveSettings(settings models.Settings) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.settings = settings
	a.view.ShowSettings = false
	if err := a.store.Save(settings); err != nil {
		a.logger.Error("Failed to save settings", zap.Error(err))
		return err
	}
	return nil
}

// CopyResult копирует короткую ссылку в буфер обмена
func (a *App) CopyResult() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.view.Result == nil {
		return ErrNoResult
	}
	if a.clipboard == nil {
		return ErrNoResult
	}
	return a.clipboard.WriteAll(a.view.Result.ShortURL)
}

// Package bridge связывает цикл отрисовки с фоновым сетевым запросом.
//
// Submit проверяет поля синхронно и запускает одну горутину на отправку.
// Результат попадает в OutcomeSlot с меткой поколения, после чего вызывается
// функция перерисовки. Повторов и отмены нет.
package bridge

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/tempizhere/shortyio/internal/models"
	"go.uber.org/zap"
)

//go:generate mockgen -destination=mocks/mock_creator.go -package=mocks github.com/tempizhere/shortyio/internal/bridge LinkCreator

// LinkCreator создаёт короткую ссылку во внешнем API
type LinkCreator interface {
	CreateLink(ctx context.Context, apiKey string, req models.LinkRequest) (*models.LinkResult, error)
}

// Bridge отправляет запросы в фоне и доставляет результат в OutcomeSlot
type Bridge struct {
	creator LinkCreator
	slot    *OutcomeSlot
	redraw  func()
	logger  *zap.Logger
	wg      sync.WaitGroup
}

// NewBridge создаёт мост. redraw вызывается после записи каждого результата и может быть nil.
func NewBridge(creator LinkCreator, redraw func(), logger *zap.Logger) *Bridge {
	if redraw == nil {
		redraw = func() {}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Bridge{
		creator: creator,
		slot:    NewOutcomeSlot(),
		redraw:  redraw,
		logger:  logger,
	}
}

// Slot возвращает почтовый ящик, который опрашивает цикл отрисовки
func (b *Bridge) Slot() *OutcomeSlot {
	return b.slot
}

// Validate проверяет запрос и настройки без побочных эффектов
func Validate(req models.LinkRequest, settings models.Settings) error {
	if strings.TrimSpace(settings.APIKey) == "" {
		return &ValidationError{Err: ErrAPIKeyRequired}
	}
	if strings.TrimSpace(req.OriginalURL) == "" {
		return &ValidationError{Err: ErrURLRequired}
	}
	if req.RedirectType != 0 && !models.IsValidRedirectType(req.RedirectType) {
		return &ValidationError{Err: ErrInvalidRedirectType}
	}
	return nil
}

// Submit проверяет запрос и запускает его отправку в фоне.
// Возвращает идентификатор запроса, под которым будет доставлен результат.
func (b *Bridge) Submit(req models.LinkRequest, settings models.Settings) (uuid.UUID, error) {
	if err := Validate(req, settings); err != nil {
		return uuid.Nil, err
	}
	if req.Domain == "" {
		req.Domain = strings.TrimSpace(settings.Domain)
	}
	if req.RedirectType == 0 {
		req.RedirectType = models.DefaultRedirectType
	}

	id, ok := b.slot.tryBegin()
	if !ok {
		return uuid.Nil, ErrInFlight
	}

	b.logger.Info("Submitting link",
		zap.String("request_id", id.String()),
		zap.String("original_url", req.OriginalURL))

	b.wg.Add(1)
	go b.run(id, strings.TrimSpace(settings.APIKey), req)
	return id, nil
}

// run выполняет запрос и записывает исход; отмены нет, запрос всегда доводится до конца
func (b *Bridge) run(id uuid.UUID, apiKey string, req models.LinkRequest) {
	defer b.wg.Done()

	start := time.Now()
	result, err := b.creator.CreateLink(context.Background(), apiKey, req)

	delivered := b.slot.Deliver(Outcome{RequestID: id, Result: result, Err: err})
	if !delivered {
		b.logger.Warn("Discarding stale outcome", zap.String("request_id", id.String()))
	} else if err != nil {
		b.logger.Warn("Link request failed",
			zap.String("request_id", id.String()),
			zap.Duration("duration", time.Since(start)),
			zap.Error(err))
	} else {
		b.logger.Info("Link request completed",
			zap.String("request_id", id.String()),
			zap.Duration("duration", time.Since(start)))
	}

	b.redraw()
}

// Wait ждёт завершения всех запущенных запросов
func (b *Bridge) Wait() {
	b.wg.Wait()
}

package bridge

import (
	"sync"

	"github.com/google/uuid"
	"github.com/tempizhere/shortyio/internal/models"
)

// Outcome результат одной отправки: либо ссылка, либо ошибка
type Outcome struct {
	RequestID uuid.UUID
	Result    *models.LinkResult
	Err       error
}

// OutcomeSlot почтовый ящик между фоновой задачей и циклом отрисовки.
// Хранит не более одного ожидающего результата и принимает только результат текущего поколения.
type OutcomeSlot struct {
	mu         sync.Mutex
	generation uuid.UUID
	loading    bool
	pending    *Outcome
}

// NewOutcomeSlot создаёт пустой слот
func NewOutcomeSlot() *OutcomeSlot {
	return &OutcomeSlot{}
}

// Deliver записывает результат. Результат чужого поколения отбрасывается, возвращается false.
func (s *OutcomeSlot) Deliver(o Outcome) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if o.RequestID != s.generation {
		return false
	}
	s.pending = &o
	s.loading = false
	return true
}

// Drain забирает ожидающий результат, вызывается один раз за кадр
func (s *OutcomeSlot) Drain() (Outcome, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.pending == nil {
		return Outcome{}, false
	}
	o := *s.pending
	s.pending = nil
	return o, true
}

// Loading сообщает, выполняется ли запрос текущего поколения
func (s *OutcomeSlot) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// Generation возвращает идентификатор текущего поколения
func (s *OutcomeSlot) Generation() uuid.UUID {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.generation
}

// tryBegin открывает поколение, только если предыдущий запрос завершён
func (s *OutcomeSlot) tryBegin() (uuid.UUID, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.loading {
		return uuid.Nil, false
	}
	s.generation = uuid.New()
	s.loading = true
	s.pending = nil
	return s.generation, true
}

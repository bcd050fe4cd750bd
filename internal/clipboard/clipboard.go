// Package clipboard даёт доступ к системному буферу обмена и правило предзаполнения URL.
package clipboard

import (
	"strings"
	"sync"

	"github.com/atotto/clipboard"
)

// Clipboard буфер обмена с текстом
type Clipboard interface {
	ReadAll() (string, error)
	WriteAll(text string) error
}

// System системный буфер обмена
type System struct{}

// ReadAll читает текст из системного буфера
func (System) ReadAll() (string, error) {
	return clipboard.ReadAll()
}

// WriteAll записывает текст в системный буфер
func (System) WriteAll(text string) error {
	return clipboard.WriteAll(text)
}

// Available сообщает, есть ли в системе поддерживаемый буфер обмена
func Available() bool {
	return !clipboard.Unsupported
}

// Memory буфер обмена в памяти процесса, используется без графической среды
type Memory struct {
	mu   sync.Mutex
	text string
}

// NewMemory создаёт буфер с начальным текстом
func NewMemory(text string) *Memory {
	return &Memory{text: text}
}

func (m *Memory) ReadAll() (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.text, nil
}

func (m *Memory) WriteAll(text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.text = text
	return nil
}

// IsURL проверяет, что текст начинается с http:// или https://
func IsURL(text string) bool {
	return strings.HasPrefix(text, "http://") || strings.HasPrefix(text, "https://")
}

// PrefillURL читает буфер один раз и возвращает его текст, если это ссылка
func PrefillURL(cb Clipboard) string {
	if cb == nil {
		return ""
	}
	text, err := cb.ReadAll()
	if err != nil || !IsURL(text) {
		return ""
	}
	return text
}

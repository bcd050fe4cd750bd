// Package settings хранит ключ API и домен по умолчанию в локальном файле.
package settings

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"github.com/tempizhere/shortyio/internal/models"
	"go.uber.org/zap"
)

const (
	appDir   = "shortyio"
	fileName = "config.json"
)

// ErrNoConfigDir возвращается, если каталог конфигурации пользователя не определён
var ErrNoConfigDir = errors.New("cannot determine config path")

// DefaultPath возвращает путь к файлу настроек в стандартном каталоге конфигурации ОС
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil || dir == "" {
		return "", ErrNoConfigDir
	}
	return filepath.Join(dir, appDir, fileName), nil
}

// Store читает и перезаписывает файл настроек
type Store struct {
	path   string
	logger *zap.Logger
}

// NewStore создаёт хранилище для указанного файла
func NewStore(path string, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{path: path, logger: logger}
}

// Path возвращает путь к файлу настроек
func (s *Store) Path() string {
	return s.path
}

// Load читает настройки. Отсутствующий или повреждённый файл даёт пустые настройки.
func (s *Store) Load() models.Settings {
	var settings models.Settings

	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.Warn("Failed to read settings", zap.String("path", s.path), zap.Error(err))
		}
		return models.Settings{}
	}
	if err := json.Unmarshal(data, &settings); err != nil {
		s.logger.Warn("Skipping invalid settings file", zap.String("path", s.path), zap.Error(err))
		return models.Settings{}
	}
	return settings
}

// Save перезаписывает файл настроек, при необходимости создавая каталог
func (s *Store) Save(settings models.Settings) error {
	if s.path == "" {
		return ErrNoConfigDir
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return err
	}
	// Файл содержит ключ API, доступ только владельцу
	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return err
	}
	s.logger.Info("Settings saved", zap.String("path", s.path))
	return nil
}

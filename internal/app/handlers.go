package app

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/tempizhere/shortyio/internal/bridge"
	"github.com/tempizhere/shortyio/internal/models"
	"go.uber.org/zap"
)

// SubmitResponse ответ на принятую отправку
type SubmitResponse struct {
	RequestID string `json:"request_id"`
}

// ErrorResponse ответ с текстом ошибки
type ErrorResponse struct {
	Error string `json:"error"`
}

// SettingsResponse настройки без раскрытия ключа API
type SettingsResponse struct {
	APIKeySet bool   `json:"api_key_set"`
	APIKey    string `json:"api_key"`
	Domain    string `json:"domain"`
}

// Handler обработчики локальной панели управления
type Handler struct {
	app    *App
	logger *zap.Logger
}

// NewHandler создаёт обработчики поверх состояния окна
func NewHandler(a *App, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{app: a, logger: logger}
}

// HandleState обрабатывает GET /api/state: один кадр и текущее состояние окна
func (h *Handler) HandleState(w http.ResponseWriter, r *http.Request) {
	h.writeJSONResponse(w, http.StatusOK, h.app.Frame())
}

// HandleForm обрабатывает PUT /api/form
func (h *Handler) HandleForm(w http.ResponseWriter, r *http.Request) {
	var form models.LinkForm
	if err := h.decodeJSON(r, &form); err != nil {
		h.writeJSONResponse(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid JSON"})
		return
	}
	h.app.SetForm(form)
	w.WriteHeader(http.StatusNoContent)
}

// HandleSubmit обрабатывает POST /api/links. Тело с формой необязательно.
func (h *Handler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		h.writeJSONResponse(w, http.StatusBadRequest, ErrorResponse{Error: "Failed to read request body"})
		return
	}
	if len(strings.TrimSpace(string(body))) > 0 {
		if !strings.Contains(r.Header.Get("Content-Type"), "application/json") {
			h.writeJSONResponse(w, http.StatusBadRequest, ErrorResponse{Error: "Content-Type must be application/json"})
			return
		}
		var form models.LinkForm
		if err := json.Unmarshal(body, &form); err != nil {
			h.writeJSONResponse(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid JSON"})
			return
		}
		if h.app.Frame().Loading {
			h.writeJSONResponse(w, http.StatusConflict, ErrorResponse{Error: bridge.ErrInFlight.Error()})
			return
		}
		h.app.SetForm(form)
	}

	id, err := h.app.Submit()
	if err != nil {
		var validationErr *bridge.ValidationError
		switch {
		case errors.As(err, &validationErr):
			h.writeJSONResponse(w, http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		case errors.Is(err, bridge.ErrInFlight):
			h.writeJSONResponse(w, http.StatusConflict, ErrorResponse{Error: err.Error()})
		default:
			h.logger.Error("Submit failed", zap.Error(err))
			h.writeJSONResponse(w, http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
		}
		return
	}
	h.writeJSONResponse(w, http.StatusAccepted, SubmitResponse{RequestID: id.String()})
}

// HandleGetSettings обрабатывает GET /api/settings
func (h *Handler) HandleGetSettings(w http.ResponseWriter, r *http.Request) {
	settings := h.app.Settings()
	h.writeJSONResponse(w, http.StatusOK, SettingsResponse{
		APIKeySet: settings.APIKey != "",
		APIKey:    maskKey(settings.APIKey),
		Domain:    settings.Domain,
	})
}

// HandleSaveSettings обрабатывает PUT /api/settings
func (h *Handler) HandleSaveSettings(w http.ResponseWriter, r *http.Request) {
	var settings models.Settings
	if err := h.decodeJSON(r, &settings); err != nil {
		h.writeJSONResponse(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid JSON"})
		return
	}
	if err := h.app.SaveSettings(settings); err != nil {
		h.writeJSONResponse(w, http.StatusInternalServerError, ErrorResponse{Error: "Failed to save settings"})
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleOpenSettings обрабатывает POST /api/settings/open
func (h *Handler) HandleOpenSettings(w http.ResponseWriter, r *http.Request) {
	h.app.OpenSettings()
	w.WriteHeader(http.StatusNoContent)
}

// HandleCloseSettings обрабатывает POST /api/settings/close
func (h *Handler) HandleCloseSettings(w http.ResponseWriter, r *http.Request) {
	h.app.CloseSettings()
	w.WriteHeader(http.StatusNoContent)
}

// HandleCopy обрабатывает POST /api/copy
func (h *Handler) HandleCopy(w http.ResponseWriter, r *http.Request) {
	h.app.Frame()
	if err := h.app.CopyResult(); err != nil {
		if errors.Is(err, ErrNoResult) {
			h.writeJSONResponse(w, http.StatusConflict, ErrorResponse{Error: err.Error()})
			return
		}
		h.logger.Error("Failed to copy to clipboard", zap.Error(err))
		h.writeJSONResponse(w, http.StatusInternalServerError, ErrorResponse{Error: "Failed to copy to clipboard"})
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandlePing обрабатывает GET /ping
func (h *Handler) HandlePing(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("pong")); err != nil {
		h.logger.Warn("Failed to write response", zap.Error(err))
	}
}

func (h *Handler) decodeJSON(r *http.Request, v interface{}) error {
	if !strings.Contains(r.Header.Get("Content-Type"), "application/json") {
		return errors.New("content-type must be application/json")
	}
	return json.NewDecoder(r.Body).Decode(v)
}

// writeJSONResponse пишет JSON-ответ с проверкой ошибок
func (h *Handler) writeJSONResponse(w http.ResponseWriter, status int, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		http.Error(w, "Failed to encode JSON", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		h.logger.Warn("Failed to write response", zap.Error(err))
	}
}

// maskKey оставляет видимыми только последние четыре символа ключа
func maskKey(key string) string {
	if key == "" {
		return ""
	}
	if len(key) <= 4 {
		return strings.Repeat("*", len(key))
	}
	return strings.Repeat("*", len(key)-4) + key[len(key)-4:]
}

package shortio

import (
	"fmt"
	"net/http"
	"strconv"
)

// TransportError ошибка сети: соединение, DNS, таймаут транспорта
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("Request failed: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// APIError ответ API с кодом вне диапазона 2xx
type APIError struct {
	StatusCode int
	Status     string
	Body       string
}

func (e *APIError) Error() string {
	status := e.Status
	if status == "" {
		status = strconv.Itoa(e.StatusCode) + " " + http.StatusText(e.StatusCode)
	}
	return fmt.Sprintf("API error %s: %s", status, e.Body)
}

// DecodeError успешный ответ, тело которого не удалось разобрать
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("Failed to parse response: %v", e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

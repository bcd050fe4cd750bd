package bridge

import "errors"

var (
	ErrAPIKeyRequired      = errors.New("API key is required. Open settings to configure.")
	ErrURLRequired         = errors.New("Original URL is required")
	ErrInvalidRedirectType = errors.New("redirect type must be one of 301, 302, 307, 308")
	ErrInFlight            = errors.New("a request is already in progress")
)

// ValidationError ошибка проверки локальных полей, до сети дело не доходит
type ValidationError struct {
	Err error
}

func (e *ValidationError) Error() string {
	return e.Err.Error()
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

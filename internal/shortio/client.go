// Package shortio содержит HTTP-клиент для единственного эндпоинта API short.io.
package shortio

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/tempizhere/shortyio/internal/models"
	"go.uber.org/zap"
)

// DefaultEndpoint адрес создания ссылок в API short.io
const DefaultEndpoint = "https://api.short.io/links"

var (
	ErrMissingShortURL    = errors.New("missing field `shortURL`")
	ErrMissingOriginalURL = errors.New("missing field `originalURL`")
)

// Client выполняет запросы к API short.io
type Client struct {
	httpClient *http.Client
	endpoint   string
	logger     *zap.Logger
}

// linkResponse используется для проверки наличия обязательных полей ответа
type linkResponse struct {
	ShortURL    *string `json:"shortURL"`
	OriginalURL *string `json:"originalURL"`
}

// NewClient создаёт клиента. Пустой endpoint заменяется на DefaultEndpoint.
func NewClient(httpClient *http.Client, endpoint string, logger *zap.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		httpClient: httpClient,
		endpoint:   endpoint,
		logger:     logger,
	}
}

// Endpoint возвращает адрес, на который отправляются запросы
func (c *Client) Endpoint() string {
	return c.endpoint
}

// CreateLink создаёт короткую ссылку. Выполняется ровно одна попытка.
func (c *Client) CreateLink(ctx context.Context, apiKey string, req models.LinkRequest) (*models.LinkResult, error) {
	start := time.Now()
	result, outcome, err := c.createLink(ctx, apiKey, req)

	duration := time.Since(start)
	RequestTotal.WithLabelValues(outcome).Inc()
	RequestDuration.WithLabelValues(outcome).Observe(duration.Seconds())

	if err != nil {
		c.logger.Warn("short.io request failed",
			zap.String("original_url", req.OriginalURL),
			zap.String("outcome", outcome),
			zap.Duration("duration", duration),
			zap.Error(err))
		return nil, err
	}
	c.logger.Info("short.io link created",
		zap.String("original_url", result.OriginalURL),
		zap.String("short_url", result.ShortURL),
		zap.Duration("duration", duration))
	return result, nil
}

func (c *Client) createLink(ctx context.Context, apiKey string, req models.LinkRequest) (*models.LinkResult, string, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, outcomeTransportError, &TransportError{Err: err}
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, outcomeTransportError, &TransportError{Err: err}
	}
	httpReq.Header.Set("authorization", apiKey)
	httpReq.Header.Set("content-type", "application/json")
	httpReq.Header.Set("accept", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, outcomeTransportError, &TransportError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Тело ошибки передаётся как есть, даже если дочитать его не удалось
		data, _ := io.ReadAll(resp.Body)
		return nil, outcomeAPIError, &APIError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Body:       string(data),
		}
	}

	var decoded linkResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, outcomeDecodeError, &DecodeError{Err: err}
	}
	if decoded.ShortURL == nil {
		return nil, outcomeDecodeError, &DecodeError{Err: ErrMissingShortURL}
	}
	if decoded.OriginalURL == nil {
		return nil, outcomeDecodeError, &DecodeError{Err: ErrMissingOriginalURL}
	}

	return &models.LinkResult{
		ShortURL:    *decoded.ShortURL,
		OriginalURL: *decoded.OriginalURL,
	}, outcomeSuccess, nil
}

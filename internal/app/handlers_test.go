package app

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tempizhere/shortyio/internal/models"
	"go.uber.org/zap"
)

// httptest.NewRequest использует RemoteAddr 192.0.2.1:1234
const testSubnet = "192.0.2.0/24"

func newTestRouter(env *testEnv) chi.Router {
	return NewRouter(NewHandler(env.app, zap.NewNop()), testSubnet, zap.NewNop())
}

func doRequest(r http.Handler, method, target, contentType, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHandleSubmit(t *testing.T) {
	tests := []struct {
		name         string
		settings     models.Settings
		contentType  string
		body         string
		expectCall   bool
		expectedCode int
		expectedBody string
	}{
		{
			name:         "Valid form",
			settings:     validSettings,
			contentType:  "application/json",
			body:         `{"url":"https://example.com/long","redirect_type":302}`,
			expectCall:   true,
			expectedCode: http.StatusAccepted,
		},
		{
			name:         "Empty body uses current form",
			settings:     validSettings,
			expectCall:   true,
			expectedCode: http.StatusAccepted,
		},
		{
			name:         "Missing API key",
			settings:     models.Settings{},
			contentType:  "application/json",
			body:         `{"url":"https://example.com/long"}`,
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":"API key is required. Open settings to configure."}`,
		},
		{
			name:         "Missing URL",
			settings:     validSettings,
			contentType:  "application/json",
			body:         `{"url":""}`,
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":"Original URL is required"}`,
		},
		{
			name:         "Invalid JSON",
			settings:     validSettings,
			contentType:  "application/json",
			body:         `{"url":`,
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":"Invalid JSON"}`,
		},
		{
			name:         "Wrong content type",
			settings:     validSettings,
			contentType:  "text/plain",
			body:         "https://example.com",
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":"Content-Type must be application/json"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t, tt.settings, "https://example.com/prefilled")
			if tt.expectCall {
				env.creator.EXPECT().
					CreateLink(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(&models.LinkResult{ShortURL: "https://sho.rt/a", OriginalURL: "https://example.com"}, nil)
			}

			w := doRequest(newTestRouter(env), http.MethodPost, "/api/links", tt.contentType, tt.body)
			env.bridge.Wait()

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedBody != "" {
				assert.JSONEq(t, tt.expectedBody, w.Body.String())
			}
			if tt.expectedCode == http.StatusAccepted {
				var resp SubmitResponse
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.NotEmpty(t, resp.RequestID)
			}
		})
	}
}

func TestHandleState_AfterSubmit(t *testing.T) {
	env := newTestEnv(t, models.Settings{APIKey: "secret-api-key-9999"}, "")
	env.creator.EXPECT().
		CreateLink(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&models.LinkResult{ShortURL: "https://sho.rt/a", OriginalURL: "https://example.com"}, nil)
	router := newTestRouter(env)

	w := doRequest(router, http.MethodPost, "/api/links", "application/json", `{"url":"https://example.com"}`)
	require.Equal(t, http.StatusAccepted, w.Code)
	env.bridge.Wait()

	w = doRequest(router, http.MethodGet, "/api/state", "", "")
	require.Equal(t, http.StatusOK, w.Code)

	var view models.View
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &view))
	assert.False(t, view.Loading)
	require.NotNil(t, view.Result)
	assert.Equal(t, "https://sho.rt/a", view.Result.ShortURL)
	assert.Equal(t, "https://example.com", view.Form.URL)
	assert.NotContains(t, w.Body.String(), "secret-api-key", "API key must never be echoed")
}

func TestHandleSubmit_WhileLoading(t *testing.T) {
	env := newTestEnv(t, validSettings, "https://example.com")
	release := make(chan struct{})
	env.creator.EXPECT().
		CreateLink(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, req models.LinkRequest) (*models.LinkResult, error) {
			<-release
			return &models.LinkResult{ShortURL: "https://sho.rt/a", OriginalURL: req.OriginalURL}, nil
		})
	router := newTestRouter(env)

	w := doRequest(router, http.MethodPost, "/api/links", "", "")
	require.Equal(t, http.StatusAccepted, w.Code)

	w = doRequest(router, http.MethodPost, "/api/links", "", "")
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.JSONEq(t, `{"error":"a request is already in progress"}`, w.Body.String())

	w = doRequest(router, http.MethodPost, "/api/links", "application/json", `{"url":"https://other.example.com"}`)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "https://example.com", env.app.Form().URL)

	close(release)
	env.bridge.Wait()
}

func TestHandleForm(t *testing.T) {
	env := newTestEnv(t, validSettings, "")
	router := newTestRouter(env)

	w := doRequest(router, http.MethodPut, "/api/form", "application/json", `{"url":"https://example.com","path":"p","clicks_limit":"5"}`)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, models.LinkForm{URL: "https://example.com", Path: "p", ClicksLimit: "5", RedirectType: 301}, env.app.Form())

	w = doRequest(router, http.MethodPut, "/api/form", "text/plain", "x")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleSettings(t *testing.T) {
	env := newTestEnv(t, models.Settings{APIKey: "abcdef123456", Domain: "sho.rt"}, "")
	router := newTestRouter(env)

	w := doRequest(router, http.MethodGet, "/api/settings", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"api_key_set":true,"api_key":"********3456","domain":"sho.rt"}`, w.Body.String())

	w = doRequest(router, http.MethodPost, "/api/settings/open", "", "")
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.True(t, env.app.Frame().ShowSettings)

	w = doRequest(router, http.MethodPut, "/api/settings", "application/json", `{"api_key":"k","domain":"d"}`)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, models.Settings{APIKey: "k", Domain: "d"}, env.store.Load())
	assert.False(t, env.app.Frame().ShowSettings)

	w = doRequest(router, http.MethodPost, "/api/settings/open", "", "")
	assert.Equal(t, http.StatusNoContent, w.Code)
	w = doRequest(router, http.MethodPost, "/api/settings/close", "", "")
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.False(t, env.app.Frame().ShowSettings)
}

func TestHandleCopy(t *testing.T) {
	env := newTestEnv(t, validSettings, "https://example.com")
	router := newTestRouter(env)

	w := doRequest(router, http.MethodPost, "/api/copy", "", "")
	assert.Equal(t, http.StatusConflict, w.Code)

	env.creator.EXPECT().
		CreateLink(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&models.LinkResult{ShortURL: "https://sho.rt/c", OriginalURL: "https://example.com"}, nil)
	w = doRequest(router, http.MethodPost, "/api/links", "", "")
	require.Equal(t, http.StatusAccepted, w.Code)
	env.bridge.Wait()

	w = doRequest(router, http.MethodPost, "/api/copy", "", "")
	assert.Equal(t, http.StatusNoContent, w.Code)
	text, _ := env.clipboard.ReadAll()
	assert.Equal(t, "https://sho.rt/c", text)
}

func TestRouter_PingAndMetrics(t *testing.T) {
	env := newTestEnv(t, validSettings, "")
	router := newTestRouter(env)

	w := doRequest(router, http.MethodGet, "/ping", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "pong", w.Body.String())

	w = doRequest(router, http.MethodGet, "/metrics", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRouter_UntrustedClient(t *testing.T) {
	env := newTestEnv(t, validSettings, "")
	router := NewRouter(NewHandler(env.app, nil), "127.0.0.0/8", zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/api/state", bytes.NewReader(nil))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestMaskKey(t *testing.T) {
	assert.Equal(t, "", maskKey(""))
	assert.Equal(t, "***", maskKey("abc"))
	assert.Equal(t, "**cdef", maskKey("abcdef"))
}

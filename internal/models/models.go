package models

import (
	"strconv"
	"strings"
)

// DefaultRedirectType код редиректа по умолчанию (301 Moved Permanently)
const DefaultRedirectType = 301

// DefaultTag метка, которой помечаются все созданные ссылки
const DefaultTag = "shortyio"

// RedirectTypes допустимые коды редиректа короткой ссылки
var RedirectTypes = []int{301, 302, 307, 308}

// LinkForm содержит поля формы в том виде, в каком их ввёл пользователь
type LinkForm struct {
	URL             string `json:"url"`
	Path            string `json:"path"`
	Cloaking        bool   `json:"cloaking"`
	Password        string `json:"password"`
	PasswordContact bool   `json:"password_contact"`
	ClicksLimit     string `json:"clicks_limit"`
	RedirectType    int    `json:"redirect_type"`
}

// LinkRequest тело запроса POST /links к API short.io
type LinkRequest struct {
	OriginalURL     string   `json:"originalURL"`
	Path            string   `json:"path,omitempty"`
	Domain          string   `json:"domain,omitempty"`
	Cloaking        bool     `json:"cloaking,omitempty"`
	Password        string   `json:"password,omitempty"`
	PasswordContact bool     `json:"passwordContact,omitempty"`
	AllowDuplicates bool     `json:"allowDuplicates"`
	ClicksLimit     *int     `json:"clicksLimit,omitempty"`
	RedirectType    int      `json:"redirectType,omitempty"`
	Tags            []string `json:"tags,omitempty"`
}

// LinkResult ответ API с созданной короткой ссылкой
type LinkResult struct {
	ShortURL    string `json:"shortURL"`
	OriginalURL string `json:"originalURL"`
}

// Settings настройки, которые сохраняются между запусками
type Settings struct {
	APIKey string `json:"api_key"`
	Domain string `json:"domain"`
}

// View состояние окна, которое отрисовывается на каждом кадре
type View struct {
	Form         LinkForm    `json:"form"`
	Result       *LinkResult `json:"result,omitempty"`
	Error        string      `json:"error,omitempty"`
	Loading      bool        `json:"loading"`
	ShowSettings bool        `json:"show_settings"`
}

// NewLinkRequest собирает запрос из формы и настроек.
// Пустые необязательные поля не попадают в JSON, нечисловой лимит кликов отбрасывается.
func NewLinkRequest(form LinkForm, settings Settings) LinkRequest {
	req := LinkRequest{
		OriginalURL:     strings.TrimSpace(form.URL),
		Path:            strings.TrimSpace(form.Path),
		Domain:          strings.TrimSpace(settings.Domain),
		Cloaking:        form.Cloaking,
		Password:        form.Password,
		PasswordContact: form.PasswordContact,
		AllowDuplicates: false,
		RedirectType:    form.RedirectType,
		Tags:            []string{DefaultTag},
	}
	if req.RedirectType == 0 {
		req.RedirectType = DefaultRedirectType
	}
	if limit := strings.TrimSpace(form.ClicksLimit); limit != "" {
		// Значения вне int32 отбрасываются так же, как нечисловые
		if n, err := strconv.ParseInt(limit, 10, 32); err == nil {
			clicks := int(n)
			req.ClicksLimit = &clicks
		}
	}
	return req
}

// IsValidRedirectType проверяет, что код редиректа поддерживается API
func IsValidRedirectType(code int) bool {
	for _, c := range RedirectTypes {
		if c == code {
			return true
		}
	}
	return false
}

package defaultclient

import (
	"net/http"
	"net/url"
	"strings"
)

func fetch(client *http.Client) {
	_, _ = http.Get("https://example.com")                             // want "использование http.Get запрещено, передайте \\*http.Client явно"
	_, _ = http.Post("https://example.com", "text/plain", nil)         // want "использование http.Post запрещено, передайте \\*http.Client явно"
	_, _ = http.PostForm("https://example.com", url.Values{})          // want "использование http.PostForm запрещено, передайте \\*http.Client явно"
	_ = http.DefaultClient                                             // want "использование http.DefaultClient запрещено, передайте \\*http.Client явно"
	_, _ = client.Post("https://example.com", "text/plain", strings.NewReader(""))
	_, _ = client.Get("https://example.com")
}

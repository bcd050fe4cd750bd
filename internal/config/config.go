package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/viper"
	"github.com/tempizhere/shortyio/internal/models"
	"github.com/tempizhere/shortyio/internal/shortio"
)

// Ключи конфигурации совпадают с именами переменных окружения
const (
	keyEndpoint      = "SHORTYIO_ENDPOINT"
	keySettingsPath  = "SHORTYIO_SETTINGS_PATH"
	keyLogLevel      = "SHORTYIO_LOG_LEVEL"
	keyServerAddress = "SHORTYIO_SERVER_ADDRESS"
	keyTrustedSubnet = "SHORTYIO_TRUSTED_SUBNET"
	keyAPIKey        = "SHORTYIO_API_KEY"
	keyDomain        = "SHORTYIO_DOMAIN"
)

// Config содержит настройки запуска приложения
type Config struct {
	Endpoint      string
	SettingsPath  string
	LogLevel      string
	Serve         bool
	RunAddr       string
	TrustedSubnet string

	// APIKey и Domain переопределяют сохранённые настройки на время запуска
	APIKey string
	Domain string
	// Save сохраняет переданные APIKey и Domain в файл настроек
	Save bool
	// Copy копирует короткую ссылку в буфер обмена после успеха
	Copy bool

	Form models.LinkForm
}

// NewConfig разбирает аргументы командной строки, переменные окружения и файл .env
func NewConfig() (*Config, error) {
	return Parse(os.Args[1:], ".env")
}

// Parse собирает конфигурацию. Приоритет: явно переданный флаг, окружение, .env, значение по умолчанию.
func Parse(args []string, envFile string) (*Config, error) {
	v := viper.New()
	v.SetDefault(keyEndpoint, shortio.DefaultEndpoint)
	v.SetDefault(keySettingsPath, "")
	v.SetDefault(keyLogLevel, "info")
	v.SetDefault(keyServerAddress, "127.0.0.1:8765")
	v.SetDefault(keyTrustedSubnet, "127.0.0.0/8")
	v.SetDefault(keyAPIKey, "")
	v.SetDefault(keyDomain, "")
	v.AutomaticEnv()

	// Читаем .env, если есть (не переопределяет переменные окружения)
	if envFile != "" {
		if _, err := os.Stat(envFile); err == nil {
			v.SetConfigFile(envFile)
			v.SetConfigType("env")
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("read %s: %w", envFile, err)
			}
		}
	}

	cfg := &Config{
		Endpoint:      v.GetString(keyEndpoint),
		SettingsPath:  v.GetString(keySettingsPath),
		LogLevel:      v.GetString(keyLogLevel),
		RunAddr:       v.GetString(keyServerAddress),
		TrustedSubnet: v.GetString(keyTrustedSubnet),
		APIKey:        v.GetString(keyAPIKey),
		Domain:        v.GetString(keyDomain),
		Form:          models.LinkForm{RedirectType: models.DefaultRedirectType},
	}

	fs := flag.NewFlagSet("shorty", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	endpoint := fs.String("endpoint", "", "short.io links endpoint")
	settingsPath := fs.String("settings", "", "path to settings file (default: user config dir)")
	logLevel := fs.String("log-level", "", "log level: debug, info, warn, error")
	runAddr := fs.String("a", "", "address of the local control surface")
	trustedSubnet := fs.String("t", "", "trusted subnet for the control surface in CIDR format")
	apiKey := fs.String("api-key", "", "short.io API key")
	domain := fs.String("domain", "", "short link domain")
	fs.BoolVar(&cfg.Serve, "serve", false, "run the local control surface instead of a one-shot submit")
	fs.BoolVar(&cfg.Save, "save", false, "save -api-key and -domain to the settings file")
	fs.BoolVar(&cfg.Copy, "copy", false, "copy the short URL to the clipboard")
	fs.StringVar(&cfg.Form.URL, "url", "", "original URL to shorten")
	fs.StringVar(&cfg.Form.Path, "path", "", "custom path")
	fs.BoolVar(&cfg.Form.Cloaking, "cloaking", false, "enable cloaking")
	fs.StringVar(&cfg.Form.Password, "password", "", "protect link with password")
	fs.BoolVar(&cfg.Form.PasswordContact, "password-contact", false, "show contact for password")
	fs.StringVar(&cfg.Form.ClicksLimit, "clicks-limit", "", "disable link after this many clicks")
	fs.IntVar(&cfg.Form.RedirectType, "redirect-type", models.DefaultRedirectType, "redirect type: 301, 302, 307 or 308")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	// Флаг переопределяет окружение, только если он передан явно
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "endpoint":
			cfg.Endpoint = *endpoint
		case "settings":
			cfg.SettingsPath = *settingsPath
		case "log-level":
			cfg.LogLevel = *logLevel
		case "a":
			cfg.RunAddr = *runAddr
		case "t":
			cfg.TrustedSubnet = *trustedSubnet
		case "api-key":
			cfg.APIKey = *apiKey
		case "domain":
			cfg.Domain = *domain
		}
	})

	if cfg.Form.URL == "" && fs.NArg() > 0 {
		cfg.Form.URL = fs.Arg(0)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate проверяет корректность конфигурации
func (cfg *Config) Validate() error {
	if !strings.HasPrefix(cfg.Endpoint, "http://") && !strings.HasPrefix(cfg.Endpoint, "https://") {
		return fmt.Errorf("endpoint must be an http(s) URL: %q", cfg.Endpoint)
	}
	if !models.IsValidRedirectType(cfg.Form.RedirectType) {
		return fmt.Errorf("redirect type must be one of %v, got %d", models.RedirectTypes, cfg.Form.RedirectType)
	}
	if cfg.Serve && cfg.RunAddr == "" {
		return fmt.Errorf("server address can not be empty")
	}
	if cfg.Save && cfg.APIKey == "" && cfg.Domain == "" {
		return fmt.Errorf("-save requires -api-key or -domain")
	}
	return nil
}

// Package main запускает клиент short.io: одноразовую отправку ссылки из терминала
// или локальную панель управления.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tempizhere/shortyio/internal/app"
	"github.com/tempizhere/shortyio/internal/bridge"
	"github.com/tempizhere/shortyio/internal/clipboard"
	"github.com/tempizhere/shortyio/internal/config"
	"github.com/tempizhere/shortyio/internal/log"
	"github.com/tempizhere/shortyio/internal/settings"
	"github.com/tempizhere/shortyio/internal/shortio"
	"go.uber.org/zap"
)

const shutdownTimeout = 5 * time.Second

func main() {
	// Получаем конфигурацию
	cfg, cfgErr := config.NewConfig()
	level := "info"
	if cfgErr == nil {
		level = cfg.LogLevel
	}

	logger, err := log.NewLogger(level)
	if err != nil {
		panic(err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	if cfgErr != nil {
		logger.Fatal("Invalid configuration", zap.Error(cfgErr))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, systemClipboard(), logger, os.Stdout); err != nil {
		// Fatal завершает процесс с кодом 1
		logger.Fatal("shorty failed", zap.Error(err))
	}
}

// systemClipboard возвращает системный буфер обмена, а без графической среды буфер в памяти
func systemClipboard() clipboard.Clipboard {
	if clipboard.Available() {
		return clipboard.System{}
	}
	return clipboard.NewMemory("")
}

// run собирает зависимости и выбирает режим работы
func run(ctx context.Context, cfg *config.Config, cb clipboard.Clipboard, logger *zap.Logger, out io.Writer) error {
	path := cfg.SettingsPath
	if path == "" {
		var err error
		if path, err = settings.DefaultPath(); err != nil {
			logger.Warn("Settings will not be persisted", zap.Error(err))
		}
	}
	store := settings.NewStore(path, logger)

	client := shortio.NewClient(&http.Client{}, cfg.Endpoint, logger)
	logger.Debug("Using short.io endpoint", zap.String("endpoint", client.Endpoint()))
	redraw, redraws := app.NewRedrawSignal()
	b := bridge.NewBridge(client, redraw, logger)
	defer b.Wait()

	appInstance := app.NewApp(b, store, cb, logger)
	appInstance.OverrideSettings(cfg.APIKey, cfg.Domain)

	if cfg.Save {
		if err := appInstance.SaveSettings(appInstance.Settings()); err != nil {
			return fmt.Errorf("save settings: %w", err)
		}
		logger.Info("Settings saved", zap.String("path", store.Path()))
		// Без явно переданной ссылки -save только сохраняет настройки
		if cfg.Form.URL == "" && !cfg.Serve {
			return nil
		}
	}

	form := cfg.Form
	if form.URL == "" {
		// Оставляем ссылку, подставленную из буфера обмена
		form.URL = appInstance.Form().URL
	}
	appInstance.SetForm(form)

	if cfg.Serve {
		return serve(ctx, cfg, appInstance, logger)
	}

	if err := appInstance.RunOnce(ctx, redraws, out); err != nil {
		return err
	}
	if cfg.Copy {
		if err := appInstance.CopyResult(); err != nil {
			return fmt.Errorf("copy to clipboard: %w", err)
		}
	}
	return nil
}

// serve запускает панель управления до получения сигнала завершения
func serve(ctx context.Context, cfg *config.Config, appInstance *app.App, logger *zap.Logger) error {
	handler := app.NewHandler(appInstance, logger)
	server := &http.Server{
		Addr:              cfg.RunAddr,
		Handler:           app.NewRouter(handler, cfg.TrustedSubnet, logger),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Starting control surface",
			zap.String("address", cfg.RunAddr),
			zap.String("trusted_subnet", cfg.TrustedSubnet))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("Shutting down control surface")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

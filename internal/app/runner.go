package app

import (
	"context"
	"fmt"
	"io"
)

// RunOnce отправляет текущую форму и крутит цикл отрисовки до получения результата.
// Успех печатается в out, ошибка возвращается с исходным типом.
func (a *App) RunOnce(ctx context.Context, redraws <-chan struct{}, out io.Writer) error {
	if _, err := a.Submit(); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-redraws:
		}

		view := a.Frame()
		if view.Loading {
			continue
		}
		if view.Error != "" {
			if err := a.LastError(); err != nil {
				return err
			}
			return fmt.Errorf("%s", view.Error)
		}
		if view.Result != nil {
			_, err := fmt.Fprintf(out, "Short URL: %s\nOriginal:  %s\n", view.Result.ShortURL, view.Result.OriginalURL)
			return err
		}
	}
}

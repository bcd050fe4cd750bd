package app

// NewRedrawSignal возвращает функцию запроса перерисовки и канал, из которого её читает цикл отрисовки.
// Повторные запросы до чтения схлопываются в один.
func NewRedrawSignal() (func(), <-chan struct{}) {
	ch := make(chan struct{}, 1)
	request := func() {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
	return request, ch
}

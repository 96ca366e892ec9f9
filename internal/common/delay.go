package common

import (
	"context"
	"time"
)

// Wait выдерживает паузу и регулярно проверяет контекст на отмену,
// чтобы остановка фоновой задачи не зависала на долгих задержках.
// Шаг в одну секунду даёт быстрый отклик на отмену.
func Wait(ctx context.Context, d time.Duration) error {
	const step = time.Second
	for remaining := d; remaining > 0; remaining -= step {
		s := step
		if remaining < s {
			s = remaining
		}
		select {
		case <-ctx.Done():
			// Возвращаем ошибку контекста, чтобы вызвать обработку прерывания выше по стеку.
			return ctx.Err()
		case <-time.After(s):
		}
	}
	return nil
}

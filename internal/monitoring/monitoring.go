package monitoring

import (
	"log"
	"time"

	"github.com/getsentry/sentry-go"
)

var enabled bool

// Init настраивает отправку ошибок в Sentry. Пустой DSN отключает
// телеметрию, чтобы локальный запуск и тесты не требовали сети.
func Init(dsn string) error {
	if dsn == "" {
		log.Printf("[MONITORING] DSN не задан, телеметрия отключена")
		return nil
	}
	err := sentry.Init(sentry.ClientOptions{
		Dsn:              dsn,
		TracesSampleRate: 0, // только мониторинг ошибок
		Environment:      "production",
	})
	if err != nil {
		return err
	}
	enabled = true
	return nil
}

// CaptureError отправляет ошибку в телеметрию с тегами.
// Сбои телеметрии никогда не влияют на основную работу: учёт попыток
// идёт в журнале, а сюда ошибка уходит без ожидания результата.
func CaptureError(err error, tags map[string]string) {
	if !enabled || err == nil {
		return
	}
	sentry.WithScope(func(scope *sentry.Scope) {
		for k, v := range tags {
			scope.SetTag(k, v)
		}
		sentry.CaptureException(err)
	})
}

// Flush дожидается отправки накопленных событий перед завершением процесса.
func Flush() {
	if enabled {
		sentry.Flush(2 * time.Second)
	}
}

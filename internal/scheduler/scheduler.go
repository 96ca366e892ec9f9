package scheduler

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/robfig/cron/v3"

	"igs_go/internal/monitoring"
	"igs_go/internal/poster"
	"igs_go/models"
)

// cronDays сопоставляет день недели номеру поля DOW в cron-выражении,
// где 0 — воскресенье.
var cronDays = map[string]int{
	"sunday":    0,
	"monday":    1,
	"tuesday":   2,
	"wednesday": 3,
	"thursday":  4,
	"friday":    5,
	"saturday":  6,
}

// Scheduler регистрирует недельные задания публикации и запускает их
// по cron. Снимок аккаунтов и настроек фиксируется на момент запуска:
// изменения в панели после старта на работающий цикл не влияют.
type Scheduler struct {
	cron *cron.Cron
	job  *poster.Job
}

func New(job *poster.Job) *Scheduler {
	return &Scheduler{cron: cron.New(), job: job}
}

// cronSpec строит выражение "MIN HOUR * * DOW" для локального времени HH:MM.
func cronSpec(day, at string) (string, error) {
	parts := strings.Split(at, ":")
	if len(parts) != 2 {
		return "", fmt.Errorf("неверный формат времени %q, ожидается HH:MM", at)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return "", fmt.Errorf("неверный час в %q", at)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return "", fmt.Errorf("неверная минута в %q", at)
	}
	dow, ok := cronDays[day]
	if !ok {
		return "", fmt.Errorf("неизвестный день недели %q", day)
	}
	return fmt.Sprintf("%d %d * * %d", minute, hour, dow), nil
}

// Start регистрирует по одному заданию на каждый настроенный день и
// запускает фоновый цикл. Отмена контекста останавливает цикл.
func (s *Scheduler) Start(ctx context.Context, accounts []models.Account, config map[string]models.DayConfig) error {
	// Регистрируем дни в порядке недели, чтобы логи были воспроизводимыми.
	for _, day := range models.WeekDays {
		cfg, ok := config[day]
		if !ok {
			continue
		}
		spec, err := cronSpec(day, cfg.Time)
		if err != nil {
			return err
		}
		d := day
		if _, err := s.cron.AddFunc(spec, func() {
			s.runJob(ctx, d, accounts, config)
		}); err != nil {
			return err
		}
		log.Printf("[SCHEDULER] Зарегистрировано: %s в %s, папка %s", day, cfg.Time, cfg.Folder)
	}

	s.cron.Start()
	go func() {
		<-ctx.Done()
		s.cron.Stop()
		log.Printf("[SCHEDULER] Цикл остановлен")
	}()
	return nil
}

// entries возвращает число зарегистрированных заданий.
func (s *Scheduler) entries() int {
	return len(s.cron.Entries())
}

// runJob выполняет задание и гасит панику: сбой одного запуска не должен
// останавливать весь цикл.
func (s *Scheduler) runJob(ctx context.Context, day string, accounts []models.Account, config map[string]models.DayConfig) {
	defer func() {
		if r := recover(); r != nil {
			err := fmt.Errorf("паника в задании публикации: %v", r)
			monitoring.CaptureError(err, map[string]string{"day": day})
			log.Printf("[SCHEDULER ERROR] %v", err)
		}
	}()
	log.Printf("[SCHEDULER] Запуск задания публикации: %s", day)
	s.job.Run(ctx, day, accounts, config)
}

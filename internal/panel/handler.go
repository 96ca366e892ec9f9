package panel

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"igs_go/internal/httputil"
	"igs_go/internal/monitoring"
	"igs_go/internal/poster"
	"igs_go/internal/scheduler"
	"igs_go/models"
	"igs_go/pkg/instagram"
	"igs_go/pkg/storage"
)

// столько строк журнала показывает панель
const logLimit = 100

// пауза между загрузками файлов, защита от антиспама платформы
const uploadPause = 10 * time.Second

type Handler struct {
	DB      *storage.DB
	State   *State
	DataDir string // Каталог отметок, сессий и БД
}

func NewHandler(db *storage.DB, state *State, dataDir string) *Handler {
	return &Handler{DB: db, State: state, DataDir: dataDir}
}

// SessionsDir возвращает каталог файлов сессий Instagram.
func (h *Handler) SessionsDir() string {
	return filepath.Join(h.DataDir, "sessions")
}

// Index отрисовывает панель управления: форму аккаунтов, недельное
// расписание и журнал последних попыток.
func (h *Handler) Index(c *gin.Context) {
	logs, err := h.DB.RecentStoryLogs(logLimit)
	if err != nil {
		// Панель полезна и без журнала, поэтому показываем её с пустой таблицей.
		log.Printf("[PANEL WARN] Журнал недоступен: %v", err)
	}

	hours := make([]int, 0, 12)
	for i := 1; i <= 12; i++ {
		hours = append(hours, i)
	}
	minutes := make([]int, 0, 60)
	for i := 0; i < 60; i++ {
		minutes = append(minutes, i)
	}

	c.HTML(http.StatusOK, "panel.html", gin.H{
		"Accounts": h.State.Accounts(),
		"Days":     models.WeekDays,
		"Hours":    hours,
		"Minutes":  minutes,
		"Logs":     logs,
		"Running":  h.State.Running(),
	})
}

// AddAccount добавляет аккаунт из формы панели.
func (h *Handler) AddAccount(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")
	if username == "" || password == "" {
		httputil.RespondError(c, http.StatusBadRequest, "Требуются имя пользователя и пароль")
		return
	}

	h.State.AddAccount(models.Account{Username: username, Password: password})
	log.Printf("[PANEL] Добавлен аккаунт %s", username)
	c.Redirect(http.StatusSeeOther, "/")
}

// StartScheduler собирает расписание из формы и запускает фоновый цикл
// публикаций со снимком текущих аккаунтов и настроек.
func (h *Handler) StartScheduler(c *gin.Context) {
	accounts := h.State.Accounts()
	if len(accounts) == 0 {
		httputil.RespondError(c, http.StatusBadRequest, ErrNoAccounts.Error())
		return
	}

	config, err := h.collectConfig(c)
	if err != nil {
		httputil.RespondError(c, http.StatusBadRequest, err.Error())
		return
	}
	if len(config) == 0 {
		httputil.RespondError(c, http.StatusBadRequest, "не включён ни один день недели")
		return
	}

	if !h.State.StartRunning() {
		httputil.RespondError(c, http.StatusConflict, "планировщик уже запущен")
		return
	}

	job := &poster.Job{
		DB:        h.DB,
		MarkerDir: h.DataDir,
		Pause:     uploadPause,
		Login: func(username, password string) (poster.StoryClient, error) {
			return instagram.Login(h.SessionsDir(), username, password)
		},
		Report: func(err error, username, day string) {
			monitoring.CaptureError(err, map[string]string{
				"instagram_user": username,
				"day":            day,
			})
		},
	}

	// Контекст без отмены: остановка планировщика отдельно от остановки
	// приложения пока не предусмотрена, но задание уже умеет прерываться.
	if err := scheduler.New(job).Start(context.Background(), accounts, config); err != nil {
		// Снимаем флаг, иначе несостоявшийся запуск заблокирует следующие.
		h.State.StopRunning()
		httputil.RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	log.Printf("[PANEL] Планировщик запущен: %d аккаунтов, %d дней", len(accounts), len(config))
	c.Redirect(http.StatusSeeOther, "/")
}

// StopApp немедленно завершает процесс. Текущее задание публикации
// обрывается без очистки, как и задумано.
func (h *Handler) StopApp(c *gin.Context) {
	log.Printf("[PANEL] Остановка приложения по запросу пользователя")
	c.JSON(http.StatusOK, gin.H{"status": "остановка"})

	go func() {
		// Небольшая задержка, чтобы ответ успел уйти клиенту.
		time.Sleep(100 * time.Millisecond)
		monitoring.Flush()
		os.Exit(0)
	}()
}

// Logs отдаёт последние записи журнала для дашборда.
func (h *Handler) Logs(c *gin.Context) {
	logs, err := h.DB.RecentStoryLogs(logLimit)
	if err != nil {
		httputil.RespondError(c, http.StatusInternalServerError, "не удалось прочитать журнал")
		return
	}
	c.JSON(http.StatusOK, gin.H{"logs": logs})
}

// collectConfig собирает недельное расписание из полей формы.
// Поля каждого дня именуются префиксом дня: monday_enabled, monday_folder,
// monday_hour, monday_minute, monday_meridiem.
func (h *Handler) collectConfig(c *gin.Context) (map[string]models.DayConfig, error) {
	config := make(map[string]models.DayConfig)
	for _, day := range models.WeekDays {
		if c.PostForm(day+"_enabled") == "" {
			continue
		}
		folder := c.PostForm(day + "_folder")
		hour, err := strconv.Atoi(c.PostForm(day + "_hour"))
		if err != nil || hour < 1 || hour > 12 {
			return nil, fmt.Errorf("неверный час для %s", day)
		}
		minute, err := strconv.Atoi(c.PostForm(day + "_minute"))
		if err != nil || minute < 0 || minute > 59 {
			return nil, fmt.Errorf("неверная минута для %s", day)
		}
		meridiem := c.PostForm(day + "_meridiem")
		if meridiem != "AM" && meridiem != "PM" {
			return nil, fmt.Errorf("неверное значение AM/PM для %s", day)
		}
		if cfg := buildDayConfig(day, true, folder, hour, minute, meridiem); cfg != nil {
			config[day] = *cfg
		}
	}
	return config, nil
}

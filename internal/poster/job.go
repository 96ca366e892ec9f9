package poster

import (
	"context"
	"errors"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"igs_go/internal/common"
	"igs_go/models"
	"igs_go/pkg/storage"
)

// StoryClient описывает операции платформы, которые нужны заданию публикации.
type StoryClient interface {
	UploadPhotoStory(path string) error
	UploadVideoStory(path string) error
}

// LoginFunc выдаёт авторизованный клиент для аккаунта.
type LoginFunc func(username, password string) (StoryClient, error)

// ReportFunc отправляет ошибку в телеметрию с привязкой к аккаунту и дню.
type ReportFunc func(err error, username, day string)

// расширения медиафайлов, пригодных для сторис
var mediaExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
	".mp4":  true,
}

// Job выполняет публикацию сторис за один день недели: для каждого
// аккаунта по очереди загружает все файлы из настроенной папки.
type Job struct {
	DB        *storage.DB
	Login     LoginFunc
	MarkerDir string        // Каталог файлов-отметок о выполненной публикации
	Pause     time.Duration // Пауза после каждого файла
	Report    ReportFunc    // Телеметрия, может быть nil
}

// Run обрабатывает все аккаунты для указанного дня недели.
// Ошибка одного аккаунта не прерывает остальные; отмена контекста
// останавливает задание целиком.
func (j *Job) Run(ctx context.Context, day string, accounts []models.Account, config map[string]models.DayConfig) {
	for _, acc := range accounts {
		err := j.runAccount(ctx, day, acc, config)
		if err == nil {
			continue
		}
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			log.Printf("[JOB] Публикация остановлена: %v", err)
			return
		}
		// Ошибка авторизации прерывает аккаунт без отметки,
		// чтобы следующий недельный запуск попробовал снова.
		j.report(err, acc.Username, day)
		log.Printf("[JOB ERROR] Аккаунт %s, день %s: %v", acc.Username, day, err)
	}
}

func (j *Job) runAccount(ctx context.Context, day string, acc models.Account, config map[string]models.DayConfig) error {
	// Отметка о публикации защищает от повторного запуска в тот же день.
	if PostedToday(j.MarkerDir, day, acc.Username) {
		return nil
	}

	cfg, ok := config[day]
	if !ok {
		return nil
	}
	if _, err := os.Stat(cfg.Folder); err != nil {
		// Отсутствующая папка — не ошибка: день просто пропускается.
		return nil
	}

	entries, err := os.ReadDir(cfg.Folder)
	if err != nil {
		return nil
	}
	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if mediaExts[strings.ToLower(filepath.Ext(e.Name()))] {
			files = append(files, e.Name())
		}
	}
	if len(files) == 0 {
		return nil
	}
	SortNatural(files)

	cl, err := j.Login(acc.Username, acc.Password)
	if err != nil {
		return err
	}

	for _, name := range files {
		j.postFile(cl, day, acc.Username, filepath.Join(cfg.Folder, name))
		// Пауза после каждого файла, удачного или нет, чтобы не
		// провоцировать антиспам платформы.
		if err := common.Wait(ctx, j.Pause); err != nil {
			return err
		}
	}

	// Отметка ставится после полного прохода, даже если отдельные файлы
	// не загрузились: частичные сбои не дают повода повторять весь день.
	if err := MarkPosted(j.MarkerDir, day, acc.Username); err != nil {
		log.Printf("[JOB WARN] Не удалось поставить отметку %s/%s: %v", day, acc.Username, err)
	}
	log.Printf("[JOB] Публикация завершена: %s, %s", acc.Username, day)
	return nil
}

// postFile загружает один файл и записывает итог в журнал.
// Любой сбой файла фиксируется и не прерывает обработку остальных.
func (j *Job) postFile(cl StoryClient, day, username, path string) {
	ext := strings.ToLower(filepath.Ext(path))

	if ext == ".webp" {
		jpg, err := ConvertWebpToJPEG(path)
		if err != nil {
			j.fail(username, day, path, err)
			return
		}
		path = jpg
		ext = ".jpg"
	}

	var err error
	if ext == ".mp4" {
		err = cl.UploadVideoStory(path)
	} else {
		err = cl.UploadPhotoStory(path)
	}
	if err != nil {
		j.fail(username, day, path, err)
		return
	}
	j.logRow(username, day, path, models.StatusSuccess, "")
}

func (j *Job) fail(username, day, path string, err error) {
	j.report(err, username, day)
	j.logRow(username, day, path, models.StatusFail, err.Error())
}

// logRow добавляет строку журнала. Ошибку записи SaveStoryLog уже
// залогировал, а прерывать обработку из-за неё нельзя.
func (j *Job) logRow(username, day, path, status, msg string) {
	_ = j.DB.SaveStoryLog(models.StoryLog{
		Username: username,
		Day:      day,
		FilePath: path,
		Status:   status,
		Msg:      msg,
	})
}

func (j *Job) report(err error, username, day string) {
	if j.Report != nil {
		j.Report(err, username, day)
	}
}

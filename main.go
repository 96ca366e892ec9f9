package main

import (
	"database/sql"
	"log"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	_ "github.com/mattn/go-sqlite3"

	"igs_go/internal/monitoring"
	"igs_go/internal/panel"
	"igs_go/pkg/storage"
)

func main() {
	// Телеметрия необязательна: без DSN работаем локально.
	if err := monitoring.Init(os.Getenv("SENTRY_DSN")); err != nil {
		log.Printf("[MAIN WARN] Телеметрия недоступна: %v", err)
	}

	dataDir := getDataDir()
	if err := os.MkdirAll(filepath.Join(dataDir, "sessions"), 0o755); err != nil {
		log.Fatalf("Failed to create sessions dir: %v", err)
	}

	// Инициализация подключения к БД
	dbConn, err := sql.Open("sqlite3", filepath.Join(dataDir, "logs.db"))
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer dbConn.Close()

	// Проверка подключения
	if err := dbConn.Ping(); err != nil {
		log.Fatalf("Database ping failed: %v", err)
	}

	db := storage.NewDB(dbConn)
	if err := db.InitSchema(); err != nil {
		log.Fatalf("Failed to init schema: %v", err)
	}

	// Настройка роутера
	r := setupRouter(db, dataDir)

	// Запуск сервера
	port := getPort()
	log.Printf("Starting server on port %s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

// Функция получения порта из переменных окружения
func getPort() string {
	if port := os.Getenv("PORT"); port != "" {
		return port
	}
	return "8080"
}

// getDataDir возвращает каталог для БД, сессий и файлов-отметок.
func getDataDir() string {
	if dir := os.Getenv("IGS_DATA_DIR"); dir != "" {
		return dir
	}
	return "."
}

// Настройка маршрутов
func setupRouter(db *storage.DB, dataDir string) *gin.Engine {
	r := gin.Default()
	r.LoadHTMLGlob("templates/*.html")

	h := panel.NewHandler(db, panel.NewState(), dataDir)
	panel.SetupRoutes(r, h)

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Логирование зарегистрированных роутов
	log.Printf("[ROUTER] Routes initialized:")
	log.Printf("[ROUTER] GET /")
	log.Printf("[ROUTER] POST /accounts")
	log.Printf("[ROUTER] POST /scheduler/start")
	log.Printf("[ROUTER] POST /app/stop")
	log.Printf("[ROUTER] GET /logs")
	log.Printf("[ROUTER] GET /health")

	return r
}

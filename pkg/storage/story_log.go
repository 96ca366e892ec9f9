package storage

import (
	"log"

	"igs_go/models"
)

// SaveStoryLog добавляет строку журнала попыток.
// Существующие строки никогда не обновляются и не удаляются.
func (db *DB) SaveStoryLog(entry models.StoryLog) error {
	_, err := db.Conn.Exec(
		"INSERT INTO story_logs (username, day, file_path, status, msg) VALUES (?, ?, ?, ?, ?)",
		entry.Username,
		entry.Day,
		entry.FilePath,
		entry.Status,
		entry.Msg,
	)
	if err != nil {
		log.Printf("[DB ERROR] Не удалось сохранить запись журнала: %v", err)
	}
	return err
}

// RecentStoryLogs возвращает последние записи журнала, новые первыми.
func (db *DB) RecentStoryLogs(limit int) ([]models.StoryLog, error) {
	rows, err := db.Conn.Query(
		"SELECT id, username, day, file_path, status, msg, created_at "+
			"FROM story_logs ORDER BY id DESC LIMIT ?",
		limit,
	)
	if err != nil {
		log.Printf("[DB ERROR] Не удалось прочитать журнал: %v", err)
		return nil, err
	}
	defer rows.Close()

	var entries []models.StoryLog
	for rows.Next() {
		var e models.StoryLog
		if err := rows.Scan(&e.ID, &e.Username, &e.Day, &e.FilePath, &e.Status, &e.Msg, &e.CreatedAt); err != nil {
			log.Printf("[DB WARN] Не удалось прочитать строку журнала: %v", err)
			continue // Пропускаем проблемные записи
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

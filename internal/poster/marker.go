package poster

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// MarkerFile возвращает путь к файлу-отметке для пары (день, пользователь).
func MarkerFile(dir, day, username string) string {
	return filepath.Join(dir, fmt.Sprintf("posted_%s_%s.txt", day, username))
}

// PostedToday сообщает, была ли уже публикация для этой пары день-пользователь.
// Сигналом служит само существование файла; автоматически отметка не
// снимается, для повторной публикации файл нужно удалить вручную.
func PostedToday(dir, day, username string) bool {
	_, err := os.Stat(MarkerFile(dir, day, username))
	return err == nil
}

// MarkPosted ставит отметку о выполненной публикации.
// Содержимое файла — только метка времени для ручной диагностики.
func MarkPosted(dir, day, username string) error {
	return os.WriteFile(MarkerFile(dir, day, username), []byte(time.Now().String()), 0o644)
}

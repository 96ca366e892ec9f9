package models

import "time"

// Статусы попытки загрузки сторис.
const (
	StatusSuccess = "SUCCESS"
	StatusFail    = "FAIL"
)

// StoryLog — запись журнала об одной попытке загрузки сторис.
// Журнал только пополняется: каждая попытка, удачная или нет, даёт ровно
// одну строку.
type StoryLog struct {
	ID        int       `json:"id"`         // Уникальный идентификатор записи
	Username  string    `json:"username"`   // Аккаунт, от имени которого шла загрузка
	Day       string    `json:"day"`        // День недели задания
	FilePath  string    `json:"file_path"`  // Путь к загружавшемуся файлу
	Status    string    `json:"status"`     // SUCCESS или FAIL
	Msg       string    `json:"msg"`        // Текст ошибки при неудаче
	CreatedAt time.Time `json:"created_at"` // Время записи
}

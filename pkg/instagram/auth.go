package instagram

import (
	"errors"
	"fmt"
	"log"
	"path/filepath"

	"github.com/Davincible/goinsta/v3"
)

// ErrAuthFailed сообщает, что Instagram отклонил учётные данные.
// Ошибка проверяется через errors.Is, чтобы задание публикации могло
// прервать обработку аккаунта без отметки о выполнении.
var ErrAuthFailed = errors.New("авторизация в Instagram отклонена")

// SessionFile возвращает путь к файлу сессии для имени пользователя.
func SessionFile(sessionsDir, username string) string {
	return filepath.Join(sessionsDir, username+".json")
}

// Login возвращает авторизованный клиент для аккаунта.
// Сначала пробуем восстановить сохранённую сессию, чтобы не проходить
// авторизацию заново; итоговую сессию в любом случае сохраняем обратно,
// чтобы следующий запуск переиспользовал её.
func Login(sessionsDir, username, password string) (*Client, error) {
	sessionFile := SessionFile(sessionsDir, username)

	api, err := goinsta.Import(sessionFile)
	if err != nil {
		api = goinsta.New(username, password)
		if err := api.Login(); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrAuthFailed, err)
		}
	}

	if err := api.Export(sessionFile); err != nil {
		// Потеря файла сессии не мешает текущему запуску, поэтому только логируем.
		log.Printf("[INSTAGRAM WARN] Не удалось сохранить сессию %s: %v", username, err)
	}

	return &Client{api: api}, nil
}

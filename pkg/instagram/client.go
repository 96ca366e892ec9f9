package instagram

import (
	"os"

	"github.com/Davincible/goinsta/v3"
)

// Client оборачивает авторизованный клиент Instagram и публикует сторис.
type Client struct {
	api *goinsta.Instagram
}

// UploadPhotoStory публикует фотографию как сторис.
func (c *Client) UploadPhotoStory(path string) error {
	return c.uploadStory(path)
}

// UploadVideoStory публикует видео как сторис.
func (c *Client) UploadVideoStory(path string) error {
	return c.uploadStory(path)
}

// uploadStory загружает файл как сторис. Тип медиа goinsta определяет по
// содержимому файла, поэтому фото и видео идут одним путём.
func (c *Client) uploadStory(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = c.api.Upload(&goinsta.UploadOptions{
		File:    f,
		IsStory: true,
	})
	return err
}

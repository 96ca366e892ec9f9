package poster

import (
	"image/jpeg"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/webp"
)

// JPEGPath возвращает путь рядом с исходным файлом, но с расширением .jpg.
func JPEGPath(path string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ".jpg"
}

// ConvertWebpToJPEG перекодирует webp-файл в jpeg и возвращает путь к
// новому файлу. Instagram не принимает webp в сторис, поэтому такие файлы
// конвертируются перед загрузкой.
func ConvertWebpToJPEG(path string) (string, error) {
	src, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer src.Close()

	img, err := webp.Decode(src)
	if err != nil {
		return "", err
	}

	jpgPath := JPEGPath(path)
	dst, err := os.Create(jpgPath)
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if err := jpeg.Encode(dst, img, nil); err != nil {
		return "", err
	}
	return jpgPath, nil
}

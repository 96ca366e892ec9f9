package poster

import "testing"

// TestJPEGPath проверяет замену расширения независимо от регистра.
func TestJPEGPath(t *testing.T) {
	cases := map[string]string{
		"/media/pic.webp": "/media/pic.jpg",
		"/media/PIC.WEBP": "/media/PIC.jpg",
		"/media/a.b.webp": "/media/a.b.jpg",
	}
	for in, want := range cases {
		if got := JPEGPath(in); got != want {
			t.Errorf("JPEGPath(%q): ожидался %q, получен %q", in, want, got)
		}
	}
}

// TestConvertMissingFile проверяет, что отсутствующий файл даёт ошибку,
// а не панику.
func TestConvertMissingFile(t *testing.T) {
	if _, err := ConvertWebpToJPEG("/nonexistent/pic.webp"); err == nil {
		t.Errorf("ожидалась ошибка для отсутствующего файла")
	}
}

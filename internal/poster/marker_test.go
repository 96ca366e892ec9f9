package poster

import (
	"strings"
	"testing"
)

// TestMarkerLifecycle проверяет, что отметка появляется после MarkPosted
// и видна через PostedToday.
func TestMarkerLifecycle(t *testing.T) {
	dir := t.TempDir()

	if PostedToday(dir, "monday", "alice") {
		t.Fatalf("отметка не должна существовать до MarkPosted")
	}
	if err := MarkPosted(dir, "monday", "alice"); err != nil {
		t.Fatalf("не удалось поставить отметку: %v", err)
	}
	if !PostedToday(dir, "monday", "alice") {
		t.Errorf("отметка должна существовать после MarkPosted")
	}
	// Отметка другой пары день-пользователь не затрагивается.
	if PostedToday(dir, "tuesday", "alice") {
		t.Errorf("отметка другого дня не должна существовать")
	}
	if PostedToday(dir, "monday", "bob") {
		t.Errorf("отметка другого пользователя не должна существовать")
	}
}

// TestMarkerFileName проверяет детерминированное имя файла-отметки.
func TestMarkerFileName(t *testing.T) {
	path := MarkerFile("/data", "friday", "alice")
	if !strings.HasSuffix(path, "posted_friday_alice.txt") {
		t.Errorf("неожиданное имя файла-отметки: %q", path)
	}
}

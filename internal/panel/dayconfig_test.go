package panel

import "testing"

// TestConvertTo24h проверяет перевод 12-часового времени, включая оба
// правила для двенадцати часов.
func TestConvertTo24h(t *testing.T) {
	cases := []struct {
		hour     int
		minute   int
		meridiem string
		want     string
	}{
		{12, 0, "AM", "00:00"},
		{12, 30, "PM", "12:30"},
		{1, 5, "PM", "13:05"},
		{11, 59, "PM", "23:59"},
		{9, 0, "AM", "09:00"},
		{1, 0, "AM", "01:00"},
	}
	for _, c := range cases {
		got := convertTo24h(c.hour, c.minute, c.meridiem)
		if got != c.want {
			t.Errorf("convertTo24h(%d, %d, %s): ожидалось %q, получено %q",
				c.hour, c.minute, c.meridiem, c.want, got)
		}
	}
}

// TestBuildDayConfig проверяет, что выключенный день не попадает в
// расписание, а включённый получает время в 24-часовом формате.
func TestBuildDayConfig(t *testing.T) {
	if cfg := buildDayConfig("monday", false, "/media", 10, 0, "AM"); cfg != nil {
		t.Errorf("для выключенного дня ожидался nil, получено %+v", cfg)
	}

	cfg := buildDayConfig("monday", true, "/media", 7, 45, "PM")
	if cfg == nil {
		t.Fatalf("для включённого дня ожидалась настройка")
	}
	if cfg.Day != "monday" || cfg.Folder != "/media" || cfg.Time != "19:45" {
		t.Errorf("неожиданная настройка дня: %+v", cfg)
	}
}

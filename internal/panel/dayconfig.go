package panel

import (
	"fmt"

	"igs_go/models"
)

// convertTo24h переводит 12-часовое время в формат HH:MM.
// Полдень остаётся 12:MM, полночь становится 00:MM.
func convertTo24h(hour, minute int, meridiem string) string {
	if meridiem == "PM" && hour != 12 {
		hour += 12
	}
	if meridiem == "AM" && hour == 12 {
		hour = 0
	}
	return fmt.Sprintf("%02d:%02d", hour, minute)
}

// buildDayConfig собирает настройку одного дня недели.
// Для выключенного дня возвращает nil: такой день в расписание не попадает.
func buildDayConfig(day string, enabled bool, folder string, hour, minute int, meridiem string) *models.DayConfig {
	if !enabled {
		return nil
	}
	return &models.DayConfig{
		Day:    day,
		Folder: folder,
		Time:   convertTo24h(hour, minute, meridiem),
	}
}

package models

// WeekDays перечисляет дни недели в порядке регистрации расписания.
// Имена в нижнем регистре служат ключами конфигурации и частью имени
// файла-отметки о публикации.
var WeekDays = []string{
	"monday",
	"tuesday",
	"wednesday",
	"thursday",
	"friday",
	"saturday",
	"sunday",
}

// DayConfig описывает настройку публикаций для одного дня недели.
// Конфигурация собирается из формы панели при каждом запуске планировщика
// и нигде не сохраняется.
type DayConfig struct {
	Day    string `json:"day"`    // День недели в нижнем регистре
	Folder string `json:"folder"` // Папка с медиафайлами для публикации
	Time   string `json:"time"`   // Локальное время публикации в формате HH:MM
}

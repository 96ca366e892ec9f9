package panel

import (
	"errors"
	"sync"

	"igs_go/models"
)

// ErrNoAccounts возвращается при попытке запустить планировщик, когда не
// добавлен ни один аккаунт.
var ErrNoAccounts = errors.New("не добавлен ни один аккаунт")

// State хранит состояние панели управления: добавленные аккаунты и флаг
// запущенного планировщика. Явная структура вместо глобальных переменных,
// чтобы фоновая задача получала независимый снимок данных.
type State struct {
	mu       sync.Mutex
	accounts []models.Account
	running  bool
}

func NewState() *State {
	return &State{}
}

// AddAccount добавляет аккаунт в память процесса.
// Аккаунты живут до завершения процесса и нигде не сохраняются.
func (s *State) AddAccount(acc models.Account) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accounts = append(s.accounts, acc)
}

// Accounts возвращает копию списка аккаунтов, пригодную для передачи в
// фоновую задачу без общей памяти.
func (s *State) Accounts() []models.Account {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Account, len(s.accounts))
	copy(out, s.accounts)
	return out
}

// StartRunning отмечает планировщик запущенным.
// Возвращает false, если он уже работает: второй параллельный цикл
// привёл бы к двойным публикациям.
func (s *State) StartRunning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		return false
	}
	s.running = true
	return true
}

// StopRunning снимает флаг запущенного планировщика, чтобы неудавшийся
// запуск не блокировал последующие попытки.
func (s *State) StopRunning() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.running = false
}

// Running сообщает, запущен ли планировщик.
func (s *State) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

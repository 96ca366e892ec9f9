package panel

import (
	"testing"

	"igs_go/models"
)

// TestStateAccountsSnapshot проверяет, что Accounts возвращает независимую
// копию: изменения копии не затрагивают состояние панели.
func TestStateAccountsSnapshot(t *testing.T) {
	s := NewState()
	s.AddAccount(models.Account{Username: "alice", Password: "pw"})

	snapshot := s.Accounts()
	if len(snapshot) != 1 {
		t.Fatalf("ожидался 1 аккаунт, получено %d", len(snapshot))
	}
	snapshot[0].Username = "mallory"

	if got := s.Accounts()[0].Username; got != "alice" {
		t.Errorf("изменение снимка затронуло состояние: %q", got)
	}
}

// TestStateStartRunningOnce проверяет, что повторный запуск планировщика
// не допускается.
func TestStateStartRunningOnce(t *testing.T) {
	s := NewState()
	if s.Running() {
		t.Fatalf("планировщик не должен быть запущен изначально")
	}
	if !s.StartRunning() {
		t.Fatalf("первый запуск должен быть разрешён")
	}
	if s.StartRunning() {
		t.Errorf("повторный запуск должен быть отклонён")
	}
	if !s.Running() {
		t.Errorf("после запуска флаг должен быть установлен")
	}
}

// TestStateStopRunningAllowsRestart проверяет, что после снятия флага
// запуск снова разрешён: неудавшийся старт не должен блокировать панель.
func TestStateStopRunningAllowsRestart(t *testing.T) {
	s := NewState()
	if !s.StartRunning() {
		t.Fatalf("первый запуск должен быть разрешён")
	}
	s.StopRunning()
	if s.Running() {
		t.Errorf("после StopRunning флаг должен быть снят")
	}
	if !s.StartRunning() {
		t.Errorf("после StopRunning запуск должен быть снова разрешён")
	}
}

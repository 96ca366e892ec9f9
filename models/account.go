package models

// Account хранит учётные данные одного аккаунта Instagram, добавленного
// через панель управления. Пароль живёт только в памяти процесса и в
// долговременное хранилище не попадает.
type Account struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

package storage

import (
	"database/sql"

	_ "github.com/mattn/go-sqlite3"
)

type DB struct {
	Conn *sql.DB
}

func NewDB(conn *sql.DB) *DB {
	return &DB{Conn: conn}
}

// InitSchema создаёт таблицу журнала, если её ещё нет.
// Схема разворачивается при старте процесса, чтобы инструмент работал
// без отдельных миграций.
func (db *DB) InitSchema() error {
	_, err := db.Conn.Exec(`
               CREATE TABLE IF NOT EXISTS story_logs (
                       id INTEGER PRIMARY KEY AUTOINCREMENT,
                       username TEXT,
                       day TEXT,
                       file_path TEXT,
                       status TEXT,
                       msg TEXT,
                       created_at DATETIME DEFAULT CURRENT_TIMESTAMP
               )
       `)
	return err
}

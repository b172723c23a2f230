package storage

import (
	"database/sql"
	"strings"
	"time"

	// Register sqlite3 driver
	_ "github.com/mattn/go-sqlite3"
)

type DB interface {
	Exec(query string, args ...any) (sql.Result, error)
	Query(query string, args ...any) (*sql.Rows, error)
	Close() error
}

func OpenSQLite(dsn string) (DB, error) {
	return sql.Open("sqlite3", dsn)
}

func InitSchema(db DB) error {
	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS reminders_fired(
		plan TEXT NOT NULL, fired_on TEXT NOT NULL,
		PRIMARY KEY(plan, fired_on)
	)`)
	return err
}

// ReminderLog records which plan reminders went out on which calendar day,
// so the scheduler never double-fires within a day, including across process
// restarts. Plan names are stored lowercased to match the case-insensitive
// plan key.
type ReminderLog struct{ db DB }

func NewReminderLog(db DB) *ReminderLog { return &ReminderLog{db: db} }

func (l *ReminderLog) AlreadyFired(plan string, day time.Time) (bool, error) {
	rows, err := l.db.Query(`SELECT 1 FROM reminders_fired WHERE plan=? AND fired_on=?`,
		strings.ToLower(plan), day.Format("2006-01-02"))
	if err != nil {
		return false, err
	}
	defer rows.Close()
	return rows.Next(), rows.Err()
}

func (l *ReminderLog) MarkFired(plan string, day time.Time) error {
	_, err := l.db.Exec(`INSERT OR IGNORE INTO reminders_fired(plan,fired_on) VALUES(?,?)`,
		strings.ToLower(plan), day.Format("2006-01-02"))
	return err
}

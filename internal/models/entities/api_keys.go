package entities

import "time"

type ApiKey struct {
	ID        string    `db:"id"`
	Key       string    `db:"key"`
	Label     string    `db:"label"`
	Status    bool      `db:"status"`
	CreatedAt time.Time `db:"created_at"`
}

package store

import (
	"database/sql"
	"encoding/json"

	_ "github.com/lib/pq"
)

// OpenPostgres connects to a Postgres database and ensures the key-value
// table exists. This is the remote backend for users who keep their events
// on another machine.
func OpenPostgres(dsn string) (*sql.DB, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, err
	}
	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS kv (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL,
			lastmodified TIMESTAMP NOT NULL DEFAULT NOW()
		)
	`)
	if err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

// Postgres stores the value as a JSON blob in the kv table.
type Postgres[T any] struct {
	db  *sql.DB
	key string
}

// NewPostgres creates a Postgres-backed store for one key on an open
// database.
func NewPostgres[T any](db *sql.DB, key string) *Postgres[T] {
	return &Postgres[T]{db: db, key: key}
}

// Load reads and decodes the row for the store's key.
func (p *Postgres[T]) Load() (T, error) {
	var v T
	var raw string
	err := p.db.QueryRow("SELECT value FROM kv WHERE key = $1", p.key).Scan(&raw)
	if err == sql.ErrNoRows {
		return v, ErrNotFound
	}
	if err != nil {
		return v, err
	}
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		return v, err
	}
	return v, nil
}

// Save upserts the encoded value.
func (p *Postgres[T]) Save(v T) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	_, err = p.db.Exec(
		`INSERT INTO kv (key, value, lastmodified) VALUES ($1, $2, NOW())
		 ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, lastmodified = NOW()`,
		p.key, string(data),
	)
	return err
}

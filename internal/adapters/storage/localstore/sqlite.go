package localstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	_ "modernc.org/sqlite"
)

// SQLiteKV guarda los blobs en una tabla kv de una base SQLite embebida.
// Sigue siendo storage local de proceso único, solo que en un archivo .db.
type SQLiteKV struct {
	db *sql.DB
}

func OpenSQLite(path string) (*SQLiteKV, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("localstore: open sqlite: %w", err)
	}
	// el driver no soporta escrituras concurrentes sobre la misma conexión
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS kv (
			key   TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)
	`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("localstore: init sqlite schema: %w", err)
	}

	return &SQLiteKV{db: db}, nil
}

func (s *SQLiteKV) Close() error { return s.db.Close() }

func (s *SQLiteKV) Save(ctx context.Context, key string, value any) error {
	b, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("localstore: marshal %s: %w", key, err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO kv (key, value) VALUES (?, ?)
		ON CONFLICT (key) DO UPDATE SET value = excluded.value
	`, key, string(b))
	if err != nil {
		return fmt.Errorf("localstore: save %s: %w", key, err)
	}
	return nil
}

func (s *SQLiteKV) Load(ctx context.Context, key string, dst any) (bool, error) {
	var raw string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, key).Scan(&raw)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("localstore: load %s: %w", key, err)
	}

	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		// blob corrupto: se descarta y se reporta ausente
		_ = s.Remove(ctx, key)
		return false, nil
	}
	return true, nil
}

func (s *SQLiteKV) Remove(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM kv WHERE key = ?`, key); err != nil {
		return fmt.Errorf("localstore: remove %s: %w", key, err)
	}
	return nil
}

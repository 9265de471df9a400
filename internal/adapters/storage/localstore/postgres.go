package localstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// PostgresKV es el mismo bridge kv sobre Postgres, para despliegues donde
// el "storage local" vive en una base compartida. Escritor único igual:
// no hay coordinación multi-proceso más allá de last-write-wins.
type PostgresKV struct {
	db *sql.DB
}

// OpenPostgres abre un pool vía pgx (database/sql) y prepara la tabla kv.
func OpenPostgres(dsn string) (*PostgresKV, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("localstore: open postgres: %w", err)
	}

	// defaults razonables (ajustable luego)
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxIdleTime(5 * time.Minute)
	db.SetConnMaxLifetime(30 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("localstore: ping postgres: %w", err)
	}

	if _, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS kv (
			key   TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)
	`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("localstore: init postgres schema: %w", err)
	}

	return &PostgresKV{db: db}, nil
}

func (p *PostgresKV) Close() error { return p.db.Close() }

func (p *PostgresKV) Save(ctx context.Context, key string, value any) error {
	b, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("localstore: marshal %s: %w", key, err)
	}

	_, err = p.db.ExecContext(ctx, `
		INSERT INTO kv (key, value) VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value
	`, key, string(b))
	if err != nil {
		return fmt.Errorf("localstore: save %s: %w", key, err)
	}
	return nil
}

func (p *PostgresKV) Load(ctx context.Context, key string, dst any) (bool, error) {
	var raw string
	err := p.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = $1`, key).Scan(&raw)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("localstore: load %s: %w", key, err)
	}

	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		// blob corrupto: se descarta y se reporta ausente
		_ = p.Remove(ctx, key)
		return false, nil
	}
	return true, nil
}

func (p *PostgresKV) Remove(ctx context.Context, key string) error {
	if _, err := p.db.ExecContext(ctx, `DELETE FROM kv WHERE key = $1`, key); err != nil {
		return fmt.Errorf("localstore: remove %s: %w", key, err)
	}
	return nil
}

package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// PostgresStore is the server-grade relational backend. Same table shape as
// the sqlite store; the database serializes concurrent inserts itself.
type PostgresStore struct {
	db *sql.DB
}

func OpenPostgres(ctx context.Context, databaseURL string) (*PostgresStore, error) {
	db, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	db.SetConnMaxIdleTime(5 * time.Minute)
	db.SetConnMaxLifetime(30 * time.Minute)
	db.SetMaxIdleConns(10)
	db.SetMaxOpenConns(20)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping db: %w", err)
	}

	schema := `
CREATE TABLE IF NOT EXISTS store (
  idx     BIGSERIAL PRIMARY KEY,
  id      VARCHAR(255),
  content TEXT
);
CREATE INDEX IF NOT EXISTS store_id ON store (id);`
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create store table: %w", err)
	}

	return &PostgresStore{db: db}, nil
}

func (s *PostgresStore) Add(ctx context.Context, discussionID, record string) error {
	if _, err := s.db.ExecContext(ctx,
		"INSERT INTO store (id, content) VALUES ($1, $2)", discussionID, record); err != nil {
		return fmt.Errorf("insert record: %w", err)
	}
	return nil
}

func (s *PostgresStore) Get(ctx context.Context, discussionID string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT content FROM store WHERE id = $1 ORDER BY idx", discussionID)
	if err != nil {
		return nil, fmt.Errorf("select records: %w", err)
	}
	defer rows.Close()

	var records []string
	for rows.Next() {
		var content string
		if err := rows.Scan(&content); err != nil {
			return nil, fmt.Errorf("scan record: %w", err)
		}
		records = append(records, content)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read records: %w", err)
	}
	return records, nil
}

func (s *PostgresStore) Close() error {
	return s.db.Close()
}

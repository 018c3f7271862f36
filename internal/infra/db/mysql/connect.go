package mysql

import (
	"context"
	"database/sql"
	"time"

	_ "github.com/go-sql-driver/mysql"
)

func Connect(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(30 * time.Minute)

	// test ping
	ctx2, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx2); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

// Migrate creates the tables this package reads and writes.
func Migrate(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS legal_documents (
  id VARCHAR(64) NOT NULL PRIMARY KEY,
  filename VARCHAR(255) NOT NULL,
  mime_type VARCHAR(128) NOT NULL,
  text_content LONGTEXT NOT NULL,
  source_key VARCHAR(512) NOT NULL DEFAULT '',
  created_at DATETIME(6) NOT NULL
) CHARACTER SET utf8mb4`,
		`CREATE TABLE IF NOT EXISTS legal_analyses (
  id VARCHAR(64) NOT NULL PRIMARY KEY,
  document_id VARCHAR(64) NOT NULL,
  analysis_type VARCHAR(32) NOT NULL,
  result_text LONGTEXT NOT NULL,
  created_at DATETIME(6) NOT NULL,
  KEY idx_legal_analyses_doc (document_id, analysis_type, created_at)
) CHARACTER SET utf8mb4`,
	}
	for _, q := range stmts {
		if _, err := db.ExecContext(ctx, q); err != nil {
			return err
		}
	}
	return nil
}

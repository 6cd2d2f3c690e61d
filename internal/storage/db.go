package storage

import (
	"context"
	"database/sql"
	"log"
	"time"

	_ "github.com/lib/pq" // PostgreSQL driver
)

type DB struct {
	connection *sql.DB
}

func NewDB(dataSourceName string) (*DB, error) {
	db, err := sql.Open("postgres", dataSourceName)
	if err != nil {
		return nil, err
	}

	// Connection pool tuning
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, err
	}

	return &DB{connection: db}, nil
}

func (db *DB) Close() {
	if err := db.connection.Close(); err != nil {
		log.Println("Error closing the database connection:", err)
	}
}

// EnsureSchema creates the tables on first start if they do not exist.
func (db *DB) EnsureSchema(ctx context.Context) error {
	_, err := db.connection.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS resume_files (
			id BIGSERIAL PRIMARY KEY,
			request_id TEXT NOT NULL,
			filename TEXT NOT NULL,
			file_type TEXT NOT NULL,
			file_size BIGINT NOT NULL,
			raw_text TEXT NOT NULL,
			uploaded_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);
		CREATE TABLE IF NOT EXISTS resume_entities (
			id BIGSERIAL PRIMARY KEY,
			resume_file_id BIGINT NOT NULL REFERENCES resume_files(id) ON DELETE CASCADE,
			entity_type TEXT NOT NULL,
			entity_value TEXT NOT NULL,
			confidence DOUBLE PRECISION NOT NULL DEFAULT 0
		);
		CREATE INDEX IF NOT EXISTS idx_resume_entities_type_value
			ON resume_entities (entity_type, entity_value);
	`)
	return err
}

// SaveResumeFile stores an uploaded resume's metadata and raw text.
func (db *DB) SaveResumeFile(ctx context.Context, requestID, filename, fileType string, fileSize int64, rawText string) (int64, error) {
	var id int64
	query := `
		INSERT INTO resume_files (request_id, filename, file_type, file_size, raw_text, uploaded_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING id
	`
	err := db.connection.QueryRowContext(ctx, query,
		requestID, filename, fileType, fileSize, rawText,
	).Scan(&id)

	return id, err
}

// SaveEntity stores one extracted entity for a resume.
func (db *DB) SaveEntity(ctx context.Context, resumeFileID int64, entityType, entityValue string, confidence float64) error {
	query := `
		INSERT INTO resume_entities (resume_file_id, entity_type, entity_value, confidence)
		VALUES ($1, $2, $3, $4)
	`
	_, err := db.connection.ExecContext(ctx, query, resumeFileID, entityType, entityValue, confidence)
	return err
}

// ListRecentResumes returns the most recently uploaded resumes.
func (db *DB) ListRecentResumes(ctx context.Context, limit int) ([]ResumeRecord, error) {
	if limit <= 0 {
		limit = 20
	}
	query := `
		SELECT id, request_id, filename, file_type, file_size, LENGTH(raw_text), uploaded_at
		FROM resume_files
		ORDER BY uploaded_at DESC
		LIMIT $1
	`
	rows, err := db.connection.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := []ResumeRecord{}
	for rows.Next() {
		var r ResumeRecord
		if err := rows.Scan(&r.ID, &r.RequestID, &r.Filename, &r.FileType, &r.FileSize, &r.TextLength, &r.UploadedAt); err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

// ListEntities returns the extracted entities stored for one resume.
func (db *DB) ListEntities(ctx context.Context, resumeFileID int64) ([]Entity, error) {
	query := `
		SELECT resume_file_id, entity_type, entity_value, confidence
		FROM resume_entities
		WHERE resume_file_id = $1
		ORDER BY entity_type, entity_value
	`
	rows, err := db.connection.QueryContext(ctx, query, resumeFileID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entities := []Entity{}
	for rows.Next() {
		var e Entity
		if err := rows.Scan(&e.ResumeID, &e.Type, &e.Value, &e.Confidence); err != nil {
			return nil, err
		}
		entities = append(entities, e)
	}
	return entities, rows.Err()
}

// GetConnection returns the underlying database connection for advanced queries
func (db *DB) GetConnection() *sql.DB {
	return db.connection
}

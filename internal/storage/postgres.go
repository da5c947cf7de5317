package storage

import (
	"context"
	"database/sql"
	"embed"
	"fmt"

	"mailtriage/internal/models"

	_ "github.com/lib/pq"
)

//go:embed migrations.sql
var migrations embed.FS

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(config DatabaseConfig) (*PostgresStore, error) {
	connStr := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		config.Host, config.Port, config.User, config.Password, config.DBName, config.SSLMode)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("error opening database: %v", err)
	}

	// Test the connection
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("error connecting to the database: %v", err)
	}

	store := &PostgresStore{db: db}

	if err := store.initializeSchema(); err != nil {
		return nil, fmt.Errorf("error initializing database schema: %v", err)
	}

	return store, nil
}

func (s *PostgresStore) initializeSchema() error {
	migrationSQL, err := migrations.ReadFile("migrations.sql")
	if err != nil {
		return fmt.Errorf("error reading migrations file: %v", err)
	}

	_, err = s.db.Exec(string(migrationSQL))
	if err != nil {
		return fmt.Errorf("error executing migrations: %v", err)
	}

	return nil
}

func (s *PostgresStore) Append(ctx context.Context, record *models.FeedbackRecord) error {
	query := `
		INSERT INTO feedback (id, created_at, original_category, corrected_category, text_preview)
		VALUES ($1, $2, $3, $4, $5)`

	_, err := s.db.ExecContext(
		ctx,
		query,
		record.ID,
		record.Timestamp,
		record.OriginalCategory,
		record.CorrectedCategory,
		record.TextPreview,
	)
	if err != nil {
		return fmt.Errorf("error inserting feedback: %v", err)
	}

	return nil
}

func (s *PostgresStore) List(ctx context.Context) ([]models.FeedbackRecord, error) {
	query := `
		SELECT id, created_at, original_category, corrected_category, text_preview
		FROM feedback
		ORDER BY created_at`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error querying feedback: %v", err)
	}
	defer rows.Close()

	records := []models.FeedbackRecord{}
	for rows.Next() {
		var record models.FeedbackRecord
		if err := rows.Scan(
			&record.ID,
			&record.Timestamp,
			&record.OriginalCategory,
			&record.CorrectedCategory,
			&record.TextPreview,
		); err != nil {
			return nil, fmt.Errorf("error scanning feedback: %v", err)
		}
		records = append(records, record)
	}

	return records, rows.Err()
}

func (s *PostgresStore) Close() error {
	return s.db.Close()
}

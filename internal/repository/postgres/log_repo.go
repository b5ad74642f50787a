package postgres

import (
	"context"
	"fmt"

	"github.com/costwatch/costwatch-backend/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
)

// LogRepository implements domain.LogRepository using PostgreSQL
type LogRepository struct {
	pool *pgxpool.Pool
}

// NewLogRepository creates a new LogRepository
func NewLogRepository(pool *pgxpool.Pool) *LogRepository {
	return &LogRepository{pool: pool}
}

// Insert persists a log entry.
func (r *LogRepository) Insert(ctx context.Context, entry *domain.LogEntry) error {
	query := `
		INSERT INTO logs (id, level, time, msg, method, url, status_code)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.pool.Exec(ctx, query,
		entry.ID,
		entry.Level,
		entry.Time,
		entry.Message,
		entry.Method,
		entry.URL,
		entry.StatusCode,
	)
	if err != nil {
		return fmt.Errorf("inserting log entry: %w", err)
	}
	return nil
}

// List retrieves all log entries, newest first.
func (r *LogRepository) List(ctx context.Context) ([]*domain.LogEntry, error) {
	query := `SELECT id, level, time, msg, method, url, status_code FROM logs ORDER BY time DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying logs: %w", err)
	}
	defer rows.Close()

	var entries []*domain.LogEntry
	for rows.Next() {
		var entry domain.LogEntry
		if err := rows.Scan(
			&entry.ID,
			&entry.Level,
			&entry.Time,
			&entry.Message,
			&entry.Method,
			&entry.URL,
			&entry.StatusCode,
		); err != nil {
			return nil, fmt.Errorf("scanning log entry: %w", err)
		}
		entries = append(entries, &entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading logs: %w", err)
	}

	return entries, nil
}

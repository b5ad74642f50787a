package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/costwatch/costwatch-backend/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ReportCacheRepository implements domain.ReportCacheRepository using
// PostgreSQL. The cached report is stored as a whole JSONB document keyed
// uniquely by (user_id, year, month), so a concurrent reader observes either
// the full previous entry or the full replacement, never a partial one.
type ReportCacheRepository struct {
	pool *pgxpool.Pool
}

// NewReportCacheRepository creates a new ReportCacheRepository
func NewReportCacheRepository(pool *pgxpool.Pool) *ReportCacheRepository {
	return &ReportCacheRepository{pool: pool}
}

// Get retrieves the cached report for (userID, year, month).
func (r *ReportCacheRepository) Get(ctx context.Context, userID int64, year, month int) (*domain.Report, error) {
	query := `SELECT report FROM report_cache WHERE user_id = $1 AND year = $2 AND month = $3`

	var doc []byte
	err := r.pool.QueryRow(ctx, query, userID, year, month).Scan(&doc)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrReportNotCached
		}
		return nil, fmt.Errorf("getting cached report: %w", err)
	}

	var report domain.Report
	if err := json.Unmarshal(doc, &report); err != nil {
		return nil, fmt.Errorf("decoding cached report: %w", err)
	}
	return &report, nil
}

// Upsert inserts or replaces the cache entry for the report's period.
func (r *ReportCacheRepository) Upsert(ctx context.Context, report *domain.Report) error {
	doc, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}

	query := `
		INSERT INTO report_cache (user_id, year, month, report)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, year, month) DO UPDATE SET report = EXCLUDED.report
	`

	if _, err := r.pool.Exec(ctx, query, report.UserID, report.Year, report.Month, doc); err != nil {
		return fmt.Errorf("upserting cached report: %w", err)
	}
	return nil
}

// Delete removes the cache entry for (userID, year, month), if any.
func (r *ReportCacheRepository) Delete(ctx context.Context, userID int64, year, month int) error {
	query := `DELETE FROM report_cache WHERE user_id = $1 AND year = $2 AND month = $3`

	if _, err := r.pool.Exec(ctx, query, userID, year, month); err != nil {
		return fmt.Errorf("deleting cached report: %w", err)
	}
	return nil
}

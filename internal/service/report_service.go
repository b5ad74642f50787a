package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/costwatch/costwatch-backend/internal/domain"
	"github.com/costwatch/costwatch-backend/internal/util"
	"github.com/rs/zerolog/log"
)

// ReportService handles monthly report generation and the historical report
// cache. The cache policy: months strictly before the current month are
// served from the cache when possible and written back after a recompute;
// the current and future months are always computed live because their data
// can still change before the period closes.
type ReportService struct {
	expenseRepo domain.ExpenseRepository
	cacheRepo   domain.ReportCacheRepository
	userRepo    domain.UserRepository
	now         func() time.Time
}

// NewReportService creates a new ReportService
func NewReportService(expenseRepo domain.ExpenseRepository, cacheRepo domain.ReportCacheRepository, userRepo domain.UserRepository) *ReportService {
	return &ReportService{
		expenseRepo: expenseRepo,
		cacheRepo:   cacheRepo,
		userRepo:    userRepo,
		now:         time.Now,
	}
}

// GetReport returns the categorized cost report for a user's calendar month.
func (s *ReportService) GetReport(ctx context.Context, userID int64, year, month int) (*domain.Report, error) {
	if month < 1 || month > 12 {
		return nil, domain.ErrInvalidPeriod
	}

	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("checking user: %w", err)
	}
	if !exists {
		return nil, domain.ErrUserNotFound
	}

	historical := util.IsHistoricalMonth(year, month, s.now())

	// Cached historical reports are returned verbatim. Historical expense
	// data is immutable by contract of the ingestion date policy, so a
	// cached report never goes stale on its own; only a backfilled insert
	// invalidates it.
	if historical {
		cached, err := s.cacheRepo.Get(ctx, userID, year, month)
		if err == nil {
			return cached, nil
		}
		if !errors.Is(err, domain.ErrReportNotCached) {
			// Cache lookup is optional; a failing cache store must not
			// take down the read path.
			log.Warn().Err(err).
				Int64("user_id", userID).
				Int("year", year).
				Int("month", month).
				Msg("Report cache lookup failed, recomputing")
		}
	}

	from, to := util.MonthInterval(year, month)
	expenses, err := s.expenseRepo.FindByUserAndRange(ctx, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("fetching expenses: %w", err)
	}

	report := domain.BuildReport(userID, year, month, expenses)

	// Best-effort cache fill. A write failure is logged, not surfaced: the
	// read already has a correct, freshly computed report to return.
	if historical {
		if err := s.cacheRepo.Upsert(ctx, report); err != nil {
			log.Warn().Err(err).
				Int64("user_id", userID).
				Int("year", year).
				Int("month", month).
				Msg("Report caching failed")
		}
	}

	return report, nil
}

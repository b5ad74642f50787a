package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/costwatch/costwatch-backend/internal/domain"
	"github.com/costwatch/costwatch-backend/internal/util"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// ExpenseService handles expense ingestion and per-user cost aggregation.
type ExpenseService struct {
	expenseRepo domain.ExpenseRepository
	cacheRepo   domain.ReportCacheRepository
	userRepo    domain.UserRepository
	now         func() time.Time
}

// NewExpenseService creates a new ExpenseService
func NewExpenseService(expenseRepo domain.ExpenseRepository, cacheRepo domain.ReportCacheRepository, userRepo domain.UserRepository) *ExpenseService {
	return &ExpenseService{
		expenseRepo: expenseRepo,
		cacheRepo:   cacheRepo,
		userRepo:    userRepo,
		now:         time.Now,
	}
}

// AddExpenseInput holds the input for recording an expense
type AddExpenseInput struct {
	UserID      int64
	Category    domain.Category
	Description string
	Sum         decimal.Decimal
	Date        *time.Time
}

// AddExpense validates and persists a new expense, then invalidates the
// report cache entry of the expense's own month if that month is already
// closed.
//
// Date policy: the effective date defaults to now; dates on a calendar day
// strictly before today are rejected. Same-day and forward dates are allowed.
// This asymmetry is what keeps cached historical reports valid: a closed day
// can never gain new entries except through the invalidation path below.
func (s *ExpenseService) AddExpense(ctx context.Context, input AddExpenseInput) (*domain.Expense, error) {
	description := strings.TrimSpace(input.Description)
	if description == "" {
		return nil, domain.ErrDescriptionRequired
	}
	if len(description) > domain.MaxDescriptionLength {
		return nil, fmt.Errorf("%w: description exceeds %d characters", domain.ErrDescriptionRequired, domain.MaxDescriptionLength)
	}

	if !input.Category.Valid() {
		return nil, domain.ErrInvalidCategory
	}

	if input.Sum.IsNegative() {
		return nil, domain.ErrNegativeSum
	}

	if input.UserID <= 0 {
		return nil, domain.ErrInvalidUserID
	}

	exists, err := s.userRepo.Exists(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("checking user: %w", err)
	}
	if !exists {
		return nil, domain.ErrUserNotFound
	}

	now := s.now()
	date := now
	if input.Date != nil {
		date = *input.Date
	}

	if util.BeforeDay(date, now) {
		return nil, domain.ErrPastDate
	}

	created, err := s.expenseRepo.Create(ctx, &domain.Expense{
		UserID:      input.UserID,
		Category:    input.Category,
		Description: description,
		Sum:         input.Sum,
		Date:        date,
	})
	if err != nil {
		return nil, fmt.Errorf("creating expense: %w", err)
	}

	// The expense's own month decides invalidation: an entry landing in a
	// closed month makes any cached report for that month stale. The clock is
	// re-read after the insert so a month rollover between the date-policy
	// check and this point still invalidates correctly. Deletion is
	// best-effort; the insert has already committed and must not be failed
	// retroactively.
	if util.IsHistoricalMonth(date.Year(), int(date.Month()), s.now()) {
		if err := s.cacheRepo.Delete(ctx, input.UserID, date.Year(), int(date.Month())); err != nil {
			log.Warn().Err(err).
				Int64("user_id", input.UserID).
				Int("year", date.Year()).
				Int("month", int(date.Month())).
				Msg("Report cache invalidation failed")
		}
	}

	return created, nil
}

// UserTotal sums every expense of the user regardless of date. Never cached;
// recomputed on each call. An empty expense set totals to zero.
func (s *ExpenseService) UserTotal(ctx context.Context, userID int64) (decimal.Decimal, error) {
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return decimal.Zero, fmt.Errorf("checking user: %w", err)
	}
	if !exists {
		return decimal.Zero, domain.ErrUserNotFound
	}

	total, err := s.expenseRepo.SumByUser(ctx, userID)
	if err != nil {
		return decimal.Zero, fmt.Errorf("summing expenses: %w", err)
	}
	return total, nil
}

package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/costwatch/costwatch-backend/internal/domain"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// ExpenseRepository implements domain.ExpenseRepository using PostgreSQL
type ExpenseRepository struct {
	pool *pgxpool.Pool
}

// NewExpenseRepository creates a new ExpenseRepository
func NewExpenseRepository(pool *pgxpool.Pool) *ExpenseRepository {
	return &ExpenseRepository{pool: pool}
}

// Create persists a new expense and returns it with its assigned ID.
func (r *ExpenseRepository) Create(ctx context.Context, expense *domain.Expense) (*domain.Expense, error) {
	sum, err := decimalToPgNumeric(expense.Sum)
	if err != nil {
		return nil, fmt.Errorf("invalid sum: %w", err)
	}

	query := `
		INSERT INTO costs (user_id, category, description, sum, date)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	created := *expense
	err = r.pool.QueryRow(ctx, query,
		expense.UserID,
		string(expense.Category),
		expense.Description,
		sum,
		expense.Date,
	).Scan(&created.ID, &created.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("creating expense: %w", err)
	}

	return &created, nil
}

// FindByUserAndRange returns the user's expenses within [from, to], ascending by date.
func (r *ExpenseRepository) FindByUserAndRange(ctx context.Context, userID int64, from, to time.Time) ([]*domain.Expense, error) {
	query := `
		SELECT id, user_id, category, description, sum, date, created_at
		FROM costs
		WHERE user_id = $1 AND date >= $2 AND date <= $3
		ORDER BY date ASC
	`

	rows, err := r.pool.Query(ctx, query, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("querying expenses: %w", err)
	}
	defer rows.Close()

	var expenses []*domain.Expense
	for rows.Next() {
		var (
			expense  domain.Expense
			category string
			sum      pgtype.Numeric
		)
		if err := rows.Scan(
			&expense.ID,
			&expense.UserID,
			&category,
			&expense.Description,
			&sum,
			&expense.Date,
			&expense.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning expense: %w", err)
		}
		expense.Category = domain.Category(category)
		expense.Sum = pgNumericToDecimal(sum)
		expenses = append(expenses, &expense)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading expenses: %w", err)
	}

	return expenses, nil
}

// SumByUser totals all expense sums for a user. No rows yields zero.
func (r *ExpenseRepository) SumByUser(ctx context.Context, userID int64) (decimal.Decimal, error) {
	query := `SELECT COALESCE(SUM(sum), 0) FROM costs WHERE user_id = $1`

	var total pgtype.Numeric
	if err := r.pool.QueryRow(ctx, query, userID).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("summing expenses: %w", err)
	}

	return pgNumericToDecimal(total), nil
}

func decimalToPgNumeric(d decimal.Decimal) (pgtype.Numeric, error) {
	var num pgtype.Numeric
	if err := num.Scan(d.String()); err != nil {
		return pgtype.Numeric{}, err
	}
	return num, nil
}

func pgNumericToDecimal(n pgtype.Numeric) decimal.Decimal {
	if !n.Valid || n.Int == nil {
		return decimal.Zero
	}
	return decimal.NewFromBigInt(n.Int, n.Exp)
}

package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type Category string

const (
	CategoryFood      Category = "food"
	CategoryHealth    Category = "health"
	CategoryHousing   Category = "housing"
	CategorySports    Category = "sports"
	CategoryEducation Category = "education"
)

// Categories is the closed set of valid expense categories.
var Categories = []Category{
	CategoryFood,
	CategoryHealth,
	CategoryHousing,
	CategorySports,
	CategoryEducation,
}

// Valid reports whether c is a member of the closed category set.
func (c Category) Valid() bool {
	for _, cat := range Categories {
		if c == cat {
			return true
		}
	}
	return false
}

// Expense is a single cost entry. Once stored it is immutable: there is no
// update or delete path, which is what allows cached historical reports to be
// treated as permanently valid.
type Expense struct {
	ID          int64           `json:"id"`
	UserID      int64           `json:"userid"`
	Category    Category        `json:"category"`
	Description string          `json:"description"`
	Sum         decimal.Decimal `json:"sum"`
	Date        time.Time       `json:"date"`
	CreatedAt   time.Time       `json:"createdAt"`
}

type ExpenseRepository interface {
	Create(ctx context.Context, expense *Expense) (*Expense, error)
	// FindByUserAndRange returns the user's expenses with date in [from, to],
	// ordered ascending by date.
	FindByUserAndRange(ctx context.Context, userID int64, from, to time.Time) ([]*Expense, error)
	// SumByUser totals the sum column over every expense of the user.
	// An empty expense set yields decimal zero.
	SumByUser(ctx context.Context, userID int64) (decimal.Decimal, error)
}

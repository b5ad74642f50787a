package domain

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// ReportCategories is the canonical bucket order of every report. It matches
// the external report contract and is deliberately not alphabetical.
var ReportCategories = []Category{
	CategoryFood,
	CategoryEducation,
	CategoryHealth,
	CategoryHousing,
	CategorySports,
}

// CostItem is a single line item inside a report bucket.
type CostItem struct {
	Sum         decimal.Decimal `json:"sum"`
	Description string          `json:"description"`
	Day         int             `json:"day"`
}

// CategoryCosts is one report bucket. On the wire it is a single-key object,
// {"food": [...]}, per the external report contract.
type CategoryCosts struct {
	Category Category
	Items    []CostItem
}

func (c CategoryCosts) MarshalJSON() ([]byte, error) {
	items := c.Items
	if items == nil {
		items = []CostItem{}
	}
	return json.Marshal(map[Category][]CostItem{c.Category: items})
}

func (c *CategoryCosts) UnmarshalJSON(data []byte) error {
	var raw map[Category][]CostItem
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if len(raw) != 1 {
		return fmt.Errorf("expected single-category bucket, got %d keys", len(raw))
	}
	for category, items := range raw {
		c.Category = category
		c.Items = items
	}
	return nil
}

// Report is the derived monthly cost document. It is a pure function of the
// expenses it was built from and is always recomputable; the cache store never
// holds anything that cannot be rebuilt from the expense store.
type Report struct {
	UserID int64           `json:"userid"`
	Year   int             `json:"year"`
	Month  int             `json:"month"`
	Costs  []CategoryCosts `json:"costs"`
}

// BuildReport projects expenses into the canonical report shape. Every
// category appears in ReportCategories order, populated or not. The caller is
// responsible for passing only expenses that belong to userID and fall inside
// the target month, already ordered ascending by date.
func BuildReport(userID int64, year, month int, expenses []*Expense) *Report {
	buckets := make(map[Category][]CostItem, len(ReportCategories))
	for _, category := range ReportCategories {
		buckets[category] = []CostItem{}
	}

	for _, expense := range expenses {
		buckets[expense.Category] = append(buckets[expense.Category], CostItem{
			Sum:         expense.Sum,
			Description: expense.Description,
			Day:         expense.Date.Day(),
		})
	}

	costs := make([]CategoryCosts, 0, len(ReportCategories))
	for _, category := range ReportCategories {
		costs = append(costs, CategoryCosts{Category: category, Items: buckets[category]})
	}

	return &Report{
		UserID: userID,
		Year:   year,
		Month:  month,
		Costs:  costs,
	}
}

type ReportCacheRepository interface {
	// Get returns the cached report for (userID, year, month), or
	// ErrReportNotCached when no entry exists.
	Get(ctx context.Context, userID int64, year, month int) (*Report, error)
	// Upsert inserts or replaces the cache entry keyed by the report's
	// (userID, year, month). Idempotent; safe to race with an identical
	// concurrent computation.
	Upsert(ctx context.Context, report *Report) error
	// Delete removes the cache entry for (userID, year, month). Deleting an
	// absent entry is not an error.
	Delete(ctx context.Context, userID int64, year, month int) error
}

package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/costwatch/costwatch-backend/internal/domain"
	"github.com/costwatch/costwatch-backend/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// ExpenseHandler handles expense HTTP requests
type ExpenseHandler struct {
	expenseService *service.ExpenseService
}

// NewExpenseHandler creates a new ExpenseHandler
func NewExpenseHandler(expenseService *service.ExpenseService) *ExpenseHandler {
	return &ExpenseHandler{expenseService: expenseService}
}

// CreateExpenseRequest represents the create expense request body
type CreateExpenseRequest struct {
	UserID      int64           `json:"userid"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Sum         decimal.Decimal `json:"sum"`
	Date        *string         `json:"date,omitempty"`
}

// ExpenseResponse represents an expense in API responses
type ExpenseResponse struct {
	ID          int64           `json:"id"`
	UserID      int64           `json:"userid"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Sum         decimal.Decimal `json:"sum"`
	Date        string          `json:"date"`
}

func toExpenseResponse(expense *domain.Expense) ExpenseResponse {
	return ExpenseResponse{
		ID:          expense.ID,
		UserID:      expense.UserID,
		Category:    string(expense.Category),
		Description: expense.Description,
		Sum:         expense.Sum,
		Date:        expense.Date.Format(time.RFC3339),
	}
}

// CreateExpense records a new cost entry.
func (h *ExpenseHandler) CreateExpense(c echo.Context) error {
	var req CreateExpenseRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	var date *time.Time
	if req.Date != nil && *req.Date != "" {
		parsed, err := parseDate(*req.Date)
		if err != nil {
			return NewValidationError(c, "Invalid date", []ValidationError{
				{Field: "date", Message: "Must be in YYYY-MM-DD or RFC 3339 format"},
			})
		}
		date = &parsed
	}

	input := service.AddExpenseInput{
		UserID:      req.UserID,
		Category:    domain.Category(req.Category),
		Description: req.Description,
		Sum:         req.Sum,
		Date:        date,
	}

	expense, err := h.expenseService.AddExpense(c.Request().Context(), input)
	if err != nil {
		if errors.Is(err, domain.ErrDescriptionRequired) {
			return NewValidationError(c, "Validation failed", []ValidationError{
				{Field: "description", Message: "Description is required"},
			})
		}
		if errors.Is(err, domain.ErrInvalidCategory) {
			return NewValidationError(c, "Validation failed", []ValidationError{
				{Field: "category", Message: "Must be one of: food, health, housing, sports, education"},
			})
		}
		if errors.Is(err, domain.ErrNegativeSum) {
			return NewValidationError(c, "Validation failed", []ValidationError{
				{Field: "sum", Message: "Must be a non-negative number"},
			})
		}
		if errors.Is(err, domain.ErrInvalidUserID) {
			return NewValidationError(c, "Validation failed", []ValidationError{
				{Field: "userid", Message: "Must be a positive integer"},
			})
		}
		if errors.Is(err, domain.ErrPastDate) {
			return NewValidationError(c, "Cannot add costs with dates in the past", []ValidationError{
				{Field: "date", Message: "Must not be earlier than today"},
			})
		}
		if errors.Is(err, domain.ErrUserNotFound) {
			return NewNotFoundError(c, "User not found")
		}
		log.Error().Err(err).Msg("Failed to add cost")
		return NewInternalError(c, "Failed to add cost")
	}

	return c.JSON(http.StatusCreated, toExpenseResponse(expense))
}

// parseDate accepts a bare date or a full RFC 3339 timestamp.
func parseDate(value string) (time.Time, error) {
	if parsed, err := time.Parse("2006-01-02", value); err == nil {
		return parsed, nil
	}
	return time.Parse(time.RFC3339, value)
}

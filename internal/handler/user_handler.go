package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/costwatch/costwatch-backend/internal/domain"
	"github.com/costwatch/costwatch-backend/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// UserHandler handles user HTTP requests
type UserHandler struct {
	userService    *service.UserService
	expenseService *service.ExpenseService
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(userService *service.UserService, expenseService *service.ExpenseService) *UserHandler {
	return &UserHandler{
		userService:    userService,
		expenseService: expenseService,
	}
}

// CreateUserRequest represents the create user request body
type CreateUserRequest struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Birthday  string `json:"birthday"`
}

// UserResponse represents a user in API responses
type UserResponse struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Birthday  string `json:"birthday"`
}

// UserDetailsResponse is a user profile with the aggregated cost total
type UserDetailsResponse struct {
	ID        int64           `json:"id"`
	FirstName string          `json:"first_name"`
	LastName  string          `json:"last_name"`
	Total     decimal.Decimal `json:"total"`
}

func toUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Birthday:  user.Birthday.Format("2006-01-02"),
	}
}

// GetUsers returns all users.
func (h *UserHandler) GetUsers(c echo.Context) error {
	users, err := h.userService.GetUsers(c.Request().Context())
	if err != nil {
		log.Error().Err(err).Msg("Failed to fetch users")
		return NewInternalError(c, "Failed to fetch users")
	}

	response := make([]UserResponse, 0, len(users))
	for _, user := range users {
		response = append(response, toUserResponse(user))
	}
	return c.JSON(http.StatusOK, response)
}

// GetUser returns a user's profile with their total cost across all time.
func (h *UserHandler) GetUser(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return NewValidationError(c, "Validation failed", []ValidationError{
			{Field: "id", Message: "Must be an integer"},
		})
	}

	ctx := c.Request().Context()
	user, err := h.userService.GetUser(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return NewNotFoundError(c, "User not found")
		}
		log.Error().Err(err).Msg("Failed to fetch user details")
		return NewInternalError(c, "Failed to fetch user details")
	}

	total, err := h.expenseService.UserTotal(ctx, id)
	if err != nil {
		log.Error().Err(err).Msg("Failed to aggregate user total")
		return NewInternalError(c, "Failed to fetch user details")
	}

	return c.JSON(http.StatusOK, UserDetailsResponse{
		ID:        user.ID,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Total:     total,
	})
}

// CreateUser creates a new user profile.
func (h *UserHandler) CreateUser(c echo.Context) error {
	var req CreateUserRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	if req.Birthday == "" {
		return NewValidationError(c, "Validation failed", []ValidationError{
			{Field: "birthday", Message: "Birthday is required"},
		})
	}
	birthday, err := time.Parse("2006-01-02", req.Birthday)
	if err != nil {
		return NewValidationError(c, "Invalid birthday", []ValidationError{
			{Field: "birthday", Message: "Must be in YYYY-MM-DD format"},
		})
	}

	user, err := h.userService.CreateUser(c.Request().Context(), service.CreateUserInput{
		ID:        req.ID,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Birthday:  birthday,
	})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidUserID) {
			return NewValidationError(c, "Validation failed", []ValidationError{
				{Field: "id", Message: "Must be a positive integer"},
			})
		}
		if errors.Is(err, domain.ErrFirstNameRequired) {
			return NewValidationError(c, "Validation failed", []ValidationError{
				{Field: "first_name", Message: "First name is required"},
			})
		}
		if errors.Is(err, domain.ErrLastNameRequired) {
			return NewValidationError(c, "Validation failed", []ValidationError{
				{Field: "last_name", Message: "Last name is required"},
			})
		}
		if errors.Is(err, domain.ErrUserExists) {
			return NewConflictError(c, "User with this id already exists")
		}
		log.Error().Err(err).Msg("Failed to add user")
		return NewInternalError(c, "Failed to add user")
	}

	return c.JSON(http.StatusCreated, toUserResponse(user))
}

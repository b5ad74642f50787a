package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/costwatch/costwatch-backend/internal/domain"
)

// UserService handles user profile management
type UserService struct {
	userRepo domain.UserRepository
}

// NewUserService creates a new UserService
func NewUserService(userRepo domain.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// CreateUserInput holds the input for creating a user
type CreateUserInput struct {
	ID        int64
	FirstName string
	LastName  string
	Birthday  time.Time
}

// CreateUser creates a new user with validation
func (s *UserService) CreateUser(ctx context.Context, input CreateUserInput) (*domain.User, error) {
	if input.ID <= 0 {
		return nil, domain.ErrInvalidUserID
	}

	firstName := strings.TrimSpace(input.FirstName)
	if firstName == "" {
		return nil, domain.ErrFirstNameRequired
	}
	if len(firstName) > domain.MaxNameLength {
		return nil, fmt.Errorf("%w: first_name exceeds %d characters", domain.ErrFirstNameRequired, domain.MaxNameLength)
	}
	lastName := strings.TrimSpace(input.LastName)
	if lastName == "" {
		return nil, domain.ErrLastNameRequired
	}
	if len(lastName) > domain.MaxNameLength {
		return nil, fmt.Errorf("%w: last_name exceeds %d characters", domain.ErrLastNameRequired, domain.MaxNameLength)
	}
	if input.Birthday.IsZero() {
		return nil, domain.ErrBirthdayRequired
	}

	exists, err := s.userRepo.Exists(ctx, input.ID)
	if err != nil {
		return nil, fmt.Errorf("checking user: %w", err)
	}
	if exists {
		return nil, domain.ErrUserExists
	}

	return s.userRepo.Create(ctx, &domain.User{
		ID:        input.ID,
		FirstName: firstName,
		LastName:  lastName,
		Birthday:  input.Birthday,
	})
}

// GetUser retrieves a user by ID
func (s *UserService) GetUser(ctx context.Context, id int64) (*domain.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

// GetUsers retrieves all users
func (s *UserService) GetUsers(ctx context.Context) ([]*domain.User, error) {
	return s.userRepo.List(ctx)
}

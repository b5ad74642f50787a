package domain

import "errors"

// Domain errors
var (
	ErrUserNotFound        = errors.New("user not found")
	ErrUserExists          = errors.New("user with this id already exists")
	ErrInvalidUserID       = errors.New("user id must be a positive integer")
	ErrFirstNameRequired   = errors.New("first_name is required")
	ErrLastNameRequired    = errors.New("last_name is required")
	ErrBirthdayRequired    = errors.New("birthday is required")
	ErrDescriptionRequired = errors.New("description is required")
	ErrInvalidCategory     = errors.New("invalid category")
	ErrNegativeSum         = errors.New("sum must be a non-negative number")
	ErrPastDate            = errors.New("cannot add costs with dates in the past")
	ErrInvalidPeriod       = errors.New("month must be between 1 and 12")
	ErrReportNotCached     = errors.New("report not cached")
)

// Validation constants
const (
	MaxDescriptionLength = 255
	MaxNameLength        = 100
)

package testutil

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/costwatch/costwatch-backend/internal/domain"
	"github.com/shopspring/decimal"
)

// MockUserRepository is a mock implementation of domain.UserRepository
type MockUserRepository struct {
	Users    map[int64]*domain.User
	ExistsFn func(id int64) (bool, error)
}

// NewMockUserRepository creates a new MockUserRepository
func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{
		Users: make(map[int64]*domain.User),
	}
}

// Create creates a new user
func (m *MockUserRepository) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if _, ok := m.Users[user.ID]; ok {
		return nil, domain.ErrUserExists
	}
	user.CreatedAt = time.Now()
	m.Users[user.ID] = user
	return user, nil
}

// GetByID retrieves a user by ID
func (m *MockUserRepository) GetByID(_ context.Context, id int64) (*domain.User, error) {
	if user, ok := m.Users[id]; ok {
		return user, nil
	}
	return nil, domain.ErrUserNotFound
}

// List retrieves all users ordered by ID
func (m *MockUserRepository) List(_ context.Context) ([]*domain.User, error) {
	users := make([]*domain.User, 0, len(m.Users))
	for _, user := range m.Users {
		users = append(users, user)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users, nil
}

// Exists reports whether a user with the given ID exists
func (m *MockUserRepository) Exists(_ context.Context, id int64) (bool, error) {
	if m.ExistsFn != nil {
		return m.ExistsFn(id)
	}
	_, ok := m.Users[id]
	return ok, nil
}

// AddUser adds a user to the mock repository (helper for tests)
func (m *MockUserRepository) AddUser(user *domain.User) {
	m.Users[user.ID] = user
}

// MockExpenseRepository is a mock implementation of domain.ExpenseRepository
type MockExpenseRepository struct {
	Expenses []*domain.Expense
	NextID   int64
	CreateFn func(expense *domain.Expense) (*domain.Expense, error)
	FindFn   func(userID int64, from, to time.Time) ([]*domain.Expense, error)
}

// NewMockExpenseRepository creates a new MockExpenseRepository
func NewMockExpenseRepository() *MockExpenseRepository {
	return &MockExpenseRepository{NextID: 1}
}

// Create creates a new expense
func (m *MockExpenseRepository) Create(_ context.Context, expense *domain.Expense) (*domain.Expense, error) {
	if m.CreateFn != nil {
		return m.CreateFn(expense)
	}
	created := *expense
	created.ID = m.NextID
	created.CreatedAt = time.Now()
	m.NextID++
	m.Expenses = append(m.Expenses, &created)
	return &created, nil
}

// FindByUserAndRange returns the user's expenses within [from, to], ascending by date
func (m *MockExpenseRepository) FindByUserAndRange(_ context.Context, userID int64, from, to time.Time) ([]*domain.Expense, error) {
	if m.FindFn != nil {
		return m.FindFn(userID, from, to)
	}
	var matched []*domain.Expense
	for _, expense := range m.Expenses {
		if expense.UserID != userID {
			continue
		}
		if expense.Date.Before(from) || expense.Date.After(to) {
			continue
		}
		matched = append(matched, expense)
	}
	sort.SliceStable(matched, func(i, j int) bool { return matched[i].Date.Before(matched[j].Date) })
	return matched, nil
}

// SumByUser totals all expense sums for the user
func (m *MockExpenseRepository) SumByUser(_ context.Context, userID int64) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, expense := range m.Expenses {
		if expense.UserID == userID {
			total = total.Add(expense.Sum)
		}
	}
	return total, nil
}

// AddExpense adds an expense to the mock repository (helper for tests)
func (m *MockExpenseRepository) AddExpense(expense *domain.Expense) {
	if expense.ID == 0 {
		expense.ID = m.NextID
		m.NextID++
	}
	m.Expenses = append(m.Expenses, expense)
}

// MockReportCacheRepository is a mock implementation of
// domain.ReportCacheRepository. Entries are held as marshaled documents, the
// way the real store keeps them, so Get returns what was stored rather than a
// shared pointer.
type MockReportCacheRepository struct {
	Entries     map[string][]byte
	GetCalls    int
	UpsertCalls int
	DeleteCalls int
	GetFn       func(userID int64, year, month int) (*domain.Report, error)
	UpsertFn    func(report *domain.Report) error
	DeleteFn    func(userID int64, year, month int) error
}

// NewMockReportCacheRepository creates a new MockReportCacheRepository
func NewMockReportCacheRepository() *MockReportCacheRepository {
	return &MockReportCacheRepository{
		Entries: make(map[string][]byte),
	}
}

func cacheKey(userID int64, year, month int) string {
	return fmt.Sprintf("%d/%d/%d", userID, year, month)
}

// Get retrieves a cached report
func (m *MockReportCacheRepository) Get(_ context.Context, userID int64, year, month int) (*domain.Report, error) {
	m.GetCalls++
	if m.GetFn != nil {
		return m.GetFn(userID, year, month)
	}
	doc, ok := m.Entries[cacheKey(userID, year, month)]
	if !ok {
		return nil, domain.ErrReportNotCached
	}
	var report domain.Report
	if err := json.Unmarshal(doc, &report); err != nil {
		return nil, err
	}
	return &report, nil
}

// Upsert inserts or replaces a cache entry
func (m *MockReportCacheRepository) Upsert(_ context.Context, report *domain.Report) error {
	m.UpsertCalls++
	if m.UpsertFn != nil {
		return m.UpsertFn(report)
	}
	doc, err := json.Marshal(report)
	if err != nil {
		return err
	}
	m.Entries[cacheKey(report.UserID, report.Year, report.Month)] = doc
	return nil
}

// Delete removes a cache entry
func (m *MockReportCacheRepository) Delete(_ context.Context, userID int64, year, month int) error {
	m.DeleteCalls++
	if m.DeleteFn != nil {
		return m.DeleteFn(userID, year, month)
	}
	delete(m.Entries, cacheKey(userID, year, month))
	return nil
}

// Contains reports whether a cache entry exists for the period (helper for tests)
func (m *MockReportCacheRepository) Contains(userID int64, year, month int) bool {
	_, ok := m.Entries[cacheKey(userID, year, month)]
	return ok
}

// MockLogRepository is a mock implementation of domain.LogRepository
type MockLogRepository struct {
	Entries  []*domain.LogEntry
	InsertFn func(entry *domain.LogEntry) error
}

// NewMockLogRepository creates a new MockLogRepository
func NewMockLogRepository() *MockLogRepository {
	return &MockLogRepository{}
}

// Insert persists a log entry
func (m *MockLogRepository) Insert(_ context.Context, entry *domain.LogEntry) error {
	if m.InsertFn != nil {
		return m.InsertFn(entry)
	}
	m.Entries = append(m.Entries, entry)
	return nil
}

// List returns all log entries, newest first
func (m *MockLogRepository) List(_ context.Context) ([]*domain.LogEntry, error) {
	entries := make([]*domain.LogEntry, len(m.Entries))
	copy(entries, m.Entries)
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].Time.After(entries[j].Time) })
	return entries, nil
}

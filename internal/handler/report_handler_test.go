package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/costwatch/costwatch-backend/internal/domain"
	"github.com/costwatch/costwatch-backend/internal/service"
	"github.com/costwatch/costwatch-backend/internal/testutil"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

func newReportHandlerForTest() (*ReportHandler, *testutil.MockExpenseRepository, *testutil.MockUserRepository) {
	expenseRepo := testutil.NewMockExpenseRepository()
	cacheRepo := testutil.NewMockReportCacheRepository()
	userRepo := testutil.NewMockUserRepository()
	reportService := service.NewReportService(expenseRepo, cacheRepo, userRepo)
	return NewReportHandler(reportService), expenseRepo, userRepo
}

func getReport(t *testing.T, handler *ReportHandler, target string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.GetReport(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	return rec
}

func TestGetReport_Success(t *testing.T) {
	handler, expenseRepo, userRepo := newReportHandlerForTest()
	userRepo.AddUser(&domain.User{ID: 1, FirstName: "Mona", LastName: "Ellis"})

	// A year far in the past keeps the period historical regardless of the
	// test run date.
	expenseRepo.AddExpense(&domain.Expense{
		UserID:      1,
		Category:    domain.CategoryFood,
		Description: "groceries",
		Sum:         decimal.NewFromInt(10),
		Date:        time.Date(2020, 3, 5, 9, 0, 0, 0, time.UTC),
	})

	rec := getReport(t, handler, "/api/report?id=1&year=2020&month=3")

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rec.Code)
	}

	var response struct {
		UserID int64                        `json:"userid"`
		Year   int                          `json:"year"`
		Month  int                          `json:"month"`
		Costs  []map[string]json.RawMessage `json:"costs"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}

	if response.UserID != 1 || response.Year != 2020 || response.Month != 3 {
		t.Errorf("Unexpected report header: %+v", response)
	}
	if len(response.Costs) != 5 {
		t.Fatalf("Expected 5 buckets, got %d", len(response.Costs))
	}

	wantOrder := []string{"food", "education", "health", "housing", "sports"}
	for i, bucket := range response.Costs {
		if len(bucket) != 1 {
			t.Fatalf("Bucket %d: expected single key, got %v", i, bucket)
		}
		if _, ok := bucket[wantOrder[i]]; !ok {
			t.Errorf("Bucket %d: expected key %q, got %v", i, wantOrder[i], bucket)
		}
	}
}

func TestGetReport_MissingParameters(t *testing.T) {
	handler, _, userRepo := newReportHandlerForTest()
	userRepo.AddUser(&domain.User{ID: 1})

	rec := getReport(t, handler, "/api/report?id=1&year=2020")

	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", rec.Code)
	}
}

func TestGetReport_NonIntegerParameters(t *testing.T) {
	handler, _, userRepo := newReportHandlerForTest()
	userRepo.AddUser(&domain.User{ID: 1})

	for _, target := range []string{
		"/api/report?id=abc&year=2020&month=3",
		"/api/report?id=1&year=twenty&month=3",
		"/api/report?id=1&year=2020&month=x",
	} {
		rec := getReport(t, handler, target)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("%s: expected status 400, got %d", target, rec.Code)
		}
	}
}

func TestGetReport_MonthOutOfRange(t *testing.T) {
	handler, _, userRepo := newReportHandlerForTest()
	userRepo.AddUser(&domain.User{ID: 1})

	for _, target := range []string{
		"/api/report?id=1&year=2020&month=0",
		"/api/report?id=1&year=2020&month=13",
	} {
		rec := getReport(t, handler, target)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("%s: expected status 400, got %d", target, rec.Code)
		}
	}
}

func TestGetReport_UserNotFound(t *testing.T) {
	handler, _, _ := newReportHandlerForTest()

	rec := getReport(t, handler, "/api/report?id=99&year=2020&month=3")

	if rec.Code != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", rec.Code)
	}

	var problem ProblemDetails
	if err := json.Unmarshal(rec.Body.Bytes(), &problem); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if problem.Type != ErrorTypeNotFound {
		t.Errorf("Expected not-found problem type, got %s", problem.Type)
	}
}

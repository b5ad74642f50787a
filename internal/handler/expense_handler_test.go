package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/costwatch/costwatch-backend/internal/domain"
	"github.com/costwatch/costwatch-backend/internal/service"
	"github.com/costwatch/costwatch-backend/internal/testutil"
	"github.com/labstack/echo/v4"
)

func newExpenseHandlerForTest() (*ExpenseHandler, *testutil.MockUserRepository) {
	expenseRepo := testutil.NewMockExpenseRepository()
	cacheRepo := testutil.NewMockReportCacheRepository()
	userRepo := testutil.NewMockUserRepository()
	expenseService := service.NewExpenseService(expenseRepo, cacheRepo, userRepo)
	return NewExpenseHandler(expenseService), userRepo
}

func postExpense(t *testing.T, handler *ExpenseHandler, body string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/costs", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.CreateExpense(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	return rec
}

func TestCreateExpense_Success(t *testing.T) {
	handler, userRepo := newExpenseHandlerForTest()
	userRepo.AddUser(&domain.User{ID: 1})

	rec := postExpense(t, handler, `{"userid": 1, "category": "food", "description": "groceries", "sum": 15.5}`)

	if rec.Code != http.StatusCreated {
		t.Fatalf("Expected status 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var response ExpenseResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if response.ID == 0 {
		t.Error("Expected an assigned ID")
	}
	if response.Category != "food" {
		t.Errorf("Expected category 'food', got %s", response.Category)
	}
	if response.Description != "groceries" {
		t.Errorf("Expected description 'groceries', got %s", response.Description)
	}
	if response.Date == "" {
		t.Error("Expected a defaulted date")
	}
}

func TestCreateExpense_InvalidCategory(t *testing.T) {
	handler, userRepo := newExpenseHandlerForTest()
	userRepo.AddUser(&domain.User{ID: 1})

	rec := postExpense(t, handler, `{"userid": 1, "category": "travel", "description": "flight", "sum": 100}`)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", rec.Code)
	}
}

func TestCreateExpense_MissingDescription(t *testing.T) {
	handler, userRepo := newExpenseHandlerForTest()
	userRepo.AddUser(&domain.User{ID: 1})

	rec := postExpense(t, handler, `{"userid": 1, "category": "food", "sum": 10}`)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", rec.Code)
	}
}

func TestCreateExpense_NegativeSum(t *testing.T) {
	handler, userRepo := newExpenseHandlerForTest()
	userRepo.AddUser(&domain.User{ID: 1})

	rec := postExpense(t, handler, `{"userid": 1, "category": "food", "description": "refund", "sum": -5}`)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", rec.Code)
	}
}

func TestCreateExpense_PastDateRejected(t *testing.T) {
	handler, userRepo := newExpenseHandlerForTest()
	userRepo.AddUser(&domain.User{ID: 1})

	rec := postExpense(t, handler, `{"userid": 1, "category": "food", "description": "old lunch", "sum": 10, "date": "2020-01-15"}`)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("Expected status 400, got %d", rec.Code)
	}

	var problem ProblemDetails
	if err := json.Unmarshal(rec.Body.Bytes(), &problem); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if !strings.Contains(problem.Detail, "past") {
		t.Errorf("Expected past-date detail, got %q", problem.Detail)
	}
}

func TestCreateExpense_MalformedDate(t *testing.T) {
	handler, userRepo := newExpenseHandlerForTest()
	userRepo.AddUser(&domain.User{ID: 1})

	rec := postExpense(t, handler, `{"userid": 1, "category": "food", "description": "lunch", "sum": 10, "date": "15/01/2030"}`)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", rec.Code)
	}
}

func TestCreateExpense_UserNotFound(t *testing.T) {
	handler, _ := newExpenseHandlerForTest()

	rec := postExpense(t, handler, `{"userid": 42, "category": "food", "description": "lunch", "sum": 10}`)

	if rec.Code != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", rec.Code)
	}
}

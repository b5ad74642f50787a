package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/costwatch/costwatch-backend/internal/domain"
	"github.com/costwatch/costwatch-backend/internal/testutil"
	"github.com/labstack/echo/v4"
)

func TestRequestLogger_PersistsEntry(t *testing.T) {
	e := echo.New()
	logRepo := testutil.NewMockLogRepository()

	inserted := make(chan *domain.LogEntry, 1)
	logRepo.InsertFn = func(entry *domain.LogEntry) error {
		inserted <- entry
		return nil
	}

	handler := RequestLogger(logRepo)(func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})

	req := httptest.NewRequest(http.MethodGet, "/api/report?id=1&year=2025&month=3", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	select {
	case entry := <-inserted:
		if entry.Method != http.MethodGet {
			t.Errorf("Expected method GET, got %s", entry.Method)
		}
		if entry.URL != "/api/report?id=1&year=2025&month=3" {
			t.Errorf("Unexpected URL: %s", entry.URL)
		}
		if entry.StatusCode != http.StatusOK {
			t.Errorf("Expected status 200, got %d", entry.StatusCode)
		}
		if entry.Level != domain.LogLevelInfo {
			t.Errorf("Expected info level, got %d", entry.Level)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Timed out waiting for the log entry to be persisted")
	}
}

func TestRequestLogger_PersistFailureDoesNotAffectResponse(t *testing.T) {
	e := echo.New()
	logRepo := testutil.NewMockLogRepository()

	attempted := make(chan struct{}, 1)
	logRepo.InsertFn = func(*domain.LogEntry) error {
		attempted <- struct{}{}
		return errors.New("log store unavailable")
	}

	handler := RequestLogger(logRepo)(func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", rec.Code)
	}

	select {
	case <-attempted:
	case <-time.After(2 * time.Second):
		t.Fatal("Timed out waiting for the persistence attempt")
	}
}

func TestLevelForStatus(t *testing.T) {
	tests := []struct {
		status int
		want   int
	}{
		{200, domain.LogLevelInfo},
		{301, domain.LogLevelInfo},
		{404, domain.LogLevelWarn},
		{500, domain.LogLevelError},
	}

	for _, tt := range tests {
		if got := levelForStatus(tt.status); got != tt.want {
			t.Errorf("levelForStatus(%d) = %d, want %d", tt.status, got, tt.want)
		}
	}
}

package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/costwatch/costwatch-backend/internal/domain"
	"github.com/costwatch/costwatch-backend/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// ReportHandler handles monthly report HTTP requests
type ReportHandler struct {
	reportService *service.ReportService
}

// NewReportHandler creates a new ReportHandler
func NewReportHandler(reportService *service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// GetReport returns the categorized monthly report for ?id=&year=&month=.
func (h *ReportHandler) GetReport(c echo.Context) error {
	idParam := c.QueryParam("id")
	yearParam := c.QueryParam("year")
	monthParam := c.QueryParam("month")

	if idParam == "" || yearParam == "" || monthParam == "" {
		return NewValidationError(c, "Missing required parameters: id, year, month", nil)
	}

	userID, err := strconv.ParseInt(idParam, 10, 64)
	if err != nil {
		return NewValidationError(c, "Validation failed", []ValidationError{
			{Field: "id", Message: "Must be an integer"},
		})
	}
	year, err := strconv.Atoi(yearParam)
	if err != nil {
		return NewValidationError(c, "Validation failed", []ValidationError{
			{Field: "year", Message: "Must be an integer"},
		})
	}
	month, err := strconv.Atoi(monthParam)
	if err != nil {
		return NewValidationError(c, "Validation failed", []ValidationError{
			{Field: "month", Message: "Must be an integer"},
		})
	}
	if month < 1 || month > 12 {
		return NewValidationError(c, "Validation failed", []ValidationError{
			{Field: "month", Message: "Must be between 1 and 12"},
		})
	}

	report, err := h.reportService.GetReport(c.Request().Context(), userID, year, month)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return NewNotFoundError(c, "User not found")
		}
		if errors.Is(err, domain.ErrInvalidPeriod) {
			return NewValidationError(c, "Validation failed", []ValidationError{
				{Field: "month", Message: "Must be between 1 and 12"},
			})
		}
		log.Error().Err(err).Msg("Failed to generate report")
		return NewInternalError(c, "Failed to generate report")
	}

	return c.JSON(http.StatusOK, report)
}

package handler

import (
	"net/http"

	"github.com/costwatch/costwatch-backend/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// LogHandler handles log retrieval HTTP requests
type LogHandler struct {
	logService *service.LogService
}

// NewLogHandler creates a new LogHandler
func NewLogHandler(logService *service.LogService) *LogHandler {
	return &LogHandler{logService: logService}
}

// GetLogs returns all persisted log entries, newest first.
func (h *LogHandler) GetLogs(c echo.Context) error {
	entries, err := h.logService.GetLogs(c.Request().Context())
	if err != nil {
		log.Error().Err(err).Msg("Failed to fetch logs")
		return NewInternalError(c, "Failed to fetch logs")
	}
	return c.JSON(http.StatusOK, entries)
}

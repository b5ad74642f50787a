package service

import (
	"context"

	"github.com/costwatch/costwatch-backend/internal/domain"
)

// LogService exposes persisted application logs
type LogService struct {
	logRepo domain.LogRepository
}

// NewLogService creates a new LogService
func NewLogService(logRepo domain.LogRepository) *LogService {
	return &LogService{logRepo: logRepo}
}

// GetLogs retrieves all log entries, newest first
func (s *LogService) GetLogs(ctx context.Context) ([]*domain.LogEntry, error) {
	return s.logRepo.List(ctx)
}

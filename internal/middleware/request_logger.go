package middleware

import (
	"context"
	"time"

	"github.com/costwatch/costwatch-backend/internal/domain"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// persistTimeout bounds the async log insert so a slow store cannot pile up
// goroutines behind it.
const persistTimeout = 5 * time.Second

// RequestLogger logs each request through zerolog and persists a log entry
// through the log store. Persistence is fire-and-forget: a failing log store
// never slows down or fails the request it describes.
func RequestLogger(logRepo domain.LogRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			req := c.Request()
			res := c.Response()

			log.Info().
				Str("method", req.Method).
				Str("path", req.URL.Path).
				Int("status", res.Status).
				Dur("latency", time.Since(start)).
				Str("request_id", res.Header().Get(echo.HeaderXRequestID)).
				Msg("request")

			entry := &domain.LogEntry{
				ID:         uuid.New(),
				Level:      levelForStatus(res.Status),
				Time:       start,
				Message:    req.Method + " " + req.URL.Path,
				Method:     req.Method,
				URL:        req.URL.RequestURI(),
				StatusCode: res.Status,
			}

			go func() {
				ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
				defer cancel()
				if err := logRepo.Insert(ctx, entry); err != nil {
					log.Warn().Err(err).Msg("Failed to persist request log")
				}
			}()

			return nil
		}
	}
}

func levelForStatus(status int) int {
	switch {
	case status >= 500:
		return domain.LogLevelError
	case status >= 400:
		return domain.LogLevelWarn
	default:
		return domain.LogLevelInfo
	}
}

package handler

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes sets up all API routes
func RegisterRoutes(e *echo.Echo, reportHandler *ReportHandler, expenseHandler *ExpenseHandler, userHandler *UserHandler, logHandler *LogHandler) {
	api := e.Group("/api")

	// Cost entries and reports
	api.POST("/costs", expenseHandler.CreateExpense)
	api.GET("/report", reportHandler.GetReport)

	// Users
	api.GET("/users", userHandler.GetUsers)
	api.GET("/users/:id", userHandler.GetUser)
	api.POST("/users", userHandler.CreateUser)

	// Logs
	api.GET("/logs", logHandler.GetLogs)
}

// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"ludoteca/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	LoanHandler *handler.LoanHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	loanHandler *handler.LoanHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		loanHandler: params.LoanHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	apiV1 := e.Group("/api/v1")

	loansGroup := apiV1.Group("/loans")
	{
		loansGroup.POST("/search", r.loanHandler.SearchLoans)
		loansGroup.GET("", r.loanHandler.ListLoans)
		loansGroup.GET("/:id", r.loanHandler.GetLoan)
		loansGroup.PUT("", r.loanHandler.CreateLoan)
		loansGroup.PUT("/:id", r.loanHandler.UpdateLoan)
		loansGroup.DELETE("/:id", r.loanHandler.DeleteLoan)

		// Tickets
		loansGroup.GET("/:id/ticket", r.loanHandler.GetLoanTicket)
		loansGroup.POST("/tickets/scan", r.loanHandler.ScanLoanTicket)

		// Audit trail recorded by the loan worker
		loansGroup.GET("/:id/events", r.loanHandler.ListLoanEvents)
	}
}

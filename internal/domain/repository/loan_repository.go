// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"ludoteca/internal/domain/criteria"
	"ludoteca/internal/domain/entity"
	"ludoteca/internal/errors"
)

// Domain-specific errors for loan persistence.
var (
	// ErrLoanNotFound is returned when no loan has the requested id.
	ErrLoanNotFound = errors.New("loan not found")
	// ErrUnknownField is returned when a predicate or sort order names an attribute the store cannot map.
	ErrUnknownField = errors.New("unknown loan field")
)

// LoanRepository defines the store operations the loan engine relies on.
type LoanRepository interface {
	// InsertLoan persists a new loan and assigns its ID.
	InsertLoan(ctx context.Context, loan *entity.Loan) error

	// UpdateLoan overwrites the stored loan that has loan.ID.
	UpdateLoan(ctx context.Context, loan *entity.Loan) error

	// FindLoanByID retrieves a loan with its game and client resolved.
	FindLoanByID(ctx context.Context, id int64) (*entity.Loan, error)

	// DeleteLoanByID removes a loan.
	DeleteLoanByID(ctx context.Context, id int64) error

	// QueryLoans returns one page of the loans matching pred.
	QueryLoans(ctx context.Context, pred criteria.Predicate, pageable entity.Pageable) (*entity.Page[*entity.Loan], error)

	// QueryOverlap returns the loans of a game or client whose dates intersect period,
	// leaving out the loan with excludeID when it is set.
	QueryOverlap(ctx context.Context, kind entity.Subject, ref int64, period entity.DateRange, excludeID *int64) ([]*entity.Loan, error)
}

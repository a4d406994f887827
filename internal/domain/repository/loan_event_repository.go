package repository

import (
	"context"

	"ludoteca/internal/domain/entity"
	"ludoteca/internal/errors"
)

// ErrDuplicateLoanEvent is returned when a message was already recorded.
var ErrDuplicateLoanEvent = errors.New("loan event already recorded")

// LoanEventRepository stores the loan audit trail written by the event worker.
type LoanEventRepository interface {
	// CreateLoanEvent records an entry. Recording the same MessageID twice returns ErrDuplicateLoanEvent.
	CreateLoanEvent(ctx context.Context, entry *entity.LoanAuditEntry) error

	// FindLoanEventsByLoanID lists the entries of a loan, oldest first.
	FindLoanEventsByLoanID(ctx context.Context, loanID int64) ([]*entity.LoanAuditEntry, error)
}

package usecase

import (
	"context"

	"ludoteca/internal/domain/entity"
	"ludoteca/internal/domain/service"
)

// LoanAuditUsecase defines the loan audit trail operations
type LoanAuditUsecase interface {
	// RecordLoanEvent stores an event delivered by the message bus.
	// A message delivered twice is recorded once.
	RecordLoanEvent(ctx context.Context, messageID string, event *service.LoanEvent) error

	// ListLoanEvents returns the trail of one loan, oldest first
	ListLoanEvents(ctx context.Context, loanID int64) ([]*entity.LoanAuditEntry, error)
}

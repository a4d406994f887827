package usecase

import (
	"context"
	"time"

	"ludoteca/internal/domain/entity"
)

// LoanSearch carries the optional filters of a loan search. Every nil field means "no filter".
type LoanSearch struct {
	GameID   *int64
	ClientID *int64
	// Date selects loans active on that day (start <= date <= end).
	Date     *time.Time
	Pageable *entity.Pageable
}

// SaveLoanInput is the incoming data of a create or update.
type SaveLoanInput struct {
	GameID    int64
	ClientID  int64
	StartDate time.Time
	EndDate   time.Time
}

// LoanUsecase defines the loan lifecycle operations
type LoanUsecase interface {
	// GetLoan returns a loan or a not-found error
	GetLoan(ctx context.Context, id int64) (*entity.Loan, error)

	// FindPage returns one page of the loans matching the search
	FindPage(ctx context.Context, search *LoanSearch) (*entity.Page[*entity.Loan], error)

	// SaveLoan creates a loan when id is nil and overwrites loan id otherwise
	SaveLoan(ctx context.Context, id *int64, input *SaveLoanInput) (*entity.Loan, error)

	// DeleteLoan removes a loan
	DeleteLoan(ctx context.Context, id int64) error

	// GenerateTicket renders the QR ticket of an existing loan
	GenerateTicket(ctx context.Context, id int64) ([]byte, error)

	// ScanTicket resolves the loan a scanned ticket points at
	ScanTicket(ctx context.Context, content string) (*entity.Loan, error)
}

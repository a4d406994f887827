package reservation

import (
	"context"
	"fmt"

	"ludoteca/internal/domain/entity"
	domainerrors "ludoteca/internal/domain/errors"
)

// Default limits.
const (
	DefaultMaxLoanDays    = 14
	DefaultMaxClientLoans = 2
)

// Policy holds the configurable loan limits.
type Policy struct {
	// MaxLoanDays is the longest inclusive loan period.
	MaxLoanDays int
	// MaxClientLoans is the number of existing overlapping loans at which a
	// client is refused another one.
	MaxClientLoans int
}

// DefaultPolicy returns the 14 days / 2 loans policy.
func DefaultPolicy() Policy {
	return Policy{MaxLoanDays: DefaultMaxLoanDays, MaxClientLoans: DefaultMaxClientLoans}
}

// WithDefaults fills unset limits with the defaults.
func (p Policy) WithDefaults() Policy {
	if p.MaxLoanDays <= 0 {
		p.MaxLoanDays = DefaultMaxLoanDays
	}
	if p.MaxClientLoans <= 0 {
		p.MaxClientLoans = DefaultMaxClientLoans
	}

	return p
}

// Validator checks a proposed loan against the reservation rules.
// It never writes; persisting an accepted loan is the caller's job.
type Validator struct {
	index  OverlapIndex
	policy Policy
}

// NewValidator builds a validator over index.
func NewValidator(index OverlapIndex, policy Policy) *Validator {
	return &Validator{index: index, policy: policy.WithDefaults()}
}

// Validate returns nil when candidate is acceptable, or a
// *domainerrors.LoanValidationError for the first rule it breaks, in this order:
// range order, maximum duration, game exclusivity, client cap.
// excludeID is the id of the loan being updated, so it does not conflict with itself.
// Store failures are returned as they are.
func (v *Validator) Validate(ctx context.Context, candidate *entity.Loan, excludeID *int64) error {
	period := candidate.Period()

	if period.End.Before(period.Start) {
		return domainerrors.NewLoanValidationError(domainerrors.ReasonRangeOrder,
			"end date precedes start date")
	}

	if period.Days() > v.policy.MaxLoanDays {
		return domainerrors.NewLoanValidationError(domainerrors.ReasonMaxDuration,
			fmt.Sprintf("loan period exceeds %d days", v.policy.MaxLoanDays))
	}

	gameLoans, err := v.index.FindOverlapping(ctx, entity.SubjectGame, candidate.GameID, period, excludeID)
	if err != nil {
		return err
	}
	if len(gameLoans) > 0 {
		return domainerrors.NewLoanValidationError(domainerrors.ReasonGameConflict,
			"game already loaned in that period")
	}

	clientLoans, err := v.index.FindOverlapping(ctx, entity.SubjectClient, candidate.ClientID, period, excludeID)
	if err != nil {
		return err
	}
	// Rejects once the cap is already reached by existing loans, not by existing plus candidate.
	if len(clientLoans) >= v.policy.MaxClientLoans {
		return domainerrors.NewLoanValidationError(domainerrors.ReasonClientCapExceeded,
			fmt.Sprintf("client already has %d games loaned in that period", v.policy.MaxClientLoans))
	}

	return nil
}

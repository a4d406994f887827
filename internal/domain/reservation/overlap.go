// Package reservation holds the loan reservation rules: the temporal overlap
// index and the validator that applies the rules in a fixed order.
package reservation

import (
	"context"

	"ludoteca/internal/domain/entity"
	"ludoteca/internal/domain/repository"
	"ludoteca/internal/errors"
)

// OverlapIndex finds the loans of one game or client that intersect a date range.
type OverlapIndex interface {
	FindOverlapping(ctx context.Context, kind entity.Subject, ref int64, period entity.DateRange, excludeID *int64) ([]*entity.Loan, error)
}

type storeOverlapIndex struct {
	loans repository.LoanRepository
}

// NewOverlapIndex answers overlap queries from the loan store. Pass a
// repository bound to the caller's transaction so reads and the following
// write see the same snapshot.
func NewOverlapIndex(loans repository.LoanRepository) OverlapIndex {
	return &storeOverlapIndex{loans: loans}
}

func (idx *storeOverlapIndex) FindOverlapping(ctx context.Context, kind entity.Subject, ref int64, period entity.DateRange, excludeID *int64) ([]*entity.Loan, error) {
	if kind != entity.SubjectGame && kind != entity.SubjectClient {
		return nil, errors.Errorf("unsupported overlap subject %q", kind)
	}

	loans, err := idx.loans.QueryOverlap(ctx, kind, ref, period, excludeID)
	if err != nil {
		return nil, errors.Wrapf(err, "query %s %d overlapping loans", kind, ref)
	}

	return loans, nil
}

// Overlapping filters loans down to those of the subject that intersect period,
// minus excludeID. Stores without a query language use it to implement QueryOverlap.
func Overlapping(loans []*entity.Loan, kind entity.Subject, ref int64, period entity.DateRange, excludeID *int64) []*entity.Loan {
	var matched []*entity.Loan
	for _, loan := range loans {
		if excludeID != nil && loan.ID == *excludeID {
			continue
		}
		if subjectRef, ok := loan.SubjectRef(kind); !ok || subjectRef != ref {
			continue
		}
		if loan.Period().Overlaps(period) {
			matched = append(matched, loan)
		}
	}

	return matched
}

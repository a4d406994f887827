package memory

import (
	"context"
	"slices"
	"time"

	"ludoteca/internal/domain/entity"
	"ludoteca/internal/domain/repository"

	"github.com/google/uuid"
)

// loanEventRepository implements repository.LoanEventRepository in memory.
type loanEventRepository struct {
	access accessor
}

func (repo *loanEventRepository) CreateLoanEvent(ctx context.Context, entry *entity.LoanAuditEntry) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return repo.access(true, func(s *state) error {
		if _, dup := s.eventByMsg[entry.MessageID]; dup {
			return repository.ErrDuplicateLoanEvent
		}

		if entry.ID == uuid.Nil {
			entry.ID = uuid.Must(uuid.NewV7())
		}
		entry.ReceivedAt = time.Now()

		stored := *entry
		stored.Payload = slices.Clone(entry.Payload)
		s.events = append(s.events, &stored)
		s.eventByMsg[entry.MessageID] = struct{}{}

		return nil
	})
}

func (repo *loanEventRepository) FindLoanEventsByLoanID(ctx context.Context, loanID int64) ([]*entity.LoanAuditEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entries := []*entity.LoanAuditEntry{}
	err := repo.access(false, func(s *state) error {
		for _, event := range s.events {
			if event.LoanID == loanID {
				e := *event
				entries = append(entries, &e)
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	slices.SortStableFunc(entries, func(a, b *entity.LoanAuditEntry) int {
		return a.OccurredAt.Compare(b.OccurredAt)
	})

	return entries, nil
}

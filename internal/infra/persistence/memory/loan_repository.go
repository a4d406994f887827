package memory

import (
	"context"
	"slices"
	"time"

	"ludoteca/internal/domain/criteria"
	"ludoteca/internal/domain/entity"
	domainerrors "ludoteca/internal/domain/errors"
	"ludoteca/internal/domain/repository"
	"ludoteca/internal/domain/reservation"
	"ludoteca/internal/errors"
)

// fieldProbe has every nested entity set, so Field reports exactly the paths a loan supports.
var fieldProbe = &entity.Loan{Game: &entity.Game{}, Client: &entity.Client{}}

func checkField(path string) error {
	if _, ok := fieldProbe.Field(path); !ok {
		return errors.Wrapf(repository.ErrUnknownField, "%q", path)
	}

	return nil
}

// loanRepository implements repository.LoanRepository in memory.
type loanRepository struct {
	access accessor
}

func (repo *loanRepository) InsertLoan(ctx context.Context, loan *entity.Loan) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return repo.access(true, func(s *state) error {
		if err := s.checkReferences(loan); err != nil {
			return domainerrors.NewDatabaseExecuteError(err, "failed to create loan")
		}

		now := time.Now()
		s.nextLoanID++
		loan.ID = s.nextLoanID
		loan.CreatedAt = now
		loan.UpdatedAt = now
		s.loans[loan.ID] = stored(loan)

		return nil
	})
}

func (repo *loanRepository) UpdateLoan(ctx context.Context, loan *entity.Loan) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return repo.access(true, func(s *state) error {
		existing, ok := s.loans[loan.ID]
		if !ok {
			return repository.ErrLoanNotFound
		}
		if err := s.checkReferences(loan); err != nil {
			return domainerrors.NewDatabaseExecuteError(err, "failed to update loan")
		}

		loan.CreatedAt = existing.CreatedAt
		loan.UpdatedAt = time.Now()
		s.loans[loan.ID] = stored(loan)

		return nil
	})
}

func (repo *loanRepository) FindLoanByID(ctx context.Context, id int64) (*entity.Loan, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var found *entity.Loan
	err := repo.access(false, func(s *state) error {
		loan, ok := s.loans[id]
		if !ok {
			return repository.ErrLoanNotFound
		}
		found = s.hydrate(loan)

		return nil
	})

	return found, err
}

func (repo *loanRepository) DeleteLoanByID(ctx context.Context, id int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return repo.access(true, func(s *state) error {
		if _, ok := s.loans[id]; !ok {
			return repository.ErrLoanNotFound
		}
		delete(s.loans, id)

		return nil
	})
}

// QueryLoans filters with pred, sorts by pageable.Sort then id, and cuts out the page.
func (repo *loanRepository) QueryLoans(ctx context.Context, pred criteria.Predicate, pageable entity.Pageable) (*entity.Page[*entity.Loan], error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	for _, c := range pred.Clauses() {
		if err := checkField(c.Path); err != nil {
			return nil, err
		}
	}
	for _, order := range pageable.Sort {
		if err := checkField(order.Property); err != nil {
			return nil, err
		}
	}

	var matched []*entity.Loan
	err := repo.access(false, func(s *state) error {
		for _, loan := range s.loans {
			hydrated := s.hydrate(loan)
			if pred.Match(hydrated) {
				matched = append(matched, hydrated)
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	sortLoans(matched, pageable.Sort)

	total := int64(len(matched))
	start := max(0, min(pageable.Offset(), len(matched)))
	end := max(start, min(start+max(pageable.PageSize, 0), len(matched)))

	return entity.NewPage(matched[start:end], pageable, total), nil
}

func (repo *loanRepository) QueryOverlap(ctx context.Context, kind entity.Subject, ref int64, period entity.DateRange, excludeID *int64) ([]*entity.Loan, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var overlapping []*entity.Loan
	err := repo.access(false, func(s *state) error {
		all := make([]*entity.Loan, 0, len(s.loans))
		for _, loan := range s.loans {
			all = append(all, loan)
		}

		for _, loan := range reservation.Overlapping(all, kind, ref, period, excludeID) {
			overlapping = append(overlapping, s.hydrate(loan))
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	sortLoans(overlapping, []entity.SortOrder{{Property: "startDate", Direction: entity.SortAsc}})

	return overlapping, nil
}

func sortLoans(loans []*entity.Loan, orders []entity.SortOrder) {
	slices.SortStableFunc(loans, func(a, b *entity.Loan) int {
		for _, order := range orders {
			av, _ := a.Field(order.Property)
			bv, _ := b.Field(order.Property)

			c, ok := criteria.Compare(av, bv)
			if !ok || c == 0 {
				continue
			}
			if order.Direction == entity.SortDesc {
				return -c
			}

			return c
		}

		switch {
		case a.ID < b.ID:
			return -1
		case a.ID > b.ID:
			return 1
		default:
			return 0
		}
	})
}

// stored is the copy kept in the state: dates truncated, catalog entities detached.
func stored(loan *entity.Loan) *entity.Loan {
	c := loan.Clone()
	c.StartDate = entity.TruncateDate(c.StartDate)
	c.EndDate = entity.TruncateDate(c.EndDate)
	c.Game = nil
	c.Client = nil

	return c
}

// hydrate returns a copy of loan with its current game and client attached.
func (s *state) hydrate(loan *entity.Loan) *entity.Loan {
	c := loan.Clone()
	if game, ok := s.games[c.GameID]; ok {
		g := *game
		c.Game = &g
	}
	if client, ok := s.clients[c.ClientID]; ok {
		cl := *client
		c.Client = &cl
	}

	return c
}

func (s *state) checkReferences(loan *entity.Loan) error {
	if _, ok := s.games[loan.GameID]; !ok {
		return errors.Wrapf(repository.ErrGameNotFound, "game %d", loan.GameID)
	}
	if _, ok := s.clients[loan.ClientID]; !ok {
		return errors.Wrapf(repository.ErrClientNotFound, "client %d", loan.ClientID)
	}

	return nil
}

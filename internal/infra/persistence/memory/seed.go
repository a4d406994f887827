package memory

import (
	"context"
	"io"
	"log/slog"
	"os"

	"ludoteca/config"
	"ludoteca/internal/domain/entity"
	"ludoteca/internal/domain/reservation"
	"ludoteca/internal/errors"

	"gopkg.in/yaml.v3"
)

// Seed is the YAML document the memory driver can start from.
type Seed struct {
	Games   []SeedGame   `yaml:"games"`
	Clients []SeedClient `yaml:"clients"`
	Loans   []SeedLoan   `yaml:"loans"`
}

type SeedGame struct {
	ID       int64  `yaml:"id"`
	Title    string `yaml:"title"`
	Age      int    `yaml:"age"`
	Category string `yaml:"category"`
	Author   string `yaml:"author"`
}

type SeedClient struct {
	ID   int64  `yaml:"id"`
	Name string `yaml:"name"`
}

type SeedLoan struct {
	GameID    int64  `yaml:"gameId"`
	ClientID  int64  `yaml:"clientId"`
	StartDate string `yaml:"startDate"`
	EndDate   string `yaml:"endDate"`
}

func loanPolicy(cfg *config.Config) reservation.Policy {
	if cfg == nil || cfg.Loan == nil {
		return reservation.DefaultPolicy()
	}

	return reservation.Policy{
		MaxLoanDays:    cfg.Loan.MaxDays,
		MaxClientLoans: cfg.Loan.MaxConcurrentPerClient,
	}.WithDefaults()
}

// LoadSeedFile reads a seed document from path and applies it.
func (st *Store) LoadSeedFile(ctx context.Context, path string, policy reservation.Policy) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrapf(err, "failed to open seed file %s", path)
	}
	defer f.Close()

	return st.LoadSeed(ctx, f, policy)
}

// LoadSeed decodes a seed document and applies it in one transaction.
// Seed loans pass through the reservation validator like any other loan.
func (st *Store) LoadSeed(ctx context.Context, r io.Reader, policy reservation.Policy) error {
	var seed Seed
	if err := yaml.NewDecoder(r).Decode(&seed); err != nil && !errors.Is(err, io.EOF) {
		return errors.Wrap(err, "failed to decode seed")
	}

	err := st.access(true, func(s *state) error {
		for _, g := range seed.Games {
			s.games[g.ID] = &entity.Game{
				ID:           g.ID,
				Title:        g.Title,
				Age:          g.Age,
				CategoryName: g.Category,
				AuthorName:   g.Author,
			}
		}
		for _, c := range seed.Clients {
			s.clients[c.ID] = &entity.Client{ID: c.ID, Name: c.Name}
		}

		loans := &loanRepository{access: bound(s)}
		validator := reservation.NewValidator(reservation.NewOverlapIndex(loans), policy)

		for i, l := range seed.Loans {
			loan, err := l.toLoan()
			if err != nil {
				return errors.Wrapf(err, "seed loan %d", i)
			}
			if err := validator.Validate(ctx, loan, nil); err != nil {
				return errors.Wrapf(err, "seed loan %d", i)
			}
			if err := loans.InsertLoan(ctx, loan); err != nil {
				return errors.Wrapf(err, "seed loan %d", i)
			}
		}

		return nil
	})
	if err != nil {
		return err
	}

	st.logger.Info("Loaded memory seed",
		slog.Int("games", len(seed.Games)),
		slog.Int("clients", len(seed.Clients)),
		slog.Int("loans", len(seed.Loans)),
	)

	return nil
}

func (l SeedLoan) toLoan() (*entity.Loan, error) {
	start, err := entity.ParseDate(l.StartDate)
	if err != nil {
		return nil, err
	}
	end, err := entity.ParseDate(l.EndDate)
	if err != nil {
		return nil, err
	}

	return &entity.Loan{
		GameID:    l.GameID,
		ClientID:  l.ClientID,
		StartDate: start,
		EndDate:   end,
	}, nil
}

// Package memory is an in-process storage driver. Transactions are serialized
// by one lock and work on a copy of the data that replaces the live copy on commit.
package memory

import (
	"context"
	"log/slog"
	"maps"
	"slices"
	"sync"

	"ludoteca/config"
	"ludoteca/internal/domain/entity"
	"ludoteca/internal/domain/repository"
	"ludoteca/internal/errors"

	"go.uber.org/fx"
)

// state is one consistent version of the data. Stored values are never
// mutated in place; writers store fresh copies.
type state struct {
	games      map[int64]*entity.Game
	clients    map[int64]*entity.Client
	loans      map[int64]*entity.Loan
	events     []*entity.LoanAuditEntry
	nextLoanID int64
	eventByMsg map[string]struct{}
}

func newState() *state {
	return &state{
		games:      make(map[int64]*entity.Game),
		clients:    make(map[int64]*entity.Client),
		loans:      make(map[int64]*entity.Loan),
		eventByMsg: make(map[string]struct{}),
	}
}

func (s *state) clone() *state {
	return &state{
		games:      maps.Clone(s.games),
		clients:    maps.Clone(s.clients),
		loans:      maps.Clone(s.loans),
		events:     slices.Clone(s.events),
		nextLoanID: s.nextLoanID,
		eventByMsg: maps.Clone(s.eventByMsg),
	}
}

// accessor runs fn against a state. write tells whether fn may modify it.
type accessor func(write bool, fn func(s *state) error) error

// bound returns an accessor for a state already owned by the caller.
func bound(s *state) accessor {
	return func(_ bool, fn func(s *state) error) error {
		return fn(s)
	}
}

// Store holds the live state.
type Store struct {
	mu      sync.RWMutex
	current *state
	logger  *slog.Logger
}

// Params defines the required parameters
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// New creates an empty store and loads the configured seed file, if any.
func New(params Params) (*Store, error) {
	store := NewStore(params.Logger)

	if params.Config == nil || params.Config.Storage == nil || params.Config.Storage.SeedPath == "" {
		return store, nil
	}

	policy := loanPolicy(params.Config)
	if err := store.LoadSeedFile(context.Background(), params.Config.Storage.SeedPath, policy); err != nil {
		return nil, err
	}

	return store, nil
}

// NewStore returns an empty store.
func NewStore(logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}

	return &Store{current: newState(), logger: logger}
}

// access reads the live state, or for writes, applies fn to a copy and
// publishes the copy only if fn succeeds.
func (st *Store) access(write bool, fn func(s *state) error) error {
	if !write {
		st.mu.RLock()
		defer st.mu.RUnlock()

		return fn(st.current)
	}

	st.mu.Lock()
	defer st.mu.Unlock()

	next := st.current.clone()
	if err := fn(next); err != nil {
		return err
	}
	st.current = next

	return nil
}

// transactionManager implements repository.TransactionManager on a Store.
type transactionManager struct {
	store *Store
}

// NewTransactionManager returns a manager whose transactions never conflict:
// they run one at a time, so fn is called exactly once.
func NewTransactionManager(store *Store) repository.TransactionManager {
	return &transactionManager{store: store}
}

// Execute runs fn on a private copy of the state and commits it when fn returns nil.
func (tm *transactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	if err := ctx.Err(); err != nil {
		return errors.Wrap(err, "failed to begin transaction")
	}

	return tm.store.access(true, func(s *state) error {
		return fn(&repositoryFactory{access: bound(s)})
	})
}

// repositoryFactory hands out repositories bound to one transaction's state.
type repositoryFactory struct {
	access accessor
}

func (f *repositoryFactory) NewLoanRepository() repository.LoanRepository {
	return &loanRepository{access: f.access}
}

func (f *repositoryFactory) NewCatalogRepository() repository.CatalogRepository {
	return &catalogRepository{access: f.access}
}

func (f *repositoryFactory) NewLoanEventRepository() repository.LoanEventRepository {
	return &loanEventRepository{access: f.access}
}

// NewLoanRepository returns a repository working on the live state outside any transaction.
func NewLoanRepository(store *Store) repository.LoanRepository {
	return &loanRepository{access: store.access}
}

// NewCatalogRepository returns a catalog repository on the live state.
func NewCatalogRepository(store *Store) repository.CatalogRepository {
	return &catalogRepository{access: store.access}
}

// NewLoanEventRepository returns an audit repository on the live state.
func NewLoanEventRepository(store *Store) repository.LoanEventRepository {
	return &loanEventRepository{access: store.access}
}

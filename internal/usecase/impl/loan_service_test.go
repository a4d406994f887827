package impl

import (
	"context"
	"io"
	"log/slog"
	"math"
	"net/http"
	"testing"
	"time"

	"ludoteca/config"
	"ludoteca/internal/domain/criteria"
	"ludoteca/internal/domain/entity"
	domainerrors "ludoteca/internal/domain/errors"
	"ludoteca/internal/domain/repository"
	"ludoteca/internal/domain/service"
	"ludoteca/internal/errors"
	mockRepo "ludoteca/internal/mocks/repository"
	mockService "ludoteca/internal/mocks/service"
	"ludoteca/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type loanServiceMocks struct {
	txManager *mockRepo.MockTransactionManager
	loanRepo  *mockRepo.MockLoanRepository
	publisher *mockService.MockEventPublisher
	tickets   *mockService.MockTicketService
}

func newTestLoanService(t *testing.T) (*loanService, *loanServiceMocks) {
	t.Helper()

	m := &loanServiceMocks{
		txManager: mockRepo.NewMockTransactionManager(t),
		loanRepo:  mockRepo.NewMockLoanRepository(t),
		publisher: mockService.NewMockEventPublisher(t),
		tickets:   mockService.NewMockTicketService(t),
	}

	srv := NewLoanService(LoanServiceParams{
		TxManager: m.txManager,
		LoanRepo:  m.loanRepo,
		Publisher: m.publisher,
		Tickets:   m.tickets,
		Config: &config.Config{Loan: &config.LoanConfig{
			MaxDays:                14,
			MaxConcurrentPerClient: 2,
			DefaultPageSize:        10,
			MaxPageSize:            50,
		}},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}).(*loanService)
	srv.now = func() time.Time { return time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC) }

	return srv, m
}

// expectTx runs the transaction body against a factory exposing the given repositories.
func expectTx(t *testing.T, txManager *mockRepo.MockTransactionManager, loans *mockRepo.MockLoanRepository, catalog *mockRepo.MockCatalogRepository) {
	t.Helper()

	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			factory.EXPECT().NewLoanRepository().Return(loans).Maybe()
			if catalog != nil {
				factory.EXPECT().NewCatalogRepository().Return(catalog).Maybe()
			}

			return fn(factory)
		})
}

func saveInput(gameID, clientID int64, start, end time.Time) *usecase.SaveLoanInput {
	return &usecase.SaveLoanInput{GameID: gameID, ClientID: clientID, StartDate: start, EndDate: end}
}

func TestLoanService_GetLoan(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		srv, m := newTestLoanService(t)
		loan := &entity.Loan{ID: 1}
		m.loanRepo.EXPECT().FindLoanByID(ctx, int64(1)).Return(loan, nil)

		got, err := srv.GetLoan(ctx, 1)

		require.NoError(t, err)
		assert.Same(t, loan, got)
	})

	t.Run("missing loan is not found", func(t *testing.T) {
		srv, m := newTestLoanService(t)
		m.loanRepo.EXPECT().FindLoanByID(ctx, int64(9)).Return(nil, repository.ErrLoanNotFound)

		_, err := srv.GetLoan(ctx, 9)

		require.True(t, domainerrors.IsNotFound(err, "loan"))
		var appErr domainerrors.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, 404, appErr.HTTPCode())
	})
}

func TestLoanService_FindPage_ComposesFilters(t *testing.T) {
	ctx := context.Background()
	srv, m := newTestLoanService(t)

	gameID := int64(3)
	date := time.Date(2024, 1, 5, 15, 30, 0, 0, time.UTC)

	m.loanRepo.EXPECT().
		QueryLoans(ctx, mock.MatchedBy(func(pred criteria.Predicate) bool {
			clauses := pred.Clauses()
			if len(clauses) != 3 {
				return false
			}

			return clauses[0].Path == "game.id" && clauses[0].Value == int64(3) &&
				clauses[1].Path == "startDate" && clauses[1].Op == criteria.LessOrEqual &&
				clauses[1].Value == entity.NewDate(2024, 1, 5) &&
				clauses[2].Path == "endDate" && clauses[2].Op == criteria.GreaterOrEqual
		}), entity.Pageable{PageNumber: 0, PageSize: 10}).
		Return(entity.NewPage([]*entity.Loan{{ID: 1}}, entity.DefaultPageable(), 1), nil)

	page, err := srv.FindPage(ctx, &usecase.LoanSearch{GameID: &gameID, Date: &date})

	require.NoError(t, err)
	assert.Equal(t, int64(1), page.TotalElements)
}

func TestLoanService_FindPage_NoFilters(t *testing.T) {
	ctx := context.Background()
	srv, m := newTestLoanService(t)

	m.loanRepo.EXPECT().
		QueryLoans(ctx, mock.MatchedBy(func(pred criteria.Predicate) bool { return pred.IsUniversal() }), mock.Anything).
		Return(entity.NewPage[*entity.Loan](nil, entity.DefaultPageable(), 0), nil)

	page, err := srv.FindPage(ctx, nil)

	require.NoError(t, err)
	assert.Empty(t, page.Content)
}

func TestLoanService_FindPage_Pageable(t *testing.T) {
	ctx := context.Background()

	t.Run("caps page size and defaults direction", func(t *testing.T) {
		srv, m := newTestLoanService(t)
		want := entity.Pageable{
			PageNumber: 2,
			PageSize:   50,
			Sort:       []entity.SortOrder{{Property: "game.title", Direction: entity.SortAsc}},
		}
		m.loanRepo.EXPECT().QueryLoans(ctx, mock.Anything, want).
			Return(entity.NewPage[*entity.Loan](nil, want, 0), nil)

		_, err := srv.FindPage(ctx, &usecase.LoanSearch{Pageable: &entity.Pageable{
			PageNumber: 2,
			PageSize:   500,
			Sort:       []entity.SortOrder{{Property: "game.title"}},
		}})

		require.NoError(t, err)
	})

	t.Run("rejects unsupported sort property", func(t *testing.T) {
		srv, _ := newTestLoanService(t)

		_, err := srv.FindPage(ctx, &usecase.LoanSearch{Pageable: &entity.Pageable{
			Sort: []entity.SortOrder{{Property: "client.password"}},
		}})

		var appErr domainerrors.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, "INVALID_SORT_PROPERTY", appErr.ErrorCode())
	})

	t.Run("rejects page whose offset overflows", func(t *testing.T) {
		srv, _ := newTestLoanService(t)

		_, err := srv.FindPage(ctx, &usecase.LoanSearch{Pageable: &entity.Pageable{
			PageNumber: math.MaxInt / 5,
			PageSize:   10,
		}})

		var appErr domainerrors.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, "INVALID_PAGE", appErr.ErrorCode())
		assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode())
	})

	t.Run("accepts the last addressable page", func(t *testing.T) {
		srv, m := newTestLoanService(t)
		want := entity.Pageable{PageNumber: math.MaxInt / 10, PageSize: 10}
		m.loanRepo.EXPECT().QueryLoans(ctx, mock.Anything, want).
			Return(entity.NewPage[*entity.Loan](nil, want, 0), nil)

		_, err := srv.FindPage(ctx, &usecase.LoanSearch{Pageable: &entity.Pageable{
			PageNumber: math.MaxInt / 10,
			PageSize:   10,
		}})

		require.NoError(t, err)
	})
}

func TestLoanService_SaveLoan_CreatePublishesEvent(t *testing.T) {
	ctx := context.Background()
	srv, m := newTestLoanService(t)
	loans := mockRepo.NewMockLoanRepository(t)
	catalog := mockRepo.NewMockCatalogRepository(t)
	expectTx(t, m.txManager, loans, catalog)

	start, end := entity.NewDate(2024, 1, 1), entity.NewDate(2024, 1, 10)

	catalog.EXPECT().FindGameByID(ctx, int64(1)).Return(&entity.Game{ID: 1, Title: "Catan"}, nil)
	catalog.EXPECT().FindClientByID(ctx, int64(2)).Return(&entity.Client{ID: 2, Name: "Ana"}, nil)
	loans.EXPECT().QueryOverlap(ctx, entity.SubjectGame, int64(1), entity.NewDateRange(start, end), (*int64)(nil)).Return(nil, nil)
	loans.EXPECT().QueryOverlap(ctx, entity.SubjectClient, int64(2), entity.NewDateRange(start, end), (*int64)(nil)).Return(nil, nil)
	loans.EXPECT().InsertLoan(ctx, mock.AnythingOfType("*entity.Loan")).
		RunAndReturn(func(_ context.Context, loan *entity.Loan) error {
			loan.ID = 7

			return nil
		})
	m.publisher.EXPECT().
		PublishLoanEvent(mock.Anything, mock.MatchedBy(func(e *service.LoanEvent) bool {
			return e.Type == "loan.created" && e.LoanID == 7 && e.GameID == 1 && e.ClientID == 2 &&
				e.StartDate == "2024-01-01" && e.EndDate == "2024-01-10" && e.EventID != ""
		})).
		Return(nil)

	saved, err := srv.SaveLoan(ctx, nil, saveInput(1, 2, start, end))

	require.NoError(t, err)
	assert.Equal(t, int64(7), saved.ID)
	assert.Equal(t, "Catan", saved.Game.Title)
	assert.Equal(t, "Ana", saved.Client.Name)
}

func TestLoanService_SaveLoan_UpdateExcludesItself(t *testing.T) {
	ctx := context.Background()
	srv, m := newTestLoanService(t)
	loans := mockRepo.NewMockLoanRepository(t)
	catalog := mockRepo.NewMockCatalogRepository(t)
	expectTx(t, m.txManager, loans, catalog)

	id := int64(5)
	start, end := entity.NewDate(2024, 1, 1), entity.NewDate(2024, 1, 3)

	loans.EXPECT().FindLoanByID(ctx, id).Return(&entity.Loan{ID: id, GameID: 1, ClientID: 1, StartDate: start, EndDate: end}, nil)
	catalog.EXPECT().FindGameByID(ctx, int64(1)).Return(&entity.Game{ID: 1}, nil)
	catalog.EXPECT().FindClientByID(ctx, int64(1)).Return(&entity.Client{ID: 1}, nil)
	loans.EXPECT().QueryOverlap(ctx, entity.SubjectGame, int64(1), mock.Anything, &id).Return(nil, nil)
	loans.EXPECT().QueryOverlap(ctx, entity.SubjectClient, int64(1), mock.Anything, &id).Return(nil, nil)
	loans.EXPECT().UpdateLoan(ctx, mock.MatchedBy(func(l *entity.Loan) bool { return l.ID == id })).Return(nil)
	m.publisher.EXPECT().
		PublishLoanEvent(mock.Anything, mock.MatchedBy(func(e *service.LoanEvent) bool { return e.Type == "loan.updated" })).
		Return(nil)

	saved, err := srv.SaveLoan(ctx, &id, saveInput(1, 1, start, end))

	require.NoError(t, err)
	assert.Equal(t, id, saved.ID)
}

func TestLoanService_SaveLoan_UpdateMissingLoan(t *testing.T) {
	ctx := context.Background()
	srv, m := newTestLoanService(t)
	loans := mockRepo.NewMockLoanRepository(t)
	catalog := mockRepo.NewMockCatalogRepository(t)
	expectTx(t, m.txManager, loans, catalog)

	id := int64(404)
	loans.EXPECT().FindLoanByID(ctx, id).Return(nil, repository.ErrLoanNotFound)

	_, err := srv.SaveLoan(ctx, &id, saveInput(1, 1, entity.NewDate(2024, 1, 1), entity.NewDate(2024, 1, 2)))

	assert.True(t, domainerrors.IsNotFound(err, "loan"))
}

func TestLoanService_SaveLoan_UnknownReferences(t *testing.T) {
	ctx := context.Background()
	start, end := entity.NewDate(2024, 1, 1), entity.NewDate(2024, 1, 2)

	t.Run("game", func(t *testing.T) {
		srv, m := newTestLoanService(t)
		loans := mockRepo.NewMockLoanRepository(t)
		catalog := mockRepo.NewMockCatalogRepository(t)
		expectTx(t, m.txManager, loans, catalog)

		catalog.EXPECT().FindGameByID(ctx, int64(8)).Return(nil, repository.ErrGameNotFound)

		_, err := srv.SaveLoan(ctx, nil, saveInput(8, 1, start, end))

		assert.True(t, domainerrors.IsNotFound(err, "game"))
	})

	t.Run("client", func(t *testing.T) {
		srv, m := newTestLoanService(t)
		loans := mockRepo.NewMockLoanRepository(t)
		catalog := mockRepo.NewMockCatalogRepository(t)
		expectTx(t, m.txManager, loans, catalog)

		catalog.EXPECT().FindGameByID(ctx, int64(1)).Return(&entity.Game{ID: 1}, nil)
		catalog.EXPECT().FindClientByID(ctx, int64(8)).Return(nil, repository.ErrClientNotFound)

		_, err := srv.SaveLoan(ctx, nil, saveInput(1, 8, start, end))

		assert.True(t, domainerrors.IsNotFound(err, "client"))
	})
}

func TestLoanService_SaveLoan_RejectedLoanIsNotPersisted(t *testing.T) {
	ctx := context.Background()
	srv, m := newTestLoanService(t)
	loans := mockRepo.NewMockLoanRepository(t)
	catalog := mockRepo.NewMockCatalogRepository(t)
	expectTx(t, m.txManager, loans, catalog)

	catalog.EXPECT().FindGameByID(ctx, int64(1)).Return(&entity.Game{ID: 1}, nil)
	catalog.EXPECT().FindClientByID(ctx, int64(2)).Return(&entity.Client{ID: 2}, nil)
	loans.EXPECT().QueryOverlap(ctx, entity.SubjectGame, int64(1), mock.Anything, (*int64)(nil)).
		Return([]*entity.Loan{{ID: 1, GameID: 1}}, nil)

	_, err := srv.SaveLoan(ctx, nil, saveInput(1, 2, entity.NewDate(2024, 1, 5), entity.NewDate(2024, 1, 8)))

	reason, ok := domainerrors.RejectionReasonOf(err)
	require.True(t, ok)
	assert.Equal(t, domainerrors.ReasonGameConflict, reason)
	loans.AssertNotCalled(t, "InsertLoan", mock.Anything, mock.Anything)
	m.publisher.AssertNotCalled(t, "PublishLoanEvent", mock.Anything, mock.Anything)
}

func TestLoanService_SaveLoan_PublishFailureIsNotReturned(t *testing.T) {
	ctx := context.Background()
	srv, m := newTestLoanService(t)
	loans := mockRepo.NewMockLoanRepository(t)
	catalog := mockRepo.NewMockCatalogRepository(t)
	expectTx(t, m.txManager, loans, catalog)

	catalog.EXPECT().FindGameByID(ctx, int64(1)).Return(&entity.Game{ID: 1}, nil)
	catalog.EXPECT().FindClientByID(ctx, int64(1)).Return(&entity.Client{ID: 1}, nil)
	loans.EXPECT().QueryOverlap(ctx, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil, nil).Times(2)
	loans.EXPECT().InsertLoan(ctx, mock.Anything).Return(nil)
	m.publisher.EXPECT().PublishLoanEvent(mock.Anything, mock.Anything).Return(errors.New("topic unavailable"))

	_, err := srv.SaveLoan(ctx, nil, saveInput(1, 1, entity.NewDate(2024, 1, 1), entity.NewDate(2024, 1, 1)))

	require.NoError(t, err)
}

func TestLoanService_DeleteLoan(t *testing.T) {
	ctx := context.Background()

	t.Run("existing loan", func(t *testing.T) {
		srv, m := newTestLoanService(t)
		loans := mockRepo.NewMockLoanRepository(t)
		expectTx(t, m.txManager, loans, nil)

		loan := &entity.Loan{ID: 3, GameID: 1, ClientID: 1, StartDate: entity.NewDate(2024, 1, 1), EndDate: entity.NewDate(2024, 1, 2)}
		loans.EXPECT().FindLoanByID(ctx, int64(3)).Return(loan, nil)
		loans.EXPECT().DeleteLoanByID(ctx, int64(3)).Return(nil)
		m.publisher.EXPECT().
			PublishLoanEvent(mock.Anything, mock.MatchedBy(func(e *service.LoanEvent) bool {
				return e.Type == "loan.deleted" && e.LoanID == 3
			})).
			Return(nil)

		require.NoError(t, srv.DeleteLoan(ctx, 3))
	})

	t.Run("missing loan mutates nothing", func(t *testing.T) {
		srv, m := newTestLoanService(t)
		loans := mockRepo.NewMockLoanRepository(t)
		expectTx(t, m.txManager, loans, nil)

		loans.EXPECT().FindLoanByID(ctx, int64(3)).Return(nil, repository.ErrLoanNotFound)

		err := srv.DeleteLoan(ctx, 3)

		assert.True(t, domainerrors.IsNotFound(err, "loan"))
		loans.AssertNotCalled(t, "DeleteLoanByID", mock.Anything, mock.Anything)
	})
}

func TestLoanService_Tickets(t *testing.T) {
	ctx := context.Background()

	t.Run("generate for existing loan", func(t *testing.T) {
		srv, m := newTestLoanService(t)
		m.loanRepo.EXPECT().FindLoanByID(ctx, int64(2)).Return(&entity.Loan{ID: 2}, nil)
		m.tickets.EXPECT().GenerateLoanTicket(int64(2)).Return([]byte("png"), nil)

		png, err := srv.GenerateTicket(ctx, 2)

		require.NoError(t, err)
		assert.Equal(t, []byte("png"), png)
	})

	t.Run("generate for missing loan", func(t *testing.T) {
		srv, m := newTestLoanService(t)
		m.loanRepo.EXPECT().FindLoanByID(ctx, int64(2)).Return(nil, repository.ErrLoanNotFound)

		_, err := srv.GenerateTicket(ctx, 2)

		assert.True(t, domainerrors.IsNotFound(err))
	})

	t.Run("scan resolves loan", func(t *testing.T) {
		srv, m := newTestLoanService(t)
		m.tickets.EXPECT().ParseLoanTicket("https://ludoteca.local/loans/4").Return(int64(4), nil)
		m.loanRepo.EXPECT().FindLoanByID(ctx, int64(4)).Return(&entity.Loan{ID: 4}, nil)

		loan, err := srv.ScanTicket(ctx, "https://ludoteca.local/loans/4")

		require.NoError(t, err)
		assert.Equal(t, int64(4), loan.ID)
	})

	t.Run("scan rejects foreign content", func(t *testing.T) {
		srv, m := newTestLoanService(t)
		m.tickets.EXPECT().ParseLoanTicket("hello").Return(int64(0), errors.New("not a loan ticket"))

		_, err := srv.ScanTicket(ctx, "hello")

		var appErr domainerrors.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, "INVALID_TICKET", appErr.ErrorCode())
	})
}

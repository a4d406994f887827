// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"ludoteca/config"
	deliverycontext "ludoteca/internal/delivery/context"
	"ludoteca/internal/domain/criteria"
	"ludoteca/internal/domain/entity"
	domainerrors "ludoteca/internal/domain/errors"
	"ludoteca/internal/domain/repository"
	"ludoteca/internal/domain/reservation"
	"ludoteca/internal/domain/service"
	"ludoteca/internal/errors"
	"ludoteca/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// sortableProperties are the loan attributes a search may be ordered by.
var sortableProperties = map[string]struct{}{
	"id":          {},
	"startDate":   {},
	"endDate":     {},
	"game.title":  {},
	"client.name": {},
}

// LoanServiceParams holds the dependencies of the loan service.
type LoanServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	LoanRepo  repository.LoanRepository
	Publisher service.EventPublisher `optional:"true"`
	Tickets   service.TicketService
	Config    *config.Config
	Logger    *slog.Logger
}

// loanService implements the LoanUsecase interface.
type loanService struct {
	txManager       repository.TransactionManager
	loanRepo        repository.LoanRepository
	publisher       service.EventPublisher
	tickets         service.TicketService
	policy          reservation.Policy
	defaultPageSize int
	maxPageSize     int
	logger          *slog.Logger
	now             func() time.Time
}

// NewLoanService is the constructor for loanService.
func NewLoanService(params LoanServiceParams) usecase.LoanUsecase {
	srv := &loanService{
		txManager:       params.TxManager,
		loanRepo:        params.LoanRepo,
		publisher:       params.Publisher,
		tickets:         params.Tickets,
		policy:          reservation.DefaultPolicy(),
		defaultPageSize: entity.DefaultPageSize,
		logger:          params.Logger,
		now:             time.Now,
	}
	if params.Config != nil && params.Config.Loan != nil {
		srv.policy = reservation.Policy{
			MaxLoanDays:    params.Config.Loan.MaxDays,
			MaxClientLoans: params.Config.Loan.MaxConcurrentPerClient,
		}.WithDefaults()
		if params.Config.Loan.DefaultPageSize > 0 {
			srv.defaultPageSize = params.Config.Loan.DefaultPageSize
		}
		srv.maxPageSize = params.Config.Loan.MaxPageSize
	}
	if srv.logger == nil {
		srv.logger = slog.Default()
	}

	return srv
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *loanService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetLoan retrieves one loan with its game and client.
func (srv *loanService) GetLoan(ctx context.Context, id int64) (*entity.Loan, error) {
	loan, err := srv.loanRepo.FindLoanByID(ctx, id)
	if err != nil {
		return nil, notFound(err, id)
	}

	return loan, nil
}

// FindPage composes the optional filters into a predicate and returns the requested page.
// A date filter keeps the loans active on that day.
func (srv *loanService) FindPage(ctx context.Context, search *usecase.LoanSearch) (*entity.Page[*entity.Loan], error) {
	if search == nil {
		search = &usecase.LoanSearch{}
	}

	pageable, err := srv.normalizePageable(search.Pageable)
	if err != nil {
		return nil, err
	}

	var date *time.Time
	if search.Date != nil {
		d := entity.TruncateDate(*search.Date)
		date = &d
	}

	pred, err := criteria.Compose(
		criteria.Eq("game.id", criteria.Optional(search.GameID)),
		criteria.Eq("client.id", criteria.Optional(search.ClientID)),
		criteria.Lte("startDate", criteria.Optional(date)),
		criteria.Gte("endDate", criteria.Optional(date)),
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to compose loan search")
	}

	page, err := srv.loanRepo.QueryLoans(ctx, pred, pageable)
	if err != nil {
		if errors.Is(err, repository.ErrUnknownField) {
			return nil, domainerrors.ErrInvalidSortProperty.WithDetails(err.Error())
		}

		return nil, errors.Wrap(err, "failed to query loans")
	}

	srv.log(ctx).Debug("Loan search completed",
		slog.Int("page", page.PageNumber),
		slog.Int("size", page.PageSize),
		slog.Int64("total", page.TotalElements),
	)

	return page, nil
}

// SaveLoan validates and persists a loan in one serializable transaction.
// The game and client must exist; the loan itself must exist when id is set.
func (srv *loanService) SaveLoan(ctx context.Context, id *int64, input *usecase.SaveLoanInput) (*entity.Loan, error) {
	if input == nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("missing loan")
	}

	var saved *entity.Loan

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		loanRepo := repoFactory.NewLoanRepository()
		catalogRepo := repoFactory.NewCatalogRepository()

		candidate := &entity.Loan{
			GameID:    input.GameID,
			ClientID:  input.ClientID,
			StartDate: entity.TruncateDate(input.StartDate),
			EndDate:   entity.TruncateDate(input.EndDate),
		}

		if id != nil {
			if _, err := loanRepo.FindLoanByID(ctx, *id); err != nil {
				return notFound(err, *id)
			}
			candidate.ID = *id
		}

		game, err := catalogRepo.FindGameByID(ctx, input.GameID)
		if err != nil {
			return notFound(err, input.GameID)
		}
		client, err := catalogRepo.FindClientByID(ctx, input.ClientID)
		if err != nil {
			return notFound(err, input.ClientID)
		}

		validator := reservation.NewValidator(reservation.NewOverlapIndex(loanRepo), srv.policy)
		if err := validator.Validate(ctx, candidate, id); err != nil {
			return err
		}

		if id == nil {
			err = loanRepo.InsertLoan(ctx, candidate)
		} else {
			err = loanRepo.UpdateLoan(ctx, candidate)
		}
		if err != nil {
			return notFound(err, candidate.ID)
		}

		candidate.Game = game
		candidate.Client = client
		saved = candidate

		return nil
	})
	if err != nil {
		if reason, ok := domainerrors.RejectionReasonOf(err); ok {
			srv.log(ctx).Info("Loan rejected",
				slog.String("reason", string(reason)),
				slog.Int64("game_id", input.GameID),
				slog.Int64("client_id", input.ClientID),
			)
		}

		return nil, err
	}

	eventType := entity.LoanCreated
	if id != nil {
		eventType = entity.LoanUpdated
	}
	srv.log(ctx).Info("Loan saved", slog.Int64("loan_id", saved.ID), slog.String("event", string(eventType)))
	srv.publish(ctx, eventType, saved)

	return saved, nil
}

// DeleteLoan removes a loan.
func (srv *loanService) DeleteLoan(ctx context.Context, id int64) error {
	var deleted *entity.Loan

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		loanRepo := repoFactory.NewLoanRepository()

		loan, err := loanRepo.FindLoanByID(ctx, id)
		if err != nil {
			return notFound(err, id)
		}
		if err := loanRepo.DeleteLoanByID(ctx, id); err != nil {
			return notFound(err, id)
		}
		deleted = loan

		return nil
	})
	if err != nil {
		return err
	}

	srv.log(ctx).Info("Loan deleted", slog.Int64("loan_id", id))
	srv.publish(ctx, entity.LoanDeleted, deleted)

	return nil
}

// GenerateTicket renders the QR ticket of an existing loan.
func (srv *loanService) GenerateTicket(ctx context.Context, id int64) ([]byte, error) {
	if _, err := srv.GetLoan(ctx, id); err != nil {
		return nil, err
	}

	png, err := srv.tickets.GenerateLoanTicket(id)
	if err != nil {
		srv.log(ctx).Error("Failed to generate loan ticket", slog.Int64("loan_id", id), slog.Any("error", err))

		return nil, domainerrors.ErrTicketGenerationFailed.WithDetails(err.Error())
	}

	return png, nil
}

// ScanTicket resolves the loan a scanned ticket points at.
func (srv *loanService) ScanTicket(ctx context.Context, content string) (*entity.Loan, error) {
	id, err := srv.tickets.ParseLoanTicket(content)
	if err != nil {
		return nil, domainerrors.ErrInvalidTicket.WithDetails(err.Error())
	}

	return srv.GetLoan(ctx, id)
}

// normalizePageable applies the default page, caps the page size and rejects unsupported sort properties.
func (srv *loanService) normalizePageable(in *entity.Pageable) (entity.Pageable, error) {
	pageable := entity.Pageable{PageNumber: entity.DefaultPageNumber, PageSize: srv.defaultPageSize}
	if in == nil {
		return pageable, nil
	}

	if in.PageNumber > 0 {
		pageable.PageNumber = in.PageNumber
	}
	if in.PageSize > 0 {
		pageable.PageSize = in.PageSize
	}
	if srv.maxPageSize > 0 && pageable.PageSize > srv.maxPageSize {
		pageable.PageSize = srv.maxPageSize
	}
	if pageable.PageNumber > math.MaxInt/pageable.PageSize {
		return entity.Pageable{}, domainerrors.ErrInvalidPage.WithDetails(
			fmt.Sprintf("page %d of size %d is past any result", pageable.PageNumber, pageable.PageSize))
	}

	for _, order := range in.Sort {
		if _, ok := sortableProperties[order.Property]; !ok {
			return entity.Pageable{}, domainerrors.ErrInvalidSortProperty.WithDetails(order.Property)
		}
		if order.Direction != entity.SortDesc {
			order.Direction = entity.SortAsc
		}
		pageable.Sort = append(pageable.Sort, order)
	}

	return pageable, nil
}

// publish sends a loan event after commit. The change is already durable,
// so a failed publish is logged and not reported to the caller.
func (srv *loanService) publish(ctx context.Context, eventType entity.LoanEventType, loan *entity.Loan) {
	if srv.publisher == nil || loan == nil {
		return
	}

	event := &service.LoanEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		EventID:    uuid.NewString(),
		Type:       string(eventType),
		LoanID:     loan.ID,
		GameID:     loan.GameID,
		ClientID:   loan.ClientID,
		StartDate:  entity.FormatDate(loan.StartDate),
		EndDate:    entity.FormatDate(loan.EndDate),
		OccurredAt: srv.now().UTC().Format(time.RFC3339Nano),
	}

	if err := srv.publisher.PublishLoanEvent(context.WithoutCancel(ctx), event); err != nil {
		srv.log(ctx).Warn("Failed to publish loan event",
			slog.String("event_id", event.EventID),
			slog.String("type", event.Type),
			slog.Int64("loan_id", loan.ID),
			slog.Any("error", err),
		)
	}
}

// notFound turns repository not-found sentinels into domain not-found errors.
func notFound(err error, id int64) error {
	switch {
	case errors.Is(err, repository.ErrLoanNotFound):
		return domainerrors.NewNotFoundError("loan", id)
	case errors.Is(err, repository.ErrGameNotFound):
		return domainerrors.NewNotFoundError("game", id)
	case errors.Is(err, repository.ErrClientNotFound):
		return domainerrors.NewNotFoundError("client", id)
	default:
		return err
	}
}

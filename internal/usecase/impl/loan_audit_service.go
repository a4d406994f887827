package impl

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	deliverycontext "ludoteca/internal/delivery/context"
	"ludoteca/internal/domain/entity"
	domainerrors "ludoteca/internal/domain/errors"
	"ludoteca/internal/domain/repository"
	"ludoteca/internal/domain/service"
	"ludoteca/internal/errors"
	"ludoteca/internal/usecase"
)

// loanAuditService implements the LoanAuditUsecase interface.
type loanAuditService struct {
	txManager repository.TransactionManager
	eventRepo repository.LoanEventRepository
	logger    *slog.Logger
}

// NewLoanAuditService is the constructor for loanAuditService.
func NewLoanAuditService(
	txManager repository.TransactionManager,
	eventRepo repository.LoanEventRepository,
	logger *slog.Logger,
) usecase.LoanAuditUsecase {
	return &loanAuditService{
		txManager: txManager,
		eventRepo: eventRepo,
		logger:    logger,
	}
}

func (srv *loanAuditService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RecordLoanEvent validates a delivered event and stores it once per message.
// Malformed events return ErrValidationFailed so the caller can drop them.
func (srv *loanAuditService) RecordLoanEvent(ctx context.Context, messageID string, event *service.LoanEvent) error {
	entry, err := toAuditEntry(messageID, event)
	if err != nil {
		return err
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.NewLoanEventRepository().CreateLoanEvent(ctx, entry)
	})
	if errors.Is(err, repository.ErrDuplicateLoanEvent) {
		srv.log(ctx).Debug("Loan event already recorded", slog.String("message_id", entry.MessageID))

		return nil
	}
	if err != nil {
		return errors.Wrap(err, "failed to record loan event")
	}

	srv.log(ctx).Info("Loan event recorded",
		slog.String("message_id", entry.MessageID),
		slog.String("type", string(entry.Type)),
		slog.Int64("loan_id", entry.LoanID),
	)

	return nil
}

// ListLoanEvents returns the audit trail of a loan. A deleted loan keeps its trail.
func (srv *loanAuditService) ListLoanEvents(ctx context.Context, loanID int64) ([]*entity.LoanAuditEntry, error) {
	entries, err := srv.eventRepo.FindLoanEventsByLoanID(ctx, loanID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list loan events")
	}

	return entries, nil
}

func toAuditEntry(messageID string, event *service.LoanEvent) (*entity.LoanAuditEntry, error) {
	if event == nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("empty loan event")
	}
	if messageID == "" {
		messageID = event.EventID
	}
	if messageID == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("loan event has no message id")
	}

	eventType := entity.LoanEventType(event.Type)
	if !eventType.Valid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown loan event type " + event.Type)
	}

	start, err := entity.ParseDate(event.StartDate)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}
	end, err := entity.ParseDate(event.EndDate)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}
	occurredAt, err := time.Parse(time.RFC3339Nano, event.OccurredAt)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("invalid occurred_at: " + event.OccurredAt)
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode loan event")
	}

	return &entity.LoanAuditEntry{
		MessageID:  messageID,
		Type:       eventType,
		LoanID:     event.LoanID,
		GameID:     event.GameID,
		ClientID:   event.ClientID,
		StartDate:  start,
		EndDate:    end,
		RequestID:  event.RequestID,
		Payload:    payload,
		OccurredAt: occurredAt,
	}, nil
}

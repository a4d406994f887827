package postgres

import (
	"context"

	"ludoteca/internal/domain/entity"
	domainerrors "ludoteca/internal/domain/errors"
	"ludoteca/internal/domain/repository"
	"ludoteca/internal/errors"
	"ludoteca/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// loanEventRepository implements the repository.LoanEventRepository interface.
type loanEventRepository struct {
	db *gorm.DB
}

// NewLoanEventRepository is the constructor for loanEventRepository.
func NewLoanEventRepository(db *gorm.DB) repository.LoanEventRepository {
	return &loanEventRepository{
		db: db,
	}
}

// CreateLoanEvent records a delivered loan event once per message ID.
func (repo *loanEventRepository) CreateLoanEvent(ctx context.Context, entry *entity.LoanAuditEntry) error {
	eventM := fromLoanEventDomain(entry)

	if err := repo.db.WithContext(ctx).Create(eventM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateLoanEvent
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create loan event")
	}

	entry.ID = eventM.ID
	entry.ReceivedAt = eventM.ReceivedAt

	return nil
}

// FindLoanEventsByLoanID lists the audit trail of a loan.
func (repo *loanEventRepository) FindLoanEventsByLoanID(ctx context.Context, loanID int64) ([]*entity.LoanAuditEntry, error) {
	var eventModels []*model.LoanEventModel

	if err := repo.db.WithContext(ctx).
		Where("loan_id = ?", loanID).
		Order("occurred_at ASC, received_at ASC").
		Find(&eventModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find loan events")
	}

	entries := make([]*entity.LoanAuditEntry, 0, len(eventModels))
	for _, eventM := range eventModels {
		entries = append(entries, toLoanEventDomain(eventM))
	}

	return entries, nil
}

// --- Mappers ---

func toLoanEventDomain(data *model.LoanEventModel) *entity.LoanAuditEntry {
	if data == nil {
		return nil
	}

	return &entity.LoanAuditEntry{
		ID:         data.ID,
		MessageID:  data.MessageID,
		Type:       entity.LoanEventType(data.Type),
		LoanID:     data.LoanID,
		GameID:     data.GameID,
		ClientID:   data.ClientID,
		StartDate:  entity.TruncateDate(toTime(data.StartDate)),
		EndDate:    entity.TruncateDate(toTime(data.EndDate)),
		RequestID:  data.RequestID,
		Payload:    data.Payload,
		OccurredAt: data.OccurredAt,
		ReceivedAt: data.ReceivedAt,
	}
}

func fromLoanEventDomain(data *entity.LoanAuditEntry) *model.LoanEventModel {
	if data == nil {
		return nil
	}

	eventM := &model.LoanEventModel{
		ID:         data.ID,
		MessageID:  data.MessageID,
		Type:       string(data.Type),
		LoanID:     data.LoanID,
		GameID:     data.GameID,
		ClientID:   data.ClientID,
		StartDate:  datatypes.Date(entity.TruncateDate(data.StartDate)),
		EndDate:    datatypes.Date(entity.TruncateDate(data.EndDate)),
		RequestID:  data.RequestID,
		Payload:    datatypes.JSON(data.Payload),
		OccurredAt: data.OccurredAt,
		ReceivedAt: data.ReceivedAt,
	}
	if eventM.ID == uuid.Nil {
		eventM.ID = uuid.Must(uuid.NewV7())
	}

	return eventM
}

package postgres

import (
	"context"

	"ludoteca/internal/domain/criteria"
	"ludoteca/internal/domain/entity"
	domainerrors "ludoteca/internal/domain/errors"
	"ludoteca/internal/domain/repository"
	"ludoteca/internal/errors"
	"ludoteca/internal/infra/persistence/model"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"
)

// loanRepository implements the repository.LoanRepository interface.
type loanRepository struct {
	db *gorm.DB
}

// NewLoanRepository is the constructor for loanRepository.
func NewLoanRepository(db *gorm.DB) repository.LoanRepository {
	return &loanRepository{
		db: db,
	}
}

// InsertLoan persists a new loan. Catalog rows are referenced, never written.
func (repo *loanRepository) InsertLoan(ctx context.Context, loan *entity.Loan) error {
	loanM := fromLoanDomain(loan)

	if err := repo.db.WithContext(ctx).Omit(clause.Associations).Create(loanM).Error; err != nil {
		return loanWriteError(err, "failed to create loan")
	}

	loan.ID = loanM.ID
	loan.CreatedAt = loanM.CreatedAt
	loan.UpdatedAt = loanM.UpdatedAt

	return nil
}

// UpdateLoan overwrites the references and dates of an existing loan.
func (repo *loanRepository) UpdateLoan(ctx context.Context, loan *entity.Loan) error {
	loanM := fromLoanDomain(loan)

	result := repo.db.WithContext(ctx).
		Model(&model.LoanModel{ID: loan.ID}).
		Select("game_id", "client_id", "start_date", "end_date", "updated_at").
		Updates(loanM)
	if result.Error != nil {
		return loanWriteError(result.Error, "failed to update loan")
	}
	if result.RowsAffected == 0 {
		return repository.ErrLoanNotFound
	}

	loan.UpdatedAt = loanM.UpdatedAt

	return nil
}

// FindLoanByID retrieves a loan with its game and client.
func (repo *loanRepository) FindLoanByID(ctx context.Context, id int64) (*entity.Loan, error) {
	var loanM model.LoanModel

	if err := repo.db.WithContext(ctx).
		Preload("Game").
		Preload("Client").
		Where("id = ?", id).
		First(&loanM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrLoanNotFound
		}

		return nil, errors.Wrap(err, "failed to find loan by ID")
	}

	return toLoanDomain(&loanM), nil
}

// DeleteLoanByID removes a loan.
func (repo *loanRepository) DeleteLoanByID(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.LoanModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete loan")
	}
	if result.RowsAffected == 0 {
		return repository.ErrLoanNotFound
	}

	return nil
}

// QueryLoans counts the loans matching pred and loads the requested page.
// Outside a transaction the reads go to a replica.
func (repo *loanRepository) QueryLoans(ctx context.Context, pred criteria.Predicate, pageable entity.Pageable) (*entity.Page[*entity.Loan], error) {
	query, err := buildLoanQuery(pred, pageable.Sort)
	if err != nil {
		return nil, err
	}

	base := repo.db.WithContext(ctx).Clauses(dbresolver.Read).Model(&model.LoanModel{})
	for _, join := range query.joins {
		base = base.Joins(join)
	}
	if len(query.where) > 0 {
		base = base.Clauses(clause.Where{Exprs: query.where})
	}
	base = base.Session(&gorm.Session{})

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count loans")
	}

	var loanModels []*model.LoanModel
	if total > int64(pageable.Offset()) {
		if err := base.
			Select("loans.*").
			Preload("Game").
			Preload("Client").
			Clauses(clause.OrderBy{Columns: query.order}).
			Offset(pageable.Offset()).
			Limit(pageable.PageSize).
			Find(&loanModels).Error; err != nil {
			return nil, errors.Wrap(err, "failed to query loans")
		}
	}

	loans := make([]*entity.Loan, 0, len(loanModels))
	for _, loanM := range loanModels {
		loans = append(loans, toLoanDomain(loanM))
	}

	return entity.NewPage(loans, pageable, total), nil
}

// QueryOverlap reads from the primary so it sees the caller's transaction snapshot.
// SERIALIZABLE isolation turns a concurrent conflicting insert into a retryable abort.
func (repo *loanRepository) QueryOverlap(ctx context.Context, kind entity.Subject, ref int64, period entity.DateRange, excludeID *int64) ([]*entity.Loan, error) {
	exprs, err := overlapExpressions(kind, ref, period, excludeID)
	if err != nil {
		return nil, err
	}

	var loanModels []*model.LoanModel
	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Clauses(clause.Where{Exprs: exprs}).
		Order("start_date, id").
		Find(&loanModels).Error; err != nil {
		return nil, errors.Wrapf(err, "failed to query %s overlapping loans", kind)
	}

	loans := make([]*entity.Loan, 0, len(loanModels))
	for _, loanM := range loanModels {
		loans = append(loans, toLoanDomain(loanM))
	}

	return loans, nil
}

func loanWriteError(err error, details string) error {
	switch {
	case isForeignKeyConstraintViolation(err):
		return domainerrors.NewDatabaseExecuteError(err, details+": unknown game or client reference")
	case isCheckConstraintViolation(err):
		return domainerrors.NewDatabaseExecuteError(err, details+": end date precedes start date")
	case isNotNullConstraintViolation(err):
		return domainerrors.NewDatabaseExecuteError(err, details+": missing required loan information")
	case isRetryableTxError(err):
		// Keep the driver error visible so the transaction manager can retry.
		return errors.Wrap(err, details)
	default:
		return domainerrors.NewDatabaseExecuteError(err, details)
	}
}

// --- Mappers ---

func toLoanDomain(data *model.LoanModel) *entity.Loan {
	if data == nil {
		return nil
	}

	loan := &entity.Loan{
		ID:        data.ID,
		GameID:    data.GameID,
		ClientID:  data.ClientID,
		StartDate: entity.TruncateDate(toTime(data.StartDate)),
		EndDate:   entity.TruncateDate(toTime(data.EndDate)),
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
	if data.Game != nil {
		loan.Game = toGameDomain(data.Game)
	}
	if data.Client != nil {
		loan.Client = toClientDomain(data.Client)
	}

	return loan
}

func fromLoanDomain(data *entity.Loan) *model.LoanModel {
	if data == nil {
		return nil
	}

	return &model.LoanModel{
		ID:        data.ID,
		GameID:    data.GameID,
		ClientID:  data.ClientID,
		StartDate: datatypes.Date(entity.TruncateDate(data.StartDate)),
		EndDate:   datatypes.Date(entity.TruncateDate(data.EndDate)),
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

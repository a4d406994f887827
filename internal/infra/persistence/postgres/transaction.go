// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"ludoteca/config"
	domainerrors "ludoteca/internal/domain/errors"
	"ludoteca/internal/domain/repository"
	"ludoteca/internal/errors"

	"gorm.io/gorm"
)

const txRetryBackoff = 20 * time.Millisecond

// gormTransactionManager implements the domain's TransactionManager interface using GORM.
// Every transaction runs at SERIALIZABLE isolation; a transaction that loses a
// serialization conflict is retried from the start up to retries times.
type gormTransactionManager struct {
	db      *gorm.DB
	retries int
	logger  *slog.Logger
	// attempt runs fn once in a fresh transaction.
	attempt func(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error
}

// gormRepositoryFactory implements the domain's RepositoryFactory interface.
// It holds a specific GORM transaction object and uses it to create
// repository instances that are bound to that single transaction.
type gormRepositoryFactory struct {
	tx *gorm.DB // In GORM, a transaction object is also a *gorm.DB
}

// NewLoanRepository creates a loan repository bound to the transaction.
func (f *gormRepositoryFactory) NewLoanRepository() repository.LoanRepository {
	return NewLoanRepository(f.tx)
}

// NewCatalogRepository creates a catalog repository bound to the transaction.
func (f *gormRepositoryFactory) NewCatalogRepository() repository.CatalogRepository {
	return NewCatalogRepository(f.tx)
}

// NewLoanEventRepository creates a loan event repository bound to the transaction.
func (f *gormRepositoryFactory) NewLoanEventRepository() repository.LoanEventRepository {
	return NewLoanEventRepository(f.tx)
}

// NewTransactionManager is the constructor for gormTransactionManager.
// This function will be used as an Fx provider.
func NewTransactionManager(db *gorm.DB, cfg *config.Config, logger *slog.Logger) repository.TransactionManager {
	retries := 0
	if cfg != nil && cfg.Storage != nil {
		retries = cfg.Storage.TxRetries
	}

	tm := &gormTransactionManager{db: db, retries: retries, logger: logger}
	tm.attempt = tm.executeOnce

	return tm
}

// Execute runs the given function within a single database transaction.
func (tm *gormTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	var err error
	for attempt := 0; ; attempt++ {
		err = tm.attempt(ctx, fn)
		if err == nil || !isRetryableTxError(err) {
			return err
		}
		if attempt >= tm.retries {
			if tm.logger != nil {
				tm.logger.ErrorContext(ctx, "Serializable transaction kept conflicting",
					slog.Int("attempts", attempt+1),
					slog.Any("error", err),
				)
			}

			return domainerrors.ErrTransactionFailed.WithDetails("concurrent update conflict")
		}

		if tm.logger != nil {
			tm.logger.WarnContext(ctx, "Retrying serializable transaction",
				slog.Int("attempt", attempt+1),
				slog.Any("error", err),
			)
		}

		select {
		case <-ctx.Done():
			return errors.Wrap(ctx.Err(), "transaction retry aborted")
		case <-time.After(time.Duration(attempt+1) * txRetryBackoff):
		}
	}
}

func (tm *gormTransactionManager) executeOnce(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	tx := tm.db.WithContext(ctx).Begin(&sql.TxOptions{Isolation: sql.LevelSerializable})
	if tx.Error != nil {
		return errors.Wrap(tx.Error, "failed to begin transaction")
	}

	// Roll back on panic, then let Fx or the HTTP recover middleware handle it.
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	if err := fn(&gormRepositoryFactory{tx: tx}); err != nil {
		if rbErr := tx.Rollback().Error; rbErr != nil {
			return errors.Wrapf(err, "transaction rollback failed: %v", rbErr)
		}

		return err
	}

	if err := tx.Commit().Error; err != nil {
		return errors.Wrap(err, "failed to commit transaction")
	}

	return nil
}

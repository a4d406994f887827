package postgres

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"ludoteca/config"
	domainerrors "ludoteca/internal/domain/errors"
	"ludoteca/internal/domain/repository"
	"ludoteca/internal/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newCountingTxManager returns a manager whose attempts yield results in order; the last one repeats.
func newCountingTxManager(retries int, results ...error) (*gormTransactionManager, *int) {
	calls := 0
	tm := NewTransactionManager(nil, &config.Config{Storage: &config.StorageConfig{TxRetries: retries}},
		slog.New(slog.NewTextHandler(io.Discard, nil))).(*gormTransactionManager)
	tm.attempt = func(_ context.Context, _ func(repository.RepositoryFactory) error) error {
		result := results[min(calls, len(results)-1)]
		calls++

		return result
	}

	return tm, &calls
}

func serializationFailure() error {
	return errors.Wrap(&pgconn.PgError{Code: pgSerializationFailure}, "failed to commit transaction")
}

func TestTransactionManager_RetriesSerializationFailures(t *testing.T) {
	tm, calls := newCountingTxManager(3, serializationFailure(), &pgconn.PgError{Code: pgDeadlockDetected}, nil)

	err := tm.Execute(context.Background(), func(repository.RepositoryFactory) error { return nil })

	require.NoError(t, err)
	assert.Equal(t, 3, *calls)
}

func TestTransactionManager_GivesUpAfterRetries(t *testing.T) {
	tm, calls := newCountingTxManager(2, serializationFailure())

	err := tm.Execute(context.Background(), func(repository.RepositoryFactory) error { return nil })

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrTransactionFailed.ErrorCode(), appErr.ErrorCode())
	assert.Equal(t, 3, *calls)
}

func TestTransactionManager_DoesNotRetryOtherErrors(t *testing.T) {
	rejected := domainerrors.NewLoanValidationError(domainerrors.ReasonGameConflict, "game already loaned in that period")
	tm, calls := newCountingTxManager(3, rejected)

	err := tm.Execute(context.Background(), func(repository.RepositoryFactory) error { return nil })

	assert.ErrorIs(t, err, rejected)
	assert.Equal(t, 1, *calls)
}

func TestTransactionManager_StopsRetryingWhenCancelled(t *testing.T) {
	tm, calls := newCountingTxManager(5, serializationFailure())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := tm.Execute(ctx, func(repository.RepositoryFactory) error { return nil })

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, *calls)
}

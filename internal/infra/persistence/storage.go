// Package persistence selects the store implementation behind the repository interfaces.
package persistence

import (
	"ludoteca/config"
	"ludoteca/internal/infra/persistence/memory"
	"ludoteca/internal/infra/persistence/postgres"

	"go.uber.org/fx"
)

// Option provides the transaction manager and repositories of the given storage driver.
func Option(driver string) fx.Option {
	if driver == config.StorageDriverMemory {
		return fx.Provide(
			memory.New,
			memory.NewTransactionManager,
			memory.NewLoanRepository,
			memory.NewCatalogRepository,
			memory.NewLoanEventRepository,
		)
	}

	return fx.Provide(
		postgres.New,
		postgres.NewTransactionManager,
		postgres.NewLoanRepository,
		postgres.NewCatalogRepository,
		postgres.NewLoanEventRepository,
	)
}

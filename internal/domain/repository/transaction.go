package repository

import "context"

// TransactionManager defines the interface for managing database transactions.
// This allows the use case layer to handle transactions without depending on a specific DB driver like GORM.
type TransactionManager interface {
	// Execute runs a function within a single serializable transaction.
	// If the function returns an error, the transaction is rolled back. Otherwise, it's committed.
	// Implementations may run fn more than once when the store aborts the transaction
	// because of a concurrent conflicting write, so fn must not have effects outside the store.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory provides a way to get repository instances that are bound to a specific transaction.
// This ensures all repository operations within a transaction use the same database connection.
type RepositoryFactory interface {
	// NewLoanRepository returns a LoanRepository instance bound to the current transaction.
	NewLoanRepository() LoanRepository

	// NewCatalogRepository returns a CatalogRepository instance bound to the current transaction.
	NewCatalogRepository() CatalogRepository

	// NewLoanEventRepository returns a LoanEventRepository instance bound to the current transaction.
	NewLoanEventRepository() LoanEventRepository
}

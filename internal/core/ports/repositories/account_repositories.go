package repositories

import (
	"context"

	"github.com/bankwise/bank_account_app/internal/core/domain"
)

// AccountReader defines read operations for account data
type AccountReader interface {
	// FindAccountByID retrieves a specific account by its unique identifier.
	FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error)

	// FindAccountByOwnerID retrieves the account held by the given owner, if any.
	FindAccountByOwnerID(ctx context.Context, ownerID int64) (*domain.Account, error)

	// ListAccounts retrieves accounts in insertion order, paginated.
	ListAccounts(ctx context.Context, limit int, offset int) ([]domain.Account, error)
}

// AccountWriter defines write operations for account data
type AccountWriter interface {
	// SaveAccount persists a new account.
	SaveAccount(ctx context.Context, account domain.Account) error

	// UpdateAccount replaces the stored record matching the account's ID.
	// It is a no-op, not an error, when no such record exists.
	UpdateAccount(ctx context.Context, account domain.Account) error

	// UpdateAccountBalances replaces multiple accounts in a single critical
	// section so readers never observe a partially applied settlement. The
	// write is all-or-nothing: it fails with apperrors.ErrNotFound, writing
	// nothing, when any target account no longer exists.
	UpdateAccountBalances(ctx context.Context, accounts []domain.Account) error

	// DeleteAccount removes the record matching accountID; no-op if absent.
	DeleteAccount(ctx context.Context, accountID string) error
}

// AccountRepositoryFacade combines all account-related repository interfaces.
// This is a facade for clients that need access to all operations
type AccountRepositoryFacade interface {
	AccountReader
	AccountWriter
}

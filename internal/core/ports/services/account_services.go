package services

import (
	"context"

	"github.com/bankwise/bank_account_app/internal/core/domain"
	"github.com/bankwise/bank_account_app/internal/dto"
)

// AccountReaderSvc defines read operations for account data
type AccountReaderSvc interface {
	// GetAccountByID retrieves a specific account by its unique identifier.
	GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error)

	// ListAccounts retrieves accounts in insertion order, paginated.
	ListAccounts(ctx context.Context, limit int, offset int) ([]domain.Account, error)
}

// AccountWriterSvc defines write operations for account data
type AccountWriterSvc interface {
	// CreateAccount validates and persists a new account with a fresh ID.
	CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, error)

	// UpdateAccount replaces the owner, currency and balance of an existing account.
	UpdateAccount(ctx context.Context, accountID string, req dto.UpdateAccountRequest) (*domain.Account, error)

	// DeleteAccount removes an account.
	DeleteAccount(ctx context.Context, accountID string) error
}

// AccountSvcFacade combines all account-related service interfaces.
// This is a facade for clients that need access to all operations
type AccountSvcFacade interface {
	AccountReaderSvc
	AccountWriterSvc
}

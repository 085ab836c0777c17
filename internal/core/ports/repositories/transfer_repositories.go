package repositories

import (
	"context"

	"github.com/bankwise/bank_account_app/internal/core/domain"
)

// TransferReader defines read operations for the transfer log
type TransferReader interface {
	// ListTransfers retrieves all transfers in insertion order.
	ListTransfers(ctx context.Context) ([]domain.Transfer, error)

	// ListTransfersByAccount retrieves transfers where the account appears as
	// either source or destination, preserving insertion order.
	ListTransfersByAccount(ctx context.Context, accountID string) ([]domain.Transfer, error)
}

// TransferWriter defines write operations for the transfer log
type TransferWriter interface {
	// SaveTransfer appends a transfer record. The log is append-only; records
	// are never mutated or deleted afterwards.
	SaveTransfer(ctx context.Context, transfer domain.Transfer) error
}

// TransferRepositoryFacade combines all transfer-related repository interfaces.
type TransferRepositoryFacade interface {
	TransferReader
	TransferWriter
}

package services

import (
	"context"

	"github.com/bankwise/bank_account_app/internal/core/domain"
	"github.com/bankwise/bank_account_app/internal/dto"
)

// TransferReaderSvc defines read operations over the transfer history.
type TransferReaderSvc interface {
	// ListTransfers retrieves all transfers in insertion order.
	ListTransfers(ctx context.Context) ([]domain.Transfer, error)

	// ListTransfersByAccount retrieves transfers touching the given account,
	// as source or destination, in insertion order.
	ListTransfersByAccount(ctx context.Context, accountID string) ([]domain.Transfer, error)
}

// TransferSettlementSvc settles fund movements between two accounts.
type TransferSettlementSvc interface {
	// TransferFunds validates the requested movement, applies the debit and
	// credit atomically and appends a history record. The returned settlement
	// carries both updated accounts and the new transfer.
	TransferFunds(ctx context.Context, req dto.TransferFundsRequest) (*domain.Settlement, error)
}

// TransferSvcFacade combines all transfer-related service interfaces.
type TransferSvcFacade interface {
	TransferReaderSvc
	TransferSettlementSvc
}

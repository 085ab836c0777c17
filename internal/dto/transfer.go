package dto

import (
	"time"

	"github.com/bankwise/bank_account_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// TransferFundsRequest defines the data needed to settle a transfer. Amount is
// expressed in the source account's currency; positivity is validated by the
// settlement service so the failure surfaces as a typed error.
type TransferFundsRequest struct {
	FromAccountID string          `json:"fromAccountId" binding:"required"`
	ToAccountID   string          `json:"toAccountId" binding:"required"`
	Amount        decimal.Decimal `json:"amount" binding:"required"`
}

// TransferResponse defines the data returned for a transfer history record.
// Mirrors domain.Transfer.
type TransferResponse struct {
	TransferID       string          `json:"transferID"`
	FromAccountID    string          `json:"fromAccountId"`
	ToAccountID      string          `json:"toAccountId"`
	FromOwnerID      int64           `json:"fromOwnerId"`
	ToOwnerID        int64           `json:"toOwnerId"`
	Amount           decimal.Decimal `json:"amount"`
	FromCurrencyCode string          `json:"fromCurrency"`
	ToCurrencyCode   string          `json:"toCurrency"`
	ConvertedAmount  decimal.Decimal `json:"convertedAmount"`
	Timestamp        time.Time       `json:"timestamp"`
}

// SettlementResponse is returned after a successful transfer: both updated
// accounts plus the appended history record.
type SettlementResponse struct {
	FromAccount AccountResponse  `json:"fromAccount"`
	ToAccount   AccountResponse  `json:"toAccount"`
	Transfer    TransferResponse `json:"transfer"`
}

// ToTransferResponse converts a domain.Transfer to TransferResponse DTO
func ToTransferResponse(t *domain.Transfer) TransferResponse {
	return TransferResponse{
		TransferID:       t.TransferID,
		FromAccountID:    t.FromAccountID,
		ToAccountID:      t.ToAccountID,
		FromOwnerID:      t.FromOwnerID,
		ToOwnerID:        t.ToOwnerID,
		Amount:           t.Amount,
		FromCurrencyCode: t.FromCurrencyCode,
		ToCurrencyCode:   t.ToCurrencyCode,
		ConvertedAmount:  t.ConvertedAmount,
		Timestamp:        t.Timestamp,
	}
}

// ToListTransferResponse converts a slice of domain.Transfer to DTOs
func ToListTransferResponse(transfers []domain.Transfer) []TransferResponse {
	res := make([]TransferResponse, len(transfers))
	for i, t := range transfers {
		res[i] = ToTransferResponse(&t)
	}
	return res
}

// ToSettlementResponse converts a domain.Settlement to SettlementResponse DTO
func ToSettlementResponse(s *domain.Settlement) SettlementResponse {
	return SettlementResponse{
		FromAccount: ToAccountResponse(&s.FromAccount),
		ToAccount:   ToAccountResponse(&s.ToAccount),
		Transfer:    ToTransferResponse(&s.Transfer),
	}
}

// ListTransfersResponse wraps the list of transfers.
type ListTransfersResponse struct {
	Transfers []TransferResponse `json:"transfers"`
}

package dto

import (
	"time"

	"github.com/bankwise/bank_account_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateAccountRequest defines the data needed to create a new account.
// Balance has no binding tag so a zero opening balance stays valid; the
// service rejects negative values.
type CreateAccountRequest struct {
	OwnerID      int64           `json:"ownerId" binding:"required,gt=0"`
	CurrencyCode string          `json:"currency" binding:"required,currencycode"`
	Balance      decimal.Decimal `json:"balance"`
}

// UpdateAccountRequest defines the data for updating an account. Updates are
// full replacements of the mutable fields; the account ID never changes.
type UpdateAccountRequest struct {
	OwnerID      int64           `json:"ownerId" binding:"required,gt=0"`
	CurrencyCode string          `json:"currency" binding:"required,currencycode"`
	Balance      decimal.Decimal `json:"balance"`
}

// AccountResponse defines the data returned for an account.
// Mirrors domain.Account.
type AccountResponse struct {
	AccountID     string          `json:"accountID"`
	OwnerID       int64           `json:"ownerId"`
	CurrencyCode  string          `json:"currency"`
	Balance       decimal.Decimal `json:"balance"`
	CreatedAt     time.Time       `json:"createdAt"`
	LastUpdatedAt time.Time       `json:"lastUpdatedAt"`
}

// ToAccountResponse converts a domain.Account to AccountResponse DTO
func ToAccountResponse(acc *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:     acc.AccountID,
		OwnerID:       acc.OwnerID,
		CurrencyCode:  acc.CurrencyCode,
		Balance:       acc.Balance,
		CreatedAt:     acc.CreatedAt,
		LastUpdatedAt: acc.LastUpdatedAt,
	}
}

// ToListAccountResponse converts a slice of domain.Account to a slice of AccountResponse DTOs
func ToListAccountResponse(accounts []domain.Account) []AccountResponse {
	res := make([]AccountResponse, len(accounts))
	for i, acc := range accounts {
		res[i] = ToAccountResponse(&acc)
	}
	return res
}

// ListAccountsParams defines query parameters for listing accounts.
// Pagination is opt-in: without a limit the full collection comes back.
type ListAccountsParams struct {
	Limit  int `form:"limit"`
	Offset int `form:"offset"`
}

// ListAccountsResponse wraps the list of accounts.
type ListAccountsResponse struct {
	Accounts []AccountResponse `json:"accounts"`
}

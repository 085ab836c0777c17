package repositories

import (
	"context"

	"github.com/bankwise/bank_account_app/internal/core/domain"
)

// CurrencyRepository defines persistence operations for the currency registry.
type CurrencyRepository interface {
	// SaveCurrency persists a new currency; duplicates by code are rejected.
	SaveCurrency(ctx context.Context, currency domain.Currency) error

	// FindCurrencyByCode retrieves a currency by its code.
	FindCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error)

	// ListCurrencies retrieves all currencies in insertion order.
	ListCurrencies(ctx context.Context) ([]domain.Currency, error)
}

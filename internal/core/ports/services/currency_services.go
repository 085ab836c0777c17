package services

import (
	"context"

	"github.com/bankwise/bank_account_app/internal/core/domain"
	"github.com/bankwise/bank_account_app/internal/dto"
	"github.com/shopspring/decimal"
)

// CurrencySvcFacade manages the registry of supported currencies.
type CurrencySvcFacade interface {
	// CreateCurrency registers a new supported currency.
	CreateCurrency(ctx context.Context, req dto.CreateCurrencyRequest) (*domain.Currency, error)

	// GetCurrencyByCode retrieves a currency by its code.
	GetCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error)

	// ListCurrencies retrieves all supported currencies in insertion order.
	ListCurrencies(ctx context.Context) ([]domain.Currency, error)
}

// ExchangeSvcFacade converts amounts between supported currencies.
type ExchangeSvcFacade interface {
	// Convert converts amount from one currency to another, pivoting through
	// the base currency. Identity conversions return the amount unchanged;
	// cross-currency results are rounded half-up to two decimal places.
	// Unknown codes fail with apperrors.ErrUnknownCurrency.
	Convert(ctx context.Context, amount decimal.Decimal, fromCode string, toCode string) (decimal.Decimal, error)
}

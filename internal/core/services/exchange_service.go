package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/bankwise/bank_account_app/internal/apperrors"
	"github.com/bankwise/bank_account_app/internal/core/domain"
	portsrepo "github.com/bankwise/bank_account_app/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
)

// ExchangeService converts amounts between supported currencies. All
// cross-currency conversions pivot through the base currency using the rates
// held in the currency registry; the converter itself carries no state.
type ExchangeService struct {
	currencyRepo portsrepo.CurrencyRepository
}

// NewExchangeService creates a new ExchangeService.
func NewExchangeService(currencyRepo portsrepo.CurrencyRepository) *ExchangeService {
	return &ExchangeService{currencyRepo: currencyRepo}
}

// Convert converts amount from fromCode to toCode. Identity conversions
// return the amount unchanged with no rounding; cross-currency results are
// rounded half-up to two decimal places. Unknown codes fail with
// apperrors.ErrUnknownCurrency rather than producing a junk number.
func (s *ExchangeService) Convert(ctx context.Context, amount decimal.Decimal, fromCode string, toCode string) (decimal.Decimal, error) {
	fromCode = domain.NormalizeCurrencyCode(fromCode)
	toCode = domain.NormalizeCurrencyCode(toCode)
	if fromCode == toCode {
		return amount, nil
	}

	fromCurrency, err := s.currencyRepo.FindCurrencyByCode(ctx, fromCode)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return decimal.Zero, fmt.Errorf("%w: %s", apperrors.ErrUnknownCurrency, fromCode)
		}
		return decimal.Zero, fmt.Errorf("failed to resolve currency %s: %w", fromCode, err)
	}

	toCurrency, err := s.currencyRepo.FindCurrencyByCode(ctx, toCode)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return decimal.Zero, fmt.Errorf("%w: %s", apperrors.ErrUnknownCurrency, toCode)
		}
		return decimal.Zero, fmt.Errorf("failed to resolve currency %s: %w", toCode, err)
	}

	// amount / rate[from] * rate[to], rounded on the cents boundary.
	amountInBase := amount.Div(fromCurrency.Rate)
	return amountInBase.Mul(toCurrency.Rate).Round(2), nil
}

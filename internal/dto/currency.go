package dto

import (
	"github.com/bankwise/bank_account_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateCurrencyRequest defines the data needed to register a new currency.
// Rate is expressed in units of the new currency per one base-currency unit.
type CreateCurrencyRequest struct {
	CurrencyCode string          `json:"currencyCode" binding:"required,currencycode"`
	Name         string          `json:"name" binding:"required"`
	Symbol       string          `json:"symbol" binding:"required"`
	Rate         decimal.Decimal `json:"rate" binding:"required"`
}

// CurrencyResponse defines the data returned for a currency.
type CurrencyResponse struct {
	CurrencyCode string          `json:"currencyCode"`
	Name         string          `json:"name"`
	Symbol       string          `json:"symbol"`
	Rate         decimal.Decimal `json:"rate"`
}

// ToCurrencyResponse converts a domain.Currency to CurrencyResponse DTO
func ToCurrencyResponse(c *domain.Currency) CurrencyResponse {
	return CurrencyResponse{
		CurrencyCode: c.CurrencyCode,
		Name:         c.Name,
		Symbol:       c.Symbol,
		Rate:         c.Rate,
	}
}

// ToListCurrencyResponse converts a slice of domain.Currency to DTOs
func ToListCurrencyResponse(currencies []domain.Currency) []CurrencyResponse {
	res := make([]CurrencyResponse, len(currencies))
	for i, c := range currencies {
		res[i] = ToCurrencyResponse(&c)
	}
	return res
}

// ListCurrenciesResponse wraps the list of currencies.
type ListCurrenciesResponse struct {
	Currencies []CurrencyResponse `json:"currencies"`
}

// ConvertRateParams defines query parameters for a conversion preview.
type ConvertRateParams struct {
	Amount decimal.Decimal `form:"amount" binding:"required"`
	From   string          `form:"from" binding:"required,currencycode"`
	To     string          `form:"to" binding:"required,currencycode"`
}

// ConvertRateResponse defines the result of a conversion preview.
type ConvertRateResponse struct {
	Amount          decimal.Decimal `json:"amount"`
	FromCurrency    string          `json:"fromCurrency"`
	ToCurrency      string          `json:"toCurrency"`
	ConvertedAmount decimal.Decimal `json:"convertedAmount"`
}

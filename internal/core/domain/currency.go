package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// BaseCurrencyCode is the currency all cross-currency conversions pivot through.
const BaseCurrencyCode = "USD"

// NormalizeCurrencyCode canonicalizes a currency code for storage and lookup.
// Every code that crosses a service boundary goes through here, so the
// registry is keyed uniformly and comparisons never depend on input casing.
func NormalizeCurrencyCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// Currency represents a supported currency in the domain. Rate is the number
// of units of this currency per one unit of the base currency, so the base
// currency itself carries a rate of exactly 1.
type Currency struct {
	CurrencyCode string          `json:"currencyCode"` // Primary Key (e.g., "USD")
	Name         string          `json:"name"`         // e.g., "US Dollar"
	Symbol       string          `json:"symbol"`       // e.g., "$"
	Rate         decimal.Decimal `json:"rate"`         // Units per one base-currency unit
	AuditFields
}

// DefaultCurrencies returns the reference currency set with its USD-anchored
// rates, in the order the registry should list them.
func DefaultCurrencies() []Currency {
	return []Currency{
		{CurrencyCode: "USD", Name: "US Dollar", Symbol: "$", Rate: decimal.NewFromInt(1)},
		{CurrencyCode: "EUR", Name: "Euro", Symbol: "€", Rate: decimal.RequireFromString("0.92")},
		{CurrencyCode: "GBP", Name: "British Pound", Symbol: "£", Rate: decimal.RequireFromString("0.79")},
		{CurrencyCode: "JPY", Name: "Japanese Yen", Symbol: "¥", Rate: decimal.RequireFromString("151.2")},
		{CurrencyCode: "CAD", Name: "Canadian Dollar", Symbol: "CA$", Rate: decimal.RequireFromString("1.37")},
		{CurrencyCode: "AUD", Name: "Australian Dollar", Symbol: "A$", Rate: decimal.RequireFromString("1.52")},
		{CurrencyCode: "CHF", Name: "Swiss Franc", Symbol: "CHF", Rate: decimal.RequireFromString("0.89")},
		{CurrencyCode: "CNY", Name: "Chinese Yuan", Symbol: "CN¥", Rate: decimal.RequireFromString("7.23")},
	}
}

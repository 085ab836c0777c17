package domain

import (
	"github.com/shopspring/decimal"
)

// Account represents a single-currency balance held by an owner.
// This is the primary representation used by services.
type Account struct {
	AccountID    string          `json:"accountID"`    // Primary Key (UUID), immutable after creation
	OwnerID      int64           `json:"ownerID"`      // Positive owner identifier, unique across live accounts
	CurrencyCode string          `json:"currencyCode"` // Member of the currency registry
	Balance      decimal.Decimal `json:"balance"`      // Never negative after a committed operation
	AuditFields
}

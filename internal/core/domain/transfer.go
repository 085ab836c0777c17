package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transfer is an immutable record of one completed fund movement between two
// accounts. Account references are not re-validated after creation; they may
// point at accounts that were later deleted.
type Transfer struct {
	TransferID       string          `json:"transferID"`       // Primary Key (UUID)
	FromAccountID    string          `json:"fromAccountID"`    // Source account at transfer time
	ToAccountID      string          `json:"toAccountID"`      // Destination account at transfer time
	FromOwnerID      int64           `json:"fromOwnerID"`      // Owner snapshot, not tracked after the fact
	ToOwnerID        int64           `json:"toOwnerID"`        // Owner snapshot, not tracked after the fact
	Amount           decimal.Decimal `json:"amount"`           // Debited amount, in FromCurrencyCode
	FromCurrencyCode string          `json:"fromCurrencyCode"` // Source currency at transfer time
	ToCurrencyCode   string          `json:"toCurrencyCode"`   // Destination currency at transfer time
	ConvertedAmount  decimal.Decimal `json:"convertedAmount"`  // Credited amount, in ToCurrencyCode
	Timestamp        time.Time       `json:"timestamp"`        // Assigned at settlement, non-decreasing in log order
}

// Settlement bundles the outcome of one committed transfer: both updated
// accounts and the history record that was appended for it.
type Settlement struct {
	FromAccount Account  `json:"fromAccount"`
	ToAccount   Account  `json:"toAccount"`
	Transfer    Transfer `json:"transfer"`
}

package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicateOwner indicates an attempt to create or update an account with an
// owner ID that another account already uses.
var ErrDuplicateOwner = errors.New("owner already has an account")

// ErrInvalidAmount indicates a transfer amount that is not a positive number.
var ErrInvalidAmount = errors.New("amount must be positive")

// ErrSameAccount indicates a transfer where source and destination are the same account.
var ErrSameAccount = errors.New("source and destination accounts are the same")

// ErrInsufficientFunds indicates the source account balance cannot cover the debit.
var ErrInsufficientFunds = errors.New("insufficient funds")

// ErrUnknownCurrency indicates a currency code that is not in the supported registry.
var ErrUnknownCurrency = errors.New("unknown currency code")

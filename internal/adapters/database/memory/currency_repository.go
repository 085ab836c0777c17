package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/bankwise/bank_account_app/internal/apperrors"
	"github.com/bankwise/bank_account_app/internal/core/domain"
	portsrepo "github.com/bankwise/bank_account_app/internal/core/ports/repositories"
)

// currencyRepository is the in-memory currency registry, keyed by code with
// insertion order preserved for listings.
type currencyRepository struct {
	mu         sync.RWMutex
	currencies map[string]domain.Currency
	order      []string
}

// NewCurrencyRepository creates an empty in-memory currency repository.
func NewCurrencyRepository() portsrepo.CurrencyRepository {
	return &currencyRepository{
		currencies: make(map[string]domain.Currency),
	}
}

// SaveCurrency persists a new currency; duplicate codes are rejected.
func (r *currencyRepository) SaveCurrency(ctx context.Context, currency domain.Currency) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.currencies[currency.CurrencyCode]; exists {
		return fmt.Errorf("%w: currency %s already exists", apperrors.ErrValidation, currency.CurrencyCode)
	}
	r.currencies[currency.CurrencyCode] = currency
	r.order = append(r.order, currency.CurrencyCode)
	return nil
}

// FindCurrencyByCode retrieves a currency by its code.
func (r *currencyRepository) FindCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	currency, exists := r.currencies[currencyCode]
	if !exists {
		return nil, apperrors.ErrNotFound
	}
	cp := currency
	return &cp, nil
}

// ListCurrencies retrieves all currencies in insertion order.
func (r *currencyRepository) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	currencies := make([]domain.Currency, 0, len(r.order))
	for _, code := range r.order {
		currencies = append(currencies, r.currencies[code])
	}
	return currencies, nil
}

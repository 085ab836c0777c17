package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bankwise/bank_account_app/internal/apperrors"
	"github.com/bankwise/bank_account_app/internal/core/domain"
	portsrepo "github.com/bankwise/bank_account_app/internal/core/ports/repositories"
	"github.com/bankwise/bank_account_app/internal/dto"
	"github.com/shopspring/decimal"
)

// CurrencyService provides business logic for the supported-currency registry.
type CurrencyService struct {
	currencyRepo portsrepo.CurrencyRepository
}

// NewCurrencyService creates a new CurrencyService.
func NewCurrencyService(currencyRepo portsrepo.CurrencyRepository) *CurrencyService {
	return &CurrencyService{currencyRepo: currencyRepo}
}

// CreateCurrency registers a new supported currency.
func (s *CurrencyService) CreateCurrency(ctx context.Context, req dto.CreateCurrencyRequest) (*domain.Currency, error) {
	// Format validation (code shape, required fields) is handled by DTO binding tags.
	if req.Rate.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: exchange rate must be positive", apperrors.ErrValidation)
	}

	now := time.Now()
	currency := domain.Currency{
		CurrencyCode: domain.NormalizeCurrencyCode(req.CurrencyCode),
		Name:         req.Name,
		Symbol:       req.Symbol,
		Rate:         req.Rate,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	// The repository rejects duplicate codes with ErrValidation.
	if err := s.currencyRepo.SaveCurrency(ctx, currency); err != nil {
		return nil, fmt.Errorf("failed to create currency in service: %w", err)
	}

	return &currency, nil
}

// GetCurrencyByCode retrieves a currency by its code.
func (s *CurrencyService) GetCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error) {
	currencyCode = domain.NormalizeCurrencyCode(currencyCode)
	if len(currencyCode) < 3 || len(currencyCode) > 4 {
		return nil, fmt.Errorf("%w: currency codes must be 3 or 4 letters", apperrors.ErrValidation)
	}

	currency, err := s.currencyRepo.FindCurrencyByCode(ctx, currencyCode)
	if err != nil {
		// Propagate apperrors.ErrNotFound as-is for the handler to map.
		return nil, err
	}
	return currency, nil
}

// ListCurrencies retrieves all supported currencies in insertion order.
func (s *CurrencyService) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	currencies, err := s.currencyRepo.ListCurrencies(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list currencies in service: %w", err)
	}
	if currencies == nil {
		return []domain.Currency{}, nil
	}
	return currencies, nil
}

// SeedDefaultCurrencies loads the reference currency set into the registry.
// Currencies that already exist are left untouched.
func (s *CurrencyService) SeedDefaultCurrencies(ctx context.Context) error {
	now := time.Now()
	for _, currency := range domain.DefaultCurrencies() {
		if _, err := s.currencyRepo.FindCurrencyByCode(ctx, currency.CurrencyCode); err == nil {
			continue
		} else if !errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("failed to check currency %s: %w", currency.CurrencyCode, err)
		}
		currency.CreatedAt = now
		currency.LastUpdatedAt = now
		if err := s.currencyRepo.SaveCurrency(ctx, currency); err != nil {
			return fmt.Errorf("failed to seed currency %s: %w", currency.CurrencyCode, err)
		}
	}
	return nil
}

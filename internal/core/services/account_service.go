package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/bankwise/bank_account_app/internal/apperrors"
	"github.com/bankwise/bank_account_app/internal/core/domain"
	portsrepo "github.com/bankwise/bank_account_app/internal/core/ports/repositories"
	"github.com/bankwise/bank_account_app/internal/dto"
	"github.com/bankwise/bank_account_app/internal/middleware"
	"github.com/google/uuid"
)

// AccountService provides business logic for account management. The owner
// uniqueness rule lives here, not in the store: the repository stays a plain
// collection and the service is the layer that refuses a second account for
// the same owner.
type AccountService struct {
	accountRepo  portsrepo.AccountRepositoryFacade
	currencyRepo portsrepo.CurrencyRepository
}

// NewAccountService creates a new AccountService.
func NewAccountService(accountRepo portsrepo.AccountRepositoryFacade, currencyRepo portsrepo.CurrencyRepository) *AccountService {
	return &AccountService{
		accountRepo:  accountRepo,
		currencyRepo: currencyRepo,
	}
}

// CreateAccount validates and persists a new account with a fresh ID.
func (s *AccountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	currencyCode := domain.NormalizeCurrencyCode(req.CurrencyCode)
	if req.Balance.IsNegative() {
		return nil, fmt.Errorf("%w: balance cannot be negative", apperrors.ErrValidation)
	}
	if err := s.checkCurrencyKnown(ctx, currencyCode); err != nil {
		return nil, err
	}
	if err := s.checkOwnerAvailable(ctx, req.OwnerID, ""); err != nil {
		return nil, err
	}

	now := time.Now()
	account := domain.Account{
		AccountID:    uuid.NewString(),
		OwnerID:      req.OwnerID,
		CurrencyCode: currencyCode,
		Balance:      req.Balance,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		logger.Error("Failed to save account in repository", slog.String("error", err.Error()), slog.String("account_id", account.AccountID))
		return nil, err
	}

	logger.Info("Account created successfully in service", slog.String("account_id", account.AccountID))
	return &account, nil
}

// GetAccountByID retrieves a specific account by its unique identifier.
func (s *AccountService) GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		// Don't log ErrNotFound, it's an expected outcome.
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find account by ID in repository", slog.String("error", err.Error()), slog.String("account_id", accountID))
		}
		return nil, err
	}
	logger.Debug("Account retrieved successfully from service", slog.String("account_id", account.AccountID))
	return account, nil
}

// ListAccounts retrieves accounts in insertion order, paginated.
func (s *AccountService) ListAccounts(ctx context.Context, limit int, offset int) ([]domain.Account, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	accounts, err := s.accountRepo.ListAccounts(ctx, limit, offset)
	if err != nil {
		logger.Error("Failed to list accounts from repository", slog.String("error", err.Error()), slog.Int("limit", limit), slog.Int("offset", offset))
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}

	if accounts == nil {
		return []domain.Account{}, nil
	}

	logger.Debug("Accounts listed successfully from service", slog.Int("count", len(accounts)))
	return accounts, nil
}

// UpdateAccount replaces the owner, currency and balance of an existing
// account. The account ID is immutable and the store-level write stays a
// plain replacement.
func (s *AccountService) UpdateAccount(ctx context.Context, accountID string, req dto.UpdateAccountRequest) (*domain.Account, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	existing, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	currencyCode := domain.NormalizeCurrencyCode(req.CurrencyCode)
	if req.Balance.IsNegative() {
		return nil, fmt.Errorf("%w: balance cannot be negative", apperrors.ErrValidation)
	}
	if err := s.checkCurrencyKnown(ctx, currencyCode); err != nil {
		return nil, err
	}
	if err := s.checkOwnerAvailable(ctx, req.OwnerID, accountID); err != nil {
		return nil, err
	}

	updated := *existing
	updated.OwnerID = req.OwnerID
	updated.CurrencyCode = currencyCode
	updated.Balance = req.Balance
	updated.LastUpdatedAt = time.Now()

	if err := s.accountRepo.UpdateAccount(ctx, updated); err != nil {
		logger.Error("Failed to update account in repository", slog.String("error", err.Error()), slog.String("account_id", accountID))
		return nil, err
	}

	logger.Info("Account updated successfully in service", slog.String("account_id", accountID))
	return &updated, nil
}

// DeleteAccount removes an account. Transfer history referencing the account
// is deliberately left in place; rendering a deleted counterparty is the
// consumer's concern.
func (s *AccountService) DeleteAccount(ctx context.Context, accountID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if _, err := s.accountRepo.FindAccountByID(ctx, accountID); err != nil {
		return err
	}

	if err := s.accountRepo.DeleteAccount(ctx, accountID); err != nil {
		logger.Error("Failed to delete account in repository", slog.String("error", err.Error()), slog.String("account_id", accountID))
		return err
	}

	logger.Info("Account deleted successfully in service", slog.String("account_id", accountID))
	return nil
}

// checkCurrencyKnown rejects currency codes missing from the registry.
func (s *AccountService) checkCurrencyKnown(ctx context.Context, currencyCode string) error {
	_, err := s.currencyRepo.FindCurrencyByCode(ctx, currencyCode)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("%w: %s", apperrors.ErrUnknownCurrency, currencyCode)
		}
		return fmt.Errorf("failed to validate currency %s: %w", currencyCode, err)
	}
	return nil
}

// checkOwnerAvailable enforces one live account per owner. excludeAccountID
// allows an update to keep its own owner.
func (s *AccountService) checkOwnerAvailable(ctx context.Context, ownerID int64, excludeAccountID string) error {
	existing, err := s.accountRepo.FindAccountByOwnerID(ctx, ownerID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("failed to check owner %d: %w", ownerID, err)
	}
	if existing.AccountID == excludeAccountID {
		return nil
	}
	return fmt.Errorf("%w: owner %d", apperrors.ErrDuplicateOwner, ownerID)
}

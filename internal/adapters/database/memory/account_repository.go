package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/bankwise/bank_account_app/internal/apperrors"
	"github.com/bankwise/bank_account_app/internal/core/domain"
	portsrepo "github.com/bankwise/bank_account_app/internal/core/ports/repositories"
)

// accountRepository is the in-memory account store. Records are kept in a map
// keyed by account ID plus an ordered key slice so listings come back in
// insertion order. All access goes through the RWMutex and every returned
// record is a copy, so callers cannot mutate the store behind its back.
type accountRepository struct {
	mu       sync.RWMutex
	accounts map[string]domain.Account
	order    []string
}

// NewAccountRepository creates an empty in-memory account repository.
func NewAccountRepository() portsrepo.AccountRepositoryFacade {
	return &accountRepository{
		accounts: make(map[string]domain.Account),
	}
}

// SaveAccount appends a new account record.
func (r *accountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.accounts[account.AccountID]; exists {
		return fmt.Errorf("%w: account %s already exists", apperrors.ErrValidation, account.AccountID)
	}
	r.accounts[account.AccountID] = account
	r.order = append(r.order, account.AccountID)
	return nil
}

// UpdateAccount replaces the record matching the account's ID.
// A missing record is a no-op, not an error.
func (r *accountRepository) UpdateAccount(ctx context.Context, account domain.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.accounts[account.AccountID]; !exists {
		return nil
	}
	r.accounts[account.AccountID] = account
	return nil
}

// UpdateAccountBalances replaces several accounts under one lock so a reader
// can never observe a settlement half applied. The write is all-or-nothing:
// if any target account has gone missing since it was resolved, nothing is
// written and the caller must abort the settlement.
func (r *accountRepository) UpdateAccountBalances(ctx context.Context, accounts []domain.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, account := range accounts {
		if _, exists := r.accounts[account.AccountID]; !exists {
			return fmt.Errorf("%w: account %s", apperrors.ErrNotFound, account.AccountID)
		}
	}
	for _, account := range accounts {
		r.accounts[account.AccountID] = account
	}
	return nil
}

// DeleteAccount removes the record matching accountID; no-op if absent.
func (r *accountRepository) DeleteAccount(ctx context.Context, accountID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.accounts[accountID]; !exists {
		return nil
	}
	delete(r.accounts, accountID)
	for i, id := range r.order {
		if id == accountID {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

// FindAccountByID retrieves an account by its ID.
func (r *accountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	account, exists := r.accounts[accountID]
	if !exists {
		return nil, apperrors.ErrNotFound
	}
	cp := account
	return &cp, nil
}

// FindAccountByOwnerID retrieves the account held by the given owner, if any.
func (r *accountRepository) FindAccountByOwnerID(ctx context.Context, ownerID int64) (*domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, id := range r.order {
		account := r.accounts[id]
		if account.OwnerID == ownerID {
			cp := account
			return &cp, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

// ListAccounts retrieves accounts in insertion order, paginated.
func (r *accountRepository) ListAccounts(ctx context.Context, limit int, offset int) ([]domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if offset < 0 {
		offset = 0
	}
	if offset >= len(r.order) {
		return []domain.Account{}, nil
	}
	end := len(r.order)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}

	accounts := make([]domain.Account, 0, end-offset)
	for _, id := range r.order[offset:end] {
		accounts = append(accounts, r.accounts[id])
	}
	return accounts, nil
}

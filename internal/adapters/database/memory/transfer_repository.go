package memory

import (
	"context"
	"sync"

	"github.com/bankwise/bank_account_app/internal/core/domain"
	portsrepo "github.com/bankwise/bank_account_app/internal/core/ports/repositories"
)

// transferRepository is the in-memory transfer log. The log is append-only;
// records are never mutated or removed, so a plain slice keeps insertion
// order for free.
type transferRepository struct {
	mu        sync.RWMutex
	transfers []domain.Transfer
}

// NewTransferRepository creates an empty in-memory transfer repository.
func NewTransferRepository() portsrepo.TransferRepositoryFacade {
	return &transferRepository{}
}

// SaveTransfer appends a transfer record. Always succeeds; validation is the
// settlement service's job.
func (r *transferRepository) SaveTransfer(ctx context.Context, transfer domain.Transfer) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.transfers = append(r.transfers, transfer)
	return nil
}

// ListTransfers retrieves all transfers in insertion order.
func (r *transferRepository) ListTransfers(ctx context.Context) ([]domain.Transfer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Transfer, len(r.transfers))
	copy(out, r.transfers)
	return out, nil
}

// ListTransfersByAccount retrieves transfers where the account appears as
// source or destination, preserving insertion order.
func (r *transferRepository) ListTransfersByAccount(ctx context.Context, accountID string) ([]domain.Transfer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Transfer, 0)
	for _, t := range r.transfers {
		if t.FromAccountID == accountID || t.ToAccountID == accountID {
			out = append(out, t)
		}
	}
	return out, nil
}

package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/bankwise/bank_account_app/internal/apperrors"
	"github.com/bankwise/bank_account_app/internal/core/domain"
	portsrepo "github.com/bankwise/bank_account_app/internal/core/ports/repositories"
	portssvc "github.com/bankwise/bank_account_app/internal/core/ports/services"
	"github.com/bankwise/bank_account_app/internal/dto"
	"github.com/bankwise/bank_account_app/internal/middleware"
	"github.com/google/uuid"
)

// TransferService settles fund movements between accounts. A single mutex
// serializes settlements end to end: every check runs against one consistent
// snapshot of both accounts, and two concurrent transfers over overlapping
// accounts cannot interleave their balance reads and writes. Timestamps are
// assigned inside the critical section, so they are non-decreasing in log
// order.
type TransferService struct {
	accountRepo  portsrepo.AccountRepositoryFacade
	transferRepo portsrepo.TransferRepositoryFacade
	exchange     portssvc.ExchangeSvcFacade

	settleMu sync.Mutex
}

// NewTransferService creates a new TransferService.
func NewTransferService(
	accountRepo portsrepo.AccountRepositoryFacade,
	transferRepo portsrepo.TransferRepositoryFacade,
	exchange portssvc.ExchangeSvcFacade,
) *TransferService {
	return &TransferService{
		accountRepo:  accountRepo,
		transferRepo: transferRepo,
		exchange:     exchange,
	}
}

// TransferFunds settles one transfer: resolves both accounts, validates the
// amount and balance sufficiency, converts the credit when the currencies
// differ, and commits both balance changes plus the history record. The
// debit is always the requested amount in the source currency; conversion
// only ever affects the credit side. Sufficiency is likewise checked against
// the unconverted amount.
func (s *TransferService) TransferFunds(ctx context.Context, req dto.TransferFundsRequest) (*domain.Settlement, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	s.settleMu.Lock()
	defer s.settleMu.Unlock()

	fromAccount, err := s.accountRepo.FindAccountByID(ctx, req.FromAccountID)
	if err != nil {
		return nil, fmt.Errorf("source account %s: %w", req.FromAccountID, err)
	}
	toAccount, err := s.accountRepo.FindAccountByID(ctx, req.ToAccountID)
	if err != nil {
		return nil, fmt.Errorf("destination account %s: %w", req.ToAccountID, err)
	}

	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: got %s", apperrors.ErrInvalidAmount, req.Amount)
	}
	if req.FromAccountID == req.ToAccountID {
		return nil, apperrors.ErrSameAccount
	}
	if fromAccount.Balance.LessThan(req.Amount) {
		return nil, fmt.Errorf("%w: balance %s, requested %s", apperrors.ErrInsufficientFunds, fromAccount.Balance, req.Amount)
	}

	creditAmount := req.Amount
	if fromAccount.CurrencyCode != toAccount.CurrencyCode {
		creditAmount, err = s.exchange.Convert(ctx, req.Amount, fromAccount.CurrencyCode, toAccount.CurrencyCode)
		if err != nil {
			return nil, err
		}
	}

	now := time.Now()
	fromAccount.Balance = fromAccount.Balance.Sub(req.Amount)
	fromAccount.LastUpdatedAt = now
	toAccount.Balance = toAccount.Balance.Add(creditAmount)
	toAccount.LastUpdatedAt = now

	transfer := domain.Transfer{
		TransferID:       uuid.NewString(),
		FromAccountID:    fromAccount.AccountID,
		ToAccountID:      toAccount.AccountID,
		FromOwnerID:      fromAccount.OwnerID,
		ToOwnerID:        toAccount.OwnerID,
		Amount:           req.Amount,
		FromCurrencyCode: fromAccount.CurrencyCode,
		ToCurrencyCode:   toAccount.CurrencyCode,
		ConvertedAmount:  creditAmount,
		Timestamp:        now,
	}

	// Both balances land in one all-or-nothing repository call: readers never
	// see the debit without the credit, and an account deleted since it was
	// resolved aborts the settlement before anything is written or logged.
	if err := s.accountRepo.UpdateAccountBalances(ctx, []domain.Account{*fromAccount, *toAccount}); err != nil {
		logger.Error("Failed to commit settlement balances", slog.String("error", err.Error()), slog.String("transfer_id", transfer.TransferID))
		return nil, err
	}
	if err := s.transferRepo.SaveTransfer(ctx, transfer); err != nil {
		logger.Error("Failed to append transfer record", slog.String("error", err.Error()), slog.String("transfer_id", transfer.TransferID))
		return nil, err
	}

	logger.Info("Transfer settled successfully",
		slog.String("transfer_id", transfer.TransferID),
		slog.String("from_account_id", fromAccount.AccountID),
		slog.String("to_account_id", toAccount.AccountID),
		slog.String("amount", req.Amount.String()),
		slog.String("converted_amount", creditAmount.String()),
	)

	return &domain.Settlement{
		FromAccount: *fromAccount,
		ToAccount:   *toAccount,
		Transfer:    transfer,
	}, nil
}

// ListTransfers retrieves all transfers in insertion order.
func (s *TransferService) ListTransfers(ctx context.Context) ([]domain.Transfer, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	transfers, err := s.transferRepo.ListTransfers(ctx)
	if err != nil {
		logger.Error("Failed to list transfers from repository", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list transfers: %w", err)
	}
	if transfers == nil {
		return []domain.Transfer{}, nil
	}
	return transfers, nil
}

// ListTransfersByAccount retrieves transfers touching the given account.
// No existence check on the account: history for a deleted account is still
// valid history.
func (s *TransferService) ListTransfersByAccount(ctx context.Context, accountID string) ([]domain.Transfer, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	transfers, err := s.transferRepo.ListTransfersByAccount(ctx, accountID)
	if err != nil {
		logger.Error("Failed to list transfers by account from repository", slog.String("error", err.Error()), slog.String("account_id", accountID))
		return nil, fmt.Errorf("failed to list transfers for account %s: %w", accountID, err)
	}
	if transfers == nil {
		return []domain.Transfer{}, nil
	}
	return transfers, nil
}

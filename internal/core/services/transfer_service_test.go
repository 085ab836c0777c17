package services_test

import (
	"context"
	"testing"

	"github.com/bankwise/bank_account_app/internal/adapters/database/memory"
	"github.com/bankwise/bank_account_app/internal/apperrors"
	"github.com/bankwise/bank_account_app/internal/core/domain"
	portsrepo "github.com/bankwise/bank_account_app/internal/core/ports/repositories"
	"github.com/bankwise/bank_account_app/internal/core/services"
	"github.com/bankwise/bank_account_app/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// --- Mock TransferRepository ---
type MockTransferRepository struct {
	mock.Mock
}

func (m *MockTransferRepository) SaveTransfer(ctx context.Context, transfer domain.Transfer) error {
	args := m.Called(ctx, transfer)
	return args.Error(0)
}

func (m *MockTransferRepository) ListTransfers(ctx context.Context) ([]domain.Transfer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transfer), args.Error(1)
}

func (m *MockTransferRepository) ListTransfersByAccount(ctx context.Context, accountID string) ([]domain.Transfer, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transfer), args.Error(1)
}

// --- Mock ExchangeService ---
type MockExchangeService struct {
	mock.Mock
}

func (m *MockExchangeService) Convert(ctx context.Context, amount decimal.Decimal, fromCode string, toCode string) (decimal.Decimal, error) {
	args := m.Called(ctx, amount, fromCode, toCode)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

// --- Test Suite ---
type TransferServiceTestSuite struct {
	suite.Suite
	mockAccountRepo  *MockAccountRepository
	mockTransferRepo *MockTransferRepository
	mockExchange     *MockExchangeService
	service          *services.TransferService

	fromAccount *domain.Account
	toAccount   *domain.Account
}

func (suite *TransferServiceTestSuite) SetupTest() {
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.mockTransferRepo = new(MockTransferRepository)
	suite.mockExchange = new(MockExchangeService)
	suite.service = services.NewTransferService(suite.mockAccountRepo, suite.mockTransferRepo, suite.mockExchange)

	suite.fromAccount = &domain.Account{
		AccountID:    uuid.NewString(),
		OwnerID:      1,
		CurrencyCode: "USD",
		Balance:      decimal.NewFromInt(1000),
	}
	suite.toAccount = &domain.Account{
		AccountID:    uuid.NewString(),
		OwnerID:      2,
		CurrencyCode: "USD",
		Balance:      decimal.NewFromInt(200),
	}
}

func (suite *TransferServiceTestSuite) expectAccountsResolved() {
	suite.mockAccountRepo.On("FindAccountByID", mock.Anything, suite.fromAccount.AccountID).Return(suite.fromAccount, nil).Once()
	suite.mockAccountRepo.On("FindAccountByID", mock.Anything, suite.toAccount.AccountID).Return(suite.toAccount, nil).Once()
}

func (suite *TransferServiceTestSuite) assertNoMutations() {
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "UpdateAccountBalances", mock.Anything, mock.Anything)
	suite.mockTransferRepo.AssertNotCalled(suite.T(), "SaveTransfer", mock.Anything, mock.Anything)
}

// --- Test Cases ---

func (suite *TransferServiceTestSuite) TestTransferFunds_SameCurrency() {
	ctx := context.Background()
	amount := decimal.NewFromInt(50)
	suite.expectAccountsResolved()

	suite.mockAccountRepo.On("UpdateAccountBalances", mock.Anything, mock.MatchedBy(func(accounts []domain.Account) bool {
		return len(accounts) == 2 &&
			accounts[0].Balance.Equal(decimal.NewFromInt(950)) &&
			accounts[1].Balance.Equal(decimal.NewFromInt(250))
	})).Return(nil).Once()
	suite.mockTransferRepo.On("SaveTransfer", mock.Anything, mock.MatchedBy(func(t domain.Transfer) bool {
		return t.Amount.Equal(amount) &&
			t.ConvertedAmount.Equal(amount) &&
			t.FromCurrencyCode == "USD" && t.ToCurrencyCode == "USD" &&
			t.FromOwnerID == 1 && t.ToOwnerID == 2
	})).Return(nil).Once()

	settlement, err := suite.service.TransferFunds(ctx, dto.TransferFundsRequest{
		FromAccountID: suite.fromAccount.AccountID,
		ToAccountID:   suite.toAccount.AccountID,
		Amount:        amount,
	})

	suite.Require().NoError(err)
	suite.Require().NotNil(settlement)
	suite.True(settlement.FromAccount.Balance.Equal(decimal.NewFromInt(950)))
	suite.True(settlement.ToAccount.Balance.Equal(decimal.NewFromInt(250)))
	suite.True(settlement.Transfer.Amount.Equal(amount))
	suite.True(settlement.Transfer.ConvertedAmount.Equal(amount))
	suite.NotEmpty(settlement.Transfer.TransferID)
	suite.False(settlement.Transfer.Timestamp.IsZero())

	// No conversion on the identity path.
	suite.mockExchange.AssertNotCalled(suite.T(), "Convert", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	suite.mockAccountRepo.AssertExpectations(suite.T())
	suite.mockTransferRepo.AssertExpectations(suite.T())
}

func (suite *TransferServiceTestSuite) TestTransferFunds_CrossCurrency() {
	ctx := context.Background()
	amount := decimal.NewFromInt(100)
	suite.toAccount.CurrencyCode = "EUR"
	suite.toAccount.Balance = decimal.NewFromInt(500)
	suite.expectAccountsResolved()

	converted := decimal.NewFromInt(92)
	suite.mockExchange.On("Convert", mock.Anything, amount, "USD", "EUR").Return(converted, nil).Once()

	suite.mockAccountRepo.On("UpdateAccountBalances", mock.Anything, mock.MatchedBy(func(accounts []domain.Account) bool {
		return len(accounts) == 2 &&
			accounts[0].Balance.Equal(decimal.NewFromInt(900)) &&
			accounts[1].Balance.Equal(decimal.NewFromInt(592))
	})).Return(nil).Once()
	suite.mockTransferRepo.On("SaveTransfer", mock.Anything, mock.MatchedBy(func(t domain.Transfer) bool {
		// Debit stays in the source currency, only the credit is converted.
		return t.Amount.Equal(amount) &&
			t.ConvertedAmount.Equal(converted) &&
			t.FromCurrencyCode == "USD" && t.ToCurrencyCode == "EUR"
	})).Return(nil).Once()

	settlement, err := suite.service.TransferFunds(ctx, dto.TransferFundsRequest{
		FromAccountID: suite.fromAccount.AccountID,
		ToAccountID:   suite.toAccount.AccountID,
		Amount:        amount,
	})

	suite.Require().NoError(err)
	suite.True(settlement.FromAccount.Balance.Equal(decimal.NewFromInt(900)))
	suite.True(settlement.ToAccount.Balance.Equal(decimal.NewFromInt(592)))
	suite.mockExchange.AssertExpectations(suite.T())
	suite.mockAccountRepo.AssertExpectations(suite.T())
	suite.mockTransferRepo.AssertExpectations(suite.T())
}

func (suite *TransferServiceTestSuite) TestTransferFunds_InsufficientFunds() {
	ctx := context.Background()
	suite.fromAccount.Balance = decimal.NewFromInt(30)
	suite.expectAccountsResolved()

	settlement, err := suite.service.TransferFunds(ctx, dto.TransferFundsRequest{
		FromAccountID: suite.fromAccount.AccountID,
		ToAccountID:   suite.toAccount.AccountID,
		Amount:        decimal.NewFromInt(50),
	})

	suite.Require().Error(err)
	suite.Nil(settlement)
	suite.ErrorIs(err, apperrors.ErrInsufficientFunds)
	suite.assertNoMutations()
}

func (suite *TransferServiceTestSuite) TestTransferFunds_SufficiencyCheckedInSourceCurrency() {
	ctx := context.Background()
	// 151.2 JPY per USD: the converted credit would dwarf the balance, but
	// sufficiency is measured against the unconverted source amount only.
	suite.toAccount.CurrencyCode = "JPY"
	amount := decimal.NewFromInt(100)
	suite.expectAccountsResolved()

	converted := decimal.RequireFromString("15120")
	suite.mockExchange.On("Convert", mock.Anything, amount, "USD", "JPY").Return(converted, nil).Once()
	suite.mockAccountRepo.On("UpdateAccountBalances", mock.Anything, mock.Anything).Return(nil).Once()
	suite.mockTransferRepo.On("SaveTransfer", mock.Anything, mock.Anything).Return(nil).Once()

	settlement, err := suite.service.TransferFunds(ctx, dto.TransferFundsRequest{
		FromAccountID: suite.fromAccount.AccountID,
		ToAccountID:   suite.toAccount.AccountID,
		Amount:        amount,
	})

	suite.Require().NoError(err)
	suite.True(settlement.ToAccount.Balance.Equal(decimal.NewFromInt(200).Add(converted)))
}

func (suite *TransferServiceTestSuite) TestTransferFunds_SameAccount() {
	ctx := context.Background()
	suite.mockAccountRepo.On("FindAccountByID", mock.Anything, suite.fromAccount.AccountID).Return(suite.fromAccount, nil).Twice()

	settlement, err := suite.service.TransferFunds(ctx, dto.TransferFundsRequest{
		FromAccountID: suite.fromAccount.AccountID,
		ToAccountID:   suite.fromAccount.AccountID,
		Amount:        decimal.NewFromInt(10),
	})

	suite.Require().Error(err)
	suite.Nil(settlement)
	suite.ErrorIs(err, apperrors.ErrSameAccount)
	suite.assertNoMutations()
}

func (suite *TransferServiceTestSuite) TestTransferFunds_InvalidAmount() {
	ctx := context.Background()

	for _, amount := range []decimal.Decimal{decimal.Zero, decimal.NewFromInt(-5)} {
		suite.expectAccountsResolved()

		settlement, err := suite.service.TransferFunds(ctx, dto.TransferFundsRequest{
			FromAccountID: suite.fromAccount.AccountID,
			ToAccountID:   suite.toAccount.AccountID,
			Amount:        amount,
		})

		suite.Require().Error(err)
		suite.Nil(settlement)
		suite.ErrorIs(err, apperrors.ErrInvalidAmount)
	}
	suite.assertNoMutations()
}

func (suite *TransferServiceTestSuite) TestTransferFunds_SourceNotFound() {
	ctx := context.Background()
	missingID := uuid.NewString()
	suite.mockAccountRepo.On("FindAccountByID", mock.Anything, missingID).Return(nil, apperrors.ErrNotFound).Once()

	settlement, err := suite.service.TransferFunds(ctx, dto.TransferFundsRequest{
		FromAccountID: missingID,
		ToAccountID:   suite.toAccount.AccountID,
		Amount:        decimal.NewFromInt(10),
	})

	suite.Require().Error(err)
	suite.Nil(settlement)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.assertNoMutations()
}

func (suite *TransferServiceTestSuite) TestTransferFunds_UnknownDestinationCurrency() {
	ctx := context.Background()
	suite.toAccount.CurrencyCode = "XYZ"
	suite.expectAccountsResolved()

	suite.mockExchange.On("Convert", mock.Anything, mock.Anything, "USD", "XYZ").
		Return(decimal.Zero, apperrors.ErrUnknownCurrency).Once()

	settlement, err := suite.service.TransferFunds(ctx, dto.TransferFundsRequest{
		FromAccountID: suite.fromAccount.AccountID,
		ToAccountID:   suite.toAccount.AccountID,
		Amount:        decimal.NewFromInt(10),
	})

	suite.Require().Error(err)
	suite.Nil(settlement)
	suite.ErrorIs(err, apperrors.ErrUnknownCurrency)
	suite.assertNoMutations()
}

func (suite *TransferServiceTestSuite) TestListTransfersByAccount_PassesThrough() {
	ctx := context.Background()
	accountID := uuid.NewString()
	expected := []domain.Transfer{{TransferID: uuid.NewString(), FromAccountID: accountID}}

	suite.mockTransferRepo.On("ListTransfersByAccount", ctx, accountID).Return(expected, nil).Once()

	transfers, err := suite.service.ListTransfersByAccount(ctx, accountID)

	suite.Require().NoError(err)
	suite.Equal(expected, transfers)
	suite.mockTransferRepo.AssertExpectations(suite.T())
}

func (suite *TransferServiceTestSuite) TestListTransfers_NilBecomesEmpty() {
	ctx := context.Background()

	suite.mockTransferRepo.On("ListTransfers", ctx).Return(nil, nil).Once()

	transfers, err := suite.service.ListTransfers(ctx)

	suite.Require().NoError(err)
	suite.NotNil(transfers)
	suite.Empty(transfers)
}

// --- Run Suite ---
func TestTransferService(t *testing.T) {
	suite.Run(t, new(TransferServiceTestSuite))
}

// deletingAccountRepo removes the victim account as soon as any other account
// is resolved, recreating a DELETE landing between a settlement's account
// resolution and its balance commit.
type deletingAccountRepo struct {
	portsrepo.AccountRepositoryFacade
	victimID string
}

func (r *deletingAccountRepo) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	account, err := r.AccountRepositoryFacade.FindAccountByID(ctx, accountID)
	if err == nil && accountID != r.victimID {
		_ = r.AccountRepositoryFacade.DeleteAccount(ctx, r.victimID)
	}
	return account, err
}

func TestTransferFunds_AccountDeletedMidSettlement(t *testing.T) {
	ctx := context.Background()
	accounts := memory.NewAccountRepository()
	transfers := memory.NewTransferRepository()

	from := domain.Account{AccountID: uuid.NewString(), OwnerID: 1, CurrencyCode: "USD", Balance: decimal.NewFromInt(1000)}
	to := domain.Account{AccountID: uuid.NewString(), OwnerID: 2, CurrencyCode: "USD", Balance: decimal.NewFromInt(200)}
	require.NoError(t, accounts.SaveAccount(ctx, from))
	require.NoError(t, accounts.SaveAccount(ctx, to))

	repo := &deletingAccountRepo{AccountRepositoryFacade: accounts, victimID: from.AccountID}
	service := services.NewTransferService(repo, transfers, services.NewExchangeService(memory.NewCurrencyRepository()))

	settlement, err := service.TransferFunds(ctx, dto.TransferFundsRequest{
		FromAccountID: from.AccountID,
		ToAccountID:   to.AccountID,
		Amount:        decimal.NewFromInt(50),
	})

	require.Error(t, err)
	require.Nil(t, settlement)
	require.ErrorIs(t, err, apperrors.ErrNotFound)

	// Settlement aborted whole: no credit applied, nothing logged.
	survivor, err := accounts.FindAccountByID(ctx, to.AccountID)
	require.NoError(t, err)
	require.True(t, survivor.Balance.Equal(decimal.NewFromInt(200)))

	logged, err := transfers.ListTransfers(ctx)
	require.NoError(t, err)
	require.Empty(t, logged)
}

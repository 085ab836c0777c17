package services

import (
	portsrepo "github.com/bankwise/bank_account_app/internal/core/ports/repositories"
	portssvc "github.com/bankwise/bank_account_app/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Currency registry and converter come first since other services depend on them
	container.Currency = NewCurrencyService(repos.CurrencyRepo)
	container.Exchange = NewExchangeService(repos.CurrencyRepo)

	container.Account = NewAccountService(repos.AccountRepo, repos.CurrencyRepo)
	container.Transfer = NewTransferService(repos.AccountRepo, repos.TransferRepo, container.Exchange)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.AccountSvcFacade  = (*AccountService)(nil)
	_ portssvc.TransferSvcFacade = (*TransferService)(nil)
	_ portssvc.CurrencySvcFacade = (*CurrencyService)(nil)
	_ portssvc.ExchangeSvcFacade = (*ExchangeService)(nil)
)

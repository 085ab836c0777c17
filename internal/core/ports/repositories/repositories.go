package repositories

// RepositoryProvider bundles all repositories the service container needs.
type RepositoryProvider struct {
	AccountRepo  AccountRepositoryFacade
	TransferRepo TransferRepositoryFacade
	CurrencyRepo CurrencyRepository
}

package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	CycleRepo     CycleRepositoryFacade
	HouseRepo     HouseRepositoryFacade
	LedgerRepo    LedgerRepositoryFacade
	ReportingRepo ReportingRepository
	ExpenseRepo   ExpenseRepositoryFacade
}

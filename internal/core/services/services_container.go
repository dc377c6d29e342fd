package services

import (
	portsrepo "github.com/sidharthsanthos/PKRA/internal/core/ports/repositories"
	portssvc "github.com/sidharthsanthos/PKRA/internal/core/ports/services"
	"github.com/sidharthsanthos/PKRA/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Cycle and house services first since the ledger-facing services depend
	// on their read sides.
	container.Cycle = NewCycleService(repos.CycleRepo, cfg.RolloverMonth)
	container.House = NewHouseService(repos.HouseRepo)

	container.Payment = NewPaymentService(repos.LedgerRepo, container.Cycle, container.House)
	container.Reconciler = NewReconcilerService(repos.LedgerRepo, container.Cycle, container.House)
	container.Reporting = NewReportingService(repos.ReportingRepo, repos.LedgerRepo, repos.HouseRepo, container.Cycle)
	container.Expense = NewExpenseService(repos.ExpenseRepo, container.Cycle)

	return container
}

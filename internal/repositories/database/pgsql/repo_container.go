package pgsql

import (
	portsrepo "github.com/sidharthsanthos/PKRA/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	cycleRepo := newPgxCycleRepository(dbPool)
	houseRepo := newPgxHouseRepository(dbPool)
	ledgerRepo := newPgxLedgerRepository(dbPool)
	reportingRepo := newReportingRepository(dbPool)
	expenseRepo := newPgxExpenseRepository(dbPool)

	return portsrepo.RepositoryProvider{
		CycleRepo:     cycleRepo,
		HouseRepo:     houseRepo,
		LedgerRepo:    ledgerRepo,
		ReportingRepo: reportingRepo,
		ExpenseRepo:   expenseRepo,
	}
}

package testutil

import (
	"database/sql"
	"testing"

	"github.com/papertrade/dashboard-backend/internal/ledger"
	"github.com/papertrade/dashboard-backend/internal/market"
	"github.com/papertrade/dashboard-backend/internal/repository"
	"github.com/papertrade/dashboard-backend/internal/service"
)

// NewTestPortfolioService wires a PortfolioService against a fresh ledger,
// the seeded market catalog and the given database.
func NewTestPortfolioService(t *testing.T, db *sql.DB) *service.PortfolioService {
	t.Helper()

	stateRepo := repository.NewStateRepository(db)

	return service.NewPortfolioService(
		ledger.New(),
		market.New(),
		stateRepo,
	)
}

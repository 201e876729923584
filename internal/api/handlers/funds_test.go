package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/papertrade/dashboard-backend/internal/api/handlers"
	"github.com/papertrade/dashboard-backend/internal/api/request"
	"github.com/papertrade/dashboard-backend/internal/market"
	"github.com/papertrade/dashboard-backend/internal/model"
	"github.com/papertrade/dashboard-backend/internal/service"
	"github.com/papertrade/dashboard-backend/internal/testutil"
)

func newFundHandler(t *testing.T) (*handlers.FundHandler, *service.PortfolioService) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	svc := testutil.NewTestPortfolioService(t, db)
	svc.LoadState()
	return handlers.NewFundHandler(svc, market.New()), svc
}

// TestFundHandler_Funds tests the fund catalog endpoint.
func TestFundHandler_Funds(t *testing.T) {
	handler, _ := newFundHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/funds", nil)
	w := httptest.NewRecorder()

	handler.Funds(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}

	var funds []model.MutualFund
	if err := json.NewDecoder(w.Body).Decode(&funds); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if len(funds) != 5 {
		t.Errorf("Expected 5 funds, got %d", len(funds))
	}
}

// TestFundHandler_Invest tests fund investments over HTTP.
func TestFundHandler_Invest(t *testing.T) {
	t.Run("successful investment returns 201", func(t *testing.T) {
		handler, _ := newFundHandler(t)

		req := testutil.NewJSONRequest(t, http.MethodPost, "/api/funds/invest", request.FundInvestRequest{
			FundID: "mf-1", Amount: 1000,
		})
		w := httptest.NewRecorder()

		handler.Invest(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("Expected 201, got %d: %s", w.Code, w.Body.String())
		}

		var txn model.FundTransaction
		if err := json.NewDecoder(w.Body).Decode(&txn); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if txn.FundID != "mf-1" || txn.Total != 1000 {
			t.Errorf("Unexpected transaction: %+v", txn)
		}
	})

	t.Run("unknown fund returns 404", func(t *testing.T) {
		handler, _ := newFundHandler(t)

		req := testutil.NewJSONRequest(t, http.MethodPost, "/api/funds/invest", request.FundInvestRequest{
			FundID: "mf-99", Amount: 1000,
		})
		w := httptest.NewRecorder()

		handler.Invest(w, req)

		if w.Code != http.StatusNotFound {
			t.Errorf("Expected 404, got %d", w.Code)
		}
	})

	t.Run("non-positive amount returns 400", func(t *testing.T) {
		handler, _ := newFundHandler(t)

		req := testutil.NewJSONRequest(t, http.MethodPost, "/api/funds/invest", request.FundInvestRequest{
			FundID: "mf-1", Amount: 0,
		})
		w := httptest.NewRecorder()

		handler.Invest(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected 400, got %d", w.Code)
		}
	})
}

// TestFundHandler_Sell tests the all-or-nothing redemption endpoint.
func TestFundHandler_Sell(t *testing.T) {
	t.Run("sells the entire holding", func(t *testing.T) {
		handler, svc := newFundHandler(t)

		if _, err := svc.InvestInFund("mf-2", 1000); err != nil {
			t.Fatalf("InvestInFund() returned unexpected error: %v", err)
		}

		req := testutil.NewRequestWithURLParams(http.MethodPost, "/api/funds/mf-2/sell",
			map[string]string{"fundId": "mf-2"})
		w := httptest.NewRecorder()

		handler.Sell(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("Expected 201, got %d: %s", w.Code, w.Body.String())
		}
		if got := len(svc.Snapshot().Funds); got != 0 {
			t.Errorf("Expected holding liquidated, got %d holdings", got)
		}
	})

	t.Run("selling a fund with no holding returns 404", func(t *testing.T) {
		handler, _ := newFundHandler(t)

		req := testutil.NewRequestWithURLParams(http.MethodPost, "/api/funds/mf-2/sell",
			map[string]string{"fundId": "mf-2"})
		w := httptest.NewRecorder()

		handler.Sell(w, req)

		if w.Code != http.StatusNotFound {
			t.Errorf("Expected 404, got %d", w.Code)
		}
	})
}

package ledger_test

import (
	"errors"
	"math"
	"testing"

	"github.com/papertrade/dashboard-backend/internal/apperrors"
	"github.com/papertrade/dashboard-backend/internal/ledger"
	"github.com/papertrade/dashboard-backend/internal/model"
)

const floatTol = 1e-6

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) <= floatTol
}

// TestLedger_TradeEquity tests stock buys and sells.
//
// WHY: The equity trade path carries the core ledger invariants: the wallet
// and holdings move as one unit, the average cost is a weighted average that
// only buys may change, and a rejected trade leaves no trace.
func TestLedger_TradeEquity(t *testing.T) {
	t.Run("buy debits wallet and opens holding", func(t *testing.T) {
		l := ledger.New()

		txn, err := l.TradeEquity("RELIANCE", "Reliance Industries", 10, 100, model.TradeBuy, "")
		if err != nil {
			t.Fatalf("TradeEquity() returned unexpected error: %v", err)
		}

		if !almostEqual(l.Balance(), ledger.SeedBalance-1000) {
			t.Errorf("Expected balance %v, got %v", ledger.SeedBalance-1000, l.Balance())
		}

		s := l.Snapshot()
		if len(s.Equities) != 1 {
			t.Fatalf("Expected 1 holding, got %d", len(s.Equities))
		}
		h := s.Equities[0]
		if h.Shares != 10 || h.AvgPrice != 100 || h.CurrentPrice != 100 {
			t.Errorf("Unexpected holding: %+v", h)
		}

		if txn.Total != 1000 || txn.Type != model.TradeBuy || txn.Source != model.SourceStock {
			t.Errorf("Unexpected transaction: %+v", txn)
		}
		if txn.ID == "" {
			t.Error("Expected transaction ID to be set")
		}
	})

	t.Run("repeat buy recomputes weighted average", func(t *testing.T) {
		l := ledger.New()

		mustTradeEquity(t, l, "TCS", 10, 100, model.TradeBuy)
		mustTradeEquity(t, l, "TCS", 10, 200, model.TradeBuy)

		s := l.Snapshot()
		if len(s.Equities) != 1 {
			t.Fatalf("Expected 1 holding, got %d", len(s.Equities))
		}
		h := s.Equities[0]
		if !almostEqual(h.Shares, 20) {
			t.Errorf("Expected 20 shares, got %v", h.Shares)
		}
		if !almostEqual(h.AvgPrice, 150) {
			t.Errorf("Expected average price 150, got %v", h.AvgPrice)
		}
		if h.CurrentPrice != 200 {
			t.Errorf("Expected current price 200, got %v", h.CurrentPrice)
		}
	})

	t.Run("sell credits wallet and leaves average unchanged", func(t *testing.T) {
		l := ledger.New()

		mustTradeEquity(t, l, "INFY", 10, 100, model.TradeBuy)
		mustTradeEquity(t, l, "INFY", 10, 200, model.TradeBuy)

		balanceBefore := l.Balance()
		mustTradeEquity(t, l, "INFY", 5, 300, model.TradeSell)

		if !almostEqual(l.Balance(), balanceBefore+1500) {
			t.Errorf("Expected balance %v, got %v", balanceBefore+1500, l.Balance())
		}

		h := l.Snapshot().Equities[0]
		if !almostEqual(h.Shares, 15) {
			t.Errorf("Expected 15 shares, got %v", h.Shares)
		}
		if !almostEqual(h.AvgPrice, 150) {
			t.Errorf("Sell changed average price: got %v, want 150", h.AvgPrice)
		}
	})

	t.Run("selling entire position removes the holding", func(t *testing.T) {
		l := ledger.New()

		mustTradeEquity(t, l, "RELIANCE", 10, 100, model.TradeBuy)
		mustTradeEquity(t, l, "RELIANCE", 10, 110, model.TradeSell)

		s := l.Snapshot()
		if len(s.Equities) != 0 {
			t.Errorf("Expected no holdings, got %d", len(s.Equities))
		}
		if !almostEqual(s.Balance, ledger.SeedBalance+100) {
			t.Errorf("Expected balance %v, got %v", float64(ledger.SeedBalance+100), s.Balance)
		}
	})

	t.Run("buy rejects insufficient funds without state change", func(t *testing.T) {
		l := ledger.New()

		_, err := l.TradeEquity("RELIANCE", "Reliance Industries", 100, 1000, model.TradeBuy, "")
		if !errors.Is(err, apperrors.ErrInsufficientFunds) {
			t.Fatalf("Expected ErrInsufficientFunds, got %v", err)
		}

		s := l.Snapshot()
		if s.Balance != ledger.SeedBalance {
			t.Errorf("Rejected trade changed balance: %v", s.Balance)
		}
		if len(s.Equities) != 0 || len(s.EquityTransactions) != 0 {
			t.Error("Rejected trade left holdings or transactions behind")
		}
	})

	t.Run("sell rejects more shares than held", func(t *testing.T) {
		l := ledger.New()

		mustTradeEquity(t, l, "TCS", 5, 100, model.TradeBuy)

		_, err := l.TradeEquity("TCS", "Tata Consultancy Services", 6, 100, model.TradeSell, "")
		if !errors.Is(err, apperrors.ErrInsufficientHoldings) {
			t.Fatalf("Expected ErrInsufficientHoldings, got %v", err)
		}

		_, err = l.TradeEquity("HDFCBANK", "HDFC Bank", 1, 100, model.TradeSell, "")
		if !errors.Is(err, apperrors.ErrInsufficientHoldings) {
			t.Fatalf("Expected ErrInsufficientHoldings for unheld symbol, got %v", err)
		}
	})

	t.Run("rejects invalid quantities and sides", func(t *testing.T) {
		l := ledger.New()

		for _, qty := range []float64{0, -1, math.NaN(), math.Inf(1)} {
			if _, err := l.TradeEquity("TCS", "TCS", qty, 100, model.TradeBuy, ""); !errors.Is(err, apperrors.ErrInvalidQuantity) {
				t.Errorf("Quantity %v: expected ErrInvalidQuantity, got %v", qty, err)
			}
		}

		if _, err := l.TradeEquity("TCS", "TCS", 1, -5, model.TradeBuy, ""); !errors.Is(err, apperrors.ErrInvalidQuantity) {
			t.Errorf("Negative price: expected ErrInvalidQuantity, got %v", err)
		}

		if _, err := l.TradeEquity("TCS", "TCS", 1, 100, "hold", ""); !errors.Is(err, apperrors.ErrInvalidTradeSide) {
			t.Errorf("Expected ErrInvalidTradeSide, got %v", err)
		}
	})
}

// TestLedger_TradeCrypto tests fractional cryptocurrency trades.
func TestLedger_TradeCrypto(t *testing.T) {
	t.Run("fractional buy uses weighted average", func(t *testing.T) {
		l := ledger.New()

		if _, err := l.TradeCrypto("BTC", "Bitcoin", 0.1, 10000, model.TradeBuy); err != nil {
			t.Fatalf("TradeCrypto() returned unexpected error: %v", err)
		}
		if _, err := l.TradeCrypto("BTC", "Bitcoin", 0.3, 20000, model.TradeBuy); err != nil {
			t.Fatalf("TradeCrypto() returned unexpected error: %v", err)
		}

		s := l.Snapshot()
		if len(s.Cryptos) != 1 {
			t.Fatalf("Expected 1 holding, got %d", len(s.Cryptos))
		}
		h := s.Cryptos[0]
		if !almostEqual(h.Amount, 0.4) {
			t.Errorf("Expected amount 0.4, got %v", h.Amount)
		}
		// (0.1*10000 + 0.3*20000) / 0.4 = 17500
		if !almostEqual(h.AvgPrice, 17500) {
			t.Errorf("Expected average price 17500, got %v", h.AvgPrice)
		}
	})

	t.Run("removes holding when remainder is dust", func(t *testing.T) {
		l := ledger.New()

		// 0.1 + 0.2 accumulates float error; selling 0.3 leaves dust
		// below the liquidation tolerance, so the holding must go.
		if _, err := l.TradeCrypto("ETH", "Ethereum", 0.1, 1000, model.TradeBuy); err != nil {
			t.Fatalf("TradeCrypto() returned unexpected error: %v", err)
		}
		if _, err := l.TradeCrypto("ETH", "Ethereum", 0.2, 1000, model.TradeBuy); err != nil {
			t.Fatalf("TradeCrypto() returned unexpected error: %v", err)
		}
		if _, err := l.TradeCrypto("ETH", "Ethereum", 0.3, 1000, model.TradeSell); err != nil {
			t.Fatalf("TradeCrypto() returned unexpected error: %v", err)
		}

		if got := len(l.Snapshot().Cryptos); got != 0 {
			t.Errorf("Expected dust holding to be removed, got %d holdings", got)
		}
	})

	t.Run("oversell is rejected", func(t *testing.T) {
		l := ledger.New()

		if _, err := l.TradeCrypto("BTC", "Bitcoin", 0.1, 10000, model.TradeBuy); err != nil {
			t.Fatalf("TradeCrypto() returned unexpected error: %v", err)
		}
		if _, err := l.TradeCrypto("BTC", "Bitcoin", 0.2, 10000, model.TradeSell); !errors.Is(err, apperrors.ErrInsufficientHoldings) {
			t.Fatalf("Expected ErrInsufficientHoldings, got %v", err)
		}
	})
}

// TestLedger_Funds tests mutual fund investment and redemption.
//
// WHY: Funds are amount-denominated rather than unit-denominated, and
// redemption is all-or-nothing. Both differ from the share-based paths.
func TestLedger_Funds(t *testing.T) {
	t.Run("invest converts amount to units at NAV", func(t *testing.T) {
		l := ledger.New()

		txn, err := l.InvestInFund("mf-1", "Bluechip Fund", 1000, 50)
		if err != nil {
			t.Fatalf("InvestInFund() returned unexpected error: %v", err)
		}

		if !almostEqual(txn.Units, 20) {
			t.Errorf("Expected 20 units, got %v", txn.Units)
		}

		h := l.Snapshot().Funds[0]
		if !almostEqual(h.Units, 20) || !almostEqual(h.AvgNav, 50) || !almostEqual(h.InvestedAmount, 1000) {
			t.Errorf("Unexpected holding: %+v", h)
		}
		if !almostEqual(l.Balance(), ledger.SeedBalance-1000) {
			t.Errorf("Expected balance %v, got %v", ledger.SeedBalance-1000, l.Balance())
		}
	})

	t.Run("repeat investment recomputes average NAV", func(t *testing.T) {
		l := ledger.New()

		if _, err := l.InvestInFund("mf-1", "Bluechip Fund", 1000, 50); err != nil {
			t.Fatalf("InvestInFund() returned unexpected error: %v", err)
		}
		if _, err := l.InvestInFund("mf-1", "Bluechip Fund", 1000, 100); err != nil {
			t.Fatalf("InvestInFund() returned unexpected error: %v", err)
		}

		h := l.Snapshot().Funds[0]
		// 20 + 10 units for 2000 invested
		if !almostEqual(h.Units, 30) {
			t.Errorf("Expected 30 units, got %v", h.Units)
		}
		if !almostEqual(h.AvgNav, 2000.0/30.0) {
			t.Errorf("Expected average NAV %v, got %v", 2000.0/30.0, h.AvgNav)
		}
	})

	t.Run("sell liquidates the entire holding", func(t *testing.T) {
		l := ledger.New()

		if _, err := l.InvestInFund("mf-2", "Index Fund", 1000, 50); err != nil {
			t.Fatalf("InvestInFund() returned unexpected error: %v", err)
		}

		txn, err := l.SellFund("mf-2", 60)
		if err != nil {
			t.Fatalf("SellFund() returned unexpected error: %v", err)
		}

		if !almostEqual(txn.Total, 1200) {
			t.Errorf("Expected sale value 1200, got %v", txn.Total)
		}
		if got := len(l.Snapshot().Funds); got != 0 {
			t.Errorf("Expected holding removed, got %d holdings", got)
		}
		if !almostEqual(l.Balance(), ledger.SeedBalance+200) {
			t.Errorf("Expected balance %v, got %v", ledger.SeedBalance+200, l.Balance())
		}
	})

	t.Run("selling an unheld fund is rejected", func(t *testing.T) {
		l := ledger.New()

		if _, err := l.SellFund("mf-9", 60); !errors.Is(err, apperrors.ErrHoldingNotFound) {
			t.Fatalf("Expected ErrHoldingNotFound, got %v", err)
		}
	})

	t.Run("invest rejects insufficient funds", func(t *testing.T) {
		l := ledger.New()

		if _, err := l.InvestInFund("mf-1", "Bluechip Fund", ledger.SeedBalance+1, 50); !errors.Is(err, apperrors.ErrInsufficientFunds) {
			t.Fatalf("Expected ErrInsufficientFunds, got %v", err)
		}
	})
}

// TestLedger_TransactGold tests gram-denominated gold trades.
func TestLedger_TransactGold(t *testing.T) {
	t.Run("buys and sells net against a single balance", func(t *testing.T) {
		l := ledger.New()

		if _, err := l.TransactGold(5, 100, model.TradeBuy); err != nil {
			t.Fatalf("TransactGold() returned unexpected error: %v", err)
		}
		if _, err := l.TransactGold(3, 100, model.TradeBuy); err != nil {
			t.Fatalf("TransactGold() returned unexpected error: %v", err)
		}
		if _, err := l.TransactGold(2, 110, model.TradeSell); err != nil {
			t.Fatalf("TransactGold() returned unexpected error: %v", err)
		}

		s := l.Snapshot()
		if !almostEqual(s.GoldGrams, 6) {
			t.Errorf("Expected 6 grams, got %v", s.GoldGrams)
		}
		if !almostEqual(s.Balance, ledger.SeedBalance-500-300+220) {
			t.Errorf("Unexpected balance %v", s.Balance)
		}
		if len(s.GoldTransactions) != 3 {
			t.Errorf("Expected 3 gold transactions, got %d", len(s.GoldTransactions))
		}
	})

	t.Run("oversell is rejected", func(t *testing.T) {
		l := ledger.New()

		if _, err := l.TransactGold(1, 100, model.TradeBuy); err != nil {
			t.Fatalf("TransactGold() returned unexpected error: %v", err)
		}
		if _, err := l.TransactGold(2, 100, model.TradeSell); !errors.Is(err, apperrors.ErrInsufficientHoldings) {
			t.Fatalf("Expected ErrInsufficientHoldings, got %v", err)
		}
	})
}

// TestLedger_SavingsPlans tests the compound plan-creation operation.
//
// WHY: Plan creation is a two-step operation (equity buy, then plan record).
// A failed buy must never leave an orphaned plan behind.
func TestLedger_SavingsPlans(t *testing.T) {
	t.Run("creation executes tagged initial buy", func(t *testing.T) {
		l := ledger.New()

		plan, err := l.CreateSavingsPlan("Monthly TCS", "TCS", "Tata Consultancy Services", 1000, 200)
		if err != nil {
			t.Fatalf("CreateSavingsPlan() returned unexpected error: %v", err)
		}

		if plan.StockSymbol != "TCS" || plan.Amount != 1000 {
			t.Errorf("Unexpected plan: %+v", plan)
		}

		s := l.Snapshot()
		if len(s.SavingsPlans) != 1 {
			t.Fatalf("Expected 1 plan, got %d", len(s.SavingsPlans))
		}
		if len(s.Equities) != 1 || !almostEqual(s.Equities[0].Shares, 5) {
			t.Errorf("Expected initial buy of 5 shares, got %+v", s.Equities)
		}
		if len(s.EquityTransactions) != 1 || s.EquityTransactions[0].Source != model.SourceSavingsPlan {
			t.Errorf("Expected savings-plan tagged transaction, got %+v", s.EquityTransactions)
		}
		if !almostEqual(s.Balance, ledger.SeedBalance-1000) {
			t.Errorf("Expected balance %v, got %v", ledger.SeedBalance-1000, s.Balance)
		}
	})

	t.Run("failed initial buy leaves no plan behind", func(t *testing.T) {
		l := ledger.New()

		_, err := l.CreateSavingsPlan("Too big", "TCS", "Tata Consultancy Services", ledger.SeedBalance+1, 200)
		if !errors.Is(err, apperrors.ErrInsufficientFunds) {
			t.Fatalf("Expected ErrInsufficientFunds, got %v", err)
		}

		s := l.Snapshot()
		if len(s.SavingsPlans) != 0 || len(s.Equities) != 0 || len(s.EquityTransactions) != 0 {
			t.Error("Failed plan creation left state behind")
		}
		if s.Balance != ledger.SeedBalance {
			t.Errorf("Failed plan creation changed balance: %v", s.Balance)
		}
	})

	t.Run("removal keeps the bought position", func(t *testing.T) {
		l := ledger.New()

		plan, err := l.CreateSavingsPlan("Monthly TCS", "TCS", "Tata Consultancy Services", 1000, 200)
		if err != nil {
			t.Fatalf("CreateSavingsPlan() returned unexpected error: %v", err)
		}

		if err := l.RemoveSavingsPlan(plan.ID); err != nil {
			t.Fatalf("RemoveSavingsPlan() returned unexpected error: %v", err)
		}

		s := l.Snapshot()
		if len(s.SavingsPlans) != 0 {
			t.Errorf("Expected plan removed, got %d plans", len(s.SavingsPlans))
		}
		if len(s.Equities) != 1 {
			t.Errorf("Plan removal touched the equity position: %+v", s.Equities)
		}
	})

	t.Run("removing an unknown plan is rejected", func(t *testing.T) {
		l := ledger.New()

		if err := l.RemoveSavingsPlan("no-such-plan"); !errors.Is(err, apperrors.ErrSavingsPlanNotFound) {
			t.Fatalf("Expected ErrSavingsPlanNotFound, got %v", err)
		}
	})
}

// TestLedger_Deposit tests wallet top-ups.
func TestLedger_Deposit(t *testing.T) {
	t.Run("credits balance and records transaction", func(t *testing.T) {
		l := ledger.New()

		txn, err := l.Deposit(2500)
		if err != nil {
			t.Fatalf("Deposit() returned unexpected error: %v", err)
		}

		if txn.Type != "deposit" || txn.Amount != 2500 {
			t.Errorf("Unexpected transaction: %+v", txn)
		}
		if !almostEqual(l.Balance(), ledger.SeedBalance+2500) {
			t.Errorf("Expected balance %v, got %v", ledger.SeedBalance+2500, l.Balance())
		}
	})

	t.Run("rejects non-positive amounts", func(t *testing.T) {
		l := ledger.New()

		for _, amount := range []float64{0, -100, math.NaN()} {
			if _, err := l.Deposit(amount); !errors.Is(err, apperrors.ErrInvalidAmount) {
				t.Errorf("Amount %v: expected ErrInvalidAmount, got %v", amount, err)
			}
		}
	})
}

func mustTradeEquity(t *testing.T, l *ledger.Ledger, symbol string, shares, price float64, side string) {
	t.Helper()
	if _, err := l.TradeEquity(symbol, symbol, shares, price, side, ""); err != nil {
		t.Fatalf("TradeEquity(%s, %v, %v, %s) returned unexpected error: %v", symbol, shares, price, side, err)
	}
}

// Package ledger implements the portfolio ledger and valuation engine: the
// authoritative in-memory state for the wallet and all holdings, the trade
// engine that mutates it, and the derived valuation and transaction views.
//
// All mutation is funneled through a single mutex so that the balance and
// holding invariants hold under concurrent HTTP requests (single-writer per
// ledger instance). Reads return copies; callers never see internal slices.
package ledger

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/papertrade/dashboard-backend/internal/model"
)

// SeedBalance is the wallet balance used when no persisted state exists.
const SeedBalance = 50000

// Epsilon is the tolerance for float zero-comparison on full liquidation.
// A holding whose quantity drops to or below it is removed entirely.
const Epsilon = 1e-9

// DefaultWatchlist seeds the watchlist when no persisted one exists.
var DefaultWatchlist = []string{"RELIANCE", "TCS", "HDFCBANK", "INFY", "ICICIBANK", "BTC", "ETH"}

// State is the full persistable ledger state, one field per storage slice.
type State struct {
	Balance            float64                   `json:"balance"`
	Equities           []model.EquityHolding     `json:"equities"`
	Cryptos            []model.CryptoHolding     `json:"cryptos"`
	Funds              []model.FundHolding       `json:"funds"`
	GoldGrams          float64                   `json:"goldGrams"`
	SavingsPlans       []model.SavingsPlan       `json:"savingsPlans"`
	EquityTransactions []model.EquityTransaction `json:"equityTransactions"`
	CryptoTransactions []model.CryptoTransaction `json:"cryptoTransactions"`
	FundTransactions   []model.FundTransaction   `json:"fundTransactions"`
	GoldTransactions   []model.GoldTransaction   `json:"goldTransactions"`
	WalletTransactions []model.WalletTransaction `json:"walletTransactions"`
	Watchlist          []string                  `json:"watchlist"`
	Profile            model.UserProfile         `json:"profile"`
}

// Ledger owns the portfolio state for one session. Create one with New and
// share it; its methods are safe for concurrent use.
type Ledger struct {
	mu    sync.Mutex
	state State

	quotes model.QuoteSet

	// Injected for deterministic tests.
	now   func() time.Time
	newID func() string
}

// New creates a Ledger with default state: seed wallet balance, empty
// holdings and logs, default watchlist and profile.
func New() *Ledger {
	return &Ledger{
		state: State{
			Balance:   SeedBalance,
			Watchlist: append([]string(nil), DefaultWatchlist...),
			Profile:   model.DefaultProfile(),
		},
		quotes: model.QuoteSet{
			Stocks:  make(map[string]model.Quote),
			Cryptos: make(map[string]model.Quote),
			Navs:    make(map[string]float64),
		},
		now:   time.Now,
		newID: uuid.NewString,
	}
}

// Restore replaces the ledger state wholesale. Used once at startup after
// loading persisted slices; nil slices and zero values are valid and mean
// "start from defaults for that slice".
func (l *Ledger) Restore(s State) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if s.Watchlist == nil {
		s.Watchlist = append([]string(nil), DefaultWatchlist...)
	}
	if s.Profile == (model.UserProfile{}) {
		s.Profile = model.DefaultProfile()
	}
	l.state = s
}

// Snapshot returns a deep copy of the current ledger state.
func (l *Ledger) Snapshot() State {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.snapshotLocked()
}

func (l *Ledger) snapshotLocked() State {
	s := l.state
	s.Equities = append([]model.EquityHolding(nil), l.state.Equities...)
	s.Cryptos = append([]model.CryptoHolding(nil), l.state.Cryptos...)
	s.Funds = append([]model.FundHolding(nil), l.state.Funds...)
	s.SavingsPlans = append([]model.SavingsPlan(nil), l.state.SavingsPlans...)
	s.EquityTransactions = append([]model.EquityTransaction(nil), l.state.EquityTransactions...)
	s.CryptoTransactions = append([]model.CryptoTransaction(nil), l.state.CryptoTransactions...)
	s.FundTransactions = append([]model.FundTransaction(nil), l.state.FundTransactions...)
	s.GoldTransactions = append([]model.GoldTransaction(nil), l.state.GoldTransactions...)
	s.WalletTransactions = append([]model.WalletTransaction(nil), l.state.WalletTransactions...)
	s.Watchlist = append([]string(nil), l.state.Watchlist...)
	return s
}

// Balance returns the current wallet balance.
func (l *Ledger) Balance() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state.Balance
}

// Quotes returns a copy of the latest quote set.
func (l *Ledger) Quotes() model.QuoteSet {
	l.mu.Lock()
	defer l.mu.Unlock()
	return copyQuotes(l.quotes)
}

func copyQuotes(q model.QuoteSet) model.QuoteSet {
	out := model.QuoteSet{
		Stocks:           make(map[string]model.Quote, len(q.Stocks)),
		Cryptos:          make(map[string]model.Quote, len(q.Cryptos)),
		Navs:             make(map[string]float64, len(q.Navs)),
		GoldPricePerGram: q.GoldPricePerGram,
	}
	for k, v := range q.Stocks {
		out.Stocks[k] = v
	}
	for k, v := range q.Cryptos {
		out.Cryptos[k] = v
	}
	for k, v := range q.Navs {
		out.Navs[k] = v
	}
	return out
}

// UpdateStockQuote records the latest stock quote, last write wins.
func (l *Ledger) UpdateStockQuote(symbol string, price float64, ts time.Time) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.quotes.Stocks[symbol] = model.Quote{Symbol: symbol, Price: price, Timestamp: ts}
}

// UpdateCryptoQuote records the latest crypto quote, last write wins.
func (l *Ledger) UpdateCryptoQuote(symbol string, price float64, ts time.Time) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.quotes.Cryptos[symbol] = model.Quote{Symbol: symbol, Price: price, Timestamp: ts}
}

// UpdateNav records the latest fund NAV, last write wins.
func (l *Ledger) UpdateNav(fundID string, nav float64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.quotes.Navs[fundID] = nav
}

// UpdateGoldPrice records the latest gold price per gram, last write wins.
func (l *Ledger) UpdateGoldPrice(pricePerGram float64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.quotes.GoldPricePerGram = pricePerGram
}

// Watchlist returns a copy of the watchlist symbols.
func (l *Ledger) Watchlist() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.state.Watchlist...)
}

// AddToWatchlist adds a symbol if not already present.
func (l *Ledger) AddToWatchlist(symbol string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, s := range l.state.Watchlist {
		if s == symbol {
			return
		}
	}
	l.state.Watchlist = append(l.state.Watchlist, symbol)
}

// RemoveFromWatchlist removes a symbol; removing an absent symbol is a no-op.
func (l *Ledger) RemoveFromWatchlist(symbol string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := l.state.Watchlist[:0]
	for _, s := range l.state.Watchlist {
		if s != symbol {
			out = append(out, s)
		}
	}
	l.state.Watchlist = out
}

// Profile returns the current user profile.
func (l *Ledger) Profile() model.UserProfile {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state.Profile
}

// UpdateProfile replaces the user profile.
func (l *Ledger) UpdateProfile(p model.UserProfile) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.state.Profile = p
}

package service

import (
	"log"

	"github.com/papertrade/dashboard-backend/internal/ledger"
	"github.com/papertrade/dashboard-backend/internal/market"
	"github.com/papertrade/dashboard-backend/internal/model"
	"github.com/papertrade/dashboard-backend/internal/repository"
)

// PortfolioService owns the session ledger. It resolves instruments against
// the market catalog, funnels every mutation through the ledger's trade
// engine, and persists the touched state slices afterwards.
//
// Persistence is best-effort: the in-memory ledger is the source of truth
// for the running session, so a failed save is logged and never surfaced as
// a trade failure.
type PortfolioService struct {
	ledger    *ledger.Ledger
	market    *market.Market
	stateRepo *repository.StateRepository
}

// NewPortfolioService creates a PortfolioService around the given ledger,
// market catalog and state repository.
func NewPortfolioService(l *ledger.Ledger, m *market.Market, stateRepo *repository.StateRepository) *PortfolioService {
	return &PortfolioService{
		ledger:    l,
		market:    m,
		stateRepo: stateRepo,
	}
}

// Ledger exposes the underlying ledger as the oracle's quote sink.
func (s *PortfolioService) Ledger() *ledger.Ledger {
	return s.ledger
}

// LoadState restores persisted ledger state. Absent slices keep their
// defaults; a slice that fails to load or decode is logged and degraded to
// its default rather than failing startup.
func (s *PortfolioService) LoadState() {
	state := ledger.State{Balance: ledger.SeedBalance}

	load := func(key string, dest any) {
		if _, err := s.stateRepo.Load(key, dest); err != nil {
			log.Printf("Discarding unreadable state slice %s: %v", key, err)
		}
	}

	load(repository.KeyWallet, &state.Balance)
	load(repository.KeyEquityHoldings, &state.Equities)
	load(repository.KeyCryptoHoldings, &state.Cryptos)
	load(repository.KeyFundHoldings, &state.Funds)
	load(repository.KeyGoldBalance, &state.GoldGrams)
	load(repository.KeySavingsPlans, &state.SavingsPlans)
	load(repository.KeyEquityTransactions, &state.EquityTransactions)
	load(repository.KeyCryptoTransactions, &state.CryptoTransactions)
	load(repository.KeyFundTransactions, &state.FundTransactions)
	load(repository.KeyGoldTransactions, &state.GoldTransactions)
	load(repository.KeyWalletTransactions, &state.WalletTransactions)
	load(repository.KeyWatchlist, &state.Watchlist)
	load(repository.KeyProfile, &state.Profile)

	s.ledger.Restore(state)
}

// persist writes the given state slices, logging failures.
func (s *PortfolioService) persist(keys ...string) {
	state := s.ledger.Snapshot()

	values := map[string]any{
		repository.KeyWallet:             state.Balance,
		repository.KeyEquityHoldings:     state.Equities,
		repository.KeyCryptoHoldings:     state.Cryptos,
		repository.KeyFundHoldings:       state.Funds,
		repository.KeyGoldBalance:        state.GoldGrams,
		repository.KeySavingsPlans:       state.SavingsPlans,
		repository.KeyEquityTransactions: state.EquityTransactions,
		repository.KeyCryptoTransactions: state.CryptoTransactions,
		repository.KeyFundTransactions:   state.FundTransactions,
		repository.KeyGoldTransactions:   state.GoldTransactions,
		repository.KeyWalletTransactions: state.WalletTransactions,
		repository.KeyWatchlist:          state.Watchlist,
		repository.KeyProfile:            state.Profile,
	}

	for _, key := range keys {
		if err := s.stateRepo.Save(key, values[key]); err != nil {
			log.Printf("Failed to persist state slice %s: %v", key, err)
		}
	}
}

// TradeStock buys or sells shares of a catalog stock at its current price.
func (s *PortfolioService) TradeStock(symbol string, shares float64, side string) (*model.EquityTransaction, error) {
	stock, err := s.market.Stock(symbol)
	if err != nil {
		return nil, err
	}

	txn, err := s.ledger.TradeEquity(stock.Symbol, stock.Name, shares, stock.Price, side, model.SourceStock)
	if err != nil {
		return nil, err
	}

	s.persist(repository.KeyWallet, repository.KeyEquityHoldings, repository.KeyEquityTransactions)
	return txn, nil
}

// TradeCrypto buys or sells an amount of a catalog cryptocurrency at its
// current price.
func (s *PortfolioService) TradeCrypto(symbol string, amount float64, side string) (*model.CryptoTransaction, error) {
	crypto, err := s.market.Crypto(symbol)
	if err != nil {
		return nil, err
	}

	txn, err := s.ledger.TradeCrypto(crypto.Symbol, crypto.Name, amount, crypto.Price, side)
	if err != nil {
		return nil, err
	}

	s.persist(repository.KeyWallet, repository.KeyCryptoHoldings, repository.KeyCryptoTransactions)
	return txn, nil
}

// InvestInFund invests a monetary amount into a catalog fund at its current NAV.
func (s *PortfolioService) InvestInFund(fundID string, amount float64) (*model.FundTransaction, error) {
	fund, err := s.market.Fund(fundID)
	if err != nil {
		return nil, err
	}

	txn, err := s.ledger.InvestInFund(fund.ID, fund.Name, amount, fund.Nav)
	if err != nil {
		return nil, err
	}

	s.persist(repository.KeyWallet, repository.KeyFundHoldings, repository.KeyFundTransactions)
	return txn, nil
}

// SellFund liquidates the entire holding of a fund at its current NAV.
func (s *PortfolioService) SellFund(fundID string) (*model.FundTransaction, error) {
	fund, err := s.market.Fund(fundID)
	if err != nil {
		return nil, err
	}

	txn, err := s.ledger.SellFund(fund.ID, fund.Nav)
	if err != nil {
		return nil, err
	}

	s.persist(repository.KeyWallet, repository.KeyFundHoldings, repository.KeyFundTransactions)
	return txn, nil
}

// TransactGold buys or sells grams of gold at the current price per gram.
func (s *PortfolioService) TransactGold(grams float64, side string) (*model.GoldTransaction, error) {
	txn, err := s.ledger.TransactGold(grams, s.market.GoldPricePerGram(), side)
	if err != nil {
		return nil, err
	}

	s.persist(repository.KeyWallet, repository.KeyGoldBalance, repository.KeyGoldTransactions)
	return txn, nil
}

// CreateSavingsPlan creates a plan against a catalog stock, executing the
// initial buy at the stock's current price. No plan record is created if
// the underlying trade fails.
func (s *PortfolioService) CreateSavingsPlan(name, stockSymbol string, amount float64) (*model.SavingsPlan, error) {
	stock, err := s.market.Stock(stockSymbol)
	if err != nil {
		return nil, err
	}

	plan, err := s.ledger.CreateSavingsPlan(name, stock.Symbol, stock.Name, amount, stock.Price)
	if err != nil {
		return nil, err
	}

	s.persist(
		repository.KeyWallet,
		repository.KeyEquityHoldings,
		repository.KeyEquityTransactions,
		repository.KeySavingsPlans,
	)
	return plan, nil
}

// RemoveSavingsPlan deletes a plan record, leaving its position untouched.
func (s *PortfolioService) RemoveSavingsPlan(id string) error {
	if err := s.ledger.RemoveSavingsPlan(id); err != nil {
		return err
	}
	s.persist(repository.KeySavingsPlans)
	return nil
}

// Deposit adds funds to the wallet.
func (s *PortfolioService) Deposit(amount float64) (*model.WalletTransaction, error) {
	txn, err := s.ledger.Deposit(amount)
	if err != nil {
		return nil, err
	}
	s.persist(repository.KeyWallet, repository.KeyWalletTransactions)
	return txn, nil
}

// Snapshot returns a copy of the full ledger state.
func (s *PortfolioService) Snapshot() ledger.State {
	return s.ledger.Snapshot()
}

// Valuation returns the current mark-to-market view of the portfolio.
func (s *PortfolioService) Valuation() model.PortfolioValuation {
	return s.ledger.Valuation()
}

// AllTransactions returns the unified transaction feed, newest first.
func (s *PortfolioService) AllTransactions() []model.UnifiedTransaction {
	return s.ledger.AllTransactions()
}

// AddToWatchlist adds a symbol to the watchlist.
func (s *PortfolioService) AddToWatchlist(symbol string) {
	s.ledger.AddToWatchlist(symbol)
	s.persist(repository.KeyWatchlist)
}

// RemoveFromWatchlist removes a symbol from the watchlist.
func (s *PortfolioService) RemoveFromWatchlist(symbol string) {
	s.ledger.RemoveFromWatchlist(symbol)
	s.persist(repository.KeyWatchlist)
}

// Watchlist returns the watchlist symbols.
func (s *PortfolioService) Watchlist() []string {
	return s.ledger.Watchlist()
}

// Profile returns the user profile.
func (s *PortfolioService) Profile() model.UserProfile {
	return s.ledger.Profile()
}

// UpdateProfile replaces the user profile.
func (s *PortfolioService) UpdateProfile(p model.UserProfile) {
	s.ledger.UpdateProfile(p)
	s.persist(repository.KeyProfile)
}

// ResetState clears all persisted state and restores the ledger defaults.
// Developer endpoint only.
func (s *PortfolioService) ResetState() error {
	if err := s.stateRepo.Reset(); err != nil {
		return err
	}
	s.ledger.Restore(ledger.State{Balance: ledger.SeedBalance})
	return nil
}

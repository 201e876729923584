// Package market provides the simulated market: instrument catalogs seeded
// with reference data and a price oracle that random-walks every quote on a
// fixed schedule. The ledger never generates prices; it only consumes the
// oracle's latest snapshot through the QuoteSink interface.
package market

import (
	"math"
	"sync"
	"time"

	"github.com/papertrade/dashboard-backend/internal/apperrors"
	"github.com/papertrade/dashboard-backend/internal/model"
)

// Per-tick volatility per asset class, as a fraction of the current price.
const (
	stockVolatility  = 0.01
	cryptoVolatility = 0.02
	fundVolatility   = 0.002
	goldVolatility   = 0.003
)

// priceFloor keeps a random walk from reaching zero.
const priceFloor = 0.01

// historyLimit bounds the rolling per-instrument price history.
const historyLimit = 30

// QuoteSink receives last-write-wins price updates from the oracle.
// The ledger implements it.
type QuoteSink interface {
	UpdateStockQuote(symbol string, price float64, ts time.Time)
	UpdateCryptoQuote(symbol string, price float64, ts time.Time)
	UpdateNav(fundID string, nav float64)
	UpdateGoldPrice(pricePerGram float64)
}

// Market holds the instrument catalogs and their latest simulated prices.
// Safe for concurrent use.
type Market struct {
	mu               sync.RWMutex
	stocks           []model.Stock
	cryptos          []model.Cryptocurrency
	funds            []model.MutualFund
	goldPricePerGram float64
}

// New creates a Market seeded with the reference catalogs.
func New() *Market {
	return &Market{
		stocks:           seedStocks(),
		cryptos:          seedCryptos(),
		funds:            seedFunds(),
		goldPricePerGram: seedGoldPricePerGram,
	}
}

// Stocks returns a copy of the stock catalog with latest quotes.
func (m *Market) Stocks() []model.Stock {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]model.Stock, len(m.stocks))
	for i, s := range m.stocks {
		s.History = append([]model.PricePoint(nil), s.History...)
		out[i] = s
	}
	return out
}

// Stock returns the stock with the given symbol.
func (m *Market) Stock(symbol string) (model.Stock, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, s := range m.stocks {
		if s.Symbol == symbol {
			s.History = append([]model.PricePoint(nil), s.History...)
			return s, nil
		}
	}
	return model.Stock{}, apperrors.ErrInstrumentNotFound
}

// Cryptos returns a copy of the crypto catalog with latest quotes.
func (m *Market) Cryptos() []model.Cryptocurrency {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]model.Cryptocurrency, len(m.cryptos))
	for i, c := range m.cryptos {
		c.History = append([]model.PricePoint(nil), c.History...)
		out[i] = c
	}
	return out
}

// Crypto returns the cryptocurrency with the given symbol.
func (m *Market) Crypto(symbol string) (model.Cryptocurrency, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, c := range m.cryptos {
		if c.Symbol == symbol {
			c.History = append([]model.PricePoint(nil), c.History...)
			return c, nil
		}
	}
	return model.Cryptocurrency{}, apperrors.ErrInstrumentNotFound
}

// Funds returns a copy of the fund catalog with latest NAVs.
func (m *Market) Funds() []model.MutualFund {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]model.MutualFund(nil), m.funds...)
}

// Fund returns the mutual fund with the given ID.
func (m *Market) Fund(fundID string) (model.MutualFund, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, f := range m.funds {
		if f.ID == fundID {
			return f, nil
		}
	}
	return model.MutualFund{}, apperrors.ErrFundNotFound
}

// GoldPricePerGram returns the latest simulated gold price per gram.
func (m *Market) GoldPricePerGram() float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.goldPricePerGram
}

// walk applies one random-walk step to price. random must be in [0,1).
func walk(price, volatility, random float64) float64 {
	changePercent := (random - 0.5) * volatility
	next := round2(price * (1 + changePercent))
	return math.Max(priceFloor, next)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Tick advances every instrument price by one random-walk step and pushes
// the resulting quotes into sink. random supplies one value in [0,1) per
// call; ts is the quote timestamp and history label time.
func (m *Market) Tick(sink QuoteSink, random func() float64, ts time.Time) {
	label := ts.Format("15:04:05")

	m.mu.Lock()
	for i := range m.stocks {
		s := &m.stocks[i]
		old := s.Price
		s.Price = walk(old, stockVolatility, random())
		s.Change = s.Price - old
		s.ChangePercent = s.Change / old * 100
		s.History = appendHistory(s.History, label, s.Price)
	}
	for i := range m.cryptos {
		c := &m.cryptos[i]
		old := c.Price
		c.Price = walk(old, cryptoVolatility, random())
		c.Change = c.Price - old
		c.ChangePercent = c.Change / old * 100
		c.History = appendHistory(c.History, label, c.Price)
	}
	for i := range m.funds {
		f := &m.funds[i]
		f.Nav = walk(f.Nav, fundVolatility, random())
	}
	m.goldPricePerGram = walk(m.goldPricePerGram, goldVolatility, random())

	stocks := append([]model.Stock(nil), m.stocks...)
	cryptos := append([]model.Cryptocurrency(nil), m.cryptos...)
	funds := append([]model.MutualFund(nil), m.funds...)
	gold := m.goldPricePerGram
	m.mu.Unlock()

	// Push outside the catalog lock; the sink has its own.
	for _, s := range stocks {
		sink.UpdateStockQuote(s.Symbol, s.Price, ts)
	}
	for _, c := range cryptos {
		sink.UpdateCryptoQuote(c.Symbol, c.Price, ts)
	}
	for _, f := range funds {
		sink.UpdateNav(f.ID, f.Nav)
	}
	sink.UpdateGoldPrice(gold)
}

func appendHistory(h []model.PricePoint, label string, price float64) []model.PricePoint {
	h = append(h, model.PricePoint{Date: label, Price: price})
	if len(h) > historyLimit {
		h = h[len(h)-historyLimit:]
	}
	return h
}

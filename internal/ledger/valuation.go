package ledger

import (
	"sort"

	"github.com/papertrade/dashboard-backend/internal/model"
)

// Valuate derives the mark-to-market view of a ledger state against the
// latest quote set. It is a pure function: identical inputs always produce
// identical results, and nothing is cached or stored.
//
// Instruments missing from the quote set degrade gracefully: equities fall
// back to the price cached on the holding, cryptos to their average price,
// funds to their average NAV. Gold reports market value only, since grams
// carry no cost basis.
func Valuate(s State, q model.QuoteSet) model.PortfolioValuation {
	v := model.PortfolioValuation{
		Equities: make([]model.HoldingValuation, 0, len(s.Equities)),
		Cryptos:  make([]model.HoldingValuation, 0, len(s.Cryptos)),
		Funds:    make([]model.FundValuation, 0, len(s.Funds)),
	}

	for _, h := range s.Equities {
		price := h.CurrentPrice
		if quote, ok := q.Stocks[h.Symbol]; ok {
			price = quote.Price
		}
		hv := model.HoldingValuation{
			Symbol:       h.Symbol,
			Name:         h.Name,
			Quantity:     h.Shares,
			AvgPrice:     h.AvgPrice,
			CurrentPrice: price,
			CurrentValue: h.Shares * price,
		}
		hv.UnrealizedPnl = hv.CurrentValue - h.Shares*h.AvgPrice
		v.Equities = append(v.Equities, hv)
		v.EquityValue += hv.CurrentValue
		v.EquityPnl += hv.UnrealizedPnl
	}

	for _, h := range s.Cryptos {
		price := h.AvgPrice
		if quote, ok := q.Cryptos[h.Symbol]; ok {
			price = quote.Price
		}
		hv := model.HoldingValuation{
			Symbol:       h.Symbol,
			Name:         h.Name,
			Quantity:     h.Amount,
			AvgPrice:     h.AvgPrice,
			CurrentPrice: price,
			CurrentValue: h.Amount * price,
		}
		hv.UnrealizedPnl = hv.CurrentValue - h.Amount*h.AvgPrice
		v.Cryptos = append(v.Cryptos, hv)
		v.CryptoValue += hv.CurrentValue
		v.CryptoPnl += hv.UnrealizedPnl
	}

	for _, h := range s.Funds {
		nav := h.AvgNav
		if latest, ok := q.Navs[h.FundID]; ok {
			nav = latest
		}
		fv := model.FundValuation{
			FundID:         h.FundID,
			Name:           h.Name,
			Units:          h.Units,
			AvgNav:         h.AvgNav,
			CurrentNav:     nav,
			InvestedAmount: h.InvestedAmount,
			CurrentValue:   h.Units * nav,
		}
		fv.UnrealizedPnl = fv.CurrentValue - h.InvestedAmount
		v.Funds = append(v.Funds, fv)
		v.FundValue += fv.CurrentValue
		v.FundPnl += fv.UnrealizedPnl
	}

	v.Gold = model.GoldValuation{
		Grams:        s.GoldGrams,
		PricePerGram: q.GoldPricePerGram,
		CurrentValue: s.GoldGrams * q.GoldPricePerGram,
	}
	v.GoldValue = v.Gold.CurrentValue

	// Largest position first; stable so ties keep insertion order.
	sort.SliceStable(v.Equities, func(i, j int) bool {
		return v.Equities[i].CurrentValue > v.Equities[j].CurrentValue
	})
	sort.SliceStable(v.Cryptos, func(i, j int) bool {
		return v.Cryptos[i].CurrentValue > v.Cryptos[j].CurrentValue
	})
	sort.SliceStable(v.Funds, func(i, j int) bool {
		return v.Funds[i].CurrentValue > v.Funds[j].CurrentValue
	})

	v.TotalValue = v.EquityValue + v.CryptoValue + v.FundValue + v.GoldValue
	return v
}

// Valuation derives the mark-to-market view of the current ledger state
// against the latest cached quotes.
func (l *Ledger) Valuation() model.PortfolioValuation {
	l.mu.Lock()
	s := l.snapshotLocked()
	q := copyQuotes(l.quotes)
	l.mu.Unlock()
	return Valuate(s, q)
}

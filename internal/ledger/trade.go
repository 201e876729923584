package ledger

import (
	"math"

	"github.com/papertrade/dashboard-backend/internal/apperrors"
	"github.com/papertrade/dashboard-backend/internal/model"
)

// validQuantity reports whether q is usable as a trade quantity or amount.
func validQuantity(q float64) bool {
	return q > 0 && !math.IsInf(q, 0) && !math.IsNaN(q)
}

func validSide(side string) bool {
	return side == model.TradeBuy || side == model.TradeSell
}

// TradeEquity applies a stock buy or sell at the given execution price.
// On success the wallet balance, the holding and the equity transaction log
// are updated as one unit and the new transaction record is returned.
// Business-rule violations return a sentinel error with no state change.
func (l *Ledger) TradeEquity(symbol, name string, shares, price float64, side, source string) (*model.EquityTransaction, error) {
	if !validQuantity(shares) || !validQuantity(price) {
		return nil, apperrors.ErrInvalidQuantity
	}
	if !validSide(side) {
		return nil, apperrors.ErrInvalidTradeSide
	}
	if source == "" {
		source = model.SourceStock
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	total := shares * price
	idx := l.findEquityLocked(symbol)

	if side == model.TradeBuy {
		if l.state.Balance < total {
			return nil, apperrors.ErrInsufficientFunds
		}
		l.state.Balance -= total
		if idx >= 0 {
			h := &l.state.Equities[idx]
			newShares := h.Shares + shares
			h.AvgPrice = (h.AvgPrice*h.Shares + price*shares) / newShares
			h.Shares = newShares
			h.CurrentPrice = price
		} else {
			l.state.Equities = append(l.state.Equities, model.EquityHolding{
				Symbol:       symbol,
				Name:         name,
				Shares:       shares,
				AvgPrice:     price,
				CurrentPrice: price,
			})
		}
	} else {
		if idx < 0 || l.state.Equities[idx].Shares < shares {
			return nil, apperrors.ErrInsufficientHoldings
		}
		l.state.Balance += total
		h := &l.state.Equities[idx]
		h.Shares -= shares
		h.CurrentPrice = price
		if h.Shares <= Epsilon {
			l.state.Equities = append(l.state.Equities[:idx], l.state.Equities[idx+1:]...)
		}
	}

	txn := model.EquityTransaction{
		ID:     l.newID(),
		Symbol: symbol,
		Name:   name,
		Shares: shares,
		Price:  price,
		Type:   side,
		Date:   l.now(),
		Total:  total,
		Source: source,
	}
	l.state.EquityTransactions = append(l.state.EquityTransactions, txn)
	return &txn, nil
}

// TradeCrypto applies a cryptocurrency buy or sell at the given price.
// Amounts are fractional; a sell that leaves no more than Epsilon removes the
// holding entirely.
func (l *Ledger) TradeCrypto(symbol, name string, amount, price float64, side string) (*model.CryptoTransaction, error) {
	if !validQuantity(amount) || !validQuantity(price) {
		return nil, apperrors.ErrInvalidQuantity
	}
	if !validSide(side) {
		return nil, apperrors.ErrInvalidTradeSide
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	total := amount * price
	idx := l.findCryptoLocked(symbol)

	if side == model.TradeBuy {
		if l.state.Balance < total {
			return nil, apperrors.ErrInsufficientFunds
		}
		l.state.Balance -= total
		if idx >= 0 {
			h := &l.state.Cryptos[idx]
			newAmount := h.Amount + amount
			h.AvgPrice = (h.AvgPrice*h.Amount + price*amount) / newAmount
			h.Amount = newAmount
		} else {
			l.state.Cryptos = append(l.state.Cryptos, model.CryptoHolding{
				Symbol:   symbol,
				Name:     name,
				Amount:   amount,
				AvgPrice: price,
			})
		}
	} else {
		if idx < 0 || l.state.Cryptos[idx].Amount < amount {
			return nil, apperrors.ErrInsufficientHoldings
		}
		l.state.Balance += total
		h := &l.state.Cryptos[idx]
		h.Amount -= amount
		if h.Amount <= Epsilon {
			l.state.Cryptos = append(l.state.Cryptos[:idx], l.state.Cryptos[idx+1:]...)
		}
	}

	txn := model.CryptoTransaction{
		ID:     l.newID(),
		Symbol: symbol,
		Name:   name,
		Amount: amount,
		Price:  price,
		Type:   side,
		Date:   l.now(),
		Total:  total,
	}
	l.state.CryptoTransactions = append(l.state.CryptoTransactions, txn)
	return &txn, nil
}

// InvestInFund invests a monetary amount into a fund at the given NAV,
// buying amount/nav units. AvgNav is recomputed as investedAmount/units.
func (l *Ledger) InvestInFund(fundID, name string, amount, nav float64) (*model.FundTransaction, error) {
	if !validQuantity(amount) {
		return nil, apperrors.ErrInvalidAmount
	}
	if !validQuantity(nav) {
		return nil, apperrors.ErrInvalidQuantity
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.state.Balance < amount {
		return nil, apperrors.ErrInsufficientFunds
	}
	l.state.Balance -= amount

	units := amount / nav
	idx := l.findFundLocked(fundID)
	if idx >= 0 {
		h := &l.state.Funds[idx]
		h.InvestedAmount += amount
		h.Units += units
		h.AvgNav = h.InvestedAmount / h.Units
	} else {
		l.state.Funds = append(l.state.Funds, model.FundHolding{
			FundID:         fundID,
			Name:           name,
			Units:          units,
			AvgNav:         nav,
			InvestedAmount: amount,
		})
	}

	txn := model.FundTransaction{
		ID:     l.newID(),
		FundID: fundID,
		Name:   name,
		Units:  units,
		Price:  nav,
		Type:   model.TradeBuy,
		Date:   l.now(),
		Total:  amount,
	}
	l.state.FundTransactions = append(l.state.FundTransactions, txn)
	return &txn, nil
}

// SellFund liquidates the entire fund holding at the given NAV. Partial
// redemption is not supported; the holding is removed and the full sale
// value credited to the wallet.
func (l *Ledger) SellFund(fundID string, nav float64) (*model.FundTransaction, error) {
	if !validQuantity(nav) {
		return nil, apperrors.ErrInvalidQuantity
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	idx := l.findFundLocked(fundID)
	if idx < 0 {
		return nil, apperrors.ErrHoldingNotFound
	}
	h := l.state.Funds[idx]

	saleValue := h.Units * nav
	l.state.Balance += saleValue
	l.state.Funds = append(l.state.Funds[:idx], l.state.Funds[idx+1:]...)

	txn := model.FundTransaction{
		ID:     l.newID(),
		FundID: h.FundID,
		Name:   h.Name,
		Units:  h.Units,
		Price:  nav,
		Type:   model.TradeSell,
		Date:   l.now(),
		Total:  saleValue,
	}
	l.state.FundTransactions = append(l.state.FundTransactions, txn)
	return &txn, nil
}

// TransactGold buys or sells grams of gold against the single running
// balance. There is no per-lot cost basis; grams net directly.
func (l *Ledger) TransactGold(grams, pricePerGram float64, side string) (*model.GoldTransaction, error) {
	if !validQuantity(grams) || !validQuantity(pricePerGram) {
		return nil, apperrors.ErrInvalidQuantity
	}
	if !validSide(side) {
		return nil, apperrors.ErrInvalidTradeSide
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	total := grams * pricePerGram
	if side == model.TradeBuy {
		if l.state.Balance < total {
			return nil, apperrors.ErrInsufficientFunds
		}
		l.state.Balance -= total
		l.state.GoldGrams += grams
	} else {
		if l.state.GoldGrams < grams {
			return nil, apperrors.ErrInsufficientHoldings
		}
		l.state.Balance += total
		l.state.GoldGrams -= grams
	}

	txn := model.GoldTransaction{
		ID:           l.newID(),
		Grams:        grams,
		PricePerGram: pricePerGram,
		Type:         side,
		Date:         l.now(),
		Total:        total,
	}
	l.state.GoldTransactions = append(l.state.GoldTransactions, txn)
	return &txn, nil
}

// CreateSavingsPlan executes the initial equity buy of amount/price shares
// tagged as a savings-plan trade, and creates the plan record only if that
// trade succeeds. A failed trade leaves no plan record behind. The buy's own
// funds check runs under the ledger lock, so there is no pre-check here.
func (l *Ledger) CreateSavingsPlan(name, stockSymbol, stockName string, amount, price float64) (*model.SavingsPlan, error) {
	if !validQuantity(amount) {
		return nil, apperrors.ErrInvalidAmount
	}

	shares := amount / price
	if _, err := l.TradeEquity(stockSymbol, stockName, shares, price, model.TradeBuy, model.SourceSavingsPlan); err != nil {
		return nil, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	plan := model.SavingsPlan{
		ID:          l.newID(),
		Name:        name,
		StockSymbol: stockSymbol,
		Amount:      amount,
		CreatedAt:   l.now(),
	}
	l.state.SavingsPlans = append(l.state.SavingsPlans, plan)
	return &plan, nil
}

// RemoveSavingsPlan deletes a plan record. The position bought at plan
// creation is unaffected; it is sold through the regular equity path.
func (l *Ledger) RemoveSavingsPlan(id string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i, p := range l.state.SavingsPlans {
		if p.ID == id {
			l.state.SavingsPlans = append(l.state.SavingsPlans[:i], l.state.SavingsPlans[i+1:]...)
			return nil
		}
	}
	return apperrors.ErrSavingsPlanNotFound
}

// Deposit adds funds to the wallet and records a wallet transaction.
func (l *Ledger) Deposit(amount float64) (*model.WalletTransaction, error) {
	if !validQuantity(amount) {
		return nil, apperrors.ErrInvalidAmount
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	l.state.Balance += amount
	txn := model.WalletTransaction{
		ID:     l.newID(),
		Amount: amount,
		Date:   l.now(),
		Type:   "deposit",
	}
	l.state.WalletTransactions = append(l.state.WalletTransactions, txn)
	return &txn, nil
}

func (l *Ledger) findEquityLocked(symbol string) int {
	for i, h := range l.state.Equities {
		if h.Symbol == symbol {
			return i
		}
	}
	return -1
}

func (l *Ledger) findCryptoLocked(symbol string) int {
	for i, h := range l.state.Cryptos {
		if h.Symbol == symbol {
			return i
		}
	}
	return -1
}

func (l *Ledger) findFundLocked(fundID string) int {
	for i, h := range l.state.Funds {
		if h.FundID == fundID {
			return i
		}
	}
	return -1
}

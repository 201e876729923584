package model

// EquityHolding represents an open stock position. One holding exists per
// symbol; it is created on the first buy and removed on full liquidation.
type EquityHolding struct {
	Symbol       string  `json:"symbol"`
	Name         string  `json:"name"`
	Shares       float64 `json:"shares"`
	AvgPrice     float64 `json:"avgPrice"`
	CurrentPrice float64 `json:"currentPrice"` // last execution price, used as a fallback quote
}

// CryptoHolding represents an open cryptocurrency position. Amounts are
// fractional; liquidation uses an epsilon tolerance for float comparison.
type CryptoHolding struct {
	Symbol   string  `json:"symbol"`
	Name     string  `json:"name"`
	Amount   float64 `json:"amount"`
	AvgPrice float64 `json:"avgPrice"`
}

// FundHolding represents a mutual fund position. AvgNav is always
// InvestedAmount / Units, recomputed on every additional investment.
// Fund sales are all-or-nothing, so a holding either exists in full or not at all.
type FundHolding struct {
	FundID         string  `json:"fundId"`
	Name           string  `json:"name"`
	Units          float64 `json:"units"`
	AvgNav         float64 `json:"avgNav"`
	InvestedAmount float64 `json:"investedAmount"`
}

// GoldBalance is the single running gold position in grams. Buys and sells
// net directly against it; no per-lot cost basis is tracked.
type GoldBalance struct {
	Grams float64 `json:"grams"`
}

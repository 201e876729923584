package model

// HoldingValuation is the mark-to-market view of a single equity or crypto
// holding. All monetary values are in the wallet currency.
type HoldingValuation struct {
	Symbol        string  `json:"symbol"`
	Name          string  `json:"name"`
	Quantity      float64 `json:"quantity"`
	AvgPrice      float64 `json:"avgPrice"`
	CurrentPrice  float64 `json:"currentPrice"`
	CurrentValue  float64 `json:"currentValue"`
	UnrealizedPnl float64 `json:"unrealizedPnl"`
}

// FundValuation is the mark-to-market view of a single fund holding.
type FundValuation struct {
	FundID         string  `json:"fundId"`
	Name           string  `json:"name"`
	Units          float64 `json:"units"`
	AvgNav         float64 `json:"avgNav"`
	CurrentNav     float64 `json:"currentNav"`
	InvestedAmount float64 `json:"investedAmount"`
	CurrentValue   float64 `json:"currentValue"`
	UnrealizedPnl  float64 `json:"unrealizedPnl"`
}

// GoldValuation is the mark-to-market view of the gold balance. Gold has no
// per-lot cost basis, so no unrealized P&L is reported for it.
type GoldValuation struct {
	Grams        float64 `json:"grams"`
	PricePerGram float64 `json:"pricePerGram"`
	CurrentValue float64 `json:"currentValue"`
}

// PortfolioValuation aggregates mark-to-market values across all asset
// classes. Per-class P&L is summed separately so each class is independently
// reportable; holdings lists are sorted descending by current value.
type PortfolioValuation struct {
	Equities    []HoldingValuation `json:"equities"`
	Cryptos     []HoldingValuation `json:"cryptos"`
	Funds       []FundValuation    `json:"funds"`
	Gold        GoldValuation      `json:"gold"`
	EquityValue float64            `json:"equityValue"`
	CryptoValue float64            `json:"cryptoValue"`
	FundValue   float64            `json:"fundValue"`
	GoldValue   float64            `json:"goldValue"`
	EquityPnl   float64            `json:"equityPnl"`
	CryptoPnl   float64            `json:"cryptoPnl"`
	FundPnl     float64            `json:"fundPnl"`
	TotalValue  float64            `json:"totalValue"`
}

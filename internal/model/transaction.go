package model

import "time"

// Trade sides.
const (
	TradeBuy  = "buy"
	TradeSell = "sell"
)

// Equity trade sources. Savings-plan buys are tagged so the unified feed
// can categorize them; the tag has no effect on ledger mechanics.
const (
	SourceStock       = "stock"
	SourceSavingsPlan = "savings-plan"
)

// Asset classes as reported by the unified transaction feed.
const (
	AssetStock       = "stock"
	AssetCrypto      = "crypto"
	AssetFund        = "fund"
	AssetGold        = "gold"
	AssetSavingsPlan = "savings-plan"
)

// EquityTransaction records a single executed stock trade. Transactions are
// append-only and immutable once created.
type EquityTransaction struct {
	ID     string    `json:"id"`
	Symbol string    `json:"symbol"`
	Name   string    `json:"name"`
	Shares float64   `json:"shares"`
	Price  float64   `json:"price"`
	Type   string    `json:"type"`
	Date   time.Time `json:"date"`
	Total  float64   `json:"total"`
	Source string    `json:"source"`
}

// CryptoTransaction records a single executed cryptocurrency trade.
type CryptoTransaction struct {
	ID     string    `json:"id"`
	Symbol string    `json:"symbol"`
	Name   string    `json:"name"`
	Amount float64   `json:"amount"`
	Price  float64   `json:"price"`
	Type   string    `json:"type"`
	Date   time.Time `json:"date"`
	Total  float64   `json:"total"`
}

// FundTransaction records a single mutual fund investment or redemption.
type FundTransaction struct {
	ID     string    `json:"id"`
	FundID string    `json:"fundId"`
	Name   string    `json:"name"`
	Units  float64   `json:"units"`
	Price  float64   `json:"price"` // NAV at execution time
	Type   string    `json:"type"`
	Date   time.Time `json:"date"`
	Total  float64   `json:"total"`
}

// GoldTransaction records a single gold purchase or sale.
type GoldTransaction struct {
	ID           string    `json:"id"`
	Grams        float64   `json:"grams"`
	PricePerGram float64   `json:"pricePerGram"`
	Type         string    `json:"type"`
	Date         time.Time `json:"date"`
	Total        float64   `json:"total"`
}

// WalletTransaction records a wallet balance movement that is not a trade,
// currently only deposits.
type WalletTransaction struct {
	ID     string    `json:"id"`
	Amount float64   `json:"amount"`
	Date   time.Time `json:"date"`
	Type   string    `json:"type"`
}

// UnifiedTransaction is the read-only projection merging all four trade logs
// into one shape. It is derived on demand and never persisted.
type UnifiedTransaction struct {
	ID        string    `json:"id"`
	AssetType string    `json:"assetType"`
	Date      time.Time `json:"date"`
	Symbol    string    `json:"symbol"`
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	Quantity  float64   `json:"quantity"`
	Price     float64   `json:"price"`
	Total     float64   `json:"total"`
}

package model

import "time"

// PricePoint is a single entry in an instrument's rolling price history.
type PricePoint struct {
	Date  string  `json:"date"` // HH:mm:ss label, matching the chart axis
	Price float64 `json:"price"`
}

// Stock is a tradable equity instrument with its latest simulated quote.
type Stock struct {
	Symbol        string       `json:"symbol"`
	Name          string       `json:"name"`
	Price         float64      `json:"price"`
	Change        float64      `json:"change"`
	ChangePercent float64      `json:"changePercent"`
	MarketCap     string       `json:"marketCap"`
	Volume        string       `json:"volume"`
	History       []PricePoint `json:"history"`
}

// Cryptocurrency is a tradable crypto instrument with its latest simulated quote.
type Cryptocurrency struct {
	Symbol        string       `json:"symbol"`
	Name          string       `json:"name"`
	Price         float64      `json:"price"`
	Change        float64      `json:"change"`
	ChangePercent float64      `json:"changePercent"`
	MarketCap     float64      `json:"marketCap"`
	Volume        float64      `json:"volume"`
	History       []PricePoint `json:"history"`
}

// MutualFund is an investable fund with its latest simulated NAV.
type MutualFund struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Risk        string  `json:"risk"`
	Return1Y    float64 `json:"return1Y"`
	Return3Y    float64 `json:"return3Y"`
	Nav         float64 `json:"nav"`
}

// Quote is a single last-write-wins price update from the oracle.
type Quote struct {
	Symbol    string    `json:"symbol"`
	Price     float64   `json:"price"`
	Timestamp time.Time `json:"timestamp"`
}

// QuoteSet is the oracle's latest view of all prices, joined against
// holdings by the valuation aggregator. Missing instruments fall back to
// prices cached on the holdings themselves.
type QuoteSet struct {
	Stocks           map[string]Quote
	Cryptos          map[string]Quote
	Navs             map[string]float64
	GoldPricePerGram float64
}

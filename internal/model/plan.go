package model

import "time"

// SavingsPlan records a systematic investment plan against a stock.
// Creating a plan executes one immediate equity buy of amount/price shares;
// the record itself carries no recurring-execution state.
type SavingsPlan struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	StockSymbol string    `json:"stockSymbol"`
	Amount      float64   `json:"amount"`
	CreatedAt   time.Time `json:"createdAt"`
}

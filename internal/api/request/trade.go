package request

// TradeRequest is the body for stock and crypto trade endpoints.
// Quantity is shares for stocks and coin amount for cryptocurrencies.
type TradeRequest struct {
	Symbol   string  `json:"symbol"`
	Quantity float64 `json:"quantity"`
	Side     string  `json:"side"`
}

// FundInvestRequest is the body for mutual fund investments. Amount is
// monetary; units bought are derived from the current NAV.
type FundInvestRequest struct {
	FundID string  `json:"fundId"`
	Amount float64 `json:"amount"`
}

// GoldTradeRequest is the body for gold purchases and sales.
type GoldTradeRequest struct {
	Grams float64 `json:"grams"`
	Side  string  `json:"side"`
}

// SavingsPlanRequest is the body for creating a savings plan.
type SavingsPlanRequest struct {
	Name        string  `json:"name"`
	StockSymbol string  `json:"stockSymbol"`
	Amount      float64 `json:"amount"`
}

// DepositRequest is the body for wallet deposits.
type DepositRequest struct {
	Amount float64 `json:"amount"`
}

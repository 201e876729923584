// Package validation contains request validation for the HTTP layer.
// Business-rule checks (funds, holdings) live in the ledger; this package
// only rejects malformed input before it reaches a service.
package validation

import (
	"fmt"
	"math"
	"strings"

	"github.com/papertrade/dashboard-backend/internal/api/request"
	"github.com/papertrade/dashboard-backend/internal/model"
)

// ValidTradeSide contains the allowed trade side values.
var ValidTradeSide = map[string]bool{
	model.TradeBuy: true, model.TradeSell: true,
}

func positiveFinite(v float64) bool {
	return v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}

// ValidateTrade validates a stock or crypto trade request.
//
// Required fields:
//   - symbol: non-empty
//   - quantity: positive finite number
//   - side: buy or sell
func ValidateTrade(req request.TradeRequest) error {
	errors := make(map[string]string)

	if strings.TrimSpace(req.Symbol) == "" {
		errors["symbol"] = "symbol is required"
	}
	if !positiveFinite(req.Quantity) {
		errors["quantity"] = "quantity must be a positive number"
	}
	if !ValidTradeSide[req.Side] {
		errors["side"] = fmt.Sprintf("invalid side: %s", req.Side)
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}

// ValidateFundInvest validates a fund investment request.
func ValidateFundInvest(req request.FundInvestRequest) error {
	errors := make(map[string]string)

	if strings.TrimSpace(req.FundID) == "" {
		errors["fundId"] = "fundId is required"
	}
	if !positiveFinite(req.Amount) {
		errors["amount"] = "amount must be a positive number"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}

// ValidateGoldTrade validates a gold trade request.
func ValidateGoldTrade(req request.GoldTradeRequest) error {
	errors := make(map[string]string)

	if !positiveFinite(req.Grams) {
		errors["grams"] = "grams must be a positive number"
	}
	if !ValidTradeSide[req.Side] {
		errors["side"] = fmt.Sprintf("invalid side: %s", req.Side)
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}

// ValidateSavingsPlan validates a savings plan creation request.
func ValidateSavingsPlan(req request.SavingsPlanRequest) error {
	errors := make(map[string]string)

	if strings.TrimSpace(req.Name) == "" {
		errors["name"] = "name is required"
	}
	if strings.TrimSpace(req.StockSymbol) == "" {
		errors["stockSymbol"] = "stockSymbol is required"
	}
	if !positiveFinite(req.Amount) {
		errors["amount"] = "amount must be a positive number"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}

// ValidateDeposit validates a wallet deposit request.
func ValidateDeposit(req request.DepositRequest) error {
	if !positiveFinite(req.Amount) {
		return &Error{Fields: map[string]string{"amount": "amount must be a positive number"}}
	}
	return nil
}

package apperrors

import "errors"

// Domain entity errors represent missing or invalid entities in the system.
// These errors indicate that a requested resource does not exist.
var (
	// ErrInstrumentNotFound indicates that a stock or crypto symbol is not
	// part of the tradable catalog.
	ErrInstrumentNotFound = errors.New("instrument not found")

	// ErrFundNotFound indicates that a mutual fund with the given ID does not exist.
	ErrFundNotFound = errors.New("fund not found")

	// ErrHoldingNotFound indicates that no holding exists for the given instrument.
	ErrHoldingNotFound = errors.New("holding not found")

	// ErrSavingsPlanNotFound indicates that a savings plan with the given ID does not exist.
	ErrSavingsPlanNotFound = errors.New("savings plan not found")
)

// Business rule errors represent trade validation failures. They are expected
// outcomes of user input and are reported to the caller with no state change.
var (
	// ErrInvalidQuantity indicates a non-positive or non-finite trade quantity.
	ErrInvalidQuantity = errors.New("quantity must be a positive finite number")

	// ErrInvalidAmount indicates a non-positive or non-finite monetary amount.
	ErrInvalidAmount = errors.New("amount must be a positive finite number")

	// ErrInsufficientFunds indicates that a buy would drive the wallet balance negative.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrInsufficientHoldings indicates that a sell quantity exceeds the held
	// quantity, or that no holding exists for the instrument.
	ErrInsufficientHoldings = errors.New("insufficient holdings")

	// ErrInvalidTradeSide indicates a trade side other than buy or sell.
	ErrInvalidTradeSide = errors.New("trade side must be buy or sell")
)

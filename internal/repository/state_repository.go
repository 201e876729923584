package repository

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
)

// Storage keys, one per logical ledger state slice.
const (
	KeyWallet             = "wallet"
	KeyEquityHoldings     = "equity_holdings"
	KeyCryptoHoldings     = "crypto_holdings"
	KeyFundHoldings       = "fund_holdings"
	KeyGoldBalance        = "gold_balance"
	KeySavingsPlans       = "savings_plans"
	KeyEquityTransactions = "equity_transactions"
	KeyCryptoTransactions = "crypto_transactions"
	KeyFundTransactions   = "fund_transactions"
	KeyGoldTransactions   = "gold_transactions"
	KeyWalletTransactions = "wallet_transactions"
	KeyWatchlist          = "watchlist"
	KeyProfile            = "profile"
)

// StateRepository provides key-value persistence for ledger state slices.
// Each slice is stored as one JSON document keyed by its slice name.
type StateRepository struct {
	db *sql.DB
}

// NewStateRepository creates a new StateRepository with the provided database connection.
func NewStateRepository(db *sql.DB) *StateRepository {
	return &StateRepository{db: db}
}

// Load reads the slice stored under key into dest. It returns false with a
// nil error when no value is stored, which callers treat as "initialize with
// defaults". A value that fails to decode is reported as an error with dest
// left untouched, so the caller can degrade to defaults instead of crashing
// the session.
func (r *StateRepository) Load(key string, dest any) (bool, error) {
	var value string
	err := r.db.QueryRow(`SELECT value FROM ledger_state WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to load state slice %q: %w", key, err)
	}

	// Decode into a scratch value first: Unmarshal populates dest element by
	// element before it reports a type mismatch, and a half-decoded slice
	// must not leak into the session.
	tmp := reflect.New(reflect.TypeOf(dest).Elem())
	if err := json.Unmarshal([]byte(value), tmp.Interface()); err != nil {
		return false, fmt.Errorf("failed to decode state slice %q: %w", key, err)
	}
	reflect.ValueOf(dest).Elem().Set(tmp.Elem())
	return true, nil
}

// Save upserts the slice stored under key, replacing any previous value.
func (r *StateRepository) Save(key string, value any) error {
	encoded, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode state slice %q: %w", key, err)
	}

	_, err = r.db.Exec(`
		INSERT INTO ledger_state (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP
	`, key, string(encoded))
	if err != nil {
		return fmt.Errorf("failed to save state slice %q: %w", key, err)
	}
	return nil
}

// Reset deletes all stored state slices.
func (r *StateRepository) Reset() error {
	if _, err := r.db.Exec(`DELETE FROM ledger_state`); err != nil {
		return fmt.Errorf("failed to reset ledger state: %w", err)
	}
	return nil
}

package repository_test

import (
	"testing"

	"github.com/papertrade/dashboard-backend/internal/model"
	"github.com/papertrade/dashboard-backend/internal/repository"
	"github.com/papertrade/dashboard-backend/internal/testutil"
)

// TestStateRepository_LoadSave tests the key-value persistence round trip.
//
// WHY: Every ledger slice survives restarts through this path. Absent keys
// must read as "no state" rather than an error, and corrupt documents must
// surface as errors so the caller can fall back to defaults.
func TestStateRepository_LoadSave(t *testing.T) {
	t.Run("round trips a holdings slice", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		repo := repository.NewStateRepository(db)

		holdings := []model.EquityHolding{
			{Symbol: "RELIANCE", Name: "Reliance Industries", Shares: 10, AvgPrice: 2850.50, CurrentPrice: 2900},
		}
		if err := repo.Save(repository.KeyEquityHoldings, holdings); err != nil {
			t.Fatalf("Save() returned unexpected error: %v", err)
		}

		var loaded []model.EquityHolding
		found, err := repo.Load(repository.KeyEquityHoldings, &loaded)
		if err != nil {
			t.Fatalf("Load() returned unexpected error: %v", err)
		}
		if !found {
			t.Fatal("Expected stored value to be found")
		}
		if len(loaded) != 1 || loaded[0].Symbol != "RELIANCE" || loaded[0].AvgPrice != 2850.50 {
			t.Errorf("Unexpected loaded value: %+v", loaded)
		}
	})

	t.Run("round trips a scalar", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		repo := repository.NewStateRepository(db)

		if err := repo.Save(repository.KeyWallet, 47149.50); err != nil {
			t.Fatalf("Save() returned unexpected error: %v", err)
		}

		var balance float64
		found, err := repo.Load(repository.KeyWallet, &balance)
		if err != nil {
			t.Fatalf("Load() returned unexpected error: %v", err)
		}
		if !found || balance != 47149.50 {
			t.Errorf("Expected 47149.50, got %v (found=%v)", balance, found)
		}
	})

	t.Run("absent key reads as not found without error", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		repo := repository.NewStateRepository(db)

		var balance float64
		found, err := repo.Load(repository.KeyWallet, &balance)
		if err != nil {
			t.Fatalf("Load() returned unexpected error: %v", err)
		}
		if found {
			t.Error("Expected absent key to read as not found")
		}
	})

	t.Run("save overwrites the previous value", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		repo := repository.NewStateRepository(db)

		if err := repo.Save(repository.KeyGoldBalance, 5.0); err != nil {
			t.Fatalf("Save() returned unexpected error: %v", err)
		}
		if err := repo.Save(repository.KeyGoldBalance, 7.5); err != nil {
			t.Fatalf("Save() returned unexpected error: %v", err)
		}

		var grams float64
		if _, err := repo.Load(repository.KeyGoldBalance, &grams); err != nil {
			t.Fatalf("Load() returned unexpected error: %v", err)
		}
		if grams != 7.5 {
			t.Errorf("Expected 7.5, got %v", grams)
		}
	})

	t.Run("corrupt document surfaces a decode error", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		repo := repository.NewStateRepository(db)

		if _, err := db.Exec(
			`INSERT INTO ledger_state (key, value) VALUES (?, ?)`,
			repository.KeyEquityHoldings, `{not json`,
		); err != nil {
			t.Fatalf("Failed to insert corrupt row: %v", err)
		}

		var loaded []model.EquityHolding
		if _, err := repo.Load(repository.KeyEquityHoldings, &loaded); err == nil {
			t.Error("Expected decode error for corrupt document")
		}
	})

	t.Run("type-mismatched document leaves dest untouched", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		repo := repository.NewStateRepository(db)

		// Valid JSON, wrong element type: Unmarshal fills the slice up to
		// the bad element before reporting the mismatch, and none of that
		// may reach the caller.
		if _, err := db.Exec(
			`INSERT INTO ledger_state (key, value) VALUES (?, ?)`,
			repository.KeyEquityHoldings, `[{"symbol":"TCS","shares":5},{"symbol":42}]`,
		); err != nil {
			t.Fatalf("Failed to insert corrupt row: %v", err)
		}

		var loaded []model.EquityHolding
		if _, err := repo.Load(repository.KeyEquityHoldings, &loaded); err == nil {
			t.Error("Expected decode error for type-mismatched document")
		}
		if loaded != nil {
			t.Errorf("Expected dest untouched after decode error, got %+v", loaded)
		}
	})
}

// TestStateRepository_Reset tests wiping all stored slices.
func TestStateRepository_Reset(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewStateRepository(db)

	if err := repo.Save(repository.KeyWallet, 100.0); err != nil {
		t.Fatalf("Save() returned unexpected error: %v", err)
	}
	if err := repo.Save(repository.KeyWatchlist, []string{"TCS"}); err != nil {
		t.Fatalf("Save() returned unexpected error: %v", err)
	}

	if err := repo.Reset(); err != nil {
		t.Fatalf("Reset() returned unexpected error: %v", err)
	}

	var balance float64
	found, err := repo.Load(repository.KeyWallet, &balance)
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}
	if found {
		t.Error("Expected no stored state after reset")
	}
}

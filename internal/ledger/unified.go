package ledger

import (
	"sort"

	"github.com/papertrade/dashboard-backend/internal/model"
)

// MergeTransactions joins the four per-asset-class trade logs into one feed
// sorted descending by date (stable, so same-timestamp entries keep their
// relative order). It is a pure projection, recomputed from the source logs
// and never itself stored.
//
// Gold entries always report name Gold and symbol GOLD since gold has no
// per-unit identity; equity trades tagged as savings-plan buys are
// categorized under the savings-plan asset type.
func MergeTransactions(
	equities []model.EquityTransaction,
	cryptos []model.CryptoTransaction,
	funds []model.FundTransaction,
	gold []model.GoldTransaction,
) []model.UnifiedTransaction {
	unified := make([]model.UnifiedTransaction, 0, len(equities)+len(cryptos)+len(funds)+len(gold))

	for _, tx := range equities {
		assetType := model.AssetStock
		if tx.Source == model.SourceSavingsPlan {
			assetType = model.AssetSavingsPlan
		}
		unified = append(unified, model.UnifiedTransaction{
			ID:        tx.ID,
			AssetType: assetType,
			Date:      tx.Date,
			Symbol:    tx.Symbol,
			Name:      tx.Name,
			Type:      tx.Type,
			Quantity:  tx.Shares,
			Price:     tx.Price,
			Total:     tx.Total,
		})
	}

	for _, tx := range cryptos {
		unified = append(unified, model.UnifiedTransaction{
			ID:        tx.ID,
			AssetType: model.AssetCrypto,
			Date:      tx.Date,
			Symbol:    tx.Symbol,
			Name:      tx.Name,
			Type:      tx.Type,
			Quantity:  tx.Amount,
			Price:     tx.Price,
			Total:     tx.Total,
		})
	}

	for _, tx := range funds {
		unified = append(unified, model.UnifiedTransaction{
			ID:        tx.ID,
			AssetType: model.AssetFund,
			Date:      tx.Date,
			Symbol:    tx.FundID,
			Name:      tx.Name,
			Type:      tx.Type,
			Quantity:  tx.Units,
			Price:     tx.Price,
			Total:     tx.Total,
		})
	}

	for _, tx := range gold {
		unified = append(unified, model.UnifiedTransaction{
			ID:        tx.ID,
			AssetType: model.AssetGold,
			Date:      tx.Date,
			Symbol:    "GOLD",
			Name:      "Gold",
			Type:      tx.Type,
			Quantity:  tx.Grams,
			Price:     tx.PricePerGram,
			Total:     tx.Total,
		})
	}

	sort.SliceStable(unified, func(i, j int) bool {
		return unified[i].Date.After(unified[j].Date)
	})
	return unified
}

// AllTransactions returns the unified feed for the current ledger state.
func (l *Ledger) AllTransactions() []model.UnifiedTransaction {
	s := l.Snapshot()
	return MergeTransactions(s.EquityTransactions, s.CryptoTransactions, s.FundTransactions, s.GoldTransactions)
}

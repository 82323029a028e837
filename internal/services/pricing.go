package services

import (
	"concierge/internal/models/db_models"
	"github.com/shopspring/decimal"
)

// ProposalTotals is derived from a proposal's items on every read and is
// never persisted.
type ProposalTotals struct {
	TotalCost decimal.Decimal
	ItemCount int
}

// TotalCost sums item prices exactly. An empty slice totals zero.
func TotalCost(items []db_models.ProposalItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Price)
	}
	return total
}

func ItemCount(items []db_models.ProposalItem) int {
	return len(items)
}

func Summarize(items []db_models.ProposalItem) ProposalTotals {
	return ProposalTotals{
		TotalCost: TotalCost(items),
		ItemCount: ItemCount(items),
	}
}

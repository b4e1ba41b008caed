// Package stats computes dashboard aggregates from raw tip records.
package stats

import (
	"math"
	"sort"

	"github.com/creator-tips/internal/models"
)

// TopSupporterLimit bounds the supporter ranking on a dashboard.
const TopSupporterLimit = 5

// Compute reduces a creator's tips to dashboard statistics: total amount,
// tip count and the top supporters ranked by summed amount. The reduction
// is deterministic and commutative in total/count; ranking ties break by
// first appearance in the input (stable sort). Amounts are rounded to two
// decimal places once at the end, not per tip, so rounding error does not
// compound.
func Compute(tips []*models.Tip) *models.DashboardStats {
	var totalAmount float64
	byAddress := make(map[string]*models.Supporter)
	order := make([]string, 0, len(tips))

	for _, tip := range tips {
		totalAmount += tip.Amount

		supporter, ok := byAddress[tip.TipperAddress]
		if !ok {
			handle := tip.TipperHandle
			if handle == "" {
				handle = "Anonymous"
			}
			supporter = &models.Supporter{Address: tip.TipperAddress, Handle: handle}
			byAddress[tip.TipperAddress] = supporter
			order = append(order, tip.TipperAddress)
		}
		supporter.TotalAmount += tip.Amount
		supporter.TipCount++
	}

	supporters := make([]models.Supporter, 0, len(order))
	for _, addr := range order {
		supporters = append(supporters, *byAddress[addr])
	}
	sort.SliceStable(supporters, func(i, j int) bool {
		return supporters[i].TotalAmount > supporters[j].TotalAmount
	})
	if len(supporters) > TopSupporterLimit {
		supporters = supporters[:TopSupporterLimit]
	}
	for i := range supporters {
		supporters[i].TotalAmount = round2(supporters[i].TotalAmount)
	}

	return &models.DashboardStats{
		TotalAmount:   round2(totalAmount),
		TipCount:      int64(len(tips)),
		TopSupporters: supporters,
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

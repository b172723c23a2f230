package finance

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Snapshot mutations return a modified copy; the receiver's slices are never
// written through, so callers can hand snapshots across goroutines freely.

// UpsertHolding replaces qty/buy price when name matches case-insensitively,
// appends a new holding otherwise.
func (s Snapshot) UpsertHolding(name string, qty int64, buyPrice decimal.Decimal) Snapshot {
	stocks := make([]Holding, len(s.Stocks))
	copy(stocks, s.Stocks)
	for i := range stocks {
		if strings.EqualFold(stocks[i].Name, name) {
			stocks[i].Qty = qty
			stocks[i].BuyPrice = buyPrice
			return Snapshot{Stocks: stocks, SIPs: s.SIPs}
		}
	}
	stocks = append(stocks, Holding{Name: name, Qty: qty, BuyPrice: buyPrice})
	return Snapshot{Stocks: stocks, SIPs: s.SIPs}
}

// DeleteHolding removes every holding whose name matches case-insensitively
// and reports whether anything was removed.
func (s Snapshot) DeleteHolding(name string) (Snapshot, bool) {
	stocks := make([]Holding, 0, len(s.Stocks))
	for _, h := range s.Stocks {
		if strings.EqualFold(h.Name, name) {
			continue
		}
		stocks = append(stocks, h)
	}
	return Snapshot{Stocks: stocks, SIPs: s.SIPs}, len(stocks) != len(s.Stocks)
}

// UpsertPlan replaces amount/day when name matches case-insensitively,
// appends a new plan otherwise.
func (s Snapshot) UpsertPlan(name string, amount decimal.Decimal, day int) Snapshot {
	sips := make([]Plan, len(s.SIPs))
	copy(sips, s.SIPs)
	for i := range sips {
		if strings.EqualFold(sips[i].Name, name) {
			sips[i].Amount = amount
			sips[i].Day = day
			return Snapshot{Stocks: s.Stocks, SIPs: sips}
		}
	}
	sips = append(sips, Plan{Name: name, Amount: amount, Day: day})
	return Snapshot{Stocks: s.Stocks, SIPs: sips}
}

// DeletePlan removes every plan whose name matches case-insensitively and
// reports whether anything was removed.
func (s Snapshot) DeletePlan(name string) (Snapshot, bool) {
	sips := make([]Plan, 0, len(s.SIPs))
	for _, p := range s.SIPs {
		if strings.EqualFold(p.Name, name) {
			continue
		}
		sips = append(sips, p)
	}
	return Snapshot{Stocks: s.Stocks, SIPs: sips}, len(sips) != len(s.SIPs)
}

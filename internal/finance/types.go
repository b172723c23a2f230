package finance

import (
	"time"

	"github.com/shopspring/decimal"
)

// Holding is a tracked equity/ETF position. Name is the user-facing key,
// unique case-insensitively within the snapshot.
type Holding struct {
	Name     string          `json:"name"`
	Qty      int64           `json:"qty"`
	BuyPrice decimal.Decimal `json:"buy_price"`
}

// Plan is a SIP (systematic investment plan) tracked for reminders only.
// Day is the calendar day-of-month (1-31) the reminder fires on; a plan
// keyed to day 31 never fires in shorter months.
type Plan struct {
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
	Day    int             `json:"day"`
}

// Snapshot is the full stored portfolio, loaded and persisted as one unit.
type Snapshot struct {
	Stocks []Holding `json:"stocks"`
	SIPs   []Plan    `json:"sip"`
}

// Quote is a point-in-time price observation for a symbol.
type Quote struct {
	Symbol string
	Price  decimal.Decimal
	AsOf   time.Time
}

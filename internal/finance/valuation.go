package finance

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

type LineStatus int

const (
	// LineOK means the holding resolved to a symbol and priced.
	LineOK LineStatus = iota
	// LineNoMapping means no symbol is known for the holding's name.
	LineNoMapping
	// LineNoPrice means the symbol is known but the provider had no price.
	LineNoPrice
)

// LineItem is one holding's valuation. Invested (the cost basis) is always
// filled in so unresolved lines can still show what was paid; Current and the
// gain fields are meaningful only when Status is LineOK.
type LineItem struct {
	Holding  Holding
	Symbol   string
	Status   LineStatus
	Price    decimal.Decimal
	Invested decimal.Decimal
	Current  decimal.Decimal
	GainAbs  decimal.Decimal
	GainPct  decimal.Decimal
	HasPct   bool
}

// Report aggregates only fully-resolved lines into the totals; NoMapping and
// NoPrice lines appear in Lines but contribute to neither total. HasNetPct is
// false when TotalInvested is zero (empty or fully-unresolved portfolio).
type Report struct {
	Lines         []LineItem
	TotalInvested decimal.Decimal
	TotalCurrent  decimal.Decimal
	NetGain       decimal.Decimal
	NetGainPct    decimal.Decimal
	HasNetPct     bool
}

// Engine values a snapshot against live quotes. Quotes are fetched fresh on
// every Evaluate call, one per mapped holding, in snapshot order.
type Engine struct {
	oracle  Oracle
	tickers map[string]string
	log     zerolog.Logger
}

func NewEngine(oracle Oracle, log zerolog.Logger) *Engine {
	return &Engine{
		oracle:  oracle,
		tickers: tickerMap,
		log:     log.With().Str("component", "valuation").Logger(),
	}
}

func (e *Engine) Evaluate(ctx context.Context, snap Snapshot) Report {
	hundred := decimal.NewFromInt(100)
	var report Report
	for _, h := range snap.Stocks {
		line := LineItem{
			Holding:  h,
			Invested: decimal.NewFromInt(h.Qty).Mul(h.BuyPrice),
		}

		symbol, ok := resolveSymbol(e.tickers, h.Name)
		if !ok {
			line.Status = LineNoMapping
			report.Lines = append(report.Lines, line)
			continue
		}
		line.Symbol = symbol

		quote, err := e.oracle.Quote(ctx, symbol)
		if err != nil {
			if !errors.Is(err, ErrQuoteUnavailable) {
				e.log.Warn().Str("symbol", symbol).Err(err).Msg("unexpected oracle error")
			}
			line.Status = LineNoPrice
			report.Lines = append(report.Lines, line)
			continue
		}

		line.Price = quote.Price
		line.Current = decimal.NewFromInt(h.Qty).Mul(quote.Price)
		line.GainAbs = line.Current.Sub(line.Invested)
		if !line.Invested.IsZero() {
			line.GainPct = line.GainAbs.Div(line.Invested).Mul(hundred)
			line.HasPct = true
		}
		report.Lines = append(report.Lines, line)

		report.TotalInvested = report.TotalInvested.Add(line.Invested)
		report.TotalCurrent = report.TotalCurrent.Add(line.Current)
	}

	report.NetGain = report.TotalCurrent.Sub(report.TotalInvested)
	if !report.TotalInvested.IsZero() {
		report.NetGainPct = report.NetGain.Div(report.TotalInvested).Mul(hundred)
		report.HasNetPct = true
	}
	return report
}

package telegram

import (
	"fmt"
	"strings"

	"portfolioBot/internal/finance"
)

// formatPortfolio renders the /portfolio reply: SIP list, one line per
// holding in insertion order, then the aggregate summary. Unresolved lines
// keep their cost basis visible but are marked instead of valued.
func formatPortfolio(snap finance.Snapshot, report finance.Report) string {
	var b strings.Builder

	b.WriteString("💰 SIPs:\n")
	for _, p := range snap.SIPs {
		fmt.Fprintf(&b, "- %s: ₹%s (day %d)\n", p.Name, p.Amount, p.Day)
	}

	b.WriteString("\n📈 Stocks:\n")
	for _, line := range report.Lines {
		h := line.Holding
		switch line.Status {
		case finance.LineNoMapping:
			fmt.Fprintf(&b, "- %s: %d @ ₹%s (⚠️ no data)\n", h.Name, h.Qty, h.BuyPrice)
		case finance.LineNoPrice:
			fmt.Fprintf(&b, "- %s: %d @ ₹%s (⚠️ no price)\n", h.Name, h.Qty, h.BuyPrice)
		default:
			marker := "🔼"
			if line.GainAbs.IsNegative() {
				marker = "🔻"
			}
			if line.HasPct {
				fmt.Fprintf(&b, "- %s: %d @ ₹%s → ₹%s %s %s%%\n",
					h.Name, h.Qty, h.BuyPrice, line.Price.StringFixed(2), marker, line.GainPct.StringFixed(2))
			} else {
				fmt.Fprintf(&b, "- %s: %d @ ₹%s → ₹%s\n",
					h.Name, h.Qty, h.BuyPrice, line.Price.StringFixed(2))
			}
		}
	}

	fmt.Fprintf(&b, "\n💼 Invested: ₹%s\n📊 Current: ₹%s\n",
		report.TotalInvested.Round(0), report.TotalCurrent.Round(0))
	if report.HasNetPct {
		marker := "🔼"
		if report.NetGain.IsNegative() {
			marker = "🔻"
		}
		fmt.Fprintf(&b, "📈 Gain/Loss: %s ₹%s (%s%%)",
			marker, report.NetGain.StringFixed(2), report.NetGainPct.StringFixed(2))
	} else {
		b.WriteString("📈 Gain/Loss: n/a")
	}
	return b.String()
}

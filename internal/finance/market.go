package finance

import (
	"context"
	"fmt"
)

const (
	niftySymbol  = "^NSEI"
	sensexSymbol = "^BSESN"
)

// MarketSummary fetches the Nifty 50 and Sensex levels. Either symbol being
// unavailable fails the whole summary; the caller degrades to a fixed reply.
func MarketSummary(ctx context.Context, oracle Oracle) (string, error) {
	nifty, err := oracle.Quote(ctx, niftySymbol)
	if err != nil {
		return "", fmt.Errorf("nifty: %w", err)
	}
	sensex, err := oracle.Quote(ctx, sensexSymbol)
	if err != nil {
		return "", fmt.Errorf("sensex: %w", err)
	}
	return fmt.Sprintf("📊 Live Market:\nNifty 50: %s\nSensex: %s",
		nifty.Price.Round(0), sensex.Price.Round(0)), nil
}

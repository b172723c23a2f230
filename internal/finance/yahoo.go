package finance

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// ErrQuoteUnavailable covers every way a symbol can fail to price: provider
// error, non-200, empty result set, no closes for the day. Callers treat it
// as a per-line condition, never as fatal.
var ErrQuoteUnavailable = errors.New("quote unavailable")

// Oracle returns the latest traded price for a symbol.
type Oracle interface {
	Quote(ctx context.Context, symbol string) (Quote, error)
}

// yahooChartResp mirrors Yahoo v8 chart response (trimmed to needed fields)
type yahooChartResp struct {
	Chart struct {
		Result []struct {
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Close []float64 `json:"close"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error any `json:"error"`
	} `json:"chart"`
}

// YahooOracle fetches the last daily close from the Yahoo v8 chart endpoint.
// One attempt per call; the client timeout bounds every quote.
type YahooOracle struct {
	client  *http.Client
	baseURL string
	log     zerolog.Logger
}

func NewYahooOracle(log zerolog.Logger) *YahooOracle {
	return &YahooOracle{
		client:  &http.Client{Timeout: 10 * time.Second},
		baseURL: "https://query1.finance.yahoo.com",
		log:     log.With().Str("component", "oracle").Logger(),
	}
}

func (o *YahooOracle) Quote(ctx context.Context, symbol string) (Quote, error) {
	u := fmt.Sprintf("%s/v8/finance/chart/%s?range=1d&interval=1d", o.baseURL, url.PathEscape(symbol))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return Quote{}, ErrQuoteUnavailable
	}
	req.Header.Set("User-Agent", "curl/8")
	resp, err := o.client.Do(req)
	if err != nil {
		o.log.Warn().Str("symbol", symbol).Err(err).Msg("quote request failed")
		return Quote{}, ErrQuoteUnavailable
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		o.log.Warn().Str("symbol", symbol).Int("status", resp.StatusCode).Msg("quote request rejected")
		return Quote{}, ErrQuoteUnavailable
	}

	var yc yahooChartResp
	if err := json.NewDecoder(resp.Body).Decode(&yc); err != nil {
		o.log.Warn().Str("symbol", symbol).Err(err).Msg("quote response not json")
		return Quote{}, ErrQuoteUnavailable
	}
	if len(yc.Chart.Result) == 0 || len(yc.Chart.Result[0].Indicators.Quote) == 0 {
		return Quote{}, ErrQuoteUnavailable
	}

	ts := yc.Chart.Result[0].Timestamp
	closes := yc.Chart.Result[0].Indicators.Quote[0].Close

	// Last bar can be a zero placeholder outside trading hours; walk back to
	// the latest real close.
	for i := len(closes) - 1; i >= 0; i-- {
		if closes[i] == 0 {
			continue
		}
		asOf := time.Time{}
		if i < len(ts) {
			asOf = time.Unix(ts[i], 0)
		}
		return Quote{Symbol: symbol, Price: decimal.NewFromFloat(closes[i]), AsOf: asOf}, nil
	}
	return Quote{}, ErrQuoteUnavailable
}

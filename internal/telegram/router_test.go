package telegram

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolioBot/internal/finance"
	"portfolioBot/internal/storage"
)

type fakeOracle struct {
	prices map[string]float64
}

func (f *fakeOracle) Quote(_ context.Context, symbol string) (finance.Quote, error) {
	p, ok := f.prices[symbol]
	if !ok {
		return finance.Quote{}, finance.ErrQuoteUnavailable
	}
	return finance.Quote{Symbol: symbol, Price: decimal.NewFromFloat(p)}, nil
}

func testRouter(t *testing.T, prices map[string]float64) (*Router, *storage.FileStore) {
	t.Helper()
	store := storage.NewFileStore(filepath.Join(t.TempDir(), "portfolio.json"), zerolog.Nop())
	oracle := &fakeOracle{prices: prices}
	engine := finance.NewEngine(oracle, zerolog.Nop())
	news := finance.NewNewsClient("", zerolog.Nop())
	return NewRouter(store, engine, oracle, news, nil, zerolog.Nop()), store
}

func dispatch(r *Router, text string) string {
	return r.Dispatch(context.Background(), text).Text
}

func TestDispatch_NonCommandsIgnored(t *testing.T) {
	r, _ := testRouter(t, nil)
	assert.Empty(t, dispatch(r, "hello there"))
	assert.Empty(t, dispatch(r, ""))
	assert.Empty(t, dispatch(r, "/unknowncommand"))
}

func TestDispatch_StartAndHelp(t *testing.T) {
	r, _ := testRouter(t, nil)
	assert.Contains(t, dispatch(r, "/start"), "Welcome")
	help := dispatch(r, "/help")
	for _, cmd := range []string{"/portfolio", "/market", "/news", "/addstock", "/deletestock", "/addsip", "/deletesip", "/chart"} {
		assert.Contains(t, help, cmd)
	}
	// group-chat form routes the same
	assert.Equal(t, help, dispatch(r, "/help@SVPortfolioBot"))
}

func TestAddStock_Validation(t *testing.T) {
	r, store := testRouter(t, nil)
	for _, bad := range []string{
		"/addstock",
		"/addstock HOC",
		"/addstock HOC 10",
		"/addstock HOC 10 50 extra",
		"/addstock HOC ten 50",
		"/addstock HOC -1 50",
		"/addstock HOC 10 -50",
		"/addstock HOC 10 zero",
	} {
		assert.Equal(t, usageAddStock, dispatch(r, bad), "input %q", bad)
	}
	assert.Empty(t, store.Load().Stocks, "invalid input must not mutate")
}

func TestAddStock_UpsertFlow(t *testing.T) {
	r, store := testRouter(t, nil)

	out := dispatch(r, "/addstock HOC 10 52.5")
	assert.Contains(t, out, "HOC")
	require.Len(t, store.Load().Stocks, 1)

	// repeat is an update, not a duplicate
	dispatch(r, "/addstock hoc 20 55")
	stocks := store.Load().Stocks
	require.Len(t, stocks, 1)
	assert.Equal(t, int64(20), stocks[0].Qty)
	assert.True(t, stocks[0].BuyPrice.Equal(decimal.NewFromInt(55)))
}

func TestDeleteStock(t *testing.T) {
	r, store := testRouter(t, nil)
	dispatch(r, "/addstock HOC 10 52.5")

	assert.Equal(t, usageDelStock, dispatch(r, "/deletestock"))
	assert.Contains(t, dispatch(r, "/deletestock Foo"), "not found")
	require.Len(t, store.Load().Stocks, 1)

	assert.Contains(t, dispatch(r, "/deletestock hoc"), "Deleted")
	assert.Empty(t, store.Load().Stocks)
}

func TestAddSIP_DayValidationAndDefault(t *testing.T) {
	r, store := testRouter(t, nil)

	for _, bad := range []string{
		"/addsip",
		"/addsip Goal-SIP",
		"/addsip Goal-SIP zero",
		"/addsip Goal-SIP -5",
		"/addsip Goal-SIP 2000 0",
		"/addsip Goal-SIP 2000 32",
		"/addsip Goal-SIP 2000 nineteen",
	} {
		assert.Equal(t, usageAddSIP, dispatch(r, bad), "input %q", bad)
	}
	assert.Empty(t, store.Load().SIPs)

	dispatch(r, "/addsip Goal-SIP 2000 19")
	sips := store.Load().SIPs
	require.Len(t, sips, 1)
	assert.Equal(t, 19, sips[0].Day)

	dispatch(r, "/addsip Monthly-ETF 500")
	sips = store.Load().SIPs
	require.Len(t, sips, 2)
	assert.Equal(t, 1, sips[1].Day, "day defaults to 1")
}

func TestDeleteSIP(t *testing.T) {
	r, store := testRouter(t, nil)
	dispatch(r, "/addsip Goal-SIP 2000 19")

	assert.Contains(t, dispatch(r, "/deletesip Foo"), "not found")
	assert.Contains(t, dispatch(r, "/deletesip goal-sip"), "Deleted")
	assert.Empty(t, store.Load().SIPs)
}

func TestPortfolioCommand(t *testing.T) {
	r, store := testRouter(t, map[string]float64{"SUZLON.NS": 60})
	require.NoError(t, store.Save(finance.Snapshot{}.
		UpsertHolding("Suzlon Energy", 10, decimal.NewFromInt(50)).
		UpsertPlan("Goal-SIP", decimal.NewFromInt(2000), 19)))

	out := dispatch(r, "/portfolio")
	assert.Contains(t, out, "Goal-SIP: ₹2000 (day 19)")
	assert.Contains(t, out, "Suzlon Energy: 10 @ ₹50 → ₹60.00 🔼 20.00%")
	assert.Contains(t, out, "Invested: ₹500")
	assert.Contains(t, out, "Current: ₹600")
	assert.Contains(t, out, "Gain/Loss: 🔼 ₹100.00 (20.00%)")
}

func TestMarketCommand_DegradesToFixedReply(t *testing.T) {
	r, _ := testRouter(t, nil)
	assert.Equal(t, "❌ Couldn't fetch live market data.", dispatch(r, "/market"))

	r, _ = testRouter(t, map[string]float64{"^NSEI": 24500, "^BSESN": 80100})
	assert.Contains(t, dispatch(r, "/market"), "Nifty 50: 24500")
}

func TestChartCommand(t *testing.T) {
	r, store := testRouter(t, map[string]float64{"SUZLON.NS": 60})

	// nothing priced yet
	assert.Contains(t, dispatch(r, "/chart"), "Chart failed")

	require.NoError(t, store.Save(finance.Snapshot{}.UpsertHolding("Suzlon Energy", 10, decimal.NewFromInt(50))))
	reply := r.Dispatch(context.Background(), "/chart")
	assert.NotEmpty(t, reply.Photo)
	assert.Equal(t, "portfolio.png", reply.PhotoName)
}

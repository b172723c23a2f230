package telegram

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"portfolioBot/internal/finance"
	"portfolioBot/internal/openai"
	"portfolioBot/internal/storage"
)

const (
	usageAddStock   = "Usage: /addstock name qty buyprice"
	usageDelStock   = "Usage: /deletestock name"
	usageAddSIP     = "Usage: /addsip name amount [day]"
	usageDelSIP     = "Usage: /deletesip name"
	fallbackInsight = "💡 Reason: Global cues, FIIs activity, inflation data, or profit booking."
)

// Reply is the outcome of one dispatched command. An all-zero Reply means the
// input was not a recognized command and gets no response.
type Reply struct {
	Text      string
	Photo     []byte
	PhotoName string
}

// Router maps one inbound command line to a reply, mutating the store only
// after the arguments fully validate. Invalid input always yields a usage
// string and leaves the snapshot untouched.
type Router struct {
	store   *storage.FileStore
	engine  *finance.Engine
	oracle  finance.Oracle
	news    *finance.NewsClient
	insight *openai.Insight // nil when no API key is configured
	log     zerolog.Logger
}

func NewRouter(store *storage.FileStore, engine *finance.Engine, oracle finance.Oracle, news *finance.NewsClient, insight *openai.Insight, log zerolog.Logger) *Router {
	return &Router{
		store:   store,
		engine:  engine,
		oracle:  oracle,
		news:    news,
		insight: insight,
		log:     log.With().Str("component", "router").Logger(),
	}
}

func (r *Router) Dispatch(ctx context.Context, text string) Reply {
	fields := strings.Fields(strings.TrimSpace(text))
	if len(fields) == 0 || !strings.HasPrefix(fields[0], "/") {
		return Reply{}
	}
	// strip the @BotName suffix used in group chats
	cmd, _, _ := strings.Cut(strings.ToLower(fields[0]), "@")
	args := fields[1:]

	switch cmd {
	case "/start":
		return Reply{Text: "👋 Welcome to SV Portfolio Bot 💹\nType /help to know what I can do!"}
	case "/help":
		return Reply{Text: helpText}
	case "/market":
		return r.market(ctx)
	case "/news":
		return r.headlines(ctx)
	case "/portfolio":
		return r.portfolio(ctx)
	case "/chart":
		return r.chart(ctx)
	case "/addstock":
		return r.addStock(args)
	case "/deletestock":
		return r.deleteStock(args)
	case "/addsip":
		return r.addSIP(args)
	case "/deletesip":
		return r.deleteSIP(args)
	}
	return Reply{}
}

const helpText = `📘 Commands:
/start - Welcome message
/help - Bot features
/portfolio - View your stock & SIP portfolio
/chart - Portfolio value chart
/market - Real-time Nifty & Sensex data
/news - Live business news & reasons
/addstock name qty buyprice - Add a stock
/deletestock name - Delete a stock
/addsip name amount [day] - Add a SIP (reminder on day of month, default 1)
/deletesip name - Delete a SIP`

func (r *Router) market(ctx context.Context) Reply {
	out, err := finance.MarketSummary(ctx, r.oracle)
	if err != nil {
		r.log.Warn().Err(err).Msg("market fetch failed")
		return Reply{Text: "❌ Couldn't fetch live market data."}
	}
	return Reply{Text: out}
}

func (r *Router) headlines(ctx context.Context) Reply {
	titles, err := r.news.TopHeadlines(ctx, 3)
	if err != nil {
		r.log.Warn().Err(err).Msg("news fetch failed")
		return Reply{Text: "❌ Failed to fetch news."}
	}
	var b strings.Builder
	b.WriteString("📰 Top Market News Today:\n\n")
	for i, t := range titles {
		fmt.Fprintf(&b, "%d. %s\n", i+1, t)
	}
	b.WriteString("\n")
	b.WriteString(r.insightLine(ctx, titles))
	return Reply{Text: b.String()}
}

func (r *Router) insightLine(ctx context.Context, titles []string) string {
	if r.insight == nil {
		return fallbackInsight
	}
	line, err := r.insight.HeadlineInsight(ctx, titles)
	if err != nil {
		r.log.Warn().Err(err).Msg("insight generation failed")
		return fallbackInsight
	}
	return "💡 " + line
}

func (r *Router) portfolio(ctx context.Context) Reply {
	snap := r.store.Load()
	report := r.engine.Evaluate(ctx, snap)
	return Reply{Text: formatPortfolio(snap, report)}
}

func (r *Router) chart(ctx context.Context) Reply {
	report := r.engine.Evaluate(ctx, r.store.Load())
	img, err := finance.MakeHoldingsChart(report)
	if err != nil {
		return Reply{Text: "Chart failed: " + err.Error()}
	}
	return Reply{Text: "Portfolio • invested vs current", Photo: img, PhotoName: "portfolio.png"}
}

func (r *Router) addStock(args []string) Reply {
	if len(args) != 3 {
		return Reply{Text: usageAddStock}
	}
	name := args[0]
	qty, err := strconv.ParseInt(args[1], 10, 64)
	if err != nil || qty < 0 {
		return Reply{Text: usageAddStock}
	}
	buyPrice, err := decimal.NewFromString(args[2])
	if err != nil || !buyPrice.IsPositive() {
		return Reply{Text: usageAddStock}
	}
	if err := r.store.Update(func(snap finance.Snapshot) (finance.Snapshot, bool) {
		return snap.UpsertHolding(name, qty, buyPrice), true
	}); err != nil {
		r.log.Error().Err(err).Str("name", name).Msg("addstock save failed")
		return Reply{Text: "❌ Failed to add stock. " + usageAddStock}
	}
	return Reply{Text: fmt.Sprintf("✅ Added/Updated stock: %s, Qty: %d, Buy Price: ₹%s", name, qty, buyPrice)}
}

func (r *Router) deleteStock(args []string) Reply {
	if len(args) != 1 {
		return Reply{Text: usageDelStock}
	}
	name := args[0]
	var found bool
	if err := r.store.Update(func(snap finance.Snapshot) (finance.Snapshot, bool) {
		next, ok := snap.DeleteHolding(name)
		found = ok
		return next, ok
	}); err != nil {
		r.log.Error().Err(err).Str("name", name).Msg("deletestock save failed")
		return Reply{Text: "❌ Failed to delete stock. " + usageDelStock}
	}
	if !found {
		return Reply{Text: fmt.Sprintf("⚠️ Stock '%s' not found.", name)}
	}
	return Reply{Text: fmt.Sprintf("✅ Deleted stock '%s'.", name)}
}

func (r *Router) addSIP(args []string) Reply {
	if len(args) != 2 && len(args) != 3 {
		return Reply{Text: usageAddSIP}
	}
	name := args[0]
	amount, err := decimal.NewFromString(args[1])
	if err != nil || !amount.IsPositive() {
		return Reply{Text: usageAddSIP}
	}
	day := 1
	if len(args) == 3 {
		day, err = strconv.Atoi(args[2])
		if err != nil || day < 1 || day > 31 {
			return Reply{Text: usageAddSIP}
		}
	}
	if err := r.store.Update(func(snap finance.Snapshot) (finance.Snapshot, bool) {
		return snap.UpsertPlan(name, amount, day), true
	}); err != nil {
		r.log.Error().Err(err).Str("name", name).Msg("addsip save failed")
		return Reply{Text: "❌ Failed to add SIP. " + usageAddSIP}
	}
	return Reply{Text: fmt.Sprintf("✅ Added/Updated SIP: %s – ₹%s (day %d)", name, amount, day)}
}

func (r *Router) deleteSIP(args []string) Reply {
	if len(args) != 1 {
		return Reply{Text: usageDelSIP}
	}
	name := args[0]
	var found bool
	if err := r.store.Update(func(snap finance.Snapshot) (finance.Snapshot, bool) {
		next, ok := snap.DeletePlan(name)
		found = ok
		return next, ok
	}); err != nil {
		r.log.Error().Err(err).Str("name", name).Msg("deletesip save failed")
		return Reply{Text: "❌ Failed to delete SIP. " + usageDelSIP}
	}
	if !found {
		return Reply{Text: fmt.Sprintf("⚠️ SIP '%s' not found.", name)}
	}
	return Reply{Text: fmt.Sprintf("✅ Deleted SIP '%s'.", name)}
}

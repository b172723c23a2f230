package finance

import "strings"

// tickerMap resolves display names to NSE/BSE symbols. The tracked universe
// is small and curated, so a static table is enough; names absent here show
// up as "no data" lines in the portfolio report.
var tickerMap = map[string]string{
	"Inox Wind":                  "INOXWIND.NS",
	"Suzlon Energy":              "SUZLON.NS",
	"Ganga Forging":              "GANGAFORGE.BO",
	"Groww MOM50":                "MOM50.NS",
	"Groww Gold ETF":             "GOLDBEES.NS",
	"ICICINXT50":                 "ICICINXT50.NS",
	"NIFTYBEES":                  "NIFTYBEES.NS",
	"Groww Silver ETF":           "SILVERBEES.NS",
	"Nippon India ETF Gold BeES": "GOLDBEES.NS",
	"HOC":                        "HOC.NS",
	"Jaiprakash Power":           "JPPOWER.NS",
	"Vikas Ecotech":              "VIKASECO.NS",
	"MOM100":                     "MOM100.NS",
}

func resolveSymbol(tickers map[string]string, name string) (string, bool) {
	for k, v := range tickers {
		if strings.EqualFold(k, name) {
			return v, true
		}
	}
	return "", false
}

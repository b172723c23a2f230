package finance

import (
	"errors"

	"github.com/vicanso/go-charts/v2"
)

// MakeHoldingsChart renders invested vs current value per priced holding as
// a PNG bar chart. Unresolved lines are skipped; with nothing priced there is
// nothing to draw.
func MakeHoldingsChart(report Report) ([]byte, error) {
	var names []string
	var invested, current []float64
	for _, line := range report.Lines {
		if line.Status != LineOK {
			continue
		}
		names = append(names, line.Holding.Name)
		invested = append(invested, line.Invested.InexactFloat64())
		current = append(current, line.Current.InexactFloat64())
	}
	if len(names) == 0 {
		return nil, errors.New("no priced holdings to chart")
	}

	painter, err := charts.BarRender([][]float64{invested, current},
		charts.TitleTextOptionFunc("Portfolio • invested vs current"),
		charts.XAxisDataOptionFunc(names),
		charts.LegendOptionFunc(charts.LegendOption{Data: []string{"Invested", "Current"}}),
		charts.ThemeOptionFunc(charts.ThemeLight),
	)
	if err != nil {
		return nil, err
	}
	return painter.Bytes()
}

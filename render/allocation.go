package render

import (
	"fmt"

	"github.com/banachtech/frontier/mc"

	charts "github.com/vicanso/go-charts/v2"
)

// Allocation renders the max-Sharpe and min-volatility weights side by side
// as a PNG bar chart.
func Allocation(sum mc.Summary, symbols []string) ([]byte, error) {
	if len(symbols) == 0 || len(sum.MaxSharpe.Weights) != len(symbols) || len(sum.MinVolatility.Weights) != len(symbols) {
		return nil, ErrNoPoints
	}
	values := [][]float64{
		percent(sum.MaxSharpe.Weights),
		percent(sum.MinVolatility.Weights),
	}
	names := []string{
		fmt.Sprintf("Max Sharpe (%.2f)", sum.MaxSharpe.SharpeRatio),
		fmt.Sprintf("Min Volatility (%.3f)", sum.MinVolatility.Volatility),
	}

	p, err := charts.BarRender(values,
		charts.TitleTextOptionFunc("Portfolio Allocation", "weights, %"),
		charts.XAxisDataOptionFunc(symbols),
		charts.LegendOptionFunc(charts.LegendOption{Data: names, Top: charts.PositionTop}),
		charts.ThemeOptionFunc(charts.ThemeLight),
		charts.WidthOptionFunc(100*len(symbols)+400),
		charts.HeightOptionFunc(600),
	)
	if err != nil {
		return nil, fmt.Errorf("render allocation: %w", err)
	}
	return p.Bytes()
}

func percent(w []float64) []float64 {
	out := make([]float64, len(w))
	for i, v := range w {
		out[i] = v * 100
	}
	return out
}

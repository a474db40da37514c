package render

import (
	"errors"
	"io"
	"math"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// DisplayConfig describes the frontier plot.
type DisplayConfig struct {
	Title      string  `yaml:"title" default:"Efficient Frontier"`
	XLabel     string  `yaml:"x_label" default:"Volatility"`
	YLabel     string  `yaml:"y_label" default:"Returns"`
	ColorScale string  `yaml:"color_scale" default:"deep" validate:"oneof=deep viridis"`
	Width      int     `yaml:"width" default:"1200" validate:"gt=0"`
	Height     int     `yaml:"height" default:"1600" validate:"gt=0"`
	DotWidth   float64 `yaml:"dot_width" default:"3" validate:"gt=0"`
}

var ErrNoPoints = errors.New("nothing to plot")

// Scatter writes a PNG of return against volatility, each dot colored by
// its Sharpe ratio.
func Scatter(w io.Writer, points []Point, cfg DisplayConfig) error {
	if len(points) == 0 {
		return ErrNoPoints
	}
	scale, err := scaleByName(cfg.ColorScale)
	if err != nil {
		return err
	}

	xs := make([]float64, len(points))
	ys := make([]float64, len(points))
	sharpe := make([]float64, len(points))
	for i, p := range points {
		xs[i], ys[i], sharpe[i] = p.Volatility, p.Return, p.SharpeRatio
	}
	smin, smax := finiteBounds(sharpe)

	colorBySharpe := func(_, _ chart.Range, index int, _, _ float64) drawing.Color {
		s := sharpe[index]
		if math.IsNaN(s) || math.IsInf(s, 0) {
			return NaNColor
		}
		return scale(s, smin, smax)
	}

	dot := cfg.DotWidth
	if dot <= 0 {
		dot = 3
	}
	graph := chart.Chart{
		Title:  cfg.Title,
		Width:  cfg.Width,
		Height: cfg.Height,
		Background: chart.Style{
			Padding: chart.Box{Top: 50, Left: 20, Right: 20, Bottom: 20},
		},
		XAxis: chart.XAxis{
			Name:  cfg.XLabel,
			Range: paddedRange(xs),
		},
		YAxis: chart.YAxis{
			Name:  cfg.YLabel,
			Range: paddedRange(ys),
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name: "portfolios",
				Style: chart.Style{
					StrokeWidth:      chart.Disabled,
					DotWidth:         dot,
					DotColorProvider: colorBySharpe,
				},
				XValues: xs,
				YValues: ys,
			},
		},
	}
	return graph.Render(chart.PNG, w)
}

// finiteBounds ignores NaN and ±Inf. With no finite value it returns 0, 0.
func finiteBounds(x []float64) (lo, hi float64) {
	found := false
	for _, v := range x {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		if !found {
			lo, hi, found = v, v, true
			continue
		}
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	return lo, hi
}

// go-chart refuses a zero-width range
func paddedRange(x []float64) *chart.ContinuousRange {
	lo, hi := finiteBounds(x)
	pad := (hi - lo) * 0.05
	if pad == 0 {
		pad = 0.01
	}
	return &chart.ContinuousRange{Min: lo - pad, Max: hi + pad}
}

package render

import (
	"fmt"
	"math"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// ColorScale maps v in [vmin, vmax] to a color.
type ColorScale func(v, vmin, vmax float64) drawing.Color

// stops of the cmocean "deep" map, light to dark
var deepStops = []drawing.Color{
	{R: 253, G: 253, B: 204, A: 255},
	{R: 206, G: 236, B: 179, A: 255},
	{R: 156, G: 219, B: 165, A: 255},
	{R: 111, G: 201, B: 163, A: 255},
	{R: 86, G: 177, B: 163, A: 255},
	{R: 76, G: 153, B: 160, A: 255},
	{R: 68, G: 130, B: 155, A: 255},
	{R: 62, G: 108, B: 150, A: 255},
	{R: 62, G: 82, B: 143, A: 255},
	{R: 64, G: 60, B: 115, A: 255},
	{R: 54, G: 43, B: 77, A: 255},
	{R: 39, G: 26, B: 44, A: 255},
}

// Deep interpolates linearly between the stops of the "deep" color map.
func Deep(v, vmin, vmax float64) drawing.Color {
	t := 0.0
	if vmax > vmin {
		t = (v - vmin) / (vmax - vmin)
	}
	t = math.Min(1, math.Max(0, t))
	pos := t * float64(len(deepStops)-1)
	i := int(pos)
	if i >= len(deepStops)-1 {
		return deepStops[len(deepStops)-1]
	}
	f := pos - float64(i)
	a, b := deepStops[i], deepStops[i+1]
	lerp := func(x, y uint8) uint8 {
		return uint8(math.Round(float64(x) + f*(float64(y)-float64(x))))
	}
	return drawing.Color{R: lerp(a.R, b.R), G: lerp(a.G, b.G), B: lerp(a.B, b.B), A: 255}
}

// NaNColor is used for samples without a Sharpe ratio.
var NaNColor = chart.ColorAlternateGray

func scaleByName(name string) (ColorScale, error) {
	switch name {
	case "", "deep":
		return Deep, nil
	case "viridis":
		return chart.Viridis, nil
	}
	return nil, fmt.Errorf("unknown color scale %q", name)
}

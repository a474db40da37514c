package render

import "github.com/banachtech/frontier/mc"

// Point is what the scatter needs from a sample.
type Point struct {
	Volatility  float64
	Return      float64
	SharpeRatio float64
	Label       string
}

func Points(samples []mc.PortfolioSample) []Point {
	out := make([]Point, len(samples))
	for i, s := range samples {
		out[i] = Point{Volatility: s.Volatility, Return: s.Return, SharpeRatio: s.SharpeRatio, Label: s.Label}
	}
	return out
}

package mc

import (
	"math"
	"strconv"
	"strings"

	"github.com/banachtech/frontier/linalg"

	"gonum.org/v1/gonum/floats/scalar"
)

// PortfolioSample is one simulated long-only portfolio. Return and
// Volatility are rounded to 3 decimals. SharpeRatio is NaN when Volatility
// is 0.
type PortfolioSample struct {
	Weights     linalg.Vector
	Return      float64
	Volatility  float64
	SharpeRatio float64
	Label       string
}

// Degenerate reports whether the sample has zero volatility and hence no
// defined Sharpe ratio.
func (s PortfolioSample) Degenerate() bool {
	return s.Volatility == 0
}

func evaluate(w, mu linalg.Vector, cov linalg.SymMatrix, riskFree float64, symbols []string) PortfolioSample {
	ret := scalar.Round(w.Dot(mu), 3)
	vol := scalar.Round(math.Sqrt(math.Max(0, cov.QuadForm(w))), 3)
	sharpe := math.NaN()
	if vol <= 0 {
		vol = 0
	} else {
		sharpe = (ret - riskFree) / vol
	}
	return PortfolioSample{
		Weights:     w,
		Return:      ret,
		Volatility:  vol,
		SharpeRatio: sharpe,
		Label:       Label(symbols, w),
	}
}

// Label describes the weights as "Weights[AAPL: 0.12, TSLA: 0.88]", each
// weight rounded to 2 decimals.
func Label(symbols []string, w linalg.Vector) string {
	var sb strings.Builder
	sb.WriteString("Weights[")
	for i, s := range symbols {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(s)
		sb.WriteString(": ")
		sb.WriteString(formatWeight(w[i]))
	}
	sb.WriteString("]")
	return sb.String()
}

// shortest representation, always with a decimal point
func formatWeight(x float64) string {
	s := strconv.FormatFloat(scalar.Round(x, 2), 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

package stats

import (
	"fmt"
	"math"

	"github.com/banachtech/frontier/data"
	"github.com/banachtech/frontier/linalg"

	"gonum.org/v1/gonum/stat"
)

const TradingDaysPerYear = 252

// MinObservations is the smallest number of aligned closes Compute accepts.
// Two closes give a single daily return, whose sample variance has no
// degrees of freedom.
const MinObservations = 3

// LogReturns returns ln(p[t]/p[t-1]) for t >= 1.
func LogReturns(prices []float64) []float64 {
	if len(prices) < 2 {
		return nil
	}
	rt := make([]float64, len(prices)-1)
	for t := 1; t < len(prices); t++ {
		rt[t-1] = math.Log(prices[t] / prices[t-1])
	}
	return rt
}

// AnnualizedReturn is the mean daily log-return scaled to a trading year.
func AnnualizedReturn(returns []float64) float64 {
	return stat.Mean(returns, nil) * TradingDaysPerYear
}

// Compute estimates the annualized expected log-return of every instrument
// and the annualized sample covariance of their daily log-returns. Both
// follow the column order of m.
func Compute(m data.PriceMatrix) (linalg.Vector, linalg.SymMatrix, error) {
	n := len(m.Symbols)
	if n == 0 {
		return nil, linalg.SymMatrix{}, fmt.Errorf("price matrix has no instruments")
	}
	for t, row := range m.Prices {
		if len(row) != n {
			return nil, linalg.SymMatrix{}, fmt.Errorf("row %d has %d prices, expected %d", t, len(row), n)
		}
		for i, p := range row {
			if !(p > 0) || math.IsInf(p, 0) {
				return nil, linalg.SymMatrix{}, fmt.Errorf("invalid price %v for %s at row %d", p, m.Symbols[i], t)
			}
		}
	}
	if m.Rows() < MinObservations {
		return nil, linalg.SymMatrix{}, &InsufficientDataError{Observations: m.Rows(), Required: MinObservations}
	}

	rx := make([][]float64, n)
	mu := make(linalg.Vector, n)
	for i := 0; i < n; i++ {
		rx[i] = LogReturns(m.Column(i))
		mu[i] = AnnualizedReturn(rx[i])
	}

	// each pair is computed once, the symmetric store mirrors it
	cov := linalg.NewSymMatrix(n)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			cov.SetSym(i, j, stat.Covariance(rx[i], rx[j], nil))
		}
	}
	return mu, cov.Scale(TradingDaysPerYear), nil
}

// Correlation converts a covariance matrix into a correlation matrix.
// Pairs involving a zero-variance instrument get 0 and the diagonal is 1.
func Correlation(cov linalg.SymMatrix) linalg.SymMatrix {
	n := cov.Dim()
	corr := linalg.NewSymMatrix(n)
	sd := cov.Diag()
	for i := range sd {
		sd[i] = math.Sqrt(math.Max(sd[i], 0))
	}
	for i := 0; i < n; i++ {
		corr.SetSym(i, i, 1)
		for j := i + 1; j < n; j++ {
			if sd[i] == 0 || sd[j] == 0 {
				continue
			}
			corr.SetSym(i, j, cov.At(i, j)/(sd[i]*sd[j]))
		}
	}
	return corr
}

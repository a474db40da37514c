package mc

// Summary picks out the notable points of a sampled frontier.
type Summary struct {
	MaxSharpe     PortfolioSample
	MinVolatility PortfolioSample
	// samples with zero volatility and a NaN Sharpe ratio
	Degenerate int
	Count      int
}

// Summarize scans samples for the highest Sharpe ratio and the lowest
// volatility. Degenerate samples are counted and skipped.
func Summarize(samples []PortfolioSample) Summary {
	var sum Summary
	sum.Count = len(samples)
	found := false
	for _, s := range samples {
		if s.Degenerate() {
			sum.Degenerate++
			continue
		}
		if !found {
			sum.MaxSharpe, sum.MinVolatility = s, s
			found = true
			continue
		}
		if s.SharpeRatio > sum.MaxSharpe.SharpeRatio {
			sum.MaxSharpe = s
		}
		if s.Volatility < sum.MinVolatility.Volatility {
			sum.MinVolatility = s
		}
	}
	return sum
}

package data

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"
)

const Layout = "2006-01-02"

// Provider delivers adjusted daily closes for one symbol over [start, end].
type Provider interface {
	FetchAdjustedClose(ctx context.Context, symbol string, start, end time.Time) (PriceSeries, error)
}

// get the adjusted closes of every symbol concurrently; the result keeps the
// order of symbols and the first failure is returned as is
func FetchAll(ctx context.Context, p Provider, symbols []string, start, end time.Time) ([]PriceSeries, error) {
	out := make([]PriceSeries, len(symbols))
	g, ctx := errgroup.WithContext(ctx)
	for i := range symbols {
		i := i
		g.Go(func() error {
			s, err := p.FetchAdjustedClose(ctx, symbols[i], start, end)
			if err != nil {
				return err
			}
			out[i] = s
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// Normalize sorts points by date, collapses duplicate dates to the last
// observation and drops non-positive or non-finite prices.
func Normalize(s PriceSeries) PriceSeries {
	byDate := make(map[string]PricePoint, len(s.Points))
	for _, p := range s.Points {
		if !validPrice(p.Close) {
			continue
		}
		byDate[p.Date.Format(Layout)] = p
	}
	points := make([]PricePoint, 0, len(byDate))
	for _, p := range byDate {
		points = append(points, p)
	}
	sort.Slice(points, func(i, j int) bool { return points[i].Date.Before(points[j].Date) })
	return PriceSeries{Symbol: s.Symbol, Points: points}
}

// BuildMatrix aligns the series on calendar date. A date is kept only when
// every series has a valid price on it. Column order follows the input.
func BuildMatrix(series []PriceSeries) (PriceMatrix, error) {
	if len(series) == 0 {
		return PriceMatrix{}, fmt.Errorf("no price series provided")
	}

	symbols := make([]string, len(series))
	lookup := make([]map[string]float64, len(series))
	count := map[string]int{}
	first := map[string]time.Time{}
	for i, s := range series {
		symbols[i] = s.Symbol
		s = Normalize(s)
		lookup[i] = make(map[string]float64, len(s.Points))
		for _, p := range s.Points {
			key := p.Date.Format(Layout)
			lookup[i][key] = p.Close
			count[key]++
			if _, ok := first[key]; !ok {
				first[key] = p.Date
			}
		}
	}

	var keys []string
	for k, c := range count {
		if c == len(series) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	m := PriceMatrix{
		Symbols: symbols,
		Dates:   make([]time.Time, len(keys)),
		Prices:  make([][]float64, len(keys)),
	}
	for t, k := range keys {
		m.Dates[t] = first[k]
		row := make([]float64, len(series))
		for i := range series {
			row[i] = lookup[i][k]
		}
		m.Prices[t] = row
	}
	return m, nil
}

func validPrice(p float64) bool {
	return p > 0 && !math.IsNaN(p) && !math.IsInf(p, 0)
}

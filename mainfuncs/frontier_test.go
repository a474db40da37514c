package mainfuncs

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/banachtech/frontier/config"
	"github.com/banachtech/frontier/data"
	"github.com/banachtech/frontier/mc"
	"github.com/banachtech/frontier/render"
	"github.com/banachtech/frontier/stats"
	"github.com/banachtech/frontier/util"
	"github.com/banachtech/frontier/utils"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

type fakeProvider struct {
	closes map[string][]float64
	dates  []time.Time
	err    error
}

func (f fakeProvider) FetchAdjustedClose(_ context.Context, symbol string, _, _ time.Time) (data.PriceSeries, error) {
	if f.err != nil {
		return data.PriceSeries{}, f.err
	}
	s := data.PriceSeries{Symbol: symbol}
	for i, p := range f.closes[symbol] {
		s.Points = append(s.Points, data.PricePoint{Date: f.dates[i], Close: p})
	}
	return s, nil
}

func testConfig(symbols ...string) config.Config {
	return config.Config{
		Symbols: symbols,
		Data:    config.Data{Provider: "yahoo", Start: "2023-01-02", End: "2023-12-29"},
		Sampler: mc.Config{Iterations: 500, Seed: 11, Workers: 2, Method: mc.MethodUniform},
		Display: render.DisplayConfig{Title: "Efficient Frontier", XLabel: "Volatility", YLabel: "Returns", ColorScale: "deep", Width: 600, Height: 800, DotWidth: 3},
	}
}

func syntheticProvider(symbols []string, n int) fakeProvider {
	r := util.NewRandom(5)
	f := fakeProvider{
		closes: map[string][]float64{},
		dates:  util.BusinessDays(time.Date(2023, 1, 2, 0, 0, 0, 0, time.UTC), n),
	}
	for i, s := range symbols {
		f.closes[s] = r.RandomWalk(n, 100+float64(i)*10, 0.05*float64(i+1), 0.2+0.05*float64(i))
	}
	return f
}

func TestRun(t *testing.T) {
	symbols := []string{"AAPL", "TSLA", "NVDA"}
	cfg := testConfig(symbols...)
	res, err := Run(context.Background(), cfg, syntheticProvider(symbols, 120), zerolog.Nop())
	require.NoError(t, err)

	require.Equal(t, symbols, res.Symbols)
	require.Equal(t, 120, res.Observations)
	require.Equal(t, 3, res.Returns.Len())
	require.Equal(t, 3, res.Covariance.Dim())
	require.True(t, res.Covariance.IsSymmetric(1e-9))
	require.InDelta(t, 1.0, res.Correlation.At(1, 1), 1e-12)
	require.Len(t, res.Samples, 500)
	require.Equal(t, 500, res.Summary.Count)
	require.Zero(t, res.Summary.Degenerate)
	for _, s := range res.Samples {
		require.InDelta(t, 1.0, s.Weights.Sum(), 1e-9)
	}

	again, err := Run(context.Background(), cfg, syntheticProvider(symbols, 120), zerolog.Nop())
	require.NoError(t, err)
	require.Equal(t, res.Samples, again.Samples)
}

func TestRunRandomTickers(t *testing.T) {
	r := util.NewRandom(9)
	var raw []string
	for i := 0; i < 5; i++ {
		raw = append(raw, r.RandomStock())
	}
	symbols := utils.Format(raw)
	require.NotEmpty(t, symbols)

	cfg := testConfig(symbols...)
	cfg.Sampler.Method = mc.MethodDirichlet
	res, err := Run(context.Background(), cfg, syntheticProvider(symbols, 80), zerolog.Nop())
	require.NoError(t, err)
	require.Equal(t, symbols, res.Symbols)
	for _, s := range res.Samples {
		for _, sym := range symbols {
			require.Contains(t, s.Label, sym+": ")
		}
	}
}

func TestRunPassesFetchErrorThrough(t *testing.T) {
	want := &data.DataFetchError{Provider: "fake", Symbol: "AAPL", Err: data.ErrNoData}
	_, err := Run(context.Background(), testConfig("AAPL"), fakeProvider{err: want}, zerolog.Nop())

	var fe *data.DataFetchError
	require.True(t, errors.As(err, &fe))
	require.Same(t, want, fe)
}

func TestRunInsufficientData(t *testing.T) {
	day := time.Date(2023, 3, 1, 0, 0, 0, 0, time.UTC)
	p := fakeProvider{
		closes: map[string][]float64{"A": {100, 110}, "B": {50, 45}},
		dates:  []time.Time{day, day.AddDate(0, 0, 1)},
	}
	_, err := Run(context.Background(), testConfig("A", "B"), p, zerolog.Nop())

	var ie *stats.InsufficientDataError
	require.True(t, errors.As(err, &ie))
	require.Equal(t, 2, ie.Observations)
}

func TestWrite(t *testing.T) {
	symbols := []string{"AAPL", "TSLA"}
	res, err := Run(context.Background(), testConfig(symbols...), syntheticProvider(symbols, 60), zerolog.Nop())
	require.NoError(t, err)

	dir := filepath.Join(t.TempDir(), "out")
	paths, err := Write(res, testConfig().Display, dir)
	require.NoError(t, err)
	require.Equal(t, []string{filepath.Join(dir, FrontierFile), filepath.Join(dir, AllocationFile)}, paths)
	for _, p := range paths {
		b, err := os.ReadFile(p)
		require.NoError(t, err)
		require.NotEmpty(t, b)
	}
}

func TestNewProvider(t *testing.T) {
	p, err := NewProvider(config.Data{Provider: "yahoo", Timeout: time.Second, CacheTTL: time.Minute})
	require.NoError(t, err)
	require.IsType(t, &data.Cached{}, p)

	p, err = NewProvider(config.Data{Provider: "alphavantage", APIKey: "k", Timeout: time.Second})
	require.NoError(t, err)
	require.IsType(t, &data.AlphaVantage{}, p)

	_, err = NewProvider(config.Data{Provider: "bloomberg"})
	require.Error(t, err)
}

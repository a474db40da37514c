package mainfuncs

import (
	"context"
	"fmt"
	"math"
	"net/http"
	"time"

	"github.com/banachtech/frontier/config"
	"github.com/banachtech/frontier/data"
	"github.com/banachtech/frontier/linalg"
	"github.com/banachtech/frontier/mc"
	"github.com/banachtech/frontier/stats"
	"github.com/banachtech/frontier/utils"

	"github.com/rs/zerolog"
)

const Layout = "2006-01-02"

// Result holds everything computed in one run.
type Result struct {
	Symbols      []string
	Start, End   time.Time
	Observations int
	Returns      linalg.Vector
	Covariance   linalg.SymMatrix
	Correlation  linalg.SymMatrix
	Samples      []mc.PortfolioSample
	Summary      mc.Summary
}

// NewProvider builds the configured market-data source, cached when
// CacheTTL is positive.
func NewProvider(cfg config.Data) (data.Provider, error) {
	client := &http.Client{Timeout: cfg.Timeout}
	var p data.Provider
	switch cfg.Provider {
	case "alphavantage":
		av := data.NewAlphaVantage(cfg.APIKey)
		av.Client = client
		p = av
	case "yahoo":
		y := data.NewYahoo()
		y.Client = client
		p = y
	default:
		return nil, fmt.Errorf("unknown provider %q", cfg.Provider)
	}
	if cfg.CacheTTL > 0 {
		p = data.NewCached(p, cfg.CacheTTL)
	}
	return p, nil
}

// Run fetches prices, estimates annualized statistics and samples the
// frontier. Provider and estimation errors are returned as is.
func Run(ctx context.Context, cfg config.Config, p data.Provider, log zerolog.Logger) (*Result, error) {
	start, end, err := cfg.Window(time.Now())
	if err != nil {
		return nil, err
	}
	log.Info().
		Strs("symbols", cfg.Symbols).
		Str("start", start.Format(Layout)).
		Str("end", end.Format(Layout)).
		Msg("fetching adjusted closes")

	series, err := data.FetchAll(ctx, p, cfg.Symbols, start, end)
	if err != nil {
		return nil, err
	}
	for _, s := range series {
		log.Debug().Str("symbol", s.Symbol).Int("observations", len(s.Points)).Msg("fetched")
	}

	m, err := data.BuildMatrix(series)
	if err != nil {
		return nil, err
	}
	logCoverage(log, m, start, end)

	mu, cov, err := stats.Compute(m)
	if err != nil {
		return nil, err
	}
	corr := stats.Correlation(cov)
	for i, s := range m.Symbols {
		log.Info().
			Str("symbol", s).
			Float64("annual_return", mu[i]).
			Float64("annual_vol", math.Sqrt(cov.At(i, i))).
			Msg("statistics")
	}
	log.Debug().Interface("correlation", corr.Rows()).Msg("correlation matrix")

	sampler := mc.NewSampler(cfg.Sampler)
	t0 := time.Now()
	samples, err := sampler.Sample(ctx, mu, cov, m.Symbols, cfg.Sampler.Iterations)
	if err != nil {
		return nil, fmt.Errorf("sample portfolios: %w", err)
	}
	sum := mc.Summarize(samples)
	log.Info().
		Int("iterations", len(samples)).
		Str("method", string(sampler.Config().Method)).
		Dur("elapsed", time.Since(t0)).
		Msg("sampling done")
	if sum.Degenerate > 0 {
		log.Warn().Int("count", sum.Degenerate).Msg("zero-volatility portfolios have no Sharpe ratio")
	}
	if sum.Count > sum.Degenerate {
		log.Info().
			Float64("sharpe", sum.MaxSharpe.SharpeRatio).
			Float64("return", sum.MaxSharpe.Return).
			Float64("volatility", sum.MaxSharpe.Volatility).
			Str("weights", sum.MaxSharpe.Label).
			Msg("max sharpe portfolio")
		log.Info().
			Float64("return", sum.MinVolatility.Return).
			Float64("volatility", sum.MinVolatility.Volatility).
			Str("weights", sum.MinVolatility.Label).
			Msg("min volatility portfolio")
	}

	return &Result{
		Symbols:      m.Symbols,
		Start:        start,
		End:          end,
		Observations: m.Rows(),
		Returns:      mu,
		Covariance:   cov,
		Correlation:  corr,
		Samples:      samples,
		Summary:      sum,
	}, nil
}

// compare aligned rows with the NYSE calendar
func logCoverage(log zerolog.Logger, m data.PriceMatrix, start, end time.Time) {
	hols, err := utils.Hols(utils.NYSE)
	if err != nil {
		return
	}
	days, err := utils.ListBusinessDates(start, end, hols)
	if err != nil || len(days) == 0 {
		return
	}
	ev := log.Info()
	if m.Rows() < len(days)*9/10 {
		ev = log.Warn()
	}
	ev.Int("aligned", m.Rows()).Int("trading_days", len(days)).Msg("price coverage")
}

package data

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const alphavantageURL = "https://www.alphavantage.co/query"

// AlphaVantage fetches TIME_SERIES_DAILY_ADJUSTED histories.
type AlphaVantage struct {
	BaseURL string
	APIKey  string
	Client  *http.Client
}

func NewAlphaVantage(apiKey string) *AlphaVantage {
	return &AlphaVantage{BaseURL: alphavantageURL, APIKey: apiKey, Client: http.DefaultClient}
}

func (a *AlphaVantage) Name() string { return "alphavantage" }

func (a *AlphaVantage) FetchAdjustedClose(ctx context.Context, symbol string, start, end time.Time) (PriceSeries, error) {
	q := url.Values{}
	q.Set("function", "TIME_SERIES_DAILY_ADJUSTED")
	q.Set("outputsize", "full")
	q.Set("symbol", symbol)
	q.Set("apikey", a.APIKey)

	px, err := getJSON(ctx, a.Client, a.BaseURL+"?"+q.Encode(), nil, AlphaData{})
	if err != nil {
		return PriceSeries{}, fetchErr(a.Name(), symbol, err)
	}
	if len(px.Hist) == 0 {
		for _, msg := range []string{px.Error, px.Note, px.Information} {
			if msg != "" {
				return PriceSeries{}, fetchErr(a.Name(), symbol, fmt.Errorf("%s", msg))
			}
		}
		return PriceSeries{}, fetchErr(a.Name(), symbol, ErrNoData)
	}

	s := PriceSeries{Symbol: symbol}
	for d, h := range px.Hist {
		t, err := time.Parse(Layout, d)
		if err != nil {
			return PriceSeries{}, fetchErr(a.Name(), symbol, fmt.Errorf("bad date %q: %w", d, err))
		}
		if t.Before(start) || t.After(end) {
			continue
		}
		raw := h.AdjustedClose
		if raw == "" {
			raw = h.Close
		}
		p, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return PriceSeries{}, fetchErr(a.Name(), symbol, fmt.Errorf("bad close %q on %s: %w", raw, d, err))
		}
		s.Points = append(s.Points, PricePoint{Date: t, Close: p})
	}
	if len(s.Points) == 0 {
		return PriceSeries{}, fetchErr(a.Name(), symbol, ErrNoData)
	}
	return Normalize(s), nil
}

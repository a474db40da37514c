package data

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

var yahooHosts = []string{"https://query1.finance.yahoo.com", "https://query2.finance.yahoo.com"}

// Yahoo fetches daily adjusted closes from the v8 chart API. Hosts are tried
// in order once; there is no retry loop.
type Yahoo struct {
	Hosts  []string
	Client *http.Client
}

func NewYahoo() *Yahoo {
	return &Yahoo{Hosts: yahooHosts, Client: http.DefaultClient}
}

func (y *Yahoo) Name() string { return "yahoo" }

func (y *Yahoo) FetchAdjustedClose(ctx context.Context, symbol string, start, end time.Time) (PriceSeries, error) {
	header := http.Header{}
	header.Set("User-Agent", "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.4 Safari/605.1.15")
	header.Set("Accept", "application/json, text/javascript, */*; q=0.01")
	header.Set("Accept-Language", "en-US,en;q=0.9")
	header.Set("Referer", fmt.Sprintf("https://finance.yahoo.com/quote/%s/chart", strings.ToUpper(symbol)))

	var yc yahooChartResp
	var lastErr error
	for _, host := range y.Hosts {
		url := fmt.Sprintf("%s/v8/finance/chart/%s?period1=%d&period2=%d&interval=1d&events=div,splits&includeAdjustedClose=true",
			host, symbol, start.Unix(), end.AddDate(0, 0, 1).Unix())
		yc, lastErr = getJSON(ctx, y.Client, url, header, yahooChartResp{})
		if lastErr == nil {
			break
		}
		if ctx.Err() != nil {
			break
		}
	}
	if lastErr != nil {
		return PriceSeries{}, fetchErr(y.Name(), symbol, lastErr)
	}
	if yc.Chart.Error != nil {
		return PriceSeries{}, fetchErr(y.Name(), symbol, fmt.Errorf("%s: %s", yc.Chart.Error.Code, yc.Chart.Error.Description))
	}
	if len(yc.Chart.Result) == 0 {
		return PriceSeries{}, fetchErr(y.Name(), symbol, ErrNoData)
	}

	r := yc.Chart.Result[0]
	closes, err := yahooCloses(r.Indicators.AdjClose, r.Indicators.Quote)
	if err != nil {
		return PriceSeries{}, fetchErr(y.Name(), symbol, err)
	}
	offset := time.Duration(r.Meta.GmtOffset) * time.Second

	s := PriceSeries{Symbol: symbol}
	for i, ts := range r.Timestamp {
		if i >= len(closes) || closes[i] == nil {
			continue
		}
		t := time.Unix(ts, 0).UTC().Add(offset)
		d := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
		if d.Before(start) || d.After(end) {
			continue
		}
		s.Points = append(s.Points, PricePoint{Date: d, Close: *closes[i]})
	}
	if len(s.Points) == 0 {
		return PriceSeries{}, fetchErr(y.Name(), symbol, ErrNoData)
	}
	return Normalize(s), nil
}

// prefer the adjusted close column, fall back to raw closes
func yahooCloses(adj []struct {
	AdjClose []*float64 `json:"adjclose"`
}, quote []struct {
	Close []*float64 `json:"close"`
}) ([]*float64, error) {
	if len(adj) > 0 && len(adj[0].AdjClose) > 0 {
		return adj[0].AdjClose, nil
	}
	if len(quote) > 0 && len(quote[0].Close) > 0 {
		return quote[0].Close, nil
	}
	return nil, errors.New("empty bars")
}

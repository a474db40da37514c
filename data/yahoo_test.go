package data

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// 2023-01-03, 2023-01-04, 2023-01-05 at 14:30 UTC
const yahooBody = `{"chart":{"result":[{
  "meta":{"symbol":"AAPL","gmtoffset":-18000,"timezone":"EST"},
  "timestamp":[1672756200,1672842600,1672929000],
  "indicators":{
    "quote":[{"close":[125.07,126.36,null]}],
    "adjclose":[{"adjclose":[124.2,125.5,null]}]
  }}],"error":null}}`

func TestYahooFetchAdjustedClose(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.True(t, strings.HasPrefix(r.URL.Path, "/v8/finance/chart/AAPL"))
		require.Equal(t, "1d", r.URL.Query().Get("interval"))
		_, _ = w.Write([]byte(yahooBody))
	}))
	defer srv.Close()

	y := &Yahoo{Hosts: []string{srv.URL}, Client: srv.Client()}
	s, err := y.FetchAdjustedClose(context.Background(), "AAPL", day("2023-01-01"), day("2023-01-31"))
	require.NoError(t, err)
	require.Equal(t, []PricePoint{
		{Date: day("2023-01-03"), Close: 124.2},
		{Date: day("2023-01-04"), Close: 125.5},
	}, s.Points)
}

func TestYahooFailsOverToSecondHost(t *testing.T) {
	down := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte("Edge: Too Many Requests"))
	}))
	defer down.Close()
	up := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(yahooBody))
	}))
	defer up.Close()

	y := &Yahoo{Hosts: []string{down.URL, up.URL}, Client: http.DefaultClient}
	s, err := y.FetchAdjustedClose(context.Background(), "AAPL", day("2023-01-01"), day("2023-01-31"))
	require.NoError(t, err)
	require.Len(t, s.Points, 2)
}

func TestYahooErrors(t *testing.T) {
	for _, test := range []struct {
		name string
		body string
	}{
		{name: "CHART_ERROR", body: `{"chart":{"result":null,"error":{"code":"Not Found","description":"No data found, symbol may be delisted"}}}`},
		{name: "EMPTY", body: `{"chart":{"result":[],"error":null}}`},
		{name: "HTML", body: `<html>blocked</html>`},
	} {
		t.Run(test.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(test.body))
			}))
			defer srv.Close()

			y := &Yahoo{Hosts: []string{srv.URL}, Client: srv.Client()}
			_, err := y.FetchAdjustedClose(context.Background(), "ZZZZ", day("2023-01-01"), day("2023-01-31"))
			var fe *DataFetchError
			require.True(t, errors.As(err, &fe))
			require.Equal(t, "yahoo", fe.Provider)
			require.Equal(t, "ZZZZ", fe.Symbol)
		})
	}
}

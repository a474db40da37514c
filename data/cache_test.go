package data

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type countingProvider struct {
	calls   int32
	release chan struct{}
}

func (c *countingProvider) FetchAdjustedClose(_ context.Context, symbol string, _, _ time.Time) (PriceSeries, error) {
	atomic.AddInt32(&c.calls, 1)
	if c.release != nil {
		<-c.release
	}
	return PriceSeries{Symbol: symbol, Points: []PricePoint{{Date: day("2023-01-02"), Close: 10}}}, nil
}

func TestCachedServesFromCacheUntilExpiry(t *testing.T) {
	inner := &countingProvider{}
	c := NewCached(inner, time.Minute)
	now := time.Date(2023, 1, 10, 0, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }

	ctx := context.Background()
	s, err := c.FetchAdjustedClose(ctx, "AAPL", day("2023-01-01"), day("2023-01-31"))
	require.NoError(t, err)
	s.Points[0].Close = -1 // callers get copies

	s, err = c.FetchAdjustedClose(ctx, "AAPL", day("2023-01-01"), day("2023-01-31"))
	require.NoError(t, err)
	require.Equal(t, 10.0, s.Points[0].Close)
	require.EqualValues(t, 1, atomic.LoadInt32(&inner.calls))

	_, err = c.FetchAdjustedClose(ctx, "AAPL", day("2023-01-01"), day("2023-02-28"))
	require.NoError(t, err)
	require.EqualValues(t, 2, atomic.LoadInt32(&inner.calls))

	now = now.Add(2 * time.Minute)
	_, err = c.FetchAdjustedClose(ctx, "AAPL", day("2023-01-01"), day("2023-01-31"))
	require.NoError(t, err)
	require.EqualValues(t, 3, atomic.LoadInt32(&inner.calls))
}

func TestCachedCollapsesConcurrentFetches(t *testing.T) {
	inner := &countingProvider{release: make(chan struct{})}
	c := NewCached(inner, time.Minute)

	n := 5
	var wg sync.WaitGroup
	errs := make(chan error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := c.FetchAdjustedClose(context.Background(), "TSLA", day("2023-01-01"), day("2023-01-31"))
			errs <- err
		}()
	}
	require.Eventually(t, func() bool { return atomic.LoadInt32(&inner.calls) == 1 }, time.Second, time.Millisecond)
	time.Sleep(20 * time.Millisecond)
	close(inner.release)
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}
	require.EqualValues(t, 1, atomic.LoadInt32(&inner.calls))
}

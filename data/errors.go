package data

import (
	"errors"
	"fmt"
)

var (
	ErrNoData = errors.New("no price data returned")
)

// DataFetchError is returned when a provider cannot deliver a symbol's
// history. It is passed through the pipeline unmodified.
type DataFetchError struct {
	Provider string
	Symbol   string
	Err      error
}

func (e *DataFetchError) Error() string {
	return fmt.Sprintf("fetch %s from %s: %v", e.Symbol, e.Provider, e.Err)
}

func (e *DataFetchError) Unwrap() error {
	return e.Err
}

func fetchErr(provider, symbol string, err error) error {
	var fe *DataFetchError
	if errors.As(err, &fe) {
		return err
	}
	return &DataFetchError{Provider: provider, Symbol: symbol, Err: err}
}

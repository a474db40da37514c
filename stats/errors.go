package stats

import "fmt"

// InsufficientDataError is returned when there are too few aligned
// observations to estimate a sample covariance. Symbol is empty when the
// shortfall applies to every instrument.
type InsufficientDataError struct {
	Symbol       string
	Observations int
	Required     int
}

func (e *InsufficientDataError) Error() string {
	if e.Symbol == "" {
		return fmt.Sprintf("insufficient data: %d aligned observations, need at least %d", e.Observations, e.Required)
	}
	return fmt.Sprintf("insufficient data for %s: %d observations, need at least %d", e.Symbol, e.Observations, e.Required)
}

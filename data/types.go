package data

import "time"

// A single adjusted close observation.
type PricePoint struct {
	Date  time.Time
	Close float64
}

// PriceSeries holds the adjusted closes of one instrument.
type PriceSeries struct {
	Symbol string
	Points []PricePoint
}

// PriceMatrix is the date-aligned table of closes. Prices[t][i] is the close
// of Symbols[i] on Dates[t]. Every cell is a valid positive price.
type PriceMatrix struct {
	Symbols []string
	Dates   []time.Time
	Prices  [][]float64
}

// Column returns the price history of instrument i.
func (m PriceMatrix) Column(i int) []float64 {
	out := make([]float64, len(m.Prices))
	for t := range m.Prices {
		out[t] = m.Prices[t][i]
	}
	return out
}

// Rows is the number of aligned observations.
func (m PriceMatrix) Rows() int {
	return len(m.Prices)
}

// alphavantage TIME_SERIES_DAILY_ADJUSTED payload (trimmed)
type Hist struct {
	Close         string `json:"4. close"`
	AdjustedClose string `json:"5. adjusted close"`
}

type AlphaData struct {
	Hist        map[string]Hist `json:"Time Series (Daily)"`
	Note        string          `json:"Note"`
	Information string          `json:"Information"`
	Error       string          `json:"Error Message"`
}

// yahooChartResp mirrors the Yahoo v8 chart response (trimmed to needed fields)
type yahooChartResp struct {
	Chart struct {
		Result []struct {
			Meta struct {
				Symbol    string `json:"symbol"`
				GmtOffset int    `json:"gmtoffset"`
				Timezone  string `json:"timezone"`
			} `json:"meta"`
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Close []*float64 `json:"close"`
				} `json:"quote"`
				AdjClose []struct {
					AdjClose []*float64 `json:"adjclose"`
				} `json:"adjclose"`
			} `json:"indicators"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

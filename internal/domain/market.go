package domain

import (
	"encoding/json"
	"fmt"
)

// MarketContextEntry represents one ticker in the GET /market_context response
type MarketContextEntry struct {
	Ticker     string     `json:"ticker" yaml:"ticker"`
	Price      float64    `json:"price" yaml:"price"`
	Indicators Indicators `json:"indicators" yaml:"indicators"`
}

// Indicators holds the technical indicator bundle for a ticker
type Indicators struct {
	RSI         float64 `json:"rsi" yaml:"rsi"`
	MACD        float64 `json:"macd" yaml:"macd"`
	VolumeSpike bool    `json:"volume_spike" yaml:"volume_spike"`
	Trend       Trend   `json:"trend" yaml:"trend"`
}

// Ranges used when fabricating market context (inclusive)
const (
	MinPrice = 100.0
	MaxPrice = 5000.0

	MinRSI = 20.0
	MaxRSI = 80.0

	MinMACD = -2.0
	MaxMACD = 2.0
)

// MarketTickers returns the ordered tickers covered by the market context.
func MarketTickers() []string {
	return []string{"SBER", "GAZP", "LKOH", "YNDX", "VTBR"}
}

// Trend is the categorical direction of a ticker
type Trend int

// Trend constants
const (
	TrendUp Trend = iota
	TrendDown
	TrendSideways
)

// Trends lists every Trend value.
var Trends = []Trend{TrendUp, TrendDown, TrendSideways}

func (t Trend) String() string {
	switch t {
	case TrendUp:
		return "up"
	case TrendDown:
		return "down"
	case TrendSideways:
		return "sideways"
	}
	return fmt.Sprintf("Trend(%d)", int(t))
}

// ParseTrend converts the wire name of a trend back to a Trend
func ParseTrend(s string) (Trend, error) {
	for _, t := range Trends {
		if t.String() == s {
			return t, nil
		}
	}
	return 0, fmt.Errorf("unknown trend: %q", s)
}

// MarshalJSON encodes the trend as its wire name
func (t Trend) MarshalJSON() ([]byte, error) {
	if _, err := ParseTrend(t.String()); err != nil {
		return nil, err
	}
	return json.Marshal(t.String())
}

// UnmarshalJSON decodes a trend from its wire name
func (t *Trend) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	parsed, err := ParseTrend(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// MarshalYAML encodes the trend as its wire name
func (t Trend) MarshalYAML() (interface{}, error) {
	return t.String(), nil
}

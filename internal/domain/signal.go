package domain

// Signal represents a mock AI trading signal shown on the dashboard
type Signal struct {
	Ticker      string  `json:"ticker"`
	Action      string  `json:"action"`
	Reason      string  `json:"reason"`
	Confidence  float64 `json:"confidence"` // 0..1
	ImpactScore int     `json:"impact_score"`
	AIProvider  string  `json:"ai_provider"`
	Timestamp   ISOTime `json:"timestamp"`
}

// SignalAction constants
const (
	ActionBuy  = "BUY"
	ActionSell = "SELL"
	ActionHold = "HOLD"
)

// AIProvider constants
const (
	ProviderGemini    = "gemini-2.5-flash"
	ProviderTechnical = "technical"
)

// IsBuy checks if the signal is a BUY signal
func (s Signal) IsBuy() bool {
	return s.Action == ActionBuy
}

// IsSell checks if the signal is a SELL signal
func (s Signal) IsSell() bool {
	return s.Action == ActionSell
}

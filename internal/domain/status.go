package domain

// StatusSnapshot represents the system status reported by GET /status
type StatusSnapshot struct {
	Status                  string   `json:"status" yaml:"status"`
	UptimeSeconds           int      `json:"uptime_seconds" yaml:"uptime_seconds"`
	TradingSessions         int      `json:"trading_sessions" yaml:"trading_sessions"`
	TotalTrades             int      `json:"total_trades" yaml:"total_trades"`
	VirtualPortfolioValue   int      `json:"virtual_portfolio_value" yaml:"virtual_portfolio_value"`
	VirtualReturnPercentage float64  `json:"virtual_return_percentage" yaml:"virtual_return_percentage"`
	TotalProfit             int      `json:"total_profit" yaml:"total_profit"`
	LastTradingTime         ISOTime  `json:"last_trading_time" yaml:"last_trading_time"`
	HybridMode              bool     `json:"hybrid_mode" yaml:"hybrid_mode"`
	TrackedTickers          []string `json:"tracked_tickers" yaml:"tracked_tickers"`
}

// SystemStatus constants
const (
	StatusOnline = "ONLINE"
)

// Ranges used when fabricating a StatusSnapshot (inclusive)
const (
	MinUptimeSeconds = 1000
	MaxUptimeSeconds = 10000

	MinTradingSessions = 50
	MaxTradingSessions = 200

	MinTotalTrades = 1000
	MaxTotalTrades = 5000

	MinPortfolioValue = 100000
	MaxPortfolioValue = 500000

	MinReturnPercentage = -5.0
	MaxReturnPercentage = 15.0

	MinTotalProfit = 10000
	MaxTotalProfit = 100000

	MinLastTradeAgeMinutes = 1
	MaxLastTradeAgeMinutes = 60
)

// TrackedTickers returns the ordered ticker list reported in every status snapshot.
// A fresh slice is returned so callers cannot alter the shared list.
func TrackedTickers() []string {
	return []string{"SBER", "GAZP", "LKOH", "YNDX", "VTBR", "ROSN", "MGNT"}
}

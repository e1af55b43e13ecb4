package domain

// TradeExecution is the acknowledgement returned by POST /execute_trade.
// It is not linked to any order, portfolio or ticker.
type TradeExecution struct {
	Success   bool    `json:"success" yaml:"success"`
	Message   string  `json:"message" yaml:"message"`
	Timestamp ISOTime `json:"timestamp" yaml:"timestamp"`
}

// TradeExecutedMessage is the acknowledgement message for every trade request
const TradeExecutedMessage = "Trade executed"

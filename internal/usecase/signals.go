package usecase

import (
	"time"

	"neurotrader/internal/domain"
)

// Signal generation ranges
const (
	MinSignalConfidence = 0.65
	MaxSignalConfidence = 0.95

	MinSignalImpact = 5
	MaxSignalImpact = 10
)

var signalActions = []string{domain.ActionBuy, domain.ActionSell, domain.ActionHold}

var signalProviders = []string{domain.ProviderGemini, domain.ProviderTechnical}

var signalReasons = map[string][]string{
	domain.ActionBuy: {
		"Strong bullish momentum with RSI below 30 (oversold)",
		"Breakout above key resistance level with high volume",
		"MACD bullish crossover confirmed",
		"Institutional accumulation detected",
	},
	domain.ActionSell: {
		"RSI above 70 indicates overbought conditions",
		"Support level broken with increased selling pressure",
		"MACD bearish divergence detected",
		"Profit-taking after strong rally",
	},
	domain.ActionHold: {
		"Market consolidation phase, waiting for clearer direction",
		"Mixed signals from technical indicators",
		"Low volatility suggests waiting for catalyst",
		"Position sizing optimal, no adjustment needed",
	},
}

// DefaultSignals returns the signals shown before any trading cycle has run
func DefaultSignals(now time.Time) []domain.Signal {
	return []domain.Signal{
		{
			Ticker:      "SBER",
			Action:      domain.ActionBuy,
			Reason:      "Technical analysis shows strong momentum with RSI at 68 and volume spike detected",
			Confidence:  0.82,
			ImpactScore: 8,
			AIProvider:  domain.ProviderGemini,
			Timestamp:   domain.NewISOTime(now.Add(-1 * time.Hour)),
		},
		{
			Ticker:      "GAZP",
			Action:      domain.ActionSell,
			Reason:      "MACD divergence suggests trend reversal, profit taking recommended",
			Confidence:  0.76,
			ImpactScore: 7,
			AIProvider:  domain.ProviderTechnical,
			Timestamp:   domain.NewISOTime(now.Add(-2 * time.Hour)),
		},
		{
			Ticker:      "LKOH",
			Action:      domain.ActionBuy,
			Reason:      "Breakout above resistance level with increasing volume",
			Confidence:  0.89,
			ImpactScore: 9,
			AIProvider:  domain.ProviderGemini,
			Timestamp:   domain.NewISOTime(now.Add(-3 * time.Hour)),
		},
	}
}

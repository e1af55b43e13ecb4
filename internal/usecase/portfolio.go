package usecase

import (
	"math"
	"math/rand/v2"
	"time"

	"neurotrader/internal/domain"
)

// BaselinePortfolioValue is the virtual portfolio's starting value in roubles
const BaselinePortfolioValue = 1000000

// Profit applied to the cached status after a mock trade
const (
	MaxBuyProfit = 5000.0
	MaxSellLoss  = 3000.0
)

// PerformanceDays labels the 7-day portfolio series, oldest first
var PerformanceDays = []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Today"}

// performanceNoise is the full width of the noise added to intermediate points
const performanceNoise = 20000.0

// PerformancePoint is one day of the portfolio performance series
type PerformancePoint struct {
	Day   string
	Value int
}

// FallbackStatus is shown when the API has never answered
func FallbackStatus(now time.Time) *domain.StatusSnapshot {
	return &domain.StatusSnapshot{
		Status:                  domain.StatusOnline,
		UptimeSeconds:           86400,
		TradingSessions:         42,
		TotalTrades:             1560,
		VirtualPortfolioValue:   1250000,
		VirtualReturnPercentage: 8.5,
		TotalProfit:             156000,
		LastTradingTime:         domain.NewISOTime(now),
		HybridMode:              true,
		TrackedTickers:          domain.TrackedTickers(),
	}
}

// ReturnPercentage is the portfolio return against BaselinePortfolioValue
func ReturnPercentage(value int) float64 {
	return (float64(value)/BaselinePortfolioValue - 1) * 100
}

// profitChange draws the mock P&L of a trade: gains for BUY, losses for
// SELL, nothing for HOLD.
func profitChange(action string, rng *rand.Rand) int {
	switch action {
	case domain.ActionBuy:
		return int(math.Round(rng.Float64() * MaxBuyProfit))
	case domain.ActionSell:
		return -int(math.Round(rng.Float64() * MaxSellLoss))
	default:
		return 0
	}
}

// applyTrade returns a copy of status after one executed trade
func applyTrade(status domain.StatusSnapshot, change int) *domain.StatusSnapshot {
	status.TotalTrades++
	status.TotalProfit += change
	status.VirtualPortfolioValue += change
	status.VirtualReturnPercentage = ReturnPercentage(status.VirtualPortfolioValue)
	status.TrackedTickers = append([]string(nil), status.TrackedTickers...)
	return &status
}

// performanceSeries walks linearly from BaselinePortfolioValue to current
// with noise on every point but the last, which is exactly current.
func performanceSeries(current int, rng *rand.Rand) []PerformancePoint {
	points := make([]PerformancePoint, len(PerformanceDays))
	last := len(PerformanceDays) - 1

	for i, day := range PerformanceDays {
		value := float64(current)
		if i < last {
			progress := float64(i) / float64(last)
			noise := (rng.Float64() - 0.5) * performanceNoise
			value = BaselinePortfolioValue + float64(current-BaselinePortfolioValue)*progress + noise
		}
		points[i] = PerformancePoint{Day: day, Value: int(math.Round(value))}
	}
	return points
}

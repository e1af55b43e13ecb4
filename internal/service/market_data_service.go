package service

import (
	"context"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"neurotrader/internal/domain"
)

// MockMarketService fabricates the Mock Data API payloads from a random source.
// It holds no state between calls other than the random source itself.
type MockMarketService struct {
	mu     sync.Mutex
	rng    *rand.Rand
	now    func() time.Time
	logger zerolog.Logger
}

// NewMockMarketService creates a MockMarketService seeded from the wall clock
func NewMockMarketService(logger zerolog.Logger) *MockMarketService {
	seed := uint64(time.Now().UnixNano())
	return NewMockMarketServiceWithSource(rand.NewPCG(seed, seed>>1), time.Now, logger)
}

// NewMockMarketServiceWithSource creates a MockMarketService with an explicit
// random source and clock
func NewMockMarketServiceWithSource(src rand.Source, now func() time.Time, logger zerolog.Logger) *MockMarketService {
	if now == nil {
		now = time.Now
	}
	return &MockMarketService{
		rng:    rand.New(src),
		now:    now,
		logger: logger,
	}
}

// Status builds a fresh status snapshot. No field is derived from another.
func (s *MockMarketService) Status(ctx context.Context) domain.StatusSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	lastTradeAge := time.Duration(s.intRange(domain.MinLastTradeAgeMinutes, domain.MaxLastTradeAgeMinutes)) * time.Minute

	return domain.StatusSnapshot{
		Status:                  domain.StatusOnline,
		UptimeSeconds:           s.intRange(domain.MinUptimeSeconds, domain.MaxUptimeSeconds),
		TradingSessions:         s.intRange(domain.MinTradingSessions, domain.MaxTradingSessions),
		TotalTrades:             s.intRange(domain.MinTotalTrades, domain.MaxTotalTrades),
		VirtualPortfolioValue:   s.intRange(domain.MinPortfolioValue, domain.MaxPortfolioValue),
		VirtualReturnPercentage: s.floatRange(domain.MinReturnPercentage, domain.MaxReturnPercentage),
		TotalProfit:             s.intRange(domain.MinTotalProfit, domain.MaxTotalProfit),
		LastTradingTime:         domain.NewISOTime(s.now().Add(-lastTradeAge)),
		HybridMode:              true,
		TrackedTickers:          domain.TrackedTickers(),
	}
}

// MarketContext builds one independent random entry per market ticker
func (s *MockMarketService) MarketContext(ctx context.Context) []domain.MarketContextEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	tickers := domain.MarketTickers()
	entries := make([]domain.MarketContextEntry, 0, len(tickers))
	for _, ticker := range tickers {
		entries = append(entries, domain.MarketContextEntry{
			Ticker: ticker,
			Price:  s.floatRange(domain.MinPrice, domain.MaxPrice),
			Indicators: domain.Indicators{
				RSI:         s.floatRange(domain.MinRSI, domain.MaxRSI),
				MACD:        s.floatRange(domain.MinMACD, domain.MaxMACD),
				VolumeSpike: s.rng.IntN(2) == 1,
				Trend:       domain.Trends[s.rng.IntN(len(domain.Trends))],
			},
		})
	}
	return entries
}

// ExecuteTrade acknowledges a trade request without executing anything
func (s *MockMarketService) ExecuteTrade(ctx context.Context) domain.TradeExecution {
	s.logger.Debug().Msg("Trade execution requested, acknowledging without side effects")

	return domain.TradeExecution{
		Success:   true,
		Message:   domain.TradeExecutedMessage,
		Timestamp: domain.NewISOTime(s.now()),
	}
}

// intRange returns a uniform integer in [min, max]; callers hold mu
func (s *MockMarketService) intRange(min, max int) int {
	return min + s.rng.IntN(max-min+1)
}

// floatRange returns a uniform float in [min, max); callers hold mu
func (s *MockMarketService) floatRange(min, max float64) float64 {
	return min + s.rng.Float64()*(max-min)
}

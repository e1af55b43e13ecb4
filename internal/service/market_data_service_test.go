package service

import (
	"context"
	"math/rand/v2"
	"reflect"
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/rs/zerolog"

	"neurotrader/internal/domain"
)

var fixedNow = time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)

func newSeededService(seed uint64) *MockMarketService {
	return NewMockMarketServiceWithSource(
		rand.NewPCG(seed, seed^0x9e3779b97f4a7c15),
		func() time.Time { return fixedNow },
		zerolog.Nop(),
	)
}

func newProperties() *gopter.Properties {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	parameters.Rng.Seed(time.Now().UnixNano())
	return gopter.NewProperties(parameters)
}

// Property: every status snapshot stays inside the documented ranges and
// carries the fixed ticker list.
func TestProperty_StatusWithinRanges(t *testing.T) {
	properties := newProperties()

	properties.Property("status fields are within their ranges", prop.ForAll(
		func(seed uint64) bool {
			s := newSeededService(seed).Status(context.Background())

			lastTrade := s.LastTradingTime.Time
			oldest := fixedNow.Add(-domain.MaxLastTradeAgeMinutes * time.Minute)
			newest := fixedNow.Add(-domain.MinLastTradeAgeMinutes * time.Minute)

			return s.Status == domain.StatusOnline &&
				between(s.UptimeSeconds, domain.MinUptimeSeconds, domain.MaxUptimeSeconds) &&
				between(s.TradingSessions, domain.MinTradingSessions, domain.MaxTradingSessions) &&
				between(s.TotalTrades, domain.MinTotalTrades, domain.MaxTotalTrades) &&
				between(s.VirtualPortfolioValue, domain.MinPortfolioValue, domain.MaxPortfolioValue) &&
				s.VirtualReturnPercentage >= domain.MinReturnPercentage &&
				s.VirtualReturnPercentage <= domain.MaxReturnPercentage &&
				between(s.TotalProfit, domain.MinTotalProfit, domain.MaxTotalProfit) &&
				!lastTrade.Before(oldest) && !lastTrade.After(newest) &&
				lastTrade.Sub(fixedNow)%time.Minute == 0 &&
				s.HybridMode &&
				reflect.DeepEqual(s.TrackedTickers, []string{"SBER", "GAZP", "LKOH", "YNDX", "VTBR", "ROSN", "MGNT"})
		},
		gen.UInt64(),
	))

	properties.TestingRun(t)
}

// Property: the market context always has five entries in ticker order with
// indicators inside their ranges.
func TestProperty_MarketContextShape(t *testing.T) {
	properties := newProperties()
	want := []string{"SBER", "GAZP", "LKOH", "YNDX", "VTBR"}

	properties.Property("market context has fixed tickers and bounded values", prop.ForAll(
		func(seed uint64) bool {
			entries := newSeededService(seed).MarketContext(context.Background())
			if len(entries) != len(want) {
				return false
			}
			for i, e := range entries {
				if e.Ticker != want[i] {
					return false
				}
				if e.Price < domain.MinPrice || e.Price > domain.MaxPrice {
					return false
				}
				if e.Indicators.RSI < domain.MinRSI || e.Indicators.RSI > domain.MaxRSI {
					return false
				}
				if e.Indicators.MACD < domain.MinMACD || e.Indicators.MACD > domain.MaxMACD {
					return false
				}
				switch e.Indicators.Trend {
				case domain.TrendUp, domain.TrendDown, domain.TrendSideways:
				default:
					return false
				}
			}
			return true
		},
		gen.UInt64(),
	))

	properties.TestingRun(t)
}

func TestStatusTrackedTickersAreIndependentCopies(t *testing.T) {
	svc := newSeededService(1)

	first := svc.Status(context.Background())
	first.TrackedTickers[0] = "XXXX"

	second := svc.Status(context.Background())
	if second.TrackedTickers[0] != "SBER" {
		t.Errorf("TrackedTickers[0] = %q, want SBER", second.TrackedTickers[0])
	}
}

func TestMarketContextCoversAllTrends(t *testing.T) {
	svc := newSeededService(42)
	seen := map[domain.Trend]bool{}
	spikes := map[bool]bool{}

	for i := 0; i < 200; i++ {
		for _, e := range svc.MarketContext(context.Background()) {
			seen[e.Indicators.Trend] = true
			spikes[e.Indicators.VolumeSpike] = true
		}
	}

	for _, trend := range domain.Trends {
		if !seen[trend] {
			t.Errorf("trend %s never generated", trend)
		}
	}
	if !spikes[true] || !spikes[false] {
		t.Errorf("volume_spike values seen = %v, want both", spikes)
	}
}

func TestExecuteTradeAlwaysSucceeds(t *testing.T) {
	svc := newSeededService(7)

	for i := 0; i < 10; i++ {
		ack := svc.ExecuteTrade(context.Background())
		if !ack.Success {
			t.Fatalf("ExecuteTrade().Success = false, want true")
		}
		if ack.Message != domain.TradeExecutedMessage {
			t.Errorf("ExecuteTrade().Message = %q, want %q", ack.Message, domain.TradeExecutedMessage)
		}
		if !ack.Timestamp.Equal(fixedNow) {
			t.Errorf("ExecuteTrade().Timestamp = %v, want %v", ack.Timestamp, fixedNow)
		}
	}
}

func between(v, min, max int) bool {
	return v >= min && v <= max
}

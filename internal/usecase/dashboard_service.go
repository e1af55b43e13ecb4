package usecase

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"neurotrader/internal/domain"
)

// MaxRecentSignals is how many signals the dashboard keeps, newest first
const MaxRecentSignals = 10

// ErrNoMarketData is returned when a trading cycle gets an empty market context
var ErrNoMarketData = errors.New("market context is empty")

// Snapshot is the dashboard's latest view of the Mock Data API
type Snapshot struct {
	Status    *domain.StatusSnapshot
	Market    []domain.MarketContextEntry
	UpdatedAt time.Time
	Err       error // last refresh error, nil after a successful refresh
}

// Loaded reports whether at least one refresh has completed
func (s Snapshot) Loaded() bool {
	return !s.UpdatedAt.IsZero() || s.Err != nil
}

// DashboardService feeds the dashboard panel from the Mock Data API
type DashboardService struct {
	client domain.MarketDataClient
	logger zerolog.Logger
	now    func() time.Time

	rngMu sync.Mutex
	rng   *rand.Rand

	mu       sync.RWMutex
	snapshot Snapshot
	signals  []domain.Signal
}

// NewDashboardService creates a new DashboardService
func NewDashboardService(client domain.MarketDataClient, logger zerolog.Logger) *DashboardService {
	seed := uint64(time.Now().UnixNano())
	return NewDashboardServiceWithSource(client, rand.NewPCG(seed, seed>>1), time.Now, logger)
}

// NewDashboardServiceWithSource creates a DashboardService with an explicit
// random source and clock
func NewDashboardServiceWithSource(client domain.MarketDataClient, src rand.Source, now func() time.Time, logger zerolog.Logger) *DashboardService {
	if now == nil {
		now = time.Now
	}
	return &DashboardService{
		client:  client,
		logger:  logger,
		now:     now,
		rng:     rand.New(src),
		signals: DefaultSignals(now()),
	}
}

// Refresh fetches status and market context. On failure the previous data
// is kept, or FallbackStatus when nothing was loaded yet, and the error is
// recorded on the snapshot.
func (s *DashboardService) Refresh(ctx context.Context) error {
	status, err := s.client.GetStatus(ctx)
	if err != nil {
		s.recordError(fmt.Errorf("failed to fetch status: %w", err))
		return err
	}

	market, err := s.client.GetMarketContext(ctx)
	if err != nil {
		s.recordError(fmt.Errorf("failed to fetch market context: %w", err))
		return err
	}

	s.mu.Lock()
	s.snapshot = Snapshot{
		Status:    status,
		Market:    market,
		UpdatedAt: s.now(),
	}
	s.mu.Unlock()

	s.logger.Debug().
		Str("status", status.Status).
		Int("portfolio_value", status.VirtualPortfolioValue).
		Int("tickers", len(market)).
		Msg("Dashboard refreshed")
	return nil
}

// EnsureLoaded refreshes synchronously if nothing has been loaded yet
func (s *DashboardService) EnsureLoaded(ctx context.Context) {
	if s.Snapshot().Loaded() {
		return
	}
	_ = s.Refresh(ctx)
}

// Snapshot returns the latest snapshot
func (s *DashboardService) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot
}

// RecentSignals returns a copy of the recent signals, newest first
func (s *DashboardService) RecentSignals() []domain.Signal {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Signal, len(s.signals))
	copy(out, s.signals)
	return out
}

// RunTradingCycle performs a mock AI analysis: it picks a ticker from the
// market context, produces a signal, records it and asks the API to execute it.
func (s *DashboardService) RunTradingCycle(ctx context.Context) (*domain.Signal, error) {
	s.logger.Info().Msg("=== Starting AI Trading Cycle ===")
	startTime := s.now()

	market, err := s.client.GetMarketContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch market context: %w", err)
	}
	if len(market) == 0 {
		return nil, ErrNoMarketData
	}

	signal := s.generateSignal(market)

	s.mu.Lock()
	s.signals = append([]domain.Signal{signal}, s.signals...)
	if len(s.signals) > MaxRecentSignals {
		s.signals = s.signals[:MaxRecentSignals]
	}
	s.snapshot.Market = market
	s.mu.Unlock()

	s.logger.Info().
		Str("ticker", signal.Ticker).
		Str("action", signal.Action).
		Float64("confidence", signal.Confidence).
		Int("impact", signal.ImpactScore).
		Str("provider", signal.AIProvider).
		Msg("Signal generated")

	ack, err := s.client.ExecuteTrade(ctx)
	if err != nil {
		return &signal, fmt.Errorf("failed to execute trade: %w", err)
	}

	change := s.drawProfitChange(signal.Action)
	s.mu.Lock()
	if s.snapshot.Status != nil {
		s.snapshot.Status = applyTrade(*s.snapshot.Status, change)
	}
	s.mu.Unlock()

	s.logger.Info().
		Bool("success", ack.Success).
		Int("profit_change", change).
		Str("message", ack.Message).
		Dur("elapsed", s.now().Sub(startTime)).
		Msg("=== AI Trading Cycle Complete ===")

	return &signal, nil
}

func (s *DashboardService) recordError(err error) {
	s.mu.Lock()
	s.snapshot.Err = err
	if s.snapshot.Status == nil {
		s.snapshot.Status = FallbackStatus(s.now())
	}
	s.mu.Unlock()

	s.logger.Warn().Err(err).Msg("Dashboard refresh failed, keeping previous data")
}

// Performance returns the 7-day portfolio series ending at the cached
// portfolio value
func (s *DashboardService) Performance() []PerformancePoint {
	current := BaselinePortfolioValue
	if status := s.Snapshot().Status; status != nil {
		current = status.VirtualPortfolioValue
	}

	s.rngMu.Lock()
	defer s.rngMu.Unlock()
	return performanceSeries(current, s.rng)
}

func (s *DashboardService) drawProfitChange(action string) int {
	s.rngMu.Lock()
	defer s.rngMu.Unlock()
	return profitChange(action, s.rng)
}

func (s *DashboardService) generateSignal(market []domain.MarketContextEntry) domain.Signal {
	s.rngMu.Lock()
	defer s.rngMu.Unlock()

	entry := market[s.rng.IntN(len(market))]
	action := signalActions[s.rng.IntN(len(signalActions))]
	reasons := signalReasons[action]

	return domain.Signal{
		Ticker:      entry.Ticker,
		Action:      action,
		Reason:      reasons[s.rng.IntN(len(reasons))],
		Confidence:  MinSignalConfidence + s.rng.Float64()*(MaxSignalConfidence-MinSignalConfidence),
		ImpactScore: MinSignalImpact + s.rng.IntN(MaxSignalImpact-MinSignalImpact+1),
		AIProvider:  signalProviders[s.rng.IntN(len(signalProviders))],
		Timestamp:   domain.NewISOTime(s.now()),
	}
}

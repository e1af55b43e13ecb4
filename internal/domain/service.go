package domain

import "context"

// MarketDataService defines the operations behind the Mock Data API
type MarketDataService interface {
	// Status builds a fresh status snapshot
	Status(ctx context.Context) StatusSnapshot

	// MarketContext builds one entry per market ticker, in ticker order
	MarketContext(ctx context.Context) []MarketContextEntry

	// ExecuteTrade acknowledges a trade request. It has no side effects.
	ExecuteTrade(ctx context.Context) TradeExecution
}

// MarketDataClient defines the dashboard's view of the Mock Data API
type MarketDataClient interface {
	GetStatus(ctx context.Context) (*StatusSnapshot, error)
	GetMarketContext(ctx context.Context) ([]MarketContextEntry, error)
	ExecuteTrade(ctx context.Context) (*TradeExecution, error)
}

package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"neurotrader/internal/domain"
)

// Root payload constants
const (
	RootMessage = "NeuroTrader AI Backend"
	RootStatus  = "running"
)

// MarketHandler serves the Mock Data API routes
type MarketHandler struct {
	marketService domain.MarketDataService
}

// NewMarketHandler creates a new MarketHandler
func NewMarketHandler(marketService domain.MarketDataService) *MarketHandler {
	return &MarketHandler{marketService: marketService}
}

// Root returns the static service banner
// GET /
func (h *MarketHandler) Root(c echo.Context) error {
	return c.JSON(http.StatusOK, RootResponse{
		Message: RootMessage,
		Status:  RootStatus,
	})
}

// GetStatus returns a freshly randomized status snapshot
// GET /status
func (h *MarketHandler) GetStatus(c echo.Context) error {
	return c.JSON(http.StatusOK, h.marketService.Status(c.Request().Context()))
}

// GetMarketContext returns the market context for every market ticker
// GET /market_context
func (h *MarketHandler) GetMarketContext(c echo.Context) error {
	return c.JSON(http.StatusOK, h.marketService.MarketContext(c.Request().Context()))
}

// ExecuteTrade acknowledges a trade. The request body is never read.
// POST /execute_trade
func (h *MarketHandler) ExecuteTrade(c echo.Context) error {
	return c.JSON(http.StatusOK, h.marketService.ExecuteTrade(c.Request().Context()))
}

package web

import (
	"fmt"
	"html/template"
	"strings"
	"time"

	"neurotrader/internal/domain"
	"neurotrader/internal/ui"
	"neurotrader/internal/usecase"
	"neurotrader/internal/utils"
)

var templateFuncs = template.FuncMap{
	"rub":     utils.FormatRub,
	"percent": utils.FormatPercent,
	"clock":   utils.FormatClock,
	"price":   func(v float64) string { return fmt.Sprintf("%.2f", v) },
	"indicator": func(v float64) string {
		return fmt.Sprintf("%.1f", v)
	},
}

// pageData is the root template context
type pageData struct {
	Title         string
	State         ui.State
	Nav           []ui.NavItem
	ActiveLabel   string
	MenuOpenHref  string
	MenuCloseHref string
	BackdropHref  string
	Error         string
	Placeholder   bool
	Dashboard     *dashboardView
}

type statCard struct {
	Label    string
	Value    string
	SubValue string
	Trend    string // up, down or empty
	Color    string // default, emerald, rose, violet
}

type tickerChip struct {
	Ticker    string
	Highlight bool
}

type marketRow struct {
	Ticker      string
	Price       float64
	RSI         float64
	MACD        float64
	VolumeSpike bool
	Trend       string
}

type signalView struct {
	domain.Signal
	ConfidencePct int
	Time          string
}

// riskLimit is a static risk management setting
type riskLimit struct {
	Label   string
	Percent string
	Width   int // bar fill, 0-100
	Color   string
}

var riskLimits = []riskLimit{
	{Label: "Stop Loss", Percent: "1.5%", Width: 25, Color: "rose"},
	{Label: "Take Profit", Percent: "6.0%", Width: 60, Color: "emerald"},
	{Label: "Max Drawdown", Percent: "3.2%", Width: 32, Color: "amber"},
}

// Performance chart geometry, in SVG user units
const (
	chartWidth   = 600.0
	chartHeight  = 200.0
	chartPadding = 16.0
)

type chartPoint struct {
	Day   string
	Value string
	X     string
	Y     string
}

// performanceChart is the 7-day portfolio series laid out for an inline SVG
type performanceChart struct {
	Points   []chartPoint
	Polyline string
	Start    string
	Current  string
}

// dashboardView is the functional dashboard panel
type dashboardView struct {
	StatusText    string
	Online        bool
	FetchError    string
	APIURL        string
	Uptime        string
	LastTrade     string
	UpdatedAt     string
	Cards         []statCard
	Tickers       []tickerChip
	Market        []marketRow
	Chart         performanceChart
	Risk          []riskLimit
	Signals       []signalView
	SignalCount   int
	AvgConfidence string
}

func newPageData(state ui.State, errMsg string) *pageData {
	active := state.Active.String()
	return &pageData{
		Title:         "NeuroTrader AI",
		State:         state,
		Nav:           state.Nav(),
		ActiveLabel:   state.Active.Label(),
		MenuOpenHref:  "/?tab=" + active + "&menu=open",
		MenuCloseHref: "/?tab=" + active + "&action=close",
		BackdropHref:  "/?tab=" + active + "&action=backdrop",
		Error:         errMsg,
	}
}

func newDashboardView(snap usecase.Snapshot, signals []domain.Signal, performance []usecase.PerformancePoint, apiURL string, now time.Time) *dashboardView {
	v := &dashboardView{
		StatusText:  "LOADING...",
		APIURL:      apiURL,
		UpdatedAt:   utils.FormatClock(snap.UpdatedAt),
		Chart:       newPerformanceChart(performance),
		Risk:        riskLimits,
		SignalCount: len(signals),
	}

	status := snap.Status
	if snap.Err != nil {
		v.FetchError = snap.Err.Error()
		if status == nil {
			status = usecase.FallbackStatus(now)
		}
	}

	if s := status; s != nil {
		v.StatusText = s.Status
		v.Online = s.Status == domain.StatusOnline
		v.Uptime = utils.FormatUptime(s.UptimeSeconds)
		v.LastTrade = utils.FormatAgo(s.LastTradingTime.Time, now)
		v.Cards = statCards(s)
		for _, t := range s.TrackedTickers {
			v.Tickers = append(v.Tickers, tickerChip{Ticker: t, Highlight: t == "SBER" || t == "LKOH"})
		}
	}

	for _, e := range snap.Market {
		v.Market = append(v.Market, marketRow{
			Ticker:      e.Ticker,
			Price:       e.Price,
			RSI:         e.Indicators.RSI,
			MACD:        e.Indicators.MACD,
			VolumeSpike: e.Indicators.VolumeSpike,
			Trend:       e.Indicators.Trend.String(),
		})
	}

	var confidence float64
	for _, sig := range signals {
		confidence += sig.Confidence
		v.Signals = append(v.Signals, signalView{
			Signal:        sig,
			ConfidencePct: int(sig.Confidence*100 + 0.5),
			Time:          utils.FormatClock(sig.Timestamp.Time),
		})
	}
	if len(signals) > 0 {
		v.AvgConfidence = fmt.Sprintf("%.1f%%", confidence/float64(len(signals))*100)
	}
	return v
}

func newPerformanceChart(points []usecase.PerformancePoint) performanceChart {
	chart := performanceChart{Start: utils.FormatRub(usecase.BaselinePortfolioValue)}
	if len(points) == 0 {
		return chart
	}
	chart.Current = utils.FormatRub(float64(points[len(points)-1].Value))

	lo, hi := points[0].Value, points[0].Value
	for _, p := range points {
		lo = min(lo, p.Value)
		hi = max(hi, p.Value)
	}

	stepX := 0.0
	if len(points) > 1 {
		stepX = (chartWidth - 2*chartPadding) / float64(len(points)-1)
	}

	coords := make([]string, 0, len(points))
	for i, p := range points {
		y := chartHeight / 2
		if hi > lo {
			y = chartHeight - chartPadding - float64(p.Value-lo)/float64(hi-lo)*(chartHeight-2*chartPadding)
		}
		x := fmt.Sprintf("%.1f", chartPadding+float64(i)*stepX)
		yStr := fmt.Sprintf("%.1f", y)

		coords = append(coords, x+","+yStr)
		chart.Points = append(chart.Points, chartPoint{
			Day:   p.Day,
			Value: utils.FormatRub(float64(p.Value)),
			X:     x,
			Y:     yStr,
		})
	}
	chart.Polyline = strings.Join(coords, " ")
	return chart
}

func statCards(s *domain.StatusSnapshot) []statCard {
	returnTrend, returnColor := "down", "rose"
	if s.VirtualReturnPercentage >= 0 {
		returnTrend, returnColor = "up", "emerald"
	}
	profitTrend := "down"
	if s.TotalProfit >= 0 {
		profitTrend = "up"
	}

	return []statCard{
		{
			Label:    "Portfolio Value",
			Value:    utils.FormatRub(float64(s.VirtualPortfolioValue)),
			SubValue: utils.FormatPercent(s.VirtualReturnPercentage),
			Trend:    returnTrend,
			Color:    returnColor,
		},
		{
			Label:    "Total Profit",
			Value:    utils.FormatRub(float64(s.TotalProfit)),
			SubValue: fmt.Sprintf("%+.1f%%", float64(s.TotalProfit)/10000),
			Trend:    profitTrend,
			Color:    "violet",
		},
		{
			Label:    "Total Trades",
			Value:    fmt.Sprintf("%d", s.TotalTrades),
			SubValue: fmt.Sprintf("Sessions: %d", s.TradingSessions),
			Color:    "default",
		},
		{
			Label:    "AI Model",
			Value:    "Gemini 2.5 Flash",
			SubValue: hybridLabel(s.HybridMode),
			Color:    "default",
		},
	}
}

func hybridLabel(hybrid bool) string {
	if hybrid {
		return "Hybrid Mode"
	}
	return "Single Model"
}

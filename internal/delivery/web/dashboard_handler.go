package web

import (
	"context"
	"embed"
	"html/template"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"

	"neurotrader/internal/domain"
	"neurotrader/internal/ui"
	"neurotrader/internal/usecase"
)

//go:embed templates/*.html
var templateFS embed.FS

// DashboardFeed is the data source of the dashboard panel
type DashboardFeed interface {
	EnsureLoaded(ctx context.Context)
	Refresh(ctx context.Context) error
	Snapshot() usecase.Snapshot
	RecentSignals() []domain.Signal
	Performance() []usecase.PerformancePoint
	RunTradingCycle(ctx context.Context) (*domain.Signal, error)
}

// DashboardHandler renders the dashboard shell
type DashboardHandler struct {
	templates *template.Template
	feed      DashboardFeed
	apiURL    string
	now       func() time.Time
	logger    zerolog.Logger
}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler(feed DashboardFeed, apiURL string, logger zerolog.Logger) (*DashboardHandler, error) {
	templates, err := ParseTemplates()
	if err != nil {
		return nil, err
	}
	return &DashboardHandler{
		templates: templates,
		feed:      feed,
		apiURL:    apiURL,
		now:       time.Now,
		logger:    logger,
	}, nil
}

// ParseTemplates parses the embedded shell templates
func ParseTemplates() (*template.Template, error) {
	return template.New("").Funcs(templateFuncs).ParseFS(templateFS, "templates/*.html")
}

// StateFromQuery replays the UI events carried in the query onto the
// initial shell state: tab=<name> selects a tab, menu=open toggles the overlay
// and action=close|backdrop closes it.
func StateFromQuery(q url.Values) ui.State {
	var actions []ui.Action
	if name := q.Get("tab"); name != "" {
		tab, _ := ui.ParseTab(name)
		actions = append(actions, ui.SelectTab(tab))
	}
	if q.Get("menu") == "open" {
		actions = append(actions, ui.ToggleMenu())
	}
	switch q.Get("action") {
	case "close":
		actions = append(actions, ui.CloseMenu())
	case "backdrop":
		actions = append(actions, ui.ClickBackdrop())
	}
	return ui.Run(ui.Initial(), actions...)
}

// GET / - Render the shell for the requested tab
func (h *DashboardHandler) HandleIndex(w http.ResponseWriter, r *http.Request) {
	state := StateFromQuery(r.URL.Query())
	data := newPageData(state, r.URL.Query().Get("error"))

	switch state.Panel() {
	case ui.PanelDashboard:
		h.feed.EnsureLoaded(r.Context())
		data.Dashboard = newDashboardView(h.feed.Snapshot(), h.feed.RecentSignals(), h.feed.Performance(), h.apiURL, h.now())
	case ui.PanelPlaceholder:
		data.Placeholder = true
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.templates.ExecuteTemplate(w, "shell", data); err != nil {
		h.logger.Error().Err(err).Msg("Failed to render shell")
	}
}

// POST /refresh - Refresh the dashboard data now
func (h *DashboardHandler) HandleRefresh(w http.ResponseWriter, r *http.Request) {
	if err := h.feed.Refresh(r.Context()); err != nil {
		redirectWithError(w, r, "Demo mode: API unreachable, showing last known data")
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// POST /analyze - Run one AI trading cycle
func (h *DashboardHandler) HandleAnalyze(w http.ResponseWriter, r *http.Request) {
	if _, err := h.feed.RunTradingCycle(r.Context()); err != nil {
		h.logger.Warn().Err(err).Msg("AI trading cycle failed")
		redirectWithError(w, r, "Demo mode: Mock analysis complete")
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// GET /health - Liveness probe
func (h *DashboardHandler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "healthy", "service": "neurotrader-dashboard"}`))
}

func redirectWithError(w http.ResponseWriter, r *http.Request, message string) {
	http.Redirect(w, r, "/?"+url.Values{"error": {message}}.Encode(), http.StatusSeeOther)
}

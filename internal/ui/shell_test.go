package ui

import "testing"

func TestInitialState(t *testing.T) {
	s := Initial()
	if s.Active != TabDashboard {
		t.Errorf("Initial().Active = %v, want dashboard", s.Active)
	}
	if s.MenuOpen {
		t.Error("Initial().MenuOpen = true, want false")
	}
	if s.Panel() != PanelDashboard {
		t.Errorf("Initial().Panel() = %v, want PanelDashboard", s.Panel())
	}
}

func TestSelectTab(t *testing.T) {
	tests := []struct {
		desc    string
		actions []Action
		want    State
		panel   Panel
	}{
		{
			desc:    "trades shows placeholder",
			actions: []Action{SelectTab(TabTrades)},
			want:    State{Active: TabTrades},
			panel:   PanelPlaceholder,
		},
		{
			desc:    "analytics shows placeholder",
			actions: []Action{SelectTab(TabAnalytics)},
			want:    State{Active: TabAnalytics},
			panel:   PanelPlaceholder,
		},
		{
			desc:    "settings shows placeholder",
			actions: []Action{SelectTab(TabSettings)},
			want:    State{Active: TabSettings},
			panel:   PanelPlaceholder,
		},
		{
			desc:    "back to dashboard",
			actions: []Action{SelectTab(TabSettings), SelectTab(TabDashboard)},
			want:    State{Active: TabDashboard},
			panel:   PanelDashboard,
		},
		{
			desc:    "invalid tab keeps active tab",
			actions: []Action{SelectTab(TabAnalytics), SelectTab(Tab(42))},
			want:    State{Active: TabAnalytics},
			panel:   PanelPlaceholder,
		},
	}

	for _, test := range tests {
		got := Run(Initial(), test.actions...)
		if got != test.want {
			t.Errorf("TestSelectTab(%s): got %+v, want %+v", test.desc, got, test.want)
		}
		if got.Panel() != test.panel {
			t.Errorf("TestSelectTab(%s): panel = %v, want %v", test.desc, got.Panel(), test.panel)
		}
	}
}

func TestMenuOverlay(t *testing.T) {
	tests := []struct {
		desc    string
		actions []Action
		want    State
	}{
		{
			desc:    "toggle opens",
			actions: []Action{ToggleMenu()},
			want:    State{Active: TabDashboard, MenuOpen: true},
		},
		{
			desc:    "toggle twice closes",
			actions: []Action{ToggleMenu(), ToggleMenu()},
			want:    State{Active: TabDashboard},
		},
		{
			desc:    "backdrop closes",
			actions: []Action{ToggleMenu(), ClickBackdrop()},
			want:    State{Active: TabDashboard},
		},
		{
			desc:    "close control closes",
			actions: []Action{ToggleMenu(), CloseMenu()},
			want:    State{Active: TabDashboard},
		},
		{
			desc:    "nav selection closes and switches in one action",
			actions: []Action{ToggleMenu(), SelectTab(TabTrades)},
			want:    State{Active: TabTrades},
		},
		{
			desc:    "overlay does not change active tab",
			actions: []Action{SelectTab(TabSettings), ToggleMenu()},
			want:    State{Active: TabSettings, MenuOpen: true},
		},
		{
			desc:    "closing a closed menu is a no-op",
			actions: []Action{CloseMenu(), ClickBackdrop()},
			want:    State{Active: TabDashboard},
		},
	}

	for _, test := range tests {
		if got := Run(Initial(), test.actions...); got != test.want {
			t.Errorf("TestMenuOverlay(%s): got %+v, want %+v", test.desc, got, test.want)
		}
	}
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	s := State{Active: TabTrades, MenuOpen: true}
	_ = Apply(s, SelectTab(TabDashboard))
	if s != (State{Active: TabTrades, MenuOpen: true}) {
		t.Errorf("input state mutated to %+v", s)
	}
}

func TestParseTab(t *testing.T) {
	for _, tab := range Tabs {
		got, ok := ParseTab(tab.String())
		if !ok || got != tab {
			t.Errorf("ParseTab(%q) = %v, %v, want %v, true", tab.String(), got, ok, tab)
		}
	}

	got, ok := ParseTab("portfolio")
	if ok || got != TabDashboard {
		t.Errorf("ParseTab(portfolio) = %v, %v, want dashboard, false", got, ok)
	}
}

func TestNav(t *testing.T) {
	items := State{Active: TabAnalytics}.Nav()
	if len(items) != 4 {
		t.Fatalf("len(Nav()) = %d, want 4", len(items))
	}

	wantLabels := []string{"Dashboard", "Trades", "Analytics", "Settings"}
	for i, item := range items {
		if item.Label != wantLabels[i] {
			t.Errorf("Nav()[%d].Label = %q, want %q", i, item.Label, wantLabels[i])
		}
		if item.Active != (item.Tab == TabAnalytics) {
			t.Errorf("Nav()[%d].Active = %v", i, item.Active)
		}
	}
	if items[1].Href != "/?tab=trades" {
		t.Errorf("Nav()[1].Href = %q", items[1].Href)
	}
}

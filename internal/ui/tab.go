// Package ui holds the dashboard shell: which navigation tab is active and
// whether the mobile navigation overlay is open.
package ui

import "fmt"

// Tab selects the panel shown in the main content area
type Tab int

// Tab constants, in sidebar order
const (
	TabDashboard Tab = iota
	TabTrades
	TabAnalytics
	TabSettings
)

// Tabs lists every tab in sidebar order.
var Tabs = []Tab{TabDashboard, TabTrades, TabAnalytics, TabSettings}

// String returns the wire name used in URLs.
func (t Tab) String() string {
	switch t {
	case TabDashboard:
		return "dashboard"
	case TabTrades:
		return "trades"
	case TabAnalytics:
		return "analytics"
	case TabSettings:
		return "settings"
	}
	return fmt.Sprintf("Tab(%d)", int(t))
}

// Label returns the sidebar label.
func (t Tab) Label() string {
	switch t {
	case TabDashboard:
		return "Dashboard"
	case TabTrades:
		return "Trades"
	case TabAnalytics:
		return "Analytics"
	case TabSettings:
		return "Settings"
	}
	return t.String()
}

// Valid reports whether t is one of the four tabs.
func (t Tab) Valid() bool {
	return t >= TabDashboard && t <= TabSettings
}

// ParseTab maps a wire name to a Tab. Unknown names fall back to TabDashboard
// and report ok == false.
func ParseTab(s string) (tab Tab, ok bool) {
	for _, t := range Tabs {
		if t.String() == s {
			return t, true
		}
	}
	return TabDashboard, false
}

// Panel identifies what the content area renders.
type Panel int

const (
	// PanelDashboard is the functional dashboard view.
	PanelDashboard Panel = iota
	// PanelPlaceholder is the shared "under construction" view.
	PanelPlaceholder
)

// Panel returns the panel rendered for t. Only the dashboard is implemented.
func (t Tab) Panel() Panel {
	switch t {
	case TabDashboard:
		return PanelDashboard
	case TabTrades, TabAnalytics, TabSettings:
		return PanelPlaceholder
	}
	return PanelPlaceholder
}

package ui

// State is the shell state. It is a value: Apply never mutates its input.
type State struct {
	// Active is the selected navigation tab.
	Active Tab
	// MenuOpen is true while the mobile navigation overlay is shown.
	MenuOpen bool
}

// Initial returns the state on first load.
func Initial() State {
	return State{Active: TabDashboard}
}

// ActionType enumerates the shell events.
type ActionType int

const (
	// ActSelectTab selects Action.Tab and closes the overlay.
	ActSelectTab ActionType = iota
	// ActToggleMenu flips the overlay.
	ActToggleMenu
	// ActCloseMenu closes the overlay from its explicit close control.
	ActCloseMenu
	// ActClickBackdrop closes the overlay from a click on its backdrop.
	ActClickBackdrop
)

// Action is a single shell event.
type Action struct {
	Type ActionType
	Tab  Tab
}

// SelectTab returns the action for clicking a sidebar entry.
func SelectTab(t Tab) Action {
	return Action{Type: ActSelectTab, Tab: t}
}

// ToggleMenu returns the action for the hamburger button.
func ToggleMenu() Action {
	return Action{Type: ActToggleMenu}
}

// CloseMenu returns the action for the overlay's close button.
func CloseMenu() Action {
	return Action{Type: ActCloseMenu}
}

// ClickBackdrop returns the action for a click on the overlay backdrop.
func ClickBackdrop() Action {
	return Action{Type: ActClickBackdrop}
}

// Apply returns the state after action. Selecting an invalid tab leaves the
// active tab unchanged but still closes the overlay.
func Apply(s State, action Action) State {
	switch action.Type {
	case ActSelectTab:
		if action.Tab.Valid() {
			s.Active = action.Tab
		}
		s.MenuOpen = false
	case ActToggleMenu:
		s.MenuOpen = !s.MenuOpen
	case ActCloseMenu, ActClickBackdrop:
		s.MenuOpen = false
	}
	return s
}

// Run applies actions in order starting from s.
func Run(s State, actions ...Action) State {
	for _, a := range actions {
		s = Apply(s, a)
	}
	return s
}

// Panel is the panel for the active tab.
func (s State) Panel() Panel {
	return s.Active.Panel()
}

// NavItem is a sidebar entry as rendered.
type NavItem struct {
	Tab    Tab
	Label  string
	Href   string
	Active bool
}

// Nav returns the sidebar entries for s in sidebar order.
func (s State) Nav() []NavItem {
	items := make([]NavItem, 0, len(Tabs))
	for _, t := range Tabs {
		items = append(items, NavItem{
			Tab:    t,
			Label:  t.Label(),
			Href:   "/?tab=" + t.String(),
			Active: t == s.Active,
		})
	}
	return items
}

// Package shell tracks which role the visitor picked and which view is showing,
// and carries that state between requests in a signed cookie.
package shell

import (
	"github.com/spec-kit/nagarseva/internal/domain"
	apperrors "github.com/spec-kit/nagarseva/pkg/util/errorutil"
)

// State is the top level UI state.
type State struct {
	Role domain.Role
	View domain.View
}

// Initial is the state of a fresh visit: no role, landing page.
func Initial() State {
	return State{Role: domain.RoleNone, View: domain.ViewLanding}
}

// SelectRole switches to role and opens its home view.
func (s State) SelectRole(role domain.Role) (State, error) {
	switch role {
	case domain.RoleCitizen:
		return State{Role: role, View: domain.ViewCitizen}, nil
	case domain.RoleAdmin:
		return State{Role: role, View: domain.ViewAdmin}, nil
	}
	return s, apperrors.NewValidationError("unknown role", map[string]any{"role": string(role)})
}

// Navigate opens view. Unknown views fall back to landing, and nothing but
// landing is reachable before a role is picked.
func (s State) Navigate(view domain.View) State {
	if !view.Valid() || s.Role == domain.RoleNone {
		view = domain.ViewLanding
	}
	s.View = view
	return s
}

// Logout forgets the role.
func (s State) Logout() State {
	return Initial()
}

// ShowsHeader reports whether the header is rendered for this state.
func (s State) ShowsHeader() bool {
	return s.View != domain.ViewLanding
}

var (
	citizenNav = []domain.NavItem{
		{View: domain.ViewCitizen, Label: "Report", Icon: "home"},
		{View: domain.ViewMap, Label: "Map", Icon: "map"},
		{View: domain.ViewCommunity, Label: "Community", Icon: "users"},
	}
	adminNav = []domain.NavItem{
		{View: domain.ViewAdmin, Label: "Dashboard", Icon: "home"},
		{View: domain.ViewMap, Label: "Live Map", Icon: "map"},
		{View: domain.ViewAnalytics, Label: "Analytics", Icon: "chart"},
	}
)

// NavItems returns the header navigation for role. Anything but citizen gets the
// admin set.
func NavItems(role domain.Role) []domain.NavItem {
	items := adminNav
	if role == domain.RoleCitizen {
		items = citizenNav
	}
	return append([]domain.NavItem(nil), items...)
}

// Identity is the name block shown in the header.
type Identity struct {
	DisplayName string
	Subtitle    string
}

// IdentityFor returns the header name block for role.
func IdentityFor(role domain.Role) Identity {
	if role == domain.RoleCitizen {
		return Identity{DisplayName: "Citizen User", Subtitle: "Level 5 Reporter"}
	}
	return Identity{DisplayName: "Municipal Officer", Subtitle: "Admin"}
}

package domain

// Role is the audience the visitor picked on the landing page.
type Role string

const (
	RoleNone    Role = ""
	RoleCitizen Role = "citizen"
	RoleAdmin   Role = "admin"
)

// Valid reports whether r names a selectable role. RoleNone is not selectable.
func (r Role) Valid() bool {
	return r == RoleCitizen || r == RoleAdmin
}

// View identifies one of the six top level pages.
type View string

const (
	ViewLanding   View = "landing"
	ViewCitizen   View = "citizen"
	ViewAdmin     View = "admin"
	ViewMap       View = "map"
	ViewCommunity View = "community"
	ViewAnalytics View = "analytics"
)

// Valid reports whether v is a known view.
func (v View) Valid() bool {
	switch v {
	case ViewLanding, ViewCitizen, ViewAdmin, ViewMap, ViewCommunity, ViewAnalytics:
		return true
	}
	return false
}

// NavItem is one entry of the header navigation.
type NavItem struct {
	View  View
	Label string
	Icon  string
}

package navpanel

import g "maragu.dev/gomponents"

// Widgets is the design-system primitive set the panel is composed from.
// Implementations must skip nil children.
type Widgets interface {
	MainNav(props MainNavProps, children ...g.Node) g.Node
	NavBrand(props BrandProps) g.Node
	Divider() g.Node
	NavSections(children ...g.Node) g.Node
	NavSection(label string, children ...g.Node) g.Node
	NavLink(props LinkProps) g.Node
	NavUser(props UserProps) g.Node
	UserPopover(props PopoverProps, children ...g.Node) g.Node
	FocusTrap(escapeAction string, children ...g.Node) g.Node
	PopoverLink(props PopoverLinkProps) g.Node
	NavCondense(props CondenseProps) g.Node
}

type MainNavProps struct {
	ID            string
	Condensed     bool
	UnmountAction string
}

type BrandProps struct {
	Title     string
	Workplace string
	LogoURL   string
	Condensed bool
}

type LinkProps struct {
	To        string
	Label     string
	Icon      g.Node
	Badge     string
	Active    bool
	Condensed bool
}

type UserProps struct {
	ID          string
	Initials    string
	DisplayName string
	Expanded    bool
	Condensed   bool
	// ToggleAction is the endpoint that flips the popover.
	ToggleAction string
}

type PopoverProps struct {
	FocusOutAction string
}

type PopoverLinkProps struct {
	To     string
	Label  string
	Icon   g.Node
	Danger bool
	// Action, when set, is posted instead of following To.
	Action string
}

type CondenseProps struct {
	Condensed bool
	Label     string
	Action    string
}

// Package navpanel implements the admin left navigation panel: brand block,
// content links, user menu and the collapse toggle.
package navpanel

import "context"

// Keys, ids and paths shared with the HTTP layer and the widget set.
const (
	CondensedPreferenceKey = "navbar-condensed"
	MainNavID              = "main-nav"
	UserButtonID           = "main-nav-user-button"

	ContentManagerPath = "/content-manager"
	ProfilePath        = "/me"
	LoginPath          = "/auth/login"
)

// Message is a localizable label with its inline default.
type Message struct {
	ID             string `yaml:"id"`
	DefaultMessage string `yaml:"default"`
}

// NavLinkEntry is one navigable item of a link group.
type NavLinkEntry struct {
	To                 string
	Icon               IconID
	IntlLabel          Message
	NotificationsCount *int
}

// Badge returns the badge text for the entry, or "" when no badge should show.
// An absent count and a zero count are treated alike.
func (e NavLinkEntry) Badge() string {
	if e.NotificationsCount == nil || *e.NotificationsCount <= 0 {
		return ""
	}
	return itoa(*e.NotificationsCount)
}

// PreferenceStore persists the condensed flag. Get returns false for keys never set.
type PreferenceStore interface {
	Get(ctx context.Context, key string) (bool, error)
	Set(ctx context.Context, key string, value bool) error
}

// SessionClearer wipes the application session on logout.
type SessionClearer interface {
	ClearAppStorage()
}

type UserInfo interface {
	DisplayName() string
}

type Configuration interface {
	MenuLogo() string
}

type Localizer interface {
	FormatMessage(id, defaultMessage string) string
}

// LinkSource supplies the two dynamic link groups.
type LinkSource interface {
	PluginsSectionLinks() []NavLinkEntry
	GeneralSectionLinks() []NavLinkEntry
}

// FocusChange describes where focus went when it left the user popover.
type FocusChange struct {
	RelatedInside   bool   `form:"related_inside"`
	RelatedParentID string `form:"related_parent_id"`
}

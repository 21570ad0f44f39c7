package navpanel

import (
	"path"

	"github.com/google/uuid"
)

// Actions holds the endpoints a mounted panel posts its events to.
type Actions struct {
	ToggleUserMenu string
	FocusOut       string
	Escape         string
	Logout         string
	Condense       string
	Unmount        string
}

// ActionsFor builds the endpoint set of mount id under base (e.g. "/nav").
func ActionsFor(base string, id uuid.UUID) Actions {
	root := path.Join(base, id.String())
	return Actions{
		ToggleUserMenu: root + "/user-menu",
		FocusOut:       root + "/focusout",
		Escape:         root + "/escape",
		Logout:         root + "/logout",
		Condense:       root + "/condense",
		Unmount:        root + "/unmount",
	}
}

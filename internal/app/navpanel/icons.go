package navpanel

import (
	"fmt"

	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"
)

// IconID names one of the icons the panel knows how to draw.
type IconID string

const (
	IconWrite        IconID = "write"
	IconExit         IconID = "exit"
	IconPlugin       IconID = "plugin"
	IconPuzzle       IconID = "puzzle"
	IconCog          IconID = "cog"
	IconUsers        IconID = "users"
	IconLayer        IconID = "layer"
	IconShoppingCart IconID = "shopping-cart"
	IconUpload       IconID = "upload"
	IconBook         IconID = "book"
	IconLock         IconID = "lock"
	IconBell         IconID = "bell"
	IconHouse        IconID = "house"
)

// Inner SVG markup, 24x24 viewBox, stroke icons.
var iconPaths = map[IconID]string{
	IconWrite:        `<path d="M12 20h9"/><path d="M16.5 3.5a2.1 2.1 0 0 1 3 3L7 19l-4 1 1-4Z"/>`,
	IconExit:         `<path d="M9 21H5a2 2 0 0 1-2-2V5a2 2 0 0 1 2-2h4"/><path d="m16 17 5-5-5-5"/><path d="M21 12H9"/>`,
	IconPlugin:       `<path d="M12 22v-5"/><path d="M9 8V2"/><path d="M15 8V2"/><path d="M18 8v5a4 4 0 0 1-4 4h-4a4 4 0 0 1-4-4V8Z"/>`,
	IconPuzzle:       `<path d="M19.4 13a2.5 2.5 0 1 0 0-2H17V7a1 1 0 0 0-1-1h-4V3.6a2.5 2.5 0 1 0-2 0V6H6a1 1 0 0 0-1 1v4h2.6a2.5 2.5 0 1 1 0 2H5v4a1 1 0 0 0 1 1h10a1 1 0 0 0 1-1v-4Z"/>`,
	IconCog:          `<circle cx="12" cy="12" r="3"/><path d="M12 2v3M12 19v3M4.9 4.9l2.1 2.1M17 17l2.1 2.1M2 12h3M19 12h3M4.9 19.1 7 17M17 7l2.1-2.1"/>`,
	IconUsers:        `<path d="M16 21v-2a4 4 0 0 0-4-4H6a4 4 0 0 0-4 4v2"/><circle cx="9" cy="7" r="4"/><path d="M22 21v-2a4 4 0 0 0-3-3.9"/><path d="M16 3.1a4 4 0 0 1 0 7.8"/>`,
	IconLayer:        `<path d="m12 2 10 5-10 5L2 7Z"/><path d="m2 17 10 5 10-5"/><path d="m2 12 10 5 10-5"/>`,
	IconShoppingCart: `<circle cx="8" cy="21" r="1"/><circle cx="19" cy="21" r="1"/><path d="M2 2h3l2.7 13.4a2 2 0 0 0 2 1.6h9.7a2 2 0 0 0 2-1.6L23 6H6"/>`,
	IconUpload:       `<path d="M21 15v4a2 2 0 0 1-2 2H5a2 2 0 0 1-2-2v-4"/><path d="m17 8-5-5-5 5"/><path d="M12 3v12"/>`,
	IconBook:         `<path d="M4 19.5A2.5 2.5 0 0 1 6.5 17H20V2H6.5A2.5 2.5 0 0 0 4 4.5Z"/><path d="M4 19.5A2.5 2.5 0 0 0 6.5 22H20v-5"/>`,
	IconLock:         `<rect x="3" y="11" width="18" height="11" rx="2"/><path d="M7 11V7a5 5 0 0 1 10 0v4"/>`,
	IconBell:         `<path d="M6 8a6 6 0 0 1 12 0c0 7 3 9 3 9H3s3-2 3-9"/><path d="M10.3 21a1.9 1.9 0 0 0 3.4 0"/>`,
	IconHouse:        `<path d="m3 9 9-7 9 7v11a2 2 0 0 1-2 2H5a2 2 0 0 1-2-2Z"/><path d="M9 22V12h6v10"/>`,
}

// ParseIcon maps a configured icon name onto the closed icon set.
func ParseIcon(name string) (IconID, bool) {
	id := IconID(name)
	_, ok := iconPaths[id]
	return id, ok
}

// Known reports whether the id belongs to the icon set.
func (id IconID) Known() bool {
	_, ok := iconPaths[id]
	return ok
}

// Icon renders the icon for id. Unknown ids fall back to a neutral dot.
func Icon(id IconID) g.Node {
	inner, ok := iconPaths[id]
	if !ok {
		return html.Span(
			html.Class("inline-flex h-4 w-4 items-center justify-center text-xs"),
			g.Attr("aria-hidden", "true"),
			g.Text("•"),
		)
	}
	return g.Raw(fmt.Sprintf(
		`<svg xmlns="http://www.w3.org/2000/svg" width="16" height="16" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2" stroke-linecap="round" stroke-linejoin="round" aria-hidden="true" data-icon="%s">%s</svg>`,
		id, inner,
	))
}

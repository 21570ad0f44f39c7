// Package designsystem is the default HTML widget set for the navigation panel.
// Interactions are wired with htmx attributes; each one posts to the mount's
// action endpoint and swaps the whole panel.
package designsystem

import (
	"context"
	"io"

	twmerge "github.com/Oudwins/tailwind-merge-go"
	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"

	"github.com/FACorreiaa/cms-admin/internal/app/navpanel"
)

var _ navpanel.Widgets = (*Widgets)(nil)

// focusOutVals reports whether focus stayed inside the popover and the id of the
// new target's parent, which is how the user button is recognised.
const focusOutVals = `js:{related_inside: event.currentTarget.contains(event.relatedTarget), related_parent_id: (event.relatedTarget && event.relatedTarget.parentElement) ? event.relatedTarget.parentElement.id : ""}`

type Widgets struct{}

func New() *Widgets {
	return &Widgets{}
}

// Templ adapts a gomponents node to templ.
func Templ(n g.Node) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if n == nil {
			return nil
		}
		return n.Render(w)
	})
}

func swapPanel(action string) g.Node {
	if action == "" {
		return nil
	}
	return g.Group([]g.Node{
		g.Attr("hx-post", action),
		g.Attr("hx-target", "#"+navpanel.MainNavID),
		g.Attr("hx-swap", "outerHTML"),
	})
}

func boolAttr(v bool) string {
	if v {
		return "true"
	}
	return "false"
}

func (w *Widgets) MainNav(props navpanel.MainNavProps, children ...g.Node) g.Node {
	attrs := []g.Node{
		html.ID(props.ID),
		html.Class(twmerge.Merge(
			"relative flex h-screen w-56 flex-col border-r bg-white px-3 py-4 transition-all",
			condensedClass(props.Condensed, "w-14 px-2"),
		)),
		g.Attr("aria-label", "Main navigation"),
		g.Attr("data-condensed", boolAttr(props.Condensed)),
		g.If(props.UnmountAction != "", g.Attr("data-nav-unmount", props.UnmountAction)),
	}
	return html.Nav(append(attrs, children...)...)
}

func (w *Widgets) NavBrand(props navpanel.BrandProps) g.Node {
	return html.Div(
		html.Class("nav-brand flex items-center gap-3 px-2 pb-4"),
		g.If(props.LogoURL != "",
			html.Img(html.Src(props.LogoURL), html.Alt(props.Title), html.Class("h-8 w-8 rounded")),
		),
		html.Div(
			html.Class(twmerge.Merge("nav-brand-text flex flex-col", condensedClass(props.Condensed, "sr-only"))),
			html.Span(html.Class("nav-brand-title text-sm font-semibold"), g.Text(props.Title)),
			html.Span(html.Class("nav-brand-workplace text-xs text-neutral-600"), g.Text(props.Workplace)),
		),
	)
}

func (w *Widgets) Divider() g.Node {
	return html.Hr(html.Class("nav-divider my-2 border-neutral-150"))
}

func (w *Widgets) NavSections(children ...g.Node) g.Node {
	return html.Ul(append([]g.Node{
		html.Class("nav-sections flex flex-1 flex-col gap-1 overflow-y-auto"),
	}, children...)...)
}

func (w *Widgets) NavSection(label string, children ...g.Node) g.Node {
	return html.Li(
		html.Class("nav-section pt-4"),
		g.Attr("data-nav-section", label),
		html.P(html.Class("nav-section-label px-2 pb-1 text-xs uppercase text-neutral-600"), g.Text(label)),
		html.Ul(append([]g.Node{html.Class("flex flex-col gap-1")}, children...)...),
	)
}

func (w *Widgets) NavLink(props navpanel.LinkProps) g.Node {
	return html.Li(
		html.A(
			html.Href(props.To),
			html.Class(twmerge.Merge(
				"nav-link flex items-center gap-3 rounded px-2 py-2 text-sm text-neutral-700 hover:bg-primary-100",
				activeClass(props.Active),
			)),
			g.If(props.Active, g.Attr("aria-current", "page")),
			g.If(props.Condensed, g.Attr("title", props.Label)),
			props.Icon,
			html.Span(
				html.Class(twmerge.Merge("nav-link-label flex-1", condensedClass(props.Condensed, "sr-only"))),
				g.Text(props.Label),
			),
			g.If(props.Badge != "",
				html.Span(
					html.Class("nav-badge rounded-full bg-primary-600 px-2 text-xs text-white"),
					g.Attr("data-badge", props.Badge),
					g.Text(props.Badge),
				),
			),
		),
	)
}

func (w *Widgets) NavUser(props navpanel.UserProps) g.Node {
	return html.Div(
		html.ID(props.ID),
		html.Class("nav-user mt-2 px-2"),
		html.Button(
			html.Type("button"),
			html.Class("flex w-full items-center gap-2 rounded px-2 py-2 hover:bg-primary-100"),
			g.Attr("aria-haspopup", "true"),
			g.Attr("aria-expanded", boolAttr(props.Expanded)),
			swapPanel(props.ToggleAction),
			html.Span(
				html.Class("nav-user-initials flex h-8 w-8 items-center justify-center rounded-full bg-primary-600 text-xs font-semibold text-white"),
				g.Text(props.Initials),
			),
			html.Span(
				html.Class(twmerge.Merge("nav-user-name text-sm", condensedClass(props.Condensed, "sr-only"))),
				g.Text(props.DisplayName),
			),
		),
	)
}

func (w *Widgets) UserPopover(props navpanel.PopoverProps, children ...g.Node) g.Node {
	attrs := []g.Node{
		html.Class("nav-user-popover absolute bottom-24 left-5 w-[9.375rem] rounded bg-white p-1 shadow-md"),
		g.Attr("data-user-popover", ""),
	}
	if props.FocusOutAction != "" {
		attrs = append(attrs,
			swapPanel(props.FocusOutAction),
			g.Attr("hx-trigger", "focusout"),
			g.Attr("hx-vals", focusOutVals),
		)
	}
	return html.Div(append(attrs, children...)...)
}

func (w *Widgets) FocusTrap(escapeAction string, children ...g.Node) g.Node {
	attrs := []g.Node{
		html.Class("flex flex-col"),
		g.Attr("data-focus-trap", ""),
	}
	if escapeAction != "" {
		attrs = append(attrs,
			swapPanel(escapeAction),
			g.Attr("hx-trigger", "keydown[key=='Escape']"),
		)
	}
	return html.Div(append(attrs, children...)...)
}

func (w *Widgets) PopoverLink(props navpanel.PopoverLinkProps) g.Node {
	class := "nav-popover-link flex items-center justify-between rounded px-4 py-2 no-underline hover:bg-primary-100"
	if props.Danger {
		class = twmerge.Merge(class, "text-danger-600 hover:bg-danger-100")
	}

	var action g.Node
	if props.Action != "" {
		action = g.Group([]g.Node{
			g.Attr("hx-post", props.Action),
			g.Attr("hx-swap", "none"),
		})
	}

	return html.A(
		html.Href(props.To),
		g.Attr("tabindex", "0"),
		html.Class(class),
		action,
		html.Span(g.Text(props.Label)),
		props.Icon,
	)
}

func (w *Widgets) NavCondense(props navpanel.CondenseProps) g.Node {
	return html.Button(
		html.Type("button"),
		html.Class("nav-condense absolute -right-3 bottom-9 rounded border bg-white px-1 py-1"),
		g.Attr("data-nav-condense", ""),
		g.Attr("aria-label", props.Label),
		swapPanel(props.Action),
		html.Span(html.Class("sr-only"), g.Text(props.Label)),
		html.Span(g.Attr("aria-hidden", "true"), g.Text(condenseArrow(props.Condensed))),
	)
}

func condenseArrow(condensed bool) string {
	if condensed {
		return "›"
	}
	return "‹"
}

func condensedClass(condensed bool, class string) string {
	if condensed {
		return class
	}
	return ""
}

func activeClass(active bool) string {
	if active {
		return "bg-primary-100 text-primary-700 font-semibold"
	}
	return ""
}

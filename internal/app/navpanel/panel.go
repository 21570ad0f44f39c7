package navpanel

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"
	"go.uber.org/zap"
	g "maragu.dev/gomponents"
)

// Options wires a Panel to its widgets, state and collaborators.
// Only Widgets is required.
type Options struct {
	Widgets     Widgets
	State       *UIState
	Actions     Actions
	Preferences PreferenceStore
	Session     SessionClearer
	User        UserInfo
	Config      Configuration
	Localizer   Localizer
	Links       LinkSource
	CurrentPath string
	Logger      *zap.Logger
}

// Panel is one mounted navigation panel.
type Panel struct {
	opts Options
}

func New(opts Options) *Panel {
	if opts.State == nil {
		opts.State = &UIState{}
	}
	if opts.Localizer == nil {
		opts.Localizer = defaultLocalizer{}
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	return &Panel{opts: opts}
}

// Mount loads the persisted condensed flag into the panel state. It runs once
// per mount; later events reuse the stored value. A failed read leaves the
// panel expanded.
func (p *Panel) Mount(ctx context.Context) {
	if p.opts.Preferences == nil {
		return
	}
	condensed, err := p.opts.Preferences.Get(ctx, CondensedPreferenceKey)
	if err != nil {
		p.opts.Logger.Warn("Failed to read navbar preference, using default",
			zap.String("key", CondensedPreferenceKey),
			zap.Error(err),
		)
		condensed = false
	}
	p.opts.State.SetCondensed(condensed)
}

func (p *Panel) Condensed() bool {
	return p.opts.State.Condensed()
}

func (p *Panel) UserMenuOpen() bool {
	return p.opts.State.UserMenuOpen()
}

// ToggleUserMenu flips the popover and returns whether it is now open.
func (p *Panel) ToggleUserMenu() bool {
	return p.opts.State.ToggleUserMenu()
}

// Escape handles the escape key inside the focus trap.
func (p *Panel) Escape() bool {
	return p.opts.State.ToggleUserMenu()
}

// Logout clears the application session and closes the popover.
// Navigation to the login page is left to the caller.
func (p *Panel) Logout() {
	if p.opts.Session != nil {
		p.opts.Session.ClearAppStorage()
	}
	p.opts.State.CloseUserMenu()
}

// FocusOut closes the popover unless focus moved inside it or onto the user button.
// It reports whether the popover was closed.
func (p *Panel) FocusOut(change FocusChange) bool {
	if change.RelatedInside || change.RelatedParentID == UserButtonID {
		return false
	}
	p.opts.State.CloseUserMenu()
	return true
}

// ToggleCondensed flips and persists the condensed flag. When the write fails
// the flag keeps its previous value.
func (p *Panel) ToggleCondensed(ctx context.Context) (bool, error) {
	current := p.opts.State.Condensed()
	next := !current
	if p.opts.Preferences != nil {
		if err := p.opts.Preferences.Set(ctx, CondensedPreferenceKey, next); err != nil {
			return current, fmt.Errorf("persist %s: %w", CondensedPreferenceKey, err)
		}
	}
	p.opts.State.SetCondensed(next)
	return next, nil
}

// CondenseLabel is the prompt shown on the collapse toggle.
func (p *Panel) CondenseLabel() string {
	if p.Condensed() {
		return format(p.opts.Localizer, msgExpand)
	}
	return format(p.opts.Localizer, msgCollapse)
}

func (p *Panel) Initials() string {
	return Initials(p.displayName())
}

func (p *Panel) displayName() string {
	if p.opts.User == nil {
		return ""
	}
	return p.opts.User.DisplayName()
}

// Render builds the panel tree for the current state.
func (p *Panel) Render() g.Node {
	w := p.opts.Widgets
	loc := p.opts.Localizer
	title := format(loc, msgBrandTitle)
	open := p.UserMenuOpen()
	condensed := p.Condensed()

	logo := ""
	if p.opts.Config != nil {
		logo = p.opts.Config.MenuLogo()
	}

	var plugins, general []NavLinkEntry
	if p.opts.Links != nil {
		plugins = p.opts.Links.PluginsSectionLinks()
		general = p.opts.Links.GeneralSectionLinks()
	}

	return w.MainNav(
		MainNavProps{ID: MainNavID, Condensed: condensed, UnmountAction: p.opts.Actions.Unmount},
		w.NavBrand(BrandProps{
			Title:     title,
			Workplace: format(loc, msgBrandWorkplace),
			LogoURL:   logo,
			Condensed: condensed,
		}),
		w.Divider(),
		w.NavSections(
			w.NavLink(LinkProps{
				To:        ContentManagerPath,
				Label:     format(loc, msgContentManager),
				Icon:      Icon(IconWrite),
				Active:    p.active(ContentManagerPath),
				Condensed: condensed,
			}),
			p.section(format(loc, msgPlugins), plugins),
			p.section(format(loc, msgGeneral), general),
		),
		w.NavUser(UserProps{
			ID:           UserButtonID,
			Initials:     p.Initials(),
			DisplayName:  p.displayName(),
			Expanded:     open,
			Condensed:    condensed,
			ToggleAction: p.opts.Actions.ToggleUserMenu,
		}),
		g.If(open, p.userPopover()),
		w.NavCondense(CondenseProps{
			Condensed: condensed,
			Label:     p.CondenseLabel(),
			Action:    p.opts.Actions.Condense,
		}),
	)
}

// Component adapts Render to templ so handlers can render it like any page fragment.
func (p *Panel) Component() templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		return p.Render().Render(w)
	})
}

func (p *Panel) section(label string, links []NavLinkEntry) g.Node {
	if len(links) == 0 {
		return nil
	}
	items := make([]g.Node, 0, len(links))
	for _, link := range links {
		items = append(items, p.opts.Widgets.NavLink(LinkProps{
			To:        link.To,
			Label:     format(p.opts.Localizer, link.IntlLabel),
			Icon:      Icon(link.Icon),
			Badge:     link.Badge(),
			Active:    p.active(link.To),
			Condensed: p.Condensed(),
		}))
	}
	return p.opts.Widgets.NavSection(label, items...)
}

func (p *Panel) userPopover() g.Node {
	w := p.opts.Widgets
	loc := p.opts.Localizer
	return w.UserPopover(
		PopoverProps{FocusOutAction: p.opts.Actions.FocusOut},
		w.FocusTrap(p.opts.Actions.Escape,
			w.PopoverLink(PopoverLinkProps{
				To:    ProfilePath,
				Label: format(loc, msgProfile),
			}),
			w.PopoverLink(PopoverLinkProps{
				To:     LoginPath,
				Label:  format(loc, msgLogout),
				Icon:   Icon(IconExit),
				Danger: true,
				Action: p.opts.Actions.Logout,
			}),
		),
	)
}

func (p *Panel) active(to string) bool {
	current := p.opts.CurrentPath
	if current == "" || to == "" {
		return false
	}
	return current == to || strings.HasPrefix(current, strings.TrimSuffix(to, "/")+"/")
}

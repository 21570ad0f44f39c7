package designsystem

import (
	"context"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"

	"github.com/FACorreiaa/cms-admin/internal/app/navpanel"
)

func parse(t *testing.T, n g.Node) *goquery.Document {
	t.Helper()
	var sb strings.Builder
	require.NoError(t, Templ(n).Render(context.Background(), &sb))
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(sb.String()))
	require.NoError(t, err)
	return doc
}

func TestMainNav_CondensedWidth(t *testing.T) {
	w := New()

	expanded := parse(t, w.MainNav(navpanel.MainNavProps{ID: "main-nav"}))
	class, _ := expanded.Find("nav").Attr("class")
	assert.Contains(t, class, "w-56")

	condensed := parse(t, w.MainNav(navpanel.MainNavProps{ID: "main-nav", Condensed: true, UnmountAction: "/nav/1/unmount"}))
	nav := condensed.Find("nav")
	class, _ = nav.Attr("class")
	assert.Contains(t, class, "w-14")
	assert.NotContains(t, class, "w-56", "tailwind merge drops the overridden width")
	unmount, _ := nav.Attr("data-nav-unmount")
	assert.Equal(t, "/nav/1/unmount", unmount)
}

func TestNavUser_PostsToggle(t *testing.T) {
	doc := parse(t, New().NavUser(navpanel.UserProps{
		ID:           navpanel.UserButtonID,
		Initials:     "JD",
		DisplayName:  "Jane Doe",
		ToggleAction: "/nav/1/user-menu",
	}))

	button := doc.Find("#main-nav-user-button > button")
	require.Equal(t, 1, button.Length(), "the trigger button sits directly under the id'd wrapper")
	post, _ := button.Attr("hx-post")
	target, _ := button.Attr("hx-target")
	expanded, _ := button.Attr("aria-expanded")
	assert.Equal(t, "/nav/1/user-menu", post)
	assert.Equal(t, "#main-nav", target)
	assert.Equal(t, "false", expanded)
}

func TestUserPopover_FocusOutAndEscape(t *testing.T) {
	w := New()
	doc := parse(t, w.UserPopover(
		navpanel.PopoverProps{FocusOutAction: "/nav/1/focusout"},
		w.FocusTrap("/nav/1/escape", w.PopoverLink(navpanel.PopoverLinkProps{To: "/me", Label: "Profile"})),
	))

	popover := doc.Find("[data-user-popover]")
	trigger, _ := popover.Attr("hx-trigger")
	vals, _ := popover.Attr("hx-vals")
	assert.Equal(t, "focusout", trigger)
	assert.Contains(t, vals, "related_inside")
	assert.Contains(t, vals, "related_parent_id")

	trap := popover.Find("[data-focus-trap]")
	post, _ := trap.Attr("hx-post")
	assert.Equal(t, "/nav/1/escape", post)

	link := trap.Find(`a[href="/me"]`)
	assert.Equal(t, "Profile", link.Text())
	_, hasPost := link.Attr("hx-post")
	assert.False(t, hasPost, "profile is a plain link")
}

func TestPopoverLink_DangerAction(t *testing.T) {
	doc := parse(t, New().PopoverLink(navpanel.PopoverLinkProps{
		To:     "/auth/login",
		Label:  "Logout",
		Icon:   navpanel.Icon(navpanel.IconExit),
		Danger: true,
		Action: "/nav/1/logout",
	}))

	link := doc.Find("a")
	post, _ := link.Attr("hx-post")
	class, _ := link.Attr("class")
	assert.Equal(t, "/nav/1/logout", post)
	assert.Contains(t, class, "text-danger-600")
	assert.Equal(t, 1, link.Find(`svg[data-icon="exit"]`).Length())
}

func TestNavLink_CondensedHidesLabel(t *testing.T) {
	doc := parse(t, New().NavLink(navpanel.LinkProps{To: "/settings", Label: "Settings", Condensed: true}))

	title, _ := doc.Find("a").Attr("title")
	class, _ := doc.Find(".nav-link-label").Attr("class")
	assert.Equal(t, "Settings", title)
	assert.Contains(t, class, "sr-only")
}

func TestNavCondense(t *testing.T) {
	doc := parse(t, New().NavCondense(navpanel.CondenseProps{Label: "Collapse the navbar", Action: "/nav/1/condense"}))

	button := doc.Find("[data-nav-condense]")
	label, _ := button.Attr("aria-label")
	post, _ := button.Attr("hx-post")
	assert.Equal(t, "Collapse the navbar", label)
	assert.Equal(t, "/nav/1/condense", post)
}

func TestTempl_NilNode(t *testing.T) {
	var sb strings.Builder
	require.NoError(t, Templ(nil).Render(context.Background(), &sb))
	assert.Empty(t, sb.String())
}

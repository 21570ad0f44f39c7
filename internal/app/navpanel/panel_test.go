package navpanel_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FACorreiaa/cms-admin/internal/app/designsystem"
	"github.com/FACorreiaa/cms-admin/internal/app/navpanel"
)

type memPrefs struct {
	values map[string]bool
	sets   []bool
	getErr error
	setErr error
}

func newMemPrefs() *memPrefs {
	return &memPrefs{values: map[string]bool{}}
}

func (m *memPrefs) Get(_ context.Context, key string) (bool, error) {
	if m.getErr != nil {
		return false, m.getErr
	}
	return m.values[key], nil
}

func (m *memPrefs) Set(_ context.Context, key string, value bool) error {
	if m.setErr != nil {
		return m.setErr
	}
	m.values[key] = value
	m.sets = append(m.sets, value)
	return nil
}

type countingSession struct {
	calls int
}

func (s *countingSession) ClearAppStorage() {
	s.calls++
}

type staticUser string

func (u staticUser) DisplayName() string { return string(u) }

type staticConfig string

func (c staticConfig) MenuLogo() string { return string(c) }

type staticLinks struct {
	plugins []navpanel.NavLinkEntry
	general []navpanel.NavLinkEntry
}

func (l staticLinks) PluginsSectionLinks() []navpanel.NavLinkEntry { return l.plugins }
func (l staticLinks) GeneralSectionLinks() []navpanel.NavLinkEntry { return l.general }

type prefixLocalizer struct{}

func (prefixLocalizer) FormatMessage(id, _ string) string { return "t:" + id }

type fixture struct {
	panel   *navpanel.Panel
	prefs   *memPrefs
	session *countingSession
}

func newFixture(links staticLinks) *fixture {
	f := &fixture{prefs: newMemPrefs(), session: &countingSession{}}
	f.panel = navpanel.New(navpanel.Options{
		Widgets:     designsystem.New(),
		Actions:     navpanel.ActionsFor("/nav", uuid.New()),
		Preferences: f.prefs,
		Session:     f.session,
		User:        staticUser("Jane Doe"),
		Config:      staticConfig("/assets/static/logo.svg"),
		Links:       links,
	})
	f.panel.Mount(context.Background())
	return f
}

func render(t *testing.T, p *navpanel.Panel) *goquery.Document {
	t.Helper()
	var sb strings.Builder
	require.NoError(t, p.Component().Render(context.Background(), &sb))
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(sb.String()))
	require.NoError(t, err)
	return doc
}

func intPtr(n int) *int { return &n }

func TestPanel_RendersFixedBlocksWithoutSections(t *testing.T) {
	f := newFixture(staticLinks{})
	doc := render(t, f.panel)

	assert.Equal(t, 1, doc.Find("nav#main-nav").Length())
	assert.Equal(t, "Alienide Interactive", doc.Find(".nav-brand-title").Text())
	assert.Equal(t, "Website CMS", doc.Find(".nav-brand-workplace").Text())
	logo, _ := doc.Find(".nav-brand img").Attr("src")
	assert.Equal(t, "/assets/static/logo.svg", logo)

	cm := doc.Find(`a[href="/content-manager"]`)
	assert.Equal(t, 1, cm.Length())
	assert.Equal(t, "Content manager", cm.Find(".nav-link-label").Text())
	assert.Equal(t, 1, cm.Find(`svg[data-icon="write"]`).Length())

	assert.Equal(t, 0, doc.Find("[data-nav-section]").Length(), "no section headers for empty groups")
	assert.Equal(t, 1, doc.Find("#main-nav-user-button").Length())
	assert.Equal(t, 1, doc.Find("[data-nav-condense]").Length())
	assert.Equal(t, 0, doc.Find("[data-user-popover]").Length(), "popover starts closed")
}

func TestPanel_RendersSectionsInOrder(t *testing.T) {
	f := newFixture(staticLinks{
		plugins: []navpanel.NavLinkEntry{
			{To: "/plugins/upload", Icon: navpanel.IconUpload, IntlLabel: navpanel.Message{ID: "upload", DefaultMessage: "Media Library"}},
		},
		general: []navpanel.NavLinkEntry{
			{To: "/settings", Icon: navpanel.IconCog, IntlLabel: navpanel.Message{ID: "settings", DefaultMessage: "Settings"}},
		},
	})
	doc := render(t, f.panel)

	sections := doc.Find("[data-nav-section]")
	require.Equal(t, 2, sections.Length())
	assert.Equal(t, "Plugins", sections.Eq(0).Find(".nav-section-label").Text())
	assert.Equal(t, "General", sections.Eq(1).Find(".nav-section-label").Text())
	assert.Equal(t, "Media Library", sections.Eq(0).Find(`a[href="/plugins/upload"]`).Text())
	assert.Equal(t, "Settings", sections.Eq(1).Find(`a[href="/settings"]`).Text())
}

func TestPanel_BadgeOnlyForPositiveCounts(t *testing.T) {
	f := newFixture(staticLinks{
		plugins: []navpanel.NavLinkEntry{
			{To: "/x", Icon: navpanel.IconPlugin, NotificationsCount: intPtr(3)},
			{To: "/y", Icon: navpanel.IconPlugin, NotificationsCount: intPtr(0)},
			{To: "/z", Icon: navpanel.IconPlugin},
		},
	})
	doc := render(t, f.panel)

	assert.Equal(t, "3", doc.Find(`a[href="/x"] .nav-badge`).Text())
	assert.Equal(t, 0, doc.Find(`a[href="/y"] .nav-badge`).Length())
	assert.Equal(t, 0, doc.Find(`a[href="/z"] .nav-badge`).Length())
}

func TestPanel_UserControlShowsInitials(t *testing.T) {
	f := newFixture(staticLinks{})
	doc := render(t, f.panel)

	assert.Equal(t, "JD", doc.Find(".nav-user-initials").Text())
	assert.Equal(t, "Jane Doe", doc.Find(".nav-user-name").Text())
	assert.Equal(t, "JD", f.panel.Initials())
}

func TestPanel_ToggleUserMenu(t *testing.T) {
	f := newFixture(staticLinks{})

	assert.False(t, f.panel.UserMenuOpen())
	assert.True(t, f.panel.ToggleUserMenu())

	doc := render(t, f.panel)
	popover := doc.Find("[data-user-popover]")
	require.Equal(t, 1, popover.Length())
	assert.Equal(t, 1, popover.Find(`a[href="/me"]`).Length())
	assert.Equal(t, 1, popover.Find(`a[href="/auth/login"]`).Length())
	expanded, _ := doc.Find("#main-nav-user-button button").Attr("aria-expanded")
	assert.Equal(t, "true", expanded)

	assert.False(t, f.panel.ToggleUserMenu())
	assert.Equal(t, 0, render(t, f.panel).Find("[data-user-popover]").Length())
}

func TestPanel_LogoutClearsSessionOnceAndCloses(t *testing.T) {
	f := newFixture(staticLinks{})
	f.panel.ToggleUserMenu()

	f.panel.Logout()

	assert.Equal(t, 1, f.session.calls)
	assert.False(t, f.panel.UserMenuOpen())
}

func TestPanel_EscapeToggles(t *testing.T) {
	f := newFixture(staticLinks{})
	f.panel.ToggleUserMenu()

	assert.False(t, f.panel.Escape())
}

func TestPanel_FocusOut(t *testing.T) {
	tests := []struct {
		name       string
		change     navpanel.FocusChange
		wantOpen   bool
		wantClosed bool
	}{
		{"to user button", navpanel.FocusChange{RelatedParentID: navpanel.UserButtonID}, true, false},
		{"inside popover", navpanel.FocusChange{RelatedInside: true}, true, false},
		{"elsewhere", navpanel.FocusChange{RelatedParentID: "some-other-element"}, false, true},
		{"focus left the page", navpanel.FocusChange{}, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(staticLinks{})
			f.panel.ToggleUserMenu()

			closed := f.panel.FocusOut(tt.change)

			assert.Equal(t, tt.wantClosed, closed)
			assert.Equal(t, tt.wantOpen, f.panel.UserMenuOpen())
		})
	}
}

func TestPanel_ToggleCondensedPersistsAndSwapsLabel(t *testing.T) {
	f := newFixture(staticLinks{})
	label := func() string {
		v, _ := render(t, f.panel).Find("[data-nav-condense]").Attr("aria-label")
		return v
	}

	assert.Equal(t, "Collapse the navbar", label())

	condensed, err := f.panel.ToggleCondensed(context.Background())
	require.NoError(t, err)
	assert.True(t, condensed)
	assert.Equal(t, "Expand the navbar", label())
	assert.Equal(t, "true", attr(render(t, f.panel).Find("nav#main-nav"), "data-condensed"))

	condensed, err = f.panel.ToggleCondensed(context.Background())
	require.NoError(t, err)
	assert.False(t, condensed)
	assert.Equal(t, "Collapse the navbar", label())

	assert.Equal(t, []bool{true, false}, f.prefs.sets)
	assert.False(t, f.prefs.values[navpanel.CondensedPreferenceKey])
}

func TestPanel_ToggleCondensedWriteFailureKeepsValue(t *testing.T) {
	f := newFixture(staticLinks{})
	f.prefs.setErr = errors.New("disk full")

	condensed, err := f.panel.ToggleCondensed(context.Background())

	assert.Error(t, err)
	assert.False(t, condensed)
	assert.False(t, f.panel.Condensed())
}

func TestPanel_MountReadsPersistedFlag(t *testing.T) {
	prefs := newMemPrefs()
	prefs.values[navpanel.CondensedPreferenceKey] = true

	p := navpanel.New(navpanel.Options{Widgets: designsystem.New(), Preferences: prefs})
	p.Mount(context.Background())

	assert.True(t, p.Condensed())
	assert.Equal(t, "Expand the navbar", p.CondenseLabel())
}

func TestPanel_MountReadFailureDefaultsToExpanded(t *testing.T) {
	prefs := newMemPrefs()
	prefs.getErr = errors.New("unavailable")

	p := navpanel.New(navpanel.Options{Widgets: designsystem.New(), Preferences: prefs})
	p.Mount(context.Background())

	assert.False(t, p.Condensed())
}

func TestPanel_UsesLocalizer(t *testing.T) {
	p := navpanel.New(navpanel.Options{
		Widgets:   designsystem.New(),
		Localizer: prefixLocalizer{},
		Links: staticLinks{general: []navpanel.NavLinkEntry{
			{To: "/settings", Icon: navpanel.IconCog, IntlLabel: navpanel.Message{ID: "Settings.title", DefaultMessage: "Settings"}},
		}},
	})
	doc := render(t, p)

	assert.Equal(t, "t:content-manager.plugin.name", doc.Find(`a[href="/content-manager"] .nav-link-label`).Text())
	assert.Equal(t, "t:Settings.title", doc.Find(`a[href="/settings"] .nav-link-label`).Text())
	assert.Equal(t, "t:app.components.LeftMenu.general", doc.Find(".nav-section-label").Text())
}

func TestPanel_MarksActiveLink(t *testing.T) {
	p := navpanel.New(navpanel.Options{
		Widgets:     designsystem.New(),
		CurrentPath: "/content-manager/collection-types/article",
	})
	doc := render(t, p)

	assert.Equal(t, "page", attr(doc.Find(`a[href="/content-manager"]`), "aria-current"))
}

func TestPanel_LinkSourceIsNotMutated(t *testing.T) {
	links := staticLinks{plugins: []navpanel.NavLinkEntry{
		{To: "/x", Icon: navpanel.IconPlugin, NotificationsCount: intPtr(2)},
	}}
	f := newFixture(links)
	render(t, f.panel)

	assert.Equal(t, "/x", links.plugins[0].To)
	assert.Equal(t, 2, *links.plugins[0].NotificationsCount)
}

func attr(s *goquery.Selection, name string) string {
	v, _ := s.Attr(name)
	return v
}

package menu

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FACorreiaa/cms-admin/internal/app/navpanel"
)

const sampleMenu = `
plugins:
  - to: /plugins/upload
    icon: upload
    label:
      id: app.components.LeftMenu.plugins.upload
      default: Media Library
general:
  - to: /settings
    icon: cog
    label:
      default: Settings
    notifications_count: 2
  - to: /marketplace
    icon: shopping-cart
    label:
      default: Marketplace
    notifications_count: 0
`

func TestParse(t *testing.T) {
	p, err := Parse([]byte(sampleMenu))
	require.NoError(t, err)

	plugins := p.PluginsSectionLinks()
	require.Len(t, plugins, 1)
	assert.Equal(t, "/plugins/upload", plugins[0].To)
	assert.Equal(t, navpanel.IconUpload, plugins[0].Icon)
	assert.Equal(t, "Media Library", plugins[0].IntlLabel.DefaultMessage)
	assert.Nil(t, plugins[0].NotificationsCount)

	general := p.GeneralSectionLinks()
	require.Len(t, general, 2)
	assert.Equal(t, "2", general[0].Badge())
	assert.Equal(t, "", general[1].Badge())

	assert.Equal(t, []string{"/plugins/upload", "/settings", "/marketplace"}, p.Paths())
}

func TestProvider_Label(t *testing.T) {
	p := Default()

	label, ok := p.Label("/settings")
	require.True(t, ok)
	assert.Equal(t, "Settings", label.DefaultMessage)

	_, ok = p.Label("/nowhere")
	assert.False(t, ok)
}

func TestParse_EmptyGroups(t *testing.T) {
	p, err := Parse([]byte("plugins: []\n"))
	require.NoError(t, err)

	assert.Empty(t, p.PluginsSectionLinks())
	assert.Empty(t, p.GeneralSectionLinks())
}

func TestParse_Validation(t *testing.T) {
	tests := map[string]string{
		"relative path":  "general:\n  - {to: settings, icon: cog, label: {default: S}}\n",
		"unknown icon":   "general:\n  - {to: /settings, icon: rocket, label: {default: S}}\n",
		"missing label":  "general:\n  - {to: /settings, icon: cog}\n",
		"negative count": "general:\n  - {to: /settings, icon: cog, label: {default: S}, notifications_count: -1}\n",
		"duplicate":      "plugins:\n  - {to: /a, icon: cog, label: {default: A}}\n  - {to: /a, icon: cog, label: {default: B}}\n",
		"bad yaml":       "plugins: [",
	}

	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(doc))
			assert.Error(t, err)
		})
	}
}

func TestProvider_ReturnsCopies(t *testing.T) {
	p, err := Parse([]byte(sampleMenu))
	require.NoError(t, err)

	first := p.GeneralSectionLinks()
	first[0].To = "/mutated"
	*first[0].NotificationsCount = 99

	again := p.GeneralSectionLinks()
	assert.Equal(t, "/settings", again[0].To)
	assert.Equal(t, 2, *again[0].NotificationsCount)
}

func TestLoad(t *testing.T) {
	p, err := Load("")
	require.NoError(t, err)
	assert.NotEmpty(t, p.PluginsSectionLinks())
	assert.NotEmpty(t, p.GeneralSectionLinks())

	path := filepath.Join(t.TempDir(), "menu.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleMenu), 0o600))
	p, err = Load(path)
	require.NoError(t, err)
	assert.Len(t, p.GeneralSectionLinks(), 2)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestDefault_IconsAreKnown(t *testing.T) {
	for _, e := range append(Default().PluginsSectionLinks(), Default().GeneralSectionLinks()...) {
		assert.True(t, e.Icon.Known(), e.To)
	}
}

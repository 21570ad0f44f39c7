package menu

import "github.com/FACorreiaa/cms-admin/internal/app/navpanel"

// Default is the stock admin menu.
func Default() *Provider {
	return &Provider{
		plugins: []navpanel.NavLinkEntry{
			{
				To:        "/plugins/content-type-builder",
				Icon:      navpanel.IconLayer,
				IntlLabel: navpanel.Message{ID: "app.components.LeftMenu.plugins.ctb", DefaultMessage: "Content-Type Builder"},
			},
			{
				To:        "/plugins/upload",
				Icon:      navpanel.IconUpload,
				IntlLabel: navpanel.Message{ID: "app.components.LeftMenu.plugins.upload", DefaultMessage: "Media Library"},
			},
		},
		general: []navpanel.NavLinkEntry{
			{
				To:        "/list-plugins",
				Icon:      navpanel.IconPuzzle,
				IntlLabel: navpanel.Message{ID: "app.components.LeftMenu.listPlugins", DefaultMessage: "Plugins"},
			},
			{
				To:        "/marketplace",
				Icon:      navpanel.IconShoppingCart,
				IntlLabel: navpanel.Message{ID: "app.components.LeftMenu.marketplace", DefaultMessage: "Marketplace"},
			},
			{
				To:        "/settings",
				Icon:      navpanel.IconCog,
				IntlLabel: navpanel.Message{ID: "app.components.LeftMenu.settings", DefaultMessage: "Settings"},
			},
		},
	}
}

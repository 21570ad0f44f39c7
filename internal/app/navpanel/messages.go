package navpanel

var (
	msgBrandTitle     = Message{ID: "app.components.LeftMenu.navbrand.title", DefaultMessage: "Alienide Interactive"}
	msgBrandWorkplace = Message{ID: "app.components.LeftMenu.navbrand.workplace", DefaultMessage: "Website CMS"}
	msgContentManager = Message{ID: "content-manager.plugin.name", DefaultMessage: "Content manager"}
	msgPlugins        = Message{ID: "app.components.LeftMenu.plugins", DefaultMessage: "Plugins"}
	msgGeneral        = Message{ID: "app.components.LeftMenu.general", DefaultMessage: "General"}
	msgProfile        = Message{ID: "app.components.LeftMenu.profile", DefaultMessage: "Profile"}
	msgLogout         = Message{ID: "app.components.LeftMenu.logout", DefaultMessage: "Logout"}
	msgExpand         = Message{ID: "app.components.LeftMenu.expand", DefaultMessage: "Expand the navbar"}
	msgCollapse       = Message{ID: "app.components.LeftMenu.collapse", DefaultMessage: "Collapse the navbar"}
)

// Messages lists every label the panel renders, for catalog completeness checks.
func Messages() []Message {
	return []Message{
		msgBrandTitle, msgBrandWorkplace, msgContentManager, msgPlugins, msgGeneral,
		msgProfile, msgLogout, msgExpand, msgCollapse,
	}
}

type defaultLocalizer struct{}

func (defaultLocalizer) FormatMessage(_, defaultMessage string) string {
	return defaultMessage
}

func format(loc Localizer, m Message) string {
	return loc.FormatMessage(m.ID, m.DefaultMessage)
}

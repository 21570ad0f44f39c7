package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message/catalog"
)

// Translations for languages other than English. English text comes from the
// inline defaults carried by each message.
var translations = map[string]map[string]string{
	"pt-BR": {
		"app.components.LeftMenu.navbrand.workplace": "CMS do site",
		"content-manager.plugin.name":                "Gerenciador de conteúdo",
		"app.components.LeftMenu.plugins":            "Plugins",
		"app.components.LeftMenu.general":            "Geral",
		"app.components.LeftMenu.profile":            "Perfil",
		"app.components.LeftMenu.logout":             "Sair",
		"app.components.LeftMenu.expand":             "Expandir a barra de navegação",
		"app.components.LeftMenu.collapse":           "Recolher a barra de navegação",
		"app.components.LeftMenu.plugins.upload":     "Biblioteca de mídia",
		"app.components.LeftMenu.plugins.ctb":        "Construtor de tipos",
		"app.components.LeftMenu.listPlugins":        "Plugins",
		"app.components.LeftMenu.marketplace":        "Marketplace",
		"app.components.LeftMenu.settings":           "Configurações",
		"app.components.HomePage.title":              "Início",
	},
}

var defaultCatalog = mustBuildCatalog(translations)

// BuildCatalog registers the translations keyed by BCP 47 tag.
func BuildCatalog(entries map[string]map[string]string) (catalog.Catalog, error) {
	b := catalog.NewBuilder(catalog.Fallback(Default()))
	for lang, messages := range entries {
		tag, err := language.Parse(lang)
		if err != nil {
			return nil, err
		}
		for id, text := range messages {
			if err := b.SetString(tag, id, text); err != nil {
				return nil, err
			}
		}
	}
	return b, nil
}

func mustBuildCatalog(entries map[string]map[string]string) catalog.Catalog {
	cat, err := BuildCatalog(entries)
	if err != nil {
		panic(err)
	}
	return cat
}

package handlers

import (
	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/components"
	"maragu.dev/gomponents/html"
)

const htmxScript = "https://unpkg.com/htmx.org@2.0.4"

type pageProps struct {
	Title    string
	Language string
	Nav      g.Node
	Content  g.Node
}

// adminPage is the shell around every admin screen: the navigation panel on
// the left and the screen content beside it.
func adminPage(p pageProps) g.Node {
	return components.HTML5(components.HTML5Props{
		Title:    p.Title,
		Language: p.Language,
		Head: []g.Node{
			html.Link(html.Rel("stylesheet"), html.Href("/assets/css/admin.css")),
			html.Script(html.Src(htmxScript), g.Attr("defer")),
			html.Script(html.Src("/assets/js/nav.js"), g.Attr("defer")),
		},
		Body: []g.Node{
			html.Class("bg-neutral-100 text-neutral-800"),
			html.Div(html.Class("flex min-h-screen"),
				p.Nav,
				html.Main(html.ID("content"), html.Class("flex-1 p-8"), p.Content),
			),
		},
	})
}

func screen(title string) g.Node {
	return html.Section(
		html.H1(html.Class("text-2xl font-semibold"), g.Text(title)),
	)
}

// Package web renders the page shell that hosts the htmx goal fragments.
package web

import (
	"github.com/saulo-duarte/goal-tracker/internal/goal"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

const (
	unoCSSRuntime = "https://cdn.jsdelivr.net/npm/@unocss/runtime/uno.global.js"
	htmxScript    = "https://unpkg.com/htmx.org@1.9.10"
	normalizeCSS  = "https://esm.sh/modern-normalize@2.0.0/modern-normalize.css"
)

type NavLink struct {
	Title string
	URL   string
}

var Links = []NavLink{
	{Title: "Home", URL: "/"},
	{Title: "Static", URL: "/static/"},
}

func Layout(title string, content ...g.Node) g.Node {
	return h.Doctype(
		h.HTML(
			h.Head(
				h.Meta(h.Charset("utf-8")),
				h.TitleEl(g.Text(title)),
				h.Script(h.Src(unoCSSRuntime)),
				h.Script(h.Src(htmxScript)),
				h.Link(h.Rel("stylesheet"), h.Href(normalizeCSS)),
				h.Link(h.Rel("stylesheet"), h.Href("/static/app.css")),
			),
			h.Body(
				h.Div(h.ID("menu"), Navbar(Links)),
				h.Div(h.ID("content"), g.Group(content)),
			),
		),
	)
}

func Navbar(links []NavLink) g.Node {
	return h.Nav(h.Class("bg-gray-800 text-white p-2"),
		h.Ul(
			g.Map(links, func(l NavLink) g.Node {
				return h.Li(h.A(h.Href(l.URL), g.Text(l.Title)))
			}),
		),
	)
}

// HomeScreen embeds the creation form and an output region that loads the
// goal list as soon as htmx initializes.
func HomeScreen() g.Node {
	return g.Group{
		h.H1(g.Text("Goal Tracker Demo")),
		goal.CreationForm(),
		g.El("output",
			g.Attr("hx-get", "/view/goal-list"),
			g.Attr("hx-swap", "innerHTML"),
			g.Attr("hx-trigger", "load"),
		),
	}
}

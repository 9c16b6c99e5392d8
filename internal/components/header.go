package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/ai-rd1/website/internal/content"
)

// SiteHeader is the fixed top bar. The mobile menu is a checkbox drawer so it
// works without JavaScript.
func SiteHeader(nav []content.Link) g.Node {
	links := func(class string) g.Node {
		return g.Group(g.Map(nav, func(l content.Link) g.Node {
			return A(Href(l.Href), Class(class), g.Text(l.Label))
		}))
	}

	return Header(
		Class("fixed top-0 left-0 right-0 z-50 bg-background/95 backdrop-blur-sm border-b border-border"),
		Div(
			Class("container mx-auto px-4 sm:px-6 lg:px-8"),
			Div(
				Class("flex items-center justify-between h-20"),

				A(Href("/"), Logo()),

				Nav(
					Class("hidden md:flex items-center gap-8"),
					links("text-body hover:text-headline transition-colors font-medium"),
				),

				Div(
					Class("hidden md:flex items-center gap-3"),
					A(Href("#cta"), Class("btn btn-cta-secondary"), g.Text("Sign In")),
					A(Href("#cta"), Class("btn btn-cta"), g.Text("Get Started")),
				),

				Label(
					g.Attr("for", "mobile-menu"),
					Class("md:hidden p-2 text-headline cursor-pointer"),
					g.Attr("aria-label", "Toggle menu"),
					Icon("lucide--menu size-6", ""),
				),
			),

			Input(ID("mobile-menu"), Type("checkbox"), Class("peer hidden")),
			Div(
				Class("hidden peer-checked:block md:hidden py-4 border-t border-border"),
				Nav(
					Class("flex flex-col gap-4"),
					links("text-body hover:text-headline transition-colors font-medium px-2 py-2"),
					Div(
						Class("flex flex-col gap-2 mt-4 pt-4 border-t border-border"),
						A(Href("#cta"), Class("btn btn-cta-secondary w-full"), g.Text("Sign In")),
						A(Href("#cta"), Class("btn btn-cta w-full"), g.Text("Get Started")),
					),
				),
			),
		),
	)
}

package components

import (
	"fmt"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/ai-rd1/website/internal/content"
)

func PageFooter(f content.Footer, year int) g.Node {
	return Footer(
		Class("border-t border-border bg-background"),
		Div(
			Class("container mx-auto px-4 sm:px-6 lg:px-8 py-12"),

			Div(
				Class("gap-8 grid grid-cols-2 md:grid-cols-4"),

				Div(
					Class("col-span-2"),
					Logo(),
					P(Class("mt-3 max-sm:text-sm text-body"), g.Text(f.Tagline)),
				),

				g.Group(g.Map(f.Columns, func(col content.FooterColumn) g.Node {
					return Div(
						Class("col-span-1"),
						P(Class("font-medium text-headline"), g.Text(col.Title)),
						Div(
							Class("flex flex-col space-y-1.5 mt-5 text-body"),
							g.Group(g.Map(col.Links, func(l content.Link) g.Node {
								return A(Href(l.Href), Class("hover:text-headline transition-colors"), g.Text(l.Label))
							})),
						),
					)
				})),
			),

			Div(
				Class("mt-12 pt-6 border-t border-border text-sm text-muted-text"),
				P(g.Text(fmt.Sprintf("© %d %s. All rights reserved.", year, f.Company))),
			),
		),
	)
}

package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/ai-rd1/website/internal/content"
)

func UseCases(s content.Section) g.Node {
	return Section(
		ID("use-cases"),
		Class("py-16 lg:py-24"),
		Div(
			Class("container mx-auto px-4 sm:px-6 lg:px-8"),
			SectionHeading(s.Title, s.Subtitle),

			Div(
				Class("grid grid-cols-1 sm:grid-cols-2 lg:grid-cols-4 gap-6 max-w-6xl mx-auto"),
				g.Group(g.Map(s.Items, func(c content.Card) g.Node {
					return Div(
						Class("group relative bg-card rounded-xl p-6 border border-border-card card-hover overflow-hidden"),
						Div(Class("absolute top-0 left-0 right-0 h-1 bg-accent opacity-0 group-hover:opacity-100 transition-opacity")),
						Div(Class("mb-4"), IconBadge(c.Icon)),
						H3(Class("text-lg font-semibold text-headline mb-2"), g.Text(c.Title)),
						P(Class("text-sm text-body"), g.Text(c.Description)),
					)
				})),
			),
		),
	)
}

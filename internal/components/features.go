package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/ai-rd1/website/internal/content"
)

func Features(s content.Section) g.Node {
	return Section(
		ID("features"),
		Class("py-16 lg:py-24 bg-alt"),
		Div(
			Class("container mx-auto px-4 sm:px-6 lg:px-8"),
			SectionHeading(s.Title, s.Subtitle),

			g.If(s.Diagram != "",
				Div(
					Class("mx-auto mb-16 sm:max-w-3xl"),
					Div(
						Class("relative rounded-2xl overflow-hidden shadow-xl border border-border bg-background p-2 sm:p-4"),
						Div(
							Class("overflow-x-auto diagram-scroller"),
							Img(Src(s.Diagram), Alt(s.DiagramAlt), Class("min-w-[900px] sm:min-w-0 h-auto rounded-lg")),
						),
					),
				),
			),

			Div(
				Class("grid grid-cols-1 sm:grid-cols-2 lg:grid-cols-3 gap-6 lg:gap-8 max-w-6xl mx-auto"),
				g.Group(g.Map(s.Items, func(c content.Card) g.Node {
					return Div(
						Class("bg-card rounded-xl p-6 border border-border-card card-hover"),
						Div(Class("mb-4"), IconBadge(c.Icon)),
						H3(Class("text-xl font-semibold text-headline mb-2"), g.Text(c.Title)),
						P(Class("text-body"), g.Text(c.Description)),
					)
				})),
			),
		),
	)
}

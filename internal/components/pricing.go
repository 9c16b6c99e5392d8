package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/ai-rd1/website/internal/content"
)

func Pricing(p content.Pricing) g.Node {
	return Section(
		ID("pricing"),
		Class("py-16 lg:py-24 bg-alt"),
		Div(
			Class("container mx-auto px-4 sm:px-6 lg:px-8"),
			SectionHeading(p.Title, p.Subtitle),

			Div(
				Class("grid grid-cols-1 md:grid-cols-3 gap-6 lg:gap-8 max-w-6xl mx-auto"),
				g.Group(g.Map(p.Tiers, pricingCard)),
			),

			P(Class("text-center text-sm text-muted-text mt-10"), g.Text(p.Note)),
		),
	)
}

func pricingCard(t content.Tier) g.Node {
	border := "border-border-card"
	button := "btn btn-cta-secondary btn-lg w-full"
	if t.Popular {
		border = "border-accent shadow-lg ring-2 ring-accent/20"
		button = "btn btn-cta btn-lg w-full"
	}

	return Div(
		Class("relative bg-card rounded-2xl p-8 border "+border+" card-hover flex flex-col"),

		g.If(t.Popular,
			Div(
				Class("absolute -top-3 left-1/2 -translate-x-1/2"),
				Span(Class("px-4 py-1 rounded-full bg-accent text-white text-xs font-semibold"), g.Text("Most Popular")),
			),
		),

		Div(
			Class("flex items-center gap-3 mb-6"),
			IconBadge(t.Icon),
			H3(Class("text-xl font-semibold text-headline"), g.Text(t.Name)),
		),

		Div(
			Class("mb-2"),
			Span(Class("text-4xl font-bold text-headline"), g.Text(t.Price)),
			Span(Class("text-body"), g.Text(t.Unit)),
		),
		P(Class("text-sm text-muted-text mb-4"), g.Text("Minimum: "+t.Minimum)),
		P(Class("text-body mb-6"), g.Text(t.Description)),

		Ul(
			Class("space-y-3 mb-8 flex-1"),
			g.Group(g.Map(t.Features, func(f string) g.Node {
				return Li(
					Class("flex items-start gap-2 text-body"),
					Icon("lucide--check size-5 accent-text shrink-0", ""),
					g.Text(f),
				)
			})),
		),

		A(Href("#cta"), Class(button), g.Text(t.CTA)),
	)
}

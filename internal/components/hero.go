package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/ai-rd1/website/internal/content"
)

func Hero(h content.Hero) g.Node {
	return Section(
		ID("hero"),
		Class("relative pt-24 lg:pt-32 pb-16 lg:pb-24 overflow-hidden"),

		g.If(h.Video != "",
			Video(
				Class("absolute inset-0 w-full h-full object-cover"),
				g.Attr("autoplay"), g.Attr("loop"), g.Attr("muted"), g.Attr("playsinline"),
				Source(Src(h.Video), Type("video/mp4")),
			),
		),
		Div(Class("absolute inset-0 bg-black/70")),

		Div(
			Class("relative z-10 container mx-auto px-4 sm:px-6 lg:px-8"),
			Div(
				Class("max-w-4xl mx-auto text-center"),

				Div(
					Class("inline-flex items-center gap-2 px-4 py-2 rounded-full bg-white/10 backdrop-blur-sm border border-white/20 mb-6 animate-fade-in"),
					Div(Class("w-2 h-2 rounded-full bg-accent animate-pulse")),
					Span(Class("text-sm font-medium text-white"), g.Text(h.Badge)),
				),

				H1(
					Class("text-4xl sm:text-5xl lg:text-6xl font-bold text-white leading-tight mb-6 animate-fade-in"),
					g.Text(h.Headline+" "),
					Span(Class("accent-text"), g.Text(h.Highlight)),
				),

				P(
					Class("text-lg sm:text-xl text-white/80 max-w-2xl mx-auto mb-8 animate-fade-in"),
					g.Text(h.Subheadline),
				),

				Div(
					Class("flex flex-col sm:flex-row items-center justify-center gap-4 animate-fade-in"),
					A(
						Href("#cta"),
						Class("btn btn-cta btn-xl w-full sm:w-auto group"),
						Icon("lucide--phone size-5", ""),
						g.Text(h.PrimaryCTA),
						Icon("lucide--arrow-right size-4 ml-1 transition-transform group-hover:translate-x-1", ""),
					),
					A(
						Href("#cta"),
						Class("btn btn-cta-secondary btn-xl w-full sm:w-auto bg-white/10 border-white/30 text-white hover:bg-white/20"),
						g.Text(h.SecondaryCTA),
					),
				),

				Div(
					Class("mt-12 pt-8 border-t border-white/20 animate-fade-in"),
					P(Class("text-sm text-white/60 mb-4"), g.Text(h.TrustCaption)),
					Div(
						Class("flex items-center justify-center gap-8 opacity-60"),
						g.Group(g.Map(h.TrustLogos, func(name string) g.Node {
							return Div(Class("text-white font-semibold text-lg"), g.Text(name))
						})),
					),
				),
			),
		),
	)
}

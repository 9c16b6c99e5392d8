package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/ai-rd1/website/internal/content"
)

// LandingPage assembles the full page from the content catalog and the
// visitor's CTA state.
func LandingPage(c *content.Catalog, cta CTAProps, year int) g.Node {
	cta.Copy = c.CTA
	cta.DialCodes = c.DialCodes

	return Layout(
		PageConfig{
			Title:       c.Meta.Title,
			Description: c.Meta.Description,
			OGImage:     c.Meta.OGImage,
			CSRFToken:   cta.CSRFToken,
		},
		SiteHeader(c.Nav),
		Main(
			Class("pt-20"),
			Hero(c.Hero),
			Features(c.Features),
			UseCases(c.UseCases),
			Pricing(c.Pricing),
			CTA(cta),
		),
		PageFooter(c.Footer, year),
	)
}

package components

import (
	"fmt"
	"strings"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

func Logo() g.Node {
	return Div(
		Class("flex items-center gap-2"),
		Img(Src("/static/images/logo.svg"), Alt("AI-RD1"), Class("h-12 lg:h-14 w-auto")),
	)
}

func convertIconName(iconClass string) string {
	parts := strings.Fields(iconClass)
	if len(parts) == 0 {
		return ""
	}
	return strings.Replace(parts[0], "--", ":", 1)
}

func extractSizeClasses(iconClass string) string {
	parts := strings.Fields(iconClass)
	if len(parts) > 1 {
		return strings.Join(parts[1:], " ")
	}
	return ""
}

// Icon renders an iconify span. iconClass is "lucide--name [extra classes]".
// An empty ariaLabel hides the icon from screen readers.
func Icon(iconClass, ariaLabel string) g.Node {
	classes := "iconify inline-block"
	if size := extractSizeClasses(iconClass); size != "" {
		classes = fmt.Sprintf("iconify inline-block %s", size)
	}

	if ariaLabel != "" {
		return Span(
			Class(classes),
			g.Attr("data-icon", convertIconName(iconClass)),
			g.Attr("role", "img"),
			g.Attr("aria-label", ariaLabel),
		)
	}

	return Span(
		Class(classes),
		g.Attr("data-icon", convertIconName(iconClass)),
		g.Attr("aria-hidden", "true"),
	)
}

// IconBadge is the tinted square holding a card icon.
func IconBadge(icon string) g.Node {
	return Span(
		Class("inline-flex items-center justify-center shrink-0 select-none size-12 rounded-lg accent-tint-bg"),
		Span(
			Class("iconify size-6 accent-text"),
			g.Attr("data-icon", convertIconName(icon)),
			g.Attr("aria-hidden", "true"),
		),
	)
}

// SectionHeading is the centred title + subtitle block every section opens with.
func SectionHeading(title, subtitle string) g.Node {
	return Div(
		Class("max-w-3xl mx-auto text-center mb-12 lg:mb-16"),
		H2(Class("text-3xl sm:text-4xl lg:text-5xl font-bold text-headline mb-4"), g.Text(title)),
		P(Class("text-lg text-body"), g.Text(subtitle)),
	)
}

// CSRFField renders the hidden token input gorilla/csrf checks on form posts.
func CSRFField(token string) g.Node {
	if token == "" {
		return nil
	}
	return Input(Type("hidden"), Name("gorilla.csrf.Token"), Value(token))
}

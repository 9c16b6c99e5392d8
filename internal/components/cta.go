package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/ai-rd1/website/internal/content"
	"github.com/ai-rd1/website/internal/lead"
)

// CTAProps is everything the call-to-action card needs to render one state.
type CTAProps struct {
	Copy      content.CTA
	DialCodes []content.DialCode
	Form      lead.Form
	Outcome   lead.Outcome
	CSRFToken string
	// MinDate is the earliest selectable demo date, YYYY-MM-DD.
	MinDate string
}

func CTA(p CTAProps) g.Node {
	return Section(
		ID("cta"),
		Class("py-16 lg:py-24 bg-alt"),
		Div(
			Class("container mx-auto px-4 sm:px-6 lg:px-8"),
			SectionHeading(p.Copy.Title, p.Copy.Subtitle),

			Div(
				Class("max-w-3xl mx-auto"),
				Div(
					ID("cta-card"),
					Class("bg-card rounded-2xl p-8 lg:p-10 border border-border-card shadow-lg transition-all duration-300"),
					CTAPanel(p),
				),
			),
		),
	)
}

// CTAPanel renders exactly one of the form or the three result panels. The
// enhancement script swaps it in place after a JSON submission.
func CTAPanel(p CTAProps) g.Node {
	switch p.Outcome.Panel() {
	case lead.PanelCallSuccess:
		return resultPanel(
			"cta-call-success", "lucide--check-circle",
			callSuccessTitle(p.Outcome.Name),
			P(
				Class("text-body"),
				g.Text("Our AI will call you at "),
				Span(Class("font-medium"), ID("cta-phone"), g.Text(p.Outcome.Phone)),
				g.Text(" within 60 seconds."),
			),
			p.CSRFToken,
		)
	case lead.PanelScheduleSuccess:
		return resultPanel(
			"cta-schedule-success", "lucide--check-circle",
			"Demo Scheduled!",
			P(
				Class("text-body"),
				g.Text("We'll see you on "),
				Span(Class("font-medium"), g.Text(p.Outcome.Date)),
				g.Text(" at "),
				Span(Class("font-medium"), g.Text(p.Outcome.Time)),
				g.Text("."),
			),
			p.CSRFToken,
		)
	case lead.PanelError:
		return resultPanel(
			"cta-error", "lucide--alert-circle",
			"We couldn't place your request",
			P(Class("text-body"), ID("cta-error-message"), g.Text(p.Outcome.Message)),
			p.CSRFToken,
		)
	default:
		return leadForm(p)
	}
}

func callSuccessTitle(name string) string {
	if name == "" {
		return "Call Incoming!"
	}
	return "Call Incoming, " + name + "!"
}

func resultPanel(id, icon, title string, body g.Node, csrfToken string) g.Node {
	return Div(
		ID(id),
		Class("text-center py-8 animate-fade-in"),
		g.Attr("data-panel", id),
		Div(
			Class("w-16 h-16 rounded-full accent-tint-bg flex items-center justify-center mx-auto mb-4"),
			Icon(icon+" size-8 accent-text", ""),
		),
		H4(Class("text-lg font-semibold text-headline mb-2"), g.Text(title)),
		body,
		backButton(csrfToken),
	)
}

func backButton(csrfToken string) g.Node {
	return Form(
		Method("post"),
		Action("/lead/back"),
		Class("mt-6"),
		g.Attr("data-back"),
		CSRFField(csrfToken),
		Button(Type("submit"), Class("btn btn-cta-secondary"), g.Text("Back")),
	)
}

func leadForm(p CTAProps) g.Node {
	f := p.Form
	loading := p.Outcome.InFlight()

	return Form(
		ID("lead-form"),
		Method("post"),
		Action("/lead"),
		Class("space-y-6"),
		g.Attr("data-api", "/api/leads"),
		g.Attr("data-mode", string(f.Mode)),
		g.If(loading, g.Attr("aria-busy", "true")),

		CSRFField(p.CSRFToken),
		Input(Type("hidden"), Name("mode"), Value(string(f.Mode))),
		Input(Type("hidden"), Name("timezone"), Value(f.Timezone), g.Attr("data-timezone")),

		Div(
			Class("grid grid-cols-1 md:grid-cols-2 gap-6"),
			field("firstName", "First Name",
				textInput("firstName", "first_name", "text", "Steven", f.FirstName, true),
			),
			field("phone", "Phone Number",
				Div(
					Class("flex gap-2"),
					dialCodeSelect(p.DialCodes, f.DialCode),
					textInput("phone", "phone", "tel", "(555) 000-0000", f.Phone, true),
				),
			),
		),

		Div(
			Class("grid grid-cols-1 md:grid-cols-2 gap-6"),
			field("companyName", "Company Name",
				textInput("companyName", "company_name", "text", "Acme Inc.", f.CompanyName, true),
			),
			field("companySize", "Company Size", companySizeSelect(f.CompanySize)),
		),

		Div(
			Class("flex items-start space-x-3 p-1"),
			Input(
				ID("terms"), Type("checkbox"), Name("consent"), Value("on"),
				Class("mt-0.5 checkbox-accent"),
				Required(),
				g.If(f.Consent, Checked()),
			),
			Label(
				g.Attr("for", "terms"),
				Class("text-sm text-muted-text leading-tight cursor-pointer select-none"),
				g.Text(p.Copy.Consent),
			),
		),

		modeToggle(f.Scheduling(), loading),
		scheduleFields(f, p.MinDate, loading),
	)
}

func field(id, label string, control g.Node) g.Node {
	return Div(
		Class("space-y-2"),
		Label(g.Attr("for", id), Class("text-sm font-medium text-headline"), g.Text(label)),
		control,
	)
}

func textInput(id, name, typ, placeholder, value string, required bool) g.Node {
	return Input(
		ID(id), Name(name), Type(typ),
		Placeholder(placeholder),
		Value(value),
		Class("input h-12 w-full font-medium"),
		g.If(required, Required()),
	)
}

func dialCodeSelect(codes []content.DialCode, selected string) g.Node {
	if selected == "" {
		selected = lead.DefaultDialCode
	}
	return Select(
		Name("dial_code"),
		g.Attr("aria-label", "Country code"),
		Class("input h-12 w-28 font-medium"),
		g.Group(g.Map(codes, func(d content.DialCode) g.Node {
			return Option(
				Value(d.Prefix),
				g.Attr("title", d.Label),
				g.If(d.Prefix == selected, Selected()),
				g.Text(d.Option()),
			)
		})),
	)
}

func companySizeSelect(selected lead.CompanySize) g.Node {
	return Select(
		ID("companySize"),
		Name("company_size"),
		Class("input h-12 w-full font-medium"),
		Required(),
		Option(Value(""), Disabled(), g.If(selected == "", Selected()), g.Text("Select size")),
		g.Group(g.Map(lead.CompanySizes, func(s lead.CompanySize) g.Node {
			return Option(
				Value(string(s)),
				g.If(s == selected, Selected()),
				g.Text(s.Label()),
			)
		})),
	)
}

// modeToggle renders Call Now and Schedule Call. Without JavaScript the
// inactive button posts to /lead/mode; in Call Now mode the Call Now button
// submits the lead.
func modeToggle(scheduling, loading bool) g.Node {
	active := "btn btn-cta h-14 text-base font-semibold w-full shadow-lg shadow-accent/25 scale-[1.02]"
	inactive := "btn btn-outline h-14 text-base font-semibold w-full text-muted-text hover:text-headline"

	callClass, scheduleClass := active, inactive
	if scheduling {
		callClass, scheduleClass = inactive, active
	}

	return Div(
		Class("grid grid-cols-1 sm:grid-cols-2 gap-4 pt-2"),
		Button(
			Type("submit"),
			Class(callClass),
			g.Attr("data-call-now"),
			g.If(scheduling, g.Group([]g.Node{
				g.Attr("formaction", "/lead/mode"),
				g.Attr("formnovalidate"),
				Name("switch_to"),
				Value(string(lead.ModeCall)),
			})),
			g.If(loading, Disabled()),
			g.If(!scheduling, Icon("lucide--phone mr-2 size-5 animate-pulse", "")),
			g.If(loading && !scheduling, g.Text("Connecting...")),
			g.If(!loading || scheduling, g.Text("Call Now")),
		),
		Button(
			Type("submit"),
			Class(scheduleClass),
			g.Attr("data-schedule"),
			g.Attr("formaction", "/lead/mode"),
			g.Attr("formnovalidate"),
			Name("switch_to"),
			Value(string(lead.ModeSchedule)),
			g.If(loading, Disabled()),
			g.If(scheduling, Icon("lucide--calendar mr-2 size-5", "")),
			g.Text("Schedule Call"),
		),
	)
}

func scheduleFields(f lead.Form, minDate string, loading bool) g.Node {
	class := "grid grid-cols-1 md:grid-cols-2 gap-6 pt-6 border-t border-border mt-6 schedule-fields"
	if !f.Scheduling() {
		class += " hidden"
	}
	next := lead.PM
	if f.Time.Period == lead.PM {
		next = lead.AM
	}
	period := f.Time.Period
	if period == "" {
		period = lead.AM
	}

	return Div(
		Class(class),
		g.Attr("data-schedule-fields"),

		Div(
			Class("space-y-2"),
			Label(
				g.Attr("for", "date"),
				Class("text-sm font-medium text-headline flex items-center gap-2"),
				Icon("lucide--calendar size-4 text-accent", ""),
				g.Text("Select Date"),
			),
			Input(
				ID("date"), Name("date"), Type("date"),
				Value(f.Date),
				g.If(minDate != "", Min(minDate)),
				Class("input h-12 w-full"),
			),
		),

		Div(
			Class("space-y-2"),
			Label(
				g.Attr("for", "hour"),
				Class("text-sm font-medium text-headline flex items-center gap-2"),
				Icon("lucide--clock size-4 text-accent", ""),
				g.Text("Select Time"),
			),
			Div(
				Class("flex items-center h-12 w-full rounded-md border border-input bg-background overflow-hidden time-input"),
				Input(
					ID("hour"), Name("hour"), Type("text"),
					g.Attr("inputmode", "numeric"), g.Attr("maxlength", "2"), g.Attr("data-segment", "hour"),
					Placeholder("HH"), Value(f.Time.Hour), g.Attr("aria-label", "Hour"),
					Class("w-full text-center bg-transparent border-none text-lg font-semibold h-full"),
				),
				Span(Class("text-muted-foreground font-bold pb-1"), g.Text(":")),
				Input(
					ID("minute"), Name("minute"), Type("text"),
					g.Attr("inputmode", "numeric"), g.Attr("maxlength", "2"), g.Attr("data-segment", "minute"),
					Placeholder("MM"), Value(f.Time.Minute), g.Attr("aria-label", "Minute"),
					Class("w-full text-center bg-transparent border-none text-lg font-semibold h-full"),
				),
				Input(Type("hidden"), Name("period"), Value(string(period))),
				Button(
					Type("submit"),
					g.Attr("formaction", "/lead/mode"),
					g.Attr("formnovalidate"),
					Name("set_period"),
					Value(string(next)),
					g.Attr("data-period-toggle"),
					g.Attr("aria-label", "Toggle AM/PM"),
					Class("h-full px-4 text-xl font-bold text-accent border-l border-border w-16"),
					g.Text(string(period)),
				),
			),
		),

		Div(
			Class("md:col-span-2 pt-2"),
			Button(
				Type("submit"),
				Class("btn btn-cta btn-lg w-full h-14 text-lg group"),
				g.Attr("data-confirm-schedule"),
				g.If(loading, Disabled()),
				g.If(loading, g.Text("Scheduling...")),
				g.If(!loading, g.Text("Confirm Schedule")),
				Icon("lucide--arrow-right ml-2 size-5 transition-transform group-hover:translate-x-1", ""),
			),
		),
	)
}

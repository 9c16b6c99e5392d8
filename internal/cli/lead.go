package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/ai-rd1/website/internal/lead"
)

// leadFlags are shared by call and schedule.
type leadFlags struct {
	name     string
	phone    string
	dialCode string
	company  string
	size     string
	consent  bool
}

func (f *leadFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.name, "name", "", "first name")
	cmd.Flags().StringVar(&f.phone, "phone", "", "phone number, local digits or +E.164")
	cmd.Flags().StringVar(&f.dialCode, "dial-code", lead.DefaultDialCode, "country dial code")
	cmd.Flags().StringVar(&f.company, "company", "", "company name")
	cmd.Flags().StringVar(&f.size, "size", "", "company size bucket (see 'leadctl sizes')")
	cmd.Flags().BoolVar(&f.consent, "consent", false, "the lead agreed to receive calls and SMS")
	for _, name := range []string{"name", "phone", "company", "size"} {
		_ = cmd.MarkFlagRequired(name)
	}
}

func (f *leadFlags) form(mode lead.Mode) lead.Form {
	form := lead.NewForm()
	form.FirstName = f.name
	form.Phone = f.phone
	form.DialCode = f.dialCode
	form.CompanyName = f.company
	form.CompanySize = lead.CompanySize(f.size)
	form.Consent = f.consent
	form.Mode = mode
	return form
}

func newCallCmd(opts *options) *cobra.Command {
	var lf leadFlags

	cmd := &cobra.Command{
		Use:     "call",
		Short:   "Ask the AI to call a lead right now",
		Example: `  leadctl call --name Steven --phone "555 000 1234" --company "Acme Inc." --size 11-50 --consent`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return submit(cmd.Context(), cmd, opts, lf.form(lead.ModeCall))
		},
	}
	lf.register(cmd)
	return cmd
}

func newScheduleCmd(opts *options) *cobra.Command {
	var (
		lf     leadFlags
		date   string
		clock  string
		period string
		tz     string
	)

	cmd := &cobra.Command{
		Use:     "schedule",
		Short:   "Schedule a demo call for a lead",
		Example: `  leadctl schedule --name Steven --phone "7700 900123" --dial-code +44 \
    --company "Acme Inc." --size 100+ --consent \
    --date 2026-10-20 --time 09:30 --period PM --tz Europe/London`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			form := lf.form(lead.ModeSchedule)
			form.Date = date
			hour, minute, _ := strings.Cut(clock, ":")
			form.Time = lead.TimeOfDay{Hour: hour, Minute: minute, Period: lead.ParsePeriod(period)}
			form.Timezone = tz
			return submit(cmd.Context(), cmd, opts, form)
		},
	}
	lf.register(cmd)
	cmd.Flags().StringVar(&date, "date", "", "demo date, YYYY-MM-DD")
	cmd.Flags().StringVar(&clock, "time", "", "demo time on a 12-hour clock, HH:MM")
	cmd.Flags().StringVar(&period, "period", string(lead.AM), "AM or PM")
	cmd.Flags().StringVar(&tz, "tz", "", "IANA time zone of the lead (default UTC)")
	_ = cmd.MarkFlagRequired("date")
	_ = cmd.MarkFlagRequired("time")
	return cmd
}

func submit(ctx context.Context, cmd *cobra.Command, opts *options, form lead.Form) error {
	if ctx == nil {
		ctx = context.Background()
	}
	log := opts.logger(cmd.ErrOrStderr())

	client := lead.NewClient(opts.baseURL(), opts.timeout(), log)
	controller := lead.NewController(client, nil, nil, log)

	out, err := controller.Submit(ctx, lead.Visitor{Key: "leadctl", IP: "cli"}, form)
	if err != nil && out.State != lead.StateFailed {
		return err
	}
	if printErr := printOutcome(cmd.OutOrStdout(), opts.output(), out); printErr != nil {
		return printErr
	}
	if out.State == lead.StateFailed {
		return fmt.Errorf("lead not placed: %s", out.Message)
	}
	return nil
}

func printOutcome(w io.Writer, format string, out lead.Outcome) error {
	if format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	table := tablewriter.NewWriter(w)
	table.Header("Field", "Value")
	_ = table.Append("Result", outcomeTitle(out))
	if out.ID != "" {
		_ = table.Append("Submission", out.ID)
	}
	if out.Name != "" {
		_ = table.Append("Name", out.Name)
	}
	switch out.Kind {
	case lead.KindCall:
		_ = table.Append("Phone", out.Phone)
	case lead.KindSchedule:
		_ = table.Append("Date", out.Date)
		_ = table.Append("Time", out.Time)
	}
	if out.Message != "" {
		_ = table.Append("Message", out.Message)
	}
	return table.Render()
}

func outcomeTitle(out lead.Outcome) string {
	switch out.Panel() {
	case lead.PanelCallSuccess:
		return "Call incoming"
	case lead.PanelScheduleSuccess:
		return "Demo scheduled"
	case lead.PanelError:
		return "Failed"
	}
	return string(out.State)
}

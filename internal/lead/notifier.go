package lead

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/mailgun/mailgun-go/v4"
	"github.com/twilio/twilio-go"
	openapi "github.com/twilio/twilio-go/rest/api/v2010"

	"github.com/ai-rd1/website/internal/config"
	"github.com/ai-rd1/website/pkg/logger"
)

// Submission is a lead the call service accepted.
type Submission struct {
	ID          string
	Request     LeadRequest
	Form        Form
	SubmittedAt time.Time
	IP          string
	UserAgent   string
}

// Notifier tells people about an accepted lead. Failures never change the
// visitor's outcome.
type Notifier interface {
	Notify(ctx context.Context, s Submission) error
}

// NewNotifier wires the channels that are configured: Mailgun email to sales
// and Twilio SMS confirmations for scheduled demos.
func NewNotifier(cfg *config.Config, log *slog.Logger) Notifier {
	var channels []Notifier

	if cfg.Email.IsConfigured() {
		log.Info("lead emails enabled",
			slog.String("domain", cfg.Email.MailgunDomain),
			slog.String("to", cfg.Email.SalesEmail))
		mg := mailgun.NewMailgun(cfg.Email.MailgunDomain, cfg.Email.MailgunAPIKey)
		channels = append(channels, &EmailNotifier{
			sender: &mailgunSender{client: mg},
			from:   fmt.Sprintf("%s <%s>", cfg.Email.FromName, cfg.Email.FromEmail),
			to:     cfg.Email.SalesEmail,
			log:    log.With(logger.Scope("lead.email")),
		})
	}

	if cfg.SMS.IsConfigured() {
		log.Info("lead SMS confirmations enabled", slog.String("from", cfg.SMS.FromNumber))
		tw := twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: cfg.SMS.AccountSID,
			Password: cfg.SMS.AuthToken,
		})
		channels = append(channels, &SMSNotifier{
			api:  tw.Api,
			from: cfg.SMS.FromNumber,
			log:  log.With(logger.Scope("lead.sms")),
		})
	}

	if len(channels) == 0 {
		log.Info("using no-op lead notifier (Mailgun and Twilio not configured)")
		return &noOpNotifier{log: log.With(logger.Scope("lead.notify"))}
	}
	return MultiNotifier(channels)
}

// MultiNotifier fans a submission out to every channel and joins their errors.
type MultiNotifier []Notifier

func (m MultiNotifier) Notify(ctx context.Context, s Submission) error {
	var errs []error
	for _, n := range m {
		if err := n.Notify(ctx, s); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

type noOpNotifier struct {
	log *slog.Logger
}

func (n *noOpNotifier) Notify(_ context.Context, s Submission) error {
	n.log.Info("lead notification (no-op)",
		slog.String("submission_id", s.ID),
		slog.String("call_type", string(s.Request.CallType)))
	return nil
}

// mailSender is the part of Mailgun the email notifier uses.
type mailSender interface {
	Send(ctx context.Context, from, subject, text, to string) (string, error)
}

type mailgunSender struct {
	client *mailgun.MailgunImpl
}

func (s *mailgunSender) Send(ctx context.Context, from, subject, text, to string) (string, error) {
	msg := s.client.NewMessage(from, subject, text, to)
	_, id, err := s.client.Send(ctx, msg)
	return id, err
}

// EmailNotifier mails every accepted lead to the sales inbox.
type EmailNotifier struct {
	sender mailSender
	from   string
	to     string
	log    *slog.Logger
}

func (n *EmailNotifier) Notify(ctx context.Context, s Submission) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	id, err := n.sender.Send(ctx, n.from, emailSubject(s), emailBody(s), n.to)
	if err != nil {
		notifications.WithLabelValues("email", "error").Inc()
		return fmt.Errorf("send lead email: %w", err)
	}
	notifications.WithLabelValues("email", "sent").Inc()
	n.log.Info("lead email sent",
		slog.String("submission_id", s.ID),
		slog.String("message_id", id))
	return nil
}

func emailSubject(s Submission) string {
	if s.Request.CallType == CallSchedule {
		return fmt.Sprintf("Demo scheduled: %s (%s)", s.Request.CompanyName, s.Request.Name)
	}
	return fmt.Sprintf("Call requested: %s (%s)", s.Request.CompanyName, s.Request.Name)
}

func emailBody(s Submission) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Submission: %s\n", s.ID)
	fmt.Fprintf(&b, "Name: %s\n", s.Request.Name)
	fmt.Fprintf(&b, "Phone: %s\n", s.Request.Phone)
	fmt.Fprintf(&b, "Company: %s\n", s.Request.CompanyName)
	fmt.Fprintf(&b, "Company size: %s\n", s.Request.CompanySize.Label())
	fmt.Fprintf(&b, "Call type: %s\n", s.Request.CallType)
	if s.Request.CallType == CallSchedule {
		fmt.Fprintf(&b, "Scheduled at: %s (%s)\n", s.Request.ScheduledAt, s.Request.Timezone)
	}
	fmt.Fprintf(&b, "Submitted: %s\n", s.SubmittedAt.UTC().Format(time.RFC3339))
	if s.IP != "" {
		fmt.Fprintf(&b, "IP: %s\n", s.IP)
	}
	return b.String()
}

// smsAPI is the part of the Twilio REST client the SMS notifier uses.
type smsAPI interface {
	CreateMessage(params *openapi.CreateMessageParams) (*openapi.ApiV2010Message, error)
}

// SMSNotifier texts a confirmation to leads that scheduled a demo and agreed
// to receive SMS.
type SMSNotifier struct {
	api  smsAPI
	from string
	log  *slog.Logger
}

func (n *SMSNotifier) Notify(_ context.Context, s Submission) error {
	if s.Request.CallType != CallSchedule || !s.Form.Consent {
		return nil
	}

	params := &openapi.CreateMessageParams{}
	params.SetTo(s.Request.Phone)
	params.SetFrom(n.from)
	params.SetBody(smsBody(s))

	msg, err := n.api.CreateMessage(params)
	if err != nil {
		notifications.WithLabelValues("sms", "error").Inc()
		return fmt.Errorf("send lead sms: %w", err)
	}
	notifications.WithLabelValues("sms", "sent").Inc()

	attrs := []any{slog.String("submission_id", s.ID)}
	if msg != nil && msg.Sid != nil {
		attrs = append(attrs, slog.String("sid", *msg.Sid))
	}
	n.log.Info("lead sms sent", attrs...)
	return nil
}

func smsBody(s Submission) string {
	return fmt.Sprintf("Hi %s, your AI-RD1 demo is booked for %s at %s. Reply STOP to opt out.",
		s.Request.Name, s.Form.DisplayDate(), s.Form.Time)
}

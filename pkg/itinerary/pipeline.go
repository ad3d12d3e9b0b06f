package itinerary

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/dmitrymomot/travelmail/pkg/attachment"
	"github.com/dmitrymomot/travelmail/pkg/booking"
	"github.com/dmitrymomot/travelmail/pkg/brand"
	"github.com/dmitrymomot/travelmail/pkg/logger"
	"github.com/dmitrymomot/travelmail/pkg/mail"
	"github.com/dmitrymomot/travelmail/pkg/outlet"
	"github.com/dmitrymomot/travelmail/pkg/report"
	"github.com/dmitrymomot/travelmail/pkg/template"
)

// Config holds the itinerary flow settings.
type Config struct {
	FromAddress   string `env:"EMAIL_FROM_ADDRESS,required"`
	BCCAddress    string `env:"CONFIRMATION_BCC_EMAIL"`
	AttachmentDir string `env:"EMAIL_ATTACHMENT_DIR" envDefault:"attachments"`
}

// Overrides optionally replaces parts of the assembled confirmation.
// Blank fields keep the built values.
type Overrides struct {
	Recipient string
	From      string
	Subject   string
	Body      string
}

// Confirmation is the assembled confirmation email before dispatch.
type Confirmation struct {
	To       string
	From     string
	BCC      string
	Subject  string
	BodyHTML string

	// Attachments lists the rule-selected attachment file names; the
	// rendered PDF is not included here.
	Attachments []string
}

// Pipeline orchestrates the confirmation/itinerary flow.
type Pipeline struct {
	store   booking.DataStore
	outlets outlet.Directory
	reports report.Service
	sender  mail.Sender
	policy  brand.Policy
	cfg     Config
	log     *slog.Logger
	backoff time.Duration
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithLogger sets the pipeline's logger.
func WithLogger(log *slog.Logger) Option {
	return func(p *Pipeline) {
		if log != nil {
			p.log = log
		}
	}
}

// WithBackoff overrides the inter-attempt backoff, mainly for tests.
func WithBackoff(d time.Duration) Option {
	return func(p *Pipeline) {
		if d >= 0 {
			p.backoff = d
		}
	}
}

// New creates an itinerary pipeline for one brand policy.
func New(store booking.DataStore, outlets outlet.Directory, reports report.Service, sender mail.Sender, policy brand.Policy, cfg Config, opts ...Option) *Pipeline {
	p := &Pipeline{
		store:   store,
		outlets: outlets,
		reports: reports,
		sender:  sender,
		policy:  policy,
		cfg:     cfg,
		log:     slog.Default(),
		backoff: time.Second,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

var titleCaser = cases.Title(language.AmericanEnglish)

// BuildConfirmation assembles the confirmation email for a booking without
// sending it. Recipient and from fall back to the booker's email and the
// configured from-address when blank.
func (p *Pipeline) BuildConfirmation(ctx context.Context, bookingID int, recipient, from string) (Confirmation, error) {
	conf, _, err := p.build(ctx, bookingID, recipient, from)
	return conf, err
}

func (p *Pipeline) build(ctx context.Context, bookingID int, recipient, from string) (Confirmation, []booking.Item, error) {
	bk, err := p.store.Booking(ctx, bookingID)
	if err != nil {
		return Confirmation{}, nil, err
	}
	passengers, err := p.store.Passengers(ctx, bookingID)
	if err != nil {
		return Confirmation{}, nil, err
	}
	booker, err := booking.Booker(passengers)
	if err != nil {
		return Confirmation{}, nil, fmt.Errorf("%w: booking %d", err, bookingID)
	}

	tpl, err := p.store.ItineraryTemplate(ctx, bookingID)
	if err != nil {
		return Confirmation{}, nil, err
	}
	if tpl.IsZero() {
		return Confirmation{}, nil, fmt.Errorf("%w: booking %d", ErrMissingTemplate, bookingID)
	}

	items, err := p.store.Items(ctx, bookingID)
	if err != nil {
		return Confirmation{}, nil, err
	}

	if recipient = strings.TrimSpace(recipient); recipient == "" {
		recipient = booker.Email
	}
	if from = strings.TrimSpace(from); from == "" {
		from = p.cfg.FromAddress
	}

	// First token only: middle names recorded in the first-name field do
	// not belong in the greeting.
	firstName := booker.FirstName
	if fields := strings.Fields(firstName); len(fields) > 0 {
		firstName = fields[0]
	}
	firstName = titleCaser.String(strings.ToLower(firstName))
	surname := titleCaser.String(strings.ToLower(booker.Surname))

	subject := template.Fill(tpl.Subject,
		"[BOOKINGID]", strconv.Itoa(bookingID),
		"[SURNAME]", surname,
		"[DEPARTUREDATE]", tpl.DepartureDate,
	)
	intro := template.Fill(tpl.Intro, "[PAXNAME]", firstName)
	footer := p.confirmationFooter(ctx, bk, tpl.Footer)

	body := intro + tpl.Body() + footer
	body = strings.ReplaceAll(body, "\n", "")
	subject = strings.ReplaceAll(subject, "\n", "")

	conf := Confirmation{
		To:       recipient,
		From:     from,
		BCC:      p.cfg.BCCAddress,
		Subject:  subject,
		BodyHTML: body,
	}

	// Attachment rules only apply to brands that send the rendered
	// document.
	if !p.policy.SkipItineraryPDF {
		rules, err := p.store.AttachmentRules(ctx)
		if err != nil {
			return Confirmation{}, nil, err
		}
		region := bk.Region
		if region == "" {
			region = "NZ"
		}
		conf.Attachments = attachment.Select(rules, region, booking.TripCities(items), p.policy.AttachmentOptions())
	}

	return conf, items, nil
}

// Send assembles, validates, renders and dispatches the confirmation for a
// booking. Validation and render problems abort before any send and are
// returned; transport failures are handled by the bounded retry and
// reported through the DispatchResult only.
func (p *Pipeline) Send(ctx context.Context, bookingID int, ov Overrides) (DispatchResult, error) {
	conf, items, err := p.build(ctx, bookingID, ov.Recipient, ov.From)
	if err != nil {
		return DispatchResult{}, err
	}

	if s := strings.TrimSpace(ov.Subject); s != "" {
		conf.Subject = s
	}
	if b := strings.TrimSpace(ov.Body); b != "" {
		conf.BodyHTML = b
	}

	if !mail.IsAddress(conf.To) || !mail.IsAddress(conf.From) {
		return DispatchResult{}, fmt.Errorf("%w: unable to parse recipient %q or from %q for booking %d",
			ErrInvalidAddress, conf.To, conf.From, bookingID)
	}
	// An unusable BCC must not block the customer's confirmation.
	if conf.BCC != "" && !mail.IsAddress(conf.BCC) {
		conf.BCC = ""
	}

	msg := mail.Message{
		To:       []string{conf.To},
		From:     conf.From,
		Bcc:      mail.SplitRecipients(conf.BCC),
		Subject:  conf.Subject,
		BodyHTML: conf.BodyHTML,
	}

	if !p.policy.SkipItineraryPDF {
		pdf, err := report.RenderPDF(ctx, p.reports, p.policy.ReportPath(items), map[string]string{
			"BookingID": strconv.Itoa(bookingID),
		})
		if err != nil {
			p.log.LogAttrs(ctx, slog.LevelError, "Could not render itinerary document",
				logger.BookingID(bookingID),
				logger.Brand(p.policy.Name),
				logger.Error(err),
			)
			return DispatchResult{}, err
		}
		msg.Attachments = append(msg.Attachments, mail.Attachment{
			Name:        fmt.Sprintf("HOT%d.pdf", bookingID),
			Content:     pdf,
			ContentType: "application/pdf",
		})
		msg.Attachments = append(msg.Attachments, p.loadRuleAttachments(ctx, bookingID, conf.Attachments)...)
	}

	p.log.LogAttrs(ctx, slog.LevelInfo, "Begin itinerary dispatch",
		logger.BookingID(bookingID),
		logger.Recipient(conf.To),
		logger.Brand(p.policy.Name),
	)

	return p.dispatch(ctx, bookingID, msg), nil
}

// loadRuleAttachments reads the rule-selected files from the attachment
// directory, de-branding each file name. Unreadable files are logged and
// skipped rather than failing the whole confirmation.
func (p *Pipeline) loadRuleAttachments(ctx context.Context, bookingID int, files []string) []mail.Attachment {
	var attachments []mail.Attachment
	for _, name := range files {
		content, err := os.ReadFile(filepath.Join(p.cfg.AttachmentDir, name))
		if err != nil {
			p.log.LogAttrs(ctx, slog.LevelWarn, "Skipping unreadable attachment file",
				logger.BookingID(bookingID),
				slog.String("file", name),
				logger.Error(err),
			)
			continue
		}
		attachments = append(attachments, mail.Attachment{
			Name:        mail.StripBrandToken(name, p.policy.Name),
			Content:     content,
			ContentType: contentTypeFor(name),
		})
	}
	return attachments
}

func contentTypeFor(name string) string {
	if strings.EqualFold(filepath.Ext(name), ".pdf") {
		return "application/pdf"
	}
	return "application/octet-stream"
}

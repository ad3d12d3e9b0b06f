package notify

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrymomot/travelmail/pkg/booking"
	"github.com/dmitrymomot/travelmail/pkg/compose"
	"github.com/dmitrymomot/travelmail/pkg/logger"
	"github.com/dmitrymomot/travelmail/pkg/mail"
	"github.com/dmitrymomot/travelmail/pkg/outlet"
	"github.com/dmitrymomot/travelmail/pkg/template"
)

// MessageType selects the notification flow.
type MessageType string

const (
	Cancel        MessageType = "Cancel"
	PartialCancel MessageType = "PartialCancel"
	Failure       MessageType = "Failure"
	UrgentBooking MessageType = "UrgentBooking"
	AgeRange      MessageType = "AgeRange"
)

// Addresses holds the fixed mailboxes the notification flows target.
type Addresses struct {
	From       string
	CallCentre string
	Urgent     string
}

// Composer orchestrates the notification flows.
type Composer struct {
	store    booking.DataStore
	outlets  outlet.Directory
	sections *compose.Composer
	sender   mail.Sender
	addrs    Addresses
	log      *slog.Logger
	now      func() time.Time
}

// Option configures a Composer.
type Option func(*Composer)

// WithLogger sets the composer's logger.
func WithLogger(log *slog.Logger) Option {
	return func(c *Composer) {
		if log != nil {
			c.log = log
		}
	}
}

// WithClock overrides the timestamp source, mainly for tests.
func WithClock(now func() time.Time) Option {
	return func(c *Composer) {
		if now != nil {
			c.now = now
		}
	}
}

// New creates a notification composer.
func New(store booking.DataStore, outlets outlet.Directory, sections *compose.Composer, sender mail.Sender, addrs Addresses, opts ...Option) *Composer {
	c := &Composer{
		store:    store,
		outlets:  outlets,
		sections: sections,
		sender:   sender,
		addrs:    addrs,
		log:      slog.Default(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SendNotice composes and dispatches the notification for one booking
// event. Collaborator fetch failures are logged and suppressed here so a
// broken notification never surfaces into the booking workflow; flow-level
// policy decides whether transport failures propagate.
func (c *Composer) SendNotice(ctx context.Context, msgType MessageType, bookingID int, reason string) error {
	bk, err := c.store.Booking(ctx, bookingID)
	if err != nil {
		return c.suppress(ctx, msgType, bookingID, err)
	}
	items, err := c.store.Items(ctx, bookingID)
	if err != nil {
		return c.suppress(ctx, msgType, bookingID, err)
	}
	passengers, err := c.store.Passengers(ctx, bookingID)
	if err != nil {
		return c.suppress(ctx, msgType, bookingID, err)
	}
	tpl, err := c.store.MessageSections(ctx)
	if err != nil {
		return c.suppress(ctx, msgType, bookingID, err)
	}

	booker, err := booking.Booker(passengers)
	if err != nil {
		return fmt.Errorf("%w: booking %d", err, bookingID)
	}
	sum := booking.Summarize(passengers)

	switch msgType {
	case Cancel:
		return c.sendCancel(ctx, tpl, bk, items, booker, sum)
	case PartialCancel:
		return c.sendPartialCancel(ctx, tpl, bk, items, booker, sum)
	case Failure, UrgentBooking, AgeRange:
		return c.sendFail(ctx, tpl, bk, items, booker, sum, reason, msgType)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownMessageType, msgType)
	}
}

// sendCancel dispatches once and swallows transport failures.
func (c *Composer) sendCancel(ctx context.Context, tpl template.Sections, bk booking.Booking, items []booking.Item, booker booking.Passenger, sum booking.Summary) error {
	intro := template.Fill(tpl.CancelIntro,
		"PNR_HERE", c.pnrList(ctx, bk.ID),
		"TRAVELLER_NAME_HERE", sum.NonBookerNames,
		"TITLE_HERE FIRST_NAME_HERE LAST_NAME_HERE", sum.NonBookerNames,
	)

	msg := mail.Message{
		To:       c.recipients(bk, booker),
		From:     c.addrs.From,
		Subject:  "Cancel -- Booking details for " + booker.FirstName + " " + booker.Surname,
		BodyHTML: c.body(intro, tpl, bk, items, sum, false) + closingTags,
	}

	if err := c.sender.Send(ctx, msg); err != nil {
		c.log.LogAttrs(ctx, slog.LevelError, "Failed to send cancel notification",
			logger.BookingID(bk.ID),
			logger.Error(err),
		)
	}
	return nil
}

// sendPartialCancel dispatches once and swallows transport failures.
func (c *Composer) sendPartialCancel(ctx context.Context, tpl template.Sections, bk booking.Booking, items []booking.Item, booker booking.Passenger, sum booking.Summary) error {
	intro := template.Fill(tpl.PartialCancelIntro,
		"PNR_HERE", c.pnrList(ctx, bk.ID),
		"TRAVELLER_NAME_HERE", sum.NonBookerNames,
		"TITLE_HERE FIRST_NAME_HERE LAST_NAME_HERE", sum.NonBookerNames,
		"BOOKING_ID_HERE", strconv.Itoa(bk.ID),
	)

	msg := mail.Message{
		To:       c.recipients(bk, booker),
		From:     c.addrs.From,
		Subject:  "URGENT - Booking partially completed",
		BodyHTML: c.body(intro, tpl, bk, items, sum, false) + closingTags,
	}

	if err := c.sender.Send(ctx, msg); err != nil {
		c.log.LogAttrs(ctx, slog.LevelError, "Failed to send partial cancel notification",
			logger.BookingID(bk.ID),
			logger.Error(err),
		)
	}
	return nil
}

// sendFail dispatches once; transport failures are logged and returned to
// the caller, unlike the cancel flows.
func (c *Composer) sendFail(ctx context.Context, tpl template.Sections, bk booking.Booking, items []booking.Item, booker booking.Passenger, sum booking.Summary, reason string, msgType MessageType) error {
	timestamp := c.now().Format("Monday, January 2, 2006 3:04:05 PM")
	displayReason := reason

	// Header precedence: payment failure, then urgent type, then booking
	// failure, then age range. A later match overrides an earlier one.
	header := tpl.FailHeader
	if strings.EqualFold(reason, "PAYMENTFAILURE") {
		header = tpl.PayFailHeader
	}
	if msgType == UrgentBooking {
		header = tpl.UrgentHeader
	}
	if strings.EqualFold(reason, "BOOKINGFAILURE") {
		header = tpl.BookFailHeader
		displayReason = "Book"
	}
	if msgType == AgeRange {
		header = tpl.AgeRangeHeader
	}

	msgs, vendors := faultLines(c.faults(ctx, bk.ID))

	header = template.Fill(header,
		"BOOKING_ID", strconv.Itoa(bk.ID),
		"TITLE_HERE FIRST_NAME_HERE LAST_NAME_HERE", sum.NonBookerNames,
		"FAIL_REASON_HERE", displayReason,
		"FAIL_TIME_HERE", timestamp,
		"ERROR_MSG_HERE", msgs,
		"AIRLINE_NAME_HERE", vendors,
	)

	body := c.body(header, tpl, bk, items, sum, true) + c.failFooter(ctx, tpl, bk, booker)

	msg := mail.Message{
		From:     c.addrs.From,
		BodyHTML: body,
	}
	if msgType == UrgentBooking {
		// Urgent escalations target the dedicated mailbox exclusively.
		msg.To = mail.SplitRecipients(c.addrs.Urgent)
		prefix := ""
		if strings.EqualFold(reason, "BOOKINGFAILURE") {
			prefix = "Unknown - "
		}
		msg.Subject = prefix +
			"Urgent Booking Created. Details for " + booker.FirstName + " " + booker.Surname +
			", Booking Ref: " + strconv.Itoa(bk.ID) +
			", Value: " + compose.Currency(bk.Total) +
			", Date: " + timestamp
	} else {
		msg.To = c.recipients(bk, booker)
		msg.Subject = "Failure -- Booking details for " + booker.FirstName + " " + booker.Surname
	}

	if err := c.sender.Send(ctx, msg); err != nil {
		c.log.LogAttrs(ctx, slog.LevelError, "Failed to send failure notification",
			logger.BookingID(bk.ID),
			slog.String("to", strings.Join(msg.To, ";")),
			logger.Error(err),
		)
		return fmt.Errorf("%w: booking %d: %v", ErrSendFailed, bk.ID, err)
	}
	return nil
}

const closingTags = "</Table></body></HTML>"

// body concatenates the flow intro, the composed item sections and the
// grand total fragment.
func (c *Composer) body(intro string, tpl template.Sections, bk booking.Booking, items []booking.Item, sum booking.Summary, withDiscounts bool) string {
	return intro +
		c.sections.ItemSections(tpl, bk, items, sum, withDiscounts) +
		template.Fill(tpl.Total, "GRAND_TOTAL_HERE", compose.Currency(bk.Total))
}

// recipients targets the call centre mailbox, plus the booker when a human
// agent handled the booking and the booker left an email address.
func (c *Composer) recipients(bk booking.Booking, booker booking.Passenger) []string {
	to := mail.SplitRecipients(c.addrs.CallCentre)
	if bk.Agent != "" && booker.Email != "" {
		to = append(to, booker.Email)
	}
	return to
}

// failFooter fills the failure footer with outlet and booker contact
// details. The outlet lookup is best-effort; a miss leaves its tokens
// blank.
func (c *Composer) failFooter(ctx context.Context, tpl template.Sections, bk booking.Booking, booker booking.Passenger) string {
	var outletEmail, outletName, outletPhone, outletCode string
	if code := strings.TrimSpace(bk.OutletRef); code != "" {
		o, err := c.outlets.Outlet(ctx, code)
		if err != nil {
			c.log.LogAttrs(ctx, slog.LevelWarn, "Failed to resolve outlet for failure footer",
				logger.BookingID(bk.ID),
				slog.String("outlet_code", code),
				logger.Error(err),
			)
		} else {
			outletCode = o.Code
			outletEmail = o.Email
			outletName = o.Name
			outletPhone, _ = o.Phone(outlet.PhonePrimary)
		}
	}

	address := ""
	if len(booker.Addresses) > 0 {
		address = booker.Addresses[0]
	}

	return template.Fill(tpl.FailFooter,
		"OUTLET_EMAIL_HERE", "<a href='mailto:"+outletEmail+"'>"+outletEmail+"</a>",
		"OUTLET_NAME_HERE", "<b>"+outletCode+" - "+outletName+"</b>",
		"OUTLET_PHONE_HERE", "<b>"+outletPhone+"</b>",
		"TITLE_HERE", booker.Title,
		"FIRST_NAME_HERE", booker.FirstName,
		"LAST_NAME_HERE", booker.Surname,
		"USER_PHONE_HERE", "<b>"+booker.ContactLine()+"</b>",
		"USER_ADDRESS_HERE", "<b>"+address+"</b>",
		"USER_EMAIL_HERE", "<a href='mailto:"+booker.Email+"'>"+booker.Email+"</a>",
	)
}

// pnrList fetches the booking's airline references, best-effort.
func (c *Composer) pnrList(ctx context.Context, bookingID int) string {
	pnrs, err := c.store.PNRs(ctx, bookingID)
	if err != nil {
		c.log.LogAttrs(ctx, slog.LevelWarn, "Failed to fetch PNRs",
			logger.BookingID(bookingID),
			logger.Error(err),
		)
		return ""
	}
	kept := make([]string, 0, len(pnrs))
	for _, pnr := range pnrs {
		if pnr != "" {
			kept = append(kept, pnr)
		}
	}
	return strings.Join(kept, ", ")
}

// faults fetches the booking's recorded upstream errors, best-effort.
func (c *Composer) faults(ctx context.Context, bookingID int) []booking.Fault {
	faults, err := c.store.Faults(ctx, bookingID)
	if err != nil {
		c.log.LogAttrs(ctx, slog.LevelWarn, "Failed to fetch booking faults",
			logger.BookingID(bookingID),
			logger.Error(err),
		)
		return nil
	}
	return faults
}

// faultLines joins fault messages and vendors with HTML breaks, falling
// back to the unknown placeholders when no faults were recorded.
func faultLines(faults []booking.Fault) (msgs, vendors string) {
	var m, v []string
	for _, f := range faults {
		m = append(m, f.Message)
		v = append(v, f.Vendor)
	}
	msgs = strings.Join(m, "<BR>")
	vendors = strings.Join(v, "<BR>")
	if msgs == "" {
		msgs = "Unknown Error"
	}
	if vendors == "" {
		vendors = "Unknown Vendor"
	}
	return msgs, vendors
}

// suppress logs a collaborator fetch failure and reports success to the
// caller. Notification delivery is best-effort.
func (c *Composer) suppress(ctx context.Context, msgType MessageType, bookingID int, err error) error {
	c.log.LogAttrs(ctx, slog.LevelError, "Failed to load booking data for notification",
		logger.BookingID(bookingID),
		slog.String("message_type", string(msgType)),
		logger.Error(err),
	)
	return nil
}

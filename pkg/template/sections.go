package template

import "strings"

// Sections is the named fragment set for the notification (cancel, partial
// cancel, fail) message bodies. Loaded fresh per request from the booking
// data store.
type Sections struct {
	CancelIntro        string
	PartialCancelIntro string

	FailHeader     string
	PayFailHeader  string
	UrgentHeader   string
	BookFailHeader string
	AgeRangeHeader string

	Flights    string
	FlightsEnd string

	Adult  string
	Child  string
	Infant string

	Tax         string
	Insurance   string
	FlightTotal string

	Accommodation string
	Transfer      string
	Discount      string

	Total      string
	FailFooter string
}

// Itinerary is the confirmation email template: an intro, a ticket-type
// specific body and a footer, plus the subject line and the departure date
// string recorded against the booking.
type Itinerary struct {
	Subject         string
	Intro           string
	PaperTicketBody string
	ETicketBody     string
	Footer          string
	TicketType      string // "E" selects ETicketBody, anything else the paper body
	DepartureDate   string
}

// IsZero reports whether the template was not found for the booking.
func (t Itinerary) IsZero() bool {
	return t == Itinerary{}
}

// Body returns the ticket body variant selected by the ticket type flag.
func (t Itinerary) Body() string {
	if t.TicketType == "E" {
		return t.ETicketBody
	}
	return t.PaperTicketBody
}

// Fill replaces each token with its value inside the fragment and returns
// the new text. Pairs alternate token, value.
func Fill(fragment string, pairs ...string) string {
	if len(pairs) == 0 {
		return fragment
	}
	return strings.NewReplacer(pairs...).Replace(fragment)
}

package booking

import (
	"context"

	"github.com/dmitrymomot/travelmail/pkg/attachment"
	"github.com/dmitrymomot/travelmail/pkg/template"
)

// DataStore is the read-only collaborator that supplies booking facts and
// template text. Implementations live outside this module; composition owns
// no retry or caching over these calls.
type DataStore interface {
	// Booking returns the booking header record.
	Booking(ctx context.Context, id int) (Booking, error)

	// Items returns the booking's line items in display order.
	Items(ctx context.Context, id int) ([]Item, error)

	// Passengers returns all passengers, including the booker.
	Passengers(ctx context.Context, id int) ([]Passenger, error)

	// Faults returns upstream errors recorded against the booking.
	Faults(ctx context.Context, id int) ([]Fault, error)

	// PNRs returns the airline booking references for the booking.
	PNRs(ctx context.Context, id int) ([]string, error)

	// MessageSections returns a fresh copy of the notification fragment set.
	MessageSections(ctx context.Context) (template.Sections, error)

	// ItineraryTemplate returns the confirmation template for the booking,
	// or a zero value when none is configured.
	ItineraryTemplate(ctx context.Context, id int) (template.Itinerary, error)

	// AttachmentRules returns the itinerary attachment rule list.
	AttachmentRules(ctx context.Context) ([]attachment.Rule, error)
}

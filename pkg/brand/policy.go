package brand

import (
	"maps"
	"strings"

	"github.com/dmitrymomot/travelmail/pkg/attachment"
	"github.com/dmitrymomot/travelmail/pkg/booking"
)

// Policy is one brand's composition configuration. The zero value behaves
// like the default brand with an empty name.
type Policy struct {
	// Name tags brand-specific attachment files ("Brand-<Name>" in the file
	// name is stripped before attaching).
	Name string

	// AllRegionsRule and AllDestinationsRule enable the wildcard attachment
	// rule clauses for this brand.
	AllRegionsRule      bool
	AllDestinationsRule bool

	// Path is the report path the itinerary PDF renders from. Empty means
	// DefaultReportPath.
	Path string

	// HotelOnlyPath, when set, overrides Path for bookings that contain a
	// hotel item and no ticket item.
	HotelOnlyPath string

	// SkipItineraryPDF disables the render-and-attach step entirely; the
	// confirmation is sent with no attachments.
	SkipItineraryPDF bool

	// AssociatedOutletFooter populates the associated-outlet footer block
	// from the booking's preferred associated outlet.
	AssociatedOutletFooter bool
}

// DefaultReportPath is the report every brand falls back to.
const DefaultReportPath = "/Itinerary/Itinerary"

// ReportPath resolves the report path for a booking's item list.
func (p Policy) ReportPath(items []booking.Item) string {
	if p.HotelOnlyPath != "" && hotelOnly(items) {
		return p.HotelOnlyPath
	}
	if p.Path != "" {
		return p.Path
	}
	return DefaultReportPath
}

// AttachmentOptions returns the wildcard gates for the rule engine.
func (p Policy) AttachmentOptions() attachment.Options {
	return attachment.Options{
		AllRegions:      p.AllRegionsRule,
		AllDestinations: p.AllDestinationsRule,
	}
}

func hotelOnly(items []booking.Item) bool {
	hasHotel := false
	for _, it := range items {
		switch it.Type {
		case booking.ItemTicket:
			return false
		case booking.ItemHotel:
			hasHotel = true
		}
	}
	return hasHotel
}

// Default is the base policy: no wildcards, default report path, no footer
// block, PDF attached.
var Default = Policy{Name: "Default"}

// builtin is the compiled-in policy table for the known product lines.
var builtin = map[string]Policy{
	"default": Default,
	"mixnz": {
		Name:                "MixNZ",
		AllRegionsRule:      true,
		AllDestinationsRule: true,
		HotelOnlyPath:       "/Itinerary/HotelItinerary",
	},
	"mixau": {
		Name:                "MixAU",
		AllRegionsRule:      true,
		AllDestinationsRule: true,
		Path:                "/ItineraryAU/ItineraryAU",
	},
	"mixuk": {
		Name: "MixUK",
		Path: "/ItineraryUK/ItineraryUK",
	},
	"retail": {
		Name:                   "Retail",
		SkipItineraryPDF:       true,
		AssociatedOutletFooter: true,
	},
}

// Get returns the built-in policy registered under name (case-insensitive).
func Get(name string) (Policy, bool) {
	p, ok := builtin[strings.ToLower(name)]
	return p, ok
}

// Builtin returns a copy of the compiled-in policy table.
func Builtin() map[string]Policy {
	return maps.Clone(builtin)
}

// Package attachment selects itinerary attachment file names by evaluating
// region and destination rules against a booking.
//
// A rule maps a comma-separated clause list to one file name. Each clause is
// KEY=VALUE with KEY either REGION or DESTINATION. A rule contributes its
// file as soon as one clause matches; results are deduplicated by file name
// in first-seen order.
//
// Wildcard clauses ("REGION=All Regions", "DESTINATION=All Destinations")
// only match when the corresponding option is enabled - brand policies
// decide that per product line.
//
// Select is a pure function over its inputs and safe for concurrent use.
package attachment

// Package template holds the raw HTML fragments that booking notification
// bodies are assembled from, and the token substitution helper shared by
// every composer.
//
// A fragment is plain HTML text carrying positional tokens such as
// BOOKING_ID or GRAND_TOTAL_HERE. Composition replaces tokens with booking
// facts and concatenates fragments in a fixed order; there are no loops or
// conditionals beyond the fixed token set of each fragment.
//
// Substitution is pure: Fill takes fragment text in and returns new text
// out. Section sets are plain value types, so handing a Sections value to a
// composer gives that request its own private copy - one request's
// substituted values can never leak into another's output.
package template

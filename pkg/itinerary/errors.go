package itinerary

import "errors"

var (
	// ErrInvalidAddress indicates a recipient or from address that does not
	// parse; the send is aborted.
	ErrInvalidAddress = errors.New("itinerary.errors.invalid_address")

	// ErrMissingTemplate indicates a booking without a configured itinerary
	// template.
	ErrMissingTemplate = errors.New("itinerary.errors.missing_template")
)

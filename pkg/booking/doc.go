// Package booking defines the travel-booking domain types consumed by the
// email composition pipeline: bookings, booking items, passengers and the
// derived passenger summary, plus the read-only DataStore collaborator
// interface that supplies them.
//
// All values are fetched fresh per composition request, transformed into a
// single outbound message and discarded. Nothing in this package is cached
// or shared across requests.
//
// # Usage
//
//	passengers, err := store.Passengers(ctx, bookingID)
//	if err != nil {
//	    return err
//	}
//
//	booker, err := booking.Booker(passengers)
//	if err != nil {
//	    return err // booking.ErrNoBooker
//	}
//
//	summary := booking.Summarize(passengers)
//
// # Error Handling
//
// The package exposes sentinel errors that can be checked with errors.Is:
//
//   - ErrNoBooker: no passenger with the Booker type was found.
//   - ErrNotFound: a collaborator lookup returned no record.
package booking

// Package itinerary builds and dispatches the booking confirmation email:
// subject and body from the itinerary template, footer contact details from
// the outlet directory, rule-selected attachment files, and a PDF rendered
// by the reporting collaborator, all parameterized by a brand policy.
//
// Dispatch retries up to three times with a fixed backoff between
// attempts, strictly sequentially. Exhausting the retries reports a failed
// DispatchResult to the caller instead of raising an error; validation and
// render problems abort before any send and are returned as descriptive
// errors.
//
// BuildConfirmation exposes the assembled message without sending, for
// callers that preview or export the confirmation text.
package itinerary

// Package notify composes and dispatches the operational notification
// emails raised by booking lifecycle events: cancellation, partial
// cancellation, failure, urgent escalation and age-range escalation.
//
// Each flow fetches booking facts fresh, assembles an HTML body from the
// per-request template sections and dispatches exactly once - the bounded
// retry pipeline belongs to the itinerary flow, not here. Failure policy
// differs per flow: cancel and partial-cancel swallow transport failures
// (logged only), the failure flow returns them to the caller.
//
// SendNotice is the boundary entry point. Collaborator fetch failures are
// logged and suppressed there: a notification failure must never block the
// booking workflow that triggered it.
package notify

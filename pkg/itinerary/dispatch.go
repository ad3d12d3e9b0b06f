package itinerary

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/travelmail/pkg/logger"
	"github.com/dmitrymomot/travelmail/pkg/mail"
)

// maxAttempts caps the dispatch retries per request.
const maxAttempts = 3

// DispatchResult is the terminal state of one retrying dispatch.
type DispatchResult struct {
	// Sent reports whether any attempt succeeded.
	Sent bool
	// Attempts counts attempts actually made, including the successful one.
	Attempts int
	// Failures counts failed attempts before the terminal state.
	Failures int
}

// dispatch runs the bounded retry loop: up to three sequential attempts
// with a fixed backoff between them. Each attempt carries a fresh message
// identifier derived from a random value and the from-address. Exhaustion
// is reported through the result, never raised.
func (p *Pipeline) dispatch(ctx context.Context, bookingID int, msg mail.Message) DispatchResult {
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		msg.MessageID = "Email" + uuid.NewString() + msg.From

		p.log.LogAttrs(ctx, slog.LevelInfo, "Sending itinerary email",
			logger.BookingID(bookingID),
			logger.Recipient(msg.To[0]),
			logger.Attempt(attempt),
		)

		err := p.sender.Send(ctx, msg)
		if err == nil {
			p.log.LogAttrs(ctx, slog.LevelInfo, "Itinerary email sent",
				logger.BookingID(bookingID),
				logger.Recipient(msg.To[0]),
				logger.Attempt(attempt),
			)
			return DispatchResult{Sent: true, Attempts: attempt, Failures: attempt - 1}
		}
		p.log.LogAttrs(ctx, slog.LevelError, "Error sending itinerary email",
			logger.BookingID(bookingID),
			logger.Recipient(msg.To[0]),
			logger.Attempt(attempt),
			logger.Error(err),
		)

		if attempt < maxAttempts {
			time.Sleep(p.backoff)
		}
	}

	return DispatchResult{Sent: false, Attempts: maxAttempts, Failures: maxAttempts}
}

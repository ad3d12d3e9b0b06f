// Package logger builds configured slog.Logger instances and provides the
// typed attribute helpers used across the toolkit, so log records carry
// consistent keys (booking_id, attempt, error) wherever they are emitted.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithProduction("travelmail"),
//	)
//	log.LogAttrs(ctx, slog.LevelInfo, "itinerary sent",
//	    logger.BookingID(id),
//	    logger.Attempt(attempt),
//	)
package logger

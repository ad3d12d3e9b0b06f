package logger

import "log/slog"

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// BookingID records the booking identifier under the key "booking_id".
func BookingID(id int) slog.Attr {
	return slog.Int("booking_id", id)
}

// Attempt records a dispatch attempt number under the key "attempt".
func Attempt(n int) slog.Attr {
	return slog.Int("attempt", n)
}

// Recipient records the message recipient under the key "recipient".
// If addr is empty, it returns an empty Attr.
func Recipient(addr string) slog.Attr {
	if addr == "" {
		return slog.Attr{}
	}
	return slog.String("recipient", addr)
}

// Brand records the brand policy name under the key "brand".
// If name is empty, it returns an empty Attr.
func Brand(name string) slog.Attr {
	if name == "" {
		return slog.Attr{}
	}
	return slog.String("brand", name)
}

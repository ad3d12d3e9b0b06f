package notify

import "errors"

var (
	// ErrUnknownMessageType indicates a message type outside the supported
	// set; a caller bug, never suppressed.
	ErrUnknownMessageType = errors.New("notify.errors.unknown_message_type")

	// ErrSendFailed wraps a transport failure from the failure flow, the
	// only notification flow that reports dispatch errors to its caller.
	ErrSendFailed = errors.New("notify.errors.send_failed")
)

package mail

import "errors"

var (
	ErrInvalidConfig  = errors.New("mail.errors.invalid_config")
	ErrInvalidMessage = errors.New("mail.errors.invalid_message")
	ErrSendFailed     = errors.New("mail.errors.send_failed")
)

package mail

import (
	"fmt"
	"net/mail"
	"strings"
)

// Attachment is one binary file carried by a message.
type Attachment struct {
	Name        string
	Content     []byte
	ContentType string
}

// Message is the single outbound email handed to a Sender. Bodies are
// always HTML.
type Message struct {
	To          []string
	From        string
	Bcc         []string
	Subject     string
	BodyHTML    string
	Attachments []Attachment

	// MessageID, when set, is emitted as the Message-ID header.
	MessageID string
}

// Validate checks the message addressing before any send is attempted.
func (m Message) Validate() error {
	if len(m.To) == 0 {
		return fmt.Errorf("%w: at least one recipient is required", ErrInvalidMessage)
	}
	for _, to := range m.To {
		if !IsAddress(to) {
			return fmt.Errorf("%w: recipient %q is not a valid email address", ErrInvalidMessage, to)
		}
	}
	if !IsAddress(m.From) {
		return fmt.Errorf("%w: from address %q is not a valid email address", ErrInvalidMessage, m.From)
	}
	for _, bcc := range m.Bcc {
		if !IsAddress(bcc) {
			return fmt.Errorf("%w: bcc address %q is not a valid email address", ErrInvalidMessage, bcc)
		}
	}
	return nil
}

// IsAddress reports whether s parses as a single RFC 5322 address.
func IsAddress(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	addr, err := mail.ParseAddress(s)
	return err == nil && addr.Address == s
}

// SplitRecipients breaks a semicolon-separated recipient list into
// individual trimmed addresses, dropping empty entries.
func SplitRecipients(recipients string) []string {
	var out []string
	for part := range strings.SplitSeq(recipients, ";") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// StripBrandToken removes the "Brand-<name>" marker from an attachment file
// name so brand-specific files attach under a neutral name. Names without
// the marker pass through unchanged.
func StripBrandToken(name, brand string) string {
	if brand == "" {
		return name
	}
	return strings.ReplaceAll(name, "Brand-"+brand, "")
}

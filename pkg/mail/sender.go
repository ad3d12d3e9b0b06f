package mail

import "context"

// Sender delivers one message through a mail-transfer collaborator.
// Implementations must be safe for concurrent use.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

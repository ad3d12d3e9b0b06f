// Package mail defines the outbound message type and the mail-transfer
// Sender interface, with a Postmark-backed implementation for production
// and a DevSender that writes messages to disk for local development.
//
// The package follows the toolkit conventions:
//   - Provider abstraction behind the Sender interface
//   - Config struct with env tags, validated at construction
//   - Sentinel errors checkable with errors.Is
//
// # Usage
//
//	var cfg mail.Config
//	config.MustLoad(&cfg)
//
//	sender, err := mail.NewPostmarkSender(cfg)
//	if err != nil {
//	    // handle configuration error
//	}
//
//	err = sender.Send(ctx, mail.Message{
//	    To:       []string{"traveller@example.com"},
//	    From:     cfg.FromAddress,
//	    Subject:  "Your itinerary",
//	    BodyHTML: body,
//	})
//
// Attachment file names carrying a "Brand-<Name>" token are de-branded with
// StripBrandToken before attaching, so one attachment library on disk can
// serve every product line.
package mail

package mail

// Config holds the mailbox addresses and transport credentials for outbound
// notification email. Postmark tokens are optional so development
// environments can run on the DevSender.
type Config struct {
	PostmarkServerToken  string `env:"POSTMARK_SERVER_TOKEN"`
	PostmarkAccountToken string `env:"POSTMARK_ACCOUNT_TOKEN"`

	FromAddress       string `env:"EMAIL_FROM_ADDRESS,required"`
	BCCAddress        string `env:"CONFIRMATION_BCC_EMAIL"`
	CallCentreAddress string `env:"CALL_CENTRE_EMAIL_ADDRESS,required"`
	UrgentAddress     string `env:"URGENT_BOOKING_EMAIL_ADDRESS,required"`
}

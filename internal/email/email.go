package email

// Email is an outgoing message.
type Email struct {
	From    string
	To      []string
	Subject string
	Body    string
}

// Provider sends email. The contact flow treats failures as
// best-effort: a broken mailer never blocks the API.
type Provider interface {
	Send(email *Email) error
	Validate() error
}

package domain

import "context"

// Mailer sends a single email. Implementations live in adapters.
type Mailer interface {
	Send(to, subject, html, text string) error
}

// EmailTemplateRenderer renders a named email template into subject, html,
// and text bodies.
type EmailTemplateRenderer interface {
	Render(templateName string, data interface{}) (subject, htmlBody, textBody string, err error)
}

// BookingConfirmationData is the payload for the booking confirmation email.
type BookingConfirmationData struct {
	Email      string
	EventTitle string
	EventDate  string
	EventTime  string
	Venue      string
	Location   string
}

// EmailService sends application emails.
type EmailService interface {
	SendBookingConfirmation(ctx context.Context, data *BookingConfirmationData) error
}

// PasswordHasher hashes and verifies passwords.
type PasswordHasher interface {
	GenerateSalt() (string, error)
	Hash(salt, password string) (string, error)
	Compare(hash, salt, password string) error
}

// TokenIssuer signs access tokens for authenticated subjects.
type TokenIssuer interface {
	Issue(subject, email string, roles []string) (string, error)
}

// TokenVerifier validates an access token and returns its subject.
type TokenVerifier interface {
	Verify(token string) (subject string, err error)
}

// AuthService authenticates the admin user.
type AuthService interface {
	Login(ctx context.Context, email, password string) (token string, err error)
}

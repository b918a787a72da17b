package domain

import (
	"context"
	"regexp"
	"strings"
	"time"
)

// emailRe matches a simple email shape: no whitespace or extra @, at least one
// dot in the domain.
var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Booking represents one person's reservation for one event. A given email
// may book a given event at most once; the pair (event_id, email) is unique.
// swagger:model Booking
type Booking struct {
	ID        string    `json:"id"`
	EventID   string    `json:"event_id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NormalizeEmail trims and lowercases an email address and reports whether
// the result is syntactically valid.
func NormalizeEmail(email string) (string, bool) {
	email = strings.ToLower(strings.TrimSpace(email))
	return email, emailRe.MatchString(email)
}

// BookingRepository defines the interface for booking storage. Create relies
// on the unique (event_id, email) index and the event FK, reporting
// ErrDuplicateBooking and ErrEventNotFound respectively.
type BookingRepository interface {
	Create(ctx context.Context, booking *Booking) error
	ListByEventID(ctx context.Context, eventID string) ([]*Booking, error)
}

// BookingService defines the booking use cases exposed to the delivery layer.
type BookingService interface {
	CreateBooking(ctx context.Context, eventID, email string) (*Booking, error)
	ListBookingsByEvent(ctx context.Context, slug string) ([]*Booking, error)
}

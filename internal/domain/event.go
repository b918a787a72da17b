package domain

import (
	"context"
	"time"
)

// Event represents a single published event.
// Date and Time are stored in their canonical string forms (YYYY-MM-DD and
// HH:MM); Normalize is responsible for producing them.
// swagger:model Event
type Event struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	Overview    string    `json:"overview"`
	Image       string    `json:"image"`
	Venue       string    `json:"venue"`
	Location    string    `json:"location"`
	Date        string    `json:"date"`
	Time        string    `json:"time"`
	Mode        string    `json:"mode"`
	Audience    string    `json:"audience"`
	Agenda      []string  `json:"agenda"`
	Organizer   string    `json:"organizer"`
	Tags        []string  `json:"tags"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// EventPatch carries the fields of a partial update. A nil field is absent
// from the write; only present fields are re-validated and re-normalized.
type EventPatch struct {
	Title       *string
	Description *string
	Overview    *string
	Image       *string
	Venue       *string
	Location    *string
	Date        *string
	Time        *string
	Mode        *string
	Audience    *string
	Agenda      []string
	Organizer   *string
	Tags        []string
}

// EventRepository defines the interface for event storage
type EventRepository interface {
	Create(ctx context.Context, event *Event) error
	GetByID(ctx context.Context, id string) (*Event, error)
	GetBySlug(ctx context.Context, slug string) (*Event, error)
	List(ctx context.Context) ([]*Event, error)
	// ListSimilar returns events other than excludeID whose tag set intersects
	// tags. Any shared tag qualifies.
	ListSimilar(ctx context.Context, excludeID string, tags []string) ([]*Event, error)
	Update(ctx context.Context, event *Event) error
}

// EventService defines the event use cases exposed to the delivery layer.
type EventService interface {
	CreateEvent(ctx context.Context, event *Event) error
	GetEventBySlug(ctx context.Context, slug string) (*Event, error)
	ListEvents(ctx context.Context) ([]*Event, error)
	// ListSimilarEvents returns events sharing at least one tag with the event
	// for slug, excluding that event. A missing slug yields an empty result,
	// not an error.
	ListSimilarEvents(ctx context.Context, slug string) ([]*Event, error)
	UpdateEvent(ctx context.Context, slug string, patch EventPatch) (*Event, error)
}

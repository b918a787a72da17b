package domain

import "errors"

// Sentinel errors shared across services, repositories, and controllers.
// Repositories translate driver-level failures (unique and foreign-key
// violations, missing rows) into these so callers never depend on pq.
var (
	// ErrNotFound means the requested record does not exist. It is a valid
	// empty outcome, distinct from the failure cases below.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput marks a validation failure. Wrap it with the violated
	// rule: fmt.Errorf("%w: time must be in HH:MM format", ErrInvalidInput).
	ErrInvalidInput = errors.New("invalid input")

	// ErrSlugExists is raised when an event write collides with an existing
	// slug. Uniqueness is enforced by the storage layer at commit time.
	ErrSlugExists = errors.New("slug already exists")

	// ErrEventNotFound is raised when a booking references an event that does
	// not exist, either at the pre-insert check or via the FK constraint.
	ErrEventNotFound = errors.New("referenced event does not exist")

	// ErrDuplicateBooking is raised when the (event_id, email) pair already
	// has a booking.
	ErrDuplicateBooking = errors.New("booking already exists for this event and email")

	// ErrStorageConfig marks a misconfigured storage connection string. It is
	// surfaced distinctly so operational misconfiguration is not masked as a
	// generic failure.
	ErrStorageConfig = errors.New("storage connection misconfigured")

	// ErrInvalidCredentials is returned on a failed admin login.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

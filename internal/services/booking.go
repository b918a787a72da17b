package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"eventdeck/internal/domain"
)

type bookingService struct {
	bookingRepo    domain.BookingRepository
	eventRepo      domain.EventRepository
	emailService   domain.EmailService
	logger         *slog.Logger
	contextTimeout time.Duration
}

// NewBookingService wires the booking use cases. emailService may be nil,
// in which case no confirmation emails are sent.
func NewBookingService(bookingRepo domain.BookingRepository,
	eventRepo domain.EventRepository,
	emailService domain.EmailService,
	logger *slog.Logger,
	timeout time.Duration,
) domain.BookingService {
	return &bookingService{
		bookingRepo:    bookingRepo,
		eventRepo:      eventRepo,
		emailService:   emailService,
		logger:         logger,
		contextTimeout: timeout,
	}
}

// CreateBooking checks that the referenced event exists before inserting. The
// check is not transactional with the insert; a concurrent event deletion is
// closed by the FK constraint, and a concurrent duplicate by the unique
// (event_id, email) index. Both surface as the same sentinels the pre-checks
// produce.
func (s *bookingService) CreateBooking(ctx context.Context, eventID, email string) (*domain.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if strings.TrimSpace(eventID) == "" {
		return nil, fmt.Errorf("%w: event id is required", domain.ErrInvalidInput)
	}
	email, ok := domain.NormalizeEmail(email)
	if !ok {
		return nil, fmt.Errorf("%w: email must be a valid email address", domain.ErrInvalidInput)
	}

	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("check event exists: %w", err)
	}

	now := time.Now()
	booking := &domain.Booking{
		EventID:   eventID,
		Email:     email,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		if errors.Is(err, domain.ErrDuplicateBooking) || errors.Is(err, domain.ErrEventNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.sendConfirmation(ctx, booking, event)
	return booking, nil
}

// sendConfirmation is best-effort: a mail failure never fails the booking.
func (s *bookingService) sendConfirmation(ctx context.Context, booking *domain.Booking, event *domain.Event) {
	if s.emailService == nil {
		return
	}
	data := &domain.BookingConfirmationData{
		Email:      booking.Email,
		EventTitle: event.Title,
		EventDate:  event.Date,
		EventTime:  event.Time,
		Venue:      event.Venue,
		Location:   event.Location,
	}
	if err := s.emailService.SendBookingConfirmation(ctx, data); err != nil {
		s.logger.WarnContext(ctx, "booking confirmation email failed",
			"event_id", booking.EventID, "err", err)
	}
}

func (s *bookingService) ListBookingsByEvent(ctx context.Context, slug string) ([]*domain.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	slug = strings.ToLower(strings.TrimSpace(slug))
	event, err := s.eventRepo.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}

	bookings, err := s.bookingRepo.ListByEventID(ctx, event.ID)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	if bookings == nil {
		bookings = []*domain.Booking{}
	}
	return bookings, nil
}

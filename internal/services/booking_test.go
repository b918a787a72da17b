package services

import (
	"context"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"eventdeck/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBookingRepo struct {
	bookings  []*domain.Booking
	createErr error
}

func (f *fakeBookingRepo) Create(_ context.Context, b *domain.Booking) error {
	if f.createErr != nil {
		return f.createErr
	}
	for _, existing := range f.bookings {
		if existing.EventID == b.EventID && existing.Email == b.Email {
			return domain.ErrDuplicateBooking
		}
	}
	b.ID = fmt.Sprintf("bk-%d", len(f.bookings)+1)
	cp := *b
	f.bookings = append(f.bookings, &cp)
	return nil
}

func (f *fakeBookingRepo) ListByEventID(_ context.Context, eventID string) ([]*domain.Booking, error) {
	out := make([]*domain.Booking, 0)
	for _, b := range f.bookings {
		if b.EventID == eventID {
			cp := *b
			out = append(out, &cp)
		}
	}
	return out, nil
}

type fakeEmailService struct {
	sent []*domain.BookingConfirmationData
	err  error
}

func (f *fakeEmailService) SendBookingConfirmation(_ context.Context, data *domain.BookingConfirmationData) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, data)
	return nil
}

func TestBookingService_CreateBooking(t *testing.T) {
	ctx := context.Background()
	logger := slog.Default()

	setup := func(t *testing.T) (*fakeBookingRepo, *fakeEventRepo, *fakeEmailService, domain.BookingService, *domain.Event) {
		bookingRepo := &fakeBookingRepo{}
		eventRepo := newFakeEventRepo()
		emails := &fakeEmailService{}
		svc := NewBookingService(bookingRepo, eventRepo, emails, logger, time.Second)

		event := validEvent("Go Conf", "go")
		require.NoError(t, NewEventService(eventRepo, time.Second).CreateEvent(ctx, event))
		return bookingRepo, eventRepo, emails, svc, event
	}

	t.Run("success lowercases email and sends confirmation", func(t *testing.T) {
		_, _, emails, svc, event := setup(t)

		booking, err := svc.CreateBooking(ctx, event.ID, "  Alice@Example.COM ")
		require.NoError(t, err)
		assert.NotEmpty(t, booking.ID)
		assert.Equal(t, "alice@example.com", booking.Email)
		assert.Equal(t, event.ID, booking.EventID)

		require.Len(t, emails.sent, 1)
		assert.Equal(t, "alice@example.com", emails.sent[0].Email)
		assert.Equal(t, "Go Conf", emails.sent[0].EventTitle)
	})

	t.Run("missing event id", func(t *testing.T) {
		_, _, _, svc, _ := setup(t)
		_, err := svc.CreateBooking(ctx, "  ", "alice@example.com")
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("invalid email", func(t *testing.T) {
		_, _, _, svc, event := setup(t)
		_, err := svc.CreateBooking(ctx, event.ID, "not-an-email")
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("unknown event", func(t *testing.T) {
		bookingRepo, _, _, svc, _ := setup(t)
		_, err := svc.CreateBooking(ctx, "ev-does-not-exist", "alice@example.com")
		assert.ErrorIs(t, err, domain.ErrEventNotFound)
		assert.Empty(t, bookingRepo.bookings)
	})

	t.Run("duplicate booking for same event and email", func(t *testing.T) {
		_, _, _, svc, event := setup(t)
		_, err := svc.CreateBooking(ctx, event.ID, "alice@example.com")
		require.NoError(t, err)
		_, err = svc.CreateBooking(ctx, event.ID, "ALICE@example.com")
		assert.ErrorIs(t, err, domain.ErrDuplicateBooking)
	})

	t.Run("same email may book a different event", func(t *testing.T) {
		_, eventRepo, _, svc, event := setup(t)
		other := validEvent("Other Conf", "misc")
		require.NoError(t, NewEventService(eventRepo, time.Second).CreateEvent(ctx, other))

		_, err := svc.CreateBooking(ctx, event.ID, "alice@example.com")
		require.NoError(t, err)
		_, err = svc.CreateBooking(ctx, other.ID, "alice@example.com")
		require.NoError(t, err)
	})

	t.Run("email failure does not fail the booking", func(t *testing.T) {
		bookingRepo := &fakeBookingRepo{}
		eventRepo := newFakeEventRepo()
		emails := &fakeEmailService{err: fmt.Errorf("smtp down")}
		svc := NewBookingService(bookingRepo, eventRepo, emails, logger, time.Second)

		event := validEvent("Go Conf", "go")
		require.NoError(t, NewEventService(eventRepo, time.Second).CreateEvent(ctx, event))

		booking, err := svc.CreateBooking(ctx, event.ID, "alice@example.com")
		require.NoError(t, err)
		assert.NotEmpty(t, booking.ID)
	})

	t.Run("nil email service is fine", func(t *testing.T) {
		bookingRepo := &fakeBookingRepo{}
		eventRepo := newFakeEventRepo()
		svc := NewBookingService(bookingRepo, eventRepo, nil, logger, time.Second)

		event := validEvent("Go Conf", "go")
		require.NoError(t, NewEventService(eventRepo, time.Second).CreateEvent(ctx, event))

		_, err := svc.CreateBooking(ctx, event.ID, "alice@example.com")
		require.NoError(t, err)
	})
}

func TestBookingService_ListBookingsByEvent(t *testing.T) {
	ctx := context.Background()
	logger := slog.Default()

	bookingRepo := &fakeBookingRepo{}
	eventRepo := newFakeEventRepo()
	svc := NewBookingService(bookingRepo, eventRepo, nil, logger, time.Second)

	event := validEvent("Go Conf", "go")
	require.NoError(t, NewEventService(eventRepo, time.Second).CreateEvent(ctx, event))

	t.Run("no bookings yields empty slice", func(t *testing.T) {
		bookings, err := svc.ListBookingsByEvent(ctx, "go-conf")
		require.NoError(t, err)
		require.NotNil(t, bookings)
		assert.Empty(t, bookings)
	})

	t.Run("returns bookings for the event", func(t *testing.T) {
		_, err := svc.CreateBooking(ctx, event.ID, "alice@example.com")
		require.NoError(t, err)
		bookings, err := svc.ListBookingsByEvent(ctx, "GO-CONF")
		require.NoError(t, err)
		require.Len(t, bookings, 1)
		assert.Equal(t, "alice@example.com", bookings[0].Email)
	})

	t.Run("unknown slug", func(t *testing.T) {
		_, err := svc.ListBookingsByEvent(ctx, "missing")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

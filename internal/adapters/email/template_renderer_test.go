package email

import (
	"testing"

	"eventdeck/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplateRenderer_BookingConfirmation(t *testing.T) {
	renderer := NewTemplateRenderer()
	data := &domain.BookingConfirmationData{
		Email:      "alice@example.com",
		EventTitle: "Go Conf",
		EventDate:  "2025-06-15",
		EventTime:  "09:00",
		Venue:      "Main Hall",
		Location:   "Berlin",
	}

	subject, html, text, err := renderer.Render("booking_confirmation", data)
	require.NoError(t, err)

	assert.Equal(t, "Your spot for Go Conf is booked", subject)
	assert.Contains(t, html, "Go Conf")
	assert.Contains(t, html, "2025-06-15 at 09:00")
	assert.Contains(t, html, "Main Hall, Berlin")
	assert.Contains(t, text, "Your booking for Go Conf is confirmed.")
	assert.Contains(t, text, "Where: Main Hall, Berlin")
}

func TestTemplateRenderer_OmitsEmptyLocation(t *testing.T) {
	renderer := NewTemplateRenderer()
	data := &domain.BookingConfirmationData{
		EventTitle: "Go Conf",
		EventDate:  "2025-06-15",
		EventTime:  "09:00",
		Venue:      "Online",
	}

	_, _, text, err := renderer.Render("booking_confirmation", data)
	require.NoError(t, err)
	assert.Contains(t, text, "Where: Online\n")
}

func TestTemplateRenderer_UnknownTemplate(t *testing.T) {
	renderer := NewTemplateRenderer()
	_, _, _, err := renderer.Render("no_such_template", nil)
	require.Error(t, err)
}

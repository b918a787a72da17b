package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"eventdeck/internal/delivery/http/helpers"
	"eventdeck/internal/domain"
)

// BookingController serves the booking endpoints.
type BookingController struct {
	Logger  *slog.Logger
	Service domain.BookingService
}

func NewBookingController(logger *slog.Logger, svc domain.BookingService) *BookingController {
	return &BookingController{
		Logger:  logger,
		Service: svc,
	}
}

// CreateBookingRequest is the request body for POST /api/bookings.
type CreateBookingRequest struct {
	EventID string `json:"event_id"`
	Email   string `json:"email"`
}

// Validate implements Validator. Full email syntax is checked by the service;
// this only covers required fields.
func (c CreateBookingRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(c.EventID) == "" {
		errs = append(errs, "event_id is required")
	}
	if strings.TrimSpace(c.Email) == "" {
		errs = append(errs, "email is required")
	}
	return errs
}

// CreateBooking godoc
// @Summary Book a spot for an event
// @Description Creates a booking for the given event and email. The email is lowercased; a given email may book a given event at most once.
// @Tags bookings
// @Accept json
// @Produce json
// @Param booking body CreateBookingRequest true "Booking data"
// @Success 201 {object} helpers.DataResponse "data contains the created booking"
// @Failure 400 {object} helpers.ErrorResponse "missing fields or invalid email"
// @Failure 404 {object} helpers.MessageResponse "referenced event does not exist"
// @Failure 409 {object} helpers.ErrorResponse "duplicate booking"
// @Failure 500 {object} helpers.ErrorResponse
// @Router /api/bookings [post]
func (c *BookingController) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	booking, err := c.Service.CreateBooking(r.Context(), req.EventID, req.Email)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			helpers.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}
		if errors.Is(err, domain.ErrEventNotFound) {
			helpers.WriteMessage(w, http.StatusNotFound, "Referenced event does not exist")
			return
		}
		if errors.Is(err, domain.ErrDuplicateBooking) {
			helpers.WriteError(w, http.StatusConflict, "A booking for this event and email already exists")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteError(w, http.StatusInternalServerError, helpers.GenericErrorMessage)
		return
	}
	helpers.WriteData(w, http.StatusCreated, "Booking created successfully", booking)
}

// ListEventBookings godoc
// @Summary List bookings for an event
// @Description Returns the bookings for the event with the given slug, newest first. Requires admin authentication.
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param slug path string true "Event slug"
// @Success 200 {object} helpers.DataResponse "data is an array of bookings"
// @Failure 400 {object} helpers.ErrorResponse "invalid or missing slug"
// @Failure 401 {object} helpers.ErrorResponse
// @Failure 404 {object} helpers.MessageResponse
// @Failure 500 {object} helpers.ErrorResponse
// @Router /api/events/{slug}/bookings [get]
func (c *BookingController) ListEventBookings(w http.ResponseWriter, r *http.Request) {
	slug := strings.ToLower(strings.TrimSpace(r.PathValue("slug")))
	if slug == "" {
		helpers.WriteError(w, http.StatusBadRequest, "Invalid or missing slug parameter")
		return
	}
	bookings, err := c.Service.ListBookingsByEvent(r.Context(), slug)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteMessage(w, http.StatusNotFound, "Event with slug '"+slug+"' not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteError(w, http.StatusInternalServerError, helpers.GenericErrorMessage)
		return
	}
	helpers.WriteData(w, http.StatusOK, "Bookings fetched successfully", bookings)
}

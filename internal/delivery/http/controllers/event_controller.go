package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"eventdeck/internal/delivery/http/helpers"
	"eventdeck/internal/domain"
)

// EventController serves the event endpoints.
type EventController struct {
	Logger  *slog.Logger
	Service domain.EventService
}

func NewEventController(logger *slog.Logger, svc domain.EventService) *EventController {
	return &EventController{
		Logger:  logger,
		Service: svc,
	}
}

// writeUnexpected logs the error and returns the generic detail-free body,
// except for storage misconfiguration which gets its own message.
func (c *EventController) writeUnexpected(w http.ResponseWriter, r *http.Request, err error) {
	c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
	if errors.Is(err, domain.ErrStorageConfig) {
		helpers.WriteMessage(w, http.StatusInternalServerError, "Database configuration error")
		return
	}
	helpers.WriteError(w, http.StatusInternalServerError, helpers.GenericErrorMessage)
}

// CreateEventRequest is the request body for POST /api/events.
type CreateEventRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Overview    string   `json:"overview"`
	Image       string   `json:"image"`
	Venue       string   `json:"venue"`
	Location    string   `json:"location"`
	Date        string   `json:"date"`
	Time        string   `json:"time"`
	Mode        string   `json:"mode"`
	Audience    string   `json:"audience"`
	Agenda      []string `json:"agenda"`
	Organizer   string   `json:"organizer"`
	Tags        []string `json:"tags"`
}

// Validate implements Validator. Format rules for date/time/slug are enforced
// by the normalizer; this only covers required fields.
func (c CreateEventRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(c.Title) == "" {
		errs = append(errs, "title is required")
	}
	if c.Date == "" {
		errs = append(errs, "date is required")
	}
	if c.Time == "" {
		errs = append(errs, "time is required")
	}
	if len(c.Agenda) == 0 {
		errs = append(errs, "agenda must contain at least one item")
	}
	if len(c.Tags) == 0 {
		errs = append(errs, "tags must contain at least one item")
	}
	return errs
}

// CreateEvent godoc
// @Summary Create a new event
// @Description Creates an event. The slug is derived from the title; date and time are canonicalized to YYYY-MM-DD and HH:MM. Requires admin authentication.
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param event body CreateEventRequest true "Event data"
// @Success 201 {object} helpers.DataResponse "data contains the created event"
// @Failure 400 {object} helpers.ErrorResponse "validation or normalization failure"
// @Failure 401 {object} helpers.ErrorResponse
// @Failure 409 {object} helpers.ErrorResponse "slug already exists"
// @Failure 500 {object} helpers.ErrorResponse
// @Router /api/events [post]
func (c *EventController) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var req CreateEventRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	event := &domain.Event{
		Title:       req.Title,
		Description: req.Description,
		Overview:    req.Overview,
		Image:       req.Image,
		Venue:       req.Venue,
		Location:    req.Location,
		Date:        req.Date,
		Time:        req.Time,
		Mode:        req.Mode,
		Audience:    req.Audience,
		Agenda:      req.Agenda,
		Organizer:   req.Organizer,
		Tags:        req.Tags,
	}
	if err := c.Service.CreateEvent(r.Context(), event); err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			helpers.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}
		if errors.Is(err, domain.ErrSlugExists) {
			helpers.WriteError(w, http.StatusConflict, "slug already exists")
			return
		}
		c.writeUnexpected(w, r, err)
		return
	}
	helpers.WriteData(w, http.StatusCreated, "Event created successfully", event)
}

// GetEventBySlug godoc
// @Summary Fetch a single event by its slug
// @Description The slug is trimmed and lowercased before lookup.
// @Tags events
// @Produce json
// @Param slug path string true "Event slug"
// @Success 200 {object} helpers.DataResponse "data contains the event"
// @Failure 400 {object} helpers.ErrorResponse "invalid or missing slug"
// @Failure 404 {object} helpers.MessageResponse
// @Failure 500 {object} helpers.ErrorResponse
// @Router /api/events/{slug} [get]
func (c *EventController) GetEventBySlug(w http.ResponseWriter, r *http.Request) {
	slug := strings.ToLower(strings.TrimSpace(r.PathValue("slug")))
	if slug == "" {
		helpers.WriteError(w, http.StatusBadRequest, "Invalid or missing slug parameter")
		return
	}
	event, err := c.Service.GetEventBySlug(r.Context(), slug)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteMessage(w, http.StatusNotFound, "Event with slug '"+slug+"' not found")
			return
		}
		c.writeUnexpected(w, r, err)
		return
	}
	helpers.WriteData(w, http.StatusOK, "Event fetched successfully", event)
}

// ListEvents godoc
// @Summary List all events
// @Tags events
// @Produce json
// @Success 200 {object} helpers.DataResponse "data is an array of events"
// @Failure 500 {object} helpers.ErrorResponse
// @Router /api/events [get]
func (c *EventController) ListEvents(w http.ResponseWriter, r *http.Request) {
	events, err := c.Service.ListEvents(r.Context())
	if err != nil {
		c.writeUnexpected(w, r, err)
		return
	}
	helpers.WriteData(w, http.StatusOK, "Events fetched successfully", events)
}

// ListSimilarEvents godoc
// @Summary List events similar to the one with the given slug
// @Description Similar means sharing at least one tag, excluding the event itself. An unknown slug yields an empty list, not an error.
// @Tags events
// @Produce json
// @Param slug path string true "Event slug"
// @Success 200 {object} helpers.DataResponse "data is an array of events"
// @Failure 400 {object} helpers.ErrorResponse "invalid or missing slug"
// @Failure 500 {object} helpers.ErrorResponse
// @Router /api/events/{slug}/similar [get]
func (c *EventController) ListSimilarEvents(w http.ResponseWriter, r *http.Request) {
	slug := strings.ToLower(strings.TrimSpace(r.PathValue("slug")))
	if slug == "" {
		helpers.WriteError(w, http.StatusBadRequest, "Invalid or missing slug parameter")
		return
	}
	events, err := c.Service.ListSimilarEvents(r.Context(), slug)
	if err != nil {
		c.writeUnexpected(w, r, err)
		return
	}
	helpers.WriteData(w, http.StatusOK, "Similar events fetched successfully", events)
}

// UpdateEventRequest is the request body for PATCH /api/events/{slug}.
// All fields are optional; omitted fields are unchanged. Slug, date, and time
// are re-derived only when title, date, or time respectively are present.
type UpdateEventRequest struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Overview    *string  `json:"overview"`
	Image       *string  `json:"image"`
	Venue       *string  `json:"venue"`
	Location    *string  `json:"location"`
	Date        *string  `json:"date"`
	Time        *string  `json:"time"`
	Mode        *string  `json:"mode"`
	Audience    *string  `json:"audience"`
	Agenda      []string `json:"agenda"`
	Organizer   *string  `json:"organizer"`
	Tags        []string `json:"tags"`
}

// Validate implements Validator.
func (u UpdateEventRequest) Validate() []string {
	var errs []string
	if u.Title != nil && strings.TrimSpace(*u.Title) == "" {
		errs = append(errs, "title cannot be empty")
	}
	if u.Agenda != nil && len(u.Agenda) == 0 {
		errs = append(errs, "agenda must contain at least one item")
	}
	if u.Tags != nil && len(u.Tags) == 0 {
		errs = append(errs, "tags must contain at least one item")
	}
	return errs
}

// UpdateEvent godoc
// @Summary Update an event
// @Description Partial update by slug. Only provided fields are changed and re-normalized. Requires admin authentication.
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param slug path string true "Event slug"
// @Param body body UpdateEventRequest true "Fields to update (all optional)"
// @Success 200 {object} helpers.DataResponse "data contains the updated event"
// @Failure 400 {object} helpers.ErrorResponse
// @Failure 401 {object} helpers.ErrorResponse
// @Failure 404 {object} helpers.MessageResponse
// @Failure 409 {object} helpers.ErrorResponse "slug already exists"
// @Failure 500 {object} helpers.ErrorResponse
// @Router /api/events/{slug} [patch]
func (c *EventController) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	slug := strings.ToLower(strings.TrimSpace(r.PathValue("slug")))
	if slug == "" {
		helpers.WriteError(w, http.StatusBadRequest, "Invalid or missing slug parameter")
		return
	}
	var req UpdateEventRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	patch := domain.EventPatch{
		Title:       req.Title,
		Description: req.Description,
		Overview:    req.Overview,
		Image:       req.Image,
		Venue:       req.Venue,
		Location:    req.Location,
		Date:        req.Date,
		Time:        req.Time,
		Mode:        req.Mode,
		Audience:    req.Audience,
		Agenda:      req.Agenda,
		Organizer:   req.Organizer,
		Tags:        req.Tags,
	}
	event, err := c.Service.UpdateEvent(r.Context(), slug, patch)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteMessage(w, http.StatusNotFound, "Event with slug '"+slug+"' not found")
			return
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			helpers.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}
		if errors.Is(err, domain.ErrSlugExists) {
			helpers.WriteError(w, http.StatusConflict, "slug already exists")
			return
		}
		c.writeUnexpected(w, r, err)
		return
	}
	helpers.WriteData(w, http.StatusOK, "Event updated successfully", event)
}

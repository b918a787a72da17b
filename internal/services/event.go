package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"eventdeck/internal/domain"
)

type eventService struct {
	eventRepo      domain.EventRepository
	contextTimeout time.Duration
}

// NewEventService wires the event use cases over an EventRepository.
func NewEventService(eventRepo domain.EventRepository, timeout time.Duration) domain.EventService {
	return &eventService{
		eventRepo:      eventRepo,
		contextTimeout: timeout,
	}
}

// validateRequired checks the fields Normalize does not cover.
func validateRequired(e *domain.Event) error {
	if strings.TrimSpace(e.Title) == "" {
		return fmt.Errorf("%w: title is required", domain.ErrInvalidInput)
	}
	if len(e.Agenda) == 0 {
		return fmt.Errorf("%w: agenda must contain at least one item", domain.ErrInvalidInput)
	}
	if len(e.Tags) == 0 {
		return fmt.Errorf("%w: tags must contain at least one item", domain.ErrInvalidInput)
	}
	return nil
}

func (s *eventService) CreateEvent(ctx context.Context, event *domain.Event) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := validateRequired(event); err != nil {
		return err
	}
	if err := event.Normalize(domain.AllChanged()); err != nil {
		return err
	}

	event.CreatedAt = time.Now()
	event.UpdatedAt = time.Now()

	if err := s.eventRepo.Create(ctx, event); err != nil {
		if errors.Is(err, domain.ErrSlugExists) {
			return domain.ErrSlugExists
		}
		return fmt.Errorf("create event: %w", err)
	}
	return nil
}

func (s *eventService) GetEventBySlug(ctx context.Context, slug string) (*domain.Event, error) {
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
	return event, nil
}

func (s *eventService) ListEvents(ctx context.Context) ([]*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	events, err := s.eventRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	if events == nil {
		events = []*domain.Event{}
	}
	return events, nil
}

// ListSimilarEvents treats a missing slug the same as "no similar events":
// both yield an empty result with no error.
func (s *eventService) ListSimilarEvents(ctx context.Context, slug string) ([]*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	slug = strings.ToLower(strings.TrimSpace(slug))
	event, err := s.eventRepo.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return []*domain.Event{}, nil
		}
		return nil, fmt.Errorf("get event: %w", err)
	}

	similar, err := s.eventRepo.ListSimilar(ctx, event.ID, event.Tags)
	if err != nil {
		return nil, fmt.Errorf("list similar events: %w", err)
	}
	if similar == nil {
		similar = []*domain.Event{}
	}
	return similar, nil
}

func (s *eventService) UpdateEvent(ctx context.Context, slug string, patch domain.EventPatch) (*domain.Event, error) {
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

	var changed domain.EventChanges
	if patch.Title != nil {
		event.Title = *patch.Title
		changed.Title = true
	}
	if patch.Description != nil {
		event.Description = *patch.Description
	}
	if patch.Overview != nil {
		event.Overview = *patch.Overview
	}
	if patch.Image != nil {
		event.Image = *patch.Image
	}
	if patch.Venue != nil {
		event.Venue = *patch.Venue
	}
	if patch.Location != nil {
		event.Location = *patch.Location
	}
	if patch.Date != nil {
		event.Date = *patch.Date
		changed.Date = true
	}
	if patch.Time != nil {
		event.Time = *patch.Time
		changed.Time = true
	}
	if patch.Mode != nil {
		event.Mode = *patch.Mode
	}
	if patch.Audience != nil {
		event.Audience = *patch.Audience
	}
	if patch.Agenda != nil {
		event.Agenda = patch.Agenda
	}
	if patch.Organizer != nil {
		event.Organizer = *patch.Organizer
	}
	if patch.Tags != nil {
		event.Tags = patch.Tags
	}

	if err := validateRequired(event); err != nil {
		return nil, err
	}
	// Only changed fields are re-derived; an unrelated-field update leaves
	// slug, date, and time exactly as stored.
	if err := event.Normalize(changed); err != nil {
		return nil, err
	}

	event.UpdatedAt = time.Now()
	if err := s.eventRepo.Update(ctx, event); err != nil {
		if errors.Is(err, domain.ErrSlugExists) || errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("update event: %w", err)
	}
	return event, nil
}

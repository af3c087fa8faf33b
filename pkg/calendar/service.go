package calendar

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
)

type Service struct {
	repo  Repository
	title TitleProvider
}

func NewService(repo Repository, title TitleProvider) *Service {
	return &Service{
		repo:  repo,
		title: title,
	}
}

// AddEvent stores a new event. The auto color is resolved against the
// occurrences of the event's start month before storing.
func (s *Service) AddEvent(ctx context.Context, event Event) (Event, error) {
	event, err := event.Normalize()
	if err != nil {
		return Event{}, err
	}
	if event.Color == AutoColor {
		event.Color, err = s.pickColor(ctx, event)
		if err != nil {
			return Event{}, err
		}
	}

	id, err := s.repo.StoreEvent(ctx, event)
	if err != nil {
		return Event{}, fmt.Errorf("failed to store event: %w", err)
	}
	event.Id = id
	log.Debugf("Stored event %d (%s) on %s", id, event.Title, event.StartDate.Format(DateLayout))
	return event, nil
}

// ModifyEvent replaces every field of an existing event.
func (s *Service) ModifyEvent(ctx context.Context, event Event) (Event, error) {
	event, err := event.Normalize()
	if err != nil {
		return Event{}, err
	}
	if event.Color == AutoColor {
		event.Color, err = s.pickColor(ctx, event)
		if err != nil {
			return Event{}, err
		}
	}

	updated, err := s.repo.UpdateEvent(ctx, event)
	if err != nil {
		return Event{}, fmt.Errorf("failed to update event: %w", err)
	}
	if !updated {
		log.Warnf("event not updated, probably because it does not exist (%d)", event.Id)
		return Event{}, ErrEventNotFound
	}
	return event, nil
}

func (s *Service) DeleteEvent(ctx context.Context, id int) error {
	deleted, err := s.repo.DeleteEvent(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}
	if !deleted {
		return ErrEventNotFound
	}
	return nil
}

func (s *Service) GetEvent(ctx context.Context, id int) (Event, error) {
	return s.repo.GetEvent(ctx, id)
}

// GetMonth expands and projects every stored event for the month. Stored
// events without a color get one assigned for this render only.
func (s *Service) GetMonth(ctx context.Context, year int, month time.Month) (MonthView, error) {
	events, err := s.repo.GetAllEvents(ctx)
	if err != nil {
		return MonthView{}, fmt.Errorf("failed to get events: %w", err)
	}
	occurrences, err := Expand(events, year, month)
	if err != nil {
		return MonthView{}, err
	}
	fillMissingColors(occurrences)

	title := ""
	if s.title != nil {
		title, err = s.title(ctx)
		if err != nil {
			return MonthView{}, fmt.Errorf("failed to get calendar title: %w", err)
		}
	}

	return MonthView{
		Month:       NewMonth(year, month, title),
		Grid:        MonthGrid(year, month),
		Days:        Project(occurrences, year, month),
		Occurrences: occurrences,
	}, nil
}

// pickColor assigns a color for the event's start date from the occurrences
// of its month, ignoring the event's own stored occurrences.
func (s *Service) pickColor(ctx context.Context, event Event) (Color, error) {
	events, err := s.repo.GetAllEvents(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to get events: %w", err)
	}
	others := make([]Event, 0, len(events))
	for _, e := range events {
		if event.Id == 0 || e.Id != event.Id {
			others = append(others, e)
		}
	}
	occurrences, err := Expand(others, event.StartDate.Year(), event.StartDate.Month())
	if err != nil {
		return "", err
	}
	return AssignColor(event.StartDate, occurrences), nil
}

func fillMissingColors(occurrences []Occurrence) {
	for i := range occurrences {
		if occurrences[i].Color == "" {
			occurrences[i].Color = AssignColor(occurrences[i].StartDate, occurrences)
		}
	}
}

package calendar

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// DateLayout is the wire and storage format of calendar dates.
const DateLayout = "2006-01-02"

type RecurrenceType string

const (
	RecurrenceNone   RecurrenceType = ""
	RecurrenceWeekly RecurrenceType = "weekly"
)

var ErrEventNotFound = errors.New("event not found")
var ErrInvalidEvent = errors.New("invalid event")

// Event is a stored calendar record. Dates are naive calendar dates kept as
// UTC midnight. Empty StartTime, EndTime, Description and URL mean absent.
type Event struct {
	Id            int
	Title         string
	StartDate     time.Time
	EndDate       time.Time
	StartTime     string
	EndTime       string
	Description   string
	IsRecurring   bool
	RecurringType RecurrenceType
	Color         Color
	URL           string
}

// Duration is the span between start and end date, zero for single-day events.
func (e Event) Duration() time.Duration {
	return e.EndDate.Sub(e.StartDate)
}

// IsWeekly reports whether the event repeats every week.
func (e Event) IsWeekly() bool {
	return e.IsRecurring && e.RecurringType == RecurrenceWeekly
}

// Covers reports whether the day falls inside [StartDate, EndDate].
func (e Event) Covers(day time.Time) bool {
	return !day.Before(e.StartDate) && !day.After(e.EndDate)
}

// Normalize fills the defaults of a record before it is stored: the end date
// falls back to the start date, a non-recurring event loses its recurring type
// and an unset color becomes blue.
func (e Event) Normalize() (Event, error) {
	e.Title = strings.TrimSpace(e.Title)
	if e.Title == "" {
		return Event{}, fmt.Errorf("%w: title is required", ErrInvalidEvent)
	}
	if e.StartDate.IsZero() {
		return Event{}, fmt.Errorf("%w: start date is required", ErrInvalidEvent)
	}
	e.StartDate = DateOf(e.StartDate)
	if e.EndDate.IsZero() {
		e.EndDate = e.StartDate
	}
	e.EndDate = DateOf(e.EndDate)
	if e.EndDate.Before(e.StartDate) {
		return Event{}, fmt.Errorf("%w: end date %s is before start date %s", ErrInvalidEvent,
			e.EndDate.Format(DateLayout), e.StartDate.Format(DateLayout))
	}
	if !e.IsRecurring {
		e.RecurringType = RecurrenceNone
	} else if e.RecurringType == RecurrenceNone {
		e.RecurringType = RecurrenceWeekly
	}
	if e.Color == "" {
		e.Color = DefaultColor
	}
	return e, nil
}

// Occurrence is one concrete placement of an Event. Occurrences of the same
// recurring event share its Id.
type Occurrence struct {
	Event
	IsMultiDay bool
}

func newOccurrence(e Event, start time.Time) Occurrence {
	duration := e.Duration()
	e.StartDate = start
	e.EndDate = start.Add(duration)
	return Occurrence{
		Event:      e,
		IsMultiDay: !e.StartDate.Equal(e.EndDate),
	}
}

// DateOf strips the clock part of t and returns the date at UTC midnight.
func DateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Date builds a naive calendar date.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a YYYY-MM-DD date.
func ParseDate(value string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, value, time.UTC)
}

// MonthBounds returns the first and last day of the month. Out of range
// months are normalized, so month 13 of 2024 is January 2025.
func MonthBounds(year int, month time.Month) (time.Time, time.Time) {
	start := Date(year, month, 1)
	end := start.AddDate(0, 1, -1)
	return start, end
}

func daysBetween(from, to time.Time) int {
	return int(to.Sub(from).Hours() / 24)
}

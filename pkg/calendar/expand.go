package calendar

import (
	"fmt"
	"sort"
	"time"

	"github.com/teambition/rrule-go"
)

// Expand turns stored events into the occurrences that belong to the given
// month, sorted by start date and start time (absent times first).
//
// Non-recurring events are included when their span overlaps the month.
// Weekly events produce one occurrence per week whose start date falls inside
// the month; occurrences starting in the previous month are not carried over
// even if their span reaches into this one.
func Expand(events []Event, year int, month time.Month) ([]Occurrence, error) {
	monthStart, monthEnd := MonthBounds(year, month)

	occurrences := make([]Occurrence, 0, len(events))
	for _, e := range events {
		if !e.IsWeekly() {
			if !e.StartDate.After(monthEnd) && !e.EndDate.Before(monthStart) {
				occurrences = append(occurrences, newOccurrence(e, e.StartDate))
			}
			continue
		}

		starts, err := weeklyStarts(e.StartDate, monthStart, monthEnd)
		if err != nil {
			return nil, fmt.Errorf("failed to expand event %d: %w", e.Id, err)
		}
		for _, start := range starts {
			occurrences = append(occurrences, newOccurrence(e, start))
		}
	}

	sort.SliceStable(occurrences, func(i, j int) bool {
		a, b := occurrences[i], occurrences[j]
		if !a.StartDate.Equal(b.StartDate) {
			return a.StartDate.Before(b.StartDate)
		}
		return a.StartTime < b.StartTime
	})
	return occurrences, nil
}

// weeklyStarts returns the start dates in [from, to] that share the weekly
// phase of anchor. The anchor may lie before or after the window.
func weeklyStarts(anchor, from, to time.Time) ([]time.Time, error) {
	first := anchor.AddDate(0, 0, 7*ceilDiv(daysBetween(anchor, from), 7))
	if first.After(to) {
		return nil, nil
	}

	rule, err := rrule.NewRRule(rrule.ROption{
		Freq:    rrule.WEEKLY,
		Dtstart: first,
		Until:   to,
	})
	if err != nil {
		return nil, err
	}
	return rule.All(), nil
}

func ceilDiv(a, b int) int {
	q := a / b
	if a%b != 0 && a > 0 {
		q++
	}
	return q
}

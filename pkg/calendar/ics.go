package calendar

import (
	"fmt"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/google/uuid"
)

const (
	icsProductId   = "-//codegod100//Event Calendar//EN"
	icsLocalLayout = "20060102T150405"
)

// occurrenceNamespace seeds the stable UIDs of exported occurrences.
var occurrenceNamespace = uuid.MustParse("6f1c7a52-5a0e-4c8c-9f5e-2f1d3c1a9b40")

// OccurrenceUID identifies one occurrence of an event. It only depends on the
// event id and the occurrence start date, so re-exports keep the same UID.
func OccurrenceUID(o Occurrence) string {
	key := fmt.Sprintf("%d/%s", o.Id, o.StartDate.Format(DateLayout))
	return uuid.NewSHA1(occurrenceNamespace, []byte(key)).String()
}

// RenderICS serializes the month's occurrences as an iCalendar document.
// Events without a start time are exported as all-day entries; timed events
// use floating local times because stored dates carry no timezone.
func RenderICS(view MonthView, stamp time.Time) string {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId(icsProductId)
	if view.Month.Title != "" {
		cal.SetXWRCalName(view.Month.Title)
	}

	for _, o := range view.Occurrences {
		e := cal.AddEvent(OccurrenceUID(o))
		e.SetDtStampTime(stamp)
		e.SetSummary(o.Title)
		if o.Description != "" {
			e.SetDescription(o.Description)
		}
		if o.URL != "" {
			e.SetURL(o.URL)
		}
		color := o.Color
		if !color.InPalette() {
			color = DefaultColor
		}
		e.SetProperty(ics.ComponentProperty("COLOR"), string(color))

		start, startOk := combine(o.StartDate, o.StartTime)
		if !startOk {
			e.SetAllDayStartAt(o.StartDate)
			e.SetAllDayEndAt(o.EndDate.AddDate(0, 0, 1))
			continue
		}
		e.SetProperty(ics.ComponentPropertyDtStart, start.Format(icsLocalLayout))
		if end, ok := timedEnd(o, start); ok {
			e.SetProperty(ics.ComponentPropertyDtEnd, end.Format(icsLocalLayout))
		}
	}
	return cal.Serialize()
}

// timedEnd returns the end of a timed occurrence. Without an end time the
// start clock is carried to the end date. An end clock earlier than the start
// on the same day runs past midnight. ok is false when the occurrence has no
// duration, in which case DTEND is left out.
func timedEnd(o Occurrence, start time.Time) (time.Time, bool) {
	end, ok := combine(o.EndDate, o.EndTime)
	if !ok {
		end = o.EndDate.Add(start.Sub(o.StartDate))
	}
	if end.Before(start) {
		end = end.AddDate(0, 0, 1)
	}
	return end, end.After(start)
}

func combine(day time.Time, clock string) (time.Time, bool) {
	if clock == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(clockLayout, clock)
	if err != nil {
		return time.Time{}, false
	}
	return day.Add(time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute), true
}

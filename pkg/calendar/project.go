package calendar

import "time"

// OccurrenceView is the per-day copy of an occurrence handed to templates and
// the JSON API.
type OccurrenceView struct {
	Id            int            `json:"id"`
	Title         string         `json:"title"`
	StartTime     string         `json:"startTime,omitempty"`
	EndTime       string         `json:"endTime,omitempty"`
	Description   string         `json:"description,omitempty"`
	IsRecurring   bool           `json:"isRecurring"`
	RecurringType RecurrenceType `json:"recurringType,omitempty"`
	Color         Color          `json:"color"`
	StartDate     string         `json:"startDate"`
	EndDate       string         `json:"endDate"`
	IsMultiDay    bool           `json:"isMultiDay"`
	URL           string         `json:"url,omitempty"`
}

func (o Occurrence) View() OccurrenceView {
	return OccurrenceView{
		Id:            o.Id,
		Title:         o.Title,
		StartTime:     o.StartTime,
		EndTime:       o.EndTime,
		Description:   o.Description,
		IsRecurring:   o.IsRecurring,
		RecurringType: o.RecurringType,
		Color:         o.Color,
		StartDate:     o.StartDate.Format(DateLayout),
		EndDate:       o.EndDate.Format(DateLayout),
		IsMultiDay:    o.IsMultiDay,
		URL:           o.URL,
	}
}

// Project maps every day of the month to the occurrences covering it. An
// occurrence spanning several days is copied into each of them, clipped to
// the month. Order within a day follows the input order.
func Project(occurrences []Occurrence, year int, month time.Month) map[int][]OccurrenceView {
	monthStart, monthEnd := MonthBounds(year, month)

	days := make(map[int][]OccurrenceView)
	for _, o := range occurrences {
		from := o.StartDate
		if from.Before(monthStart) {
			from = monthStart
		}
		to := o.EndDate
		if to.After(monthEnd) {
			to = monthEnd
		}
		view := o.View()
		for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
			days[d.Day()] = append(days[d.Day()], view)
		}
	}
	return days
}

// GridWeeks is the number of rows of a month grid.
const GridWeeks = 6

// MonthGrid lays out the month in weeks starting on Sunday. Cells outside the
// month are zero.
func MonthGrid(year int, month time.Month) [GridWeeks][7]int {
	var grid [GridWeeks][7]int
	monthStart, monthEnd := MonthBounds(year, month)
	offset := int(monthStart.Weekday())
	for day := 1; day <= monthEnd.Day(); day++ {
		cell := offset + day - 1
		grid[cell/7][cell%7] = day
	}
	return grid
}

package calendar

import (
	"errors"
	"fmt"
	"strconv"
	"time"
)

// Month identifies a calendar month together with its neighbours, used for
// navigation links.
type Month struct {
	Year      int
	Month     time.Month
	MonthName string
	Title     string
	Prev      YearMonth
	Next      YearMonth
}

type YearMonth struct {
	Year  int
	Month time.Month
}

func NewMonth(year int, month time.Month, title string) Month {
	first := Date(year, month, 1)
	prev := first.AddDate(0, -1, 0)
	next := first.AddDate(0, 1, 0)
	return Month{
		Year:      first.Year(),
		Month:     first.Month(),
		MonthName: first.Month().String(),
		Title:     title,
		Prev:      YearMonth{Year: prev.Year(), Month: prev.Month()},
		Next:      YearMonth{Year: next.Year(), Month: next.Month()},
	}
}

// MonthView is everything needed to render one month: metadata, the grid of
// day numbers and the occurrences per day.
type MonthView struct {
	Month       Month
	Grid        [GridWeeks][7]int
	Days        map[int][]OccurrenceView
	Occurrences []Occurrence
}

// Events returns the occurrences of a given day, empty for padding cells.
func (v MonthView) Events(day int) []OccurrenceView {
	if day == 0 {
		return nil
	}
	return v.Days[day]
}

var ErrInvalidMonth = errors.New("invalid year or month")

// ParseYearMonth parses path parameters of a month URL. Months must be 1-12.
func ParseYearMonth(yearValue, monthValue string) (int, time.Month, error) {
	year, err := strconv.Atoi(yearValue)
	if err != nil || year < 1 || year > 9999 {
		return 0, 0, fmt.Errorf("%w: year %q", ErrInvalidMonth, yearValue)
	}
	month, err := strconv.Atoi(monthValue)
	if err != nil || month < 1 || month > 12 {
		return 0, 0, fmt.Errorf("%w: month %q", ErrInvalidMonth, monthValue)
	}
	return year, time.Month(month), nil
}

// String renders the month as YYYY-MM.
func (ym YearMonth) String() string {
	return fmt.Sprintf("%04d-%02d", ym.Year, int(ym.Month))
}

package calendar

import (
	"context"
	"time"
)

// Calendar is the set of operations the presentation layer needs from the
// event service.
type Calendar interface {
	AddEvent(ctx context.Context, event Event) (Event, error)
	ModifyEvent(ctx context.Context, event Event) (Event, error)
	DeleteEvent(ctx context.Context, id int) error
	GetEvent(ctx context.Context, id int) (Event, error)
	GetMonth(ctx context.Context, year int, month time.Month) (MonthView, error)
}

// TitleProvider supplies the calendar title shown above the month grid.
type TitleProvider func(ctx context.Context) (string, error)

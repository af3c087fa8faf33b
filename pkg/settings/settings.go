package settings

import (
	"context"
	"errors"
)

const DefaultTitle = "Event Calendar"

var ErrInvalidTitle = errors.New("calendar title must not be empty")

// Settings is the singleton calendar configuration editable by the user.
type Settings struct {
	CalendarTitle string
}

type Store interface {
	GetSettings(ctx context.Context) (Settings, error)
	UpdateSettings(ctx context.Context, settings Settings) (Settings, error)
}

package settings

import (
	"context"
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"
)

type Service struct {
	repo         Repository
	defaultTitle string
}

// NewService creates the settings service. An empty defaultTitle falls back
// to DefaultTitle.
func NewService(repo Repository, defaultTitle string) *Service {
	if strings.TrimSpace(defaultTitle) == "" {
		defaultTitle = DefaultTitle
	}
	return &Service{repo: repo, defaultTitle: defaultTitle}
}

func (s *Service) GetSettings(ctx context.Context) (Settings, error) {
	title, err := s.Title(ctx)
	if err != nil {
		return Settings{}, err
	}
	return Settings{CalendarTitle: title}, nil
}

func (s *Service) UpdateSettings(ctx context.Context, settings Settings) (Settings, error) {
	title := strings.TrimSpace(settings.CalendarTitle)
	if title == "" {
		return Settings{}, ErrInvalidTitle
	}
	if err := s.repo.SetTitle(ctx, title); err != nil {
		return Settings{}, fmt.Errorf("failed to update settings: %w", err)
	}
	log.Debugf("Calendar title changed to %q", title)
	return Settings{CalendarTitle: title}, nil
}

// Title returns the stored calendar title, or the default one when nothing
// was stored yet.
func (s *Service) Title(ctx context.Context) (string, error) {
	title, found, err := s.repo.GetTitle(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to get settings: %w", err)
	}
	if !found || title == "" {
		return s.defaultTitle, nil
	}
	return title, nil
}

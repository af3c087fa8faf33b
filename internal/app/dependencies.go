package app

import (
	"github.com/codegod100/cal/internal/config"
	"github.com/codegod100/cal/internal/utils"
	"github.com/codegod100/cal/internal/web"
	"github.com/codegod100/cal/pkg/calendar"
	"github.com/codegod100/cal/pkg/pdf"
	"github.com/codegod100/cal/pkg/settings"
)

// Dependencies holds all services and handlers for the application.
type Dependencies struct {
	SettingsService *settings.Service
	SettingsHandler *settings.Handler

	CalendarService *calendar.Service
	CalendarHandler *calendar.Handler

	PdfRenderer pdf.Renderer
	WebHandler  *web.Handler

	Clock utils.Clock
}

// BuildDependencies initializes and wires all application services and handlers.
func BuildDependencies(store *Store, cfg config.Application) (*Dependencies, error) {
	deps := &Dependencies{}

	deps.Clock = utils.SystemClock{}

	deps.SettingsService = settings.NewService(store.Settings, cfg.Calendar.DefaultTitle)
	deps.SettingsHandler = settings.NewHandler(deps.SettingsService)

	deps.CalendarService = calendar.NewService(store.Events, deps.SettingsService.Title)
	deps.CalendarHandler = calendar.NewHandler(deps.CalendarService)

	if cfg.Pdf.Enabled {
		deps.PdfRenderer = pdf.NewChromeRenderer(pdf.Options{
			Landscape: cfg.Pdf.Landscape,
			Timeout:   cfg.Pdf.Timeout,
		})
	} else {
		deps.PdfRenderer = pdf.DisabledRenderer{}
	}

	webHandler, err := web.NewHandler(deps.CalendarService, deps.SettingsService, deps.PdfRenderer, deps.Clock, web.PdfOptions{
		Enabled:   cfg.Pdf.Enabled,
		Landscape: cfg.Pdf.Landscape,
	})
	if err != nil {
		return nil, err
	}
	deps.WebHandler = webHandler

	return deps, nil
}

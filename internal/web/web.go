package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"github.com/codegod100/cal/internal/rest"
	"github.com/codegod100/cal/internal/utils"
	"github.com/codegod100/cal/pkg/calendar"
	"github.com/codegod100/cal/pkg/pdf"
	"github.com/codegod100/cal/pkg/settings"
	"github.com/go-playground/validator/v10"
	log "github.com/sirupsen/logrus"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageFiles = map[string][]string{
	"calendar":   {"templates/calendar.html"},
	"add_event":  {"templates/event_form.html", "templates/add_event.html"},
	"edit_event": {"templates/event_form.html", "templates/edit_event.html"},
	"settings":   {"templates/settings.html"},
}

var weekdayNames = []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// Handler serves the HTML pages, the event forms and the month exports.
type Handler struct {
	calendar calendar.Calendar
	settings settings.Store
	renderer pdf.Renderer
	clock    utils.Clock
	validate *validator.Validate
	pages    map[string]*template.Template
	pdfPage  *template.Template
	pdfOpts  PdfOptions
}

type PdfOptions struct {
	Enabled   bool
	Landscape bool
}

// page is embedded in the data of every page rendered with the layout.
type page struct {
	CalendarTitle string
}

func NewHandler(cal calendar.Calendar, store settings.Store, renderer pdf.Renderer, clock utils.Clock, pdfOpts PdfOptions) (*Handler, error) {
	pages, pdfPage, err := parseTemplates()
	if err != nil {
		return nil, err
	}
	return &Handler{
		calendar: cal,
		settings: store,
		renderer: renderer,
		clock:    clock,
		validate: rest.NewValidator(),
		pages:    pages,
		pdfPage:  pdfPage,
		pdfOpts:  pdfOpts,
	}, nil
}

func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"to12Hour": func(value string) string {
			return calendar.To12Hour(value).Text
		},
		"formatRange": calendar.FormatRange,
		"style":       calendar.StyleFor,
		"hex": func(c calendar.Color) string {
			return c.Hex()
		},
		"weekdays": func() []string {
			return weekdayNames
		},
		"monthPath": monthPath,
		"dayDate": func(m calendar.Month, day int) string {
			return calendar.Date(m.Year, m.Month, day).Format(calendar.DateLayout)
		},
	}
}

func parseTemplates() (map[string]*template.Template, *template.Template, error) {
	layout, err := template.New("layout").Funcs(templateFuncs()).ParseFS(templateFS, "templates/layout.html")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse layout: %w", err)
	}

	pages := make(map[string]*template.Template, len(pageFiles))
	for name, files := range pageFiles {
		t, err := template.Must(layout.Clone()).ParseFS(templateFS, files...)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to parse %s page: %w", name, err)
		}
		pages[name] = t
	}

	pdfPage, err := template.New("calendar_pdf").Funcs(templateFuncs()).ParseFS(templateFS, "templates/calendar_pdf.html")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse pdf page: %w", err)
	}
	return pages, pdfPage, nil
}

// render executes the page into a buffer first so a template error never
// leaves a half written response.
func (h *Handler) render(w http.ResponseWriter, status int, name string, data any) {
	t, ok := h.pages[name]
	if !ok {
		log.Errorf("unknown page %q", name)
		http.Error(w, "unknown page", http.StatusInternalServerError)
		return
	}
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", data); err != nil {
		log.Errorf("failed to render %s: %v", name, err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		log.Debugf("failed to write %s response: %v", name, err)
	}
}

func (h *Handler) calendarTitle(r *http.Request) (string, error) {
	s, err := h.settings.GetSettings(r.Context())
	if err != nil {
		return "", err
	}
	return s.CalendarTitle, nil
}

func monthPath(ym calendar.YearMonth) string {
	return fmt.Sprintf("/calendar/%d/%d", ym.Year, int(ym.Month))
}

func monthPathOf(date time.Time) string {
	return monthPath(calendar.YearMonth{Year: date.Year(), Month: date.Month()})
}

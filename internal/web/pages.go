package web

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/codegod100/cal/internal/rest"
	"github.com/codegod100/cal/internal/utils"
	"github.com/codegod100/cal/pkg/calendar"
	"github.com/codegod100/cal/pkg/settings"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type calendarPage struct {
	page
	View       calendar.MonthView
	TodayDay   int
	PdfEnabled bool
}

type settingsPage struct {
	page
	Errors string
}

type settingsForm struct {
	CalendarTitle string `form:"calendar_title" validate:"required,max=200"`
}

// Index shows the month given by the year and month query parameters,
// defaulting to the current month for missing or invalid values.
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	today := h.today()
	year, month := today.Year(), today.Month()
	if v, err := strconv.Atoi(r.URL.Query().Get("year")); err == nil && v > 0 && v <= 9999 {
		year = v
	}
	if v, err := strconv.Atoi(r.URL.Query().Get("month")); err == nil && v >= 1 && v <= 12 {
		month = time.Month(v)
	}
	h.renderMonth(w, r, year, month)
}

func (h *Handler) Calendar(w http.ResponseWriter, r *http.Request) {
	year, month, ok := monthVars(w, r)
	if !ok {
		return
	}
	h.renderMonth(w, r, year, month)
}

func (h *Handler) renderMonth(w http.ResponseWriter, r *http.Request, year int, month time.Month) {
	log.Tracef("Rendering month %d-%02d", year, month)
	view, err := h.calendar.GetMonth(r.Context(), year, month)
	if err != nil {
		log.Errorf("failed to get month %d-%02d: %v", year, month, err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	todayDay := 0
	if today := h.today(); today.Year() == view.Month.Year && today.Month() == view.Month.Month {
		todayDay = today.Day()
	}
	h.render(w, http.StatusOK, "calendar", calendarPage{
		page:       page{CalendarTitle: view.Month.Title},
		View:       view,
		TodayDay:   todayDay,
		PdfEnabled: h.pdfOpts.Enabled,
	})
}

func (h *Handler) Settings(w http.ResponseWriter, r *http.Request) {
	title, err := h.calendarTitle(r)
	if err != nil {
		log.Errorf("failed to get settings: %v", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	h.render(w, http.StatusOK, "settings", settingsPage{page: page{CalendarTitle: title}})
}

func (h *Handler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	form := settingsForm{CalendarTitle: r.PostForm.Get("calendar_title")}

	var validationErr string
	if err := h.validate.Struct(form); err != nil {
		validationErr = rest.ValidationDetails(err)
	} else if _, err := h.settings.UpdateSettings(r.Context(), settings.Settings{CalendarTitle: form.CalendarTitle}); err != nil {
		if !errors.Is(err, settings.ErrInvalidTitle) {
			log.Errorf("failed to update settings: %v", err)
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		validationErr = err.Error()
	}
	if validationErr != "" {
		h.render(w, http.StatusBadRequest, "settings", settingsPage{
			page:   page{CalendarTitle: form.CalendarTitle},
			Errors: validationErr,
		})
		return
	}

	http.Redirect(w, r, "/settings", http.StatusSeeOther)
}

func (h *Handler) today() time.Time {
	return utils.Today(h.clock)
}

func monthVars(w http.ResponseWriter, r *http.Request) (int, time.Month, bool) {
	vars := mux.Vars(r)
	year, month, err := calendar.ParseYearMonth(vars["year"], vars["month"])
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return 0, 0, false
	}
	return year, month, true
}

package web

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/codegod100/cal/internal/rest"
	"github.com/codegod100/cal/pkg/calendar"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

// eventForm mirrors the fields posted by the add and edit forms.
type eventForm struct {
	Title         string `form:"title" validate:"required,max=200"`
	Date          string `form:"date" validate:"required,datetime=2006-01-02"`
	EndDate       string `form:"end_date" validate:"omitempty,datetime=2006-01-02"`
	StartTime     string `form:"start_time" validate:"omitempty,clock"`
	EndTime       string `form:"end_time" validate:"omitempty,clock"`
	Description   string `form:"description" validate:"max=5000"`
	IsRecurring   bool   `form:"is_recurring"`
	RecurringType string `form:"recurring_type" validate:"max=20"`
	Color         string `form:"color" validate:"max=20"`
	URL           string `form:"url" validate:"max=2048"`
}

type eventPage struct {
	page
	Action  string
	Cancel  string
	EventId int
	Form    eventForm
	Colors  []calendar.Color
	Errors  string
}

func (h *Handler) AddEventForm(w http.ResponseWriter, r *http.Request) {
	title, err := h.calendarTitle(r)
	if err != nil {
		log.Errorf("failed to get settings: %v", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	date := h.today()
	if d, err := calendar.ParseDate(r.URL.Query().Get("date")); err == nil {
		date = d
	}
	h.render(w, http.StatusOK, "add_event", eventPage{
		page:   page{CalendarTitle: title},
		Action: "/add_event",
		Cancel: monthPathOf(date),
		Form: eventForm{
			Date:  date.Format(calendar.DateLayout),
			Color: string(calendar.AutoColor),
		},
		Colors: calendar.Palette(),
	})
}

func (h *Handler) AddEvent(w http.ResponseWriter, r *http.Request) {
	form, event, problem, err := h.parseEventForm(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if problem == "" {
		var added calendar.Event
		added, err = h.calendar.AddEvent(r.Context(), event)
		if err == nil {
			log.Debugf("Event %d added", added.Id)
			http.Redirect(w, r, monthPathOf(added.StartDate), http.StatusSeeOther)
			return
		}
		if !errors.Is(err, calendar.ErrInvalidEvent) {
			log.Errorf("failed to add event: %v", err)
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		problem = err.Error()
	}

	h.renderFormError(w, r, "add_event", eventPage{
		Action: "/add_event",
		Cancel: "/",
		Form:   form,
		Errors: problem,
	})
}

func (h *Handler) EditEventForm(w http.ResponseWriter, r *http.Request) {
	id, ok := eventIdVar(r)
	if !ok {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	event, err := h.calendar.GetEvent(r.Context(), id)
	if err != nil {
		if errors.Is(err, calendar.ErrEventNotFound) {
			log.Debugf("event %d not found, redirecting", id)
			http.Redirect(w, r, "/", http.StatusSeeOther)
			return
		}
		log.Errorf("failed to get event %d: %v", id, err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	title, err := h.calendarTitle(r)
	if err != nil {
		log.Errorf("failed to get settings: %v", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	h.render(w, http.StatusOK, "edit_event", eventPage{
		page:    page{CalendarTitle: title},
		Action:  editPath(id),
		Cancel:  monthPathOf(event.StartDate),
		EventId: id,
		Form:    formOf(event),
		Colors:  calendar.Palette(),
	})
}

func (h *Handler) EditEvent(w http.ResponseWriter, r *http.Request) {
	id, ok := eventIdVar(r)
	if !ok {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	form, event, problem, err := h.parseEventForm(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if problem == "" {
		event.Id = id
		var modified calendar.Event
		modified, err = h.calendar.ModifyEvent(r.Context(), event)
		switch {
		case err == nil:
			http.Redirect(w, r, monthPathOf(modified.StartDate), http.StatusSeeOther)
			return
		case errors.Is(err, calendar.ErrEventNotFound):
			http.Redirect(w, r, "/", http.StatusSeeOther)
			return
		case !errors.Is(err, calendar.ErrInvalidEvent):
			log.Errorf("failed to modify event %d: %v", id, err)
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		problem = err.Error()
	}

	h.renderFormError(w, r, "edit_event", eventPage{
		Action:  editPath(id),
		Cancel:  "/",
		EventId: id,
		Form:    form,
		Errors:  problem,
	})
}

// DeleteEvent removes the event with all its occurrences and goes back to
// the page the request came from.
func (h *Handler) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	target := r.Referer()
	if target == "" || strings.Contains(target, "/edit_event/") {
		target = "/"
	}

	id, ok := eventIdVar(r)
	if !ok {
		http.Redirect(w, r, target, http.StatusSeeOther)
		return
	}
	if err := h.calendar.DeleteEvent(r.Context(), id); err != nil {
		if !errors.Is(err, calendar.ErrEventNotFound) {
			log.Errorf("failed to delete event %d: %v", id, err)
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		log.Debugf("event %d already deleted", id)
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}

func (h *Handler) renderFormError(w http.ResponseWriter, r *http.Request, name string, data eventPage) {
	title, err := h.calendarTitle(r)
	if err != nil {
		log.Errorf("failed to get settings: %v", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	data.page = page{CalendarTitle: title}
	data.Colors = calendar.Palette()
	h.render(w, http.StatusBadRequest, name, data)
}

// parseEventForm reads and validates a posted event. A non-empty problem
// describes invalid input to show back to the user; err is only set when the
// body could not be read at all.
func (h *Handler) parseEventForm(r *http.Request) (eventForm, calendar.Event, string, error) {
	if err := r.ParseForm(); err != nil {
		return eventForm{}, calendar.Event{}, "", err
	}
	_, recurring := r.PostForm["is_recurring"]
	form := eventForm{
		Title:         strings.TrimSpace(r.PostForm.Get("title")),
		Date:          r.PostForm.Get("date"),
		EndDate:       r.PostForm.Get("end_date"),
		StartTime:     r.PostForm.Get("start_time"),
		EndTime:       r.PostForm.Get("end_time"),
		Description:   r.PostForm.Get("description"),
		IsRecurring:   recurring,
		RecurringType: r.PostForm.Get("recurring_type"),
		Color:         r.PostForm.Get("color"),
		URL:           strings.TrimSpace(r.PostForm.Get("url")),
	}
	if err := h.validate.Struct(form); err != nil {
		return form, calendar.Event{}, rest.ValidationDetails(err), nil
	}

	start, err := calendar.ParseDate(form.Date)
	if err != nil {
		return form, calendar.Event{}, err.Error(), nil
	}
	var end time.Time
	if form.EndDate != "" {
		if end, err = calendar.ParseDate(form.EndDate); err != nil {
			return form, calendar.Event{}, err.Error(), nil
		}
	}

	recurringType := calendar.RecurrenceNone
	if form.IsRecurring {
		recurringType = calendar.RecurrenceWeekly
		if form.RecurringType != "" {
			recurringType = calendar.RecurrenceType(form.RecurringType)
		}
	}
	return form, calendar.Event{
		Title:         form.Title,
		StartDate:     start,
		EndDate:       end,
		StartTime:     form.StartTime,
		EndTime:       form.EndTime,
		Description:   form.Description,
		IsRecurring:   form.IsRecurring,
		RecurringType: recurringType,
		Color:         calendar.Color(form.Color),
		URL:           form.URL,
	}, "", nil
}

func formOf(e calendar.Event) eventForm {
	return eventForm{
		Title:         e.Title,
		Date:          e.StartDate.Format(calendar.DateLayout),
		EndDate:       e.EndDate.Format(calendar.DateLayout),
		StartTime:     e.StartTime,
		EndTime:       e.EndTime,
		Description:   e.Description,
		IsRecurring:   e.IsRecurring,
		RecurringType: string(e.RecurringType),
		Color:         string(e.Color),
		URL:           e.URL,
	}
}

func eventIdVar(r *http.Request) (int, bool) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil || id < 1 {
		return 0, false
	}
	return id, true
}

func editPath(id int) string {
	return "/edit_event/" + strconv.Itoa(id)
}

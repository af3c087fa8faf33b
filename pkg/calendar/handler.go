package calendar

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/codegod100/cal/internal/rest"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type Handler struct {
	calendar Calendar
	validate *validator.Validate
}

type EventDTO struct {
	Id            int    `json:"id"`
	Title         string `json:"title" validate:"required,max=200"`
	StartDate     string `json:"startDate" validate:"required,datetime=2006-01-02"`
	EndDate       string `json:"endDate,omitempty" validate:"omitempty,datetime=2006-01-02"`
	StartTime     string `json:"startTime,omitempty" validate:"omitempty,clock"`
	EndTime       string `json:"endTime,omitempty" validate:"omitempty,clock"`
	Description   string `json:"description,omitempty"`
	IsRecurring   bool   `json:"isRecurring"`
	RecurringType string `json:"recurringType,omitempty" validate:"max=20"`
	Color         string `json:"color,omitempty" validate:"max=20"`
	URL           string `json:"url,omitempty" validate:"max=2048"`
}

type MonthDTO struct {
	Year      int                      `json:"year"`
	Month     int                      `json:"month"`
	MonthName string                   `json:"monthName"`
	Title     string                   `json:"title"`
	Prev      string                   `json:"prev"`
	Next      string                   `json:"next"`
	Grid      [GridWeeks][7]int        `json:"grid"`
	Days      map[int][]OccurrenceView `json:"days"`
}

func NewHandler(calendar Calendar) *Handler {
	return &Handler{
		calendar: calendar,
		validate: rest.NewValidator(),
	}
}

func (h *Handler) GetMonth(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	year, month, err := ParseYearMonth(vars["year"], vars["month"])
	if err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid month", err.Error())
		return
	}
	log.Tracef("Getting month %d-%02d", year, month)

	view, err := h.calendar.GetMonth(r.Context(), year, month)
	if err != nil {
		log.Errorf("failed to get month %d-%02d: %v", year, month, err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	rest.WriteJSON(w, http.StatusOK, monthToDTO(view))
}

func (h *Handler) GetEvent(w http.ResponseWriter, r *http.Request) {
	id, ok := eventId(w, r)
	if !ok {
		return
	}

	event, err := h.calendar.GetEvent(r.Context(), id)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	rest.WriteJSON(w, http.StatusOK, eventToDTO(event))
}

func (h *Handler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	event, ok := h.decodeEvent(w, r)
	if !ok {
		return
	}

	created, err := h.calendar.AddEvent(r.Context(), event)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	rest.WriteJSON(w, http.StatusCreated, eventToDTO(created))
}

func (h *Handler) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	id, ok := eventId(w, r)
	if !ok {
		return
	}
	event, ok := h.decodeEvent(w, r)
	if !ok {
		return
	}
	event.Id = id

	modified, err := h.calendar.ModifyEvent(r.Context(), event)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	rest.WriteJSON(w, http.StatusOK, eventToDTO(modified))
}

func (h *Handler) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	id, ok := eventId(w, r)
	if !ok {
		return
	}

	if err := h.calendar.DeleteEvent(r.Context(), id); err != nil {
		h.writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) decodeEvent(w http.ResponseWriter, r *http.Request) (Event, bool) {
	var dto EventDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid request body", err.Error())
		return Event{}, false
	}
	if err := h.validate.Struct(dto); err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid event", rest.ValidationDetails(err))
		return Event{}, false
	}
	event, err := dtoToEvent(dto)
	if err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid event", err.Error())
		return Event{}, false
	}
	return event, true
}

func (h *Handler) writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrEventNotFound):
		rest.WriteError(w, http.StatusNotFound, "Event not found", "")
	case errors.Is(err, ErrInvalidEvent):
		rest.WriteError(w, http.StatusBadRequest, "Invalid event", err.Error())
	default:
		log.Errorf("calendar request failed: %v", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func eventId(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil || id < 1 {
		rest.WriteError(w, http.StatusBadRequest, "Invalid event id", "id must be a positive integer")
		return 0, false
	}
	return id, true
}

func eventToDTO(e Event) EventDTO {
	return EventDTO{
		Id:            e.Id,
		Title:         e.Title,
		StartDate:     e.StartDate.Format(DateLayout),
		EndDate:       e.EndDate.Format(DateLayout),
		StartTime:     e.StartTime,
		EndTime:       e.EndTime,
		Description:   e.Description,
		IsRecurring:   e.IsRecurring,
		RecurringType: string(e.RecurringType),
		Color:         string(e.Color),
		URL:           e.URL,
	}
}

// dtoToEvent expects a validated DTO, so only date parsing can still fail.
func dtoToEvent(dto EventDTO) (Event, error) {
	start, err := ParseDate(dto.StartDate)
	if err != nil {
		return Event{}, err
	}
	var end time.Time
	if dto.EndDate != "" {
		end, err = ParseDate(dto.EndDate)
		if err != nil {
			return Event{}, err
		}
	}
	return Event{
		Id:            dto.Id,
		Title:         dto.Title,
		StartDate:     start,
		EndDate:       end,
		StartTime:     dto.StartTime,
		EndTime:       dto.EndTime,
		Description:   dto.Description,
		IsRecurring:   dto.IsRecurring,
		RecurringType: RecurrenceType(dto.RecurringType),
		Color:         Color(dto.Color),
		URL:           dto.URL,
	}, nil
}

func monthToDTO(v MonthView) MonthDTO {
	days := v.Days
	if days == nil {
		days = map[int][]OccurrenceView{}
	}
	return MonthDTO{
		Year:      v.Month.Year,
		Month:     int(v.Month.Month),
		MonthName: v.Month.MonthName,
		Title:     v.Month.Title,
		Prev:      v.Month.Prev.String(),
		Next:      v.Month.Next.String(),
		Grid:      v.Grid,
		Days:      days,
	}
}

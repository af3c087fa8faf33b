package settings

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/codegod100/cal/internal/rest"
	"github.com/go-playground/validator/v10"
	log "github.com/sirupsen/logrus"
)

type Handler struct {
	settings Store
	validate *validator.Validate
}

type SettingsDTO struct {
	CalendarTitle string `json:"calendarTitle" validate:"required,max=200"`
}

func NewHandler(settings Store) *Handler {
	return &Handler{settings: settings, validate: rest.NewValidator()}
}

func (h *Handler) GetSettings(w http.ResponseWriter, r *http.Request) {
	log.Trace("Getting settings")
	settings, err := h.settings.GetSettings(r.Context())
	if err != nil {
		log.Errorf("failed to get settings: %v", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	rest.WriteJSON(w, http.StatusOK, SettingsDTO{CalendarTitle: settings.CalendarTitle})
}

func (h *Handler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var dto SettingsDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}
	if err := h.validate.Struct(dto); err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid settings", rest.ValidationDetails(err))
		return
	}

	updated, err := h.settings.UpdateSettings(r.Context(), Settings{CalendarTitle: dto.CalendarTitle})
	if err != nil {
		if errors.Is(err, ErrInvalidTitle) {
			rest.WriteError(w, http.StatusBadRequest, "Invalid settings", err.Error())
			return
		}
		log.Errorf("failed to update settings: %v", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	rest.WriteJSON(w, http.StatusOK, SettingsDTO{CalendarTitle: updated.CalendarTitle})
}

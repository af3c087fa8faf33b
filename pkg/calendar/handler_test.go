package calendar

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/codegod100/cal/internal/rest"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupHandlerTest() (*Handler, *RepositoryStub) {
	repo := NewRepositoryStub()
	service := NewService(repo, staticTitle("Team Calendar"))
	return NewHandler(service), repo
}

func newJSONRequest(t *testing.T, method, target string, body any, vars map[string]string) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	return mux.SetURLVars(req, vars)
}

func addTestEvents(t *testing.T, handler *Handler, events []EventDTO) []EventDTO {
	t.Helper()
	created := make([]EventDTO, 0, len(events))
	for _, event := range events {
		w := httptest.NewRecorder()
		handler.CreateEvent(w, newJSONRequest(t, http.MethodPost, "/api/event", event, nil))
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		var dto EventDTO
		require.NoError(t, json.NewDecoder(w.Body).Decode(&dto))
		created = append(created, dto)
	}
	return created
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) rest.ErrorResponse {
	t.Helper()
	var errResponse rest.ErrorResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&errResponse))
	return errResponse
}

func TestHandler_CreateEvent(t *testing.T) {
	handler, _ := setupHandlerTest()

	created := addTestEvents(t, handler, []EventDTO{{
		Title:       "Board meeting",
		StartDate:   "2024-03-12",
		StartTime:   "09:30",
		EndTime:     "11:00",
		Description: "Quarterly numbers",
		Color:       "auto",
		URL:         "https://meet.example.com/board",
	}})

	require.Len(t, created, 1)
	assert.Equal(t, 1, created[0].Id)
	assert.Equal(t, "2024-03-12", created[0].EndDate)
	assert.Equal(t, "blue", created[0].Color)
	assert.Equal(t, "https://meet.example.com/board", created[0].URL)
}

func TestHandler_CreateEvent_Invalid(t *testing.T) {
	testCases := []struct {
		name    string
		body    any
		details string
	}{
		{"missing title", EventDTO{StartDate: "2024-03-12"}, "title is required"},
		{"missing start date", EventDTO{Title: "x"}, "startDate is required"},
		{"malformed start date", EventDTO{Title: "x", StartDate: "12/03/2024"}, "startDate must match 2006-01-02"},
		{"malformed time", EventDTO{Title: "x", StartDate: "2024-03-12", StartTime: "9am"}, "startTime must be a HH:MM time"},
		{"end before start", EventDTO{Title: "x", StartDate: "2024-03-12", EndDate: "2024-03-11"}, "end date 2024-03-11 is before start date"},
		{"blank title", EventDTO{Title: "   ", StartDate: "2024-03-12"}, "title is required"},
		{"not json", "{", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			handler, _ := setupHandlerTest()
			w := httptest.NewRecorder()

			handler.CreateEvent(w, newJSONRequest(t, http.MethodPost, "/api/event", tc.body, nil))

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, decodeError(t, w).Details, tc.details)
		})
	}
}

func TestHandler_GetEvent(t *testing.T) {
	handler, _ := setupHandlerTest()
	created := addTestEvents(t, handler, []EventDTO{{Title: "Lunch", StartDate: "2024-03-12"}})

	t.Run("existing", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.GetEvent(w, newJSONRequest(t, http.MethodGet, "/api/event/1", nil, map[string]string{"id": "1"}))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
		var dto EventDTO
		require.NoError(t, json.NewDecoder(w.Body).Decode(&dto))
		assert.Equal(t, created[0], dto)
	})

	t.Run("missing", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.GetEvent(w, newJSONRequest(t, http.MethodGet, "/api/event/99", nil, map[string]string{"id": "99"}))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("invalid id", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.GetEvent(w, newJSONRequest(t, http.MethodGet, "/api/event/abc", nil, map[string]string{"id": "abc"}))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Invalid event id", decodeError(t, w).Error)
	})
}

func TestHandler_UpdateEvent(t *testing.T) {
	handler, _ := setupHandlerTest()
	addTestEvents(t, handler, []EventDTO{{Title: "Lunch", StartDate: "2024-03-12"}})

	w := httptest.NewRecorder()
	update := EventDTO{Title: "Long lunch", StartDate: "2024-03-12", EndDate: "2024-03-13", IsRecurring: true}
	handler.UpdateEvent(w, newJSONRequest(t, http.MethodPut, "/api/event/1", update, map[string]string{"id": "1"}))

	assert.Equal(t, http.StatusOK, w.Code)
	var dto EventDTO
	require.NoError(t, json.NewDecoder(w.Body).Decode(&dto))
	assert.Equal(t, 1, dto.Id)
	assert.Equal(t, "Long lunch", dto.Title)
	assert.Equal(t, "weekly", dto.RecurringType)

	w = httptest.NewRecorder()
	handler.UpdateEvent(w, newJSONRequest(t, http.MethodPut, "/api/event/5", update, map[string]string{"id": "5"}))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_DeleteEvent(t *testing.T) {
	handler, _ := setupHandlerTest()
	addTestEvents(t, handler, []EventDTO{{Title: "Lunch", StartDate: "2024-03-12"}})

	w := httptest.NewRecorder()
	handler.DeleteEvent(w, newJSONRequest(t, http.MethodDelete, "/api/event/1", nil, map[string]string{"id": "1"}))
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = httptest.NewRecorder()
	handler.DeleteEvent(w, newJSONRequest(t, http.MethodDelete, "/api/event/1", nil, map[string]string{"id": "1"}))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_GetMonth(t *testing.T) {
	handler, _ := setupHandlerTest()
	addTestEvents(t, handler, []EventDTO{
		{Title: "Offsite", StartDate: "2024-03-01", EndDate: "2024-03-03"},
		{Title: "Standup", StartDate: "2024-02-26", StartTime: "09:00", IsRecurring: true},
	})

	w := httptest.NewRecorder()
	handler.GetMonth(w, newJSONRequest(t, http.MethodGet, "/api/calendar/2024/3", nil, map[string]string{"year": "2024", "month": "3"}))

	require.Equal(t, http.StatusOK, w.Code)
	var dto MonthDTO
	require.NoError(t, json.NewDecoder(w.Body).Decode(&dto))
	assert.Equal(t, 2024, dto.Year)
	assert.Equal(t, 3, dto.Month)
	assert.Equal(t, "March", dto.MonthName)
	assert.Equal(t, "Team Calendar", dto.Title)
	assert.Equal(t, "2024-02", dto.Prev)
	assert.Equal(t, "2024-04", dto.Next)
	assert.Equal(t, 1, dto.Grid[0][5])
	assert.Equal(t, []string{"Offsite"}, titles(dto.Days[2]))
	assert.Equal(t, []string{"Standup"}, titles(dto.Days[4]))
	assert.True(t, dto.Days[3][0].IsMultiDay)
	assert.Empty(t, dto.Days[5])
}

func TestHandler_GetMonth_Errors(t *testing.T) {
	t.Run("invalid month", func(t *testing.T) {
		handler, _ := setupHandlerTest()
		w := httptest.NewRecorder()

		handler.GetMonth(w, newJSONRequest(t, http.MethodGet, "/api/calendar/2024/13", nil, map[string]string{"year": "2024", "month": "13"}))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, decodeError(t, w).Details, "invalid year or month")
	})

	t.Run("store failure", func(t *testing.T) {
		handler, repo := setupHandlerTest()
		repo.SetError(errors.New("disk I/O error"))
		w := httptest.NewRecorder()

		handler.GetMonth(w, newJSONRequest(t, http.MethodGet, "/api/calendar/2024/3", nil, map[string]string{"year": "2024", "month": "3"}))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

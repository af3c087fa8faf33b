package app

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/codegod100/cal/internal/config"
	"github.com/codegod100/cal/internal/test_utils"
	"github.com/codegod100/cal/pkg/calendar"
	"github.com/codegod100/cal/pkg/settings"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRouter(t *testing.T) *mux.Router {
	t.Helper()
	store := NewSQLiteStore(test_utils.SetupTestDB(t))
	cfg := config.Application{
		Calendar: config.Calendar{DefaultTitle: "Integration Calendar"},
	}
	deps, err := BuildDependencies(store, cfg)
	require.NoError(t, err)

	r := mux.NewRouter()
	SetupMiddleware(r)
	RegisterRoutes(r, deps)
	return r
}

func serve(r http.Handler, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	r := setupRouter(t)

	w := serve(r, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "OK", w.Body.String())
}

func TestFormToMonthView(t *testing.T) {
	r := setupRouter(t)

	form := url.Values{"title": {"Choir"}, "date": {"2024-10-02"}, "start_time": {"19:00"}, "is_recurring": {"on"}}
	req := httptest.NewRequest(http.MethodPost, "/add_event", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := serve(r, req)
	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/calendar/2024/10", w.Header().Get("Location"))

	w = serve(r, httptest.NewRequest(http.MethodGet, "/calendar/2024/11", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 4, strings.Count(w.Body.String(), "Choir"))
	assert.Contains(t, w.Body.String(), "Integration Calendar")

	w = serve(r, httptest.NewRequest(http.MethodGet, "/api/calendar/2024/11", nil))
	require.Equal(t, http.StatusOK, w.Code)
	var month calendar.MonthDTO
	require.NoError(t, json.NewDecoder(w.Body).Decode(&month))
	assert.Len(t, month.Days, 4)
	for _, day := range []int{6, 13, 20, 27} {
		require.Len(t, month.Days[day], 1, "day %d", day)
		assert.Equal(t, "19:00", month.Days[day][0].StartTime)
	}
}

func TestEventAPI(t *testing.T) {
	r := setupRouter(t)

	body := `{"title":"Release","startDate":"2024-07-01","endDate":"2024-07-02","color":"auto"}`
	w := serve(r, httptest.NewRequest(http.MethodPost, "/api/event", strings.NewReader(body)))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var created calendar.EventDTO
	require.NoError(t, json.NewDecoder(w.Body).Decode(&created))
	assert.Equal(t, "blue", created.Color)

	w = serve(r, httptest.NewRequest(http.MethodGet, "/api/event/1", nil))
	require.Equal(t, http.StatusOK, w.Code)

	w = serve(r, httptest.NewRequest(http.MethodDelete, "/api/event/1", nil))
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = serve(r, httptest.NewRequest(http.MethodGet, "/api/event/1", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSettingsAPI(t *testing.T) {
	r := setupRouter(t)

	w := serve(r, httptest.NewRequest(http.MethodGet, "/api/settings", nil))
	require.Equal(t, http.StatusOK, w.Code)
	var dto settings.SettingsDTO
	require.NoError(t, json.NewDecoder(w.Body).Decode(&dto))
	assert.Equal(t, "Integration Calendar", dto.CalendarTitle)

	w = serve(r, httptest.NewRequest(http.MethodPut, "/api/settings", strings.NewReader(`{"calendarTitle":"Renamed"}`)))
	require.Equal(t, http.StatusOK, w.Code)

	w = serve(r, httptest.NewRequest(http.MethodGet, "/settings", nil))
	assert.Contains(t, w.Body.String(), `value="Renamed"`)
}

func TestRoutes_RejectUnknownMethodsAndPaths(t *testing.T) {
	r := setupRouter(t)

	assert.Equal(t, http.StatusMethodNotAllowed, serve(r, httptest.NewRequest(http.MethodGet, "/delete_event/1", nil)).Code)
	assert.Equal(t, http.StatusNotFound, serve(r, httptest.NewRequest(http.MethodGet, "/calendar/2024/abc", nil)).Code)
}

func TestExportPDF_DisabledByConfig(t *testing.T) {
	r := setupRouter(t)

	w := serve(r, httptest.NewRequest(http.MethodGet, "/export_pdf/2024/3", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

package app

import (
	"net/http"

	"github.com/gorilla/mux"
)

// RegisterRoutes registers the HTML pages, exports and JSON API endpoints.
func RegisterRoutes(r *mux.Router, deps *Dependencies) {

	// Pages
	r.HandleFunc("/", deps.WebHandler.Index).Methods("GET")
	r.HandleFunc("/calendar/{year:[0-9]+}/{month:[0-9]+}", deps.WebHandler.Calendar).Methods("GET")
	r.HandleFunc("/add_event", deps.WebHandler.AddEventForm).Methods("GET")
	r.HandleFunc("/add_event", deps.WebHandler.AddEvent).Methods("POST")
	r.HandleFunc("/edit_event/{id:[0-9]+}", deps.WebHandler.EditEventForm).Methods("GET")
	r.HandleFunc("/edit_event/{id:[0-9]+}", deps.WebHandler.EditEvent).Methods("POST")
	r.HandleFunc("/delete_event/{id:[0-9]+}", deps.WebHandler.DeleteEvent).Methods("POST")
	r.HandleFunc("/settings", deps.WebHandler.Settings).Methods("GET")
	r.HandleFunc("/settings", deps.WebHandler.UpdateSettings).Methods("POST")

	// Exports
	r.HandleFunc("/export_pdf/{year:[0-9]+}/{month:[0-9]+}", deps.WebHandler.ExportPDF).Methods("GET")
	r.HandleFunc("/export_ics/{year:[0-9]+}/{month:[0-9]+}", deps.WebHandler.ExportICS).Methods("GET")
	r.HandleFunc("/export_csv/{year:[0-9]+}/{month:[0-9]+}", deps.WebHandler.ExportCSV).Methods("GET")

	// Calendar API
	r.HandleFunc("/api/calendar/{year:[0-9]+}/{month:[0-9]+}", deps.CalendarHandler.GetMonth).Methods("GET")
	r.HandleFunc("/api/event", deps.CalendarHandler.CreateEvent).Methods("POST")
	r.HandleFunc("/api/event/{id}", deps.CalendarHandler.GetEvent).Methods("GET")
	r.HandleFunc("/api/event/{id}", deps.CalendarHandler.UpdateEvent).Methods("PUT")
	r.HandleFunc("/api/event/{id}", deps.CalendarHandler.DeleteEvent).Methods("DELETE")

	// Settings API
	r.HandleFunc("/api/settings", deps.SettingsHandler.GetSettings).Methods("GET")
	r.HandleFunc("/api/settings", deps.SettingsHandler.UpdateSettings).Methods("PUT")

	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("OK"))
	}).Methods("GET")
}

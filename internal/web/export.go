package web

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"

	"github.com/codegod100/cal/pkg/calendar"
	"github.com/codegod100/cal/pkg/pdf"
	log "github.com/sirupsen/logrus"
)

type printPage struct {
	page
	View      calendar.MonthView
	Landscape bool
}

// ExportPDF renders the month with the print template and converts it to a
// PDF document.
func (h *Handler) ExportPDF(w http.ResponseWriter, r *http.Request) {
	if !h.pdfOpts.Enabled {
		http.Error(w, pdf.ErrDisabled.Error(), http.StatusNotFound)
		return
	}
	view, ok := h.monthForExport(w, r)
	if !ok {
		return
	}

	var markup bytes.Buffer
	err := h.pdfPage.ExecuteTemplate(&markup, "calendar_pdf", printPage{
		page:      page{CalendarTitle: view.Month.Title},
		View:      view,
		Landscape: h.pdfOpts.Landscape,
	})
	if err != nil {
		log.Errorf("failed to render pdf markup: %v", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	document, err := h.renderer.Render(r.Context(), markup.String())
	if err != nil {
		if errors.Is(err, pdf.ErrDisabled) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		log.Errorf("failed to render pdf for %d-%02d: %v", view.Month.Year, view.Month.Month, err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeAttachment(w, "application/pdf", exportFilename(view.Month, "pdf"), document)
}

func (h *Handler) ExportICS(w http.ResponseWriter, r *http.Request) {
	view, ok := h.monthForExport(w, r)
	if !ok {
		return
	}
	out := calendar.RenderICS(view, h.clock.Now().UTC())
	writeAttachment(w, "text/calendar; charset=utf-8", exportFilename(view.Month, "ics"), []byte(out))
}

func (h *Handler) ExportCSV(w http.ResponseWriter, r *http.Request) {
	view, ok := h.monthForExport(w, r)
	if !ok {
		return
	}
	out, err := calendar.RenderCSV(view)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeAttachment(w, "text/csv; charset=utf-8", exportFilename(view.Month, "csv"), []byte(out))
}

func (h *Handler) monthForExport(w http.ResponseWriter, r *http.Request) (calendar.MonthView, bool) {
	year, month, ok := monthVars(w, r)
	if !ok {
		return calendar.MonthView{}, false
	}
	view, err := h.calendar.GetMonth(r.Context(), year, month)
	if err != nil {
		log.Errorf("failed to get month %d-%02d: %v", year, month, err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return calendar.MonthView{}, false
	}
	return view, true
}

func exportFilename(m calendar.Month, ext string) string {
	return fmt.Sprintf("calendar-%d-%02d.%s", m.Year, int(m.Month), ext)
}

func writeAttachment(w http.ResponseWriter, contentType, filename string, body []byte) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s\"", filename))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		log.Debugf("failed to write %s: %v", filename, err)
	}
}

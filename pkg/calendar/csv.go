package calendar

import (
	"bytes"
	"encoding/csv"
	"strconv"

	log "github.com/sirupsen/logrus"
)

var csvHeader = []string{"Start date", "End date", "Time", "Title", "Color", "Recurring", "Link", "Description"}

// RenderCSV writes one row per occurrence of the month, in display order.
func RenderCSV(view MonthView) (string, error) {
	data := make([][]string, 0, len(view.Occurrences)+1)
	data = append(data, csvHeader)
	for _, o := range view.Occurrences {
		data = append(data, []string{
			o.StartDate.Format(DateLayout),
			o.EndDate.Format(DateLayout),
			FormatRange(o.StartTime, o.EndTime),
			o.Title,
			string(o.Color),
			strconv.FormatBool(o.IsWeekly()),
			o.URL,
			o.Description,
		})
	}

	var b bytes.Buffer
	writer := csv.NewWriter(&b)
	for _, row := range data {
		err := writer.Write(row)
		if err != nil {
			log.Errorf("Error writing to csv: %v", err)
			return "", err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		log.Errorf("Error writing to csv: %v", err)
		return "", err
	}

	return b.String(), nil
}

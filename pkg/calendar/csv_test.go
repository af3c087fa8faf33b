package calendar

import (
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderCSV(t *testing.T) {
	meeting := single(1, "Planning, Q2", Date(2024, 4, 2), Date(2024, 4, 2))
	meeting.StartTime = "13:00"
	meeting.EndTime = "14:00"
	meeting.Description = "Room \"Oak\""
	trip := single(2, "Trip", Date(2024, 4, 10), Date(2024, 4, 12))
	occurrences, err := Expand([]Event{trip, meeting}, 2024, time.April)
	require.NoError(t, err)

	out, err := RenderCSV(MonthView{Occurrences: occurrences})

	require.NoError(t, err)
	records, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, csvHeader, records[0])
	assert.Equal(t, []string{"2024-04-02", "2024-04-02", "1:00 PM-2:00 PM", "Planning, Q2", "blue", "false", "", "Room \"Oak\""}, records[1])
	assert.Equal(t, []string{"2024-04-10", "2024-04-12", "", "Trip", "blue", "false", "", ""}, records[2])
}

func TestRenderCSV_EmptyMonth(t *testing.T) {
	out, err := RenderCSV(MonthView{})

	require.NoError(t, err)
	assert.Equal(t, strings.Join(csvHeader, ",")+"\n", out)
}

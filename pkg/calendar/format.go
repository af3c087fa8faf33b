package calendar

import "time"

const (
	clockLayout      = "15:04"
	twelveHourLayout = "3:04 PM"
)

// ClockText is the display form of a time of day. Formatted is false when the
// input was empty or could not be parsed and Text carries it unchanged.
type ClockText struct {
	Text      string
	Formatted bool
}

func (c ClockText) String() string {
	return c.Text
}

// To12Hour renders a 24-hour HH:MM value as H:MM AM/PM.
func To12Hour(value string) ClockText {
	if value == "" {
		return ClockText{}
	}
	t, err := time.Parse(clockLayout, value)
	if err != nil {
		return ClockText{Text: value}
	}
	return ClockText{Text: t.Format(twelveHourLayout), Formatted: true}
}

// FormatRange renders "start-end" when both times are present, the start
// alone when only it is present, and an empty string otherwise.
func FormatRange(start, end string) string {
	if start == "" {
		return ""
	}
	if end == "" {
		return To12Hour(start).Text
	}
	return To12Hour(start).Text + "-" + To12Hour(end).Text
}

package calendar

import "time"

// Color is a palette key. Stored values are not validated against the
// palette; unknown keys render with the default style.
type Color string

const (
	Blue   Color = "blue"
	Green  Color = "green"
	Red    Color = "red"
	Purple Color = "purple"
	Yellow Color = "yellow"
	Indigo Color = "indigo"
	Pink   Color = "pink"
	Gray   Color = "gray"

	// AutoColor asks the service to pick a color that does not clash with
	// the other events of the same day.
	AutoColor Color = "auto"

	DefaultColor = Blue
)

var palette = [...]Color{Blue, Green, Red, Purple, Yellow, Indigo, Pink, Gray}

// Palette returns the colors in assignment order.
func Palette() []Color {
	colors := make([]Color, len(palette))
	copy(colors, palette[:])
	return colors
}

// InPalette reports whether c is one of the palette colors.
func (c Color) InPalette() bool {
	for _, p := range palette {
		if p == c {
			return true
		}
	}
	return false
}

// AssignColor picks the first palette color not used by any occurrence that
// covers day. Occurrences without a color are not counted. When every palette
// color is taken it cycles through the palette by the number of distinct
// colors in use, so a color is always returned.
func AssignColor(day time.Time, occurrences []Occurrence) Color {
	day = DateOf(day)
	used := make(map[Color]struct{}, len(palette))
	for _, o := range occurrences {
		if o.Color != "" && o.Covers(day) {
			used[o.Color] = struct{}{}
		}
	}
	for _, c := range palette {
		if _, taken := used[c]; !taken {
			return c
		}
	}
	return palette[len(used)%len(palette)]
}

// Style holds the CSS classes used to paint an event of a given color.
type Style struct {
	Background string
	Border     string
	Text       string
}

var styles = map[Color]Style{
	Blue:   {Background: "bg-blue-100", Border: "border-blue-500", Text: "text-blue-800"},
	Green:  {Background: "bg-green-100", Border: "border-green-500", Text: "text-green-800"},
	Red:    {Background: "bg-red-100", Border: "border-red-500", Text: "text-red-800"},
	Purple: {Background: "bg-purple-100", Border: "border-purple-500", Text: "text-purple-800"},
	Yellow: {Background: "bg-yellow-100", Border: "border-yellow-500", Text: "text-yellow-800"},
	Indigo: {Background: "bg-indigo-100", Border: "border-indigo-500", Text: "text-indigo-800"},
	Pink:   {Background: "bg-pink-100", Border: "border-pink-500", Text: "text-pink-800"},
	Gray:   {Background: "bg-gray-100", Border: "border-gray-500", Text: "text-gray-800"},
}

// StyleFor returns the style of a color, falling back to blue.
func StyleFor(c Color) Style {
	if s, ok := styles[c]; ok {
		return s
	}
	return styles[DefaultColor]
}

// Hex returns the border color as a hex value, used where CSS classes are not
// available (PDF and ICS output).
func (c Color) Hex() string {
	switch c {
	case Green:
		return "#22c55e"
	case Red:
		return "#ef4444"
	case Purple:
		return "#a855f7"
	case Yellow:
		return "#eab308"
	case Indigo:
		return "#6366f1"
	case Pink:
		return "#ec4899"
	case Gray:
		return "#6b7280"
	default:
		return "#3b82f6"
	}
}

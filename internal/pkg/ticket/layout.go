package ticket

import (
	"fmt"
	"strings"
	"time"
)

// ParseLayout parses value with a Go layout. Parsing is strict on width, so
// "9:40" does not match "15:04". With a two-digit year layout every year lands
// in 2000-2099.
func ParseLayout(layout, value string) (time.Time, error) {
	parsed, err := time.Parse(layout, value)
	if err != nil {
		return time.Time{}, err
	}

	if formatted := parsed.Format(layout); formatted != value {
		return time.Time{}, fmt.Errorf("parsing time %q as %q: expected %q", value, layout, formatted)
	}

	if hasShortYear(layout) && parsed.Year() < 2000 {
		parsed = parsed.AddDate(100, 0, 0)
	}

	return parsed, nil
}

func hasShortYear(layout string) bool {
	return strings.Contains(strings.ReplaceAll(layout, "2006", ""), "06")
}

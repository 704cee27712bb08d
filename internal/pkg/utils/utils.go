package utils

import (
	"fmt"
	"time"
)

// ConvertMinutesToDuration convert minutes to duration format string
// Example: 125 -> "2h 5m"
func ConvertMinutesToDuration(durationInMinutes int64) string {
	sign := ""
	if durationInMinutes < 0 {
		sign = "-"
		durationInMinutes = -durationInMinutes
	}

	h := durationInMinutes / 60
	m := durationInMinutes % 60

	if m == 0 {
		return fmt.Sprintf("%s%dh", sign, h)
	}

	if h == 0 {
		return fmt.Sprintf("%s%dm", sign, m)
	}

	return fmt.Sprintf("%s%dh %dm", sign, h, m)
}

// FormatDuration renders d in whole minutes, e.g. 8h15m30s -> "8h 15m"
func FormatDuration(d time.Duration) string {
	return ConvertMinutesToDuration(int64(d / time.Minute))
}

// FormatHoursMinutes renders minutes as "N h M min"
// Example: 375 -> "6 h 15 min", -90 -> "-1 h 30 min"
func FormatHoursMinutes(totalMinutes int64) string {
	sign := ""
	if totalMinutes < 0 {
		sign = "-"
		totalMinutes = -totalMinutes
	}

	return fmt.Sprintf("%s%d h %d min", sign, totalMinutes/60, totalMinutes%60)
}

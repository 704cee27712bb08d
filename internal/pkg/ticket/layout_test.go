//go:build unit

package ticket

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLayout(t *testing.T) {
	parseRequest := func(layout, value string, want time.Time, wantErr bool) func(t *testing.T) {
		return func(t *testing.T) {
			got, err := ParseLayout(layout, value)
			if wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.True(t, want.Equal(got), "want %s, got %s", want, got)
		}
	}

	t.Run("short_year_before_pivot", parseRequest("02.01.06", "31.12.68",
		time.Date(2068, 12, 31, 0, 0, 0, 0, time.UTC), false))
	t.Run("short_year_after_pivot", parseRequest("02.01.06", "01.01.69",
		time.Date(2069, 1, 1, 0, 0, 0, 0, time.UTC), false))
	t.Run("short_year_99", parseRequest("02.01.06 15:04", "15.06.99 08:30",
		time.Date(2099, 6, 15, 8, 30, 0, 0, time.UTC), false))
	t.Run("long_year_kept", parseRequest("02.01.2006", "01.01.1969",
		time.Date(1969, 1, 1, 0, 0, 0, 0, time.UTC), false))
	t.Run("one_digit_hour", parseRequest("15:04", "9:40", time.Time{}, true))
	t.Run("one_digit_day", parseRequest("02.01.06", "1.05.18", time.Time{}, true))
	t.Run("two_digit_hour", parseRequest("15:04", "09:40",
		time.Date(0, 1, 1, 9, 40, 0, 0, time.UTC), false))
}

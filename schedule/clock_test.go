package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bellinghamhappyhours/bellingham-happy-hours/models"
)

func TestParseClock(t *testing.T) {
	tests := []struct {
		input   string
		minutes int
		valid   bool
	}{
		{"09:05", 545, true},
		{"9:05", 545, true},
		{"23:59", 1439, true},
		{"00:00", 0, true},
		{"15:30", 930, true},
		{"24:00", 0, false},
		{"9:5", 0, false},
		{"25:00", 0, false},
		{"12:60", 0, false},
		{"noon", 0, false},
		{"", 0, false},
		{"Open", 0, false},
		{"  17:00  ", 1020, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := ParseClock(tt.input)
			assert.Equal(t, tt.valid, got.IsValid())
			if tt.valid {
				assert.Equal(t, tt.minutes, got.Minutes())
			}
		})
	}
}

func TestFormat12Hour(t *testing.T) {
	assert.Equal(t, "3:30 PM", Format12Hour(930))
	assert.Equal(t, "12:00 AM", Format12Hour(0))
	assert.Equal(t, "12:00 PM", Format12Hour(720))
	assert.Equal(t, "9:05 AM", Format12Hour(545))
	assert.Equal(t, "11:59 PM", Format12Hour(1439))
}

// Formatting a minute value to 12-hour display and re-parsing it must give
// back the same minute value for every minute of the day.
func TestFormat12HourRoundTrip(t *testing.T) {
	for m := 0; m < MinutesPerDay; m++ {
		display := Format12Hour(m)
		parsed, err := time.Parse("3:04 PM", display)
		require.NoError(t, err, "minute %d formatted as %q", m, display)
		assert.Equal(t, m, parsed.Hour()*60+parsed.Minute(), "round trip for %q", display)
	}
}

func TestClockTimeString(t *testing.T) {
	assert.Equal(t, "09:05", Clock(545).String())
	assert.Equal(t, "invalid", InvalidClock().String())
}

func TestResolveWindow(t *testing.T) {
	t.Run("literal times", func(t *testing.T) {
		rec := models.DealRecord{StartTime: "17:00", EndTime: "19:00"}
		start, end := ResolveWindow(rec)
		require.True(t, start.IsValid())
		require.True(t, end.IsValid())
		assert.Equal(t, 1020, start.Minutes())
		assert.Equal(t, 1140, end.Minutes())
	})

	t.Run("relative tokens use venue hours", func(t *testing.T) {
		rec := models.DealRecord{
			StartTime: "Open", OpenTime: "11:00",
			EndTime: "Close", CloseTime: "23:00",
		}
		start, end := ResolveWindow(rec)
		assert.Equal(t, 660, start.Minutes())
		assert.Equal(t, 1380, end.Minutes())
	})

	t.Run("tokens are case-insensitive", func(t *testing.T) {
		rec := models.DealRecord{
			StartTime: "open", OpenTime: "10:30",
			EndTime: "CLOSE", CloseTime: "22:00",
		}
		start, end := ResolveWindow(rec)
		assert.Equal(t, 630, start.Minutes())
		assert.Equal(t, 1320, end.Minutes())
	})

	t.Run("missing companion degrades to invalid", func(t *testing.T) {
		rec := models.DealRecord{StartTime: "Open", EndTime: "19:00"}
		start, end := ResolveWindow(rec)
		assert.False(t, start.IsValid())
		assert.True(t, end.IsValid())
	})

	t.Run("malformed literal degrades to invalid", func(t *testing.T) {
		rec := models.DealRecord{StartTime: "25:00", EndTime: "9:5"}
		start, end := ResolveWindow(rec)
		assert.False(t, start.IsValid())
		assert.False(t, end.IsValid())
	})
}

package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bellinghamhappyhours/bellingham-happy-hours/models"
)

func window(day models.Weekday, start, end string) models.DealRecord {
	return models.DealRecord{
		VenueName: "Test Venue",
		DayOfWeek: day,
		StartTime: start,
		EndTime:   end,
	}
}

func TestIsActiveAtSameDay(t *testing.T) {
	rec := window(models.Friday, "17:00", "19:00")

	assert.True(t, IsActiveAt(rec, models.Friday, 18*60+30))
	assert.True(t, IsActiveAt(rec, models.Friday, 17*60), "start minute is inclusive")
	assert.True(t, IsActiveAt(rec, models.Friday, 19*60), "end minute is inclusive")
	assert.False(t, IsActiveAt(rec, models.Friday, 16*60+59))
	assert.False(t, IsActiveAt(rec, models.Friday, 19*60+1))
	assert.False(t, IsActiveAt(rec, models.Saturday, 18*60), "wrong day")
}

func TestIsActiveAtMidnightCrossing(t *testing.T) {
	// 22:00 - 01:30, stored on Friday.
	rec := window(models.Friday, "22:00", "01:30")

	// Directly active late on its own day.
	assert.True(t, IsActiveAt(rec, models.Friday, 23*60))
	// Still active on its own day shortly after midnight (reference minute
	// below start gets shifted forward a day).
	assert.True(t, IsActiveAt(rec, models.Friday, 45))
	// Carry-over: the query day is Saturday, the record is Friday's.
	assert.True(t, IsActiveAt(rec, models.Saturday, 45))
	assert.True(t, IsActiveAt(rec, models.Saturday, 90), "carry-over threshold is inclusive")
	// Past the 90-minute carry-over threshold.
	assert.False(t, IsActiveAt(rec, models.Saturday, 120))
	// Within the threshold but after the window closed.
	short := window(models.Friday, "23:00", "00:30")
	assert.False(t, IsActiveAt(short, models.Saturday, 45))
	// Carry-over never applies to non-crossing windows.
	plain := window(models.Friday, "17:00", "19:00")
	assert.False(t, IsActiveAt(plain, models.Saturday, 45))
}

func TestIsActiveAtFailsClosed(t *testing.T) {
	assert.False(t, IsActiveAt(window(models.Friday, "25:00", "19:00"), models.Friday, 18*60))
	assert.False(t, IsActiveAt(window(models.Friday, "17:00", ""), models.Friday, 18*60))
	assert.False(t, IsActiveAt(models.DealRecord{DayOfWeek: models.Friday, StartTime: "Open", EndTime: "19:00"}, models.Friday, 18*60))
}

func TestIsActiveAtRelativeTokens(t *testing.T) {
	rec := models.DealRecord{
		DayOfWeek: models.Monday,
		StartTime: "Open", OpenTime: "11:00",
		EndTime: "Close", CloseTime: "14:00",
	}
	assert.True(t, IsActiveAt(rec, models.Monday, 12*60))
	assert.False(t, IsActiveAt(rec, models.Monday, 15*60))
}

func TestCrosses(t *testing.T) {
	assert.True(t, Crosses(window(models.Friday, "22:00", "01:30")))
	assert.False(t, Crosses(window(models.Friday, "17:00", "19:00")))
	assert.False(t, Crosses(window(models.Friday, "bad", "01:30")))
}

func TestMinutesUntilStart(t *testing.T) {
	ref := 18*60 + 30 // 18:30

	upcoming := window(models.Friday, "19:00", "21:00")
	delta, ok := MinutesUntilStart(upcoming, models.Friday, ref)
	require.True(t, ok)
	assert.Equal(t, 30, delta)

	active := window(models.Friday, "17:00", "19:00")
	_, ok = MinutesUntilStart(active, models.Friday, ref)
	assert.False(t, ok, "already active")

	ended := window(models.Friday, "10:00", "12:00")
	_, ok = MinutesUntilStart(ended, models.Friday, ref)
	assert.False(t, ok, "already ended")

	_, ok = MinutesUntilStart(upcoming, models.Saturday, ref)
	assert.False(t, ok, "wrong day")

	invalid := window(models.Friday, "bad", "21:00")
	_, ok = MinutesUntilStart(invalid, models.Friday, ref)
	assert.False(t, ok, "invalid start time")
}

func TestStatusAt(t *testing.T) {
	ref := 18*60 + 30

	assert.Equal(t, StatusActive, StatusAt(window(models.Friday, "17:00", "19:00"), models.Friday, ref))
	assert.Equal(t, StatusUpcoming, StatusAt(window(models.Friday, "19:00", "21:00"), models.Friday, ref))
	assert.Equal(t, StatusEnded, StatusAt(window(models.Friday, "10:00", "12:00"), models.Friday, ref))
	assert.Equal(t, StatusEnded, StatusAt(window(models.Friday, "bad", "12:00"), models.Friday, ref))
	assert.Equal(t, StatusEnded, StatusAt(window(models.Saturday, "19:00", "21:00"), models.Friday, ref))
}

package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWeekdayFromTime(t *testing.T) {
	assert.Equal(t, Sunday, WeekdayFromTime(time.Sunday))
	assert.Equal(t, Monday, WeekdayFromTime(time.Monday))
	assert.Equal(t, Saturday, WeekdayFromTime(time.Saturday))
}

func TestWeekdayPrevious(t *testing.T) {
	assert.Equal(t, Sunday, Monday.Previous())
	assert.Equal(t, Saturday, Sunday.Previous())
	assert.Equal(t, Thursday, Friday.Previous())

	// Full cycle comes back to the start.
	day := Wednesday
	for i := 0; i < 7; i++ {
		day = day.Previous()
	}
	assert.Equal(t, Wednesday, day)
}

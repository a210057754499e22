// schedule/evaluate.go
package schedule

import (
	"github.com/bellinghamhappyhours/bellingham-happy-hours/models"
)

// CarryOverMinutes is how far past midnight a window that started the
// previous calendar day still counts as active (01:30 at the latest).
const CarryOverMinutes = 90

// Status is the three-way classification of a record against a reference
// instant. It is recomputed on every query, never cached.
type Status int

const (
	StatusActive Status = iota
	StatusUpcoming
	StatusEnded
)

// Crosses reports whether a record's resolved window spans midnight.
// Records with invalid times never cross.
func Crosses(rec models.DealRecord) bool {
	start, end := ResolveWindow(rec)
	if !start.IsValid() || !end.IsValid() {
		return false
	}
	return end.Minutes() < start.Minutes()
}

// IsActiveAt reports whether a record's deal window covers the given instant
// (calendar day + minute of day). Two cases match:
//
//   - the record is stored on the query day and its window contains the
//     reference minute, extending past midnight when end < start;
//   - the record is stored on the previous day, its window crosses midnight,
//     and the reference minute is within the carry-over threshold.
//
// Invalid times fail closed.
func IsActiveAt(rec models.DealRecord, day models.Weekday, minute int) bool {
	start, end := ResolveWindow(rec)
	if !start.IsValid() || !end.IsValid() {
		return false
	}
	s := start.Minutes()
	e := end.Minutes()
	crosses := e < s

	if rec.DayOfWeek == day {
		if crosses {
			adj := minute
			if adj < s {
				adj += MinutesPerDay
			}
			return adj >= s && adj <= e+MinutesPerDay
		}
		return minute >= s && minute <= e
	}

	if rec.DayOfWeek == day.Previous() && crosses && minute <= CarryOverMinutes {
		return minute <= e
	}

	return false
}

// MinutesUntilStart returns how many minutes remain until a record's window
// opens, for records on the reference day that have not started yet. The
// second return is false when the delta does not apply: wrong day, invalid
// time, already active, or already ended.
func MinutesUntilStart(rec models.DealRecord, day models.Weekday, minute int) (int, bool) {
	if rec.DayOfWeek != day {
		return 0, false
	}
	start, _ := ResolveWindow(rec)
	if !start.IsValid() {
		return 0, false
	}
	if IsActiveAt(rec, day, minute) {
		return 0, false
	}
	delta := start.Minutes() - minute
	if delta < 0 {
		return 0, false
	}
	return delta, true
}

// StatusAt classifies a record against the reference instant. Records with
// unusable times land in StatusEnded so they sort last.
func StatusAt(rec models.DealRecord, day models.Weekday, minute int) Status {
	if IsActiveAt(rec, day, minute) {
		return StatusActive
	}
	if _, ok := MinutesUntilStart(rec, day, minute); ok {
		return StatusUpcoming
	}
	return StatusEnded
}

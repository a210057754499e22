// schedule/clock.go
package schedule

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/bellinghamhappyhours/bellingham-happy-hours/models"
)

// MinutesPerDay is one calendar day in minutes.
const MinutesPerDay = 24 * 60

// Accepts "H:MM" or "HH:MM", 24-hour. The minute part must be two digits, so
// "9:5" is rejected even though "9:05" is fine.
var clockRegex = regexp.MustCompile(`^([01]?\d|2[0-3]):([0-5]\d)$`)

// ClockTime is a resolved time of day: either a literal minute-of-day value or
// invalid. The evaluator never re-parses raw sheet text; everything funnels
// through this type.
type ClockTime struct {
	minutes int
	valid   bool
}

// Clock builds a valid ClockTime from a minute-of-day value.
func Clock(minutes int) ClockTime {
	return ClockTime{minutes: minutes, valid: true}
}

// InvalidClock is the sentinel for unparseable time values.
func InvalidClock() ClockTime {
	return ClockTime{}
}

// Minutes returns minutes after midnight (0-1439). Only meaningful when
// IsValid reports true.
func (c ClockTime) Minutes() int {
	return c.minutes
}

// IsValid reports whether this is a literal clock value.
func (c ClockTime) IsValid() bool {
	return c.valid
}

// String renders "HH:MM" for valid values and "invalid" otherwise.
func (c ClockTime) String() string {
	if !c.valid {
		return "invalid"
	}
	return fmt.Sprintf("%02d:%02d", c.minutes/60, c.minutes%60)
}

// ParseClock converts a literal 24-hour "HH:MM" string into a ClockTime.
// Malformed input yields the invalid sentinel, never an error.
func ParseClock(s string) ClockTime {
	m := clockRegex.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return InvalidClock()
	}
	h, _ := strconv.Atoi(m[1])
	mm, _ := strconv.Atoi(m[2])
	return Clock(h*60 + mm)
}

// Format12Hour renders a minute-of-day value as "h:MM AM/PM" for display.
// Example: 930 -> "3:30 PM".
func Format12Hour(minutes int) string {
	h := minutes / 60
	m := minutes % 60

	suffix := "AM"
	if h >= 12 {
		suffix = "PM"
	}
	h = h % 12
	if h == 0 {
		h = 12
	}
	return fmt.Sprintf("%d:%02d %s", h, m, suffix)
}

// ResolveWindow returns the effective start and end of a record's deal window,
// substituting the venue's open/close times for the "Open"/"Close" relative
// tokens. Either side degrades to the invalid sentinel when the underlying
// text does not parse.
func ResolveWindow(rec models.DealRecord) (start, end ClockTime) {
	s := strings.TrimSpace(rec.StartTime)
	if strings.EqualFold(s, "Open") {
		s = strings.TrimSpace(rec.OpenTime)
	}
	e := strings.TrimSpace(rec.EndTime)
	if strings.EqualFold(e, "Close") {
		e = strings.TrimSpace(rec.CloseTime)
	}
	return ParseClock(s), ParseClock(e)
}

// services/query_service.go
package services

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/bellinghamhappyhours/bellingham-happy-hours/models"
	"github.com/bellinghamhappyhours/bellingham-happy-hours/normalizer"
	"github.com/bellinghamhappyhours/bellingham-happy-hours/schedule"
)

// Time modes accepted by DealQuery.
const (
	TimeModeAll = "all"
	TimeModeNow = "now"
	TimeModeAt  = "at"
)

// QueryDeals filters and sorts a normalized record set. Day, type, cuisine,
// neighborhood, and favorites are plain membership tests; the time modes and
// status-aware sort orders delegate to the schedule package. The input slice
// is not modified.
func QueryDeals(records []models.DealRecord, q models.DealQuery, now time.Time) ([]models.DealRecord, error) {
	day, err := effectiveDay(q.Day, now)
	if err != nil {
		return nil, err
	}

	mode := strings.ToLower(strings.TrimSpace(q.TimeMode))
	if mode == "" {
		mode = TimeModeAll
	}

	minute := now.Hour()*60 + now.Minute()
	switch mode {
	case TimeModeAll, TimeModeNow:
	case TimeModeAt:
		at := schedule.ParseClock(q.AtTime)
		if !at.IsValid() {
			return nil, fmt.Errorf("invalid at_time %q, expected HH:MM", q.AtTime)
		}
		minute = at.Minutes()
	default:
		return nil, fmt.Errorf("invalid time_mode %q", q.TimeMode)
	}

	var wantType models.DealType
	filterType := false
	if t := strings.TrimSpace(q.DealType); t != "" && !strings.EqualFold(t, "any") {
		wantType = normalizer.CanonicalDealType(t)
		filterType = true
	}

	favorites := make(map[string]bool, len(q.FavoriteIDs))
	for _, id := range q.FavoriteIDs {
		favorites[id] = true
	}

	cuisine := strings.TrimSpace(q.Cuisine)
	neighborhood := strings.TrimSpace(q.Neighborhood)

	out := make([]models.DealRecord, 0, len(records))
	for _, rec := range records {
		if mode == TimeModeAll {
			if rec.DayOfWeek != day {
				continue
			}
		} else if !schedule.IsActiveAt(rec, day, minute) {
			// Timed modes keep only windows covering the reference minute,
			// including carry-over windows stored on the previous day.
			continue
		}
		if filterType && rec.DealType != wantType {
			continue
		}
		if cuisine != "" && !containsTag(rec.CuisineTags, cuisine) {
			continue
		}
		if neighborhood != "" && rec.Neighborhood != neighborhood {
			continue
		}
		if q.FavoritesOnly && !favorites[rec.ID] {
			continue
		}
		out = append(out, rec)
	}

	schedule.SortDeals(out, schedule.SortOrder(strings.ToLower(strings.TrimSpace(q.Sort))), day, minute)
	return out, nil
}

func effectiveDay(selector string, now time.Time) (models.Weekday, error) {
	s := strings.TrimSpace(selector)
	if s == "" || strings.EqualFold(s, "today") {
		return models.WeekdayFromTime(now.Weekday()), nil
	}
	day, ok := normalizer.CanonicalDay(s)
	if !ok {
		return "", fmt.Errorf("invalid day %q", selector)
	}
	return day, nil
}

func containsTag(tags []string, want string) bool {
	for _, t := range tags {
		if t == want {
			return true
		}
	}
	return false
}

// CuisineOptions returns the distinct cuisine tags across all records,
// sorted for display.
func CuisineOptions(records []models.DealRecord) []string {
	return distinct(records, func(rec models.DealRecord) []string {
		return rec.CuisineTags
	})
}

// NeighborhoodOptions returns the distinct non-empty neighborhoods, sorted.
func NeighborhoodOptions(records []models.DealRecord) []string {
	return distinct(records, func(rec models.DealRecord) []string {
		return []string{rec.Neighborhood}
	})
}

func distinct(records []models.DealRecord, pick func(models.DealRecord) []string) []string {
	seen := make(map[string]bool)
	var values []string
	for _, rec := range records {
		for _, v := range pick(rec) {
			v = strings.TrimSpace(v)
			if v != "" && !seen[v] {
				seen[v] = true
				values = append(values, v)
			}
		}
	}
	sort.Strings(values)
	return values
}

// schedule/sort.go
package schedule

import (
	"sort"
	"strings"

	"github.com/bellinghamhappyhours/bellingham-happy-hours/models"
)

// SortOrder selects how a result set is ordered.
type SortOrder string

const (
	SortChronological SortOrder = "chronological"
	SortOpenFirst     SortOrder = "open_first"
	SortStartingSoon  SortOrder = "starting_soon"
	SortAlphabetical  SortOrder = "alphabetical"
)

// Records with unparseable start times sort after everything with a real one.
const invalidStartKey = 1 << 30

func startKey(rec models.DealRecord) int {
	start, _ := ResolveWindow(rec)
	if !start.IsValid() {
		return invalidStartKey
	}
	return start.Minutes()
}

func venueLess(a, b models.DealRecord) bool {
	return strings.ToLower(a.VenueName) < strings.ToLower(b.VenueName)
}

// SortDeals orders records in place. The reference day and minute only matter
// for the status-aware orders; chronological and alphabetical ignore them.
func SortDeals(recs []models.DealRecord, order SortOrder, day models.Weekday, minute int) {
	switch order {
	case SortAlphabetical:
		sort.SliceStable(recs, func(i, j int) bool {
			return venueLess(recs[i], recs[j])
		})

	case SortOpenFirst:
		sort.SliceStable(recs, func(i, j int) bool {
			si, sj := StatusAt(recs[i], day, minute), StatusAt(recs[j], day, minute)
			if si != sj {
				return si < sj
			}
			ki, kj := startKey(recs[i]), startKey(recs[j])
			if ki != kj {
				return ki < kj
			}
			return venueLess(recs[i], recs[j])
		})

	case SortStartingSoon:
		sort.SliceStable(recs, func(i, j int) bool {
			si, sj := StatusAt(recs[i], day, minute), StatusAt(recs[j], day, minute)
			if si != sj {
				return si < sj
			}
			switch si {
			case StatusActive:
				// Active records are one tied group.
				return venueLess(recs[i], recs[j])
			case StatusUpcoming:
				di, _ := MinutesUntilStart(recs[i], day, minute)
				dj, _ := MinutesUntilStart(recs[j], day, minute)
				if di != dj {
					return di < dj
				}
				return venueLess(recs[i], recs[j])
			default:
				ki, kj := startKey(recs[i]), startKey(recs[j])
				if ki != kj {
					return ki < kj
				}
				return venueLess(recs[i], recs[j])
			}
		})

	default: // SortChronological
		sort.SliceStable(recs, func(i, j int) bool {
			ki, kj := startKey(recs[i]), startKey(recs[j])
			if ki != kj {
				return ki < kj
			}
			return venueLess(recs[i], recs[j])
		})
	}
}

// normalizer/normalizer.go
package normalizer

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/bellinghamhappyhours/bellingham-happy-hours/models"
	"github.com/bellinghamhappyhours/bellingham-happy-hours/schedule"
)

// Row rejection reasons. Rejections are row-level and silent: a bad row is
// dropped from the output and only the aggregate count is reported.
var (
	ErrMissingVenue  = errors.New("missing venue name")
	ErrMissingLink   = errors.New("missing both menu and website link")
	ErrUnresolvedDay = errors.New("no day token resolved")
	ErrInvalidTime   = errors.New("invalid or unresolvable start/end time")
)

// Normalize converts the raw sheet rows into validated deal records. Each row
// is handled independently; one malformed row never aborts the batch. A row
// whose day column lists several days expands into one record per resolved
// day. Returns the surviving records and the count of rejected rows.
func Normalize(rows []models.RawSheetRow) ([]models.DealRecord, int) {
	records := make([]models.DealRecord, 0, len(rows))
	rejected := 0
	for idx, row := range rows {
		recs, err := normalizeRow(row, idx)
		if err != nil {
			rejected++
			continue
		}
		records = append(records, recs...)
	}
	return records, rejected
}

func normalizeRow(row models.RawSheetRow, idx int) ([]models.DealRecord, error) {
	trimRow(&row)

	if row.VenueName == "" {
		return nil, ErrMissingVenue
	}
	if row.MenuURL == "" && row.WebsiteURL == "" {
		return nil, ErrMissingLink
	}

	days := resolveDays(row.DayOfWeek)
	if len(days) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrUnresolvedDay, row.DayOfWeek)
	}

	start, end, err := resolveTimes(row)
	if err != nil {
		return nil, err
	}

	menuURL := row.MenuURL
	if menuURL == "" {
		// A venue with only a website still gets a usable menu action.
		menuURL = row.WebsiteURL
	}

	label := row.DealLabel
	if label == "" {
		if known, ok := KnownLabel(row.Notes); ok {
			label = known
		}
	}

	records := make([]models.DealRecord, 0, len(days))
	for _, day := range days {
		records = append(records, models.DealRecord{
			ID:           deriveID(row.VenueName, day, start, end, label, idx),
			VenueName:    row.VenueName,
			Neighborhood: row.Neighborhood,
			CuisineTags:  SplitCuisineTags(row.CuisineTags),
			MenuURL:      menuURL,
			WebsiteURL:   row.WebsiteURL,
			DayOfWeek:    day,
			StartTime:    start,
			EndTime:      end,
			OpenTime:     row.OpenTime,
			CloseTime:    row.CloseTime,
			DealType:     CanonicalDealType(row.Type),
			DealLabel:    label,
			Notes:        row.Notes,
			LastVerified: row.LastVerified,
		})
	}
	return records, nil
}

func trimRow(row *models.RawSheetRow) {
	row.VenueName = strings.TrimSpace(row.VenueName)
	row.Neighborhood = strings.TrimSpace(row.Neighborhood)
	row.CuisineTags = strings.TrimSpace(row.CuisineTags)
	row.MenuURL = strings.TrimSpace(row.MenuURL)
	row.WebsiteURL = strings.TrimSpace(row.WebsiteURL)
	row.DayOfWeek = strings.TrimSpace(row.DayOfWeek)
	row.StartTime = strings.TrimSpace(row.StartTime)
	row.EndTime = strings.TrimSpace(row.EndTime)
	row.OpenTime = strings.TrimSpace(row.OpenTime)
	row.CloseTime = strings.TrimSpace(row.CloseTime)
	row.Type = strings.TrimSpace(row.Type)
	row.DealLabel = strings.TrimSpace(row.DealLabel)
	row.Notes = strings.TrimSpace(row.Notes)
	row.LastVerified = strings.TrimSpace(row.LastVerified)
}

// resolveDays expands the day column into resolved weekdays. Tokens split on
// comma, pipe, or slash; a single delimiter-free token falls back to
// whitespace splitting so "Mon Wed Fri" still works. Unresolvable tokens are
// skipped, not fatal; the caller rejects the row only when nothing resolves.
func resolveDays(field string) []models.Weekday {
	tokens := strings.FieldsFunc(field, func(r rune) bool {
		return r == ',' || r == '|' || r == '/'
	})
	if len(tokens) == 1 {
		tokens = strings.Fields(tokens[0])
	}

	var days []models.Weekday
	for _, tok := range tokens {
		if day, ok := CanonicalDay(tok); ok {
			days = append(days, day)
		}
	}
	return days
}

// resolveTimes validates the start/end columns and returns them in canonical
// form: a literal "HH:MM", or the token "Open"/"Close" when the companion
// open_time/close_time column holds a valid literal.
func resolveTimes(row models.RawSheetRow) (start, end string, err error) {
	start, err = resolveTimeField(row.StartTime, "Open", row.OpenTime)
	if err != nil {
		return "", "", err
	}
	end, err = resolveTimeField(row.EndTime, "Close", row.CloseTime)
	if err != nil {
		return "", "", err
	}
	return start, end, nil
}

func resolveTimeField(value, token, companion string) (string, error) {
	if value == "" {
		return "", fmt.Errorf("%w: empty", ErrInvalidTime)
	}
	if strings.EqualFold(value, token) {
		if !schedule.ParseClock(companion).IsValid() {
			return "", fmt.Errorf("%w: %q without a valid companion time", ErrInvalidTime, token)
		}
		return token, nil
	}
	if !schedule.ParseClock(value).IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidTime, value)
	}
	return value, nil
}

// SplitCuisineTags splits the comma/semicolon-delimited cuisine column into
// trimmed tags, dropping empty tokens. Empty input yields an empty slice.
func SplitCuisineTags(field string) []string {
	tokens := strings.FieldsFunc(field, func(r rune) bool {
		return r == ',' || r == ';'
	})
	tags := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if t := strings.TrimSpace(tok); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

// deriveID builds the stable composite id. The source row index keeps two
// otherwise-identical rows from colliding; the day keeps multi-day
// expansions distinct.
func deriveID(venue string, day models.Weekday, start, end, label string, idx int) string {
	return strings.Join([]string{venue, string(day), start, end, label, strconv.Itoa(idx)}, "|")
}

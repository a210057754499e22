// normalizer/tables.go
package normalizer

import (
	"strings"

	"github.com/bellinghamhappyhours/bellingham-happy-hours/models"
)

// Canonicalization tables for the free-text sheet vocabulary. These maps are
// the single source of truth for day names, deal types, and known deal
// labels; the matching rules (lowercase, trim, strip stray punctuation) live
// in the lookup functions below.

var dayNames = map[string]models.Weekday{
	"monday":    models.Monday,
	"mon":       models.Monday,
	"tuesday":   models.Tuesday,
	"tues":      models.Tuesday,
	"tue":       models.Tuesday,
	"wednesday": models.Wednesday,
	"weds":      models.Wednesday,
	"wed":       models.Wednesday,
	"thursday":  models.Thursday,
	"thurs":     models.Thursday,
	"thur":      models.Thursday,
	"thu":       models.Thursday,
	"friday":    models.Friday,
	"fri":       models.Friday,
	"saturday":  models.Saturday,
	"sat":       models.Saturday,
	"sunday":    models.Sunday,
	"sun":       models.Sunday,
}

var dealTypes = map[string]models.DealType{
	"food":           models.DealTypeFood,
	"food only":      models.DealTypeFood,
	"drink":          models.DealTypeDrink,
	"drinks":         models.DealTypeDrink,
	"drink only":     models.DealTypeDrink,
	"both":           models.DealTypeBoth,
	"food and drink": models.DealTypeBoth,
	"food & drink":   models.DealTypeBoth,
	"food + drink":   models.DealTypeBoth,
	"food/drink":     models.DealTypeBoth,
}

// Known deal labels, keyed by their lowercase form. When the sheet's label
// column is empty but the notes match one of these exactly, the label is
// promoted from the notes.
var knownLabels = map[string]string{
	"happy hour":     "Happy Hour",
	"late night":     "Late Night",
	"taco tuesday":   "Taco Tuesday",
	"brunch":         "Brunch",
	"industry night": "Industry Night",
}

// CanonicalDay resolves a single free-text day token ("Monday", "mon",
// "Tues.") to its Weekday. Case-insensitive; surrounding spaces and periods
// are stripped.
func CanonicalDay(s string) (models.Weekday, bool) {
	key := strings.ToLower(strings.Trim(s, " \t."))
	day, ok := dayNames[key]
	return day, ok
}

// CanonicalDealType resolves free-text deal type to the tri-state
// classification. Unrecognized or empty input defaults to "Food and Drink";
// this field never rejects a row.
func CanonicalDealType(s string) models.DealType {
	key := strings.ToLower(strings.TrimSpace(s))
	if t, ok := dealTypes[key]; ok {
		return t
	}
	return models.DealTypeBoth
}

// KnownLabel reports the display form of a known deal label, matching the
// trimmed, lowercased input exactly.
func KnownLabel(s string) (string, bool) {
	label, ok := knownLabels[strings.ToLower(strings.TrimSpace(s))]
	return label, ok
}

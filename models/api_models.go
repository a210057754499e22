// models/api_models.go
package models

// DealQuery is the expected JSON body for the /api/deals/query endpoint.
// Zero values mean "no filter" except TimeMode, which defaults to "all".
type DealQuery struct {
	Day           string   `json:"day"`            // "Today", a day name, or empty for today
	DealType      string   `json:"type"`           // "any", "food", "drink", "both"
	Cuisine       string   `json:"cuisine"`        // exact tag match
	Neighborhood  string   `json:"neighborhood"`   // exact match
	FavoriteIDs   []string `json:"favorite_ids"`   // client-held saved ids
	FavoritesOnly bool     `json:"favorites_only"` // restrict to FavoriteIDs
	TimeMode      string   `json:"time_mode"`      // "all", "now", or "at"
	AtTime        string   `json:"at_time"`        // "HH:MM", required when time_mode == "at"
	Sort          string   `json:"sort"`           // "chronological", "open_first", "starting_soon", "alphabetical"
}

// SheetMeta describes the provenance of the rows in a response.
type SheetMeta struct {
	FetchedAt    string `json:"fetched_at"`
	FromSnapshot bool   `json:"from_snapshot"`
	RowsRead     int    `json:"rows_read"`
	RowsAccepted int    `json:"rows_accepted"`
	RowsRejected int    `json:"rows_rejected"`
}

// DealsResponse is the JSON shape of the listing and query endpoints. Rows is
// always present, empty rather than null when nothing matched; Error is set
// only when the source itself could not be loaded.
type DealsResponse struct {
	Rows  []DealRecord `json:"rows"`
	Meta  *SheetMeta   `json:"meta,omitempty"`
	Error string       `json:"error,omitempty"`
}

// FilterOptionsResponse feeds the filter dropdowns.
type FilterOptionsResponse struct {
	Cuisines      []string `json:"cuisines"`
	Neighborhoods []string `json:"neighborhoods"`
}

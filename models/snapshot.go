// models/snapshot.go
package models

import "time"

// SheetSnapshot is the last successfully fetched raw sheet body for a source,
// kept so the listing can survive a temporary fetch outage. One row per
// source name; each successful fetch replaces the previous snapshot.
type SheetSnapshot struct {
	ID         int64     `db:"id"`
	SourceName string    `db:"source_name"`
	SourceURL  string    `db:"source_url"`
	Body       []byte    `db:"body"`
	RowsRead   int       `db:"rows_read"`
	FetchedAt  time.Time `db:"fetched_at"`
	CreatedAt  time.Time `db:"created_at"`
}

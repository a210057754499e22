// services/deal_service.go
package services

import (
	"fmt"
	"log"
	"time"

	"github.com/bellinghamhappyhours/bellingham-happy-hours/config"
	"github.com/bellinghamhappyhours/bellingham-happy-hours/database"
	"github.com/bellinghamhappyhours/bellingham-happy-hours/models"
	"github.com/bellinghamhappyhours/bellingham-happy-hours/normalizer"
	"github.com/bellinghamhappyhours/bellingham-happy-hours/sheet"
)

// SourceHappyHours is the snapshot source name for the main deals sheet.
const SourceHappyHours = "happyhours"

// LoadResult carries one normalization pass plus its provenance.
type LoadResult struct {
	Records      []models.DealRecord
	FetchedAt    time.Time
	FromSnapshot bool
	RowsRead     int
	RowsRejected int
}

// Meta converts the provenance into the API shape.
func (r *LoadResult) Meta() *models.SheetMeta {
	return &models.SheetMeta{
		FetchedAt:    r.FetchedAt.Format(time.RFC3339),
		FromSnapshot: r.FromSnapshot,
		RowsRead:     r.RowsRead,
		RowsAccepted: len(r.Records),
		RowsRejected: r.RowsRejected,
	}
}

// LoadDeals runs one full pass: fetch the sheet export, parse it, normalize
// the rows. When the live fetch or parse fails and the snapshot store is
// enabled, the last good snapshot is served instead; a fresh successful
// fetch replaces the stored snapshot best-effort.
//
// Records are rebuilt from scratch on every call. Nothing is cached here;
// the sheet is the single source of truth and edits must show up on the
// next request.
func LoadDeals() (*LoadResult, error) {
	url := config.AppConfig.Sheet.CSVURL
	if url == "" {
		return nil, fmt.Errorf("sheet CSV URL is not configured")
	}

	result := &LoadResult{FetchedAt: time.Now()}

	body, err := sheet.FetchSheet(url, config.AppConfig.Sheet.FetchTimeout)
	var rows []models.RawSheetRow
	if err == nil {
		rows, err = sheet.ParseRows(body)
	}
	if err != nil {
		log.Printf("Service: live sheet load failed: %v\n", err)
		snap, snapErr := loadSnapshotRows(result)
		if snapErr != nil {
			return nil, fmt.Errorf("failed to load sheet and no usable snapshot: %w", err)
		}
		rows = snap
	}

	records, rejected := normalizer.Normalize(rows)
	result.Records = records
	result.RowsRead = len(rows)
	result.RowsRejected = rejected

	log.Printf("Service: normalized %d rows: %d records accepted, %d rows rejected.\n",
		len(rows), len(records), rejected)

	if !result.FromSnapshot && database.Enabled() {
		saveErr := database.SaveSnapshot(models.SheetSnapshot{
			SourceName: SourceHappyHours,
			SourceURL:  url,
			Body:       body,
			RowsRead:   len(rows),
			FetchedAt:  result.FetchedAt,
		})
		if saveErr != nil {
			// Snapshot persistence is best-effort; the live pass already succeeded.
			log.Printf("ERROR Service: failed to store sheet snapshot: %v\n", saveErr)
		}
	}

	return result, nil
}

func loadSnapshotRows(result *LoadResult) ([]models.RawSheetRow, error) {
	if !database.Enabled() {
		return nil, fmt.Errorf("snapshot store disabled")
	}
	snap, err := database.LatestSnapshot(SourceHappyHours)
	if err != nil {
		return nil, err
	}
	rows, err := sheet.ParseRows(snap.Body)
	if err != nil {
		return nil, err
	}
	log.Printf("Service: serving last-good sheet snapshot from %s.\n",
		snap.FetchedAt.Format(time.RFC3339))
	result.FromSnapshot = true
	result.FetchedAt = snap.FetchedAt
	return rows, nil
}

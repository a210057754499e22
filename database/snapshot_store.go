// database/snapshot_store.go
package database

import (
	"database/sql"
	"errors"
	"fmt"
	"log"

	"github.com/bellinghamhappyhours/bellingham-happy-hours/models"
)

// ErrNoSnapshot is returned when no snapshot has been stored yet for a source.
var ErrNoSnapshot = errors.New("no sheet snapshot stored")

// Expected schema:
//
//	CREATE TABLE sheet_snapshots (
//	    id          BIGINT AUTO_INCREMENT PRIMARY KEY,
//	    source_name VARCHAR(64) NOT NULL,
//	    source_url  TEXT NOT NULL,
//	    body        MEDIUMBLOB NOT NULL,
//	    rows_read   INT NOT NULL,
//	    fetched_at  DATETIME NOT NULL,
//	    created_at  DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
//	    KEY idx_source_fetched (source_name, fetched_at)
//	);

// SaveSnapshot stores the latest raw sheet body for a source using a
// clear-and-load strategy: any previous snapshot for the same source is
// replaced in the same transaction, so there is always at most one.
func SaveSnapshot(snap models.SheetSnapshot) error {
	if DB == nil {
		return fmt.Errorf("database connection is not initialized")
	}

	tx, err := DB.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction for sheet snapshot: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM sheet_snapshots WHERE source_name = ?", snap.SourceName); err != nil {
		return fmt.Errorf("failed to clear old snapshot for source %s: %w", snap.SourceName, err)
	}

	_, err = tx.Exec(`
		INSERT INTO sheet_snapshots (source_name, source_url, body, rows_read, fetched_at)
		VALUES (?, ?, ?, ?, ?)
	`, snap.SourceName, snap.SourceURL, snap.Body, snap.RowsRead, snap.FetchedAt)
	if err != nil {
		return fmt.Errorf("failed to insert snapshot for source %s: %w", snap.SourceName, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit sheet snapshot: %w", err)
	}

	log.Printf("Database: stored sheet snapshot for %s (%d bytes, %d rows).\n",
		snap.SourceName, len(snap.Body), snap.RowsRead)
	return nil
}

// LatestSnapshot returns the most recently fetched snapshot for a source, or
// ErrNoSnapshot when none has been stored.
func LatestSnapshot(sourceName string) (*models.SheetSnapshot, error) {
	if DB == nil {
		return nil, fmt.Errorf("database connection is not initialized")
	}

	var snap models.SheetSnapshot
	err := DB.QueryRow(`
		SELECT id, source_name, source_url, body, rows_read, fetched_at, created_at
		FROM sheet_snapshots
		WHERE source_name = ?
		ORDER BY fetched_at DESC
		LIMIT 1
	`, sourceName).Scan(
		&snap.ID, &snap.SourceName, &snap.SourceURL, &snap.Body,
		&snap.RowsRead, &snap.FetchedAt, &snap.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNoSnapshot
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load snapshot for source %s: %w", sourceName, err)
	}
	return &snap, nil
}

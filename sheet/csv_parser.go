// sheet/csv_parser.go
package sheet

import (
	"encoding/csv"
	"io"
	"log"

	"github.com/bellinghamhappyhours/bellingham-happy-hours/models"
	"github.com/jszwec/csvutil"
)

// ParseCSV takes an io.Reader containing the sheet's CSV export and returns
// the raw rows. csvutil maps the header line onto RawSheetRow via its
// `csv:"..."` tags; unknown columns are ignored and missing recognized
// columns decode as empty strings.
//
// Any failure here means the input is not usable tabular data at all, which
// is fatal to the whole pass and surfaced as a SourceFormatError. Bad values
// inside individual rows are the normalizer's problem, not this parser's.
func ParseCSV(reader io.Reader) ([]models.RawSheetRow, error) {
	csvReader := csv.NewReader(reader)
	csvReader.TrimLeadingSpace = true

	decoder, err := csvutil.NewDecoder(csvReader)
	if err != nil {
		return nil, &models.SourceFormatError{Reason: "failed to read CSV header", Err: err}
	}

	var rows []models.RawSheetRow
	if err := decoder.Decode(&rows); err != nil {
		return nil, &models.SourceFormatError{Reason: "failed to decode CSV rows", Err: err}
	}

	log.Printf("Sheet: parsed %d rows from CSV export.\n", len(rows))
	return rows, nil
}

// sheet/html_parser.go
package sheet

import (
	"io"
	"log"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/bellinghamhappyhours/bellingham-happy-hours/models"
)

// ParseHTMLTable extracts raw rows from a Google Sheets "publish to web"
// page. The first table on the page is used; its first row with any cell
// text is treated as the header and matched against the recognized column
// names. Unknown headers are ignored, so the sheet can carry extra columns.
//
// Published pages wrap the sheet in a table with a row-number gutter cell;
// empty header cells are skipped for the same reason.
func ParseHTMLTable(reader io.Reader) ([]models.RawSheetRow, error) {
	doc, err := goquery.NewDocumentFromReader(reader)
	if err != nil {
		return nil, &models.SourceFormatError{Reason: "failed to parse HTML page", Err: err}
	}

	table := doc.Find("table").First()
	if table.Length() == 0 {
		return nil, &models.SourceFormatError{Reason: "no table found in HTML page"}
	}

	var header []string
	var rows []models.RawSheetRow

	table.Find("tr").Each(func(_ int, tr *goquery.Selection) {
		cells := tr.Find("th, td").Map(func(_ int, cell *goquery.Selection) string {
			return strings.TrimSpace(cell.Text())
		})
		if allEmpty(cells) {
			return
		}
		if header == nil {
			header = cells
			return
		}

		var row models.RawSheetRow
		for i, value := range cells {
			if i >= len(header) {
				break
			}
			setColumn(&row, header[i], value)
		}
		rows = append(rows, row)
	})

	if header == nil {
		return nil, &models.SourceFormatError{Reason: "no header row found in HTML table"}
	}

	log.Printf("Sheet: parsed %d rows from published HTML table.\n", len(rows))
	return rows, nil
}

func allEmpty(cells []string) bool {
	for _, c := range cells {
		if c != "" {
			return false
		}
	}
	return true
}

// setColumn routes one cell into the matching RawSheetRow field. Column names
// are the same ones the CSV tags recognize, compared case-insensitively.
func setColumn(row *models.RawSheetRow, column, value string) {
	switch strings.ToLower(strings.TrimSpace(column)) {
	case "venue_name":
		row.VenueName = value
	case "neighborhood":
		row.Neighborhood = value
	case "cuisine_tags":
		row.CuisineTags = value
	case "menu_url":
		row.MenuURL = value
	case "website_url":
		row.WebsiteURL = value
	case "day_of_week":
		row.DayOfWeek = value
	case "start_time":
		row.StartTime = value
	case "end_time":
		row.EndTime = value
	case "open_time":
		row.OpenTime = value
	case "close_time":
		row.CloseTime = value
	case "type":
		row.Type = value
	case "deal_label":
		row.DealLabel = value
	case "notes":
		row.Notes = value
	case "last_verified":
		row.LastVerified = value
	}
}

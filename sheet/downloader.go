// sheet/downloader.go
package sheet

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/bellinghamhappyhours/bellingham-happy-hours/models"
)

// FetchSheet downloads the published sheet export and returns the raw body.
// The sheet is re-fetched on demand with caching disabled so edits show up
// immediately; there is no retry policy here.
func FetchSheet(url string, timeout time.Duration) ([]byte, error) {
	log.Printf("Sheet: fetching export from %s\n", url)

	client := http.Client{Timeout: timeout}

	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request for %s: %w", url, err)
	}
	req.Header.Set("Cache-Control", "no-cache")

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch sheet from %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to fetch sheet from %s: received status code %d", url, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet body from %s: %w", url, err)
	}
	return body, nil
}

// ParseRows decodes a fetched sheet body into raw rows, choosing the CSV or
// published-HTML parser by sniffing the content. Google Sheets serves CSV
// from the export endpoint and an HTML table from the "publish to web" page;
// both are accepted.
func ParseRows(body []byte) ([]models.RawSheetRow, error) {
	if looksLikeHTML(body) {
		return ParseHTMLTable(strings.NewReader(string(body)))
	}
	return ParseCSV(strings.NewReader(string(body)))
}

func looksLikeHTML(body []byte) bool {
	head := strings.TrimSpace(string(body[:min(len(body), 512)]))
	if strings.HasPrefix(head, "<") {
		return true
	}
	return strings.Contains(strings.ToLower(head), "<html")
}

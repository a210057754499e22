// handlers/admin_handler.go
package handlers

import (
	"fmt"
	"net/http"

	"github.com/bellinghamhappyhours/bellingham-happy-hours/services"
	"github.com/bellinghamhappyhours/bellingham-happy-hours/utils"
)

// RefreshSheetHandler forces a fresh fetch-and-normalize pass and reports the
// outcome. Since the sheet is re-fetched on every listing request anyway,
// this mostly exists to refresh the stored snapshot and to verify the sheet
// from the command line.
// Expects POST /api/admin/refresh
func RefreshSheetHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		respondWithError(w, http.StatusMethodNotAllowed, "Only POST method is allowed")
		return
	}

	result, err := services.LoadDeals()
	if err != nil {
		respondWithError(w, http.StatusBadGateway, fmt.Sprintf("Failed to refresh sheet: %v", err))
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Sheet refreshed successfully.",
		"meta":    result.Meta(),
	})
}

// FaviconHandler routes /favicon.ico to the icon set for the request host,
// so each deployment domain keeps its own branding.
func FaviconHandler(w http.ResponseWriter, r *http.Request) {
	assets := utils.BrandingForHost(r.Host)
	http.Redirect(w, r, assets.Favicon, http.StatusFound)
}

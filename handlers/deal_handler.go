// handlers/deal_handler.go
package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/bellinghamhappyhours/bellingham-happy-hours/config"
	"github.com/bellinghamhappyhours/bellingham-happy-hours/models"
	"github.com/bellinghamhappyhours/bellingham-happy-hours/services"
)

// Helper to respond with JSON
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		log.Printf("Handler ERROR: marshalling JSON response: %v", err)
		http.Error(w, `{"error":"Failed to marshal JSON response"}`, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}

// Helper to respond with an error
func respondWithError(w http.ResponseWriter, code int, message string) {
	log.Printf("Handler API Error %d: %s", code, message)
	respondWithJSON(w, code, map[string]string{"error": message})
}

// respondSourceFailure is the user-visible shape when the sheet itself could
// not be loaded: an empty row list plus an explanatory message. Filters that
// simply match nothing return 200 with empty rows instead.
func respondSourceFailure(w http.ResponseWriter, err error) {
	log.Printf("Handler ERROR: sheet source unavailable: %v", err)
	respondWithJSON(w, http.StatusBadGateway, models.DealsResponse{
		Rows:  []models.DealRecord{},
		Error: "The deals sheet could not be loaded right now. Please try again shortly.",
	})
}

// HappyHoursHandler returns every normalized deal record.
// Expects GET /api/happyhours
func HappyHoursHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondWithError(w, http.StatusMethodNotAllowed, "Only GET method is allowed")
		return
	}

	result, err := services.LoadDeals()
	if err != nil {
		respondSourceFailure(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, models.DealsResponse{
		Rows: result.Records,
		Meta: result.Meta(),
	})
}

// QueryDealsHandler returns the filtered, sorted subset described by the
// request body.
// Expects POST /api/deals/query with a models.DealQuery JSON body.
func QueryDealsHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		respondWithError(w, http.StatusMethodNotAllowed, "Only POST method is allowed")
		return
	}

	var query models.DealQuery
	if err := json.NewDecoder(r.Body).Decode(&query); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	defer r.Body.Close()

	result, err := services.LoadDeals()
	if err != nil {
		respondSourceFailure(w, err)
		return
	}

	now := time.Now().In(config.AppConfig.Site.Location)
	rows, err := services.QueryDeals(result.Records, query, now)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	respondWithJSON(w, http.StatusOK, models.DealsResponse{
		Rows: rows,
		Meta: result.Meta(),
	})
}

// FilterOptionsHandler returns the distinct cuisine and neighborhood values
// for populating filter dropdowns.
// Expects GET /api/filters
func FilterOptionsHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondWithError(w, http.StatusMethodNotAllowed, "Only GET method is allowed")
		return
	}

	result, err := services.LoadDeals()
	if err != nil {
		respondSourceFailure(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, models.FilterOptionsResponse{
		Cuisines:      services.CuisineOptions(result.Records),
		Neighborhoods: services.NeighborhoodOptions(result.Records),
	})
}

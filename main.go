// main.go
package main

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/bellinghamhappyhours/bellingham-happy-hours/config"
	"github.com/bellinghamhappyhours/bellingham-happy-hours/database"
	"github.com/bellinghamhappyhours/bellingham-happy-hours/handlers"
)

func main() {
	log.Println("Starting Happy Hours backend...")

	configPath := "config/config.yaml"
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		// Config file is optional; everything can come from the environment.
		configPath = ""
	}

	if err := config.LoadConfig(configPath); err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}
	log.Printf("Configuration loaded. Server port: %s, site title: %q",
		config.AppConfig.Server.Port, config.AppConfig.Site.Title)
	if config.AppConfig.Sheet.CSVURL == "" {
		log.Println("WARNING: sheet csv_url / SHEET_CSV_URL is not set; listing requests will fail.")
	}

	if config.AppConfig.Database.Enabled() {
		if err := database.InitDB(config.AppConfig.Database); err != nil {
			// The snapshot fallback is optional; keep serving live fetches.
			log.Printf("ERROR: database init failed, continuing without snapshot store: %v", err)
		} else {
			defer database.CloseDB()
		}
	} else {
		log.Println("Database not configured; sheet snapshot fallback disabled.")
	}

	http.HandleFunc("/api/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if database.Enabled() {
			if err := database.DB.Ping(); err != nil {
				http.Error(w, `{"status": "error", "message": "database connection error"}`, http.StatusInternalServerError)
				log.Printf("Health check failed: DB ping error: %v", err)
				return
			}
		}
		fmt.Fprintln(w, `{"status": "ok", "message": "happy hours backend is healthy"}`)
	})

	http.HandleFunc("/api/happyhours", handlers.HappyHoursHandler)
	http.HandleFunc("/api/deals/query", handlers.QueryDealsHandler)
	http.HandleFunc("/api/filters", handlers.FilterOptionsHandler)
	http.HandleFunc("/api/admin/refresh", handlers.RefreshSheetHandler)
	http.HandleFunc("/favicon.ico", handlers.FaviconHandler)

	serverAddr := ":" + config.AppConfig.Server.Port
	log.Printf("Server starting on http://localhost%s\n", serverAddr)
	if err := http.ListenAndServe(serverAddr, nil); err != nil {
		log.Fatalf("Error starting server: %v", err)
	}
}

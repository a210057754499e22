package services

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bellinghamhappyhours/bellingham-happy-hours/config"
)

const serviceTestCSV = `venue_name,menu_url,day_of_week,start_time,end_time
Spot,https://example.com/menu,Tuesday,16:00,18:00
No Link Here,,Tuesday,16:00,18:00
`

func pointSheetAt(t *testing.T, handler http.HandlerFunc) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	old := config.AppConfig
	t.Cleanup(func() { config.AppConfig = old })

	config.AppConfig.Sheet.CSVURL = server.URL
	config.AppConfig.Sheet.FetchTimeout = 5 * time.Second
}

func TestLoadDeals(t *testing.T) {
	pointSheetAt(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(serviceTestCSV))
	})

	result, err := LoadDeals()
	require.NoError(t, err)
	assert.Len(t, result.Records, 1)
	assert.Equal(t, 2, result.RowsRead)
	assert.Equal(t, 1, result.RowsRejected)
	assert.False(t, result.FromSnapshot)

	meta := result.Meta()
	assert.Equal(t, 1, meta.RowsAccepted)
	assert.Equal(t, 1, meta.RowsRejected)
}

func TestLoadDealsFetchFailureWithoutSnapshot(t *testing.T) {
	pointSheetAt(t, func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "down", http.StatusServiceUnavailable)
	})

	_, err := LoadDeals()
	assert.Error(t, err)
}

func TestLoadDealsUnparseableBody(t *testing.T) {
	pointSheetAt(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(""))
	})

	_, err := LoadDeals()
	assert.Error(t, err)
}

func TestLoadDealsNoURLConfigured(t *testing.T) {
	old := config.AppConfig
	t.Cleanup(func() { config.AppConfig = old })
	config.AppConfig.Sheet.CSVURL = ""

	_, err := LoadDeals()
	assert.Error(t, err)
}

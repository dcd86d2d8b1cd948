package monitor

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flarewatch/flarewatch/internal/testutil"
	"github.com/flarewatch/flarewatch/internal/validator"
)

func TestFetchSnapshot(t *testing.T) {
	snapshot := validator.Snapshot{
		Timestamp:       "2026-08-25T12:00:00Z",
		TotalValidators: 2,
		EligibleCount:   1,
		IneligibleCount: 1,
		Eligible: []validator.Validator{
			{ID: 7, Name: "Aurora Oracle"},
		},
		Ineligible: []validator.Validator{
			{ID: 19, Name: validator.UnknownName},
		},
	}
	body, err := json.Marshal(snapshot)
	require.NoError(t, err)

	var capturedPath string
	server := testutil.HTTPTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		capturedPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		w.Write(body)
	})

	client := NewAPIClient(server.URL)
	fetched, err := client.FetchSnapshot(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "/api/validators", capturedPath)
	assert.Equal(t, snapshot.Timestamp, fetched.Timestamp)
	require.Len(t, fetched.Eligible, 1)
	assert.Equal(t, 7, fetched.Eligible[0].ID)
}

func TestFetchSnapshot_ServerError(t *testing.T) {
	server := testutil.HTTPTestServer(t, testutil.MockHTTPResponse(http.StatusInternalServerError, `{"error":"failed to fetch validator data"}`))

	client := NewAPIClient(server.URL)
	snapshot, err := client.FetchSnapshot(context.Background())

	assert.Nil(t, snapshot)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "500")
}

func TestFetchSnapshot_MalformedBody(t *testing.T) {
	server := testutil.HTTPTestServer(t, testutil.MockHTTPResponse(http.StatusOK, "not json"))

	client := NewAPIClient(server.URL)
	snapshot, err := client.FetchSnapshot(context.Background())

	assert.Nil(t, snapshot)
	assert.Error(t, err)
}

func TestTriggerRefresh(t *testing.T) {
	var capturedMethod, capturedPath string
	server := testutil.HTTPTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		capturedMethod = r.Method
		capturedPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success":true,"message":"Cache refreshed successfully","timestamp":"2026-08-25T12:00:00Z"}`))
	})

	client := NewAPIClient(server.URL)
	err := client.TriggerRefresh(context.Background())

	require.NoError(t, err)
	assert.Equal(t, http.MethodPost, capturedMethod)
	assert.Equal(t, "/api/refresh", capturedPath)
}

func TestTriggerRefresh_ServerError(t *testing.T) {
	server := testutil.HTTPTestServer(t, testutil.MockHTTPResponse(http.StatusInternalServerError, `{"error":"failed to refresh cache"}`))

	client := NewAPIClient(server.URL)
	err := client.TriggerRefresh(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "500")
}

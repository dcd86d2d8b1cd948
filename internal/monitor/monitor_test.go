package monitor

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flarewatch/flarewatch/internal/testutil"
	"github.com/flarewatch/flarewatch/internal/validator"
)

func snapshotBody(t *testing.T) []byte {
	t.Helper()
	body, err := json.Marshal(validator.Snapshot{
		Timestamp:       "2026-08-25T12:00:00Z",
		TotalValidators: 1,
		EligibleCount:   1,
		Eligible: []validator.Validator{
			{ID: 7, Name: "Aurora Oracle"},
		},
		Ineligible: []validator.Validator{},
	})
	require.NoError(t, err)
	return body
}

func flarewatchStub(t *testing.T) string {
	t.Helper()
	body := snapshotBody(t)
	server := testutil.HTTPTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/validators":
			w.Header().Set("Content-Type", "application/json")
			w.Write(body)
		case "/metrics":
			w.Header().Set("Content-Type", "text/plain; version=0.0.4")
			w.Write([]byte(testutil.ValidMetricsResponse))
		case "/api/refresh":
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"success":true,"message":"Cache refreshed successfully","timestamp":"2026-08-25T12:00:00Z"}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})
	return server.URL
}

func TestMonitor_Update(t *testing.T) {
	m := NewMonitor(flarewatchStub(t), time.Minute)

	m.update(context.Background())

	latest := m.Latest()
	require.NoError(t, latest.Err)
	require.NotNil(t, latest.Snapshot)
	assert.Equal(t, 1, latest.Snapshot.TotalValidators)
	require.NotNil(t, latest.Stats)
	assert.Equal(t, float64(42), latest.Stats.CacheHits)
	assert.False(t, latest.FetchedAt.IsZero())
}

func TestMonitor_UpdatePublishesToChannel(t *testing.T) {
	m := NewMonitor(flarewatchStub(t), time.Minute)

	m.update(context.Background())

	select {
	case update := <-m.Updates():
		require.NoError(t, update.Err)
		assert.Equal(t, 1, update.Snapshot.TotalValidators)
	case <-time.After(time.Second):
		t.Fatal("no update published")
	}
}

func TestMonitor_UpdateRecordsFetchError(t *testing.T) {
	m := NewMonitor("http://127.0.0.1:1", time.Minute)

	m.update(context.Background())

	latest := m.Latest()
	assert.Error(t, latest.Err)
	assert.Nil(t, latest.Snapshot)
	// Stats are best-effort; a failed scrape leaves them nil.
	assert.Nil(t, latest.Stats)
}

func TestMonitor_ForceRefresh(t *testing.T) {
	m := NewMonitor(flarewatchStub(t), time.Minute)

	err := m.ForceRefresh(context.Background())

	require.NoError(t, err)
	latest := m.Latest()
	require.NoError(t, latest.Err)
	assert.Equal(t, 1, latest.Snapshot.TotalValidators)
}

func TestMonitor_ForceRefreshPropagatesError(t *testing.T) {
	m := NewMonitor("http://127.0.0.1:1", time.Minute)

	err := m.ForceRefresh(context.Background())

	assert.Error(t, err)
}

func TestMonitor_StartStopsOnCancel(t *testing.T) {
	m := NewMonitor(flarewatchStub(t), 10*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		m.Start(ctx)
		close(done)
	}()

	// Let at least one poll complete, then cancel.
	select {
	case <-m.Updates():
	case <-time.After(time.Second):
		t.Fatal("no initial update")
	}
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("monitor did not stop on cancel")
	}
}

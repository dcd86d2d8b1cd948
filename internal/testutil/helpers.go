package testutil

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

// HTTPTestServer creates a test HTTP server with custom handler
func HTTPTestServer(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return server
}

// MockHTTPResponse creates a mock HTTP handler that returns the given response
func MockHTTPResponse(statusCode int, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(statusCode)
		io.WriteString(w, body)
	}
}

// MockHTTPEndpoints creates a mock HTTP handler with different responses for different paths
func MockHTTPEndpoints(endpoints map[string]struct {
	Status int
	Body   string
}) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if endpoint, ok := endpoints[r.URL.Path]; ok {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(endpoint.Status)
			io.WriteString(w, endpoint.Body)
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}
}

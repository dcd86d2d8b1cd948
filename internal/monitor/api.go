package monitor

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/flarewatch/flarewatch/internal/common"
	"github.com/flarewatch/flarewatch/internal/validator"
)

// APIClient reads snapshots from a running flarewatch server.
type APIClient struct {
	endpoint   string
	httpClient *http.Client
}

func NewAPIClient(endpoint string) *APIClient {
	return &APIClient{
		endpoint:   strings.TrimRight(endpoint, "/"),
		httpClient: common.NewHTTPClient(10 * time.Second),
	}
}

// FetchSnapshot retrieves the full classified snapshot.
func (c *APIClient) FetchSnapshot(ctx context.Context) (*validator.Snapshot, error) {
	url := c.endpoint + "/api/validators"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d from %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	var snapshot validator.Snapshot
	if err := json.Unmarshal(body, &snapshot); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return &snapshot, nil
}

// TriggerRefresh asks the server to invalidate its cache and refetch.
func (c *APIClient) TriggerRefresh(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint+"/api/refresh", nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("http request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("HTTP %d from refresh endpoint", resp.StatusCode)
	}
	return nil
}

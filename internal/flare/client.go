// Copyright © 2026 the flarewatch authors.
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package flare

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/flarewatch/flarewatch/internal/common"
	"github.com/flarewatch/flarewatch/internal/logger"
)

var (
	// ErrFetch marks transport-level upstream failures: network errors,
	// timeouts and non-200 responses.
	ErrFetch = errors.New("upstream fetch failed")
	// ErrDecode marks responses that cannot be parsed into the raw entity shape.
	ErrDecode = errors.New("upstream response decode failed")
)

// Client fetches raw entity records from the explorer API.
type Client interface {
	FetchEntities(ctx context.Context) ([]Entity, error)
	GetEndpoint() string
}

type flareClient struct {
	baseURL    string
	pageLimit  int
	httpClient *http.Client
}

func NewClient(baseURL string, timeout time.Duration, pageLimit int) Client {
	return &flareClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		pageLimit:  pageLimit,
		httpClient: common.NewHTTPClient(timeout),
	}
}

func (c *flareClient) GetEndpoint() string {
	return c.baseURL
}

// FetchEntities requests the first page of entity records in a single call.
func (c *flareClient) FetchEntities(ctx context.Context) ([]Entity, error) {
	url := fmt.Sprintf("%s/entity?limit=%d&offset=0", c.baseURL, c.pageLimit)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: create request: %v", ErrFetch, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetch, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: HTTP %d from %s", ErrFetch, resp.StatusCode, c.baseURL)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read response: %v", ErrFetch, err)
	}

	var list EntityList
	if err := json.Unmarshal(body, &list); err != nil {
		logger.Debug("undecodable entity response: %s", string(body))
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	return list.Results, nil
}

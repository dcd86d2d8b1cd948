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

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestConfig_GetListenAddress(t *testing.T) {
	tests := []struct {
		name     string
		config   Config
		expected string
	}{
		{
			name:     "empty address returns default",
			config:   Config{},
			expected: ":3000",
		},
		{
			name: "configured address is used",
			config: Config{
				ListenAddress: "127.0.0.1:8080",
			},
			expected: "127.0.0.1:8080",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.config.GetListenAddress())
		})
	}
}

func TestConfig_GetUpstreamURL(t *testing.T) {
	tests := []struct {
		name     string
		config   Config
		expected string
	}{
		{
			name:     "empty URL returns explorer default",
			config:   Config{},
			expected: DefaultUpstreamURL,
		},
		{
			name: "trailing slash is trimmed",
			config: Config{
				UpstreamURL: "http://localhost:9000/api/v0/",
			},
			expected: "http://localhost:9000/api/v0",
		},
		{
			name: "configured URL is used",
			config: Config{
				UpstreamURL: "http://localhost:9000/api/v0",
			},
			expected: "http://localhost:9000/api/v0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.config.GetUpstreamURL())
		})
	}
}

func TestConfig_GetFetchTimeout(t *testing.T) {
	tests := []struct {
		name     string
		config   Config
		expected time.Duration
	}{
		{
			name:     "empty timeout returns default",
			config:   Config{},
			expected: 10 * time.Second,
		},
		{
			name: "valid duration string",
			config: Config{
				FetchTimeout: "5s",
			},
			expected: 5 * time.Second,
		},
		{
			name: "invalid duration string returns default",
			config: Config{
				FetchTimeout: "invalid",
			},
			expected: 10 * time.Second,
		},
		{
			name: "negative duration returns default",
			config: Config{
				FetchTimeout: "-3s",
			},
			expected: 10 * time.Second,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.config.GetFetchTimeout())
		})
	}
}

func TestConfig_GetCacheTTL(t *testing.T) {
	tests := []struct {
		name     string
		config   Config
		expected time.Duration
	}{
		{
			name:     "empty TTL returns five minutes",
			config:   Config{},
			expected: 5 * time.Minute,
		},
		{
			name: "valid duration with minutes",
			config: Config{
				CacheTTL: "2m30s",
			},
			expected: 2*time.Minute + 30*time.Second,
		},
		{
			name: "invalid duration string returns default",
			config: Config{
				CacheTTL: "soon",
			},
			expected: 5 * time.Minute,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.config.GetCacheTTL())
		})
	}
}

func TestConfig_GetPageLimit(t *testing.T) {
	tests := []struct {
		name     string
		config   Config
		expected int
	}{
		{
			name:     "zero returns default",
			config:   Config{},
			expected: 200,
		},
		{
			name: "negative returns default",
			config: Config{
				PageLimit: -5,
			},
			expected: 200,
		},
		{
			name: "value above explorer maximum is capped",
			config: Config{
				PageLimit: 500,
			},
			expected: 200,
		},
		{
			name: "value within range is used",
			config: Config{
				PageLimit: 50,
			},
			expected: 50,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.config.GetPageLimit())
		})
	}
}

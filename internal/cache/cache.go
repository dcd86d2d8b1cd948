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

package cache

import (
	"context"
	"sync"
	"time"

	"github.com/flarewatch/flarewatch/internal/observability"
	"github.com/flarewatch/flarewatch/internal/validator"
)

// DefaultTTL is the snapshot freshness window, measured from creation time.
const DefaultTTL = 5 * time.Minute

// Refresher produces a fresh snapshot. The cache invokes it on a miss or
// after the TTL elapses.
type Refresher func(ctx context.Context) (*validator.Snapshot, error)

// SnapshotCache holds at most one snapshot plus its creation time. Returned
// snapshots are shared read-only values; a refresh replaces the slot
// atomically rather than mutating in place.
//
// Concurrent callers racing on a stale or empty slot may each invoke the
// refresher; the last write wins. The lock only serializes access to the
// slot itself, never the upstream call, so fresh reads are never blocked
// behind a slow fetch.
type SnapshotCache struct {
	refresh Refresher
	ttl     time.Duration

	mu        sync.RWMutex
	snapshot  *validator.Snapshot
	createdAt time.Time
}

func New(refresh Refresher, ttl time.Duration) *SnapshotCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &SnapshotCache{
		refresh: refresh,
		ttl:     ttl,
	}
}

// Get returns the cached snapshot when it is younger than the TTL, otherwise
// refreshes. On refresh failure the prior state is left untouched and the
// refresher's error is propagated to the caller.
func (c *SnapshotCache) Get(ctx context.Context) (*validator.Snapshot, error) {
	c.mu.RLock()
	snapshot, createdAt := c.snapshot, c.createdAt
	c.mu.RUnlock()

	if snapshot != nil && time.Since(createdAt) < c.ttl {
		observability.RecordCacheHit()
		return snapshot, nil
	}
	observability.RecordCacheMiss()

	fresh, err := c.refresh(ctx)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.snapshot = fresh
	c.createdAt = time.Now()
	c.mu.Unlock()

	return fresh, nil
}

// Invalidate empties the slot unconditionally. It does not fetch; the next
// Get will.
func (c *SnapshotCache) Invalidate() {
	c.mu.Lock()
	c.snapshot = nil
	c.createdAt = time.Time{}
	c.mu.Unlock()
	observability.RecordCacheInvalidation()
}

// TTL returns the configured freshness window.
func (c *SnapshotCache) TTL() time.Duration {
	return c.ttl
}

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

package validator

import (
	"context"
	"time"

	"github.com/flarewatch/flarewatch/internal/flare"
	"github.com/flarewatch/flarewatch/internal/logger"
	"github.com/flarewatch/flarewatch/internal/observability"
)

// Aggregator performs one full refresh cycle: fetch the raw entity page,
// normalize every record, partition and rank, and assemble a timestamped
// Snapshot.
type Aggregator struct {
	source flare.Client
}

func NewAggregator(source flare.Client) *Aggregator {
	return &Aggregator{source: source}
}

// Refresh builds a fresh Snapshot. On upstream failure no Snapshot is
// produced and the error is returned unchanged (flare.ErrFetch or
// flare.ErrDecode in the chain).
func (a *Aggregator) Refresh(ctx context.Context) (*Snapshot, error) {
	start := time.Now()

	entities, err := a.source.FetchEntities(ctx)
	if err != nil {
		observability.RecordRefresh("error", time.Since(start).Seconds())
		logger.Error("refresh failed: %v", err)
		return nil, err
	}

	validators := make([]Validator, 0, len(entities))
	for _, e := range entities {
		validators = append(validators, Normalize(e))
	}

	eligible, ineligible := Partition(validators)

	snapshot := &Snapshot{
		Timestamp:       time.Now().UTC().Format(time.RFC3339),
		TotalValidators: len(validators),
		EligibleCount:   len(eligible),
		IneligibleCount: len(ineligible),
		Eligible:        eligible,
		Ineligible:      ineligible,
	}

	observability.RecordRefresh("success", time.Since(start).Seconds())
	observability.UpdateSnapshotCounts(len(eligible), len(ineligible))
	logger.Info("refreshed snapshot: %d validators, %d eligible", len(validators), len(eligible))

	return snapshot, nil
}

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

package testutil

// Explorer API response fixtures
var (
	// ValidEntityListResponse holds four representative entities: one fully
	// eligible, one failing only the pass count, one without any conditions
	// sub-record, and one eligible entity with a lower combined rate and no
	// display name.
	ValidEntityListResponse = `{
		"results": [
			{
				"id": 7,
				"display_name": "Aurora Oracle",
				"denormalizedentity": {
					"node_ids": ["NodeID-7xhQ9xKtM4JdZq2VxWyyNqrrGm1BBBdR1", "NodeID-backup-7"],
					"public_key": "0x02aabbcc",
					"rewards_signed": 41,
					"uptime_signed": 40
				},
				"entityminimalconditions": {
					"ftso_scaling": true,
					"ftso_fast_updates": true,
					"fdc": true,
					"staking": true,
					"passes_held": 3,
					"eligible_for_reward": true
				},
				"rewards": {
					"reward_rate_wnat": 0.01,
					"reward_rate_mirror": 0.02,
					"reward_rate_pure": 0.0
				},
				"providersuccessrate": {
					"primary": 98,
					"secondary": 95,
					"availability": 99,
					"active": true
				},
				"denormalizedsigningpolicy": {
					"delegation_address": "0xD7de703D9BBC4602242D87d347C5402442eDaDa9"
				}
			},
			{
				"id": 12,
				"display_name": "Borealis Node",
				"entityminimalconditions": {
					"ftso_scaling": true,
					"ftso_fast_updates": true,
					"fdc": true,
					"staking": true,
					"passes_held": 2,
					"eligible_for_reward": true
				},
				"rewards": {
					"reward_rate_wnat": 0.05,
					"reward_rate_mirror": 0.01,
					"reward_rate_pure": 0.01
				}
			},
			{
				"id": 19,
				"display_name": "Cinder Provider"
			},
			{
				"id": 23,
				"entityminimalconditions": {
					"ftso_scaling": true,
					"ftso_fast_updates": true,
					"fdc": true,
					"staking": true,
					"passes_held": 3,
					"eligible_for_reward": true
				},
				"rewards": {
					"reward_rate_wnat": 0.005,
					"reward_rate_mirror": 0.005
				}
			}
		]
	}`

	EmptyEntityListResponse = `{"results": []}`

	// MalformedEntityListResponse has the wrong type for results.
	MalformedEntityListResponse = `{"results": "not-a-list"}`
)

// Service metrics fixture in Prometheus text exposition format
var ValidMetricsResponse = `# HELP flarewatch_cache_hits_total Total number of snapshot requests served from the cache
# TYPE flarewatch_cache_hits_total counter
flarewatch_cache_hits_total 42
# HELP flarewatch_cache_misses_total Total number of snapshot requests that required a refresh
# TYPE flarewatch_cache_misses_total counter
flarewatch_cache_misses_total 8
# HELP flarewatch_cache_invalidations_total Total number of explicit cache invalidations
# TYPE flarewatch_cache_invalidations_total counter
flarewatch_cache_invalidations_total 2
# HELP flarewatch_refresh_runs_total Total number of refresh cycles by status
# TYPE flarewatch_refresh_runs_total counter
flarewatch_refresh_runs_total{status="success"} 7
flarewatch_refresh_runs_total{status="error"} 1
# HELP flarewatch_refresh_duration_seconds Refresh cycle duration in seconds, upstream fetch included
# TYPE flarewatch_refresh_duration_seconds histogram
flarewatch_refresh_duration_seconds_bucket{le="1"} 6
flarewatch_refresh_duration_seconds_bucket{le="+Inf"} 8
flarewatch_refresh_duration_seconds_sum 4.0
flarewatch_refresh_duration_seconds_count 8
# HELP flarewatch_snapshot_validators Number of validators in the current snapshot by partition
# TYPE flarewatch_snapshot_validators gauge
flarewatch_snapshot_validators{partition="eligible"} 2
flarewatch_snapshot_validators{partition="ineligible"} 2
`

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

// UnknownName is the placeholder for validators without a display name.
const UnknownName = "Unknown"

// Validator is the normalized view of one upstream entity. Instances are
// value objects: built once per refresh and never mutated.
type Validator struct {
	ID                int            `json:"id"`
	Name              string         `json:"name"`
	NodeID            *string        `json:"node_id"`
	DelegationAddress *string        `json:"delegation_address"`
	Conditions        *Conditions    `json:"conditions"`
	ProviderStats     *ProviderStats `json:"provider_stats"`
	RewardRates       *RewardRates   `json:"reward_rates"`
}

// Conditions are the six eligibility-relevant criteria. A validator without
// Conditions is always ineligible.
type Conditions struct {
	FTSOAnchorFeeds       bool `json:"ftso_anchor_feeds"`
	FTSOBlockLatencyFeeds bool `json:"ftso_block_latency_feeds"`
	FDC                   bool `json:"fdc"`
	Staking               bool `json:"staking"`
	Passes                int  `json:"passes"`
	EligibleForReward     bool `json:"eligible_for_reward"`
}

// ProviderStats are informational only; they affect neither eligibility nor
// ranking. Availability is normalized to the unit interval.
type ProviderStats struct {
	Primary      *int     `json:"primary"`
	Secondary    *int     `json:"secondary"`
	Availability *float64 `json:"availability"`
	Active       *bool    `json:"active"`
}

// RewardRates holds the three named rate components. Combined is their exact
// sum and the sole ranking key.
type RewardRates struct {
	WNat     float64 `json:"wnat"`
	Mirror   float64 `json:"mirror"`
	Pure     float64 `json:"pure"`
	Combined float64 `json:"combined"`
}

// CombinedRate returns the ranking key, 0.0 when reward rates are absent.
func (v Validator) CombinedRate() float64 {
	if v.RewardRates == nil {
		return 0.0
	}
	return v.RewardRates.Combined
}

// Snapshot is one immutable, fully-classified view of all validators as of
// one refresh. Eligible is sorted by combined reward rate descending;
// Ineligible preserves upstream iteration order.
type Snapshot struct {
	Timestamp       string      `json:"timestamp"`
	TotalValidators int         `json:"total_validators"`
	EligibleCount   int         `json:"eligible_count"`
	IneligibleCount int         `json:"ineligible_count"`
	Eligible        []Validator `json:"eligible_nodes"`
	Ineligible      []Validator `json:"ineligible_nodes"`
}

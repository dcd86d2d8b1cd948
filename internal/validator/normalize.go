package validator

import (
	"github.com/flarewatch/flarewatch/internal/flare"
)

// Normalize maps one raw entity record into a fully-defaulted Validator.
// Every raw field may be absent; absence degrades to the zero value or a nil
// sub-record. This function never fails.
func Normalize(e flare.Entity) Validator {
	v := Validator{
		ID:   e.ID,
		Name: UnknownName,
	}

	if e.DisplayName != nil && *e.DisplayName != "" {
		v.Name = *e.DisplayName
	}

	if e.DenormalizedEntity != nil && len(e.DenormalizedEntity.NodeIDs) > 0 {
		nodeID := e.DenormalizedEntity.NodeIDs[0]
		v.NodeID = &nodeID
	}

	if e.SigningPolicy != nil {
		v.DelegationAddress = e.SigningPolicy.DelegationAddress
	}

	if c := e.MinimalConditions; c != nil {
		v.Conditions = &Conditions{
			FTSOAnchorFeeds:       boolValue(c.FTSOScaling),
			FTSOBlockLatencyFeeds: boolValue(c.FTSOFastUpdates),
			FDC:                   boolValue(c.FDC),
			Staking:               boolValue(c.Staking),
			Passes:                intValue(c.PassesHeld),
			EligibleForReward:     boolValue(c.EligibleForReward),
		}
	}

	if r := e.Rewards; r != nil {
		wnat := floatValue(r.RewardRateWNat)
		mirror := floatValue(r.RewardRateMirror)
		pure := floatValue(r.RewardRatePure)
		v.RewardRates = &RewardRates{
			WNat:     wnat,
			Mirror:   mirror,
			Pure:     pure,
			Combined: wnat + mirror + pure,
		}
	}

	if p := e.ProviderSuccessRate; p != nil {
		stats := &ProviderStats{
			Primary:   p.Primary,
			Secondary: p.Secondary,
			Active:    p.Active,
		}
		if p.Availability != nil {
			availability := float64(*p.Availability) / 100.0
			stats.Availability = &availability
		}
		v.ProviderStats = stats
	}

	return v
}

func boolValue(p *bool) bool {
	if p == nil {
		return false
	}
	return *p
}

func intValue(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}

func floatValue(p *float64) float64 {
	if p == nil {
		return 0.0
	}
	return *p
}

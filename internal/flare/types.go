package flare

// Raw entity records as returned by the Flare Systems Explorer. Every field,
// including nested sub-records, may be absent; absence is handled during
// normalization, never treated as an error.

type EntityList struct {
	Results []Entity `json:"results"`
}

type Entity struct {
	ID                  int                  `json:"id"`
	DisplayName         *string              `json:"display_name"`
	DenormalizedEntity  *DenormalizedEntity  `json:"denormalizedentity"`
	MinimalConditions   *MinimalConditions   `json:"entityminimalconditions"`
	Rewards             *Rewards             `json:"rewards"`
	ProviderSuccessRate *ProviderSuccessRate `json:"providersuccessrate"`
	SigningPolicy       *SigningPolicy       `json:"denormalizedsigningpolicy"`
}

type DenormalizedEntity struct {
	NodeIDs                 []string `json:"node_ids"`
	PublicKey               *string  `json:"public_key"`
	SubmitSignaturesAddress *string  `json:"submit_signatures_address"`
	SubmitAddress           *string  `json:"submit_address"`
	SigningPolicyAddress    *string  `json:"signing_policy_address"`
	DelegationAddress       *string  `json:"delegation_address"`
	RewardsSigned           *int     `json:"rewards_signed"`
	UptimeSigned            *int     `json:"uptime_signed"`
}

type MinimalConditions struct {
	FTSOScaling       *bool `json:"ftso_scaling"`
	FTSOFastUpdates   *bool `json:"ftso_fast_updates"`
	FDC               *bool `json:"fdc"`
	Staking           *bool `json:"staking"`
	PassesHeld        *int  `json:"passes_held"`
	EligibleForReward *bool `json:"eligible_for_reward"`
}

type Rewards struct {
	RewardRateWNat   *float64 `json:"reward_rate_wnat"`
	RewardRateMirror *float64 `json:"reward_rate_mirror"`
	RewardRatePure   *float64 `json:"reward_rate_pure"`
}

type ProviderSuccessRate struct {
	Primary      *int  `json:"primary"`
	Secondary    *int  `json:"secondary"`
	Availability *int  `json:"availability"` // raw percentage, 0-100
	Active       *bool `json:"active"`
}

type SigningPolicy struct {
	DelegationAddress *string `json:"delegation_address"`
}

package validator

import (
	"math"
	"sort"
)

// RequiredPasses is the exact pass count a validator must hold. The upstream
// reward epoch awards three passes; holding fewer or more is ineligible.
const RequiredPasses = 3

// Eligible reports whether a validator meets every reward condition. The
// predicate is a strict conjunction: a validator lacking Conditions, or
// failing any single clause, is ineligible.
func Eligible(v Validator) bool {
	c := v.Conditions
	if c == nil {
		return false
	}
	return c.EligibleForReward &&
		c.FTSOAnchorFeeds &&
		c.FTSOBlockLatencyFeeds &&
		c.FDC &&
		c.Staking &&
		c.Passes == RequiredPasses
}

// Partition splits validators into eligible and ineligible lists. The
// eligible list is sorted by combined reward rate descending; the ineligible
// list preserves input order.
func Partition(validators []Validator) (eligible, ineligible []Validator) {
	eligible = make([]Validator, 0, len(validators))
	ineligible = make([]Validator, 0, len(validators))

	for _, v := range validators {
		if Eligible(v) {
			eligible = append(eligible, v)
		} else {
			ineligible = append(ineligible, v)
		}
	}

	sortByCombinedRate(eligible)
	return eligible, ineligible
}

// sortByCombinedRate orders validators by combined reward rate descending.
// The sort is stable, so equal rates keep input order.
func sortByCombinedRate(validators []Validator) {
	sort.SliceStable(validators, func(i, j int) bool {
		return rateLess(validators[j].CombinedRate(), validators[i].CombinedRate())
	})
}

// rateLess is a total order over float64 with NaN treated as least, so NaN
// rates sink to the tail of the descending list instead of corrupting the sort.
func rateLess(a, b float64) bool {
	if math.IsNaN(a) {
		return !math.IsNaN(b)
	}
	if math.IsNaN(b) {
		return false
	}
	return a < b
}

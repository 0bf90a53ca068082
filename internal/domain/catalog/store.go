package catalog

import (
	"fmt"
	"strings"
)

// PriceTier buckets stores by their overall price level and doubles as the
// request-side filter for which stores are eligible candidates.
type PriceTier string

const (
	// TierUnconstrained places no restriction on the candidate store set.
	TierUnconstrained PriceTier = ""
	TierBudget        PriceTier = "budget"
	TierMidRange      PriceTier = "mid-range"
	TierPremium       PriceTier = "premium"
)

// ParseTier normalizes a user-supplied tier string. The empty string means
// unconstrained.
func ParseTier(s string) (PriceTier, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return TierUnconstrained, nil
	case "budget":
		return TierBudget, nil
	case "mid-range", "midrange", "mid":
		return TierMidRange, nil
	case "premium":
		return TierPremium, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownTier, s)
	}
}

// Store describes one grocery chain and its pricing profile. Multiplier is
// applied to an ingredient's base price; a category override, when present,
// replaces the general multiplier for ingredients in that category.
// SeasonalAdjustment applies on top for seasonal ingredients only.
type Store struct {
	Name               string
	Tier               PriceTier
	Multiplier         float64
	CategoryOverrides  map[Category]float64
	SeasonalAdjustment float64
	Description        string
}

// eligibleFor reports whether the store may be considered under the given
// request tier. Budget shoppers skip premium stores, premium shoppers skip
// the deep-discount chains, mid-range (and unconstrained) sees everything.
func (s Store) eligibleFor(tier PriceTier) bool {
	switch tier {
	case TierBudget:
		return s.Tier != TierPremium
	case TierPremium:
		return s.Tier != TierBudget
	default:
		return true
	}
}

package shopping

import (
	"fmt"
	"math"
	"math/bits"

	"github.com/grocerly/v1/internal/domain/catalog"
)

// Scoring constants. Utilization is rewarded inside a comfort band that peaks
// just below the budget, leaving headroom for price drift at the register.
const (
	utilBandLow  = 0.70
	utilBandPeak = 0.875
	utilBandHigh = 0.95

	underUtilizationFloor = 0.50
	overTightCeiling      = 0.98

	// Exhaustive subset enumeration is exponential in the candidate count.
	// Six built-in stores is nowhere near this, the cap guards future tables.
	maxCandidateStores = 16

	scoreEpsilon = 1e-9
)

// ScoringWeights tune the effective-cost function. Variety is a per-extra-
// store discount, Utilization scales the comfort-band bonus, the two
// penalties discourage leaving most of the budget unused or cutting it
// uncomfortably close.
type ScoringWeights struct {
	Variety                 float64
	Utilization             float64
	UnderUtilizationPenalty float64
	OverTightPenalty        float64
}

// DefaultScoringWeights are the tuned production values.
func DefaultScoringWeights() ScoringWeights {
	return ScoringWeights{
		Variety:                 0.50,
		Utilization:             1.00,
		UnderUtilizationPenalty: 0.75,
		OverTightPenalty:        0.25,
	}
}

// Request describes one optimization run. A zero Budget means unconstrained:
// no feasibility cut and no budget-related score terms.
type Request struct {
	Lines     []catalog.RecipeLine
	Budget    float64
	MaxStores int
	Tier      catalog.PriceTier
}

// Optimizer enumerates store subsets and returns the allocation with the
// best effective cost. Stateless and safe for concurrent use.
type Optimizer struct {
	catalog *catalog.Catalog
	pricing *PricingEngine
	weights ScoringWeights
}

// NewOptimizer builds an optimizer over a validated catalog.
func NewOptimizer(c *catalog.Catalog, weights ScoringWeights) *Optimizer {
	return &Optimizer{
		catalog: c,
		pricing: NewPricingEngine(c),
		weights: weights,
	}
}

// Optimize assigns every line to the cheapest store within the winning
// subset. Subsets of size 1 through MaxStores over the tier-eligible stores
// are scored exhaustively; a subset only counts as using a store if at least
// one line actually lands there. Returns *InfeasibleError when the budget
// cannot cover even the cheapest combination.
func (o *Optimizer) Optimize(req Request) (Allocation, error) {
	candidates := o.catalog.EligibleStores(req.Tier)
	if len(candidates) == 0 {
		return Allocation{}, fmt.Errorf("%w: %q", ErrNoCandidateStores, req.Tier)
	}
	if len(candidates) > maxCandidateStores {
		return Allocation{}, fmt.Errorf("too many candidate stores: %d exceeds limit %d", len(candidates), maxCandidateStores)
	}

	maxStores := req.MaxStores
	if maxStores < 1 {
		maxStores = 1
	}
	if maxStores > len(candidates) {
		maxStores = len(candidates)
	}

	if len(req.Lines) == 0 {
		return Allocation{Budget: req.Budget}, nil
	}

	// Price every line at every candidate once up front.
	unitPrices := make([][]float64, len(candidates))
	lineTotals := make([][]float64, len(candidates))
	for si, store := range candidates {
		unitPrices[si] = make([]float64, len(req.Lines))
		lineTotals[si] = make([]float64, len(req.Lines))
		for li, line := range req.Lines {
			unit, err := o.pricing.UnitPrice(store, line.Ingredient)
			if err != nil {
				return Allocation{}, err
			}
			unitPrices[si][li] = unit
			lineTotals[si][li] = round2(unit * line.Quantity)
		}
	}

	var (
		found         bool
		bestScore     float64
		bestTotal     float64
		bestUsed      int
		bestAssign    []int
		cheapestTotal = math.Inf(1)
	)
	assign := make([]int, len(req.Lines))

	for mask := 1; mask < 1<<len(candidates); mask++ {
		if bits.OnesCount(uint(mask)) > maxStores {
			continue
		}

		var total float64
		for li := range req.Lines {
			best := -1
			for si := range candidates {
				if mask&(1<<si) == 0 {
					continue
				}
				if best < 0 || lineTotals[si][li] < lineTotals[best][li]-scoreEpsilon {
					best = si
				}
			}
			assign[li] = best
			total += lineTotals[best][li]
		}
		total = round2(total)

		if total < cheapestTotal {
			cheapestTotal = total
		}
		if req.Budget > 0 && total > req.Budget+scoreEpsilon {
			continue
		}

		var usedMask uint
		for _, si := range assign {
			usedMask |= 1 << si
		}
		used := bits.OnesCount(usedMask)

		score := o.score(total, req.Budget, used)
		if found && !betterThan(score, used, total, bestScore, bestUsed, bestTotal) {
			continue
		}
		found = true
		bestScore, bestTotal, bestUsed = score, total, used
		bestAssign = append(bestAssign[:0], assign...)
	}

	if !found {
		return Allocation{}, &InfeasibleError{Budget: req.Budget, CheapestTotal: cheapestTotal}
	}

	return o.buildAllocation(req, candidates, unitPrices, lineTotals, bestAssign, bestTotal), nil
}

// score is the effective cost: raw total minus the variety and utilization
// bonuses, plus the out-of-band penalties. Lower is better.
func (o *Optimizer) score(total, budget float64, used int) float64 {
	s := total
	if used > 1 {
		s -= float64(used-1) * o.weights.Variety
	}
	if budget > 0 {
		u := total / budget
		s -= o.weights.Utilization * utilizationBonus(u)
		switch {
		case u < underUtilizationFloor:
			s += o.weights.UnderUtilizationPenalty
		case u > overTightCeiling:
			s += o.weights.OverTightPenalty
		}
	}
	return s
}

// utilizationBonus ramps linearly from 0 at the band edges to 1 at the peak.
func utilizationBonus(u float64) float64 {
	switch {
	case u < utilBandLow || u > utilBandHigh:
		return 0
	case u <= utilBandPeak:
		return (u - utilBandLow) / (utilBandPeak - utilBandLow)
	default:
		return (utilBandHigh - u) / (utilBandHigh - utilBandPeak)
	}
}

// betterThan applies the deterministic tie-break chain: lower score, then
// fewer stores used, then lower raw cost. Remaining ties keep the earlier
// subset in enumeration order.
func betterThan(score float64, used int, total float64, bestScore float64, bestUsed int, bestTotal float64) bool {
	if score < bestScore-scoreEpsilon {
		return true
	}
	if score > bestScore+scoreEpsilon {
		return false
	}
	if used != bestUsed {
		return used < bestUsed
	}
	return total < bestTotal-scoreEpsilon
}

func (o *Optimizer) buildAllocation(req Request, candidates []catalog.Store, unitPrices, lineTotals [][]float64, assign []int, total float64) Allocation {
	alloc := Allocation{
		Lines:     make([]PricedLine, len(req.Lines)),
		TotalCost: total,
		Budget:    req.Budget,
	}
	usedMask := uint(0)
	for li, line := range req.Lines {
		si := assign[li]
		usedMask |= 1 << si
		alloc.Lines[li] = PricedLine{
			Ingredient: line.Ingredient,
			Quantity:   line.Quantity,
			Unit:       line.Unit,
			Store:      candidates[si].Name,
			UnitPrice:  unitPrices[si][li],
			LineTotal:  lineTotals[si][li],
		}
	}
	for si, store := range candidates {
		if usedMask&(1<<si) != 0 {
			alloc.StoresUsed = append(alloc.StoresUsed, store.Name)
		}
	}
	if req.Budget > 0 {
		alloc.BudgetUtilization = total / req.Budget
	}

	// Savings are measured against the most expensive eligible single store,
	// what a shopper would pay defaulting to one convenient stop.
	var baseline float64
	for si := range candidates {
		var sum float64
		for li := range req.Lines {
			sum += lineTotals[si][li]
		}
		if sum = round2(sum); sum > baseline {
			baseline = sum
		}
	}
	alloc.BaselineCost = baseline
	alloc.Savings = round2(baseline - total)
	return alloc
}

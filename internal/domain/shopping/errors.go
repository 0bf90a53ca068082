package shopping

import (
	"errors"
	"fmt"
)

// ErrNoCandidateStores means the tier filter left nothing to optimize over.
// With the built-in store table this cannot happen, but custom tables could
// trigger it.
var ErrNoCandidateStores = errors.New("no candidate stores for tier")

// InfeasibleError reports that no store combination can cover the shopping
// list within the budget. CheapestTotal is the best achievable total so the
// caller can tell the user how far off the budget is.
type InfeasibleError struct {
	Budget        float64
	CheapestTotal float64
}

func (e *InfeasibleError) Error() string {
	return fmt.Sprintf("budget $%.2f cannot cover the list, cheapest option is $%.2f (short $%.2f)",
		e.Budget, e.CheapestTotal, e.Shortfall())
}

// Shortfall is how much more budget would be needed for the cheapest option.
func (e *InfeasibleError) Shortfall() float64 {
	return round2(e.CheapestTotal - e.Budget)
}

package shopping

// PricedLine is one shopping-list entry after optimization: the recipe line
// plus the store it was assigned to and what it costs there.
type PricedLine struct {
	Ingredient string  `json:"ingredient"`
	Quantity   float64 `json:"quantity"`
	Unit       string  `json:"unit"`
	Store      string  `json:"store"`
	UnitPrice  float64 `json:"unit_price"`
	LineTotal  float64 `json:"line_total"`
}

// Allocation is the optimizer's answer: every line assigned to a store,
// with cost and budget accounting rolled up. StoresUsed lists only stores
// that received at least one line, in canonical catalog order.
type Allocation struct {
	Lines             []PricedLine `json:"lines"`
	StoresUsed        []string     `json:"stores_used"`
	TotalCost         float64      `json:"total_cost"`
	Budget            float64      `json:"budget,omitempty"`
	BudgetUtilization float64      `json:"budget_utilization,omitempty"`
	BaselineCost      float64      `json:"baseline_cost"`
	Savings           float64      `json:"savings"`
}

// LinesByStore groups the allocation's lines per store, keyed by store name.
// Line order within a group follows the original recipe order.
func (a Allocation) LinesByStore() map[string][]PricedLine {
	out := make(map[string][]PricedLine, len(a.StoresUsed))
	for _, line := range a.Lines {
		out[line.Store] = append(out[line.Store], line)
	}
	return out
}

// StoreSubtotal sums the line totals assigned to one store.
func (a Allocation) StoreSubtotal(store string) float64 {
	var sum float64
	for _, line := range a.Lines {
		if line.Store == store {
			sum += line.LineTotal
		}
	}
	return round2(sum)
}

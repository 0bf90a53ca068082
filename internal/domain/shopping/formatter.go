package shopping

import (
	"fmt"
	"strings"
)

// FormatList renders an allocation as the plain-text shopping list shown to
// the user, grouped by store with per-store subtotals and a cost summary.
func FormatList(foodItem string, alloc Allocation) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Shopping list for %s\n", foodItem)

	if len(alloc.Lines) == 0 {
		b.WriteString("\nNothing to buy.\n")
		return b.String()
	}

	byStore := alloc.LinesByStore()
	for _, store := range alloc.StoresUsed {
		fmt.Fprintf(&b, "\n%s\n", store)
		for _, line := range byStore[store] {
			qty := strings.TrimSpace(fmt.Sprintf("%g %s", line.Quantity, line.Unit))
			fmt.Fprintf(&b, "  %-22s %-16s $%.2f\n", line.Ingredient, qty, line.LineTotal)
		}
		fmt.Fprintf(&b, "  Subtotal: $%.2f\n", alloc.StoreSubtotal(store))
	}

	b.WriteString("\n")
	fmt.Fprintf(&b, "Total: $%.2f across %s\n", alloc.TotalCost, pluralStores(len(alloc.StoresUsed)))
	if alloc.Budget > 0 {
		fmt.Fprintf(&b, "Budget: $%.2f (%.1f%% used)\n", alloc.Budget, alloc.BudgetUtilization*100)
	}
	if alloc.Savings > 0 {
		fmt.Fprintf(&b, "Savings vs single-store shopping: $%.2f\n", alloc.Savings)
	}
	return b.String()
}

func pluralStores(n int) string {
	if n == 1 {
		return "1 store"
	}
	return fmt.Sprintf("%d stores", n)
}

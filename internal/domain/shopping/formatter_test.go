package shopping

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grocerly/v1/internal/domain/catalog"
)

func TestFormatListGroupsByStore(t *testing.T) {
	opt, c := newTestOptimizer(t)

	alloc, err := opt.Optimize(Request{
		Lines:     guacamoleLines(t, c),
		Budget:    12,
		MaxStores: 2,
		Tier:      catalog.TierBudget,
	})
	require.NoError(t, err)

	out := FormatList("guacamole", alloc)

	assert.Contains(t, out, "Shopping list for guacamole")
	assert.Contains(t, out, "Kroger\n")
	assert.Contains(t, out, "Walmart\n")
	assert.Contains(t, out, "avocado")
	assert.Contains(t, out, "$5.10")
	assert.Contains(t, out, "Subtotal: $7.55")
	assert.Contains(t, out, "Subtotal: $1.69")
	assert.Contains(t, out, "Total: $9.24 across 2 stores")
	assert.Contains(t, out, "Budget: $12.00 (77.0% used)")
	assert.Contains(t, out, "Savings vs single-store shopping: $3.53")
}

func TestFormatListSingleStore(t *testing.T) {
	opt, c := newTestOptimizer(t)

	alloc, err := opt.Optimize(Request{
		Lines:     guacamoleLines(t, c),
		MaxStores: 1,
		Tier:      catalog.TierBudget,
	})
	require.NoError(t, err)

	out := FormatList("guacamole", alloc)
	assert.Contains(t, out, "Total: $8.59 across 1 store\n")
	assert.NotContains(t, out, "Budget:")
}

func TestFormatListEmpty(t *testing.T) {
	out := FormatList("air soup", Allocation{})
	assert.Contains(t, out, "Nothing to buy.")
}

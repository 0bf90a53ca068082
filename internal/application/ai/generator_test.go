package ai

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestGenerateIngredientsParsesArray(t *testing.T) {
	client := &stubAI{replies: []string{
		`[{"name":"Chicken Breast","quantity":1,"unit":"lb"},{"name":"rice","quantity":1,"unit":"5lb bag"}]`,
	}}
	gen := NewIngredientGenerator(client, zap.NewNop())

	lines, err := gen.GenerateIngredients(context.Background(), "teriyaki bowl")
	require.NoError(t, err)
	require.Len(t, lines, 2)
	assert.Equal(t, "chicken breast", lines[0].Name)
	assert.Equal(t, 1.0, lines[0].Quantity)
	assert.Equal(t, "5lb bag", lines[1].Unit)
}

func TestGenerateIngredientsStripsCodeFence(t *testing.T) {
	client := &stubAI{replies: []string{
		"```json\n[{\"name\":\"salt\",\"quantity\":1,\"unit\":\"26oz\"},{\"name\":\"  \",\"quantity\":1}]\n```",
	}}
	gen := NewIngredientGenerator(client, zap.NewNop())

	lines, err := gen.GenerateIngredients(context.Background(), "something salty")
	require.NoError(t, err)

	// Blank names are dropped during normalization.
	require.Len(t, lines, 1)
	assert.Equal(t, "salt", lines[0].Name)
}

func TestGenerateIngredientsRejectsProse(t *testing.T) {
	client := &stubAI{replies: []string{"Sure! Here are some ingredients you could use..."}}
	gen := NewIngredientGenerator(client, zap.NewNop())

	_, err := gen.GenerateIngredients(context.Background(), "mystery dish")
	assert.Error(t, err)
}

func TestGenerateIngredientsPropagatesClientError(t *testing.T) {
	client := &stubAI{errs: []error{errors.New("connection refused")}}
	gen := NewIngredientGenerator(client, zap.NewNop())

	_, err := gen.GenerateIngredients(context.Background(), "anything")
	assert.ErrorContains(t, err, "connection refused")
}

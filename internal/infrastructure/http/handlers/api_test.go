package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	appshopping "github.com/grocerly/v1/internal/application/shopping"
	"github.com/grocerly/v1/internal/domain/catalog"
	domainshopping "github.com/grocerly/v1/internal/domain/shopping"
	"github.com/grocerly/v1/internal/ports/inbound"
)

type fixedChat struct{}

func (fixedChat) Chat(ctx context.Context, message string) (inbound.ChatResult, error) {
	return inbound.ChatResult{Reply: "Aldi has the best prices."}, nil
}

func newTestHandlers(t *testing.T) *APIHandlers {
	t.Helper()
	c, err := catalog.New()
	require.NoError(t, err)
	optimizer := domainshopping.NewOptimizer(c, domainshopping.DefaultScoringWeights())
	svc := appshopping.NewService(c, optimizer, nil, 3, nil, zap.NewNop())
	return NewAPIHandlers(svc, fixedChat{}, "1.0.0", zap.NewNop())
}

func doJSON(t *testing.T, handler http.HandlerFunc, method, target string, body interface{}) (*httptest.ResponseRecorder, APIResponse) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, target, &buf)
	rec := httptest.NewRecorder()
	handler(rec, req)

	var resp APIResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return rec, resp
}

func TestShopSuccess(t *testing.T) {
	h := newTestHandlers(t)

	rec, resp := doJSON(t, h.Shop, http.MethodPost, "/api/v1/shop", ShopRequest{
		FoodItem:  "guacamole",
		Budget:    12,
		MaxStores: 2,
		PriceTier: "budget",
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, resp.Success)

	data, err := json.Marshal(resp.Data)
	require.NoError(t, err)
	var result inbound.ShoppingListResult
	require.NoError(t, json.Unmarshal(data, &result))

	assert.InDelta(t, 9.24, result.Allocation.TotalCost, 1e-9)
	assert.Equal(t, []string{"Kroger", "Walmart"}, result.Allocation.StoresUsed)
	assert.Contains(t, result.FormattedAs, "Total: $9.24")
}

func TestShopInfeasibleBudgetReturns422(t *testing.T) {
	h := newTestHandlers(t)

	rec, resp := doJSON(t, h.Shop, http.MethodPost, "/api/v1/shop", ShopRequest{
		FoodItem:  "guacamole",
		Budget:    5,
		MaxStores: 2,
		PriceTier: "budget",
	})

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.False(t, resp.Success)

	details, ok := resp.Data.(map[string]interface{})
	require.True(t, ok)
	assert.InDelta(t, 3.59, details["shortfall"].(float64), 1e-9)
	assert.InDelta(t, 8.59, details["cheapest_total"].(float64), 1e-9)
}

func TestShopUnknownRecipeReturns404(t *testing.T) {
	h := newTestHandlers(t)

	rec, resp := doJSON(t, h.Shop, http.MethodPost, "/api/v1/shop", ShopRequest{
		FoodItem: "quantum casserole",
	})

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, resp.Error, "quantum casserole")
}

func TestShopValidation(t *testing.T) {
	h := newTestHandlers(t)

	// Missing food item
	rec, _ := doJSON(t, h.Shop, http.MethodPost, "/api/v1/shop", ShopRequest{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// Unknown tier is rejected before reaching the service
	rec, _ = doJSON(t, h.Shop, http.MethodPost, "/api/v1/shop", ShopRequest{
		FoodItem:  "guacamole",
		PriceTier: "luxury",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// Malformed JSON
	req := httptest.NewRequest(http.MethodPost, "/api/v1/shop", bytes.NewBufferString("{nope"))
	w := httptest.NewRecorder()
	h.Shop(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestChat(t *testing.T) {
	h := newTestHandlers(t)

	rec, resp := doJSON(t, h.Chat, http.MethodPost, "/api/v1/chat", ChatRequest{Message: "where should I shop?"})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, resp.Success)

	data := resp.Data.(map[string]interface{})
	assert.Equal(t, "Aldi has the best prices.", data["reply"])
}

func TestChatValidation(t *testing.T) {
	h := newTestHandlers(t)

	rec, _ := doJSON(t, h.Chat, http.MethodPost, "/api/v1/chat", ChatRequest{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListRecipesAndStores(t *testing.T) {
	h := newTestHandlers(t)

	rec, resp := doJSON(t, h.ListRecipes, http.MethodGet, "/api/v1/recipes", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	groups := resp.Data.(map[string]interface{})
	assert.Contains(t, groups, "Mexican")

	rec, resp = doJSON(t, h.ListStores, http.MethodGet, "/api/v1/stores", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	stores := resp.Data.(map[string]interface{})
	assert.Len(t, stores, 6)
}

func TestHealthCheck(t *testing.T) {
	h := newTestHandlers(t)

	rec, resp := doJSON(t, h.HealthCheck, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, resp.Success)
	data := resp.Data.(map[string]interface{})
	assert.Equal(t, "healthy", data["status"])
	assert.Equal(t, "1.0.0", data["version"])
}

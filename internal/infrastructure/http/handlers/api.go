// Package handlers provides HTTP handlers for the REST API
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/grocerly/v1/internal/domain/catalog"
	"github.com/grocerly/v1/internal/domain/shopping"
	"github.com/grocerly/v1/internal/ports/inbound"
)

// APIHandlers handles REST API requests
type APIHandlers struct {
	shoppingService inbound.ShoppingService
	chatService     inbound.ChatService
	validate        *validator.Validate
	version         string
	logger          *zap.Logger
}

// NewAPIHandlers creates a new API handlers instance
func NewAPIHandlers(
	shoppingService inbound.ShoppingService,
	chatService inbound.ChatService,
	version string,
	logger *zap.Logger,
) *APIHandlers {
	return &APIHandlers{
		shoppingService: shoppingService,
		chatService:     chatService,
		validate:        validator.New(),
		version:         version,
		logger:          logger.Named("api"),
	}
}

// APIResponse represents a standard API response
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
	Message string      `json:"message,omitempty"`
}

// ShopRequest is the body for POST /api/v1/shop. A missing or zero budget
// means unconstrained; max_stores defaults server-side.
type ShopRequest struct {
	FoodItem  string  `json:"food_item" validate:"required,min=2,max=100"`
	Budget    float64 `json:"budget" validate:"gte=0"`
	MaxStores int     `json:"max_stores" validate:"gte=0,lte=6"`
	PriceTier string  `json:"price_tier" validate:"omitempty,oneof=budget mid-range midrange mid premium"`
}

// ChatRequest is the body for POST /api/v1/chat
type ChatRequest struct {
	Message string `json:"message" validate:"required,min=1,max=2000"`
}

// Shop handles POST /api/v1/shop
func (h *APIHandlers) Shop(w http.ResponseWriter, r *http.Request) {
	var req ShopRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.shoppingService.GenerateShoppingList(r.Context(), inbound.GenerateListCommand{
		FoodItem:  req.FoodItem,
		Budget:    req.Budget,
		MaxStores: req.MaxStores,
		PriceTier: req.PriceTier,
	})
	if err != nil {
		h.writeShopError(w, req, err)
		return
	}

	h.writeJSON(w, http.StatusOK, APIResponse{
		Success: true,
		Data:    result,
		Message: "Shopping list generated successfully",
	})
}

// writeShopError maps domain errors to HTTP status codes
func (h *APIHandlers) writeShopError(w http.ResponseWriter, req ShopRequest, err error) {
	var infeasible *shopping.InfeasibleError
	switch {
	case errors.As(err, &infeasible):
		h.writeJSON(w, http.StatusUnprocessableEntity, APIResponse{
			Success: false,
			Error:   infeasible.Error(),
			Data: map[string]interface{}{
				"budget":         infeasible.Budget,
				"cheapest_total": infeasible.CheapestTotal,
				"shortfall":      infeasible.Shortfall(),
			},
		})
	case errors.Is(err, catalog.ErrRecipeNotFound):
		h.writeError(w, http.StatusNotFound, "no recipe found for "+req.FoodItem)
	case errors.Is(err, catalog.ErrUnknownTier):
		h.writeError(w, http.StatusBadRequest, err.Error())
	default:
		h.logger.Error("Shopping list generation failed",
			zap.String("food_item", req.FoodItem),
			zap.Error(err))
		h.writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

// Chat handles POST /api/v1/chat
func (h *APIHandlers) Chat(w http.ResponseWriter, r *http.Request) {
	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.chatService.Chat(r.Context(), req.Message)
	if err != nil {
		h.logger.Error("Chat failed", zap.Error(err))
		h.writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	h.writeJSON(w, http.StatusOK, APIResponse{Success: true, Data: result})
}

// ListRecipes handles GET /api/v1/recipes
func (h *APIHandlers) ListRecipes(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, APIResponse{
		Success: true,
		Data:    h.shoppingService.Recipes(r.Context()),
		Message: "Recipes retrieved successfully",
	})
}

// ListStores handles GET /api/v1/stores
func (h *APIHandlers) ListStores(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, APIResponse{
		Success: true,
		Data:    h.shoppingService.Stores(r.Context()),
		Message: "Stores retrieved successfully",
	})
}

// HealthCheck handles GET /health
func (h *APIHandlers) HealthCheck(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, APIResponse{
		Success: true,
		Data: map[string]interface{}{
			"status":    "healthy",
			"timestamp": time.Now().Unix(),
			"version":   h.version,
		},
		Message: "Service is healthy",
	})
}

// writeJSON writes a JSON response
func (h *APIHandlers) writeJSON(w http.ResponseWriter, status int, response APIResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		h.logger.Error("Failed to encode response", zap.Error(err))
	}
}

// writeError writes a JSON error response
func (h *APIHandlers) writeError(w http.ResponseWriter, status int, message string) {
	h.writeJSON(w, status, APIResponse{Success: false, Error: message})
}

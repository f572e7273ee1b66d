package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"souled-store/internal/middleware"
	"souled-store/internal/model"
	"souled-store/internal/service"

	"github.com/rs/zerolog"
)

// CartHandler handles cart HTTP requests.
type CartHandler struct {
	service  service.CartService
	sessions service.SessionService
	dev      bool
	logger   zerolog.Logger
}

// NewCartHandler creates a new cart handler.
func NewCartHandler(service service.CartService, sessions service.SessionService, dev bool, logger zerolog.Logger) *CartHandler {
	return &CartHandler{
		service:  service,
		sessions: sessions,
		dev:      dev,
		logger:   logger.With().Str("handler", "cart").Logger(),
	}
}

// resolveUser maps the request's session token to a user id.
func (h *CartHandler) resolveUser(w http.ResponseWriter, r *http.Request) (int64, bool) {
	userID, err := h.sessions.Resolve(r.Context(), middleware.SessionToken(r.Context()))
	if err != nil {
		writeDomainError(w, err, "Failed to resolve session", h.dev, h.logger)
		return 0, false
	}
	return userID, true
}

// cartItemPayload is the response shape for mutated cart rows.
func cartItemPayload(item *model.CartItem) map[string]any {
	return map[string]any{
		"cartItem": map[string]any{
			"id":        item.ID,
			"productId": item.ProductID,
			"quantity":  item.Quantity,
		},
	}
}

// Get handles GET /api/cart requests.
func (h *CartHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.resolveUser(w, r)
	if !ok {
		return
	}

	cart, err := h.service.Get(r.Context(), userID)
	if err != nil {
		writeDomainError(w, err, "Failed to fetch cart items", h.dev, h.logger)
		return
	}

	writeSuccess(w, http.StatusOK, "", cart)
}

// Add handles POST /api/cart requests.
func (h *CartHandler) Add(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.resolveUser(w, r)
	if !ok {
		return
	}

	var req model.AddCartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", h.logger)
		return
	}

	item, err := h.service.Add(r.Context(), userID, &req)
	if err != nil {
		writeDomainError(w, err, "Failed to add item to cart", h.dev, h.logger)
		return
	}

	writeSuccess(w, http.StatusCreated, "Item added to cart successfully", cartItemPayload(item))
}

// Update handles PUT /api/cart/{productId} requests. A quantity of zero
// removes the item.
func (h *CartHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.resolveUser(w, r)
	if !ok {
		return
	}

	productID, err := strconv.ParseInt(r.PathValue("productId"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid product ID", h.logger)
		return
	}

	var req model.UpdateCartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", h.logger)
		return
	}
	if err := model.Validate(&req); err != nil {
		writeDomainError(w, err, "Failed to update cart item", h.dev, h.logger)
		return
	}

	item, err := h.service.UpdateQuantity(r.Context(), userID, productID, *req.Quantity)
	if err != nil {
		writeDomainError(w, err, "Failed to update cart item", h.dev, h.logger)
		return
	}

	if item == nil {
		writeSuccess(w, http.StatusOK, "Item removed from cart", nil)
		return
	}

	writeSuccess(w, http.StatusOK, "Cart item updated successfully", cartItemPayload(item))
}

// Remove handles DELETE /api/cart/{productId} requests.
func (h *CartHandler) Remove(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.resolveUser(w, r)
	if !ok {
		return
	}

	productID, err := strconv.ParseInt(r.PathValue("productId"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid product ID", h.logger)
		return
	}

	if err := h.service.Remove(r.Context(), userID, productID); err != nil {
		writeDomainError(w, err, "Failed to remove cart item", h.dev, h.logger)
		return
	}

	writeSuccess(w, http.StatusOK, "Item removed from cart successfully", nil)
}

// Clear handles DELETE /api/cart requests.
func (h *CartHandler) Clear(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.resolveUser(w, r)
	if !ok {
		return
	}

	if err := h.service.Clear(r.Context(), userID); err != nil {
		writeDomainError(w, err, "Failed to clear cart", h.dev, h.logger)
		return
	}

	writeSuccess(w, http.StatusOK, "Cart cleared successfully", nil)
}

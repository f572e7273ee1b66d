package handler

import (
	"net/http"
	"strconv"

	"souled-store/internal/middleware"
	"souled-store/internal/service"

	"github.com/rs/zerolog"
)

// OrderHandler handles order HTTP requests.
type OrderHandler struct {
	service  service.OrderService
	sessions service.SessionService
	dev      bool
	logger   zerolog.Logger
}

// NewOrderHandler creates a new order handler.
func NewOrderHandler(service service.OrderService, sessions service.SessionService, dev bool, logger zerolog.Logger) *OrderHandler {
	return &OrderHandler{
		service:  service,
		sessions: sessions,
		dev:      dev,
		logger:   logger.With().Str("handler", "order").Logger(),
	}
}

func (h *OrderHandler) resolveUser(w http.ResponseWriter, r *http.Request) (int64, bool) {
	userID, err := h.sessions.Resolve(r.Context(), middleware.SessionToken(r.Context()))
	if err != nil {
		writeDomainError(w, err, "Failed to resolve session", h.dev, h.logger)
		return 0, false
	}
	return userID, true
}

// Checkout handles POST /api/orders/checkout requests.
func (h *OrderHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.resolveUser(w, r)
	if !ok {
		return
	}

	order, err := h.service.Checkout(r.Context(), userID, middleware.SessionToken(r.Context()))
	if err != nil {
		writeDomainError(w, err, "Failed to process checkout", h.dev, h.logger)
		return
	}

	writeSuccess(w, http.StatusCreated, "Order placed successfully!", map[string]any{"order": order})
}

// List handles GET /api/orders requests.
func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.resolveUser(w, r)
	if !ok {
		return
	}

	orders, err := h.service.List(r.Context(), userID)
	if err != nil {
		writeDomainError(w, err, "Failed to fetch orders", h.dev, h.logger)
		return
	}

	writeSuccess(w, http.StatusOK, "", map[string]any{"orders": orders})
}

// GetByID handles GET /api/orders/{id} requests.
func (h *OrderHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.resolveUser(w, r)
	if !ok {
		return
	}

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid order ID", h.logger)
		return
	}

	order, err := h.service.GetByID(r.Context(), id, userID)
	if err != nil {
		writeDomainError(w, err, "Failed to fetch order", h.dev, h.logger)
		return
	}

	writeSuccess(w, http.StatusOK, "", map[string]any{"order": order})
}

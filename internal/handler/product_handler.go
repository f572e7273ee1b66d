package handler

import (
	"net/http"
	"strconv"

	"souled-store/internal/model"
	"souled-store/internal/service"

	"github.com/rs/zerolog"
)

// ProductHandler handles catalogue HTTP requests.
type ProductHandler struct {
	service service.ProductService
	dev     bool
	logger  zerolog.Logger
}

// NewProductHandler creates a new product handler.
func NewProductHandler(service service.ProductService, dev bool, logger zerolog.Logger) *ProductHandler {
	return &ProductHandler{
		service: service,
		dev:     dev,
		logger:  logger.With().Str("handler", "product").Logger(),
	}
}

// parseProductQuery reads the listing parameters, applying the documented
// defaults for anything absent.
func parseProductQuery(r *http.Request) (model.ProductQuery, error) {
	query := model.DefaultProductQuery()
	params := r.URL.Query()

	if category := params.Get("category"); category != "" {
		query.Category = category
	}
	if sortBy := params.Get("sortBy"); sortBy != "" {
		query.SortBy = sortBy
	}
	query.Search = params.Get("search")

	if pageStr := params.Get("page"); pageStr != "" {
		page, err := strconv.Atoi(pageStr)
		if err != nil {
			return query, &model.ValidationError{Details: []model.FieldError{
				{Field: "page", Message: "page must be an integer"},
			}}
		}
		query.Page = page
	}

	if limitStr := params.Get("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil {
			return query, &model.ValidationError{Details: []model.FieldError{
				{Field: "limit", Message: "limit must be an integer"},
			}}
		}
		query.Limit = limit
	}

	return query, nil
}

// List handles GET /api/products requests.
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	query, err := parseProductQuery(r)
	if err != nil {
		writeDomainError(w, err, "Failed to fetch products", h.dev, h.logger)
		return
	}

	page, err := h.service.List(r.Context(), query)
	if err != nil {
		writeDomainError(w, err, "Failed to fetch products", h.dev, h.logger)
		return
	}

	writeSuccess(w, http.StatusOK, "", page)
}

// GetFeatured handles GET /api/products/featured requests.
func (h *ProductHandler) GetFeatured(w http.ResponseWriter, r *http.Request) {
	products, err := h.service.GetFeatured(r.Context())
	if err != nil {
		writeDomainError(w, err, "Failed to fetch featured products", h.dev, h.logger)
		return
	}

	writeSuccess(w, http.StatusOK, "", map[string]any{"products": products})
}

// GetCategories handles GET /api/products/categories requests.
func (h *ProductHandler) GetCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.GetCategories(r.Context())
	if err != nil {
		writeDomainError(w, err, "Failed to fetch categories", h.dev, h.logger)
		return
	}

	writeSuccess(w, http.StatusOK, "", map[string]any{"categories": categories})
}

// GetByID handles GET /api/products/{id} requests.
func (h *ProductHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid product ID", h.logger)
		return
	}

	product, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		writeDomainError(w, err, "Failed to fetch product", h.dev, h.logger)
		return
	}

	writeSuccess(w, http.StatusOK, "", map[string]any{"product": product})
}

// Search handles GET /api/products/search/{query} requests.
func (h *ProductHandler) Search(w http.ResponseWriter, r *http.Request) {
	term := r.PathValue("query")
	category := r.URL.Query().Get("category")
	sortBy := r.URL.Query().Get("sortBy")

	result, err := h.service.Search(r.Context(), term, category, sortBy)
	if err != nil {
		writeDomainError(w, err, "Failed to search products", h.dev, h.logger)
		return
	}

	writeSuccess(w, http.StatusOK, "", result)
}

package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"souled-store/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) Response {
	t.Helper()
	var resp Response
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp
}

func TestProductHandler_List(t *testing.T) {
	logger := zerolog.Nop()

	page := &model.ProductPage{
		Products: []model.Product{{ID: 1, Name: "Tee", Price: 599}},
		Pagination: model.Pagination{
			Page: 1, Limit: 20, Total: 1, TotalPages: 1,
		},
	}

	svc := new(MockProductService)
	svc.On("List", mock.Anything, model.DefaultProductQuery()).Return(page, nil)

	h := NewProductHandler(svc, false, logger)

	req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
	rec := httptest.NewRecorder()
	h.List(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	resp := decodeResponse(t, rec)
	assert.Equal(t, "success", resp.Status)
	svc.AssertExpectations(t)
}

func TestProductHandler_List_QueryParams(t *testing.T) {
	logger := zerolog.Nop()

	expected := model.ProductQuery{
		Category: "clothing",
		SortBy:   model.SortPriceLow,
		Search:   "tee",
		Page:     2,
		Limit:    10,
	}

	svc := new(MockProductService)
	svc.On("List", mock.Anything, expected).
		Return(&model.ProductPage{Products: []model.Product{}}, nil)

	h := NewProductHandler(svc, false, logger)

	req := httptest.NewRequest(http.MethodGet,
		"/api/products?category=clothing&sortBy=price-low&search=tee&page=2&limit=10", nil)
	rec := httptest.NewRecorder()
	h.List(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	svc.AssertExpectations(t)
}

func TestProductHandler_List_BadPageParam(t *testing.T) {
	logger := zerolog.Nop()

	svc := new(MockProductService)
	h := NewProductHandler(svc, false, logger)

	req := httptest.NewRequest(http.MethodGet, "/api/products?page=abc", nil)
	rec := httptest.NewRecorder()
	h.List(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decodeResponse(t, rec)
	assert.Equal(t, "error", resp.Status)
	assert.Equal(t, "Validation failed", resp.Message)
	require.NotEmpty(t, resp.Details)
	assert.Equal(t, "page", resp.Details[0].Field)
	svc.AssertNotCalled(t, "List")
}

func TestProductHandler_GetByID(t *testing.T) {
	logger := zerolog.Nop()

	svc := new(MockProductService)
	svc.On("GetByID", mock.Anything, int64(1)).
		Return(&model.Product{ID: 1, Name: "Tee"}, nil)

	h := NewProductHandler(svc, false, logger)

	req := httptest.NewRequest(http.MethodGet, "/api/products/1", nil)
	req.SetPathValue("id", "1")
	rec := httptest.NewRecorder()
	h.GetByID(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	resp := decodeResponse(t, rec)
	data := resp.Data.(map[string]any)
	product := data["product"].(map[string]any)
	assert.Equal(t, "Tee", product["name"])
}

func TestProductHandler_GetByID_InvalidID(t *testing.T) {
	logger := zerolog.Nop()

	svc := new(MockProductService)
	h := NewProductHandler(svc, false, logger)

	req := httptest.NewRequest(http.MethodGet, "/api/products/abc", nil)
	req.SetPathValue("id", "abc")
	rec := httptest.NewRecorder()
	h.GetByID(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decodeResponse(t, rec)
	assert.Equal(t, "Invalid product ID", resp.Message)
	svc.AssertNotCalled(t, "GetByID")
}

func TestProductHandler_GetByID_NotFound(t *testing.T) {
	logger := zerolog.Nop()

	svc := new(MockProductService)
	svc.On("GetByID", mock.Anything, int64(99)).Return(nil, model.ErrProductNotFound)

	h := NewProductHandler(svc, false, logger)

	req := httptest.NewRequest(http.MethodGet, "/api/products/99", nil)
	req.SetPathValue("id", "99")
	rec := httptest.NewRecorder()
	h.GetByID(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	resp := decodeResponse(t, rec)
	assert.Equal(t, "error", resp.Status)
}

func TestProductHandler_GetFeatured(t *testing.T) {
	logger := zerolog.Nop()

	svc := new(MockProductService)
	svc.On("GetFeatured", mock.Anything).
		Return([]model.Product{{ID: 1, Name: "Tee", Featured: true}}, nil)

	h := NewProductHandler(svc, false, logger)

	req := httptest.NewRequest(http.MethodGet, "/api/products/featured", nil)
	rec := httptest.NewRecorder()
	h.GetFeatured(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	resp := decodeResponse(t, rec)
	data := resp.Data.(map[string]any)
	assert.Len(t, data["products"], 1)
}

func TestProductHandler_GetCategories(t *testing.T) {
	logger := zerolog.Nop()

	svc := new(MockProductService)
	svc.On("GetCategories", mock.Anything).
		Return([]model.Category{{Name: "All", Value: "all"}, {Name: "Clothing", Value: "clothing"}}, nil)

	h := NewProductHandler(svc, false, logger)

	req := httptest.NewRequest(http.MethodGet, "/api/products/categories", nil)
	rec := httptest.NewRecorder()
	h.GetCategories(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	resp := decodeResponse(t, rec)
	data := resp.Data.(map[string]any)
	categories := data["categories"].([]any)
	require.Len(t, categories, 2)
	first := categories[0].(map[string]any)
	assert.Equal(t, "All", first["name"])
}

func TestProductHandler_Search(t *testing.T) {
	logger := zerolog.Nop()

	svc := new(MockProductService)
	svc.On("Search", mock.Anything, "tee", "clothing", "rating").
		Return(&model.SearchResult{
			Products:     []model.Product{{ID: 1, Name: "Graphic Tee"}},
			SearchQuery:  "tee",
			TotalResults: 1,
		}, nil)

	h := NewProductHandler(svc, false, logger)

	req := httptest.NewRequest(http.MethodGet, "/api/products/search/tee?category=clothing&sortBy=rating", nil)
	req.SetPathValue("query", "tee")
	rec := httptest.NewRecorder()
	h.Search(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	svc.AssertExpectations(t)
}

func TestProductHandler_InternalErrorDetail(t *testing.T) {
	logger := zerolog.Nop()

	tests := []struct {
		name          string
		dev           bool
		expectedError string
	}{
		{name: "Development surfaces detail", dev: true, expectedError: "connection reset"},
		{name: "Production hides detail", dev: false, expectedError: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockProductService)
			svc.On("GetFeatured", mock.Anything).Return(nil, errors.New("connection reset"))

			h := NewProductHandler(svc, tt.dev, logger)

			req := httptest.NewRequest(http.MethodGet, "/api/products/featured", nil)
			rec := httptest.NewRecorder()
			h.GetFeatured(rec, req)

			assert.Equal(t, http.StatusInternalServerError, rec.Code)
			resp := decodeResponse(t, rec)
			assert.Equal(t, "Failed to fetch featured products", resp.Message)
			assert.Equal(t, tt.expectedError, resp.Error)
		})
	}
}

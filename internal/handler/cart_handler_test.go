package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"souled-store/internal/middleware"
	"souled-store/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// serveWithSession runs a handler behind the Session middleware with a
// known session token, matching how the router wires requests.
func serveWithSession(h http.HandlerFunc, req *http.Request) *httptest.ResponseRecorder {
	req.Header.Set(middleware.SessionHeader, "session-token")
	rec := httptest.NewRecorder()
	middleware.Session(h).ServeHTTP(rec, req)
	return rec
}

func newCartHandler(svc *MockCartService, sessions *MockSessionService) *CartHandler {
	return NewCartHandler(svc, sessions, false, zerolog.Nop())
}

func sessionResolvingTo(userID int64) *MockSessionService {
	sessions := new(MockSessionService)
	sessions.On("Resolve", mock.Anything, "session-token").Return(userID, nil)
	return sessions
}

func TestCartHandler_Get(t *testing.T) {
	cart := &model.Cart{
		Items: []model.CartLine{
			{CartItemID: 10, ProductID: 1, Name: "Tee", Price: 599, InStock: true, Quantity: 2},
		},
		Summary: model.CartSummary{Subtotal: 1198, TaxAmount: 216, Total: 1414, ItemCount: 2},
	}

	svc := new(MockCartService)
	svc.On("Get", mock.Anything, int64(7)).Return(cart, nil)

	h := newCartHandler(svc, sessionResolvingTo(7))

	req := httptest.NewRequest(http.MethodGet, "/api/cart", nil)
	rec := serveWithSession(h.Get, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	resp := decodeResponse(t, rec)
	assert.Equal(t, "success", resp.Status)

	data := resp.Data.(map[string]any)
	summary := data["summary"].(map[string]any)
	assert.Equal(t, float64(1414), summary["total"])
	svc.AssertExpectations(t)
}

func TestCartHandler_Add(t *testing.T) {
	svc := new(MockCartService)
	svc.On("Add", mock.Anything, int64(7), &model.AddCartItemRequest{ProductID: 1, Quantity: 2}).
		Return(&model.CartItem{ID: 10, UserID: 7, ProductID: 1, Quantity: 2}, nil)

	h := newCartHandler(svc, sessionResolvingTo(7))

	req := httptest.NewRequest(http.MethodPost, "/api/cart",
		strings.NewReader(`{"productId": 1, "quantity": 2}`))
	rec := serveWithSession(h.Add, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	resp := decodeResponse(t, rec)
	assert.Equal(t, "Item added to cart successfully", resp.Message)

	data := resp.Data.(map[string]any)
	cartItem := data["cartItem"].(map[string]any)
	assert.Equal(t, float64(1), cartItem["productId"])
	assert.Equal(t, float64(2), cartItem["quantity"])
	svc.AssertExpectations(t)
}

func TestCartHandler_Add_MalformedBody(t *testing.T) {
	svc := new(MockCartService)
	h := newCartHandler(svc, sessionResolvingTo(7))

	req := httptest.NewRequest(http.MethodPost, "/api/cart", strings.NewReader(`{not json`))
	rec := serveWithSession(h.Add, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decodeResponse(t, rec)
	assert.Equal(t, "Invalid request body", resp.Message)
	svc.AssertNotCalled(t, "Add")
}

func TestCartHandler_Add_ValidationDetails(t *testing.T) {
	svc := new(MockCartService)
	svc.On("Add", mock.Anything, int64(7), mock.Anything).
		Return(nil, &model.ValidationError{Details: []model.FieldError{
			{Field: "quantity", Message: "quantity must be at least 1"},
		}})

	h := newCartHandler(svc, sessionResolvingTo(7))

	req := httptest.NewRequest(http.MethodPost, "/api/cart",
		strings.NewReader(`{"productId": 1, "quantity": 0}`))
	rec := serveWithSession(h.Add, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decodeResponse(t, rec)
	assert.Equal(t, "Validation failed", resp.Message)
	require.Len(t, resp.Details, 1)
	assert.Equal(t, "quantity", resp.Details[0].Field)
}

func TestCartHandler_Add_OutOfStock(t *testing.T) {
	svc := new(MockCartService)
	svc.On("Add", mock.Anything, int64(7), mock.Anything).Return(nil, model.ErrOutOfStock)

	h := newCartHandler(svc, sessionResolvingTo(7))

	req := httptest.NewRequest(http.MethodPost, "/api/cart",
		strings.NewReader(`{"productId": 2, "quantity": 1}`))
	rec := serveWithSession(h.Add, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decodeResponse(t, rec)
	assert.Equal(t, "error", resp.Status)
}

func TestCartHandler_Update(t *testing.T) {
	svc := new(MockCartService)
	svc.On("UpdateQuantity", mock.Anything, int64(7), int64(1), 5).
		Return(&model.CartItem{ID: 10, UserID: 7, ProductID: 1, Quantity: 5}, nil)

	h := newCartHandler(svc, sessionResolvingTo(7))

	req := httptest.NewRequest(http.MethodPut, "/api/cart/1", strings.NewReader(`{"quantity": 5}`))
	req.SetPathValue("productId", "1")
	rec := serveWithSession(h.Update, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	resp := decodeResponse(t, rec)
	assert.Equal(t, "Cart item updated successfully", resp.Message)
}

func TestCartHandler_Update_ZeroQuantityRemoves(t *testing.T) {
	svc := new(MockCartService)
	svc.On("UpdateQuantity", mock.Anything, int64(7), int64(1), 0).Return(nil, nil)

	h := newCartHandler(svc, sessionResolvingTo(7))

	req := httptest.NewRequest(http.MethodPut, "/api/cart/1", strings.NewReader(`{"quantity": 0}`))
	req.SetPathValue("productId", "1")
	rec := serveWithSession(h.Update, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	resp := decodeResponse(t, rec)
	assert.Equal(t, "Item removed from cart", resp.Message)
	assert.Nil(t, resp.Data)
}

func TestCartHandler_Update_MissingQuantity(t *testing.T) {
	svc := new(MockCartService)
	h := newCartHandler(svc, sessionResolvingTo(7))

	req := httptest.NewRequest(http.MethodPut, "/api/cart/1", strings.NewReader(`{}`))
	req.SetPathValue("productId", "1")
	rec := serveWithSession(h.Update, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decodeResponse(t, rec)
	assert.Equal(t, "Validation failed", resp.Message)
	svc.AssertNotCalled(t, "UpdateQuantity")
}

func TestCartHandler_Update_UnknownItem(t *testing.T) {
	svc := new(MockCartService)
	svc.On("UpdateQuantity", mock.Anything, int64(7), int64(99), 5).
		Return(nil, model.ErrCartItemNotFound)

	h := newCartHandler(svc, sessionResolvingTo(7))

	req := httptest.NewRequest(http.MethodPut, "/api/cart/99", strings.NewReader(`{"quantity": 5}`))
	req.SetPathValue("productId", "99")
	rec := serveWithSession(h.Update, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCartHandler_Remove(t *testing.T) {
	svc := new(MockCartService)
	svc.On("Remove", mock.Anything, int64(7), int64(1)).Return(nil)

	h := newCartHandler(svc, sessionResolvingTo(7))

	req := httptest.NewRequest(http.MethodDelete, "/api/cart/1", nil)
	req.SetPathValue("productId", "1")
	rec := serveWithSession(h.Remove, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	resp := decodeResponse(t, rec)
	assert.Equal(t, "Item removed from cart successfully", resp.Message)
}

func TestCartHandler_Remove_InvalidProductID(t *testing.T) {
	svc := new(MockCartService)
	h := newCartHandler(svc, sessionResolvingTo(7))

	req := httptest.NewRequest(http.MethodDelete, "/api/cart/abc", nil)
	req.SetPathValue("productId", "abc")
	rec := serveWithSession(h.Remove, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	svc.AssertNotCalled(t, "Remove")
}

func TestCartHandler_Clear(t *testing.T) {
	svc := new(MockCartService)
	svc.On("Clear", mock.Anything, int64(7)).Return(nil)

	h := newCartHandler(svc, sessionResolvingTo(7))

	req := httptest.NewRequest(http.MethodDelete, "/api/cart", nil)
	rec := serveWithSession(h.Clear, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	resp := decodeResponse(t, rec)
	assert.Equal(t, "Cart cleared successfully", resp.Message)
}

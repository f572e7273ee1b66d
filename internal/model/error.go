package model

import (
	"fmt"
	"strings"
)

// Standard error codes for API responses.
const (
	ErrCodeInvalidJSON      = "INVALID_JSON"
	ErrCodeValidation       = "VALIDATION_FAILED"
	ErrCodeProductNotFound  = "PRODUCT_NOT_FOUND"
	ErrCodeCartItemNotFound = "CART_ITEM_NOT_FOUND"
	ErrCodeOrderNotFound    = "ORDER_NOT_FOUND"
	ErrCodeOutOfStock       = "OUT_OF_STOCK"
	ErrCodeStockConflict    = "STOCK_CONFLICT"
	ErrCodeEmptyCart        = "EMPTY_CART"
	ErrCodeConflict         = "CONFLICT"
	ErrCodeInternalError    = "INTERNAL_ERROR"
)

// DomainError is a business-rule failure reported synchronously to the
// caller with a specific status and message.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error.
func NewDomainError(code, message string) *DomainError {
	return &DomainError{Code: code, Message: message}
}

// Common domain errors.
var (
	ErrProductNotFound  = NewDomainError(ErrCodeProductNotFound, "Product not found")
	ErrCartItemNotFound = NewDomainError(ErrCodeCartItemNotFound, "Cart item not found")
	ErrOrderNotFound    = NewDomainError(ErrCodeOrderNotFound, "Order not found")
	ErrOutOfStock       = NewDomainError(ErrCodeOutOfStock, "Product is out of stock")
	ErrEmptyCart        = NewDomainError(ErrCodeEmptyCart, "Cart is empty")
)

// StockConflictItem identifies a cart line whose product is no longer
// available at checkout time.
type StockConflictItem struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// StockConflictError is returned by checkout when one or more cart lines
// reference out-of-stock products. No order is created.
type StockConflictError struct {
	Items []StockConflictItem
}

func (e *StockConflictError) Error() string {
	names := make([]string, len(e.Items))
	for i, item := range e.Items {
		names[i] = item.Name
	}
	return fmt.Sprintf("some items in your cart are out of stock: %s", strings.Join(names, ", "))
}

// FieldError describes a single invalid request field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError carries field-level details for malformed input.
type ValidationError struct {
	Details []FieldError
}

func (e *ValidationError) Error() string {
	return "validation failed"
}

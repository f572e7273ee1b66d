package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderNumber(t *testing.T) {
	tests := []struct {
		id       int64
		expected string
	}{
		{id: 7, expected: "TSS-000007"},
		{id: 42, expected: "TSS-000042"},
		{id: 123456, expected: "TSS-123456"},
		{id: 1234567, expected: "TSS-1234567"},
	}

	for _, tt := range tests {
		order := &Order{ID: tt.id}
		assert.Equal(t, tt.expected, order.OrderNumber())
	}
}

func TestNewOrderDetails(t *testing.T) {
	createdAt := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)
	order := &Order{
		ID:        7,
		Subtotal:  1300,
		TaxAmount: 234,
		Total:     1534,
		Status:    OrderStatusCompleted,
		CreatedAt: createdAt,
	}
	items := []OrderItem{
		{OrderID: 7, ProductID: 1, ProductName: "Tee", ProductPrice: 500, Quantity: 2},
		{OrderID: 7, ProductID: 2, ProductName: "Tote", ProductPrice: 300, Quantity: 1},
	}

	details := NewOrderDetails(order, items)

	assert.Equal(t, "TSS-000007", details.OrderNumber)
	assert.Equal(t, createdAt, details.CreatedAt)
	assert.Equal(t, 3, details.ItemCount)
	require.Len(t, details.Items, 2)
	assert.Equal(t, OrderLine{Name: "Tee", Price: 500, Quantity: 2, Total: 1000}, details.Items[0])
	assert.Equal(t, OrderLine{Name: "Tote", Price: 300, Quantity: 1, Total: 300}, details.Items[1])
}

func TestNewOrderDetails_NoItems(t *testing.T) {
	details := NewOrderDetails(&Order{ID: 1}, nil)

	assert.NotNil(t, details.Items)
	assert.Empty(t, details.Items)
	assert.Zero(t, details.ItemCount)
}

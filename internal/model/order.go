package model

import (
	"fmt"
	"time"
)

// OrderStatus values. Checkout is synchronous, so orders are created
// directly in the completed state.
const OrderStatusCompleted = "completed"

// Order is an immutable record of a completed checkout.
type Order struct {
	ID        int64     `json:"id" db:"id"`
	UserID    int64     `json:"-" db:"user_id"`
	SessionID string    `json:"-" db:"session_id"`
	Subtotal  int64     `json:"subtotal" db:"subtotal"`
	TaxAmount int64     `json:"taxAmount" db:"tax_amount"`
	Total     int64     `json:"total" db:"total_amount"`
	Status    string    `json:"status" db:"status"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// OrderNumber is the display identifier shown to customers. It is purely
// cosmetic and never used as a lookup key.
func (o *Order) OrderNumber() string {
	return fmt.Sprintf("TSS-%06d", o.ID)
}

// OrderItem captures a point-in-time snapshot of a product's name and
// price at checkout. It must not be re-joined to the live products table;
// historical orders stay stable when catalogue prices change.
type OrderItem struct {
	ID           int64  `json:"-" db:"id"`
	OrderID      int64  `json:"-" db:"order_id"`
	ProductID    int64  `json:"-" db:"product_id"`
	ProductName  string `json:"name" db:"product_name"`
	ProductPrice int64  `json:"price" db:"product_price"`
	Quantity     int    `json:"quantity" db:"quantity"`
}

// OrderLine is an order item as presented to the frontend, with the line
// total precomputed.
type OrderLine struct {
	Name     string `json:"name"`
	Price    int64  `json:"price"`
	Quantity int    `json:"quantity"`
	Total    int64  `json:"total"`
}

// OrderDetails is the response shape for order history and lookups.
type OrderDetails struct {
	ID          int64       `json:"id"`
	OrderNumber string      `json:"orderNumber"`
	Subtotal    int64       `json:"subtotal"`
	TaxAmount   int64       `json:"taxAmount"`
	Total       int64       `json:"total"`
	Status      string      `json:"status"`
	CreatedAt   time.Time   `json:"createdAt"`
	Items       []OrderLine `json:"items"`
	ItemCount   int         `json:"itemCount"`
}

// NewOrderDetails builds the presentation shape from an order and its
// item snapshots.
func NewOrderDetails(order *Order, items []OrderItem) OrderDetails {
	details := OrderDetails{
		ID:          order.ID,
		OrderNumber: order.OrderNumber(),
		Subtotal:    order.Subtotal,
		TaxAmount:   order.TaxAmount,
		Total:       order.Total,
		Status:      order.Status,
		CreatedAt:   order.CreatedAt,
		Items:       make([]OrderLine, 0, len(items)),
	}
	for _, item := range items {
		details.Items = append(details.Items, OrderLine{
			Name:     item.ProductName,
			Price:    item.ProductPrice,
			Quantity: item.Quantity,
			Total:    item.ProductPrice * int64(item.Quantity),
		})
		details.ItemCount += item.Quantity
	}
	return details
}

package model

import "time"

// CartItem is a cart row as stored: one (user, product) pair with a
// quantity. A quantity of zero is never stored; the row is deleted instead.
type CartItem struct {
	ID        int64     `json:"id" db:"id"`
	UserID    int64     `json:"-" db:"user_id"`
	ProductID int64     `json:"productId" db:"product_id"`
	Quantity  int       `json:"quantity" db:"quantity"`
	CreatedAt time.Time `json:"-" db:"created_at"`
	UpdatedAt time.Time `json:"-" db:"updated_at"`
}

// CartLine is a cart row joined against the live product record. Price,
// stock and images reflect current catalogue state; snapshots are only
// taken at checkout.
type CartLine struct {
	CartItemID    int64    `json:"cartItemId"`
	ProductID     int64    `json:"id"`
	Name          string   `json:"name"`
	Price         int64    `json:"price"`
	OriginalPrice int64    `json:"originalPrice"`
	ImageURL      string   `json:"image"`
	InStock       bool     `json:"inStock"`
	Colors        []string `json:"colors"`
	Sizes         []string `json:"sizes"`
	Quantity      int      `json:"quantity"`
}

// CartSummary holds totals computed over a whole cart. Tax is applied to
// the aggregate subtotal once, never per line.
type CartSummary struct {
	Subtotal  int64 `json:"subtotal"`
	TaxAmount int64 `json:"taxAmount"`
	Total     int64 `json:"total"`
	ItemCount int   `json:"itemCount"`
}

// Cart is the response payload for GET /api/cart.
type Cart struct {
	Items   []CartLine  `json:"items"`
	Summary CartSummary `json:"summary"`
}

// AddCartItemRequest is the payload for POST /api/cart.
type AddCartItemRequest struct {
	ProductID int64 `json:"productId" validate:"required,gt=0"`
	Quantity  int   `json:"quantity" validate:"required,min=1,max=99"`
}

// UpdateCartItemRequest is the payload for PUT /api/cart/{productId}.
// A quantity of zero removes the item.
type UpdateCartItemRequest struct {
	Quantity *int `json:"quantity" validate:"required,min=0,max=99"`
}

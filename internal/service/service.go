package service

import (
	"context"

	"souled-store/internal/model"
)

// SessionService resolves opaque session tokens to durable user records.
type SessionService interface {
	// Resolve maps a session token to a user id, creating the user on
	// first contact. The token is trusted as-is; there is no signature or
	// expiry check.
	Resolve(ctx context.Context, sessionToken string) (int64, error)
}

// ProductService defines read-only operations over the catalogue.
type ProductService interface {
	// List retrieves a filtered, sorted, paginated product page.
	List(ctx context.Context, query model.ProductQuery) (*model.ProductPage, error)

	// GetByID retrieves a single product.
	GetByID(ctx context.Context, id int64) (*model.Product, error)

	// GetFeatured retrieves the featured product strip for the home page.
	GetFeatured(ctx context.Context) ([]model.Product, error)

	// GetCategories retrieves the category list, "All" sentinel first.
	GetCategories(ctx context.Context) ([]model.Category, error)

	// Search retrieves products matching a free-text term.
	Search(ctx context.Context, term, category, sortBy string) (*model.SearchResult, error)
}

// CartService defines operations on a user's cart.
type CartService interface {
	// Get retrieves the cart lines with live product data and totals.
	Get(ctx context.Context, userID int64) (*model.Cart, error)

	// Add puts a product in the cart, accumulating quantity onto any
	// existing line for the same product.
	Add(ctx context.Context, userID int64, req *model.AddCartItemRequest) (*model.CartItem, error)

	// UpdateQuantity sets an existing line's quantity; zero removes it.
	UpdateQuantity(ctx context.Context, userID, productID int64, quantity int) (*model.CartItem, error)

	// Remove deletes a line unconditionally.
	Remove(ctx context.Context, userID, productID int64) error

	// Clear empties the cart.
	Clear(ctx context.Context, userID int64) error
}

// OrderService defines checkout and order history operations.
type OrderService interface {
	// Checkout converts the user's cart into an immutable order and clears
	// the cart, all within one transaction.
	Checkout(ctx context.Context, userID int64, sessionToken string) (*model.OrderDetails, error)

	// List retrieves the user's order history, newest first.
	List(ctx context.Context, userID int64) ([]model.OrderDetails, error)

	// GetByID retrieves one of the user's orders.
	GetByID(ctx context.Context, id, userID int64) (*model.OrderDetails, error)
}

package repository

import (
	"context"

	"souled-store/internal/model"

	"github.com/jackc/pgx/v5"
)

// UserRepository defines data access for session-bound users.
type UserRepository interface {
	// GetOrCreate resolves a session token to a user id, creating the user
	// atomically if the token has not been seen before.
	GetOrCreate(ctx context.Context, sessionID string) (int64, error)
}

// ProductRepository defines the interface for catalogue data access.
type ProductRepository interface {
	// List retrieves products matching the query's filters, sorted and
	// paginated, along with the total match count.
	List(ctx context.Context, query model.ProductQuery) ([]model.Product, int, error)

	// GetByID retrieves a single product by its ID. Returns nil when the
	// product does not exist.
	GetByID(ctx context.Context, id int64) (*model.Product, error)

	// GetFeatured retrieves in-stock featured products, newest first.
	GetFeatured(ctx context.Context, limit int) ([]model.Product, error)

	// ListCategories retrieves the distinct non-null categories.
	ListCategories(ctx context.Context) ([]string, error)

	// Search retrieves products whose name or description matches the term.
	Search(ctx context.Context, term, category, sortBy string) ([]model.Product, error)

	// UpsertMany inserts or updates catalogue records in bulk. Used by the
	// catalogue importer; the API itself never writes products.
	UpsertMany(ctx context.Context, products []model.Product) (int, error)
}

// CartRepository defines the interface for cart data access.
type CartRepository interface {
	// ListLines retrieves the user's cart rows joined with live product data.
	ListLines(ctx context.Context, userID int64) ([]model.CartLine, error)

	// AddItem upserts a cart row: an existing (user, product) row has the
	// quantity added to it, otherwise a new row is created.
	AddItem(ctx context.Context, userID, productID int64, quantity int) (*model.CartItem, error)

	// UpdateQuantity sets the quantity of an existing cart row. Returns
	// model.ErrCartItemNotFound when no such row exists.
	UpdateQuantity(ctx context.Context, userID, productID int64, quantity int) (*model.CartItem, error)

	// DeleteItem removes a cart row. Deleting an absent row is not an error.
	DeleteItem(ctx context.Context, userID, productID int64) error

	// Clear removes all cart rows for the user.
	Clear(ctx context.Context, userID int64) error

	// ListLinesForUpdate retrieves and row-locks the user's cart rows within
	// the given transaction, joined with live product data.
	ListLinesForUpdate(ctx context.Context, tx pgx.Tx, userID int64) ([]model.CartLine, error)

	// ClearTx removes all cart rows for the user within the transaction.
	ClearTx(ctx context.Context, tx pgx.Tx, userID int64) error
}

// OrderRepository defines the interface for order data access.
type OrderRepository interface {
	// BeginTx starts a new database transaction.
	BeginTx(ctx context.Context) (pgx.Tx, error)

	// CreateOrder inserts a new order within the provided transaction and
	// fills in the generated ID and creation time.
	CreateOrder(ctx context.Context, tx pgx.Tx, order *model.Order) error

	// CreateOrderItems inserts the order's item snapshots within the
	// provided transaction.
	CreateOrderItems(ctx context.Context, tx pgx.Tx, items []model.OrderItem) error

	// ListByUser retrieves the user's orders with their items, newest first.
	ListByUser(ctx context.Context, userID int64) ([]model.Order, map[int64][]model.OrderItem, error)

	// GetByID retrieves an order owned by the user along with its items.
	// Returns a nil order when not found.
	GetByID(ctx context.Context, id, userID int64) (*model.Order, []model.OrderItem, error)
}

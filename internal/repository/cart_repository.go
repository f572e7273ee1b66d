package repository

import (
	"context"
	"fmt"

	"souled-store/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

const cartLineQuery = `
	SELECT ci.id, p.id, p.name, p.price, p.original_price, p.image_url,
	       p.in_stock, p.colors, p.sizes, ci.quantity
	FROM cart_items ci
	JOIN products p ON p.id = ci.product_id
	WHERE ci.user_id = $1
	ORDER BY ci.created_at, ci.id
`

// cartRepository implements the CartRepository interface using PostgreSQL.
type cartRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewCartRepository creates a new PostgreSQL-backed cart repository.
func NewCartRepository(pool *pgxpool.Pool, logger zerolog.Logger) CartRepository {
	return &cartRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "cart").Logger(),
	}
}

func (r *cartRepository) collectLines(rows pgx.Rows) ([]model.CartLine, error) {
	defer rows.Close()

	var lines []model.CartLine
	for rows.Next() {
		var line model.CartLine
		err := rows.Scan(
			&line.CartItemID, &line.ProductID, &line.Name, &line.Price,
			&line.OriginalPrice, &line.ImageURL, &line.InStock,
			&line.Colors, &line.Sizes, &line.Quantity,
		)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan cart line row")
			return nil, fmt.Errorf("failed to scan cart line: %w", err)
		}
		lines = append(lines, line)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating cart line rows")
		return nil, fmt.Errorf("error iterating cart lines: %w", err)
	}

	return lines, nil
}

// ListLines retrieves the user's cart rows joined with live product data.
func (r *cartRepository) ListLines(ctx context.Context, userID int64) ([]model.CartLine, error) {
	rows, err := r.pool.Query(ctx, cartLineQuery, userID)
	if err != nil {
		r.logger.Error().Err(err).Int64("user_id", userID).Msg("failed to query cart lines")
		return nil, fmt.Errorf("failed to query cart lines: %w", err)
	}

	return r.collectLines(rows)
}

// AddItem upserts a cart row. Concurrent adds for the same (user, product)
// serialise on the conflict target, so quantities accumulate instead of
// one update overwriting the other.
func (r *cartRepository) AddItem(ctx context.Context, userID, productID int64, quantity int) (*model.CartItem, error) {
	query := `
		INSERT INTO cart_items (user_id, product_id, quantity)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, product_id) DO UPDATE SET
			quantity = cart_items.quantity + EXCLUDED.quantity,
			updated_at = NOW()
		RETURNING id, quantity
	`

	item := &model.CartItem{UserID: userID, ProductID: productID}
	err := r.pool.QueryRow(ctx, query, userID, productID, quantity).Scan(&item.ID, &item.Quantity)
	if err != nil {
		r.logger.Error().
			Err(err).
			Int64("user_id", userID).
			Int64("product_id", productID).
			Msg("failed to add cart item")
		return nil, fmt.Errorf("failed to add cart item: %w", err)
	}

	r.logger.Debug().
		Int64("user_id", userID).
		Int64("product_id", productID).
		Int("quantity", item.Quantity).
		Msg("cart item upserted")

	return item, nil
}

// UpdateQuantity sets the quantity of an existing cart row.
func (r *cartRepository) UpdateQuantity(ctx context.Context, userID, productID int64, quantity int) (*model.CartItem, error) {
	query := `
		UPDATE cart_items
		SET quantity = $3, updated_at = NOW()
		WHERE user_id = $1 AND product_id = $2
		RETURNING id, quantity
	`

	item := &model.CartItem{UserID: userID, ProductID: productID}
	err := r.pool.QueryRow(ctx, query, userID, productID, quantity).Scan(&item.ID, &item.Quantity)
	if err != nil {
		if err == pgx.ErrNoRows {
			r.logger.Debug().
				Int64("user_id", userID).
				Int64("product_id", productID).
				Msg("cart item not found")
			return nil, model.ErrCartItemNotFound
		}
		r.logger.Error().
			Err(err).
			Int64("user_id", userID).
			Int64("product_id", productID).
			Msg("failed to update cart item")
		return nil, fmt.Errorf("failed to update cart item: %w", err)
	}

	return item, nil
}

// DeleteItem removes a cart row. Deleting an absent row is not an error.
func (r *cartRepository) DeleteItem(ctx context.Context, userID, productID int64) error {
	query := `DELETE FROM cart_items WHERE user_id = $1 AND product_id = $2`

	_, err := r.pool.Exec(ctx, query, userID, productID)
	if err != nil {
		r.logger.Error().
			Err(err).
			Int64("user_id", userID).
			Int64("product_id", productID).
			Msg("failed to delete cart item")
		return fmt.Errorf("failed to delete cart item: %w", err)
	}

	return nil
}

// Clear removes all cart rows for the user.
func (r *cartRepository) Clear(ctx context.Context, userID int64) error {
	query := `DELETE FROM cart_items WHERE user_id = $1`

	_, err := r.pool.Exec(ctx, query, userID)
	if err != nil {
		r.logger.Error().Err(err).Int64("user_id", userID).Msg("failed to clear cart")
		return fmt.Errorf("failed to clear cart: %w", err)
	}

	return nil
}

// ListLinesForUpdate retrieves and row-locks the user's cart rows within
// the given transaction. The lock prevents a concurrent add from being
// half-counted by an in-flight checkout.
func (r *cartRepository) ListLinesForUpdate(ctx context.Context, tx pgx.Tx, userID int64) ([]model.CartLine, error) {
	rows, err := tx.Query(ctx, cartLineQuery+" FOR UPDATE OF ci", userID)
	if err != nil {
		r.logger.Error().Err(err).Int64("user_id", userID).Msg("failed to lock cart lines")
		return nil, fmt.Errorf("failed to lock cart lines: %w", err)
	}

	return r.collectLines(rows)
}

// ClearTx removes all cart rows for the user within the transaction.
func (r *cartRepository) ClearTx(ctx context.Context, tx pgx.Tx, userID int64) error {
	query := `DELETE FROM cart_items WHERE user_id = $1`

	_, err := tx.Exec(ctx, query, userID)
	if err != nil {
		r.logger.Error().Err(err).Int64("user_id", userID).Msg("failed to clear cart in transaction")
		return fmt.Errorf("failed to clear cart: %w", err)
	}

	return nil
}

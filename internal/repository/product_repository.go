package repository

import (
	"context"
	"fmt"
	"strings"

	"souled-store/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

const productColumns = `id, name, description, price, original_price, image_url,
	category, rating, review_count, in_stock, featured, colors, sizes, created_at`

// productRepository implements the ProductRepository interface using PostgreSQL.
type productRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewProductRepository creates a new PostgreSQL-backed product repository.
func NewProductRepository(pool *pgxpool.Pool, logger zerolog.Logger) ProductRepository {
	return &productRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "product").Logger(),
	}
}

func scanProduct(row pgx.Row) (model.Product, error) {
	var p model.Product
	err := row.Scan(
		&p.ID, &p.Name, &p.Description, &p.Price, &p.OriginalPrice, &p.ImageURL,
		&p.Category, &p.Rating, &p.ReviewCount, &p.InStock, &p.Featured,
		&p.Colors, &p.Sizes, &p.CreatedAt,
	)
	return p, err
}

func (r *productRepository) collectProducts(rows pgx.Rows) ([]model.Product, error) {
	defer rows.Close()

	var products []model.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan product row")
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating product rows")
		return nil, fmt.Errorf("error iterating products: %w", err)
	}

	return products, nil
}

// sortClause maps a sort key to its ORDER BY clause. The default key sorts
// featured products first, then newest.
func sortClause(sortBy string) string {
	switch sortBy {
	case model.SortPriceLow:
		return "price ASC"
	case model.SortPriceHigh:
		return "price DESC"
	case model.SortRating:
		return "rating DESC"
	default:
		return "featured DESC, created_at DESC"
	}
}

// List retrieves products matching the query's filters, sorted and
// paginated, along with the total match count.
func (r *productRepository) List(ctx context.Context, query model.ProductQuery) ([]model.Product, int, error) {
	var conditions []string
	var args []any

	if query.Category != model.CategoryAll {
		args = append(args, query.Category)
		conditions = append(conditions, fmt.Sprintf("category = $%d", len(args)))
	}

	if search := strings.TrimSpace(query.Search); search != "" {
		args = append(args, "%"+search+"%")
		conditions = append(conditions, fmt.Sprintf("name ILIKE $%d", len(args)))
	}

	where := ""
	if len(conditions) > 0 {
		where = " WHERE " + strings.Join(conditions, " AND ")
	}

	countQuery := "SELECT COUNT(*) FROM products" + where

	var total int
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		r.logger.Error().Err(err).Msg("failed to count products")
		return nil, 0, fmt.Errorf("failed to count products: %w", err)
	}

	listQuery := fmt.Sprintf(
		"SELECT %s FROM products%s ORDER BY %s LIMIT $%d OFFSET $%d",
		productColumns, where, sortClause(query.SortBy), len(args)+1, len(args)+2,
	)
	args = append(args, query.Limit, query.Offset())

	rows, err := r.pool.Query(ctx, listQuery, args...)
	if err != nil {
		r.logger.Error().Err(err).
			Str("category", query.Category).
			Str("sort_by", query.SortBy).
			Msg("failed to query products")
		return nil, 0, fmt.Errorf("failed to query products: %w", err)
	}

	products, err := r.collectProducts(rows)
	if err != nil {
		return nil, 0, err
	}

	return products, total, nil
}

// GetByID retrieves a single product by its ID.
func (r *productRepository) GetByID(ctx context.Context, id int64) (*model.Product, error) {
	query := fmt.Sprintf("SELECT %s FROM products WHERE id = $1", productColumns)

	p, err := scanProduct(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			r.logger.Debug().Int64("product_id", id).Msg("product not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Int64("product_id", id).Msg("failed to query product")
		return nil, fmt.Errorf("failed to query product: %w", err)
	}

	return &p, nil
}

// GetFeatured retrieves in-stock featured products, newest first.
func (r *productRepository) GetFeatured(ctx context.Context, limit int) ([]model.Product, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM products
		WHERE featured = TRUE AND in_stock = TRUE
		ORDER BY created_at DESC
		LIMIT $1
	`, productColumns)

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query featured products")
		return nil, fmt.Errorf("failed to query featured products: %w", err)
	}

	return r.collectProducts(rows)
}

// ListCategories retrieves the distinct non-null categories.
func (r *productRepository) ListCategories(ctx context.Context) ([]string, error) {
	query := `
		SELECT DISTINCT category
		FROM products
		WHERE category IS NOT NULL
		ORDER BY category
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query categories")
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer rows.Close()

	var categories []string
	for rows.Next() {
		var category string
		if err := rows.Scan(&category); err != nil {
			r.logger.Error().Err(err).Msg("failed to scan category row")
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, category)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating category rows")
		return nil, fmt.Errorf("error iterating categories: %w", err)
	}

	return categories, nil
}

// Search retrieves products whose name or description matches the term,
// case-insensitively.
func (r *productRepository) Search(ctx context.Context, term, category, sortBy string) ([]model.Product, error) {
	args := []any{"%" + term + "%"}
	where := "(name ILIKE $1 OR description ILIKE $1)"

	if category != model.CategoryAll {
		args = append(args, category)
		where += fmt.Sprintf(" AND category = $%d", len(args))
	}

	query := fmt.Sprintf(
		"SELECT %s FROM products WHERE %s ORDER BY %s",
		productColumns, where, sortClause(sortBy),
	)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		r.logger.Error().Err(err).Str("term", term).Msg("failed to search products")
		return nil, fmt.Errorf("failed to search products: %w", err)
	}

	return r.collectProducts(rows)
}

// UpsertMany inserts or updates catalogue records in bulk.
func (r *productRepository) UpsertMany(ctx context.Context, products []model.Product) (int, error) {
	if len(products) == 0 {
		return 0, nil
	}

	query := `
		INSERT INTO products (
			id, name, description, price, original_price, image_url,
			category, rating, review_count, in_stock, featured, colors, sizes
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			description = EXCLUDED.description,
			price = EXCLUDED.price,
			original_price = EXCLUDED.original_price,
			image_url = EXCLUDED.image_url,
			category = EXCLUDED.category,
			rating = EXCLUDED.rating,
			review_count = EXCLUDED.review_count,
			in_stock = EXCLUDED.in_stock,
			featured = EXCLUDED.featured,
			colors = EXCLUDED.colors,
			sizes = EXCLUDED.sizes
	`

	batch := &pgx.Batch{}
	for _, p := range products {
		batch.Queue(query,
			p.ID, p.Name, p.Description, p.Price, p.OriginalPrice, p.ImageURL,
			p.Category, p.Rating, p.ReviewCount, p.InStock, p.Featured,
			p.Colors, p.Sizes,
		)
	}

	results := r.pool.SendBatch(ctx, batch)
	defer results.Close()

	for i := 0; i < len(products); i++ {
		if _, err := results.Exec(); err != nil {
			r.logger.Error().
				Err(err).
				Int64("product_id", products[i].ID).
				Msg("failed to upsert product")
			return i, fmt.Errorf("failed to upsert product %d: %w", products[i].ID, err)
		}
	}

	r.logger.Info().Int("count", len(products)).Msg("catalogue records upserted")

	return len(products), nil
}

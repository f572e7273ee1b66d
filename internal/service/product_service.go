package service

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	"souled-store/internal/model"
	"souled-store/internal/repository"

	"github.com/rs/zerolog"
)

// featuredLimit is the size of the home page featured strip.
const featuredLimit = 6

// productService implements ProductService.
type productService struct {
	productRepo repository.ProductRepository
	logger      zerolog.Logger
}

// NewProductService creates a new product service.
func NewProductService(productRepo repository.ProductRepository, logger zerolog.Logger) ProductService {
	return &productService{
		productRepo: productRepo,
		logger:      logger.With().Str("service", "product").Logger(),
	}
}

// List retrieves a filtered, sorted, paginated product page.
func (s *productService) List(ctx context.Context, query model.ProductQuery) (*model.ProductPage, error) {
	if err := model.Validate(&query); err != nil {
		return nil, err
	}

	products, total, err := s.productRepo.List(ctx, query)
	if err != nil {
		s.logger.Error().Err(err).
			Str("category", query.Category).
			Str("sort_by", query.SortBy).
			Msg("failed to list products")
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	if products == nil {
		products = []model.Product{}
	}

	totalPages := (total + query.Limit - 1) / query.Limit

	s.logger.Debug().
		Int("count", len(products)).
		Int("total", total).
		Int("page", query.Page).
		Msg("retrieved products")

	return &model.ProductPage{
		Products: products,
		Pagination: model.Pagination{
			Page:       query.Page,
			Limit:      query.Limit,
			Total:      total,
			TotalPages: totalPages,
		},
	}, nil
}

// GetByID retrieves a single product.
func (s *productService) GetByID(ctx context.Context, id int64) (*model.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Int64("product_id", id).Msg("failed to get product")
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	if product == nil {
		return nil, model.ErrProductNotFound
	}

	return product, nil
}

// GetFeatured retrieves the featured product strip for the home page.
func (s *productService) GetFeatured(ctx context.Context) ([]model.Product, error) {
	products, err := s.productRepo.GetFeatured(ctx, featuredLimit)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to get featured products")
		return nil, fmt.Errorf("failed to get featured products: %w", err)
	}

	if products == nil {
		products = []model.Product{}
	}

	return products, nil
}

// GetCategories retrieves the category list with the "All" sentinel first
// and display names title-cased.
func (s *productService) GetCategories(ctx context.Context) ([]model.Category, error) {
	names, err := s.productRepo.ListCategories(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to get categories")
		return nil, fmt.Errorf("failed to get categories: %w", err)
	}

	categories := make([]model.Category, 0, len(names)+1)
	categories = append(categories, model.Category{Name: "All", Value: model.CategoryAll})
	for _, name := range names {
		categories = append(categories, model.Category{
			Name:  capitalize(name),
			Value: name,
		})
	}

	return categories, nil
}

// Search retrieves products matching a free-text term against name and
// description.
func (s *productService) Search(ctx context.Context, term, category, sortBy string) (*model.SearchResult, error) {
	term = strings.TrimSpace(term)
	if len(term) < 2 {
		return nil, &model.ValidationError{Details: []model.FieldError{
			{Field: "query", Message: "Search query must be at least 2 characters long"},
		}}
	}

	if category == "" {
		category = model.CategoryAll
	}
	if sortBy == "" {
		sortBy = model.SortFeatured
	}

	products, err := s.productRepo.Search(ctx, term, category, sortBy)
	if err != nil {
		s.logger.Error().Err(err).Str("term", term).Msg("failed to search products")
		return nil, fmt.Errorf("failed to search products: %w", err)
	}

	if products == nil {
		products = []model.Product{}
	}

	return &model.SearchResult{
		Products:     products,
		SearchQuery:  term,
		TotalResults: len(products),
	}, nil
}

// capitalize upper-cases the first rune of a category name for display.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

package service

import (
	"context"
	"fmt"
	"math"

	"souled-store/internal/model"
	"souled-store/internal/repository"

	"github.com/rs/zerolog"
)

// Summarize computes totals over a whole cart. Tax is rounded once on the
// aggregate subtotal, never per line, so line-level rounding cannot drift.
func Summarize(lines []model.CartLine, taxRate float64) model.CartSummary {
	var summary model.CartSummary
	for _, line := range lines {
		summary.Subtotal += line.Price * int64(line.Quantity)
		summary.ItemCount += line.Quantity
	}
	summary.TaxAmount = int64(math.Round(float64(summary.Subtotal) * taxRate))
	summary.Total = summary.Subtotal + summary.TaxAmount
	return summary
}

// cartService implements CartService.
type cartService struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
	taxRate     float64
	logger      zerolog.Logger
}

// NewCartService creates a new cart service.
func NewCartService(
	cartRepo repository.CartRepository,
	productRepo repository.ProductRepository,
	taxRate float64,
	logger zerolog.Logger,
) CartService {
	return &cartService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
		taxRate:     taxRate,
		logger:      logger.With().Str("service", "cart").Logger(),
	}
}

// Get retrieves the cart lines with live product data and totals. Prices
// and stock flags reflect the current catalogue; snapshots are only taken
// at checkout.
func (s *cartService) Get(ctx context.Context, userID int64) (*model.Cart, error) {
	lines, err := s.cartRepo.ListLines(ctx, userID)
	if err != nil {
		s.logger.Error().Err(err).Int64("user_id", userID).Msg("failed to get cart")
		return nil, fmt.Errorf("failed to get cart: %w", err)
	}

	if lines == nil {
		lines = []model.CartLine{}
	}

	return &model.Cart{
		Items:   lines,
		Summary: Summarize(lines, s.taxRate),
	}, nil
}

// Add puts a product in the cart. The requested quantity is bounded 1-99
// by validation, but accumulated totals on an existing line may exceed 99;
// that carry-through is intentional and not re-validated.
func (s *cartService) Add(ctx context.Context, userID int64, req *model.AddCartItemRequest) (*model.CartItem, error) {
	if err := model.Validate(req); err != nil {
		return nil, err
	}

	product, err := s.productRepo.GetByID(ctx, req.ProductID)
	if err != nil {
		s.logger.Error().Err(err).Int64("product_id", req.ProductID).Msg("failed to check product")
		return nil, fmt.Errorf("failed to check product: %w", err)
	}
	if product == nil {
		return nil, model.ErrProductNotFound
	}
	if !product.InStock {
		s.logger.Debug().Int64("product_id", req.ProductID).Msg("product out of stock")
		return nil, model.ErrOutOfStock
	}

	item, err := s.cartRepo.AddItem(ctx, userID, req.ProductID, req.Quantity)
	if err != nil {
		s.logger.Error().
			Err(err).
			Int64("user_id", userID).
			Int64("product_id", req.ProductID).
			Msg("failed to add cart item")
		return nil, fmt.Errorf("failed to add cart item: %w", err)
	}

	s.logger.Info().
		Int64("user_id", userID).
		Int64("product_id", req.ProductID).
		Int("quantity", item.Quantity).
		Msg("item added to cart")

	return item, nil
}

// UpdateQuantity sets an existing line's quantity. Zero deletes the row;
// deleting an absent row is not an error. A positive quantity for a line
// that was never added fails with ErrCartItemNotFound: only Add creates
// rows.
func (s *cartService) UpdateQuantity(ctx context.Context, userID, productID int64, quantity int) (*model.CartItem, error) {
	if quantity == 0 {
		if err := s.cartRepo.DeleteItem(ctx, userID, productID); err != nil {
			return nil, fmt.Errorf("failed to remove cart item: %w", err)
		}
		s.logger.Info().
			Int64("user_id", userID).
			Int64("product_id", productID).
			Msg("item removed from cart via zero quantity")
		return nil, nil
	}

	item, err := s.cartRepo.UpdateQuantity(ctx, userID, productID, quantity)
	if err != nil {
		if err == model.ErrCartItemNotFound {
			return nil, err
		}
		return nil, fmt.Errorf("failed to update cart item: %w", err)
	}

	return item, nil
}

// Remove deletes a line unconditionally.
func (s *cartService) Remove(ctx context.Context, userID, productID int64) error {
	if err := s.cartRepo.DeleteItem(ctx, userID, productID); err != nil {
		return fmt.Errorf("failed to remove cart item: %w", err)
	}

	s.logger.Info().
		Int64("user_id", userID).
		Int64("product_id", productID).
		Msg("item removed from cart")

	return nil
}

// Clear empties the cart.
func (s *cartService) Clear(ctx context.Context, userID int64) error {
	if err := s.cartRepo.Clear(ctx, userID); err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}

	s.logger.Info().Int64("user_id", userID).Msg("cart cleared")

	return nil
}

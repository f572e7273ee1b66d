package service

import (
	"context"
	"fmt"

	"souled-store/internal/model"
	"souled-store/internal/repository"

	"github.com/rs/zerolog"
)

// orderService implements OrderService.
type orderService struct {
	orderRepo repository.OrderRepository
	cartRepo  repository.CartRepository
	taxRate   float64
	logger    zerolog.Logger
}

// NewOrderService creates a new order service.
func NewOrderService(
	orderRepo repository.OrderRepository,
	cartRepo repository.CartRepository,
	taxRate float64,
	logger zerolog.Logger,
) OrderService {
	return &orderService{
		orderRepo: orderRepo,
		cartRepo:  cartRepo,
		taxRate:   taxRate,
		logger:    logger.With().Str("service", "order").Logger(),
	}
}

// Checkout converts the user's cart into an immutable order. The whole
// sequence — load and lock cart lines, verify stock, insert the order
// header, insert item snapshots, clear the cart — runs in one transaction,
// so a failure at any step leaves no partial order and no half-cleared
// cart.
func (s *orderService) Checkout(ctx context.Context, userID int64, sessionToken string) (*model.OrderDetails, error) {
	tx, err := s.orderRepo.BeginTx(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to begin checkout transaction")
		return nil, fmt.Errorf("failed to process checkout: %w", err)
	}

	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				s.logger.Error().Err(rbErr).Msg("failed to rollback checkout transaction")
			}
		}
	}()

	// Load the cart with live product data, locking the cart rows so a
	// concurrent add cannot be half-counted.
	lines, err := s.cartRepo.ListLinesForUpdate(ctx, tx, userID)
	if err != nil {
		s.logger.Error().Err(err).Int64("user_id", userID).Msg("failed to load cart for checkout")
		return nil, fmt.Errorf("failed to process checkout: %w", err)
	}

	if len(lines) == 0 {
		err = model.ErrEmptyCart
		return nil, err
	}

	// Every line must still be in stock; no partial order is created.
	var conflicts []model.StockConflictItem
	for _, line := range lines {
		if !line.InStock {
			conflicts = append(conflicts, model.StockConflictItem{
				ID:   line.ProductID,
				Name: line.Name,
			})
		}
	}
	if len(conflicts) > 0 {
		s.logger.Info().
			Int64("user_id", userID).
			Int("conflict_count", len(conflicts)).
			Msg("checkout rejected, items out of stock")
		err = &model.StockConflictError{Items: conflicts}
		return nil, err
	}

	// Totals are computed from the prices loaded above, so the customer is
	// charged exactly what the locked cart showed.
	summary := Summarize(lines, s.taxRate)

	order := &model.Order{
		UserID:    userID,
		SessionID: sessionToken,
		Subtotal:  summary.Subtotal,
		TaxAmount: summary.TaxAmount,
		Total:     summary.Total,
		Status:    model.OrderStatusCompleted,
	}

	if err = s.orderRepo.CreateOrder(ctx, tx, order); err != nil {
		s.logger.Error().Err(err).Int64("user_id", userID).Msg("failed to create order")
		return nil, fmt.Errorf("failed to process checkout: %w", err)
	}

	items := make([]model.OrderItem, len(lines))
	for i, line := range lines {
		items[i] = model.OrderItem{
			OrderID:      order.ID,
			ProductID:    line.ProductID,
			ProductName:  line.Name,
			ProductPrice: line.Price,
			Quantity:     line.Quantity,
		}
	}

	if err = s.orderRepo.CreateOrderItems(ctx, tx, items); err != nil {
		s.logger.Error().
			Err(err).
			Int64("order_id", order.ID).
			Int("item_count", len(items)).
			Msg("failed to create order items")
		return nil, fmt.Errorf("failed to process checkout: %w", err)
	}

	if err = s.cartRepo.ClearTx(ctx, tx, userID); err != nil {
		s.logger.Error().Err(err).Int64("order_id", order.ID).Msg("failed to clear cart at checkout")
		return nil, fmt.Errorf("failed to process checkout: %w", err)
	}

	if err = tx.Commit(ctx); err != nil {
		s.logger.Error().Err(err).Int64("order_id", order.ID).Msg("failed to commit checkout transaction")
		return nil, fmt.Errorf("failed to process checkout: %w", err)
	}

	s.logger.Info().
		Int64("order_id", order.ID).
		Int64("user_id", userID).
		Int64("total", order.Total).
		Int("item_count", len(items)).
		Msg("order placed")

	details := model.NewOrderDetails(order, items)
	return &details, nil
}

// List retrieves the user's order history, newest first.
func (s *orderService) List(ctx context.Context, userID int64) ([]model.OrderDetails, error) {
	orders, itemsByOrder, err := s.orderRepo.ListByUser(ctx, userID)
	if err != nil {
		s.logger.Error().Err(err).Int64("user_id", userID).Msg("failed to list orders")
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	details := make([]model.OrderDetails, 0, len(orders))
	for i := range orders {
		details = append(details, model.NewOrderDetails(&orders[i], itemsByOrder[orders[i].ID]))
	}

	return details, nil
}

// GetByID retrieves one of the user's orders.
func (s *orderService) GetByID(ctx context.Context, id, userID int64) (*model.OrderDetails, error) {
	order, items, err := s.orderRepo.GetByID(ctx, id, userID)
	if err != nil {
		s.logger.Error().Err(err).Int64("order_id", id).Msg("failed to get order")
		return nil, fmt.Errorf("failed to get order: %w", err)
	}

	if order == nil {
		return nil, model.ErrOrderNotFound
	}

	details := model.NewOrderDetails(order, items)
	return &details, nil
}

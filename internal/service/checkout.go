package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tprstore/storefront/internal/models"
	"github.com/tprstore/storefront/internal/mykafka"
	"github.com/tprstore/storefront/internal/repo"
	"github.com/tprstore/storefront/internal/transport"
)

const orderNumberAttempts = 3

// CheckoutConfig carries the pricing rules. The tax rate is in basis
// points so money math stays in integers end to end.
type CheckoutConfig struct {
	FreeShippingThreshold int64
	FlatShippingFee       int64
	TaxRateBP             int64
	OrderNumberPrefix     string
}

// Shipping is free at and above the threshold, a flat fee below it.
func (c CheckoutConfig) Shipping(subtotal int64) int64 {
	if subtotal >= c.FreeShippingThreshold {
		return 0
	}
	return c.FlatShippingFee
}

// Tax rounds half-up to the minor currency unit.
func (c CheckoutConfig) Tax(subtotal int64) int64 {
	return (subtotal*c.TaxRateBP + 5000) / 10000
}

type CheckoutService struct {
	Repo   *repo.GormRepo
	Events *mykafka.Producer
	Config CheckoutConfig
}

// PlaceOrder converts the user's cart into a durable order: snapshot
// current prices into order items, compute totals, decrement stock and
// clear the cart, all inside one transaction. Any failure rolls the
// whole thing back.
func (s *CheckoutService) PlaceOrder(ctx context.Context, userID uint, email string, req transport.PlaceOrderRequest) (*models.Order, error) {
	if req.Phone == "" {
		return nil, fmt.Errorf("%w: phone required", ErrValidation)
	}
	if req.ShippingAddress.Line == "" || req.ShippingAddress.City == "" || req.ShippingAddress.Pincode == "" {
		return nil, fmt.Errorf("%w: shipping address required", ErrValidation)
	}
	if email == "" {
		return nil, fmt.Errorf("%w: email required", ErrValidation)
	}

	paymentMethod := req.PaymentMethod
	if paymentMethod == "" {
		paymentMethod = models.PaymentMethodCOD
	}

	var order models.Order

	txErr := s.Repo.Tx(ctx, func(tx *repo.GormRepo) error {
		items, err := tx.GetCart(ctx, userID)
		if err != nil {
			return err
		}
		if len(items) == 0 {
			return ErrEmptyCart
		}

		var subtotal int64
		orderItems := make([]models.OrderItem, 0, len(items))
		for _, it := range items {
			p := it.Product
			if p == nil || !p.IsActive {
				return fmt.Errorf("%w: product %d", ErrNotFound, it.ProductID)
			}
			subtotal += int64(it.Quantity) * p.Price
			orderItems = append(orderItems, models.OrderItem{
				ProductID: p.ID,
				Quantity:  it.Quantity,
				Price:     p.Price,
			})
		}

		shipping := s.Config.Shipping(subtotal)
		tax := s.Config.Tax(subtotal)

		number, err := s.nextOrderNumber(ctx, tx)
		if err != nil {
			return err
		}

		// Re-check stock under the transaction: the guard lives in the
		// UPDATE itself, not in the earlier cart read.
		for _, it := range items {
			ok, err := tx.DecrementStock(ctx, it.ProductID, it.Quantity)
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("%w: %s (requested %d)", ErrInsufficientStock, it.Product.Name, it.Quantity)
			}
		}

		order = models.Order{
			OrderNumber:     number,
			UserID:          userID,
			Email:           email,
			Phone:           req.Phone,
			ShippingAddress: req.ShippingAddress,
			Subtotal:        subtotal,
			Shipping:        shipping,
			Tax:             tax,
			Total:           subtotal + shipping + tax,
			Status:          models.OrderStatusPending,
			PaymentStatus:   models.PaymentStatusPending,
			PaymentMethod:   paymentMethod,
			Items:           orderItems,
		}
		if err := tx.CreateOrder(ctx, &order); err != nil {
			return err
		}

		return tx.ClearCart(ctx, userID)
	})
	if txErr != nil {
		return nil, txErr
	}

	s.Events.TryPublish(ctx, mykafka.TopicOrderEvents, fmt.Sprint(userID), map[string]any{
		"type":         "order_created",
		"user_id":      userID,
		"order_id":     order.ID,
		"order_number": order.OrderNumber,
		"total":        order.Total,
	})

	return &order, nil
}

// nextOrderNumber draws prefix + 10 hex chars of UUID entropy and
// retries on collision. The unique index on order_number is the
// backstop for the remaining race window.
func (s *CheckoutService) nextOrderNumber(ctx context.Context, tx *repo.GormRepo) (string, error) {
	for i := 0; i < orderNumberAttempts; i++ {
		id := uuid.New()
		candidate := s.Config.OrderNumberPrefix + strings.ToUpper(strings.ReplaceAll(id.String(), "-", "")[:10])

		taken, err := tx.OrderNumberTaken(ctx, candidate)
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
	}
	return "", errors.New("order number generation exhausted retries")
}

func (s *CheckoutService) ListOrders(ctx context.Context, userID uint, page, limit int) (*transport.OrderListResponse, error) {
	offset, limit := pageWindow(page, limit)
	total, orders, err := s.Repo.ListOrders(ctx, userID, offset, limit)
	if err != nil {
		return nil, err
	}
	return &transport.OrderListResponse{
		Orders:     orders,
		Pagination: transport.NewPagination(pageOf(offset, limit), limit, total),
	}, nil
}

func (s *CheckoutService) GetOrder(ctx context.Context, userID, orderID uint) (*models.Order, error) {
	order, err := s.Repo.GetOrder(ctx, userID, orderID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: order %d", ErrNotFound, orderID)
	}
	return order, err
}

package services

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"campus-eats/models"
	"campus-eats/store"
)

// Mailer sends customer-facing order emails. A nil Mailer disables mail.
type Mailer interface {
	SendOrderConfirmation(toEmail string, order models.Order) error
	SendStatusUpdate(toEmail string, order models.Order) error
}

// OrderService converts carts into orders and progresses orders through
// their status lifecycle.
type OrderService struct {
	store  store.Store
	mailer Mailer
}

// NewOrderService creates an OrderService. mailer may be nil.
func NewOrderService(st store.Store, mailer Mailer) *OrderService {
	return &OrderService{store: st, mailer: mailer}
}

// GenerateOrderNumber builds a human-readable order number: the ORD-
// prefix followed by six uppercase hex characters from crypto/rand.
// Uniqueness is probabilistic, not checked against existing orders.
func GenerateOrderNumber() string {
	buf := make([]byte, 3)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand only fails when the OS entropy source is broken
		panic(err)
	}
	return "ORD-" + strings.ToUpper(hex.EncodeToString(buf))
}

// Checkout converts the user's non-empty cart into an order. The order
// insert and the cart clear happen in a single store operation, so a
// partial checkout cannot leave an order behind with a full cart.
func (s *OrderService) Checkout(ctx context.Context, userID string) (*models.Order, error) {
	userOID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, ErrInvalidID
	}

	orderNumber := GenerateOrderNumber()

	for attempt := 0; attempt < maxCartRetries; attempt++ {
		user, err := s.store.Users().FindByID(ctx, userOID)
		if err != nil {
			return nil, err
		}
		if len(user.Cart) == 0 {
			return nil, ErrEmptyCart
		}

		items := make([]models.OrderItem, 0, len(user.Cart))
		total := 0.0
		for _, line := range user.Cart {
			qty := line.Quantity
			if qty < 1 {
				qty = 1
			}
			items = append(items, models.OrderItem{
				Name:     line.Name,
				Price:    line.Price,
				Quantity: qty,
			})
			total += line.Price * float64(qty)
		}

		order := &models.Order{
			UserID:        user.ID,
			OrderNumber:   orderNumber,
			CustomerName:  user.Name,
			Email:         user.Email,
			PaymentStatus: models.PaymentPending,
			Status:        models.StatusProcessing,
			Items:         items,
			TotalAmount:   total,
			CreatedAt:     time.Now().UTC(),
		}

		err = s.store.Checkout(ctx, user, order)
		if errors.Is(err, store.ErrVersionConflict) {
			// cart changed underneath us; rebuild the snapshot
			continue
		}
		if err != nil {
			return nil, err
		}

		log.Info().
			Str("order_number", order.OrderNumber).
			Str("user_id", user.ID.Hex()).
			Float64("total", order.TotalAmount).
			Msg("order placed")

		s.sendAsync(order.Email, *order, s.mailerConfirmation)
		return order, nil
	}
	return nil, ErrCartBusy
}

// Get fetches an order by its store identifier.
func (s *OrderService) Get(ctx context.Context, orderID string) (*models.Order, error) {
	oid, err := primitive.ObjectIDFromHex(orderID)
	if err != nil {
		return nil, ErrInvalidID
	}
	return s.store.Orders().FindByID(ctx, oid)
}

// List returns every order.
func (s *OrderService) List(ctx context.Context) ([]models.Order, error) {
	return s.store.Orders().List(ctx)
}

// ListByUser returns a user's orders newest first.
func (s *OrderService) ListByUser(ctx context.Context, userID string) ([]models.Order, error) {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, ErrInvalidID
	}
	return s.store.Orders().FindByUser(ctx, oid)
}

// UpdateStatus moves an order to a new status. The status must be one of
// the defined values and reachable from the order's current status:
// Processing -> Preparing -> Ready -> Completed, with Cancelled allowed
// from any non-terminal state.
func (s *OrderService) UpdateStatus(ctx context.Context, orderID, status string) (*models.Order, error) {
	oid, err := primitive.ObjectIDFromHex(orderID)
	if err != nil {
		return nil, ErrInvalidID
	}
	if !models.KnownStatus(status) {
		return nil, ErrUnknownStatus
	}

	current, err := s.store.Orders().FindByID(ctx, oid)
	if err != nil {
		return nil, err
	}
	if !models.CanTransition(current.Status, status) {
		return nil, ErrIllegalTransition
	}

	updated, err := s.store.Orders().UpdateStatus(ctx, oid, status)
	if err != nil {
		return nil, err
	}

	log.Info().
		Str("order_number", updated.OrderNumber).
		Str("from", current.Status).
		Str("to", status).
		Msg("order status updated")

	s.sendAsync(updated.Email, *updated, s.mailerStatus)
	return updated, nil
}

func (s *OrderService) mailerConfirmation(to string, order models.Order) error {
	return s.mailer.SendOrderConfirmation(to, order)
}

func (s *OrderService) mailerStatus(to string, order models.Order) error {
	return s.mailer.SendStatusUpdate(to, order)
}

func (s *OrderService) sendAsync(to string, order models.Order, send func(string, models.Order) error) {
	if s.mailer == nil {
		return
	}
	go func() {
		if err := send(to, order); err != nil {
			log.Error().Err(err).Str("email", to).Msg("failed to send order email")
		}
	}()
}

package services

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"campus-eats/models"
	"campus-eats/store"
)

// maxCartRetries bounds the optimistic-lock retry loop on cart writes.
const maxCartRetries = 5

// CartService maintains the cart embedded on a user document. Every
// mutation is a read-modify-write guarded by the user's version counter;
// a concurrent write makes the store report a conflict and the operation
// is retried against the fresh document.
type CartService struct {
	store store.Store
}

// NewCartService creates a CartService backed by the given store.
func NewCartService(st store.Store) *CartService {
	return &CartService{store: st}
}

// Add puts quantity units of a menu item into the user's cart. If the
// item is already in the cart its quantity is incremented, otherwise a
// snapshot of the menu item is appended. A non-positive quantity is
// treated as 1. Returns the updated cart.
func (s *CartService) Add(ctx context.Context, userID, itemID string, quantity int) ([]models.CartItem, error) {
	userOID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, ErrInvalidID
	}
	itemOID, err := primitive.ObjectIDFromHex(itemID)
	if err != nil {
		return nil, ErrInvalidID
	}
	if quantity < 1 {
		quantity = 1
	}

	menuItem, err := s.store.Menus().FindByID(ctx, itemOID)
	if err != nil {
		return nil, err
	}

	for attempt := 0; attempt < maxCartRetries; attempt++ {
		user, err := s.store.Users().FindByID(ctx, userOID)
		if err != nil {
			return nil, err
		}

		if idx := user.FindCartItem(itemOID); idx >= 0 {
			user.Cart[idx].Quantity += quantity
		} else {
			user.Cart = append(user.Cart, models.CartItem{
				ItemID:   menuItem.ID,
				Name:     menuItem.Name,
				Price:    menuItem.Price,
				Category: menuItem.Category,
				ImageURL: menuItem.ImageURL,
				Quantity: quantity,
			})
		}

		err = s.store.Users().ReplaceCart(ctx, user.ID, user.Version, user.Cart)
		if errors.Is(err, store.ErrVersionConflict) {
			continue
		}
		if err != nil {
			return nil, err
		}
		return user.Cart, nil
	}
	return nil, ErrCartBusy
}

// View returns the user's current cart, empty slice included.
func (s *CartService) View(ctx context.Context, userID string) ([]models.CartItem, error) {
	userOID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, ErrInvalidID
	}
	user, err := s.store.Users().FindByID(ctx, userOID)
	if err != nil {
		return nil, err
	}
	if user.Cart == nil {
		return []models.CartItem{}, nil
	}
	return user.Cart, nil
}

// Update sets the quantity of an existing cart line. Zero and negative
// quantities are rejected rather than treated as removal; deleting a
// line is the Remove operation's job.
func (s *CartService) Update(ctx context.Context, userID, itemID string, quantity int) ([]models.CartItem, error) {
	userOID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, ErrInvalidID
	}
	itemOID, err := primitive.ObjectIDFromHex(itemID)
	if err != nil {
		return nil, ErrInvalidID
	}
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}

	for attempt := 0; attempt < maxCartRetries; attempt++ {
		user, err := s.store.Users().FindByID(ctx, userOID)
		if err != nil {
			return nil, err
		}

		idx := user.FindCartItem(itemOID)
		if idx < 0 {
			return nil, ErrItemNotInCart
		}
		user.Cart[idx].Quantity = quantity

		err = s.store.Users().ReplaceCart(ctx, user.ID, user.Version, user.Cart)
		if errors.Is(err, store.ErrVersionConflict) {
			continue
		}
		if err != nil {
			return nil, err
		}
		return user.Cart, nil
	}
	return nil, ErrCartBusy
}

// Remove deletes a cart line. ErrItemNotInCart when the item is not in
// the cart; the cart is left unchanged in that case.
func (s *CartService) Remove(ctx context.Context, userID, itemID string) ([]models.CartItem, error) {
	userOID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, ErrInvalidID
	}
	itemOID, err := primitive.ObjectIDFromHex(itemID)
	if err != nil {
		return nil, ErrInvalidID
	}

	for attempt := 0; attempt < maxCartRetries; attempt++ {
		user, err := s.store.Users().FindByID(ctx, userOID)
		if err != nil {
			return nil, err
		}

		idx := user.FindCartItem(itemOID)
		if idx < 0 {
			return nil, ErrItemNotInCart
		}
		user.Cart = append(user.Cart[:idx], user.Cart[idx+1:]...)

		err = s.store.Users().ReplaceCart(ctx, user.ID, user.Version, user.Cart)
		if errors.Is(err, store.ErrVersionConflict) {
			continue
		}
		if err != nil {
			return nil, err
		}
		return user.Cart, nil
	}
	return nil, ErrCartBusy
}

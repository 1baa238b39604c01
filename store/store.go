// Package store defines the persistence boundary of the application.
// Services depend on these interfaces only, so tests substitute an
// in-memory implementation for MongoDB.
package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"campus-eats/models"
)

var (
	// ErrNotFound is returned when a referenced document does not exist.
	ErrNotFound = errors.New("store: not found")
	// ErrVersionConflict is returned by ReplaceCart when the user document
	// was modified since it was read. Callers re-read and retry.
	ErrVersionConflict = errors.New("store: version conflict")
	// ErrDuplicateEmail is returned when inserting a user whose email is taken.
	ErrDuplicateEmail = errors.New("store: email already registered")
)

// UserStore persists users and their embedded carts.
type UserStore interface {
	Insert(ctx context.Context, user *models.User) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	// ReplaceCart swaps the user's cart in a compare-and-swap on the
	// document version; ErrVersionConflict when the version moved.
	ReplaceCart(ctx context.Context, id primitive.ObjectID, version int64, cart []models.CartItem) error
	UpdateProfile(ctx context.Context, id primitive.ObjectID, name, email string) (*models.User, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	Count(ctx context.Context) (int64, error)
}

// MenuStore persists menu items.
type MenuStore interface {
	Insert(ctx context.Context, item *models.MenuItem) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.MenuItem, error)
	List(ctx context.Context) ([]models.MenuItem, error)
	Update(ctx context.Context, id primitive.ObjectID, item *models.MenuItem) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	Count(ctx context.Context) (int64, error)
	CountByCategory(ctx context.Context) (map[string]int64, error)
}

// OrderStore persists orders.
type OrderStore interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Order, error)
	FindByUser(ctx context.Context, userID primitive.ObjectID) ([]models.Order, error)
	List(ctx context.Context) ([]models.Order, error)
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) (*models.Order, error)
	CountByStatus(ctx context.Context) (map[string]int64, error)
	CountByPaymentStatus(ctx context.Context) (map[string]int64, error)
	TotalByPaymentStatus(ctx context.Context) (map[string]float64, error)
	BestSellers(ctx context.Context, limit int) ([]ItemCount, error)
	RevenueSince(ctx context.Context, since primitive.DateTime) ([]DailyRevenue, error)
}

// ItemCount is an aggregation row: how many order lines name an item.
type ItemCount struct {
	Name  string `bson:"_id" json:"name"`
	Count int64  `bson:"count" json:"count"`
}

// DailyRevenue is an aggregation row: revenue for a single calendar day.
type DailyRevenue struct {
	Date    string  `bson:"date" json:"date"`
	Revenue float64 `bson:"revenue" json:"revenue"`
}

// Store bundles the per-collection stores with the one cross-document
// operation, checkout, which must persist the order and clear the cart
// as a unit.
type Store interface {
	Users() UserStore
	Menus() MenuStore
	Orders() OrderStore
	// Checkout inserts the order and empties the user's cart atomically.
	// The cart write is version-checked like ReplaceCart.
	Checkout(ctx context.Context, user *models.User, order *models.Order) error
}

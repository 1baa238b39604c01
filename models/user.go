package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CartItem is a snapshot of a menu item embedded in a user's cart.
// Price and name are copied at add-time, so later menu edits do not
// change lines already in a cart.
type CartItem struct {
	ItemID   primitive.ObjectID `bson:"item_id" json:"itemId"`
	Name     string             `bson:"name" json:"name"`
	Price    float64            `bson:"price" json:"price"`
	Category string             `bson:"category" json:"category"`
	ImageURL string             `bson:"image_url" json:"imageUrl"`
	Quantity int                `bson:"quantity" json:"quantity"`
}

// User represents a registered customer or admin. The cart lives on the
// user document itself; Version is bumped on every cart write so that
// concurrent read-modify-write cycles cannot silently overwrite each other.
type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name      string             `bson:"name" json:"name"`
	Email     string             `bson:"email" json:"email"`
	Password  string             `bson:"password,omitempty" json:"-"`
	Phone     string             `bson:"phone" json:"phone"`
	City      string             `bson:"city" json:"city"`
	State     string             `bson:"state" json:"state"`
	Role      string             `bson:"role" json:"role"` // "user" or "admin"
	Cart      []CartItem         `bson:"cart" json:"cart"`
	Version   int64              `bson:"version" json:"-"`
	CreatedAt time.Time          `bson:"created_at" json:"createdAt"`
}

// FindCartItem returns the index of the cart line for the given menu item,
// or -1 when the item is not in the cart.
func (u *User) FindCartItem(itemID primitive.ObjectID) int {
	for i, item := range u.Cart {
		if item.ItemID == itemID {
			return i
		}
	}
	return -1
}

package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Order statuses. An order starts in StatusProcessing and moves forward
// through the kitchen; Cancelled is reachable from any non-terminal state.
const (
	StatusProcessing = "Processing"
	StatusPreparing  = "Preparing"
	StatusReady      = "Ready"
	StatusCompleted  = "Completed"
	StatusCancelled  = "Cancelled"
)

// Payment statuses.
const (
	PaymentPending   = "Pending"
	PaymentCompleted = "Completed"
	PaymentFailed    = "Failed"
)

// statusTransitions is the authoritative set of legal status changes.
var statusTransitions = map[string][]string{
	StatusProcessing: {StatusPreparing, StatusCancelled},
	StatusPreparing:  {StatusReady, StatusCancelled},
	StatusReady:      {StatusCompleted, StatusCancelled},
	StatusCompleted:  {},
	StatusCancelled:  {},
}

// KnownStatus reports whether s is one of the defined order statuses.
func KnownStatus(s string) bool {
	_, ok := statusTransitions[s]
	return ok
}

// CanTransition reports whether an order may move from one status to another.
func CanTransition(from, to string) bool {
	for _, next := range statusTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// OrderItem is a snapshot of a cart line frozen into an order at checkout.
type OrderItem struct {
	Name     string  `bson:"name" json:"name"`
	Price    float64 `bson:"price" json:"price"`
	Quantity int     `bson:"quantity" json:"quantity"`
}

// Order is the immutable record produced by checkout. Only Status is
// mutated after creation.
type Order struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UserID        primitive.ObjectID `bson:"user_id" json:"userId"`
	OrderNumber   string             `bson:"order_number" json:"orderNumber"`
	CustomerName  string             `bson:"customer_name" json:"customerName"`
	Email         string             `bson:"email" json:"email"`
	PaymentStatus string             `bson:"payment_status" json:"paymentStatus"`
	Status        string             `bson:"status" json:"status"`
	Items         []OrderItem        `bson:"items" json:"items"`
	TotalAmount   float64            `bson:"total_amount" json:"totalAmount"`
	CreatedAt     time.Time          `bson:"created_at" json:"createdAt"`
}

package checkout

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// StatusCompleted is the only order state. There is no payment or
// fulfillment lifecycle behind it.
const StatusCompleted = "completed"

// OrderItem is a snapshot of a cart line item copied verbatim at
// submission time.
type OrderItem struct {
	ProductID string  `bson:"productId" json:"productId"`
	Name      string  `bson:"name" json:"name"`
	Price     float64 `bson:"price" json:"price"`
	Quantity  int     `bson:"quantity" json:"quantity"`
}

// Order is immutable once created.
type Order struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	OrderNumber   string             `bson:"orderNumber" json:"orderNumber"`
	CustomerName  string             `bson:"customerName" json:"customerName"`
	CustomerEmail string             `bson:"customerEmail" json:"customerEmail"`
	CustomerPhone string             `bson:"customerPhone" json:"customerPhone"`
	Items         []OrderItem        `bson:"items" json:"items"`
	TotalAmount   float64            `bson:"totalAmount" json:"totalAmount"`
	Status        string             `bson:"status" json:"status"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
}

package cart

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Item is one product-quantity pairing within a session's cart. Name,
// price and image are snapshots taken at add-time and never refreshed
// from the catalogue.
type Item struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	SessionID string             `bson:"sessionId" json:"sessionId"`
	ProductID string             `bson:"productId" json:"productId"`
	Name      string             `bson:"name,omitempty" json:"name"`
	Price     float64            `bson:"price" json:"price"`
	ImageURL  string             `bson:"imageUrl,omitempty" json:"imageUrl"`
	Quantity  int                `bson:"quantity" json:"quantity"`
	AddedAt   time.Time          `bson:"addedAt" json:"addedAt"`
}

// AddInput is the payload of an add-to-cart request.
type AddInput struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	ImageURL  string  `json:"imageUrl"`
}

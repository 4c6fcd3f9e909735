package catalogue

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Wig is a catalogue entry. Prices travel as plain JSON numbers.
type Wig struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name"`
	Description string             `bson:"description,omitempty" json:"description"`
	Price       float64            `bson:"price" json:"price"`
	ImageURL    string             `bson:"imageUrl,omitempty" json:"imageUrl"`
	Category    string             `bson:"category,omitempty" json:"category"`
	InStock     bool               `bson:"inStock" json:"inStock"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
}

// WigUpdate carries the fields of an update request. Nil means the field
// was not supplied and keeps its stored value.
type WigUpdate struct {
	Name        *string
	Description *string
	Price       *float64
	ImageURL    *string
	Category    *string
	InStock     *bool
}

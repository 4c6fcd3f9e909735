package cart

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoStore struct {
	items *mongo.Collection
}

func NewMongoStore(db *mongo.Database) *MongoStore {
	return &MongoStore{items: db.Collection("cart_items")}
}

func (s *MongoStore) ItemsBySession(ctx context.Context, sessionID string) ([]Item, error) {
	cur, err := s.items.Find(ctx, bson.M{"sessionId": sessionID})
	if err != nil {
		return nil, err
	}
	items := []Item{}
	if err := cur.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// Add increments the quantity of an existing (session, product) item or
// inserts a new one with quantity 1. The lookup and the write are two
// round trips; concurrent adds for the same pair can both observe
// "absent" and insert twice.
func (s *MongoStore) Add(ctx context.Context, sessionID string, in AddInput) (Item, error) {
	filter := bson.M{"sessionId": sessionID, "productId": in.ProductID}

	var existing Item
	err := s.items.FindOne(ctx, filter).Decode(&existing)
	if err == nil {
		opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
		var updated Item
		err := s.items.FindOneAndUpdate(ctx, bson.M{"_id": existing.ID},
			bson.M{"$inc": bson.M{"quantity": 1}}, opts).Decode(&updated)
		return updated, err
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return Item{}, err
	}

	item := Item{
		SessionID: sessionID,
		ProductID: in.ProductID,
		Name:      in.Name,
		Price:     in.Price,
		ImageURL:  in.ImageURL,
		Quantity:  1,
		AddedAt:   time.Now().UTC(),
	}
	res, err := s.items.InsertOne(ctx, item)
	if err != nil {
		return Item{}, err
	}
	item.ID = res.InsertedID.(primitive.ObjectID)
	return item, nil
}

func (s *MongoStore) SetQuantity(ctx context.Context, sessionID, itemID string, quantity int) (Item, error) {
	oid, err := primitive.ObjectIDFromHex(itemID)
	if err != nil {
		return Item{}, err
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var item Item
	err = s.items.FindOneAndUpdate(ctx,
		bson.M{"_id": oid, "sessionId": sessionID},
		bson.M{"$set": bson.M{"quantity": quantity}}, opts).Decode(&item)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return Item{}, ErrNotFound
	}
	return item, err
}

func (s *MongoStore) Remove(ctx context.Context, sessionID, itemID string) error {
	oid, err := primitive.ObjectIDFromHex(itemID)
	if err != nil {
		return err
	}

	res, err := s.items.DeleteOne(ctx, bson.M{"_id": oid, "sessionId": sessionID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MongoStore) Clear(ctx context.Context, sessionID string) error {
	_, err := s.items.DeleteMany(ctx, bson.M{"sessionId": sessionID})
	return err
}

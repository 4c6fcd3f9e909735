package catalogue

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoStore struct {
	wigs *mongo.Collection
}

func NewMongoStore(db *mongo.Database) *MongoStore {
	return &MongoStore{wigs: db.Collection("wigs")}
}

func (s *MongoStore) List(ctx context.Context) ([]Wig, error) {
	cur, err := s.wigs.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	wigs := []Wig{}
	if err := cur.All(ctx, &wigs); err != nil {
		return nil, err
	}
	return wigs, nil
}

func (s *MongoStore) Get(ctx context.Context, id string) (Wig, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		// malformed ids surface as store errors, not NotFound
		return Wig{}, err
	}
	var w Wig
	err = s.wigs.FindOne(ctx, bson.M{"_id": oid}).Decode(&w)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return Wig{}, ErrNotFound
	}
	return w, err
}

func (s *MongoStore) Create(ctx context.Context, w Wig) (Wig, error) {
	res, err := s.wigs.InsertOne(ctx, w)
	if err != nil {
		return Wig{}, err
	}
	w.ID = res.InsertedID.(primitive.ObjectID)
	return w, nil
}

func (s *MongoStore) Update(ctx context.Context, id string, upd WigUpdate) (Wig, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return Wig{}, err
	}

	set := bson.M{}
	if upd.Name != nil {
		set["name"] = *upd.Name
	}
	if upd.Description != nil {
		set["description"] = *upd.Description
	}
	if upd.Price != nil {
		set["price"] = *upd.Price
	}
	if upd.ImageURL != nil {
		set["imageUrl"] = *upd.ImageURL
	}
	if upd.Category != nil {
		set["category"] = *upd.Category
	}
	if upd.InStock != nil {
		set["inStock"] = *upd.InStock
	}

	filter := bson.M{"_id": oid}
	if len(set) == 0 {
		var w Wig
		err := s.wigs.FindOne(ctx, filter).Decode(&w)
		if errors.Is(err, mongo.ErrNoDocuments) {
			return Wig{}, ErrNotFound
		}
		return w, err
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var w Wig
	err = s.wigs.FindOneAndUpdate(ctx, filter, bson.M{"$set": set}, opts).Decode(&w)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return Wig{}, ErrNotFound
	}
	return w, err
}

func (s *MongoStore) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}
	res, err := s.wigs.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

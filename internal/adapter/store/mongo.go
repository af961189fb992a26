package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aminafridi/PhysioCare-sub000/internal/core"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoStore keeps each collection as a MongoDB collection with string _id values.
type MongoStore struct {
	client *mongo.Client
	db     *mongo.Database
	now    func() time.Time
}

// NewMongoStore only validates uri; the driver dials lazily, so an
// unreachable server surfaces as errors from later calls and from Ping.
func NewMongoStore(ctx context.Context, uri, database string) (*MongoStore, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}
	return &MongoStore{
		client: client,
		db:     client.Database(database),
		now:    func() time.Time { return time.Now().UTC() },
	}, nil
}

func (s *MongoStore) Get(ctx context.Context, collection, id string) (core.Document, error) {
	var m bson.M
	err := s.db.Collection(collection).FindOne(ctx, bson.M{"_id": id}).Decode(&m)
	if err != nil {
		return core.Document{}, mapMongoError(err)
	}
	return bsonToDocument(m), nil
}

func (s *MongoStore) List(ctx context.Context, collection string, order *core.Order) ([]core.Document, error) {
	opts := options.Find()
	if order != nil {
		dir := 1
		if order.Desc {
			dir = -1
		}
		opts.SetSort(bson.D{{Key: order.Field, Value: dir}})
	}

	cur, err := s.db.Collection(collection).Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var docs []core.Document
	for cur.Next(ctx) {
		var m bson.M
		if err := cur.Decode(&m); err != nil {
			return nil, err
		}
		docs = append(docs, bsonToDocument(m))
	}
	return docs, cur.Err()
}

func (s *MongoStore) FindOne(ctx context.Context, collection, field string, value any) (core.Document, error) {
	var m bson.M
	err := s.db.Collection(collection).FindOne(ctx, bson.M{field: value}).Decode(&m)
	if err != nil {
		return core.Document{}, mapMongoError(err)
	}
	return bsonToDocument(m), nil
}

func (s *MongoStore) Create(ctx context.Context, collection string, fields core.Fields) (string, error) {
	now := s.now()
	body := bson.M(stripTimestamps(fields))
	id := primitive.NewObjectID().Hex()
	body["_id"] = id
	body[core.FieldCreatedAt] = now
	body[core.FieldUpdatedAt] = now

	if _, err := s.db.Collection(collection).InsertOne(ctx, body); err != nil {
		return "", err
	}
	return id, nil
}

func (s *MongoStore) Put(ctx context.Context, collection, id string, fields core.Fields) error {
	now := s.now()
	set := bson.M(stripTimestamps(fields))
	set[core.FieldUpdatedAt] = now

	// Replace the body but keep createdAt from the first write.
	unset := bson.M{}
	var existing bson.M
	err := s.db.Collection(collection).FindOne(ctx, bson.M{"_id": id}).Decode(&existing)
	switch {
	case err == nil:
		for k := range existing {
			if _, ok := set[k]; !ok && k != "_id" && k != core.FieldCreatedAt {
				unset[k] = ""
			}
		}
	case !errors.Is(err, mongo.ErrNoDocuments):
		return err
	}

	update := bson.M{
		"$set":         set,
		"$setOnInsert": bson.M{core.FieldCreatedAt: now},
	}
	if len(unset) > 0 {
		update["$unset"] = unset
	}

	_, err = s.db.Collection(collection).UpdateOne(ctx, bson.M{"_id": id}, update, options.Update().SetUpsert(true))
	return err
}

func (s *MongoStore) Merge(ctx context.Context, collection, id string, patch core.Fields) error {
	set := bson.M(stripTimestamps(patch))
	set[core.FieldUpdatedAt] = s.now()

	res, err := s.db.Collection(collection).UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return core.ErrNotFound
	}
	return nil
}

func (s *MongoStore) Delete(ctx context.Context, collection, id string) error {
	_, err := s.db.Collection(collection).DeleteOne(ctx, bson.M{"_id": id})
	return err
}

func (s *MongoStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, nil)
}

func (s *MongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

func bsonToDocument(m bson.M) core.Document {
	doc := core.Document{Fields: core.Fields{}}
	for k, v := range m {
		switch k {
		case "_id":
			doc.ID = fmt.Sprint(normalizeBSON(v))
		case core.FieldCreatedAt:
			doc.CreatedAt, _ = normalizeBSON(v).(time.Time)
		case core.FieldUpdatedAt:
			doc.UpdatedAt, _ = normalizeBSON(v).(time.Time)
		default:
			doc.Fields[k] = normalizeBSON(v)
		}
	}
	return doc
}

// normalizeBSON converts driver specific types into plain Go values.
func normalizeBSON(v any) any {
	switch t := v.(type) {
	case primitive.ObjectID:
		return t.Hex()
	case primitive.DateTime:
		return t.Time().UTC()
	case primitive.A:
		out := make([]any, len(t))
		for i, item := range t {
			out[i] = normalizeBSON(item)
		}
		return out
	case bson.M:
		out := make(map[string]any, len(t))
		for k, item := range t {
			out[k] = normalizeBSON(item)
		}
		return out
	case bson.D:
		out := make(map[string]any, len(t))
		for _, e := range t {
			out[e.Key] = normalizeBSON(e.Value)
		}
		return out
	}
	return v
}

func mapMongoError(err error) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return core.ErrNotFound
	}
	return err
}

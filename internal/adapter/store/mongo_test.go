package store

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/aminafridi/PhysioCare-sub000/internal/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Set MONGO_TEST_URI (e.g. mongodb://localhost:27017) to run against a live server.
func newTestMongoStore(t *testing.T) *MongoStore {
	t.Helper()
	uri := os.Getenv("MONGO_TEST_URI")
	if uri == "" {
		t.Skip("MONGO_TEST_URI not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db := fmt.Sprintf("physiocare_test_%d", time.Now().UnixNano())
	s, err := NewMongoStore(ctx, uri, db)
	require.NoError(t, err)

	t.Cleanup(func() {
		ctx := context.Background()
		_ = s.db.Drop(ctx)
		_ = s.Close(ctx)
	})
	return s
}

func TestMongoStore(t *testing.T) {
	runStoreSuite(t, func(t *testing.T) core.DocumentStore { return newTestMongoStore(t) })
}

func TestNewMongoStore_UnreachableServerFailsLater(t *testing.T) {
	ctx := context.Background()
	s, err := NewMongoStore(ctx, "mongodb://127.0.0.1:1/?serverSelectionTimeoutMS=200&connectTimeoutMS=200", "physiocare_test")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close(context.Background()) })

	assert.Error(t, s.Ping(ctx))
	_, err = s.List(ctx, core.CollectionServices, nil)
	assert.Error(t, err)
}

func TestNormalizeBSON(t *testing.T) {
	ts := time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC)
	oid := primitive.NewObjectID()

	got := normalizeBSON(bson.M{
		"when":  primitive.NewDateTimeFromTime(ts),
		"id":    oid,
		"list":  primitive.A{"a", primitive.A{"b"}},
		"inner": bson.D{{Key: "k", Value: "v"}},
	})

	assert.Equal(t, map[string]any{
		"when":  ts,
		"id":    oid.Hex(),
		"list":  []any{"a", []any{"b"}},
		"inner": map[string]any{"k": "v"},
	}, got)
}

func TestBSONToDocument(t *testing.T) {
	created := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	doc := bsonToDocument(bson.M{
		"_id":               "abc",
		"title":             "x",
		core.FieldCreatedAt: primitive.NewDateTimeFromTime(created),
	})

	assert.Equal(t, "abc", doc.ID)
	assert.Equal(t, created, doc.CreatedAt)
	assert.Equal(t, core.Fields{"title": "x"}, doc.Fields)
}

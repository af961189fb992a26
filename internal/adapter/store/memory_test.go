package store

import (
	"context"
	"testing"
	"time"

	"github.com/aminafridi/PhysioCare-sub000/internal/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	runStoreSuite(t, func(t *testing.T) core.DocumentStore { return NewMemoryStore() })
}

func TestMemoryStore_CreatedAtDescBreaksTiesByInsertion(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	fixed := time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return fixed }

	var ids []string
	for i := 0; i < 3; i++ {
		id, err := s.Create(ctx, core.CollectionBlog, core.Fields{"title": "t"})
		require.NoError(t, err)
		ids = append(ids, id)
	}

	docs, err := s.List(ctx, core.CollectionBlog, core.OrderBy(core.FieldCreatedAt, true))
	require.NoError(t, err)
	require.Len(t, docs, 3)
	assert.Equal(t, []string{ids[2], ids[1], ids[0]}, []string{docs[0].ID, docs[1].ID, docs[2].ID})
}

func TestMemoryStore_FindOneReturnsFirstInserted(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	first, err := s.Create(ctx, core.CollectionServices, core.Fields{"slug": "dup"})
	require.NoError(t, err)
	_, err = s.Create(ctx, core.CollectionServices, core.Fields{"slug": "dup"})
	require.NoError(t, err)

	doc, err := s.FindOne(ctx, core.CollectionServices, "slug", "dup")
	require.NoError(t, err)
	assert.Equal(t, first, doc.ID)
}

func TestMemoryStore_IgnoresClientTimestamps(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	id, err := s.Create(ctx, core.CollectionServices, core.Fields{
		"title":             "x",
		core.FieldCreatedAt: time.Unix(0, 0),
	})
	require.NoError(t, err)

	doc, err := s.Get(ctx, core.CollectionServices, id)
	require.NoError(t, err)
	assert.NotContains(t, doc.Fields, core.FieldCreatedAt)
	assert.True(t, doc.CreatedAt.After(time.Unix(0, 0)))
}

func TestMemoryStore_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	id, err := s.Create(ctx, core.CollectionServices, core.Fields{"title": "original"})
	require.NoError(t, err)

	doc, err := s.Get(ctx, core.CollectionServices, id)
	require.NoError(t, err)
	doc.Fields["title"] = "mutated"

	again, err := s.Get(ctx, core.CollectionServices, id)
	require.NoError(t, err)
	assert.Equal(t, "original", again.Fields["title"])
}

package store

import (
	"context"
	"testing"

	"github.com/aminafridi/PhysioCare-sub000/internal/core"

	"github.com/spf13/cast"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runStoreSuite exercises the DocumentStore contract against one backend.
// It only touches fields that exist in the PocketBase schema.
func runStoreSuite(t *testing.T, newStore func(t *testing.T) core.DocumentStore) {
	t.Run("GetMissing", func(t *testing.T) {
		s := newStore(t)
		_, err := s.Get(context.Background(), core.CollectionServices, "doesnotexist123")
		assert.ErrorIs(t, err, core.ErrNotFound)
	})

	t.Run("CreateThenGet", func(t *testing.T) {
		ctx := context.Background()
		s := newStore(t)

		id, err := s.Create(ctx, core.CollectionServices, core.Fields{
			"title":    "Dry Needling",
			"slug":     "dry-needling",
			"order":    4,
			"benefits": []string{"Less pain", "More range"},
		})
		require.NoError(t, err)
		require.NotEmpty(t, id)

		doc, err := s.Get(ctx, core.CollectionServices, id)
		require.NoError(t, err)
		assert.Equal(t, id, doc.ID)
		assert.Equal(t, "Dry Needling", cast.ToString(doc.Fields["title"]))
		assert.Equal(t, 4, cast.ToInt(doc.Fields["order"]))
		assert.Equal(t, []string{"Less pain", "More range"}, cast.ToStringSlice(doc.Fields["benefits"]))
		assert.False(t, doc.CreatedAt.IsZero())
		assert.False(t, doc.UpdatedAt.IsZero())
	})

	t.Run("MergeLeavesOtherFields", func(t *testing.T) {
		ctx := context.Background()
		s := newStore(t)

		id, err := s.Create(ctx, core.CollectionServices, core.Fields{
			"title": "Old", "slug": "keep-me", "order": 2,
		})
		require.NoError(t, err)

		require.NoError(t, s.Merge(ctx, core.CollectionServices, id, core.Fields{"title": "New"}))

		doc, err := s.Get(ctx, core.CollectionServices, id)
		require.NoError(t, err)
		assert.Equal(t, "New", cast.ToString(doc.Fields["title"]))
		assert.Equal(t, "keep-me", cast.ToString(doc.Fields["slug"]))
		assert.Equal(t, 2, cast.ToInt(doc.Fields["order"]))

		err = s.Merge(ctx, core.CollectionServices, "doesnotexist123", core.Fields{"title": "x"})
		assert.ErrorIs(t, err, core.ErrNotFound)
	})

	t.Run("ListOrdered", func(t *testing.T) {
		ctx := context.Background()
		s := newStore(t)

		for _, o := range []int{3, 1, 2} {
			_, err := s.Create(ctx, core.CollectionServices, core.Fields{"title": cast.ToString(o), "order": o})
			require.NoError(t, err)
		}

		asc, err := s.List(ctx, core.CollectionServices, core.OrderBy("order", false))
		require.NoError(t, err)
		require.Len(t, asc, 3)
		assert.Equal(t, []int{1, 2, 3}, orders(asc))

		desc, err := s.List(ctx, core.CollectionServices, core.OrderBy("order", true))
		require.NoError(t, err)
		assert.Equal(t, []int{3, 2, 1}, orders(desc))

		empty, err := s.List(ctx, core.CollectionTestimonials, nil)
		require.NoError(t, err)
		assert.Empty(t, empty)
	})

	t.Run("FindOne", func(t *testing.T) {
		ctx := context.Background()
		s := newStore(t)

		id, err := s.Create(ctx, core.CollectionAdminUsers, core.Fields{"email": "ed@physiocare.com", "name": "Ed"})
		require.NoError(t, err)

		doc, err := s.FindOne(ctx, core.CollectionAdminUsers, "email", "ed@physiocare.com")
		require.NoError(t, err)
		assert.Equal(t, id, doc.ID)

		_, err = s.FindOne(ctx, core.CollectionAdminUsers, "email", "nobody@physiocare.com")
		assert.ErrorIs(t, err, core.ErrNotFound)
	})

	t.Run("PutReplacesWholeDocument", func(t *testing.T) {
		ctx := context.Background()
		s := newStore(t)

		require.NoError(t, s.Put(ctx, core.CollectionContent, core.DocSettings, core.Fields{
			"clinicName": "First", "tagline": "to be dropped",
		}))
		first, err := s.Get(ctx, core.CollectionContent, core.DocSettings)
		require.NoError(t, err)

		require.NoError(t, s.Put(ctx, core.CollectionContent, core.DocSettings, core.Fields{
			"clinicName": "Second",
		}))
		second, err := s.Get(ctx, core.CollectionContent, core.DocSettings)
		require.NoError(t, err)

		assert.Equal(t, core.DocSettings, second.ID)
		assert.Equal(t, "Second", cast.ToString(second.Fields["clinicName"]))
		assert.Empty(t, cast.ToString(second.Fields["tagline"]))
		assert.True(t, first.CreatedAt.Equal(second.CreatedAt), "createdAt must survive a replace")
	})

	t.Run("DeleteIsIdempotent", func(t *testing.T) {
		ctx := context.Background()
		s := newStore(t)

		id, err := s.Create(ctx, core.CollectionTestimonials, core.Fields{"name": "A", "rating": 5})
		require.NoError(t, err)

		require.NoError(t, s.Delete(ctx, core.CollectionTestimonials, id))
		_, err = s.Get(ctx, core.CollectionTestimonials, id)
		assert.ErrorIs(t, err, core.ErrNotFound)
		require.NoError(t, s.Delete(ctx, core.CollectionTestimonials, id))
	})
}

func orders(docs []core.Document) []int {
	out := make([]int, 0, len(docs))
	for _, d := range docs {
		out = append(out, cast.ToInt(d.Fields["order"]))
	}
	return out
}

package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/aminafridi/PhysioCare-sub000/internal/adapter/store"
	"github.com/aminafridi/PhysioCare-sub000/internal/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var errBackendDown = errors.New("backend down")

// brokenStore fails every call.
type brokenStore struct{ core.DocumentStore }

func (brokenStore) Get(context.Context, string, string) (core.Document, error) {
	return core.Document{}, errBackendDown
}
func (brokenStore) List(context.Context, string, *core.Order) ([]core.Document, error) {
	return nil, errBackendDown
}
func (brokenStore) FindOne(context.Context, string, string, any) (core.Document, error) {
	return core.Document{}, errBackendDown
}
func (brokenStore) Create(context.Context, string, core.Fields) (string, error) {
	return "", errBackendDown
}
func (brokenStore) Merge(context.Context, string, string, core.Fields) error { return errBackendDown }
func (brokenStore) Put(context.Context, string, string, core.Fields) error   { return errBackendDown }
func (brokenStore) Delete(context.Context, string, string) error             { return errBackendDown }

func TestServiceRepo_CRUD(t *testing.T) {
	ctx := context.Background()
	repo := NewServiceRepo(store.NewMemoryStore(), zap.NewNop())

	id, err := repo.Add(ctx, core.Service{
		Title:    "Sports Rehab",
		Slug:     "sports-rehab",
		Benefits: []string{"Return to play"},
		IconName: "dumbbell",
		Order:    2,
	})
	require.NoError(t, err)
	_, err = repo.Add(ctx, core.Service{Title: "Manual Therapy", Slug: "manual-therapy", Order: 1})
	require.NoError(t, err)

	all := repo.GetAll(ctx)
	require.Len(t, all, 2)
	assert.Equal(t, "Manual Therapy", all[0].Title)
	assert.Equal(t, []string{}, all[0].Benefits)

	got := repo.GetByID(ctx, id)
	require.NotNil(t, got)
	assert.Equal(t, []string{"Return to play"}, got.Benefits)
	assert.False(t, got.Created.IsZero())

	bySlug := repo.GetBySlug(ctx, "sports-rehab")
	require.NotNil(t, bySlug)
	assert.Equal(t, id, bySlug.ID)
	assert.Nil(t, repo.GetBySlug(ctx, ""))
	assert.Nil(t, repo.GetBySlug(ctx, "nope"))

	got.Title = "Sports Rehabilitation"
	got.ImageURL = ""
	require.NoError(t, repo.Edit(ctx, id, *got))
	assert.Equal(t, "Sports Rehabilitation", repo.GetByID(ctx, id).Title)

	require.NoError(t, repo.Remove(ctx, id))
	assert.Nil(t, repo.GetByID(ctx, id))
	assert.Len(t, repo.GetAll(ctx), 1)
}

func TestRepo_UpdateMissingDocument(t *testing.T) {
	repo := NewTestimonialRepo(store.NewMemoryStore(), zap.NewNop())
	err := repo.Update(context.Background(), "missing", core.Fields{"name": "x"})
	assert.ErrorIs(t, err, core.ErrNotFound)
}

func TestRepo_ReadsSwallowStoreErrors(t *testing.T) {
	ctx := context.Background()
	repo := NewBlogRepo(brokenStore{}, zap.NewNop())

	assert.Equal(t, []core.BlogPost{}, repo.GetAll(ctx))
	assert.Nil(t, repo.GetByID(ctx, "x"))
	assert.Nil(t, repo.GetBySlug(ctx, "x"))

	_, err := repo.Add(ctx, core.BlogPost{Title: "x"})
	assert.ErrorIs(t, err, errBackendDown)
	assert.ErrorIs(t, repo.Remove(ctx, "x"), errBackendDown)
}

func TestRepo_ListAndFindReportStoreErrors(t *testing.T) {
	ctx := context.Background()

	broken := NewAdminUserRepo(brokenStore{}, zap.NewNop())
	_, err := broken.List(ctx)
	assert.ErrorIs(t, err, errBackendDown)
	_, err = broken.Find(ctx, "u1")
	assert.ErrorIs(t, err, errBackendDown)
	assert.NotErrorIs(t, err, core.ErrNotFound)

	repo := NewAdminUserRepo(store.NewMemoryStore(), zap.NewNop())
	_, err = repo.Find(ctx, "missing")
	assert.ErrorIs(t, err, core.ErrNotFound)
	_, err = repo.Find(ctx, "")
	assert.ErrorIs(t, err, core.ErrNotFound)

	id, err := repo.Add(ctx, core.AdminUser{Email: "a@clinic.com", Name: "A", Role: core.RoleAdmin})
	require.NoError(t, err)
	u, err := repo.Find(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "a@clinic.com", u.Email)

	users, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestAppointmentRepo_UpdateStatusKeepsOtherFields(t *testing.T) {
	ctx := context.Background()
	repo := NewAppointmentRepo(store.NewMemoryStore(), zap.NewNop())

	id, err := repo.Add(ctx, core.Appointment{
		Name: "Ann", Email: "ann@example.com", Phone: "5551234567",
		Service: "Sports Rehab", Date: "2025-06-01", Time: "10:00",
		Status: core.StatusPending,
	})
	require.NoError(t, err)

	require.NoError(t, repo.UpdateStatus(ctx, id, core.StatusCancelled))
	require.NoError(t, repo.UpdateStatus(ctx, id, core.StatusPending))

	got := repo.GetByID(ctx, id)
	require.NotNil(t, got)
	assert.Equal(t, core.StatusPending, got.Status)
	assert.Equal(t, "Ann", got.Name)
	assert.Equal(t, "10:00", got.Time)
}

func TestAdminUserRepo_GetByEmailFirstMatchWins(t *testing.T) {
	ctx := context.Background()
	repo := NewAdminUserRepo(store.NewMemoryStore(), zap.NewNop())

	first, err := repo.Add(ctx, core.AdminUser{Email: "sam@clinic.com", Password: "one111", Name: "Sam", Role: core.RoleEditor})
	require.NoError(t, err)
	_, err = repo.Add(ctx, core.AdminUser{Email: "sam@clinic.com", Password: "two222", Name: "Sam B", Role: core.RoleAdmin})
	require.NoError(t, err)

	u := repo.GetByEmail(ctx, "sam@clinic.com")
	require.NotNil(t, u)
	assert.Equal(t, first, u.ID)
	assert.Equal(t, "one111", u.Password)
	assert.Equal(t, []string{}, u.AllowedPages)
	assert.Nil(t, repo.GetByEmail(ctx, ""))
}

func TestSettingsRepo_SaveReplacesWholeDocument(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemoryStore()
	repo := NewSettingsRepo(s, zap.NewNop())

	assert.Nil(t, repo.Get(ctx))

	settings := core.DefaultSettings()
	settings.SocialMedia.Instagram = "https://instagram.com/physio"
	require.NoError(t, repo.Save(ctx, settings))

	got := repo.Get(ctx)
	require.NotNil(t, got)
	assert.Equal(t, settings, *got)

	// A stray key written by another client disappears on the next save.
	require.NoError(t, s.Merge(ctx, core.CollectionContent, core.DocSettings, core.Fields{"legacy": true}))
	require.NoError(t, repo.Save(ctx, settings))
	doc, err := s.Get(ctx, core.CollectionContent, core.DocSettings)
	require.NoError(t, err)
	assert.NotContains(t, doc.Fields, "legacy")
}

func TestAboutRepo_RoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := NewAboutRepo(store.NewMemoryStore(), zap.NewNop())

	about := core.DefaultAbout()
	about.ImageURL = "data:image/png;base64,AAAA"
	require.NoError(t, repo.Save(ctx, about))

	got := repo.Get(ctx)
	require.NotNil(t, got)
	assert.Equal(t, about, *got)
}

func TestSingleton_ReadErrorIsNil(t *testing.T) {
	repo := NewAboutRepo(brokenStore{}, zap.NewNop())
	assert.Nil(t, repo.Get(context.Background()))
	assert.ErrorIs(t, repo.Save(context.Background(), core.AboutPage{}), errBackendDown)
}

func TestDecodeTolerantTypes(t *testing.T) {
	f := core.Fields{
		"order":    float64(3),
		"rating":   int64(5),
		"benefits": []any{"a", "b"},
		"hours":    map[string]any{"sunday": "Closed"},
	}
	assert.Equal(t, 3, num(f, "order"))
	assert.Equal(t, 5, num(f, "rating"))
	assert.Equal(t, []string{"a", "b"}, strs(f, "benefits"))
	assert.Equal(t, "Closed", str(sub(f, "hours"), "sunday"))
	assert.Equal(t, core.Fields{}, sub(f, "missing"))
	assert.Equal(t, "", str(f, "missing"))
}

package service

import (
	"testing"

	"github.com/aminafridi/PhysioCare-sub000/internal/adapter/repository"
	"github.com/aminafridi/PhysioCare-sub000/internal/adapter/store"
	"github.com/aminafridi/PhysioCare-sub000/internal/core"

	"go.uber.org/zap"
)

type testRepos struct {
	store        *store.MemoryStore
	services     core.ServiceRepository
	posts        core.BlogRepository
	testimonials core.TestimonialRepository
	appointments core.AppointmentRepository
	users        core.AdminUserRepository
	about        core.AboutRepository
	settings     core.SettingsRepository
}

func setupRepos(t *testing.T) *testRepos {
	t.Helper()
	st := store.NewMemoryStore()
	logger := zap.NewNop()
	return &testRepos{
		store:        st,
		services:     repository.NewServiceRepo(st, logger),
		posts:        repository.NewBlogRepo(st, logger),
		testimonials: repository.NewTestimonialRepo(st, logger),
		appointments: repository.NewAppointmentRepo(st, logger),
		users:        repository.NewAdminUserRepo(st, logger),
		about:        repository.NewAboutRepo(st, logger),
		settings:     repository.NewSettingsRepo(st, logger),
	}
}

func (r *testRepos) catalog() *CatalogService {
	return NewCatalogService(r.services, r.posts, r.testimonials, r.about, r.settings)
}

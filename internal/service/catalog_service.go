package service

import (
	"context"

	"github.com/aminafridi/PhysioCare-sub000/internal/core"
	"github.com/aminafridi/PhysioCare-sub000/internal/fallback"
)

// CatalogService serves public content. Each listing is either entirely
// live or entirely static: an empty or unreadable collection shows the
// compiled-in dataset, never a mix of the two.
type CatalogService struct {
	services     core.ServiceRepository
	posts        core.BlogRepository
	testimonials core.TestimonialRepository
	about        core.AboutRepository
	settings     core.SettingsRepository
}

func NewCatalogService(
	services core.ServiceRepository,
	posts core.BlogRepository,
	testimonials core.TestimonialRepository,
	about core.AboutRepository,
	settings core.SettingsRepository,
) *CatalogService {
	return &CatalogService{
		services:     services,
		posts:        posts,
		testimonials: testimonials,
		about:        about,
		settings:     settings,
	}
}

// Services reports true when the static list was substituted.
func (s *CatalogService) Services(ctx context.Context) ([]core.Service, bool) {
	if live := s.services.GetAll(ctx); len(live) > 0 {
		return live, false
	}
	return fallback.Services(), true
}

func (s *CatalogService) ServiceBySlug(ctx context.Context, slug string) *core.Service {
	if svc := s.services.GetBySlug(ctx, slug); svc != nil {
		return svc
	}
	return fallback.ServiceBySlug(slug)
}

func (s *CatalogService) Posts(ctx context.Context) ([]core.BlogPost, bool) {
	if live := s.posts.GetAll(ctx); len(live) > 0 {
		return live, false
	}
	return fallback.Posts(), true
}

func (s *CatalogService) PostBySlug(ctx context.Context, slug string) *core.BlogPost {
	if post := s.posts.GetBySlug(ctx, slug); post != nil {
		return post
	}
	return fallback.PostBySlug(slug)
}

func (s *CatalogService) Testimonials(ctx context.Context) ([]core.Testimonial, bool) {
	if live := s.testimonials.GetAll(ctx); len(live) > 0 {
		return live, false
	}
	return fallback.Testimonials(), true
}

func (s *CatalogService) Conditions() []core.Condition {
	return fallback.Conditions()
}

func (s *CatalogService) ConditionBySlug(slug string) *core.Condition {
	return fallback.ConditionBySlug(slug)
}

func (s *CatalogService) About(ctx context.Context) core.AboutPage {
	if about := s.about.Get(ctx); about != nil {
		return *about
	}
	return core.DefaultAbout()
}

func (s *CatalogService) Settings(ctx context.Context) core.Settings {
	if settings := s.settings.Get(ctx); settings != nil {
		return *settings
	}
	return core.DefaultSettings()
}

var _ core.CatalogService = (*CatalogService)(nil)

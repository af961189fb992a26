package service

import (
	"context"
	"fmt"

	"github.com/aminafridi/PhysioCare-sub000/internal/core"
	"github.com/aminafridi/PhysioCare-sub000/internal/fallback"

	"go.uber.org/zap"
)

// ImportService copies the compiled-in datasets into the live store. It is
// the only place static and live content are merged. An import aborts when
// the live collection cannot be read, since nothing could be deduped.
type ImportService struct {
	services     core.ServiceRepository
	posts        core.BlogRepository
	testimonials core.TestimonialRepository
	logger       *zap.Logger
}

func NewImportService(
	services core.ServiceRepository,
	posts core.BlogRepository,
	testimonials core.TestimonialRepository,
	logger *zap.Logger,
) *ImportService {
	return &ImportService{services: services, posts: posts, testimonials: testimonials, logger: logger}
}

// ImportServices adds every static service whose slug is not live yet.
func (s *ImportService) ImportServices(ctx context.Context) (int, error) {
	live, err := s.services.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("read live services: %w", err)
	}
	existing := map[string]bool{}
	for _, svc := range live {
		existing[svc.Slug] = true
	}

	added := 0
	for _, svc := range fallback.Services() {
		if existing[svc.Slug] {
			continue
		}
		svc.ID, svc.Static = "", false
		if _, err := s.services.Add(ctx, svc); err != nil {
			return added, fmt.Errorf("import service %q: %w", svc.Slug, err)
		}
		existing[svc.Slug] = true
		added++
	}
	s.logger.Info("Imported default services", zap.Int("added", added))
	return added, nil
}

// ImportPosts adds every static post whose slug is not live yet.
func (s *ImportService) ImportPosts(ctx context.Context) (int, error) {
	live, err := s.posts.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("read live blog posts: %w", err)
	}
	existing := map[string]bool{}
	for _, p := range live {
		existing[p.Slug] = true
	}

	added := 0
	for _, p := range fallback.Posts() {
		if existing[p.Slug] {
			continue
		}
		p.ID, p.Static = "", false
		if _, err := s.posts.Add(ctx, p); err != nil {
			return added, fmt.Errorf("import post %q: %w", p.Slug, err)
		}
		existing[p.Slug] = true
		added++
	}
	s.logger.Info("Imported default blog posts", zap.Int("added", added))
	return added, nil
}

// ImportTestimonials dedupes by author name.
func (s *ImportService) ImportTestimonials(ctx context.Context) (int, error) {
	live, err := s.testimonials.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("read live testimonials: %w", err)
	}
	existing := map[string]bool{}
	for _, t := range live {
		existing[t.Name] = true
	}

	added := 0
	for _, t := range fallback.Testimonials() {
		if existing[t.Name] {
			continue
		}
		t.ID, t.Static = "", false
		if _, err := s.testimonials.Add(ctx, t); err != nil {
			return added, fmt.Errorf("import testimonial %q: %w", t.Name, err)
		}
		existing[t.Name] = true
		added++
	}
	s.logger.Info("Imported default testimonials", zap.Int("added", added))
	return added, nil
}

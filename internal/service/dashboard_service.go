package service

import (
	"context"

	"github.com/aminafridi/PhysioCare-sub000/internal/core"

	"golang.org/x/sync/errgroup"
)

const recentAppointments = 5

type DashboardService struct {
	services     core.ServiceRepository
	posts        core.BlogRepository
	testimonials core.TestimonialRepository
	appointments core.AppointmentRepository
	users        core.AdminUserRepository
}

func NewDashboardService(
	services core.ServiceRepository,
	posts core.BlogRepository,
	testimonials core.TestimonialRepository,
	appointments core.AppointmentRepository,
	users core.AdminUserRepository,
) *DashboardService {
	return &DashboardService{
		services:     services,
		posts:        posts,
		testimonials: testimonials,
		appointments: appointments,
		users:        users,
	}
}

// Stats loads every collection concurrently and counts live documents only.
func (s *DashboardService) Stats(ctx context.Context) (*core.DashboardStats, error) {
	var (
		services     []core.Service
		posts        []core.BlogPost
		testimonials []core.Testimonial
		appointments []core.Appointment
		users        []core.AdminUser
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { services = s.services.GetAll(gctx); return gctx.Err() })
	g.Go(func() error { posts = s.posts.GetAll(gctx); return gctx.Err() })
	g.Go(func() error { testimonials = s.testimonials.GetAll(gctx); return gctx.Err() })
	g.Go(func() error { appointments = s.appointments.GetAll(gctx); return gctx.Err() })
	g.Go(func() error { users = s.users.GetAll(gctx); return gctx.Err() })
	if err := g.Wait(); err != nil {
		return nil, err
	}

	stats := &core.DashboardStats{
		Services:     len(services),
		Posts:        len(posts),
		Testimonials: len(testimonials),
		Appointments: len(appointments),
		Users:        len(users),
	}
	for _, a := range appointments {
		if a.Status == core.StatusPending {
			stats.PendingAppointments++
		}
	}

	n := min(recentAppointments, len(appointments))
	stats.RecentAppointments = appointments[:n]
	return stats, nil
}

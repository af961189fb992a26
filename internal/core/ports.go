package core

import "context"

// Repository is the typed CRUD surface shared by every collection-backed entity.
// GetAll, GetByID and FindBy never fail: a missing document is nil and an
// unreadable collection is empty. List and Find report the store error for
// callers that must tell an outage from absence.
type Repository[T any] interface {
	GetAll(ctx context.Context) []T
	GetByID(ctx context.Context, id string) *T
	List(ctx context.Context) ([]T, error)
	Find(ctx context.Context, id string) (*T, error)
	FindBy(ctx context.Context, field string, value any) *T
	Add(ctx context.Context, item T) (string, error)
	Update(ctx context.Context, id string, patch Fields) error
	Edit(ctx context.Context, id string, item T) error
	Remove(ctx context.Context, id string) error
}

// SingletonRepository stores one document at a well-known id.
type SingletonRepository[T any] interface {
	Get(ctx context.Context) *T
	Save(ctx context.Context, item T) error
}

type ServiceRepository interface {
	Repository[Service]
	GetBySlug(ctx context.Context, slug string) *Service
}

type BlogRepository interface {
	Repository[BlogPost]
	GetBySlug(ctx context.Context, slug string) *BlogPost
}

type TestimonialRepository interface {
	Repository[Testimonial]
}

type AppointmentRepository interface {
	Repository[Appointment]
	UpdateStatus(ctx context.Context, id, status string) error
}

type AdminUserRepository interface {
	Repository[AdminUser]
	GetByEmail(ctx context.Context, email string) *AdminUser
}

type AboutRepository = SingletonRepository[AboutPage]
type SettingsRepository = SingletonRepository[Settings]

// CatalogService serves public content with the static fallback applied.
type CatalogService interface {
	Services(ctx context.Context) ([]Service, bool)
	ServiceBySlug(ctx context.Context, slug string) *Service
	Posts(ctx context.Context) ([]BlogPost, bool)
	PostBySlug(ctx context.Context, slug string) *BlogPost
	Testimonials(ctx context.Context) ([]Testimonial, bool)
	Conditions() []Condition
	ConditionBySlug(slug string) *Condition
	About(ctx context.Context) AboutPage
	Settings(ctx context.Context) Settings
}

// NotificationService tells staff about new appointments.
type NotificationService interface {
	NotifyNewAppointment(ctx context.Context, appt *Appointment) error
}

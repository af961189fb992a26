package core

import (
	"context"
	"time"
)

// Collection names used by every store backend.
const (
	CollectionContent      = "content"
	CollectionServices     = "services"
	CollectionBlog         = "blog"
	CollectionTestimonials = "testimonials"
	CollectionAppointments = "appointments"
	CollectionAdminUsers   = "adminUsers"
)

// Well-known singleton ids under CollectionContent.
const (
	DocAbout    = "about"
	DocSettings = "settings"
)

// Server-assigned timestamp fields. Backends stamp these on every write.
const (
	FieldCreatedAt = "createdAt"
	FieldUpdatedAt = "updatedAt"
)

// Fields is a schemaless document body (or a partial patch of one).
type Fields map[string]any

// Document is a single stored document as returned by a DocumentStore.
type Document struct {
	ID        string
	Fields    Fields
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Order requests a sort on a single field.
type Order struct {
	Field string
	Desc  bool
}

// OrderBy is a small helper for building ascending/descending orders.
func OrderBy(field string, desc bool) *Order {
	return &Order{Field: field, Desc: desc}
}

// DocumentStore is the thin binding to the remote schemaless store.
//
// Get and FindOne report a missing document with ErrNotFound and nothing else.
// FindOne returns the first match in store order; uniqueness of the matched
// field is never enforced. Merge leaves fields absent from the patch untouched.
// Delete is idempotent.
type DocumentStore interface {
	Get(ctx context.Context, collection, id string) (Document, error)
	List(ctx context.Context, collection string, order *Order) ([]Document, error)
	FindOne(ctx context.Context, collection, field string, value any) (Document, error)
	Create(ctx context.Context, collection string, fields Fields) (string, error)
	Put(ctx context.Context, collection, id string, fields Fields) error
	Merge(ctx context.Context, collection, id string, patch Fields) error
	Delete(ctx context.Context, collection, id string) error
	Close(ctx context.Context) error
}

// Clone returns a shallow copy of f.
func (f Fields) Clone() Fields {
	out := make(Fields, len(f))
	for k, v := range f {
		out[k] = v
	}
	return out
}

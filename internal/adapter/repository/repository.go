package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/aminafridi/PhysioCare-sub000/internal/core"

	"go.uber.org/zap"
)

// EntityConfig binds a domain type to its collection.
type EntityConfig[T any] struct {
	Collection string
	Order      *core.Order // nil = store order
	Decode     func(core.Document) T
	Encode     func(T) core.Fields
}

// Repo is the collection-backed CRUD shared by every entity. Reads log and
// swallow store errors; writes return them.
type Repo[T any] struct {
	store  core.DocumentStore
	cfg    EntityConfig[T]
	logger *zap.Logger
}

func NewRepo[T any](store core.DocumentStore, cfg EntityConfig[T], logger *zap.Logger) *Repo[T] {
	return &Repo[T]{store: store, cfg: cfg, logger: logger}
}

func (r *Repo[T]) GetAll(ctx context.Context) []T {
	items, err := r.List(ctx)
	if err != nil {
		r.logger.Error("Failed to list documents",
			zap.String("collection", r.cfg.Collection),
			zap.Error(err),
		)
		return []T{}
	}
	return items
}

// List is GetAll with the store error passed through.
func (r *Repo[T]) List(ctx context.Context) ([]T, error) {
	docs, err := r.store.List(ctx, r.cfg.Collection, r.cfg.Order)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", r.cfg.Collection, err)
	}

	items := make([]T, 0, len(docs))
	for _, doc := range docs {
		items = append(items, r.cfg.Decode(doc))
	}
	return items, nil
}

func (r *Repo[T]) GetByID(ctx context.Context, id string) *T {
	item, err := r.Find(ctx, id)
	if err != nil {
		r.logReadError("get", err, zap.String("id", id))
		return nil
	}
	return item
}

// Find is GetByID with the store error passed through. A missing document
// (or an empty id) wraps core.ErrNotFound.
func (r *Repo[T]) Find(ctx context.Context, id string) (*T, error) {
	if id == "" {
		return nil, fmt.Errorf("get %s: %w", r.cfg.Collection, core.ErrNotFound)
	}
	doc, err := r.store.Get(ctx, r.cfg.Collection, id)
	if err != nil {
		return nil, fmt.Errorf("get %s/%s: %w", r.cfg.Collection, id, err)
	}
	item := r.cfg.Decode(doc)
	return &item, nil
}

// FindBy returns the first document whose field equals value.
func (r *Repo[T]) FindBy(ctx context.Context, field string, value any) *T {
	doc, err := r.store.FindOne(ctx, r.cfg.Collection, field, value)
	if err != nil {
		r.logReadError("find", err, zap.String("field", field), zap.Any("value", value))
		return nil
	}
	item := r.cfg.Decode(doc)
	return &item
}

func (r *Repo[T]) Add(ctx context.Context, item T) (string, error) {
	id, err := r.store.Create(ctx, r.cfg.Collection, r.cfg.Encode(item))
	if err != nil {
		return "", fmt.Errorf("create %s: %w", r.cfg.Collection, err)
	}
	return id, nil
}

// Update merges patch into the document; other fields are left as stored.
func (r *Repo[T]) Update(ctx context.Context, id string, patch core.Fields) error {
	if err := r.store.Merge(ctx, r.cfg.Collection, id, patch); err != nil {
		return fmt.Errorf("update %s/%s: %w", r.cfg.Collection, id, err)
	}
	return nil
}

// Edit merges every encoded field of item into the document.
func (r *Repo[T]) Edit(ctx context.Context, id string, item T) error {
	return r.Update(ctx, id, r.cfg.Encode(item))
}

func (r *Repo[T]) Remove(ctx context.Context, id string) error {
	if err := r.store.Delete(ctx, r.cfg.Collection, id); err != nil {
		return fmt.Errorf("delete %s/%s: %w", r.cfg.Collection, id, err)
	}
	return nil
}

func (r *Repo[T]) logReadError(op string, err error, fields ...zap.Field) {
	fields = append(fields, zap.String("collection", r.cfg.Collection), zap.Error(err))
	if errors.Is(err, core.ErrNotFound) {
		r.logger.Debug("Document not found", fields...)
		return
	}
	r.logger.Error("Failed to "+op+" document", fields...)
}

// Singleton stores a single document at a fixed id and replaces it whole on save.
type Singleton[T any] struct {
	store  core.DocumentStore
	cfg    EntityConfig[T]
	id     string
	logger *zap.Logger
}

func NewSingleton[T any](store core.DocumentStore, cfg EntityConfig[T], id string, logger *zap.Logger) *Singleton[T] {
	return &Singleton[T]{store: store, cfg: cfg, id: id, logger: logger}
}

// Get returns nil when the document has never been saved or cannot be read.
func (s *Singleton[T]) Get(ctx context.Context) *T {
	doc, err := s.store.Get(ctx, s.cfg.Collection, s.id)
	if err != nil {
		if !errors.Is(err, core.ErrNotFound) {
			s.logger.Error("Failed to read singleton",
				zap.String("collection", s.cfg.Collection),
				zap.String("id", s.id),
				zap.Error(err),
			)
		}
		return nil
	}
	item := s.cfg.Decode(doc)
	return &item
}

func (s *Singleton[T]) Save(ctx context.Context, item T) error {
	if err := s.store.Put(ctx, s.cfg.Collection, s.id, s.cfg.Encode(item)); err != nil {
		return fmt.Errorf("save %s/%s: %w", s.cfg.Collection, s.id, err)
	}
	return nil
}

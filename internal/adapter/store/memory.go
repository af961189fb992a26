package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/aminafridi/PhysioCare-sub000/internal/core"

	"github.com/google/uuid"
)

type memoryDoc struct {
	id      string
	fields  core.Fields
	created time.Time
	updated time.Time
	seq     uint64 // insertion order, breaks createdAt ties
}

// MemoryStore keeps documents in process memory. Used for local development
// and tests; nothing survives a restart.
type MemoryStore struct {
	mu          sync.RWMutex
	collections map[string]map[string]*memoryDoc
	seq         uint64
	now         func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		collections: map[string]map[string]*memoryDoc{},
		now:         time.Now,
	}
}

func (s *MemoryStore) Get(_ context.Context, collection, id string) (core.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	d, ok := s.collections[collection][id]
	if !ok {
		return core.Document{}, core.ErrNotFound
	}
	return d.export(), nil
}

func (s *MemoryStore) List(_ context.Context, collection string, order *core.Order) ([]core.Document, error) {
	s.mu.RLock()
	docs := make([]*memoryDoc, 0, len(s.collections[collection]))
	for _, d := range s.collections[collection] {
		docs = append(docs, d)
	}
	s.mu.RUnlock()

	// Store-defined order is insertion order.
	sort.Slice(docs, func(i, j int) bool { return docs[i].seq < docs[j].seq })
	if order != nil {
		sort.SliceStable(docs, func(i, j int) bool {
			c := compareValues(docs[i].value(order.Field), docs[j].value(order.Field))
			if c == 0 {
				c = compareValues(docs[i].seq, docs[j].seq)
			}
			if order.Desc {
				return c > 0
			}
			return c < 0
		})
	}

	out := make([]core.Document, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.export())
	}
	return out, nil
}

func (s *MemoryStore) FindOne(ctx context.Context, collection, field string, value any) (core.Document, error) {
	docs, err := s.List(ctx, collection, nil)
	if err != nil {
		return core.Document{}, err
	}
	for _, d := range docs {
		if compareValues(d.Fields[field], value) == 0 && d.Fields[field] != nil {
			return d, nil
		}
	}
	return core.Document{}, core.ErrNotFound
}

func (s *MemoryStore) Create(_ context.Context, collection string, fields core.Fields) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := uuid.NewString()
	now := s.now()
	s.seq++
	s.bucket(collection)[id] = &memoryDoc{
		id:      id,
		fields:  stripTimestamps(fields),
		created: now,
		updated: now,
		seq:     s.seq,
	}
	return id, nil
}

func (s *MemoryStore) Put(_ context.Context, collection, id string, fields core.Fields) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	b := s.bucket(collection)
	if d, ok := b[id]; ok {
		d.fields = stripTimestamps(fields)
		d.updated = now
		return nil
	}
	s.seq++
	b[id] = &memoryDoc{id: id, fields: stripTimestamps(fields), created: now, updated: now, seq: s.seq}
	return nil
}

func (s *MemoryStore) Merge(_ context.Context, collection, id string, patch core.Fields) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, ok := s.collections[collection][id]
	if !ok {
		return core.ErrNotFound
	}
	merged := d.fields.Clone()
	for k, v := range stripTimestamps(patch) {
		merged[k] = v
	}
	d.fields = merged
	d.updated = s.now()
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, collection, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.collections[collection], id)
	return nil
}

func (s *MemoryStore) Close(context.Context) error { return nil }

func (s *MemoryStore) bucket(collection string) map[string]*memoryDoc {
	b, ok := s.collections[collection]
	if !ok {
		b = map[string]*memoryDoc{}
		s.collections[collection] = b
	}
	return b
}

func (d *memoryDoc) value(field string) any {
	switch field {
	case core.FieldCreatedAt:
		return d.created
	case core.FieldUpdatedAt:
		return d.updated
	}
	return d.fields[field]
}

func (d *memoryDoc) export() core.Document {
	return core.Document{
		ID:        d.id,
		Fields:    d.fields.Clone(),
		CreatedAt: d.created,
		UpdatedAt: d.updated,
	}
}

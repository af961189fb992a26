package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/aminafridi/PhysioCare-sub000/internal/core"
	"github.com/aminafridi/PhysioCare-sub000/pkg/cache"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	cacheKeyPrefix = "physiocare:list:"
	genKeyPrefix   = "physiocare:gen:"
)

// CachedStore is a read-through cache in front of another DocumentStore.
// Only List results are cached; Get and FindOne always reach the backend so
// logins and edits never act on stale documents. Any write to a collection
// bumps its generation, which is part of every list key, so a listing read
// before the write can never be cached under the key readers use after it.
type CachedStore struct {
	next   core.DocumentStore
	kv     cache.KV
	ttl    time.Duration
	logger *zap.Logger
}

func NewCachedStore(next core.DocumentStore, kv cache.KV, ttl time.Duration, logger *zap.Logger) *CachedStore {
	return &CachedStore{next: next, kv: kv, ttl: ttl, logger: logger}
}

func (s *CachedStore) Get(ctx context.Context, collection, id string) (core.Document, error) {
	return s.next.Get(ctx, collection, id)
}

func (s *CachedStore) List(ctx context.Context, collection string, order *core.Order) ([]core.Document, error) {
	key := listKey(collection, s.generation(ctx, collection), order)

	raw, err := s.kv.Get(ctx, key)
	if err == nil {
		var docs []core.Document
		if jsonErr := json.Unmarshal([]byte(raw), &docs); jsonErr == nil {
			return docs, nil
		}
		s.logger.Warn("Discarding undecodable cache entry", zap.String("key", key))
	} else if !errors.Is(err, cache.ErrMiss) {
		s.logger.Warn("Cache read failed", zap.String("key", key), zap.Error(err))
	}

	docs, err := s.next.List(ctx, collection, order)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(docs); err == nil {
		if err := s.kv.Set(ctx, key, string(data), s.ttl); err != nil {
			s.logger.Warn("Cache write failed", zap.String("key", key), zap.Error(err))
		}
	}
	return docs, nil
}

func (s *CachedStore) FindOne(ctx context.Context, collection, field string, value any) (core.Document, error) {
	return s.next.FindOne(ctx, collection, field, value)
}

func (s *CachedStore) Create(ctx context.Context, collection string, fields core.Fields) (string, error) {
	id, err := s.next.Create(ctx, collection, fields)
	s.invalidate(ctx, collection)
	return id, err
}

func (s *CachedStore) Put(ctx context.Context, collection, id string, fields core.Fields) error {
	err := s.next.Put(ctx, collection, id, fields)
	s.invalidate(ctx, collection)
	return err
}

func (s *CachedStore) Merge(ctx context.Context, collection, id string, patch core.Fields) error {
	err := s.next.Merge(ctx, collection, id, patch)
	s.invalidate(ctx, collection)
	return err
}

func (s *CachedStore) Delete(ctx context.Context, collection, id string) error {
	err := s.next.Delete(ctx, collection, id)
	s.invalidate(ctx, collection)
	return err
}

// Close closes the backend and, when it holds a connection, the cache.
func (s *CachedStore) Close(ctx context.Context) error {
	err := s.next.Close(ctx)
	if c, ok := s.kv.(io.Closer); ok {
		err = errors.Join(err, c.Close())
	}
	return err
}

// generation returns the collection's current cache generation, "0" until
// the first write.
func (s *CachedStore) generation(ctx context.Context, collection string) string {
	gen, err := s.kv.Get(ctx, genKeyPrefix+collection)
	if err != nil {
		if !errors.Is(err, cache.ErrMiss) {
			s.logger.Warn("Cache generation read failed", zap.String("collection", collection), zap.Error(err))
		}
		return "0"
	}
	return gen
}

// invalidate also runs after a failed write, which may have partially applied.
// Older generations are deleted so they do not linger until their TTL.
func (s *CachedStore) invalidate(ctx context.Context, collection string) {
	ctx = context.WithoutCancel(ctx)
	if err := s.kv.Set(ctx, genKeyPrefix+collection, uuid.NewString(), 0); err != nil {
		s.logger.Warn("Cache generation bump failed", zap.String("collection", collection), zap.Error(err))
	}

	keys, err := s.kv.ScanKeys(ctx, cacheKeyPrefix+collection+":*")
	if err != nil {
		s.logger.Warn("Cache scan failed", zap.String("collection", collection), zap.Error(err))
		return
	}
	if err := s.kv.Del(ctx, keys...); err != nil {
		s.logger.Warn("Cache invalidation failed", zap.String("collection", collection), zap.Error(err))
	}
}

func listKey(collection, gen string, order *core.Order) string {
	if order == nil {
		return fmt.Sprintf("%s%s:%s:_", cacheKeyPrefix, collection, gen)
	}
	dir := "asc"
	if order.Desc {
		dir = "desc"
	}
	return fmt.Sprintf("%s%s:%s:%s:%s", cacheKeyPrefix, collection, gen, order.Field, dir)
}

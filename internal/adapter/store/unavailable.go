package store

import (
	"context"
	"fmt"

	"github.com/aminafridi/PhysioCare-sub000/internal/core"
)

// UnavailableStore stands in for a backend that could not be opened. Every
// call fails with core.ErrStoreUnavailable wrapping the open error, so reads
// fall back to built-in content and writes report the outage.
type UnavailableStore struct {
	err error
}

func NewUnavailableStore(cause error) *UnavailableStore {
	return &UnavailableStore{err: fmt.Errorf("%w: %w", core.ErrStoreUnavailable, cause)}
}

func (s *UnavailableStore) Get(context.Context, string, string) (core.Document, error) {
	return core.Document{}, s.err
}

func (s *UnavailableStore) List(context.Context, string, *core.Order) ([]core.Document, error) {
	return nil, s.err
}

func (s *UnavailableStore) FindOne(context.Context, string, string, any) (core.Document, error) {
	return core.Document{}, s.err
}

func (s *UnavailableStore) Create(context.Context, string, core.Fields) (string, error) {
	return "", s.err
}

func (s *UnavailableStore) Put(context.Context, string, string, core.Fields) error { return s.err }

func (s *UnavailableStore) Merge(context.Context, string, string, core.Fields) error { return s.err }

func (s *UnavailableStore) Delete(context.Context, string, string) error { return s.err }

func (s *UnavailableStore) Close(context.Context) error { return nil }

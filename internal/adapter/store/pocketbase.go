package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"

	"github.com/aminafridi/PhysioCare-sub000/internal/core"

	"github.com/pocketbase/dbx"
	pbCore "github.com/pocketbase/pocketbase/core"
	"github.com/pocketbase/pocketbase/tools/types"
)

var fieldNamePattern = regexp.MustCompile(`^\w+$`)

// PBStore stores documents as records of PocketBase collections created by
// the migrations package. Collection fields mirror the document keys; keys
// without a matching collection field are not persisted.
type PBStore struct {
	app pbCore.App
}

func NewPBStore(app pbCore.App) *PBStore {
	return &PBStore{app: app}
}

func (s *PBStore) Get(ctx context.Context, collection, id string) (core.Document, error) {
	if err := ctx.Err(); err != nil {
		return core.Document{}, err
	}
	record, err := s.app.FindRecordById(collection, id)
	if err != nil {
		return core.Document{}, mapPBError(err)
	}
	return s.toDocument(record), nil
}

func (s *PBStore) List(ctx context.Context, collection string, order *core.Order) ([]core.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	sort := ""
	if order != nil {
		if !fieldNamePattern.MatchString(order.Field) {
			return nil, fmt.Errorf("invalid sort field %q", order.Field)
		}
		sort = "+" + order.Field
		if order.Desc {
			sort = "-" + order.Field
		}
	}

	records, err := s.app.FindRecordsByFilter(collection, "", sort, 0, 0)
	if err != nil {
		return nil, err
	}

	docs := make([]core.Document, 0, len(records))
	for _, rec := range records {
		docs = append(docs, s.toDocument(rec))
	}
	return docs, nil
}

func (s *PBStore) FindOne(ctx context.Context, collection, field string, value any) (core.Document, error) {
	if err := ctx.Err(); err != nil {
		return core.Document{}, err
	}
	if !fieldNamePattern.MatchString(field) {
		return core.Document{}, fmt.Errorf("invalid filter field %q", field)
	}

	record, err := s.app.FindFirstRecordByFilter(
		collection,
		field+" = {:value}",
		dbx.Params{"value": value},
	)
	if err != nil {
		return core.Document{}, mapPBError(err)
	}
	return s.toDocument(record), nil
}

func (s *PBStore) Create(ctx context.Context, collection string, fields core.Fields) (string, error) {
	col, err := s.app.FindCollectionByNameOrId(collection)
	if err != nil {
		return "", err
	}

	record := pbCore.NewRecord(col)
	for k, v := range stripTimestamps(fields) {
		record.Set(k, v)
	}

	if err := s.app.SaveWithContext(ctx, record); err != nil {
		return "", err
	}
	return record.Id, nil
}

func (s *PBStore) Put(ctx context.Context, collection, id string, fields core.Fields) error {
	col, err := s.app.FindCollectionByNameOrId(collection)
	if err != nil {
		return err
	}

	record, err := s.app.FindRecordById(col, id)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			return err
		}
		record = pbCore.NewRecord(col)
		record.Set(pbCore.FieldNameId, id)
	}

	// Whole-document replace: clear every user field the body does not carry.
	body := stripTimestamps(fields)
	for _, f := range col.Fields {
		name := f.GetName()
		if f.GetSystem() || name == pbCore.FieldNameId || isTimestampField(name) {
			continue
		}
		if v, ok := body[name]; ok {
			record.Set(name, v)
		} else {
			record.Set(name, nil)
		}
	}

	return s.app.SaveWithContext(ctx, record)
}

func (s *PBStore) Merge(ctx context.Context, collection, id string, patch core.Fields) error {
	record, err := s.app.FindRecordById(collection, id)
	if err != nil {
		return mapPBError(err)
	}
	for k, v := range stripTimestamps(patch) {
		record.Set(k, v)
	}
	return s.app.SaveWithContext(ctx, record)
}

func (s *PBStore) Delete(ctx context.Context, collection, id string) error {
	record, err := s.app.FindRecordById(collection, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil
		}
		return err
	}
	return s.app.DeleteWithContext(ctx, record)
}

// Close is a no-op: the PocketBase app owns its database handles.
func (s *PBStore) Close(context.Context) error { return nil }

// Mapper: Record -> Document
func (s *PBStore) toDocument(record *pbCore.Record) core.Document {
	doc := core.Document{
		ID:     record.Id,
		Fields: core.Fields{},
	}

	for _, f := range record.Collection().Fields {
		name := f.GetName()
		switch {
		case name == pbCore.FieldNameId:
			continue
		case name == core.FieldCreatedAt:
			doc.CreatedAt = record.GetDateTime(name).Time()
			continue
		case name == core.FieldUpdatedAt:
			doc.UpdatedAt = record.GetDateTime(name).Time()
			continue
		}

		switch v := record.Get(name).(type) {
		case types.JSONRaw:
			if len(v) == 0 {
				continue
			}
			var decoded any
			if err := json.Unmarshal(v, &decoded); err == nil && decoded != nil {
				doc.Fields[name] = decoded
			}
		case types.DateTime:
			if !v.IsZero() {
				doc.Fields[name] = v.Time()
			}
		default:
			doc.Fields[name] = v
		}
	}

	return doc
}

func mapPBError(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return core.ErrNotFound
	}
	return err
}

func isTimestampField(name string) bool {
	return name == core.FieldCreatedAt || name == core.FieldUpdatedAt
}

package store

import (
	"context"
	"fmt"
	"time"

	"github.com/aminafridi/PhysioCare-sub000/internal/core"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// FirestoreStore talks to Cloud Firestore through the Firebase Admin SDK.
type FirestoreStore struct {
	client *firestore.Client
}

// NewFirestoreStore opens a client for projectID. credentialsPath may be empty
// when application default credentials or FIRESTORE_EMULATOR_HOST are in use.
func NewFirestoreStore(ctx context.Context, projectID, credentialsPath string) (*FirestoreStore, error) {
	var opts []option.ClientOption
	if credentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsPath))
	}

	var conf *firebase.Config
	if projectID != "" {
		conf = &firebase.Config{ProjectID: projectID}
	}

	app, err := firebase.NewApp(ctx, conf, opts...)
	if err != nil {
		return nil, fmt.Errorf("error initializing firebase app: %w", err)
	}

	client, err := app.Firestore(ctx)
	if err != nil {
		return nil, fmt.Errorf("error getting firestore client: %w", err)
	}

	return &FirestoreStore{client: client}, nil
}

func (s *FirestoreStore) Get(ctx context.Context, collection, id string) (core.Document, error) {
	snap, err := s.client.Collection(collection).Doc(id).Get(ctx)
	if err != nil {
		return core.Document{}, mapFirestoreError(err)
	}
	return snapshotToDocument(snap), nil
}

func (s *FirestoreStore) List(ctx context.Context, collection string, order *core.Order) ([]core.Document, error) {
	q := s.client.Collection(collection).Query
	if order != nil {
		dir := firestore.Asc
		if order.Desc {
			dir = firestore.Desc
		}
		q = q.OrderBy(order.Field, dir)
	}

	snaps, err := q.Documents(ctx).GetAll()
	if err != nil {
		return nil, err
	}

	docs := make([]core.Document, 0, len(snaps))
	for _, snap := range snaps {
		docs = append(docs, snapshotToDocument(snap))
	}
	return docs, nil
}

func (s *FirestoreStore) FindOne(ctx context.Context, collection, field string, value any) (core.Document, error) {
	snaps, err := s.client.Collection(collection).
		Where(field, "==", value).
		Limit(1).
		Documents(ctx).
		GetAll()
	if err != nil {
		return core.Document{}, err
	}
	if len(snaps) == 0 {
		return core.Document{}, core.ErrNotFound
	}
	return snapshotToDocument(snaps[0]), nil
}

func (s *FirestoreStore) Create(ctx context.Context, collection string, fields core.Fields) (string, error) {
	body := map[string]any(stripTimestamps(fields))
	body[core.FieldCreatedAt] = firestore.ServerTimestamp
	body[core.FieldUpdatedAt] = firestore.ServerTimestamp

	ref, _, err := s.client.Collection(collection).Add(ctx, body)
	if err != nil {
		return "", err
	}
	return ref.ID, nil
}

func (s *FirestoreStore) Put(ctx context.Context, collection, id string, fields core.Fields) error {
	ref := s.client.Collection(collection).Doc(id)

	body := map[string]any(stripTimestamps(fields))
	body[core.FieldUpdatedAt] = firestore.ServerTimestamp

	// Keep the original creation time across replaces.
	if snap, err := ref.Get(ctx); err == nil {
		if created, ok := snap.Data()[core.FieldCreatedAt]; ok {
			body[core.FieldCreatedAt] = created
		}
	} else if status.Code(err) != codes.NotFound {
		return err
	}
	if _, ok := body[core.FieldCreatedAt]; !ok {
		body[core.FieldCreatedAt] = firestore.ServerTimestamp
	}

	_, err := ref.Set(ctx, body)
	return err
}

func (s *FirestoreStore) Merge(ctx context.Context, collection, id string, patch core.Fields) error {
	updates := make([]firestore.Update, 0, len(patch)+1)
	for k, v := range stripTimestamps(patch) {
		updates = append(updates, firestore.Update{FieldPath: firestore.FieldPath{k}, Value: v})
	}
	updates = append(updates, firestore.Update{
		FieldPath: firestore.FieldPath{core.FieldUpdatedAt},
		Value:     firestore.ServerTimestamp,
	})

	_, err := s.client.Collection(collection).Doc(id).Update(ctx, updates)
	return mapFirestoreError(err)
}

func (s *FirestoreStore) Delete(ctx context.Context, collection, id string) error {
	_, err := s.client.Collection(collection).Doc(id).Delete(ctx)
	return err
}

func (s *FirestoreStore) Close(context.Context) error {
	return s.client.Close()
}

func snapshotToDocument(snap *firestore.DocumentSnapshot) core.Document {
	data := snap.Data()
	doc := core.Document{
		ID:     snap.Ref.ID,
		Fields: core.Fields{},
	}
	for k, v := range data {
		switch k {
		case core.FieldCreatedAt:
			doc.CreatedAt, _ = v.(time.Time)
		case core.FieldUpdatedAt:
			doc.UpdatedAt, _ = v.(time.Time)
		default:
			doc.Fields[k] = v
		}
	}
	if doc.CreatedAt.IsZero() {
		doc.CreatedAt = snap.CreateTime
	}
	if doc.UpdatedAt.IsZero() {
		doc.UpdatedAt = snap.UpdateTime
	}
	return doc
}

func mapFirestoreError(err error) error {
	if err == nil {
		return nil
	}
	if status.Code(err) == codes.NotFound {
		return core.ErrNotFound
	}
	return err
}

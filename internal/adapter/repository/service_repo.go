package repository

import (
	"context"

	"github.com/aminafridi/PhysioCare-sub000/internal/core"

	"go.uber.org/zap"
)

type ServiceRepo struct {
	*Repo[core.Service]
}

func NewServiceRepo(store core.DocumentStore, logger *zap.Logger) core.ServiceRepository {
	return &ServiceRepo{NewRepo(store, serviceConfig, logger)}
}

func (r *ServiceRepo) GetBySlug(ctx context.Context, slug string) *core.Service {
	if slug == "" {
		return nil
	}
	return r.FindBy(ctx, "slug", slug)
}

var serviceConfig = EntityConfig[core.Service]{
	Collection: core.CollectionServices,
	Order:      core.OrderBy("order", false),
	Decode:     decodeService,
	Encode:     encodeService,
}

// Mapper: Document -> Domain
func decodeService(doc core.Document) core.Service {
	f := doc.Fields
	return core.Service{
		ID:               doc.ID,
		Title:            str(f, "title"),
		ShortDescription: str(f, "shortDescription"),
		FullDescription:  str(f, "fullDescription"),
		WhoIsItFor:       str(f, "whoIsItFor"),
		Benefits:         strs(f, "benefits"),
		IconName:         str(f, "iconName"),
		Slug:             str(f, "slug"),
		Order:            num(f, "order"),
		ImageURL:         str(f, "imageUrl"),
		Created:          doc.CreatedAt,
		Updated:          doc.UpdatedAt,
	}
}

func encodeService(s core.Service) core.Fields {
	return core.Fields{
		"title":            s.Title,
		"shortDescription": s.ShortDescription,
		"fullDescription":  s.FullDescription,
		"whoIsItFor":       s.WhoIsItFor,
		"benefits":         list(s.Benefits),
		"iconName":         s.IconName,
		"slug":             s.Slug,
		"order":            s.Order,
		"imageUrl":         s.ImageURL,
	}
}

package repository

import (
	"github.com/aminafridi/PhysioCare-sub000/internal/core"

	"go.uber.org/zap"
)

type TestimonialRepo struct {
	*Repo[core.Testimonial]
}

func NewTestimonialRepo(store core.DocumentStore, logger *zap.Logger) core.TestimonialRepository {
	return &TestimonialRepo{NewRepo(store, testimonialConfig, logger)}
}

var testimonialConfig = EntityConfig[core.Testimonial]{
	Collection: core.CollectionTestimonials,
	Order:      core.OrderBy(core.FieldCreatedAt, true),
	Decode: func(doc core.Document) core.Testimonial {
		f := doc.Fields
		return core.Testimonial{
			ID:      doc.ID,
			Name:    str(f, "name"),
			Role:    str(f, "role"),
			Content: str(f, "content"),
			Rating:  num(f, "rating"),
			Created: doc.CreatedAt,
			Updated: doc.UpdatedAt,
		}
	},
	Encode: func(t core.Testimonial) core.Fields {
		return core.Fields{
			"name":    t.Name,
			"role":    t.Role,
			"content": t.Content,
			"rating":  t.Rating,
		}
	},
}

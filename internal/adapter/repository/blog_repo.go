package repository

import (
	"context"

	"github.com/aminafridi/PhysioCare-sub000/internal/core"

	"go.uber.org/zap"
)

type BlogRepo struct {
	*Repo[core.BlogPost]
}

func NewBlogRepo(store core.DocumentStore, logger *zap.Logger) core.BlogRepository {
	return &BlogRepo{NewRepo(store, blogConfig, logger)}
}

func (r *BlogRepo) GetBySlug(ctx context.Context, slug string) *core.BlogPost {
	if slug == "" {
		return nil
	}
	return r.FindBy(ctx, "slug", slug)
}

var blogConfig = EntityConfig[core.BlogPost]{
	Collection: core.CollectionBlog,
	Order:      core.OrderBy(core.FieldCreatedAt, true),
	Decode: func(doc core.Document) core.BlogPost {
		f := doc.Fields
		return core.BlogPost{
			ID:       doc.ID,
			Title:    str(f, "title"),
			Slug:     str(f, "slug"),
			Excerpt:  str(f, "excerpt"),
			Content:  str(f, "content"),
			Category: str(f, "category"),
			Author:   str(f, "author"),
			Date:     str(f, "date"),
			ReadTime: str(f, "readTime"),
			ImageURL: str(f, "imageUrl"),
			Created:  doc.CreatedAt,
			Updated:  doc.UpdatedAt,
		}
	},
	Encode: func(p core.BlogPost) core.Fields {
		return core.Fields{
			"title":    p.Title,
			"slug":     p.Slug,
			"excerpt":  p.Excerpt,
			"content":  p.Content,
			"category": p.Category,
			"author":   p.Author,
			"date":     p.Date,
			"readTime": p.ReadTime,
			"imageUrl": p.ImageURL,
		}
	},
}

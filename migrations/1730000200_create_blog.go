package migrations

import (
	"github.com/pocketbase/pocketbase/core"
	m "github.com/pocketbase/pocketbase/migrations"
)

func init() {
	m.Register(func(app core.App) error {
		blog := core.NewBaseCollection("blog")

		blog.Fields.Add(&core.TextField{Name: "title"})
		blog.Fields.Add(&core.TextField{Name: "slug"})
		blog.Fields.Add(&core.TextField{Name: "excerpt", Max: 2000})
		blog.Fields.Add(&core.TextField{Name: "content", Max: 200000}) // raw HTML
		blog.Fields.Add(&core.TextField{Name: "category"})
		blog.Fields.Add(&core.TextField{Name: "author"})
		blog.Fields.Add(&core.TextField{Name: "date"})
		blog.Fields.Add(&core.TextField{Name: "readTime"})
		blog.Fields.Add(&core.TextField{Name: "imageUrl", Max: imageURLMaxChars})
		addTimestamps(blog)

		blog.AddIndex("idx_blog_slug", false, "slug", "")

		return createIfMissing(app, blog)
	}, func(app core.App) error {
		return dropIfExists(app, "blog")
	})
}

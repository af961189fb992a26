package repository

import (
	"github.com/aminafridi/PhysioCare-sub000/internal/core"

	"go.uber.org/zap"
)

func NewAboutRepo(store core.DocumentStore, logger *zap.Logger) core.AboutRepository {
	return NewSingleton(store, aboutConfig, core.DocAbout, logger)
}

var aboutConfig = EntityConfig[core.AboutPage]{
	Collection: core.CollectionContent,
	Decode: func(doc core.Document) core.AboutPage {
		f := doc.Fields
		return core.AboutPage{
			Name:           str(f, "name"),
			Title:          str(f, "title"),
			Experience:     str(f, "experience"),
			Bio:            str(f, "bio"),
			Qualifications: strs(f, "qualifications"),
			Mission:        str(f, "mission"),
			Vision:         str(f, "vision"),
			ImageURL:       str(f, "imageUrl"),
		}
	},
	Encode: func(a core.AboutPage) core.Fields {
		return core.Fields{
			"name":           a.Name,
			"title":          a.Title,
			"experience":     a.Experience,
			"bio":            a.Bio,
			"qualifications": list(a.Qualifications),
			"mission":        a.Mission,
			"vision":         a.Vision,
			"imageUrl":       a.ImageURL,
		}
	},
}

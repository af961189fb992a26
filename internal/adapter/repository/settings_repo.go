package repository

import (
	"github.com/aminafridi/PhysioCare-sub000/internal/core"

	"go.uber.org/zap"
)

// NewSettingsRepo stores clinic settings at content/settings. A nil Get means
// the caller should fall back to core.DefaultSettings.
func NewSettingsRepo(store core.DocumentStore, logger *zap.Logger) core.SettingsRepository {
	return NewSingleton(store, settingsConfig, core.DocSettings, logger)
}

var settingsConfig = EntityConfig[core.Settings]{
	Collection: core.CollectionContent,
	Decode: func(doc core.Document) core.Settings {
		f := doc.Fields
		hours := sub(f, "workingHours")
		social := sub(f, "socialMedia")
		return core.Settings{
			ClinicName: str(f, "clinicName"),
			Tagline:    str(f, "tagline"),
			Phone:      str(f, "phone"),
			Email:      str(f, "email"),
			Address:    str(f, "address"),
			WorkingHours: core.WorkingHours{
				Weekdays: str(hours, "weekdays"),
				Saturday: str(hours, "saturday"),
				Sunday:   str(hours, "sunday"),
			},
			SocialMedia: core.SocialMedia{
				Facebook:  str(social, "facebook"),
				Twitter:   str(social, "twitter"),
				Instagram: str(social, "instagram"),
				LinkedIn:  str(social, "linkedin"),
			},
		}
	},
	Encode: func(s core.Settings) core.Fields {
		return core.Fields{
			"clinicName": s.ClinicName,
			"tagline":    s.Tagline,
			"phone":      s.Phone,
			"email":      s.Email,
			"address":    s.Address,
			"workingHours": map[string]any{
				"weekdays": s.WorkingHours.Weekdays,
				"saturday": s.WorkingHours.Saturday,
				"sunday":   s.WorkingHours.Sunday,
			},
			"socialMedia": map[string]any{
				"facebook":  s.SocialMedia.Facebook,
				"twitter":   s.SocialMedia.Twitter,
				"instagram": s.SocialMedia.Instagram,
				"linkedin":  s.SocialMedia.LinkedIn,
			},
		}
	},
}

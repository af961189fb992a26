package core

// AboutPage is the singleton stored at content/about.
type AboutPage struct {
	Name           string   `json:"name" validate:"required"`
	Title          string   `json:"title"`
	Experience     string   `json:"experience"`
	Bio            string   `json:"bio"`
	Qualifications []string `json:"qualifications"`
	Mission        string   `json:"mission"`
	Vision         string   `json:"vision"`
	ImageURL       string   `json:"imageUrl,omitempty"`
}

type WorkingHours struct {
	Weekdays string `json:"weekdays"`
	Saturday string `json:"saturday"`
	Sunday   string `json:"sunday"`
}

type SocialMedia struct {
	Facebook  string `json:"facebook"`
	Twitter   string `json:"twitter"`
	Instagram string `json:"instagram"`
	LinkedIn  string `json:"linkedin"`
}

// Settings is the singleton stored at content/settings.
type Settings struct {
	ClinicName   string       `json:"clinicName" validate:"required"`
	Tagline      string       `json:"tagline"`
	Phone        string       `json:"phone"`
	Email        string       `json:"email" validate:"omitempty,email"`
	Address      string       `json:"address"`
	WorkingHours WorkingHours `json:"workingHours"`
	SocialMedia  SocialMedia  `json:"socialMedia"`
}

// DefaultSettings is used whenever the settings document is missing or unreadable.
func DefaultSettings() Settings {
	return Settings{
		ClinicName: "PhysioCare Clinic",
		Tagline:    "Move better, live better",
		Phone:      "+1 (555) 123-4567",
		Email:      "info@physiocare.com",
		Address:    "123 Wellness Avenue, Suite 200",
		WorkingHours: WorkingHours{
			Weekdays: "8:00 AM - 7:00 PM",
			Saturday: "9:00 AM - 2:00 PM",
			Sunday:   "Closed",
		},
	}
}

// DefaultAbout is shown when the about document has never been saved.
func DefaultAbout() AboutPage {
	return AboutPage{
		Name:       "Dr. Sarah Mitchell",
		Title:      "Lead Physiotherapist, DPT",
		Experience: "15+ years",
		Bio: "Sarah has spent over fifteen years helping patients recover from injury, " +
			"surgery and chronic pain with evidence-based, hands-on care.",
		Qualifications: []string{
			"Doctor of Physical Therapy (DPT)",
			"Certified Manual Therapist",
			"Sports Rehabilitation Specialist",
		},
		Mission: "To restore movement and independence through personalised physiotherapy.",
		Vision:  "A community where everyone can move without pain.",
	}
}

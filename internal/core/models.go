package core

import "time"

// Service is a treatment offered by the clinic.
type Service struct {
	ID               string   `json:"id"`
	Title            string   `json:"title" validate:"required"`
	ShortDescription string   `json:"shortDescription" validate:"required"`
	FullDescription  string   `json:"fullDescription"`
	WhoIsItFor       string   `json:"whoIsItFor"`
	Benefits         []string `json:"benefits"`
	IconName         string   `json:"iconName" validate:"oneof=activity bone brain dumbbell heart hand footprints stethoscope baby user"` // one of ServiceIcons
	Slug             string   `json:"slug" validate:"slug"`
	Order            int      `json:"order"`
	ImageURL         string   `json:"imageUrl,omitempty"` // data URI

	Created time.Time `json:"createdAt"`
	Updated time.Time `json:"updatedAt"`

	// Static marks an entry served from the compiled-in dataset. Its ID is
	// not a store id and must never be used for admin edits.
	Static bool `json:"-"`
}

// BlogPost is an article on the public blog.
type BlogPost struct {
	ID       string `json:"id"`
	Title    string `json:"title" validate:"required"`
	Slug     string `json:"slug" validate:"slug"`
	Excerpt  string `json:"excerpt" validate:"required"`
	Content  string `json:"content" validate:"required"` // trusted HTML
	Category string `json:"category" validate:"oneof='Pain Management' Exercise 'Sports Injury' Rehabilitation Wellness Posture"`
	Author   string `json:"author"`
	Date     string `json:"date"`     // display string
	ReadTime string `json:"readTime"` // display string
	ImageURL string `json:"imageUrl,omitempty"`

	Created time.Time `json:"createdAt"`
	Updated time.Time `json:"updatedAt"`

	Static bool `json:"-"`
}

// Testimonial is a patient quote.
type Testimonial struct {
	ID      string `json:"id"`
	Name    string `json:"name" validate:"required"`
	Role    string `json:"role"`
	Content string `json:"content" validate:"required"`
	Rating  int    `json:"rating" validate:"min=1,max=5"` // checked on admin forms only

	Created time.Time `json:"createdAt"`
	Updated time.Time `json:"updatedAt"`

	Static bool `json:"-"`
}

// Appointment statuses. Transitions between them are unconstrained.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

var AppointmentStatuses = []string{StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled}

// Appointment is a booking request submitted from the public site.
type Appointment struct {
	ID      string `json:"id"`
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone" validate:"required,phone"`
	Service string `json:"service" validate:"required"`
	Date    string `json:"date" validate:"required,datetime=2006-01-02"`
	Time    string `json:"time" validate:"required,datetime=15:04"`
	Message string `json:"message,omitempty"`
	Status  string `json:"status" validate:"omitempty,oneof=pending confirmed completed cancelled"`

	Created time.Time `json:"createdAt"`
	Updated time.Time `json:"updatedAt"`
}

// Admin roles.
const (
	RoleSuperadmin = "superadmin"
	RoleAdmin      = "admin"
	RoleEditor     = "editor"
)

var AdminRoles = []string{RoleSuperadmin, RoleAdmin, RoleEditor}

// AdminUser is a staff account. Password is stored and compared in plaintext.
type AdminUser struct {
	ID           string   `json:"id"`
	Email        string   `json:"email" validate:"required,email"`
	Password     string   `json:"-"`
	Name         string   `json:"name" validate:"required"`
	Role         string   `json:"role" validate:"oneof=superadmin admin editor"`
	AllowedPages []string `json:"allowedPages"`

	Created time.Time `json:"createdAt"`
	Updated time.Time `json:"updatedAt"`
}

// Condition is a treatable condition. It only exists in the static dataset.
type Condition struct {
	ID          string   `json:"id"`
	Slug        string   `json:"slug"`
	Title       string   `json:"title"`
	Summary     string   `json:"summary"`
	Description string   `json:"description"`
	Symptoms    []string `json:"symptoms"`
	Treatments  []string `json:"treatments"`
	IconName    string   `json:"iconName"`
}

// DashboardStats summarises the admin landing page.
type DashboardStats struct {
	Services            int
	Posts               int
	Testimonials        int
	Appointments        int
	PendingAppointments int
	Users               int
	RecentAppointments  []Appointment
}

var ServiceIcons = []string{
	"activity", "bone", "brain", "dumbbell", "heart",
	"hand", "footprints", "stethoscope", "baby", "user",
}

var BlogCategories = []string{
	"Pain Management", "Exercise", "Sports Injury",
	"Rehabilitation", "Wellness", "Posture",
}

// Contains reports whether list holds v.
func Contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}

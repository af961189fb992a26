package core

// Admin page identifiers used for navigation and route gating.
const (
	PageDashboard    = "dashboard"
	PageAbout        = "about"
	PageServices     = "services"
	PageBlog         = "blog"
	PageTestimonials = "testimonials"
	PageAppointments = "appointments"
	PageSettings     = "settings"
	PageUsers        = "users"
)

var AllPages = []string{
	PageDashboard, PageAbout, PageServices, PageBlog,
	PageTestimonials, PageAppointments, PageSettings, PageUsers,
}

// Session is the authenticated admin as persisted in durable client storage.
type Session struct {
	ID           string   `json:"id"`
	Email        string   `json:"email"`
	Name         string   `json:"name"`
	Role         string   `json:"role"`
	AllowedPages []string `json:"allowedPages"`
}

// CanAccess is true for superadmins and for pages listed in AllowedPages.
// It only gates admin navigation and routes.
func (s *Session) CanAccess(page string) bool {
	if s == nil {
		return false
	}
	if s.Role == RoleSuperadmin {
		return true
	}
	return Contains(s.AllowedPages, page)
}

// NewSession builds the session for a stored admin user.
func NewSession(u *AdminUser) *Session {
	pages := make([]string, len(u.AllowedPages))
	copy(pages, u.AllowedPages)
	return &Session{
		ID:           u.ID,
		Email:        u.Email,
		Name:         u.Name,
		Role:         u.Role,
		AllowedPages: pages,
	}
}

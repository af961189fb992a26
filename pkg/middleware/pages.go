package middleware

import (
	domain "github.com/aminafridi/PhysioCare-sub000/internal/core"
)

// NavItem is one entry of the admin sidebar.
type NavItem struct {
	Page  string
	Path  string
	Label string
}

var adminNav = []NavItem{
	{domain.PageDashboard, "/admin/dashboard", "Dashboard"},
	{domain.PageAbout, "/admin/about", "About page"},
	{domain.PageServices, "/admin/services", "Services"},
	{domain.PageBlog, "/admin/blog", "Blog"},
	{domain.PageTestimonials, "/admin/testimonials", "Testimonials"},
	{domain.PageAppointments, "/admin/appointments", "Appointments"},
	{domain.PageSettings, "/admin/settings", "Settings"},
	{domain.PageUsers, "/admin/users", "Users"},
}

// Nav lists the sidebar entries sess may open.
func Nav(sess *domain.Session) []NavItem {
	items := make([]NavItem, 0, len(adminNav))
	for _, item := range adminNav {
		if sess.CanAccess(item.Page) {
			items = append(items, item)
		}
	}
	return items
}

// HomePage is the first page sess may open, or "" when it may open none.
func HomePage(sess *domain.Session) string {
	for _, item := range adminNav {
		if sess.CanAccess(item.Page) {
			return item.Page
		}
	}
	return ""
}

func PagePath(page string) string {
	for _, item := range adminNav {
		if item.Page == page {
			return item.Path
		}
	}
	return "/admin/dashboard"
}

package handlers

import (
	"errors"
	"net/http"
	"strings"

	domain "github.com/aminafridi/PhysioCare-sub000/internal/core"
	"github.com/aminafridi/PhysioCare-sub000/internal/service"

	"github.com/pocketbase/pocketbase/core"
	"go.uber.org/zap"
)

const homeServiceCount = 6

type PublicHandler struct {
	*Renderer
	Catalog domain.CatalogService
	Booking *service.BookingService
	Contact *service.ContactService
	Logger  *zap.Logger
}

func (h *PublicHandler) Home(e *core.RequestEvent) error {
	ctx := e.Request.Context()
	services, _ := h.Catalog.Services(ctx)
	testimonials, _ := h.Catalog.Testimonials(ctx)
	posts, _ := h.Catalog.Posts(ctx)

	return h.Render(e, LayoutBase, "public/home.html", map[string]any{
		"About":        h.Catalog.About(ctx),
		"Services":     services[:min(len(services), homeServiceCount)],
		"Conditions":   h.Catalog.Conditions(),
		"Testimonials": testimonials[:min(len(testimonials), 3)],
		"Posts":        posts[:min(len(posts), 3)],
	})
}

func (h *PublicHandler) About(e *core.RequestEvent) error {
	return h.Render(e, LayoutBase, "public/about.html", map[string]any{
		"About": h.Catalog.About(e.Request.Context()),
	})
}

func (h *PublicHandler) Services(e *core.RequestEvent) error {
	services, _ := h.Catalog.Services(e.Request.Context())
	return h.Render(e, LayoutBase, "public/services.html", map[string]any{
		"Services": services,
	})
}

func (h *PublicHandler) ServiceDetail(e *core.RequestEvent) error {
	svc := h.Catalog.ServiceBySlug(e.Request.Context(), e.Request.PathValue("slug"))
	if svc == nil {
		return h.notFound(e, "We could not find that service.", "/services")
	}
	return h.Render(e, LayoutBase, "public/service_detail.html", map[string]any{
		"Service": svc,
	})
}

func (h *PublicHandler) Conditions(e *core.RequestEvent) error {
	return h.Render(e, LayoutBase, "public/conditions.html", map[string]any{
		"Conditions": h.Catalog.Conditions(),
	})
}

func (h *PublicHandler) ConditionDetail(e *core.RequestEvent) error {
	cond := h.Catalog.ConditionBySlug(e.Request.PathValue("slug"))
	if cond == nil {
		return h.notFound(e, "We could not find that condition.", "/conditions")
	}
	return h.Render(e, LayoutBase, "public/condition_detail.html", map[string]any{
		"Condition": cond,
	})
}

// Blog lists posts, optionally narrowed with ?category=.
func (h *PublicHandler) Blog(e *core.RequestEvent) error {
	posts, _ := h.Catalog.Posts(e.Request.Context())

	category := e.Request.URL.Query().Get("category")
	if category != "" {
		filtered := make([]domain.BlogPost, 0, len(posts))
		for _, p := range posts {
			if p.Category == category {
				filtered = append(filtered, p)
			}
		}
		posts = filtered
	}

	return h.Render(e, LayoutBase, "public/blog.html", map[string]any{
		"Posts":      posts,
		"Category":   category,
		"Categories": domain.BlogCategories,
	})
}

func (h *PublicHandler) BlogPost(e *core.RequestEvent) error {
	post := h.Catalog.PostBySlug(e.Request.Context(), e.Request.PathValue("slug"))
	if post == nil {
		return h.notFound(e, "We could not find that article.", "/blog")
	}
	return h.Render(e, LayoutBase, "public/blog_post.html", map[string]any{
		"Post": post,
	})
}

func (h *PublicHandler) ShowContact(e *core.RequestEvent) error {
	return h.Render(e, LayoutBase, "public/contact.html", map[string]any{
		"Form": service.ContactMessage{},
	})
}

// SubmitContact validates the message; nothing is stored or sent.
func (h *PublicHandler) SubmitContact(e *core.RequestEvent) error {
	msg := service.ContactMessage{
		Name:    e.Request.FormValue("name"),
		Email:   e.Request.FormValue("email"),
		Phone:   e.Request.FormValue("phone"),
		Subject: e.Request.FormValue("subject"),
		Message: e.Request.FormValue("message"),
	}

	if err := h.Contact.Submit(e.Request.Context(), msg); err != nil {
		var verrs domain.ValidationErrors
		if !errors.As(err, &verrs) {
			return redirectWith(e, "/contact", "error", "Something went wrong, please try again.")
		}
		return h.RenderStatus(e, http.StatusUnprocessableEntity, LayoutBase, "public/contact.html", map[string]any{
			"Form":   msg,
			"Errors": verrs,
		})
	}

	return h.Render(e, LayoutBase, "public/contact.html", map[string]any{
		"Form":  service.ContactMessage{},
		"Flash": Flash{Success: "Thank you for your message! We will get back to you within one working day."},
	})
}

func (h *PublicHandler) ShowBooking(e *core.RequestEvent) error {
	return h.renderBooking(e, http.StatusOK, domain.Appointment{
		Service: e.Request.URL.Query().Get("service"),
	}, nil)
}

func (h *PublicHandler) SubmitBooking(e *core.RequestEvent) error {
	in := domain.Appointment{
		Name:    e.Request.FormValue("name"),
		Email:   e.Request.FormValue("email"),
		Phone:   e.Request.FormValue("phone"),
		Service: e.Request.FormValue("service"),
		Date:    e.Request.FormValue("date"),
		Time:    e.Request.FormValue("time"),
		Message: e.Request.FormValue("message"),
	}

	appt, err := h.Booking.Book(e.Request.Context(), in)
	if err != nil {
		var verrs domain.ValidationErrors
		if errors.As(err, &verrs) {
			return h.renderBooking(e, http.StatusUnprocessableEntity, in, verrs)
		}
		reqLog(e, h.Logger).Error("Failed to store appointment", zap.Error(err))
		return h.renderBooking(e, http.StatusInternalServerError, in, domain.ValidationErrors{
			"form": "We could not save your request. Please call us instead.",
		})
	}

	return h.Render(e, LayoutBase, "public/book_success.html", map[string]any{
		"Appointment": appt,
	})
}

func (h *PublicHandler) renderBooking(e *core.RequestEvent, status int, form domain.Appointment, verrs domain.ValidationErrors) error {
	services, _ := h.Catalog.Services(e.Request.Context())
	if verrs == nil {
		verrs = domain.ValidationErrors{}
	}

	data := map[string]any{
		"Services": services,
		"Calendar": NewMonthCalendar(bookingMonth(e), timeNow()),
		"Slots":    BookingSlots,
		"Form":     form,
		"Errors":   verrs,
	}
	if msg, ok := verrs["form"]; ok {
		data["Flash"] = Flash{Error: msg}
	}
	return h.RenderStatus(e, status, LayoutBase, "public/book.html", data)
}

func (h *PublicHandler) notFound(e *core.RequestEvent, msg, back string) error {
	return h.RenderStatus(e, http.StatusNotFound, LayoutBase, "public/not_found.html", map[string]any{
		"Message": msg,
		"Back":    back,
	})
}

func trimmed(e *core.RequestEvent, key string) string {
	return strings.TrimSpace(e.Request.FormValue(key))
}

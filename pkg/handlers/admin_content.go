package handlers

import (
	"fmt"
	"net/http"

	domain "github.com/aminafridi/PhysioCare-sub000/internal/core"
	"github.com/aminafridi/PhysioCare-sub000/internal/fallback"
	"github.com/aminafridi/PhysioCare-sub000/internal/service"

	"github.com/pocketbase/pocketbase/core"
	"go.uber.org/zap"
)

const saveFailed = "Could not save your changes. Please try again."

// ---------------------------------------------------------
// About page
// ---------------------------------------------------------

func (h *AdminHandler) ShowAbout(e *core.RequestEvent) error {
	return h.page(e, http.StatusOK, domain.PageAbout, "admin/about.html", map[string]any{
		"About": h.Catalog.About(e.Request.Context()),
	})
}

func (h *AdminHandler) SaveAbout(e *core.RequestEvent) error {
	ctx := e.Request.Context()
	current := h.Catalog.About(ctx)

	about := domain.AboutPage{
		Name:           trimmed(e, "name"),
		Title:          trimmed(e, "title"),
		Experience:     trimmed(e, "experience"),
		Bio:            trimmed(e, "bio"),
		Qualifications: service.SplitLines(e.Request.FormValue("qualifications")),
		Mission:        trimmed(e, "mission"),
		Vision:         trimmed(e, "vision"),
		ImageURL:       current.ImageURL,
	}

	extra := domain.ValidationErrors{}
	if img, err := imageUpload(e, current.ImageURL); err != nil {
		extra["image"] = imageErrorMessage(err)
	} else {
		about.ImageURL = img
	}

	if verrs := validationErrors(service.ValidateAbout(&about), extra); len(verrs) > 0 {
		about.ImageURL = current.ImageURL
		return h.page(e, http.StatusUnprocessableEntity, domain.PageAbout, "admin/about.html", map[string]any{
			"About":  about,
			"Errors": verrs,
		})
	}

	if err := h.About.Save(ctx, about); err != nil {
		reqLog(e, h.Logger).Error("Failed to save about page", zap.Error(err))
		return redirectWith(e, "/admin/about", "error", saveFailed)
	}
	return redirectWith(e, "/admin/about", "success", "About page saved")
}

// ---------------------------------------------------------
// Services
// ---------------------------------------------------------

func (h *AdminHandler) ServicesList(e *core.RequestEvent) error {
	return h.page(e, http.StatusOK, domain.PageServices, "admin/services.html", map[string]any{
		"Services":    h.Services.GetAll(e.Request.Context()),
		"StaticCount": len(fallback.Services()),
	})
}

func (h *AdminHandler) NewService(e *core.RequestEvent) error {
	next := len(h.Services.GetAll(e.Request.Context())) + 1
	return h.serviceForm(e, http.StatusOK, "", domain.Service{IconName: domain.ServiceIcons[0], Order: next}, nil)
}

func (h *AdminHandler) EditService(e *core.RequestEvent) error {
	svc := h.Services.GetByID(e.Request.Context(), e.Request.PathValue("id"))
	if svc == nil {
		return redirectWith(e, "/admin/services", "error", "Service not found")
	}
	return h.serviceForm(e, http.StatusOK, svc.ID, *svc, nil)
}

// SaveService handles both create (no id) and update.
func (h *AdminHandler) SaveService(e *core.RequestEvent) error {
	ctx := e.Request.Context()
	id := e.Request.PathValue("id")

	var current domain.Service
	if id != "" {
		stored := h.Services.GetByID(ctx, id)
		if stored == nil {
			return redirectWith(e, "/admin/services", "error", "Service not found")
		}
		current = *stored
	}

	extra := domain.ValidationErrors{}
	svc := domain.Service{
		Title:            trimmed(e, "title"),
		Slug:             trimmed(e, "slug"),
		ShortDescription: trimmed(e, "shortDescription"),
		FullDescription:  trimmed(e, "fullDescription"),
		WhoIsItFor:       trimmed(e, "whoIsItFor"),
		Benefits:         service.SplitLines(e.Request.FormValue("benefits")),
		IconName:         trimmed(e, "iconName"),
		Order:            parseOrder(trimmed(e, "order"), extra),
		ImageURL:         current.ImageURL,
	}
	if img, err := imageUpload(e, current.ImageURL); err != nil {
		extra["image"] = imageErrorMessage(err)
	} else {
		svc.ImageURL = img
	}

	if verrs := validationErrors(service.ValidateService(&svc), extra); len(verrs) > 0 {
		svc.ImageURL = current.ImageURL
		return h.serviceForm(e, http.StatusUnprocessableEntity, id, svc, verrs)
	}

	warning := ""
	if other := h.Services.GetBySlug(ctx, svc.Slug); other != nil && other.ID != id {
		warning = fmt.Sprintf("Another service already uses /services/%s; the first one listed wins on the public site.", svc.Slug)
	}

	var err error
	if id == "" {
		_, err = h.Services.Add(ctx, svc)
	} else {
		err = h.Services.Edit(ctx, id, svc)
	}
	if err != nil {
		reqLog(e, h.Logger).Error("Failed to save service", zap.String("id", id), zap.Error(err))
		return redirectWith(e, "/admin/services", "error", saveFailed)
	}

	if warning != "" {
		return redirectWith(e, "/admin/services", "warning", warning)
	}
	return redirectWith(e, "/admin/services", "success", "Service saved")
}

func (h *AdminHandler) DeleteService(e *core.RequestEvent) error {
	if err := h.Services.Remove(e.Request.Context(), e.Request.PathValue("id")); err != nil {
		reqLog(e, h.Logger).Error("Failed to delete service", zap.Error(err))
		return redirectWith(e, "/admin/services", "error", "Could not delete the service")
	}
	return redirectWith(e, "/admin/services", "success", "Service deleted")
}

func (h *AdminHandler) ImportServices(e *core.RequestEvent) error {
	n, err := h.Import.ImportServices(e.Request.Context())
	if err != nil {
		reqLog(e, h.Logger).Error("Service import failed", zap.Int("imported", n), zap.Error(err))
		return redirectWith(e, "/admin/services", "error", fmt.Sprintf("Import stopped after %d services", n))
	}
	return redirectWith(e, "/admin/services", "success", fmt.Sprintf("Imported %d services", n))
}

func (h *AdminHandler) serviceForm(e *core.RequestEvent, status int, id string, svc domain.Service, verrs domain.ValidationErrors) error {
	action := "/admin/services"
	if id != "" {
		action = "/admin/services/" + id
	}
	if verrs == nil {
		verrs = domain.ValidationErrors{}
	}
	return h.page(e, status, domain.PageServices, "admin/service_form.html", map[string]any{
		"IsNew":   id == "",
		"Action":  action,
		"Service": svc,
		"Icons":   domain.ServiceIcons,
		"Errors":  verrs,
	})
}

// ---------------------------------------------------------
// Blog
// ---------------------------------------------------------

func (h *AdminHandler) PostsList(e *core.RequestEvent) error {
	return h.page(e, http.StatusOK, domain.PageBlog, "admin/blog.html", map[string]any{
		"Posts":       h.Posts.GetAll(e.Request.Context()),
		"StaticCount": len(fallback.Posts()),
	})
}

func (h *AdminHandler) NewPost(e *core.RequestEvent) error {
	sess := h.sessionName(e)
	return h.postForm(e, http.StatusOK, "", domain.BlogPost{
		Category: domain.BlogCategories[0],
		Author:   sess,
		Date:     timeNow().Format("January 2, 2006"),
		ReadTime: "5 min read",
	}, nil)
}

func (h *AdminHandler) EditPost(e *core.RequestEvent) error {
	post := h.Posts.GetByID(e.Request.Context(), e.Request.PathValue("id"))
	if post == nil {
		return redirectWith(e, "/admin/blog", "error", "Post not found")
	}
	return h.postForm(e, http.StatusOK, post.ID, *post, nil)
}

func (h *AdminHandler) SavePost(e *core.RequestEvent) error {
	ctx := e.Request.Context()
	id := e.Request.PathValue("id")

	var current domain.BlogPost
	if id != "" {
		stored := h.Posts.GetByID(ctx, id)
		if stored == nil {
			return redirectWith(e, "/admin/blog", "error", "Post not found")
		}
		current = *stored
	}

	extra := domain.ValidationErrors{}
	post := domain.BlogPost{
		Title:    trimmed(e, "title"),
		Slug:     trimmed(e, "slug"),
		Excerpt:  trimmed(e, "excerpt"),
		Content:  e.Request.FormValue("content"),
		Category: trimmed(e, "category"),
		Author:   trimmed(e, "author"),
		Date:     trimmed(e, "date"),
		ReadTime: trimmed(e, "readTime"),
		ImageURL: current.ImageURL,
	}
	if img, err := imageUpload(e, current.ImageURL); err != nil {
		extra["image"] = imageErrorMessage(err)
	} else {
		post.ImageURL = img
	}

	if verrs := validationErrors(service.ValidateBlogPost(&post), extra); len(verrs) > 0 {
		post.ImageURL = current.ImageURL
		return h.postForm(e, http.StatusUnprocessableEntity, id, post, verrs)
	}

	warning := ""
	if other := h.Posts.GetBySlug(ctx, post.Slug); other != nil && other.ID != id {
		warning = fmt.Sprintf("Another post already uses /blog/%s; the first one listed wins on the public site.", post.Slug)
	}

	var err error
	if id == "" {
		_, err = h.Posts.Add(ctx, post)
	} else {
		err = h.Posts.Edit(ctx, id, post)
	}
	if err != nil {
		reqLog(e, h.Logger).Error("Failed to save post", zap.String("id", id), zap.Error(err))
		return redirectWith(e, "/admin/blog", "error", saveFailed)
	}

	if warning != "" {
		return redirectWith(e, "/admin/blog", "warning", warning)
	}
	return redirectWith(e, "/admin/blog", "success", "Post saved")
}

func (h *AdminHandler) DeletePost(e *core.RequestEvent) error {
	if err := h.Posts.Remove(e.Request.Context(), e.Request.PathValue("id")); err != nil {
		reqLog(e, h.Logger).Error("Failed to delete post", zap.Error(err))
		return redirectWith(e, "/admin/blog", "error", "Could not delete the post")
	}
	return redirectWith(e, "/admin/blog", "success", "Post deleted")
}

func (h *AdminHandler) ImportPosts(e *core.RequestEvent) error {
	n, err := h.Import.ImportPosts(e.Request.Context())
	if err != nil {
		reqLog(e, h.Logger).Error("Post import failed", zap.Int("imported", n), zap.Error(err))
		return redirectWith(e, "/admin/blog", "error", fmt.Sprintf("Import stopped after %d posts", n))
	}
	return redirectWith(e, "/admin/blog", "success", fmt.Sprintf("Imported %d posts", n))
}

func (h *AdminHandler) postForm(e *core.RequestEvent, status int, id string, post domain.BlogPost, verrs domain.ValidationErrors) error {
	action := "/admin/blog"
	if id != "" {
		action = "/admin/blog/" + id
	}
	if verrs == nil {
		verrs = domain.ValidationErrors{}
	}
	return h.page(e, status, domain.PageBlog, "admin/blog_form.html", map[string]any{
		"IsNew":      id == "",
		"Action":     action,
		"Post":       post,
		"Categories": domain.BlogCategories,
		"Errors":     verrs,
	})
}

// ---------------------------------------------------------
// Testimonials
// ---------------------------------------------------------

func (h *AdminHandler) TestimonialsList(e *core.RequestEvent) error {
	return h.page(e, http.StatusOK, domain.PageTestimonials, "admin/testimonials.html", map[string]any{
		"Testimonials": h.Testimonials.GetAll(e.Request.Context()),
		"StaticCount":  len(fallback.Testimonials()),
	})
}

func (h *AdminHandler) NewTestimonial(e *core.RequestEvent) error {
	return h.testimonialForm(e, http.StatusOK, "", domain.Testimonial{Rating: 5}, nil)
}

func (h *AdminHandler) EditTestimonial(e *core.RequestEvent) error {
	t := h.Testimonials.GetByID(e.Request.Context(), e.Request.PathValue("id"))
	if t == nil {
		return redirectWith(e, "/admin/testimonials", "error", "Testimonial not found")
	}
	return h.testimonialForm(e, http.StatusOK, t.ID, *t, nil)
}

func (h *AdminHandler) SaveTestimonial(e *core.RequestEvent) error {
	ctx := e.Request.Context()
	id := e.Request.PathValue("id")

	extra := domain.ValidationErrors{}
	t := domain.Testimonial{
		Name:    trimmed(e, "name"),
		Role:    trimmed(e, "role"),
		Content: trimmed(e, "content"),
		Rating:  parseRating(trimmed(e, "rating"), extra),
	}

	if verrs := validationErrors(service.ValidateTestimonial(&t), extra); len(verrs) > 0 {
		return h.testimonialForm(e, http.StatusUnprocessableEntity, id, t, verrs)
	}

	var err error
	if id == "" {
		_, err = h.Testimonials.Add(ctx, t)
	} else {
		err = h.Testimonials.Edit(ctx, id, t)
	}
	if err != nil {
		reqLog(e, h.Logger).Error("Failed to save testimonial", zap.String("id", id), zap.Error(err))
		return redirectWith(e, "/admin/testimonials", "error", saveFailed)
	}
	return redirectWith(e, "/admin/testimonials", "success", "Testimonial saved")
}

func (h *AdminHandler) DeleteTestimonial(e *core.RequestEvent) error {
	if err := h.Testimonials.Remove(e.Request.Context(), e.Request.PathValue("id")); err != nil {
		reqLog(e, h.Logger).Error("Failed to delete testimonial", zap.Error(err))
		return redirectWith(e, "/admin/testimonials", "error", "Could not delete the testimonial")
	}
	return redirectWith(e, "/admin/testimonials", "success", "Testimonial deleted")
}

func (h *AdminHandler) ImportTestimonials(e *core.RequestEvent) error {
	n, err := h.Import.ImportTestimonials(e.Request.Context())
	if err != nil {
		reqLog(e, h.Logger).Error("Testimonial import failed", zap.Int("imported", n), zap.Error(err))
		return redirectWith(e, "/admin/testimonials", "error", fmt.Sprintf("Import stopped after %d testimonials", n))
	}
	return redirectWith(e, "/admin/testimonials", "success", fmt.Sprintf("Imported %d testimonials", n))
}

func (h *AdminHandler) testimonialForm(e *core.RequestEvent, status int, id string, t domain.Testimonial, verrs domain.ValidationErrors) error {
	action := "/admin/testimonials"
	if id != "" {
		action = "/admin/testimonials/" + id
	}
	if verrs == nil {
		verrs = domain.ValidationErrors{}
	}
	return h.page(e, status, domain.PageTestimonials, "admin/testimonial_form.html", map[string]any{
		"IsNew":       id == "",
		"Action":      action,
		"Testimonial": t,
		"Errors":      verrs,
	})
}

func (h *AdminHandler) sessionName(e *core.RequestEvent) string {
	if sess, ok := e.Get("Session").(*domain.Session); ok && sess != nil {
		return sess.Name
	}
	return ""
}

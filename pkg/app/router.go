package app

import (
	"io/fs"

	internalApp "github.com/aminafridi/PhysioCare-sub000/internal/app"
	domain "github.com/aminafridi/PhysioCare-sub000/internal/core"
	"github.com/aminafridi/PhysioCare-sub000/pkg/handlers"
	"github.com/aminafridi/PhysioCare-sub000/pkg/middleware"
	"github.com/aminafridi/PhysioCare-sub000/views"

	"github.com/pocketbase/pocketbase/apis"
	"github.com/pocketbase/pocketbase/core"
	"github.com/pocketbase/pocketbase/tools/router"
)

// RegisterRoutes configures all application routes on the app's serve hook.
func RegisterRoutes(app core.App, c *internalApp.Container) {
	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		Mount(se.Router, c)
		return se.Next()
	})
}

// Mount attaches the public site and the admin panel to r.
func Mount(r *router.Router[*core.RequestEvent], c *internalApp.Container) {
	// ---------------------------------------------------------
	// 1. STATIC FILES
	// ---------------------------------------------------------
	assets, err := fs.Sub(views.FS, "assets")
	if err != nil {
		panic(err)
	}
	r.GET("/assets/{path...}", apis.Static(assets, false))

	// Request id and access log, then settings for every page (footer,
	// contact details).
	r.BindFunc(middleware.RequestLogger(c.Logger))
	r.BindFunc(middleware.SettingsMiddleware(c.Catalog))

	// ---------------------------------------------------------
	// 2. HANDLERS
	// ---------------------------------------------------------
	renderer := &handlers.Renderer{Templates: c.Templates, Logger: c.Logger}

	public := &handlers.PublicHandler{
		Renderer: renderer,
		Catalog:  c.Catalog,
		Booking:  c.Booking,
		Contact:  c.Contact,
		Logger:   c.Logger,
	}

	admin := &handlers.AdminHandler{
		Renderer:  renderer,
		Sessions:  c.Sessions,
		Auth:      c.Auth,
		Broker:    c.Broker,
		Catalog:   c.Catalog,
		Dashboard: c.Dashboard,
		Booking:   c.Booking,
		Import:    c.Import,
		Export:    c.Export,

		Services:     c.ServiceRepo,
		Posts:        c.BlogRepo,
		Testimonials: c.TestimonialRepo,
		Users:        c.AdminUserRepo,
		About:        c.AboutRepo,
		Settings:     c.SettingsRepo,

		Logger: c.Logger,
	}

	// ---------------------------------------------------------
	// 3. PUBLIC SITE
	// ---------------------------------------------------------
	r.GET("/{$}", public.Home)
	r.GET("/about", public.About)
	r.GET("/services", public.Services)
	r.GET("/services/{slug}", public.ServiceDetail)
	r.GET("/conditions", public.Conditions)
	r.GET("/conditions/{slug}", public.ConditionDetail)
	r.GET("/blog", public.Blog)
	r.GET("/blog/{slug}", public.BlogPost)
	r.GET("/contact", public.ShowContact)
	r.POST("/contact", public.SubmitContact)
	r.GET("/book", public.ShowBooking)
	r.POST("/book", public.SubmitBooking)

	// ---------------------------------------------------------
	// 4. ADMIN PANEL
	// ---------------------------------------------------------
	r.GET("/login", admin.ShowLogin)
	r.POST("/login", admin.ProcessLogin)

	adminGroup := r.Group("/admin")
	adminGroup.BindFunc(middleware.RequireAdmin(c.Sessions, c.Auth, c.Logger))

	adminGroup.GET("", admin.Landing)
	adminGroup.GET("/{$}", admin.Landing)
	adminGroup.GET("/logout", admin.Logout)
	adminGroup.POST("/logout", admin.Logout)
	adminGroup.GET("/forbidden", admin.Forbidden)
	adminGroup.GET("/account", admin.ShowAccount)
	adminGroup.POST("/account", admin.UpdateAccount)
	adminGroup.GET("/stream", admin.Stream)

	gate := middleware.RequirePage

	adminGroup.GET("/dashboard", admin.ShowDashboard).BindFunc(gate(domain.PageDashboard))

	adminGroup.GET("/about", admin.ShowAbout).BindFunc(gate(domain.PageAbout))
	adminGroup.POST("/about", admin.SaveAbout).BindFunc(gate(domain.PageAbout))

	services := adminGroup.Group("/services")
	services.BindFunc(gate(domain.PageServices))
	services.GET("", admin.ServicesList)
	services.GET("/new", admin.NewService)
	services.POST("", admin.SaveService)
	services.POST("/import", admin.ImportServices)
	services.GET("/{id}/edit", admin.EditService)
	services.POST("/{id}", admin.SaveService)
	services.POST("/{id}/delete", admin.DeleteService)

	blog := adminGroup.Group("/blog")
	blog.BindFunc(gate(domain.PageBlog))
	blog.GET("", admin.PostsList)
	blog.GET("/new", admin.NewPost)
	blog.POST("", admin.SavePost)
	blog.POST("/import", admin.ImportPosts)
	blog.GET("/{id}/edit", admin.EditPost)
	blog.POST("/{id}", admin.SavePost)
	blog.POST("/{id}/delete", admin.DeletePost)

	testimonials := adminGroup.Group("/testimonials")
	testimonials.BindFunc(gate(domain.PageTestimonials))
	testimonials.GET("", admin.TestimonialsList)
	testimonials.GET("/new", admin.NewTestimonial)
	testimonials.POST("", admin.SaveTestimonial)
	testimonials.POST("/import", admin.ImportTestimonials)
	testimonials.GET("/{id}/edit", admin.EditTestimonial)
	testimonials.POST("/{id}", admin.SaveTestimonial)
	testimonials.POST("/{id}/delete", admin.DeleteTestimonial)

	appointments := adminGroup.Group("/appointments")
	appointments.BindFunc(gate(domain.PageAppointments))
	appointments.GET("", admin.AppointmentsList)
	appointments.GET("/export", admin.ExportAppointments)
	appointments.POST("/{id}/status", admin.UpdateAppointmentStatus)
	appointments.POST("/{id}/delete", admin.DeleteAppointment)

	adminGroup.GET("/settings", admin.ShowSettings).BindFunc(gate(domain.PageSettings))
	adminGroup.POST("/settings", admin.SaveSettings).BindFunc(gate(domain.PageSettings))

	users := adminGroup.Group("/users")
	users.BindFunc(gate(domain.PageUsers))
	users.GET("", admin.UsersList)
	users.GET("/new", admin.NewUser)
	users.POST("", admin.SaveUser)
	users.GET("/{id}/edit", admin.EditUser)
	users.POST("/{id}", admin.SaveUser)
	users.POST("/{id}/delete", admin.DeleteUser)
}

package wire

import (
	"realty-backend/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireContent(r chi.Router, handler *adaptor.Handler, g guards) {
	wireResource(r, "/api/clients", "id", handler.Client, g)
	wireResource(r, "/api/achievements", "id", handler.Achievement, g)

	wireResource(r, "/api/reviews", "id", handler.Review, g, func(r chi.Router) {
		r.Get("/featured", handler.Review.Featured)
		r.Get("/stats", handler.Review.Stats)
	})

	// Blog posts are addressed by slug
	wireResource(r, "/api/blog", "slug", handler.Blog, g)

	// ==================== CONTACT ====================
	r.Route("/api/contact", func(r chi.Router) {
		// POST /api/contact - public contact form
		r.Post("/", handler.Contact.Submit)

		r.Group(func(r chi.Router) {
			r.Use(g.authenticate)
			r.Use(g.staff)
			r.Get("/", handler.Contact.List)
			r.Get("/{id}", handler.Contact.Get)
			r.Put("/{id}", handler.Contact.Update)
			r.Patch("/{id}", handler.Contact.Update)
			r.Delete("/{id}", handler.Contact.Delete)
		})
	})

	// ==================== PROJECT ENQUIRIES ====================
	r.Route("/api/project-enquiries", func(r chi.Router) {
		r.With(g.authenticate, g.identity).Post("/", handler.Enquiry.Create)
		r.With(g.authenticate, g.staff).Get("/", handler.Enquiry.List)
	})
}

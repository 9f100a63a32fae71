package wire

import (
	"net/http"

	"realty-backend/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

// resourceHandler is implemented by every catalog handler.
type resourceHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

// wireResource mounts the standard CRUD routes. Reads are public (staff
// tokens are still honoured for visibility), writes require staff. extra
// registers additional public read routes.
func wireResource(r chi.Router, path, param string, h resourceHandler, g guards, extra ...func(chi.Router)) {
	item := "/{" + param + "}"

	r.Route(path, func(r chi.Router) {
		// ==================== PUBLIC ROUTES ====================
		r.Group(func(r chi.Router) {
			r.Use(g.optional)
			r.Get("/", h.List)
			for _, fn := range extra {
				fn(r)
			}
			r.Get(item, h.Get)
		})

		// ==================== ADMIN ROUTES ====================
		r.Group(func(r chi.Router) {
			r.Use(g.authenticate)
			r.Use(g.staff)
			r.Post("/", h.Create)
			r.Put(item, h.Update)
			r.Patch(item, h.Update)
			r.Delete(item, h.Delete)
		})
	})
}

func wireCatalog(r chi.Router, handler *adaptor.Handler, g guards) {
	wireResource(r, "/api/cities", "id", handler.City, g)
	wireResource(r, "/api/projects", "id", handler.Project, g)
	wireResource(r, "/api/towers", "id", handler.Tower, g)
	wireResource(r, "/api/flats", "id", handler.Flat, g)
	wireResource(r, "/api/project-images", "id", handler.ProjectImage, g)
	wireResource(r, "/api/project-amenities", "id", handler.ProjectAmenity, g)
	wireResource(r, "/api/tower-amenities", "id", handler.TowerAmenity, g)
}

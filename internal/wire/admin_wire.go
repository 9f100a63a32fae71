package wire

import (
	"realty-backend/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireAdmin(r chi.Router, adminHandler *adaptor.AdminHandler, g guards) {
	// ==================== PUBLIC ROUTES ====================
	// POST /api/admin/login - staff username + password
	r.Post("/api/admin/login", adminHandler.Login)

	// ==================== ADMIN ROUTES ====================
	// Apply middleware chain: Authenticate → RequireStaff
	r.Route("/api/admin/leads", func(r chi.Router) {
		r.Use(g.authenticate)
		r.Use(g.staff)

		r.Get("/", adminHandler.Leads)              // ?period=today|yesterday|week|month
		r.Get("/stats", adminHandler.LeadStats)     // dashboard counters
		r.Post("/{id}/read", adminHandler.MarkLeadRead)
	})
}

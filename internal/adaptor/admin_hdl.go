package adaptor

import (
	"net/http"

	"realty-backend/internal/dto/request"
	"realty-backend/internal/usecase"
	"realty-backend/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// AdminHandler covers staff login and the lead dashboard.
type AdminHandler struct {
	admin usecase.AdminService
	leads usecase.LeadService
	log   *zap.Logger
}

func NewAdminHandler(admin usecase.AdminService, leads usecase.LeadService, log *zap.Logger) *AdminHandler {
	return &AdminHandler{
		admin: admin,
		leads: leads,
		log:   log.With(zap.String("handler", "admin")),
	}
}

// Login handles POST /api/admin/login
func (h *AdminHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req request.AdminLoginRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	resp, err := h.admin.Login(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "admin login")
		return
	}

	utils.ResponseSuccess(w, "Login successful", resp)
}

// LeadStats handles GET /api/admin/leads/stats
func (h *AdminHandler) LeadStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.leads.Stats(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "get lead stats")
		return
	}
	utils.ResponseSuccess(w, "Lead stats retrieved successfully", stats)
}

// Leads handles GET /api/admin/leads?period=
func (h *AdminHandler) Leads(w http.ResponseWriter, r *http.Request) {
	period := r.URL.Query().Get("period")

	leads, err := h.leads.List(r.Context(), period, pageRequest(r))
	if err != nil {
		handleServiceError(w, h.log, err, "list leads")
		return
	}
	utils.ResponseSuccess(w, "Leads retrieved successfully", leads)
}

// MarkLeadRead handles POST /api/admin/leads/{id}/read
func (h *AdminHandler) MarkLeadRead(w http.ResponseWriter, r *http.Request) {
	lead, err := h.leads.MarkRead(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, h.log, err, "mark lead read")
		return
	}
	utils.ResponseSuccess(w, "Lead marked as read", lead)
}

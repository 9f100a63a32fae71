package adaptor

import (
	"net/http"

	"realty-backend/internal/dto/request"
	"realty-backend/internal/usecase"
	"realty-backend/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// ==================== CLIENTS ====================

type ClientHandler struct {
	service usecase.ClientService
	log     *zap.Logger
}

func NewClientHandler(service usecase.ClientService, log *zap.Logger) *ClientHandler {
	return &ClientHandler{service: service, log: log.With(zap.String("handler", "client"))}
}

func (h *ClientHandler) List(w http.ResponseWriter, r *http.Request) {
	clients, err := h.service.List(r.Context(), pageRequest(r))
	if err != nil {
		handleServiceError(w, h.log, err, "list clients")
		return
	}
	utils.ResponseSuccess(w, "Clients retrieved successfully", clients)
}

func (h *ClientHandler) Get(w http.ResponseWriter, r *http.Request) {
	client, err := h.service.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, h.log, err, "get client")
		return
	}
	utils.ResponseSuccess(w, "Client retrieved successfully", client)
}

func (h *ClientHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.ClientRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	client, err := h.service.Create(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create client")
		return
	}
	utils.ResponseCreated(w, "Client created successfully", client)
}

func (h *ClientHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req request.ClientUpdateRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	client, err := h.service.Update(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update client")
		return
	}
	utils.ResponseSuccess(w, "Client updated successfully", client)
}

func (h *ClientHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		handleServiceError(w, h.log, err, "delete client")
		return
	}
	utils.ResponseSuccess(w, "Client deleted successfully", nil)
}

// ==================== ACHIEVEMENTS ====================

type AchievementHandler struct {
	service usecase.AchievementService
	log     *zap.Logger
}

func NewAchievementHandler(service usecase.AchievementService, log *zap.Logger) *AchievementHandler {
	return &AchievementHandler{service: service, log: log.With(zap.String("handler", "achievement"))}
}

func (h *AchievementHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.List(r.Context(), pageRequest(r))
	if err != nil {
		handleServiceError(w, h.log, err, "list achievements")
		return
	}
	utils.ResponseSuccess(w, "Achievements retrieved successfully", items)
}

func (h *AchievementHandler) Get(w http.ResponseWriter, r *http.Request) {
	item, err := h.service.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, h.log, err, "get achievement")
		return
	}
	utils.ResponseSuccess(w, "Achievement retrieved successfully", item)
}

func (h *AchievementHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.AchievementRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	item, err := h.service.Create(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create achievement")
		return
	}
	utils.ResponseCreated(w, "Achievement created successfully", item)
}

func (h *AchievementHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req request.AchievementUpdateRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	item, err := h.service.Update(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update achievement")
		return
	}
	utils.ResponseSuccess(w, "Achievement updated successfully", item)
}

func (h *AchievementHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		handleServiceError(w, h.log, err, "delete achievement")
		return
	}
	utils.ResponseSuccess(w, "Achievement deleted successfully", nil)
}

// ==================== REVIEWS ====================

type ReviewHandler struct {
	service usecase.ReviewService
	log     *zap.Logger
}

func NewReviewHandler(service usecase.ReviewService, log *zap.Logger) *ReviewHandler {
	return &ReviewHandler{service: service, log: log.With(zap.String("handler", "review"))}
}

// List handles GET /api/reviews?featured=
func (h *ReviewHandler) List(w http.ResponseWriter, r *http.Request) {
	featured := utils.ParseBoolPtr(r.URL.Query().Get("featured"))
	reviews, err := h.service.List(r.Context(), pageRequest(r), featured)
	if err != nil {
		handleServiceError(w, h.log, err, "list reviews")
		return
	}
	utils.ResponseSuccess(w, "Reviews retrieved successfully", reviews)
}

// Featured handles GET /api/reviews/featured
func (h *ReviewHandler) Featured(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.service.Featured(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "list featured reviews")
		return
	}
	utils.ResponseSuccess(w, "Featured reviews retrieved successfully", reviews)
}

// Stats handles GET /api/reviews/stats
func (h *ReviewHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.Stats(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "get review stats")
		return
	}
	utils.ResponseSuccess(w, "Review stats retrieved successfully", stats)
}

func (h *ReviewHandler) Get(w http.ResponseWriter, r *http.Request) {
	review, err := h.service.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, h.log, err, "get review")
		return
	}
	utils.ResponseSuccess(w, "Review retrieved successfully", review)
}

func (h *ReviewHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.ReviewRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	review, err := h.service.Create(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create review")
		return
	}
	utils.ResponseCreated(w, "Review created successfully", review)
}

func (h *ReviewHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req request.ReviewUpdateRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	review, err := h.service.Update(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update review")
		return
	}
	utils.ResponseSuccess(w, "Review updated successfully", review)
}

func (h *ReviewHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		handleServiceError(w, h.log, err, "delete review")
		return
	}
	utils.ResponseSuccess(w, "Review deleted successfully", nil)
}

// ==================== BLOG ====================

type BlogHandler struct {
	service usecase.BlogService
	log     *zap.Logger
}

func NewBlogHandler(service usecase.BlogService, log *zap.Logger) *BlogHandler {
	return &BlogHandler{service: service, log: log.With(zap.String("handler", "blog"))}
}

// List handles GET /api/blog?project=&search=
func (h *BlogHandler) List(w http.ResponseWriter, r *http.Request) {
	query := usecase.BlogQuery{
		ProjectID: queryString(r, "project"),
		Search:    queryString(r, "search"),
	}
	posts, err := h.service.List(r.Context(), pageRequest(r), query, isStaff(r))
	if err != nil {
		handleServiceError(w, h.log, err, "list blog posts")
		return
	}
	utils.ResponseSuccess(w, "Blog posts retrieved successfully", posts)
}

// Get handles GET /api/blog/{slug}
func (h *BlogHandler) Get(w http.ResponseWriter, r *http.Request) {
	post, err := h.service.GetBySlug(r.Context(), chi.URLParam(r, "slug"), isStaff(r))
	if err != nil {
		handleServiceError(w, h.log, err, "get blog post")
		return
	}
	utils.ResponseSuccess(w, "Blog post retrieved successfully", post)
}

func (h *BlogHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.BlogPostRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	post, err := h.service.Create(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create blog post")
		return
	}
	utils.ResponseCreated(w, "Blog post created successfully", post)
}

func (h *BlogHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req request.BlogPostUpdateRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	post, err := h.service.Update(r.Context(), chi.URLParam(r, "slug"), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update blog post")
		return
	}
	utils.ResponseSuccess(w, "Blog post updated successfully", post)
}

func (h *BlogHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), chi.URLParam(r, "slug")); err != nil {
		handleServiceError(w, h.log, err, "delete blog post")
		return
	}
	utils.ResponseSuccess(w, "Blog post deleted successfully", nil)
}

// ==================== CONTACT ====================

type ContactHandler struct {
	service usecase.ContactService
	log     *zap.Logger
}

func NewContactHandler(service usecase.ContactService, log *zap.Logger) *ContactHandler {
	return &ContactHandler{service: service, log: log.With(zap.String("handler", "contact"))}
}

// Submit handles POST /api/contact (public)
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req request.ContactRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	contact, err := h.service.Submit(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "submit contact form")
		return
	}
	utils.ResponseCreated(w, "Thank you, we will get back to you soon", contact)
}

func (h *ContactHandler) List(w http.ResponseWriter, r *http.Request) {
	contacts, err := h.service.List(r.Context(), pageRequest(r))
	if err != nil {
		handleServiceError(w, h.log, err, "list contacts")
		return
	}
	utils.ResponseSuccess(w, "Contacts retrieved successfully", contacts)
}

func (h *ContactHandler) Get(w http.ResponseWriter, r *http.Request) {
	contact, err := h.service.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, h.log, err, "get contact")
		return
	}
	utils.ResponseSuccess(w, "Contact retrieved successfully", contact)
}

func (h *ContactHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req request.ContactUpdateRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	contact, err := h.service.Update(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update contact")
		return
	}
	utils.ResponseSuccess(w, "Contact updated successfully", contact)
}

func (h *ContactHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		handleServiceError(w, h.log, err, "delete contact")
		return
	}
	utils.ResponseSuccess(w, "Contact deleted successfully", nil)
}

// ==================== PROJECT ENQUIRIES ====================

type EnquiryHandler struct {
	service usecase.EnquiryService
	log     *zap.Logger
}

func NewEnquiryHandler(service usecase.EnquiryService, log *zap.Logger) *EnquiryHandler {
	return &EnquiryHandler{service: service, log: log.With(zap.String("handler", "enquiry"))}
}

// Create handles POST /api/project-enquiries (identity bearer)
func (h *EnquiryHandler) Create(w http.ResponseWriter, r *http.Request) {
	principal, ok := utils.GetPrincipal(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.ProjectEnquiryRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	enquiry, err := h.service.Create(r.Context(), principal.ID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create enquiry")
		return
	}
	utils.ResponseCreated(w, "Enquiry submitted successfully", enquiry)
}

// List handles GET /api/project-enquiries (staff)
func (h *EnquiryHandler) List(w http.ResponseWriter, r *http.Request) {
	enquiries, err := h.service.List(r.Context(), pageRequest(r))
	if err != nil {
		handleServiceError(w, h.log, err, "list enquiries")
		return
	}
	utils.ResponseSuccess(w, "Enquiries retrieved successfully", enquiries)
}

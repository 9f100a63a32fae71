package adaptor

import (
	"net/http"

	"realty-backend/internal/dto/request"
	"realty-backend/internal/usecase"
	"realty-backend/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// ==================== PROJECT IMAGES ====================

type ProjectImageHandler struct {
	service usecase.ProjectImageService
	log     *zap.Logger
}

func NewProjectImageHandler(service usecase.ProjectImageService, log *zap.Logger) *ProjectImageHandler {
	return &ProjectImageHandler{service: service, log: log.With(zap.String("handler", "project_image"))}
}

// List handles GET /api/project-images?project=
func (h *ProjectImageHandler) List(w http.ResponseWriter, r *http.Request) {
	images, err := h.service.List(r.Context(), pageRequest(r), queryString(r, "project"))
	if err != nil {
		handleServiceError(w, h.log, err, "list project images")
		return
	}
	utils.ResponseSuccess(w, "Images retrieved successfully", images)
}

func (h *ProjectImageHandler) Get(w http.ResponseWriter, r *http.Request) {
	image, err := h.service.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, h.log, err, "get project image")
		return
	}
	utils.ResponseSuccess(w, "Image retrieved successfully", image)
}

func (h *ProjectImageHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.ProjectImageRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	image, err := h.service.Create(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create project image")
		return
	}
	utils.ResponseCreated(w, "Image created successfully", image)
}

func (h *ProjectImageHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req request.ProjectImageUpdateRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	image, err := h.service.Update(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update project image")
		return
	}
	utils.ResponseSuccess(w, "Image updated successfully", image)
}

func (h *ProjectImageHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		handleServiceError(w, h.log, err, "delete project image")
		return
	}
	utils.ResponseSuccess(w, "Image deleted successfully", nil)
}

// ==================== AMENITIES ====================

// AmenityHandler serves both project and tower amenities. parent is the
// query key used to filter the list.
type AmenityHandler struct {
	service usecase.AmenityService
	parent  string
	log     *zap.Logger
}

func NewAmenityHandler(service usecase.AmenityService, parent string, log *zap.Logger) *AmenityHandler {
	return &AmenityHandler{
		service: service,
		parent:  parent,
		log:     log.With(zap.String("handler", parent+"_amenity")),
	}
}

// List handles GET /api/{project,tower}-amenities?{project,tower}=
func (h *AmenityHandler) List(w http.ResponseWriter, r *http.Request) {
	amenities, err := h.service.List(r.Context(), pageRequest(r), queryString(r, h.parent))
	if err != nil {
		handleServiceError(w, h.log, err, "list amenities")
		return
	}
	utils.ResponseSuccess(w, "Amenities retrieved successfully", amenities)
}

func (h *AmenityHandler) Get(w http.ResponseWriter, r *http.Request) {
	amenity, err := h.service.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, h.log, err, "get amenity")
		return
	}
	utils.ResponseSuccess(w, "Amenity retrieved successfully", amenity)
}

func (h *AmenityHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.AmenityRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	amenity, err := h.service.Create(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create amenity")
		return
	}
	utils.ResponseCreated(w, "Amenity created successfully", amenity)
}

func (h *AmenityHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req request.AmenityUpdateRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	amenity, err := h.service.Update(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update amenity")
		return
	}
	utils.ResponseSuccess(w, "Amenity updated successfully", amenity)
}

func (h *AmenityHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		handleServiceError(w, h.log, err, "delete amenity")
		return
	}
	utils.ResponseSuccess(w, "Amenity deleted successfully", nil)
}

package adaptor

import (
	"net/http"

	"realty-backend/internal/data/repository"
	"realty-backend/internal/dto/request"
	"realty-backend/internal/usecase"
	"realty-backend/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// ==================== CITIES ====================

type CityHandler struct {
	service usecase.CityService
	log     *zap.Logger
}

func NewCityHandler(service usecase.CityService, log *zap.Logger) *CityHandler {
	return &CityHandler{service: service, log: log.With(zap.String("handler", "city"))}
}

// List handles GET /api/cities
func (h *CityHandler) List(w http.ResponseWriter, r *http.Request) {
	cities, err := h.service.List(r.Context(), pageRequest(r), queryString(r, "search"), isStaff(r))
	if err != nil {
		handleServiceError(w, h.log, err, "list cities")
		return
	}
	utils.ResponseSuccess(w, "Cities retrieved successfully", cities)
}

// Get handles GET /api/cities/{id}
func (h *CityHandler) Get(w http.ResponseWriter, r *http.Request) {
	city, err := h.service.Get(r.Context(), chi.URLParam(r, "id"), isStaff(r))
	if err != nil {
		handleServiceError(w, h.log, err, "get city")
		return
	}
	utils.ResponseSuccess(w, "City retrieved successfully", city)
}

// Create handles POST /api/cities
func (h *CityHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CityRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	city, err := h.service.Create(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create city")
		return
	}
	utils.ResponseCreated(w, "City created successfully", city)
}

// Update handles PUT/PATCH /api/cities/{id}
func (h *CityHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req request.CityUpdateRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	city, err := h.service.Update(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update city")
		return
	}
	utils.ResponseSuccess(w, "City updated successfully", city)
}

// Delete handles DELETE /api/cities/{id}
func (h *CityHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		handleServiceError(w, h.log, err, "delete city")
		return
	}
	utils.ResponseSuccess(w, "City deleted successfully", nil)
}

// ==================== PROJECTS ====================

type ProjectHandler struct {
	service usecase.ProjectService
	log     *zap.Logger
}

func NewProjectHandler(service usecase.ProjectService, log *zap.Logger) *ProjectHandler {
	return &ProjectHandler{service: service, log: log.With(zap.String("handler", "project"))}
}

// List handles GET /api/projects
func (h *ProjectHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := repository.ProjectFilter{
		PropertyType:    queryString(r, "property_type"),
		TransactionType: queryString(r, "transaction_type"),
		Featured:        utils.ParseBoolPtr(q.Get("featured")),
		IsHot:           utils.ParseBoolPtr(q.Get("is_hot")),
		City:            queryString(r, "city"),
		ProjectStatus:   queryString(r, "project_status"),
		FlatType:        queryString(r, "flat_type"),
		Search:          queryString(r, "search"),
		Ordering:        q.Get("ordering"),
	}
	if raw := queryString(r, "city_id"); raw != nil {
		cityID, err := utils.ParseUUID(*raw)
		if err != nil {
			utils.ResponseBadRequest(w, "Invalid city id", nil)
			return
		}
		filter.CityID = &cityID
	}

	projects, err := h.service.List(r.Context(), pageRequest(r), filter)
	if err != nil {
		handleServiceError(w, h.log, err, "list projects")
		return
	}
	utils.ResponseSuccess(w, "Projects retrieved successfully", projects)
}

// Get handles GET /api/projects/{id}
func (h *ProjectHandler) Get(w http.ResponseWriter, r *http.Request) {
	project, err := h.service.Get(r.Context(), chi.URLParam(r, "id"), isStaff(r))
	if err != nil {
		handleServiceError(w, h.log, err, "get project")
		return
	}
	utils.ResponseSuccess(w, "Project retrieved successfully", project)
}

// Create handles POST /api/projects
func (h *ProjectHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.ProjectRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	project, err := h.service.Create(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create project")
		return
	}
	utils.ResponseCreated(w, "Project created successfully", project)
}

// Update handles PUT/PATCH /api/projects/{id}
func (h *ProjectHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req request.ProjectUpdateRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	project, err := h.service.Update(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update project")
		return
	}
	utils.ResponseSuccess(w, "Project updated successfully", project)
}

// Delete handles DELETE /api/projects/{id}
func (h *ProjectHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		handleServiceError(w, h.log, err, "delete project")
		return
	}
	utils.ResponseSuccess(w, "Project deleted successfully", nil)
}

// ==================== TOWERS ====================

type TowerHandler struct {
	service usecase.TowerService
	log     *zap.Logger
}

func NewTowerHandler(service usecase.TowerService, log *zap.Logger) *TowerHandler {
	return &TowerHandler{service: service, log: log.With(zap.String("handler", "tower"))}
}

// List handles GET /api/towers?project=
func (h *TowerHandler) List(w http.ResponseWriter, r *http.Request) {
	towers, err := h.service.List(r.Context(), pageRequest(r), queryString(r, "project"), isStaff(r))
	if err != nil {
		handleServiceError(w, h.log, err, "list towers")
		return
	}
	utils.ResponseSuccess(w, "Towers retrieved successfully", towers)
}

// Get handles GET /api/towers/{id}
func (h *TowerHandler) Get(w http.ResponseWriter, r *http.Request) {
	tower, err := h.service.Get(r.Context(), chi.URLParam(r, "id"), isStaff(r))
	if err != nil {
		handleServiceError(w, h.log, err, "get tower")
		return
	}
	utils.ResponseSuccess(w, "Tower retrieved successfully", tower)
}

// Create handles POST /api/towers
func (h *TowerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.TowerRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	tower, err := h.service.Create(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create tower")
		return
	}
	utils.ResponseCreated(w, "Tower created successfully", tower)
}

// Update handles PUT/PATCH /api/towers/{id}
func (h *TowerHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req request.TowerUpdateRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	tower, err := h.service.Update(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update tower")
		return
	}
	utils.ResponseSuccess(w, "Tower updated successfully", tower)
}

// Delete handles DELETE /api/towers/{id}
func (h *TowerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		handleServiceError(w, h.log, err, "delete tower")
		return
	}
	utils.ResponseSuccess(w, "Tower deleted successfully", nil)
}

// ==================== FLATS ====================

type FlatHandler struct {
	service usecase.FlatService
	log     *zap.Logger
}

func NewFlatHandler(service usecase.FlatService, log *zap.Logger) *FlatHandler {
	return &FlatHandler{service: service, log: log.With(zap.String("handler", "flat"))}
}

// List handles GET /api/flats?tower=&flat_type=&status=&floor=&search=
func (h *FlatHandler) List(w http.ResponseWriter, r *http.Request) {
	query := usecase.FlatListQuery{
		TowerID:  queryString(r, "tower"),
		FlatType: queryString(r, "flat_type"),
		Status:   queryString(r, "status"),
		Floor:    utils.ParseIntPtr(r.URL.Query().Get("floor")),
		Search:   queryString(r, "search"),
	}

	flats, err := h.service.List(r.Context(), pageRequest(r), query)
	if err != nil {
		handleServiceError(w, h.log, err, "list flats")
		return
	}
	utils.ResponseSuccess(w, "Flats retrieved successfully", flats)
}

// Get handles GET /api/flats/{id}
func (h *FlatHandler) Get(w http.ResponseWriter, r *http.Request) {
	flat, err := h.service.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, h.log, err, "get flat")
		return
	}
	utils.ResponseSuccess(w, "Flat retrieved successfully", flat)
}

// Create handles POST /api/flats
func (h *FlatHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.FlatRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	flat, err := h.service.Create(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create flat")
		return
	}
	utils.ResponseCreated(w, "Flat created successfully", flat)
}

// Update handles PUT/PATCH /api/flats/{id}
func (h *FlatHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req request.FlatUpdateRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	flat, err := h.service.Update(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update flat")
		return
	}
	utils.ResponseSuccess(w, "Flat updated successfully", flat)
}

// Delete handles DELETE /api/flats/{id}
func (h *FlatHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		handleServiceError(w, h.log, err, "delete flat")
		return
	}
	utils.ResponseSuccess(w, "Flat deleted successfully", nil)
}

package usecase

import (
	"context"
	"strings"

	"realty-backend/internal/data/entity"
	"realty-backend/internal/data/repository"
	"realty-backend/internal/dto/request"
	"realty-backend/internal/dto/response"
	"realty-backend/pkg/apperror"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ==================== PROJECT IMAGES ====================

type ProjectImageService interface {
	List(ctx context.Context, req *request.PaginatedRequest, projectID *string) (*response.PaginatedResponse[response.ProjectImageResponse], error)
	Get(ctx context.Context, imageID string) (*response.ProjectImageResponse, error)
	Create(ctx context.Context, req *request.ProjectImageRequest) (*response.ProjectImageResponse, error)
	Update(ctx context.Context, imageID string, req *request.ProjectImageUpdateRequest) (*response.ProjectImageResponse, error)
	Delete(ctx context.Context, imageID string) error
}

type projectImageService struct {
	repo repository.ProjectImageRepository
	now  Clock
	log  *zap.Logger
}

func NewProjectImageService(repo repository.ProjectImageRepository, now Clock, log *zap.Logger) ProjectImageService {
	return &projectImageService{repo: repo, now: now, log: log.With(zap.String("service", "project_image"))}
}

func (s *projectImageService) List(ctx context.Context, req *request.PaginatedRequest, projectID *string) (*response.PaginatedResponse[response.ProjectImageResponse], error) {
	pid, err := parseOptionalID(projectID, "project")
	if err != nil {
		return nil, err
	}
	images, err := s.repo.FindAll(ctx, pid, req.Limit(), req.Offset())
	if err != nil {
		return nil, storeError(s.log, "list project images", "Project image", err)
	}
	total, err := s.repo.Count(ctx, pid)
	if err != nil {
		return nil, storeError(s.log, "count project images", "Project image", err)
	}
	return response.NewPaginatedResponse(response.MapSlice(images, response.ProjectImageToResponse), req.Page, req.Limit(), total), nil
}

func (s *projectImageService) find(ctx context.Context, imageID string) (*entity.ProjectImage, error) {
	id, err := parseID(imageID, "project image")
	if err != nil {
		return nil, err
	}
	image, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, storeError(s.log, "get project image", "Project image", err)
	}
	if image == nil {
		return nil, notFound("Project image")
	}
	return image, nil
}

func (s *projectImageService) Get(ctx context.Context, imageID string) (*response.ProjectImageResponse, error) {
	image, err := s.find(ctx, imageID)
	if err != nil {
		return nil, err
	}
	resp := response.ProjectImageToResponse(image)
	return &resp, nil
}

func (s *projectImageService) Create(ctx context.Context, req *request.ProjectImageRequest) (*response.ProjectImageResponse, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	projectID, err := parseID(req.ProjectID, "project")
	if err != nil {
		return nil, err
	}

	image := &entity.ProjectImage{
		BaseSimple: entity.BaseSimple{ID: uuid.New(), CreatedAt: s.now()},
		ProjectID:  projectID,
		ImageURL:   req.ImageURL,
		Title:      req.Title,
		Category:   "other",
		SortOrder:  req.SortOrder,
	}
	if req.Category != "" {
		image.Category = req.Category
	}

	if err := s.repo.Create(ctx, image); err != nil {
		return nil, storeError(s.log, "create project image", "Project image", err)
	}
	s.log.Info("Project image created", zap.String("image_id", image.ID.String()), zap.String("project_id", req.ProjectID))
	resp := response.ProjectImageToResponse(image)
	return &resp, nil
}

func (s *projectImageService) Update(ctx context.Context, imageID string, req *request.ProjectImageUpdateRequest) (*response.ProjectImageResponse, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	image, err := s.find(ctx, imageID)
	if err != nil {
		return nil, err
	}

	updated := setIf(&image.ImageURL, req.ImageURL)
	updated = setIf(&image.Title, req.Title) || updated
	updated = setIf(&image.Category, req.Category) || updated
	updated = setIf(&image.SortOrder, req.SortOrder) || updated

	if updated {
		if err := s.repo.Update(ctx, image); err != nil {
			return nil, storeError(s.log, "update project image", "Project image", err)
		}
	}
	resp := response.ProjectImageToResponse(image)
	return &resp, nil
}

func (s *projectImageService) Delete(ctx context.Context, imageID string) error {
	id, err := parseID(imageID, "project image")
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return storeError(s.log, "delete project image", "Project image", err)
	}
	s.log.Info("Project image deleted", zap.String("image_id", imageID))
	return nil
}

// ==================== AMENITIES ====================

type AmenityService interface {
	List(ctx context.Context, req *request.PaginatedRequest, parentID *string) (*response.PaginatedResponse[response.AmenityResponse], error)
	Get(ctx context.Context, amenityID string) (*response.AmenityResponse, error)
	Create(ctx context.Context, req *request.AmenityRequest) (*response.AmenityResponse, error)
	Update(ctx context.Context, amenityID string, req *request.AmenityUpdateRequest) (*response.AmenityResponse, error)
	Delete(ctx context.Context, amenityID string) error
}

type projectAmenityService struct {
	repo repository.ProjectAmenityRepository
	now  Clock
	log  *zap.Logger
}

func NewProjectAmenityService(repo repository.ProjectAmenityRepository, now Clock, log *zap.Logger) AmenityService {
	return &projectAmenityService{repo: repo, now: now, log: log.With(zap.String("service", "project_amenity"))}
}

func (s *projectAmenityService) List(ctx context.Context, req *request.PaginatedRequest, projectID *string) (*response.PaginatedResponse[response.AmenityResponse], error) {
	pid, err := parseOptionalID(projectID, "project")
	if err != nil {
		return nil, err
	}
	items, err := s.repo.FindAll(ctx, pid, req.Limit(), req.Offset())
	if err != nil {
		return nil, storeError(s.log, "list project amenities", "Amenity", err)
	}
	total, err := s.repo.Count(ctx, pid)
	if err != nil {
		return nil, storeError(s.log, "count project amenities", "Amenity", err)
	}
	return response.NewPaginatedResponse(response.MapSlice(items, response.ProjectAmenityToResponse), req.Page, req.Limit(), total), nil
}

func (s *projectAmenityService) find(ctx context.Context, amenityID string) (*entity.ProjectAmenity, error) {
	id, err := parseID(amenityID, "amenity")
	if err != nil {
		return nil, err
	}
	amenity, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, storeError(s.log, "get project amenity", "Amenity", err)
	}
	if amenity == nil {
		return nil, notFound("Amenity")
	}
	return amenity, nil
}

func (s *projectAmenityService) Get(ctx context.Context, amenityID string) (*response.AmenityResponse, error) {
	amenity, err := s.find(ctx, amenityID)
	if err != nil {
		return nil, err
	}
	resp := response.ProjectAmenityToResponse(amenity)
	return &resp, nil
}

func (s *projectAmenityService) Create(ctx context.Context, req *request.AmenityRequest) (*response.AmenityResponse, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	if req.ProjectID == "" {
		return nil, apperror.MissingFields("project_id is required")
	}
	projectID, err := parseID(req.ProjectID, "project")
	if err != nil {
		return nil, err
	}

	amenity := &entity.ProjectAmenity{
		BaseSimple: entity.BaseSimple{ID: uuid.New(), CreatedAt: s.now()},
		ProjectID:  projectID,
		Name:       strings.TrimSpace(req.Name),
		Icon:       req.Icon,
		SortOrder:  req.SortOrder,
	}
	if err := s.repo.Create(ctx, amenity); err != nil {
		return nil, storeError(s.log, "create project amenity", "Amenity", err)
	}
	s.log.Info("Project amenity created", zap.String("amenity_id", amenity.ID.String()))
	resp := response.ProjectAmenityToResponse(amenity)
	return &resp, nil
}

func (s *projectAmenityService) Update(ctx context.Context, amenityID string, req *request.AmenityUpdateRequest) (*response.AmenityResponse, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	amenity, err := s.find(ctx, amenityID)
	if err != nil {
		return nil, err
	}

	updated := setIf(&amenity.Name, req.Name)
	updated = setIf(&amenity.Icon, req.Icon) || updated
	updated = setIf(&amenity.SortOrder, req.SortOrder) || updated
	if updated {
		if err := s.repo.Update(ctx, amenity); err != nil {
			return nil, storeError(s.log, "update project amenity", "Amenity", err)
		}
	}
	resp := response.ProjectAmenityToResponse(amenity)
	return &resp, nil
}

func (s *projectAmenityService) Delete(ctx context.Context, amenityID string) error {
	id, err := parseID(amenityID, "amenity")
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return storeError(s.log, "delete project amenity", "Amenity", err)
	}
	return nil
}

type towerAmenityService struct {
	repo repository.TowerAmenityRepository
	now  Clock
	log  *zap.Logger
}

func NewTowerAmenityService(repo repository.TowerAmenityRepository, now Clock, log *zap.Logger) AmenityService {
	return &towerAmenityService{repo: repo, now: now, log: log.With(zap.String("service", "tower_amenity"))}
}

func (s *towerAmenityService) List(ctx context.Context, req *request.PaginatedRequest, towerID *string) (*response.PaginatedResponse[response.AmenityResponse], error) {
	tid, err := parseOptionalID(towerID, "tower")
	if err != nil {
		return nil, err
	}
	items, err := s.repo.FindAll(ctx, tid, req.Limit(), req.Offset())
	if err != nil {
		return nil, storeError(s.log, "list tower amenities", "Amenity", err)
	}
	total, err := s.repo.Count(ctx, tid)
	if err != nil {
		return nil, storeError(s.log, "count tower amenities", "Amenity", err)
	}
	return response.NewPaginatedResponse(response.MapSlice(items, response.TowerAmenityToResponse), req.Page, req.Limit(), total), nil
}

func (s *towerAmenityService) find(ctx context.Context, amenityID string) (*entity.TowerAmenity, error) {
	id, err := parseID(amenityID, "amenity")
	if err != nil {
		return nil, err
	}
	amenity, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, storeError(s.log, "get tower amenity", "Amenity", err)
	}
	if amenity == nil {
		return nil, notFound("Amenity")
	}
	return amenity, nil
}

func (s *towerAmenityService) Get(ctx context.Context, amenityID string) (*response.AmenityResponse, error) {
	amenity, err := s.find(ctx, amenityID)
	if err != nil {
		return nil, err
	}
	resp := response.TowerAmenityToResponse(amenity)
	return &resp, nil
}

func (s *towerAmenityService) Create(ctx context.Context, req *request.AmenityRequest) (*response.AmenityResponse, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	if req.TowerID == "" {
		return nil, apperror.MissingFields("tower_id is required")
	}
	towerID, err := parseID(req.TowerID, "tower")
	if err != nil {
		return nil, err
	}

	amenity := &entity.TowerAmenity{
		BaseSimple: entity.BaseSimple{ID: uuid.New(), CreatedAt: s.now()},
		TowerID:    towerID,
		Name:       strings.TrimSpace(req.Name),
		Icon:       req.Icon,
		SortOrder:  req.SortOrder,
	}
	if err := s.repo.Create(ctx, amenity); err != nil {
		return nil, storeError(s.log, "create tower amenity", "Amenity", err)
	}
	s.log.Info("Tower amenity created", zap.String("amenity_id", amenity.ID.String()))
	resp := response.TowerAmenityToResponse(amenity)
	return &resp, nil
}

func (s *towerAmenityService) Update(ctx context.Context, amenityID string, req *request.AmenityUpdateRequest) (*response.AmenityResponse, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	amenity, err := s.find(ctx, amenityID)
	if err != nil {
		return nil, err
	}

	updated := setIf(&amenity.Name, req.Name)
	updated = setIf(&amenity.Icon, req.Icon) || updated
	updated = setIf(&amenity.SortOrder, req.SortOrder) || updated
	if updated {
		if err := s.repo.Update(ctx, amenity); err != nil {
			return nil, storeError(s.log, "update tower amenity", "Amenity", err)
		}
	}
	resp := response.TowerAmenityToResponse(amenity)
	return &resp, nil
}

func (s *towerAmenityService) Delete(ctx context.Context, amenityID string) error {
	id, err := parseID(amenityID, "amenity")
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return storeError(s.log, "delete tower amenity", "Amenity", err)
	}
	return nil
}

package usecase

import (
	"context"
	"strings"

	"realty-backend/internal/data/entity"
	"realty-backend/internal/data/repository"
	"realty-backend/internal/dto/request"
	"realty-backend/internal/dto/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// embedLimit caps the children embedded in a detail response.
const embedLimit = 500

type ProjectService interface {
	List(ctx context.Context, req *request.PaginatedRequest, filter repository.ProjectFilter) (*response.PaginatedResponse[response.ProjectResponse], error)
	Get(ctx context.Context, projectID string, staff bool) (*response.ProjectDetailResponse, error)
	Create(ctx context.Context, req *request.ProjectRequest) (*response.ProjectResponse, error)
	Update(ctx context.Context, projectID string, req *request.ProjectUpdateRequest) (*response.ProjectResponse, error)
	Delete(ctx context.Context, projectID string) error
}

type projectService struct {
	repo *repository.Repository
	now  Clock
	log  *zap.Logger
}

func NewProjectService(repo *repository.Repository, now Clock, log *zap.Logger) ProjectService {
	return &projectService{repo: repo, now: now, log: log.With(zap.String("service", "project"))}
}

func (s *projectService) List(ctx context.Context, req *request.PaginatedRequest, filter repository.ProjectFilter) (*response.PaginatedResponse[response.ProjectResponse], error) {
	projects, err := s.repo.Project.FindAll(ctx, filter, req.Limit(), req.Offset())
	if err != nil {
		return nil, storeError(s.log, "list projects", "Project", err)
	}
	total, err := s.repo.Project.Count(ctx, filter)
	if err != nil {
		return nil, storeError(s.log, "count projects", "Project", err)
	}

	s.log.Debug("Projects retrieved", zap.Int("count", len(projects)), zap.Int64("total", total))
	return response.NewPaginatedResponse(response.MapSlice(projects, response.ProjectToResponse), req.Page, req.Limit(), total), nil
}

// Get returns the project with its images, amenities and towers, and counts
// the view.
func (s *projectService) Get(ctx context.Context, projectID string, staff bool) (*response.ProjectDetailResponse, error) {
	id, err := parseID(projectID, "project")
	if err != nil {
		return nil, err
	}
	project, err := s.repo.Project.FindByID(ctx, id)
	if err != nil {
		return nil, storeError(s.log, "get project", "Project", err)
	}
	if project == nil {
		return nil, notFound("Project")
	}

	views, err := s.repo.Project.IncrementViews(ctx, id)
	if err != nil {
		// view counter bukan hal kritis
		s.log.Warn("Failed to increment project views", zap.Error(err), zap.String("project_id", projectID))
	} else {
		project.Views = views
	}

	images, err := s.repo.ProjectImage.FindAll(ctx, &id, embedLimit, 0)
	if err != nil {
		return nil, storeError(s.log, "get project images", "Project", err)
	}
	amenities, err := s.repo.ProjectAmenity.FindAll(ctx, &id, embedLimit, 0)
	if err != nil {
		return nil, storeError(s.log, "get project amenities", "Project", err)
	}
	towers, err := s.repo.Tower.FindAll(ctx, repository.TowerFilter{ProjectID: &id, ActiveOnly: !staff}, embedLimit, 0)
	if err != nil {
		return nil, storeError(s.log, "get project towers", "Project", err)
	}

	return &response.ProjectDetailResponse{
		ProjectResponse: response.ProjectToResponse(project),
		Images:          response.MapSlice(images, response.ProjectImageToResponse),
		Amenities:       response.MapSlice(amenities, response.ProjectAmenityToResponse),
		Towers:          response.MapSlice(towers, response.TowerToResponse),
	}, nil
}

func (s *projectService) Create(ctx context.Context, req *request.ProjectRequest) (*response.ProjectResponse, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	cityID, err := parseOptionalID(req.CityID, "city")
	if err != nil {
		return nil, err
	}

	now := s.now()
	project := &entity.Project{
		BaseNoDelete:       entity.BaseNoDelete{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		Title:              strings.TrimSpace(req.Title),
		PropertyType:       entity.PropertyType(req.PropertyType),
		TransactionType:    "buy",
		IsHot:              req.IsHot,
		AvailableFlatTypes: req.AvailableFlatTypes,
		Location:           req.Location,
		CityID:             cityID,
		CityName:           "Pune",
		State:              defaultState,
		Description:        req.Description,
		CoverImageURL:      req.CoverImageURL,
		Price:              req.Price,
		Featured:           req.Featured,
		IDNumber:           req.IDNumber,
		AboutListing:       req.AboutListing,
		MapLocation:        req.MapLocation,
		RERANumber:         req.RERANumber,
		LandArea:           req.LandArea,
		AmenitiesArea:      req.AmenitiesArea,
		TotalUnits:         req.TotalUnits,
		TotalTowers:        req.TotalTowers,
		DeveloperName:      req.DeveloperName,
		Specifications:     req.Specifications,
	}
	if req.TransactionType != "" {
		project.TransactionType = req.TransactionType
	}
	if req.CityName != "" {
		project.CityName = req.CityName
	}
	if req.State != "" {
		project.State = req.State
	}
	if req.ProjectStatus != nil {
		status := entity.ProjectStatus(*req.ProjectStatus)
		project.ProjectStatus = &status
	}
	if project.Specifications == nil {
		project.Specifications = map[string]string{}
	}

	if err := s.repo.Project.Create(ctx, project); err != nil {
		return nil, storeError(s.log, "create project", "Project", err)
	}

	s.log.Info("Project created", zap.String("project_id", project.ID.String()), zap.String("title", project.Title))
	resp := response.ProjectToResponse(project)
	return &resp, nil
}

func (s *projectService) Update(ctx context.Context, projectID string, req *request.ProjectUpdateRequest) (*response.ProjectResponse, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	id, err := parseID(projectID, "project")
	if err != nil {
		return nil, err
	}
	project, err := s.repo.Project.FindByID(ctx, id)
	if err != nil {
		return nil, storeError(s.log, "get project", "Project", err)
	}
	if project == nil {
		return nil, notFound("Project")
	}

	// Apply partial updates only for provided fields
	updated := setIf(&project.Title, req.Title)
	if req.PropertyType != nil {
		project.PropertyType = entity.PropertyType(*req.PropertyType)
		updated = true
	}
	if req.ProjectStatus != nil {
		status := entity.ProjectStatus(*req.ProjectStatus)
		project.ProjectStatus = &status
		updated = true
	}
	if req.CityID != nil {
		cityID, err := parseOptionalID(req.CityID, "city")
		if err != nil {
			return nil, err
		}
		project.CityID = cityID
		updated = true
	}
	if req.Specifications != nil {
		project.Specifications = req.Specifications
		updated = true
	}
	if req.TotalUnits != nil {
		project.TotalUnits = req.TotalUnits
		updated = true
	}
	if req.TotalTowers != nil {
		project.TotalTowers = req.TotalTowers
		updated = true
	}
	for _, apply := range []bool{
		setIf(&project.TransactionType, req.TransactionType),
		setIf(&project.IsHot, req.IsHot),
		setIf(&project.AvailableFlatTypes, req.AvailableFlatTypes),
		setIf(&project.Location, req.Location),
		setIf(&project.CityName, req.CityName),
		setIf(&project.State, req.State),
		setIf(&project.Description, req.Description),
		setIf(&project.CoverImageURL, req.CoverImageURL),
		setIf(&project.Price, req.Price),
		setIf(&project.Featured, req.Featured),
		setIf(&project.IDNumber, req.IDNumber),
		setIf(&project.AboutListing, req.AboutListing),
		setIf(&project.MapLocation, req.MapLocation),
		setIf(&project.RERANumber, req.RERANumber),
		setIf(&project.LandArea, req.LandArea),
		setIf(&project.AmenitiesArea, req.AmenitiesArea),
		setIf(&project.DeveloperName, req.DeveloperName),
	} {
		updated = updated || apply
	}

	if updated {
		project.UpdatedAt = s.now()
		if err := s.repo.Project.Update(ctx, project); err != nil {
			return nil, storeError(s.log, "update project", "Project", err)
		}
	}

	s.log.Info("Project updated", zap.String("project_id", projectID), zap.Bool("was_updated", updated))
	resp := response.ProjectToResponse(project)
	return &resp, nil
}

func (s *projectService) Delete(ctx context.Context, projectID string) error {
	id, err := parseID(projectID, "project")
	if err != nil {
		return err
	}
	if err := s.repo.Project.Delete(ctx, id); err != nil {
		return storeError(s.log, "delete project", "Project", err)
	}
	s.log.Info("Project deleted", zap.String("project_id", projectID))
	return nil
}

package usecase

import (
	"context"
	"strings"
	"time"

	"realty-backend/internal/data/entity"
	"realty-backend/internal/data/repository"
	"realty-backend/internal/dto/request"
	"realty-backend/internal/dto/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type TowerService interface {
	List(ctx context.Context, req *request.PaginatedRequest, projectID *string, staff bool) (*response.PaginatedResponse[response.TowerResponse], error)
	Get(ctx context.Context, towerID string, staff bool) (*response.TowerDetailResponse, error)
	Create(ctx context.Context, req *request.TowerRequest) (*response.TowerResponse, error)
	Update(ctx context.Context, towerID string, req *request.TowerUpdateRequest) (*response.TowerResponse, error)
	Delete(ctx context.Context, towerID string) error
}

type towerService struct {
	repo *repository.Repository
	now  Clock
	log  *zap.Logger
}

func NewTowerService(repo *repository.Repository, now Clock, log *zap.Logger) TowerService {
	return &towerService{repo: repo, now: now, log: log.With(zap.String("service", "tower"))}
}

func (s *towerService) List(ctx context.Context, req *request.PaginatedRequest, projectID *string, staff bool) (*response.PaginatedResponse[response.TowerResponse], error) {
	pid, err := parseOptionalID(projectID, "project")
	if err != nil {
		return nil, err
	}
	filter := repository.TowerFilter{ProjectID: pid, ActiveOnly: !staff}

	towers, err := s.repo.Tower.FindAll(ctx, filter, req.Limit(), req.Offset())
	if err != nil {
		return nil, storeError(s.log, "list towers", "Tower", err)
	}
	total, err := s.repo.Tower.Count(ctx, filter)
	if err != nil {
		return nil, storeError(s.log, "count towers", "Tower", err)
	}
	return response.NewPaginatedResponse(response.MapSlice(towers, response.TowerToResponse), req.Page, req.Limit(), total), nil
}

func (s *towerService) find(ctx context.Context, towerID string, staff bool) (*entity.Tower, error) {
	id, err := parseID(towerID, "tower")
	if err != nil {
		return nil, err
	}
	tower, err := s.repo.Tower.FindByID(ctx, id)
	if err != nil {
		return nil, storeError(s.log, "get tower", "Tower", err)
	}
	if tower == nil || (!staff && !tower.IsActive) {
		return nil, notFound("Tower")
	}
	return tower, nil
}

func (s *towerService) Get(ctx context.Context, towerID string, staff bool) (*response.TowerDetailResponse, error) {
	tower, err := s.find(ctx, towerID, staff)
	if err != nil {
		return nil, err
	}

	flats, err := s.repo.Flat.FindAll(ctx, repository.FlatFilter{TowerID: &tower.ID}, embedLimit, 0)
	if err != nil {
		return nil, storeError(s.log, "get tower flats", "Tower", err)
	}
	amenities, err := s.repo.TowerAmenity.FindAll(ctx, &tower.ID, embedLimit, 0)
	if err != nil {
		return nil, storeError(s.log, "get tower amenities", "Tower", err)
	}

	return &response.TowerDetailResponse{
		TowerResponse: response.TowerToResponse(tower),
		Flats:         response.MapSlice(flats, response.FlatToResponse),
		Amenities:     response.MapSlice(amenities, response.TowerAmenityToResponse),
	}, nil
}

func (s *towerService) Create(ctx context.Context, req *request.TowerRequest) (*response.TowerResponse, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	projectID, err := parseID(req.ProjectID, "project")
	if err != nil {
		return nil, err
	}
	start, err := parseDate(req.StartDate, "start_date")
	if err != nil {
		return nil, err
	}
	completion, err := parseDate(req.CompletionDate, "completion_date")
	if err != nil {
		return nil, err
	}
	reraCompletion, err := parseDate(req.RERACompletionDate, "rera_completion_date")
	if err != nil {
		return nil, err
	}

	now := s.now()
	tower := &entity.Tower{
		BaseNoDelete:       entity.BaseNoDelete{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		ProjectID:          projectID,
		Name:               strings.TrimSpace(req.Name),
		TowerNumber:        req.TowerNumber,
		TotalFloors:        req.TotalFloors,
		ParkingFloors:      req.ParkingFloors,
		ResidentialFloors:  req.ResidentialFloors,
		RefugeFloors:       req.RefugeFloors,
		PerFloorFlats:      req.PerFloorFlats,
		TotalLifts:         req.TotalLifts,
		TotalStairs:        req.TotalStairs,
		StartDate:          start,
		CompletionDate:     completion,
		RERACompletionDate: reraCompletion,
		RERANumber:         req.RERANumber,
		BookingStatus:      entity.BookingOpen,
		IsActive:           true,
		SortOrder:          req.SortOrder,
	}
	if req.BookingStatus != "" {
		tower.BookingStatus = entity.BookingStatus(req.BookingStatus)
	}
	setIf(&tower.IsActive, req.IsActive)

	if err := s.repo.Tower.Create(ctx, tower); err != nil {
		return nil, storeError(s.log, "create tower", "Tower", err)
	}

	s.log.Info("Tower created", zap.String("tower_id", tower.ID.String()), zap.String("project_id", req.ProjectID))
	resp := response.TowerToResponse(tower)
	return &resp, nil
}

func (s *towerService) Update(ctx context.Context, towerID string, req *request.TowerUpdateRequest) (*response.TowerResponse, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	tower, err := s.find(ctx, towerID, true)
	if err != nil {
		return nil, err
	}

	updated := false
	for _, d := range []struct {
		raw   *string
		field string
		dst   **time.Time
	}{
		{req.StartDate, "start_date", &tower.StartDate},
		{req.CompletionDate, "completion_date", &tower.CompletionDate},
		{req.RERACompletionDate, "rera_completion_date", &tower.RERACompletionDate},
	} {
		if d.raw == nil {
			continue
		}
		t, err := parseDate(d.raw, d.field)
		if err != nil {
			return nil, err
		}
		*d.dst = t
		updated = true
	}
	if req.BookingStatus != nil {
		tower.BookingStatus = entity.BookingStatus(*req.BookingStatus)
		updated = true
	}
	for _, apply := range []bool{
		setIf(&tower.Name, req.Name),
		setIf(&tower.TowerNumber, req.TowerNumber),
		setIf(&tower.TotalFloors, req.TotalFloors),
		setIf(&tower.ParkingFloors, req.ParkingFloors),
		setIf(&tower.ResidentialFloors, req.ResidentialFloors),
		setIf(&tower.RefugeFloors, req.RefugeFloors),
		setIf(&tower.PerFloorFlats, req.PerFloorFlats),
		setIf(&tower.TotalLifts, req.TotalLifts),
		setIf(&tower.TotalStairs, req.TotalStairs),
		setIf(&tower.RERANumber, req.RERANumber),
		setIf(&tower.IsActive, req.IsActive),
		setIf(&tower.SortOrder, req.SortOrder),
	} {
		updated = updated || apply
	}

	if updated {
		tower.UpdatedAt = s.now()
		if err := s.repo.Tower.Update(ctx, tower); err != nil {
			return nil, storeError(s.log, "update tower", "Tower", err)
		}
	}

	s.log.Info("Tower updated", zap.String("tower_id", towerID), zap.Bool("was_updated", updated))
	resp := response.TowerToResponse(tower)
	return &resp, nil
}

func (s *towerService) Delete(ctx context.Context, towerID string) error {
	id, err := parseID(towerID, "tower")
	if err != nil {
		return err
	}
	if err := s.repo.Tower.Delete(ctx, id); err != nil {
		return storeError(s.log, "delete tower", "Tower", err)
	}
	s.log.Info("Tower deleted", zap.String("tower_id", towerID))
	return nil
}

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

const defaultState = "Maharashtra"

type CityService interface {
	List(ctx context.Context, req *request.PaginatedRequest, search *string, staff bool) (*response.PaginatedResponse[response.CityResponse], error)
	Get(ctx context.Context, cityID string, staff bool) (*response.CityResponse, error)
	Create(ctx context.Context, req *request.CityRequest) (*response.CityResponse, error)
	Update(ctx context.Context, cityID string, req *request.CityUpdateRequest) (*response.CityResponse, error)
	Delete(ctx context.Context, cityID string) error
}

type cityService struct {
	repo repository.CityRepository
	now  Clock
	log  *zap.Logger
}

func NewCityService(repo repository.CityRepository, now Clock, log *zap.Logger) CityService {
	return &cityService{repo: repo, now: now, log: log.With(zap.String("service", "city"))}
}

func (s *cityService) List(ctx context.Context, req *request.PaginatedRequest, search *string, staff bool) (*response.PaginatedResponse[response.CityResponse], error) {
	filter := repository.CityFilter{ActiveOnly: !staff, Search: search}

	cities, err := s.repo.FindAll(ctx, filter, req.Limit(), req.Offset())
	if err != nil {
		return nil, storeError(s.log, "list cities", "City", err)
	}
	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		return nil, storeError(s.log, "count cities", "City", err)
	}

	return response.NewPaginatedResponse(response.MapSlice(cities, response.CityToResponse), req.Page, req.Limit(), total), nil
}

func (s *cityService) find(ctx context.Context, cityID string, staff bool) (*entity.City, error) {
	id, err := parseID(cityID, "city")
	if err != nil {
		return nil, err
	}
	city, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, storeError(s.log, "get city", "City", err)
	}
	if city == nil || (!staff && !city.IsActive) {
		return nil, notFound("City")
	}
	return city, nil
}

func (s *cityService) Get(ctx context.Context, cityID string, staff bool) (*response.CityResponse, error) {
	city, err := s.find(ctx, cityID, staff)
	if err != nil {
		return nil, err
	}
	resp := response.CityToResponse(city)
	return &resp, nil
}

func (s *cityService) Create(ctx context.Context, req *request.CityRequest) (*response.CityResponse, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	now := s.now()
	city := &entity.City{
		BaseNoDelete: entity.BaseNoDelete{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		Name:         strings.TrimSpace(req.Name),
		State:        defaultState,
		IsActive:     true,
		SortOrder:    req.SortOrder,
	}
	setIf(&city.State, req.State)
	setIf(&city.IsActive, req.IsActive)

	if err := s.repo.Create(ctx, city); err != nil {
		return nil, storeError(s.log, "create city", "City", err)
	}

	s.log.Info("City created", zap.String("city_id", city.ID.String()), zap.String("name", city.Name))
	resp := response.CityToResponse(city)
	return &resp, nil
}

func (s *cityService) Update(ctx context.Context, cityID string, req *request.CityUpdateRequest) (*response.CityResponse, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	city, err := s.find(ctx, cityID, true)
	if err != nil {
		return nil, err
	}

	updated := setIf(&city.Name, req.Name)
	updated = setIf(&city.State, req.State) || updated
	updated = setIf(&city.IsActive, req.IsActive) || updated
	updated = setIf(&city.SortOrder, req.SortOrder) || updated

	if updated {
		city.UpdatedAt = s.now()
		if err := s.repo.Update(ctx, city); err != nil {
			return nil, storeError(s.log, "update city", "City", err)
		}
	}

	s.log.Info("City updated", zap.String("city_id", cityID), zap.Bool("was_updated", updated))
	resp := response.CityToResponse(city)
	return &resp, nil
}

func (s *cityService) Delete(ctx context.Context, cityID string) error {
	id, err := parseID(cityID, "city")
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return storeError(s.log, "delete city", "City", err)
	}
	s.log.Info("City deleted", zap.String("city_id", cityID))
	return nil
}

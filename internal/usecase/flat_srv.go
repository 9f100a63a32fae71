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

type FlatListQuery struct {
	TowerID  *string
	FlatType *string
	Status   *string
	Floor    *int
	Search   *string
}

type FlatService interface {
	List(ctx context.Context, req *request.PaginatedRequest, query FlatListQuery) (*response.PaginatedResponse[response.FlatResponse], error)
	Get(ctx context.Context, flatID string) (*response.FlatResponse, error)
	Create(ctx context.Context, req *request.FlatRequest) (*response.FlatResponse, error)
	Update(ctx context.Context, flatID string, req *request.FlatUpdateRequest) (*response.FlatResponse, error)
	Delete(ctx context.Context, flatID string) error
}

type flatService struct {
	repo repository.FlatRepository
	now  Clock
	log  *zap.Logger
}

func NewFlatService(repo repository.FlatRepository, now Clock, log *zap.Logger) FlatService {
	return &flatService{repo: repo, now: now, log: log.With(zap.String("service", "flat"))}
}

func (s *flatService) List(ctx context.Context, req *request.PaginatedRequest, query FlatListQuery) (*response.PaginatedResponse[response.FlatResponse], error) {
	towerID, err := parseOptionalID(query.TowerID, "tower")
	if err != nil {
		return nil, err
	}
	filter := repository.FlatFilter{
		TowerID:  towerID,
		FlatType: query.FlatType,
		Status:   query.Status,
		Floor:    query.Floor,
		Search:   query.Search,
	}

	flats, err := s.repo.FindAll(ctx, filter, req.Limit(), req.Offset())
	if err != nil {
		return nil, storeError(s.log, "list flats", "Flat", err)
	}
	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		return nil, storeError(s.log, "count flats", "Flat", err)
	}
	return response.NewPaginatedResponse(response.MapSlice(flats, response.FlatToResponse), req.Page, req.Limit(), total), nil
}

func (s *flatService) find(ctx context.Context, flatID string) (*entity.Flat, error) {
	id, err := parseID(flatID, "flat")
	if err != nil {
		return nil, err
	}
	flat, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, storeError(s.log, "get flat", "Flat", err)
	}
	if flat == nil {
		return nil, notFound("Flat")
	}
	return flat, nil
}

func (s *flatService) Get(ctx context.Context, flatID string) (*response.FlatResponse, error) {
	flat, err := s.find(ctx, flatID)
	if err != nil {
		return nil, err
	}
	resp := response.FlatToResponse(flat)
	return &resp, nil
}

func (s *flatService) Create(ctx context.Context, req *request.FlatRequest) (*response.FlatResponse, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	towerID, err := parseID(req.TowerID, "tower")
	if err != nil {
		return nil, err
	}

	now := s.now()
	flat := &entity.Flat{
		BaseNoDelete: entity.BaseNoDelete{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		TowerID:      towerID,
		FlatNumber:   strings.TrimSpace(req.FlatNumber),
		FlatType:     req.FlatType,
		FloorNumber:  req.FloorNumber,
		CarpetArea:   req.CarpetArea,
		BuiltUpArea:  req.BuiltUpArea,
		SuperArea:    req.SuperArea,
		Price:        req.Price,
		PricePerSqft: req.PricePerSqft,
		Status:       entity.FlatAvailable,
		Facing:       req.Facing,
		Balcony:      req.Balcony,
		Parking:      req.Parking,
		Description:  req.Description,
	}
	if req.Status != "" {
		flat.Status = entity.FlatStatus(req.Status)
	}

	if err := s.repo.Create(ctx, flat); err != nil {
		return nil, storeError(s.log, "create flat", "Flat", err)
	}

	s.log.Info("Flat created", zap.String("flat_id", flat.ID.String()), zap.String("tower_id", req.TowerID))
	resp := response.FlatToResponse(flat)
	return &resp, nil
}

func (s *flatService) Update(ctx context.Context, flatID string, req *request.FlatUpdateRequest) (*response.FlatResponse, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	flat, err := s.find(ctx, flatID)
	if err != nil {
		return nil, err
	}

	updated := false
	if req.Status != nil {
		flat.Status = entity.FlatStatus(*req.Status)
		updated = true
	}
	for _, ptr := range []struct {
		dst **float64
		src *float64
	}{
		{&flat.CarpetArea, req.CarpetArea},
		{&flat.BuiltUpArea, req.BuiltUpArea},
		{&flat.SuperArea, req.SuperArea},
		{&flat.Price, req.Price},
		{&flat.PricePerSqft, req.PricePerSqft},
	} {
		if ptr.src != nil {
			*ptr.dst = ptr.src
			updated = true
		}
	}
	for _, apply := range []bool{
		setIf(&flat.FlatNumber, req.FlatNumber),
		setIf(&flat.FlatType, req.FlatType),
		setIf(&flat.FloorNumber, req.FloorNumber),
		setIf(&flat.Facing, req.Facing),
		setIf(&flat.Balcony, req.Balcony),
		setIf(&flat.Parking, req.Parking),
		setIf(&flat.Description, req.Description),
	} {
		updated = updated || apply
	}

	if updated {
		flat.UpdatedAt = s.now()
		if err := s.repo.Update(ctx, flat); err != nil {
			return nil, storeError(s.log, "update flat", "Flat", err)
		}
	}

	s.log.Info("Flat updated", zap.String("flat_id", flatID), zap.Bool("was_updated", updated))
	resp := response.FlatToResponse(flat)
	return &resp, nil
}

func (s *flatService) Delete(ctx context.Context, flatID string) error {
	id, err := parseID(flatID, "flat")
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return storeError(s.log, "delete flat", "Flat", err)
	}
	s.log.Info("Flat deleted", zap.String("flat_id", flatID))
	return nil
}

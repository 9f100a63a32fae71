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

// ==================== CLIENTS ====================

type ClientService interface {
	List(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.ClientResponse], error)
	Get(ctx context.Context, clientID string) (*response.ClientResponse, error)
	Create(ctx context.Context, req *request.ClientRequest) (*response.ClientResponse, error)
	Update(ctx context.Context, clientID string, req *request.ClientUpdateRequest) (*response.ClientResponse, error)
	Delete(ctx context.Context, clientID string) error
}

type clientService struct {
	repo repository.ClientRepository
	now  Clock
	log  *zap.Logger
}

func NewClientService(repo repository.ClientRepository, now Clock, log *zap.Logger) ClientService {
	return &clientService{repo: repo, now: now, log: log.With(zap.String("service", "client"))}
}

func (s *clientService) List(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.ClientResponse], error) {
	clients, err := s.repo.FindAll(ctx, req.Limit(), req.Offset())
	if err != nil {
		return nil, storeError(s.log, "list clients", "Client", err)
	}
	total, err := s.repo.Count(ctx)
	if err != nil {
		return nil, storeError(s.log, "count clients", "Client", err)
	}
	return response.NewPaginatedResponse(response.MapSlice(clients, response.ClientToResponse), req.Page, req.Limit(), total), nil
}

func (s *clientService) find(ctx context.Context, clientID string) (*entity.Client, error) {
	id, err := parseID(clientID, "client")
	if err != nil {
		return nil, err
	}
	client, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, storeError(s.log, "get client", "Client", err)
	}
	if client == nil {
		return nil, notFound("Client")
	}
	return client, nil
}

func (s *clientService) Get(ctx context.Context, clientID string) (*response.ClientResponse, error) {
	client, err := s.find(ctx, clientID)
	if err != nil {
		return nil, err
	}
	resp := response.ClientToResponse(client)
	return &resp, nil
}

func (s *clientService) Create(ctx context.Context, req *request.ClientRequest) (*response.ClientResponse, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	client := &entity.Client{
		BaseSimple: entity.BaseSimple{ID: uuid.New(), CreatedAt: s.now()},
		Name:       strings.TrimSpace(req.Name),
		LogoURL:    req.LogoURL,
		Website:    req.Website,
		SortOrder:  req.SortOrder,
	}
	if err := s.repo.Create(ctx, client); err != nil {
		return nil, storeError(s.log, "create client", "Client", err)
	}
	s.log.Info("Client created", zap.String("client_id", client.ID.String()))
	resp := response.ClientToResponse(client)
	return &resp, nil
}

func (s *clientService) Update(ctx context.Context, clientID string, req *request.ClientUpdateRequest) (*response.ClientResponse, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	client, err := s.find(ctx, clientID)
	if err != nil {
		return nil, err
	}
	updated := setIf(&client.Name, req.Name)
	updated = setIf(&client.LogoURL, req.LogoURL) || updated
	updated = setIf(&client.Website, req.Website) || updated
	updated = setIf(&client.SortOrder, req.SortOrder) || updated
	if updated {
		if err := s.repo.Update(ctx, client); err != nil {
			return nil, storeError(s.log, "update client", "Client", err)
		}
	}
	resp := response.ClientToResponse(client)
	return &resp, nil
}

func (s *clientService) Delete(ctx context.Context, clientID string) error {
	id, err := parseID(clientID, "client")
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return storeError(s.log, "delete client", "Client", err)
	}
	s.log.Info("Client deleted", zap.String("client_id", clientID))
	return nil
}

// ==================== ACHIEVEMENTS ====================

type AchievementService interface {
	List(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.AchievementResponse], error)
	Get(ctx context.Context, achievementID string) (*response.AchievementResponse, error)
	Create(ctx context.Context, req *request.AchievementRequest) (*response.AchievementResponse, error)
	Update(ctx context.Context, achievementID string, req *request.AchievementUpdateRequest) (*response.AchievementResponse, error)
	Delete(ctx context.Context, achievementID string) error
}

type achievementService struct {
	repo repository.AchievementRepository
	now  Clock
	log  *zap.Logger
}

func NewAchievementService(repo repository.AchievementRepository, now Clock, log *zap.Logger) AchievementService {
	return &achievementService{repo: repo, now: now, log: log.With(zap.String("service", "achievement"))}
}

func (s *achievementService) List(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.AchievementResponse], error) {
	items, err := s.repo.FindAll(ctx, req.Limit(), req.Offset())
	if err != nil {
		return nil, storeError(s.log, "list achievements", "Achievement", err)
	}
	total, err := s.repo.Count(ctx)
	if err != nil {
		return nil, storeError(s.log, "count achievements", "Achievement", err)
	}
	return response.NewPaginatedResponse(response.MapSlice(items, response.AchievementToResponse), req.Page, req.Limit(), total), nil
}

func (s *achievementService) find(ctx context.Context, achievementID string) (*entity.Achievement, error) {
	id, err := parseID(achievementID, "achievement")
	if err != nil {
		return nil, err
	}
	a, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, storeError(s.log, "get achievement", "Achievement", err)
	}
	if a == nil {
		return nil, notFound("Achievement")
	}
	return a, nil
}

func (s *achievementService) Get(ctx context.Context, achievementID string) (*response.AchievementResponse, error) {
	a, err := s.find(ctx, achievementID)
	if err != nil {
		return nil, err
	}
	resp := response.AchievementToResponse(a)
	return &resp, nil
}

func (s *achievementService) Create(ctx context.Context, req *request.AchievementRequest) (*response.AchievementResponse, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	a := &entity.Achievement{
		BaseSimple:  entity.BaseSimple{ID: uuid.New(), CreatedAt: s.now()},
		Title:       strings.TrimSpace(req.Title),
		Description: req.Description,
		ImageURL:    req.ImageURL,
		SortOrder:   req.SortOrder,
	}
	if err := s.repo.Create(ctx, a); err != nil {
		return nil, storeError(s.log, "create achievement", "Achievement", err)
	}
	s.log.Info("Achievement created", zap.String("achievement_id", a.ID.String()))
	resp := response.AchievementToResponse(a)
	return &resp, nil
}

func (s *achievementService) Update(ctx context.Context, achievementID string, req *request.AchievementUpdateRequest) (*response.AchievementResponse, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	a, err := s.find(ctx, achievementID)
	if err != nil {
		return nil, err
	}
	updated := setIf(&a.Title, req.Title)
	updated = setIf(&a.Description, req.Description) || updated
	updated = setIf(&a.ImageURL, req.ImageURL) || updated
	updated = setIf(&a.SortOrder, req.SortOrder) || updated
	if updated {
		if err := s.repo.Update(ctx, a); err != nil {
			return nil, storeError(s.log, "update achievement", "Achievement", err)
		}
	}
	resp := response.AchievementToResponse(a)
	return &resp, nil
}

func (s *achievementService) Delete(ctx context.Context, achievementID string) error {
	id, err := parseID(achievementID, "achievement")
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return storeError(s.log, "delete achievement", "Achievement", err)
	}
	return nil
}

package usecase

import (
	"context"
	"strings"

	"realty-backend/internal/data/entity"
	"realty-backend/internal/data/repository"
	"realty-backend/internal/dto/request"
	"realty-backend/internal/dto/response"
	"realty-backend/pkg/apperror"
	"realty-backend/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type EnquiryService interface {
	Create(ctx context.Context, identityID uuid.UUID, req *request.ProjectEnquiryRequest) (*response.ProjectEnquiryResponse, error)
	List(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.ProjectEnquiryResponse], error)
}

type enquiryService struct {
	repo repository.EnquiryRepository
	now  Clock
	log  *zap.Logger
}

func NewEnquiryService(repo repository.EnquiryRepository, now Clock, log *zap.Logger) EnquiryService {
	return &enquiryService{repo: repo, now: now, log: log.With(zap.String("service", "enquiry"))}
}

func (s *enquiryService) Create(ctx context.Context, identityID uuid.UUID, req *request.ProjectEnquiryRequest) (*response.ProjectEnquiryResponse, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	projectID, err := parseID(req.ProjectID, "project")
	if err != nil {
		return nil, err
	}
	mobile, ok := utils.NormalizeMobile(req.Mobile)
	if !ok {
		return nil, apperror.Validation(apperror.CodeInvalidMobile, "Invalid mobile number")
	}

	enquiry := &entity.ProjectEnquiry{
		BaseSimple: entity.BaseSimple{ID: uuid.New(), CreatedAt: s.now()},
		ProjectID:  projectID,
		Name:       strings.TrimSpace(req.Name),
		Mobile:     mobile,
		Subject:    req.Subject,
		Message:    req.Message,
	}
	if identityID != uuid.Nil {
		enquiry.IdentityID = &identityID
	}

	if err := s.repo.Create(ctx, enquiry); err != nil {
		return nil, storeError(s.log, "create enquiry", "Project", err)
	}
	s.log.Info("Project enquiry created",
		zap.String("enquiry_id", enquiry.ID.String()),
		zap.String("project_id", projectID.String()),
	)
	resp := response.EnquiryToResponse(enquiry)
	return &resp, nil
}

func (s *enquiryService) List(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.ProjectEnquiryResponse], error) {
	items, err := s.repo.FindAll(ctx, req.Limit(), req.Offset())
	if err != nil {
		return nil, storeError(s.log, "list enquiries", "Enquiry", err)
	}
	total, err := s.repo.Count(ctx)
	if err != nil {
		return nil, storeError(s.log, "count enquiries", "Enquiry", err)
	}
	return response.NewPaginatedResponse(response.MapSlice(items, response.EnquiryToResponse), req.Page, req.Limit(), total), nil
}

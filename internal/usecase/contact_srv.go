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

// ContactService backs the public contact form and its staff CRUD.
type ContactService interface {
	Submit(ctx context.Context, req *request.ContactRequest) (*response.ContactResponse, error)
	List(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.ContactResponse], error)
	Get(ctx context.Context, contactID string) (*response.ContactResponse, error)
	Update(ctx context.Context, contactID string, req *request.ContactUpdateRequest) (*response.ContactResponse, error)
	Delete(ctx context.Context, contactID string) error
}

type contactService struct {
	repo repository.ContactRepository
	now  Clock
	log  *zap.Logger
}

func NewContactService(repo repository.ContactRepository, now Clock, log *zap.Logger) ContactService {
	return &contactService{repo: repo, now: now, log: log.With(zap.String("service", "contact"))}
}

func (s *contactService) Submit(ctx context.Context, req *request.ContactRequest) (*response.ContactResponse, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	projectID, err := parseOptionalID(req.ProjectID, "project")
	if err != nil {
		return nil, err
	}

	contact := &entity.Contact{
		BaseSimple: entity.BaseSimple{ID: uuid.New(), CreatedAt: s.now()},
		ProjectID:  projectID,
		Name:       strings.TrimSpace(req.Name),
		Email:      strings.TrimSpace(req.Email),
		Phone:      strings.TrimSpace(req.Phone),
		Subject:    req.Subject,
		Message:    req.Message,
	}
	if err := s.repo.Create(ctx, contact); err != nil {
		return nil, storeError(s.log, "create contact", "Project", err)
	}
	s.log.Info("Contact form submitted", zap.String("contact_id", contact.ID.String()))

	// reload supaya project_title ikut terisi
	saved, err := s.repo.FindByID(ctx, contact.ID)
	if err == nil && saved != nil {
		contact = saved
	}
	resp := response.ContactToResponse(contact)
	return &resp, nil
}

func (s *contactService) List(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.ContactResponse], error) {
	contacts, err := s.repo.FindAll(ctx, entity.TimeRange{}, req.Limit(), req.Offset())
	if err != nil {
		return nil, storeError(s.log, "list contacts", "Contact", err)
	}
	total, err := s.repo.Count(ctx, entity.TimeRange{})
	if err != nil {
		return nil, storeError(s.log, "count contacts", "Contact", err)
	}
	return response.NewPaginatedResponse(response.MapSlice(contacts, response.ContactToResponse), req.Page, req.Limit(), total), nil
}

func (s *contactService) find(ctx context.Context, contactID string) (*entity.Contact, error) {
	id, err := parseID(contactID, "contact")
	if err != nil {
		return nil, err
	}
	contact, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, storeError(s.log, "get contact", "Contact", err)
	}
	if contact == nil {
		return nil, notFound("Contact")
	}
	return contact, nil
}

func (s *contactService) Get(ctx context.Context, contactID string) (*response.ContactResponse, error) {
	contact, err := s.find(ctx, contactID)
	if err != nil {
		return nil, err
	}
	resp := response.ContactToResponse(contact)
	return &resp, nil
}

func (s *contactService) Update(ctx context.Context, contactID string, req *request.ContactUpdateRequest) (*response.ContactResponse, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	contact, err := s.find(ctx, contactID)
	if err != nil {
		return nil, err
	}
	updated := setIf(&contact.Name, req.Name)
	updated = setIf(&contact.Email, req.Email) || updated
	updated = setIf(&contact.Phone, req.Phone) || updated
	updated = setIf(&contact.Subject, req.Subject) || updated
	updated = setIf(&contact.Message, req.Message) || updated
	updated = setIf(&contact.Read, req.Read) || updated
	if updated {
		if err := s.repo.Update(ctx, contact); err != nil {
			return nil, storeError(s.log, "update contact", "Contact", err)
		}
	}
	resp := response.ContactToResponse(contact)
	return &resp, nil
}

func (s *contactService) Delete(ctx context.Context, contactID string) error {
	id, err := parseID(contactID, "contact")
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return storeError(s.log, "delete contact", "Contact", err)
	}
	s.log.Info("Contact deleted", zap.String("contact_id", contactID))
	return nil
}

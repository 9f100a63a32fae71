package usecase

import (
	"context"
	"strings"

	"realty-backend/internal/data/entity"
	"realty-backend/internal/data/repository"
	"realty-backend/internal/dto/request"
	"realty-backend/internal/dto/response"
	"realty-backend/pkg/apperror"
	"realty-backend/pkg/database"
	"realty-backend/pkg/token"
	"realty-backend/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type AdminService interface {
	Login(ctx context.Context, req *request.AdminLoginRequest) (*response.AdminLoginResponse, error)
	CreateStaff(ctx context.Context, username, password, fullName string) (*response.StaffResponse, error)
}

type adminService struct {
	repo       repository.StaffRepository
	tokens     *token.Manager
	bcryptCost int
	now        Clock
	log        *zap.Logger
}

func NewAdminService(repo repository.StaffRepository, config *utils.Config, deps Deps, log *zap.Logger) AdminService {
	cost := config.Security.BcryptCost
	if cost < bcrypt.MinCost {
		cost = bcrypt.DefaultCost
	}
	return &adminService{
		repo:       repo,
		tokens:     deps.Tokens,
		bcryptCost: cost,
		now:        deps.Now,
		log:        log.With(zap.String("service", "admin")),
	}
}

func (s *adminService) Login(ctx context.Context, req *request.AdminLoginRequest) (*response.AdminLoginResponse, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	staff, err := s.repo.FindByUsername(ctx, strings.TrimSpace(req.Username))
	if err != nil {
		s.log.Error("Failed to find staff", zap.Error(err), zap.String("username", req.Username))
		return nil, apperror.Internal("Failed to login", err)
	}

	invalid := apperror.Unauthorized(apperror.CodeInvalidCredentials, "Invalid username or password")
	if staff == nil {
		s.log.Warn("Admin login for unknown user", zap.String("username", req.Username))
		return nil, invalid
	}
	if err := bcrypt.CompareHashAndPassword([]byte(staff.PasswordHash), []byte(req.Password)); err != nil {
		s.log.Warn("Admin login with wrong password", zap.String("staff_id", staff.ID.String()))
		return nil, invalid
	}
	if !staff.IsActive {
		return nil, apperror.Forbidden(apperror.CodeAccountDisabled, "Account is disabled")
	}

	now := s.now()
	if err := s.repo.TouchLastLogin(ctx, staff.ID, now); err != nil {
		s.log.Warn("Failed to stamp staff last login", zap.Error(err), zap.String("staff_id", staff.ID.String()))
	}
	staff.LastLoginAt = &now

	pair, err := s.tokens.Issue(utils.Principal{ID: staff.ID, Kind: utils.PrincipalStaff})
	if err != nil {
		s.log.Error("Failed to issue staff tokens", zap.Error(err))
		return nil, apperror.Internal("Failed to login", err)
	}

	s.log.Info("Staff logged in", zap.String("staff_id", staff.ID.String()))
	return &response.AdminLoginResponse{
		Staff:         response.StaffToResponse(staff),
		TokenResponse: response.TokenToResponse(pair),
	}, nil
}

// CreateStaff is the explicit seed step used by the create-admin command.
func (s *adminService) CreateStaff(ctx context.Context, username, password, fullName string) (*response.StaffResponse, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, apperror.MissingFields("Username and password are required")
	}
	if len(password) < 8 {
		return nil, apperror.ValidationFields(map[string]string{"password": "Minimum length is 8"})
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return nil, apperror.Internal("Failed to hash password", err)
	}

	now := s.now()
	staff := &entity.StaffUser{
		BaseNoDelete: entity.BaseNoDelete{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Username:     username,
		PasswordHash: string(hash),
		FullName:     strings.TrimSpace(fullName),
		IsActive:     true,
	}
	if err := s.repo.Create(ctx, staff); err != nil {
		if database.IsUniqueViolation(err) {
			return nil, apperror.Conflict("Username already taken", err)
		}
		s.log.Error("Failed to create staff", zap.Error(err), zap.String("username", username))
		return nil, apperror.Internal("Failed to create staff", err)
	}

	s.log.Info("Staff account created", zap.String("staff_id", staff.ID.String()), zap.String("username", username))
	resp := response.StaffToResponse(staff)
	return &resp, nil
}

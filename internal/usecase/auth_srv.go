package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"realty-backend/internal/data/entity"
	"realty-backend/internal/data/repository"
	"realty-backend/internal/dto/request"
	"realty-backend/internal/dto/response"
	"realty-backend/pkg/apperror"
	"realty-backend/pkg/database"
	"realty-backend/pkg/metrics"
	"realty-backend/pkg/sms"
	"realty-backend/pkg/throttle"
	"realty-backend/pkg/token"
	"realty-backend/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AuthService interface {
	SendOTP(ctx context.Context, req *request.SendOTPRequest) (*response.SendOTPResponse, error)
	VerifyOTP(ctx context.Context, req *request.VerifyOTPRequest) (*response.VerifyOTPResponse, error)
	CompleteRegistration(ctx context.Context, req *request.CompleteRegistrationRequest) (*response.AuthResponse, error)
	Refresh(ctx context.Context, req *request.RefreshTokenRequest) (*response.TokenResponse, error)
	Me(ctx context.Context, identityID uuid.UUID) (*response.UserResponse, error)

	// ResolvePrincipal checks that the principal behind a valid token still
	// exists and is active.
	ResolvePrincipal(ctx context.Context, p utils.Principal) error
}

type authService struct {
	repo    *repository.Repository
	config  *utils.Config
	tokens  *token.Manager
	sender  sms.Sender
	limiter throttle.Limiter
	metrics *metrics.Metrics
	now     Clock
	log     *zap.Logger
}

func NewAuthService(
	repo *repository.Repository,
	config *utils.Config,
	deps Deps,
	log *zap.Logger,
) AuthService {
	return &authService{
		repo:    repo,
		config:  config,
		tokens:  deps.Tokens,
		sender:  deps.Sender,
		limiter: deps.Limiter,
		metrics: deps.Metrics,
		now:     deps.Now,
		log:     log.With(zap.String("service", "auth")),
	}
}

func (s *authService) SendOTP(ctx context.Context, req *request.SendOTPRequest) (*response.SendOTPResponse, error) {
	// 1. Validasi input
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	mobile, ok := utils.NormalizeMobile(req.Mobile)
	if !ok {
		return nil, apperror.Validation(apperror.CodeInvalidMobile, "Enter a valid mobile number")
	}
	purpose := entity.OTPPurpose(req.Purpose)
	if purpose == "" {
		purpose = entity.OTPPurposeLogin
	}

	// 2. Cooldown per mobile+purpose
	allowed, err := s.limiter.Allow(ctx, throttle.OTPKey(mobile, string(purpose)))
	if err != nil {
		// Redis down: lanjut tanpa cooldown
		s.log.Warn("OTP throttle unavailable", zap.Error(err), zap.String("mobile", mobile))
		allowed = true
	}
	if !allowed {
		return nil, apperror.RateLimited(apperror.CodeOTPThrottled, "Please wait before requesting another OTP")
	}

	// 3. Generate dan simpan hash
	code, err := utils.GenerateOTP()
	if err != nil {
		s.log.Error("Failed to generate OTP", zap.Error(err))
		return nil, apperror.Internal("Failed to send OTP", err)
	}

	now := s.now()
	otp := &entity.OTP{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: now,
		},
		Mobile:    mobile,
		CodeHash:  utils.HashOTP(code),
		Purpose:   purpose,
		ExpiresAt: now.Add(s.config.OTP.Expiry()),
	}
	if err := s.repo.OTP.Issue(ctx, otp); err != nil {
		s.log.Error("Failed to save OTP", zap.Error(err), zap.String("mobile", mobile))
		return nil, apperror.Internal("Failed to send OTP", err)
	}
	s.metrics.OTPIssued(string(purpose))

	// 4. Kirim SMS, gagal kirim tidak membatalkan OTP
	if err := s.sender.SendOTP(ctx, mobile, code); err != nil {
		s.log.Error("Failed to deliver OTP", zap.Error(err), zap.String("mobile", mobile))
	}

	s.log.Info("OTP issued",
		zap.String("mobile", mobile),
		zap.String("purpose", string(purpose)),
		zap.Time("expires_at", otp.ExpiresAt),
	)

	resp := &response.SendOTPResponse{
		Mobile:    mobile,
		Purpose:   purpose,
		ExpiresAt: otp.ExpiresAt,
	}
	if s.config.OTP.ReturnToClient {
		resp.OTP = code
	}
	return resp, nil
}

func (s *authService) VerifyOTP(ctx context.Context, req *request.VerifyOTPRequest) (*response.VerifyOTPResponse, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	mobile, ok := utils.NormalizeMobile(req.Mobile)
	if !ok {
		return nil, apperror.Validation(apperror.CodeInvalidMobile, "Enter a valid mobile number")
	}

	purposes := entity.AuthPurposes
	if req.Purpose != "" {
		purposes = []entity.OTPPurpose{entity.OTPPurpose(req.Purpose)}
	}

	now := s.now()
	otp, err := s.repo.OTP.Consume(ctx, mobile, utils.HashOTP(strings.TrimSpace(req.OTPCode)), purposes, now)
	if err != nil {
		s.metrics.OTPVerified("error")
		s.log.Error("Failed to verify OTP", zap.Error(err), zap.String("mobile", mobile))
		return nil, apperror.Internal("Failed to verify OTP", err)
	}
	if otp == nil {
		s.metrics.OTPVerified("invalid")
		s.log.Warn("Invalid OTP attempt", zap.String("mobile", mobile))
		return nil, apperror.InvalidOTP()
	}
	s.metrics.OTPVerified("success")

	if otp.Purpose == entity.OTPPurposeContact {
		s.log.Info("Contact mobile verified", zap.String("mobile", mobile))
		resp := response.ContactVerified(mobile)
		return &resp, nil
	}

	identity, err := s.repo.Identity.EnsureByMobile(ctx, mobile, now)
	if err != nil {
		s.log.Error("Failed to load identity", zap.Error(err), zap.String("mobile", mobile))
		return nil, apperror.Internal("Failed to verify OTP", err)
	}
	if !identity.IsActive {
		return nil, apperror.Forbidden(apperror.CodeAccountDisabled, "Account is disabled")
	}

	if !identity.IsRegistered {
		if !req.HasProfile() {
			s.log.Info("OTP verified, registration pending", zap.String("identity_id", identity.ID.String()))
			resp := response.NeedsRegistration(mobile)
			return &resp, nil
		}
		if err := s.register(ctx, identity, req.FirstName, req.LastName, req.Email, now); err != nil {
			return nil, err
		}
	} else {
		if err := s.repo.Identity.TouchLastLogin(ctx, identity.ID, now); err != nil {
			s.log.Error("Failed to stamp last login", zap.Error(err), zap.String("identity_id", identity.ID.String()))
			return nil, apperror.Internal("Failed to verify OTP", err)
		}
		identity.LastLoginAt = &now
	}

	pair, err := s.mint(identity.ID, utils.PrincipalIdentity)
	if err != nil {
		return nil, err
	}

	s.log.Info("Identity logged in", zap.String("identity_id", identity.ID.String()))
	resp := response.LoginSuccess(identity, pair)
	return &resp, nil
}

func (s *authService) CompleteRegistration(ctx context.Context, req *request.CompleteRegistrationRequest) (*response.AuthResponse, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	mobile, ok := utils.NormalizeMobile(req.Mobile)
	if !ok {
		return nil, apperror.Validation(apperror.CodeInvalidMobile, "Enter a valid mobile number")
	}

	identity, err := s.repo.Identity.FindByMobile(ctx, mobile)
	if err != nil {
		s.log.Error("Failed to find identity", zap.Error(err), zap.String("mobile", mobile))
		return nil, apperror.Internal("Failed to complete registration", err)
	}
	if identity == nil {
		return nil, apperror.NotFound(apperror.CodeUserNotFound, "User not found. Verify OTP first")
	}
	if !identity.IsActive {
		return nil, apperror.Forbidden(apperror.CodeAccountDisabled, "Account is disabled")
	}
	if identity.IsRegistered {
		return nil, apperror.AlreadyRegistered()
	}

	if err := s.register(ctx, identity, req.FirstName, req.LastName, req.Email, s.now()); err != nil {
		return nil, err
	}

	pair, err := s.mint(identity.ID, utils.PrincipalIdentity)
	if err != nil {
		return nil, err
	}

	s.log.Info("Registration completed", zap.String("identity_id", identity.ID.String()))
	resp := response.AuthToResponse(identity, pair)
	return &resp, nil
}

func (s *authService) register(ctx context.Context, identity *entity.Identity, first, last string, email *string, now time.Time) error {
	identity.FirstName = strings.TrimSpace(first)
	identity.LastName = strings.TrimSpace(last)
	if email != nil && strings.TrimSpace(*email) != "" {
		e := strings.ToLower(strings.TrimSpace(*email))
		identity.Email = &e
	}
	identity.LastLoginAt = &now
	identity.UpdatedAt = now

	if err := s.repo.Identity.CompleteRegistration(ctx, identity); err != nil {
		if errors.Is(err, repository.ErrAlreadyRegistered) {
			s.log.Warn("Registration lost race", zap.String("identity_id", identity.ID.String()))
			return apperror.AlreadyRegistered()
		}
		if database.IsUniqueViolation(err) {
			return apperror.Conflict("Email already in use", err)
		}
		if errors.Is(err, repository.ErrNotFound) {
			return apperror.NotFound(apperror.CodeUserNotFound, "User not found")
		}
		s.log.Error("Failed to complete registration", zap.Error(err), zap.String("identity_id", identity.ID.String()))
		return apperror.Internal("Failed to complete registration", err)
	}
	identity.IsRegistered = true
	return nil
}

func (s *authService) mint(id uuid.UUID, kind utils.PrincipalKind) (*token.Pair, error) {
	pair, err := s.tokens.Issue(utils.Principal{ID: id, Kind: kind})
	if err != nil {
		s.log.Error("Failed to issue tokens", zap.Error(err), zap.String("principal_id", id.String()))
		return nil, apperror.Internal("Failed to issue tokens", err)
	}
	return pair, nil
}

func (s *authService) Refresh(ctx context.Context, req *request.RefreshTokenRequest) (*response.TokenResponse, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	principal, err := s.tokens.Parse(req.RefreshToken, token.TypeRefresh)
	if err != nil {
		return nil, apperror.Unauthorized(apperror.CodeInvalidToken, "Invalid or expired refresh token")
	}
	if err := s.ResolvePrincipal(ctx, principal); err != nil {
		return nil, err
	}

	pair, err := s.mint(principal.ID, principal.Kind)
	if err != nil {
		return nil, err
	}
	resp := response.TokenToResponse(pair)
	return &resp, nil
}

func (s *authService) Me(ctx context.Context, identityID uuid.UUID) (*response.UserResponse, error) {
	identity, err := s.repo.Identity.FindByID(ctx, identityID)
	if err != nil {
		s.log.Error("Failed to get identity", zap.Error(err), zap.String("identity_id", identityID.String()))
		return nil, apperror.Internal("Failed to get profile", err)
	}
	if identity == nil {
		return nil, apperror.NotFound(apperror.CodeUserNotFound, "User not found")
	}
	resp := response.UserToResponse(identity)
	return &resp, nil
}

func (s *authService) ResolvePrincipal(ctx context.Context, p utils.Principal) error {
	var (
		active bool
		found  bool
	)
	switch p.Kind {
	case utils.PrincipalIdentity:
		identity, err := s.repo.Identity.FindByID(ctx, p.ID)
		if err != nil {
			s.log.Error("Failed to resolve identity", zap.Error(err), zap.String("identity_id", p.ID.String()))
			return apperror.Internal("Failed to resolve principal", err)
		}
		found, active = identity != nil, identity != nil && identity.IsActive
	case utils.PrincipalStaff:
		staff, err := s.repo.Staff.FindByID(ctx, p.ID)
		if err != nil {
			s.log.Error("Failed to resolve staff", zap.Error(err), zap.String("staff_id", p.ID.String()))
			return apperror.Internal("Failed to resolve principal", err)
		}
		found, active = staff != nil, staff != nil && staff.IsActive
	}

	if !found {
		return apperror.Unauthorized(apperror.CodeInvalidToken, "Account no longer exists")
	}
	if !active {
		return apperror.Forbidden(apperror.CodeAccountDisabled, "Account is disabled")
	}
	return nil
}

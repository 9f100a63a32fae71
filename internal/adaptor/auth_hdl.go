package adaptor

import (
	"net/http"

	"realty-backend/internal/dto/request"
	"realty-backend/internal/usecase"
	"realty-backend/pkg/utils"

	"go.uber.org/zap"
)

type AuthHandler struct {
	service usecase.AuthService
	log     *zap.Logger
}

func NewAuthHandler(service usecase.AuthService, log *zap.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		log:     log.With(zap.String("handler", "auth")),
	}
}

// SendOTP handles POST /api/auth/send-otp
func (h *AuthHandler) SendOTP(w http.ResponseWriter, r *http.Request) {
	var req request.SendOTPRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	resp, err := h.service.SendOTP(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "send OTP")
		return
	}

	if resp.OTP != "" {
		h.log.Debug("OTP echoed to client", zap.String("mobile", resp.Mobile), zap.String("otp", resp.OTP))
	}
	utils.ResponseSuccess(w, "OTP sent successfully", resp)
}

// VerifyOTP handles POST /api/auth/verify-otp
func (h *AuthHandler) VerifyOTP(w http.ResponseWriter, r *http.Request) {
	var req request.VerifyOTPRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	resp, err := h.service.VerifyOTP(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "verify OTP")
		return
	}

	switch {
	case resp.Verified != nil:
		utils.ResponseSuccess(w, "Mobile number verified", resp)
	case resp.NeedsRegistration != nil && *resp.NeedsRegistration:
		utils.ResponseSuccess(w, "OTP verified. Please complete registration", resp)
	default:
		utils.ResponseSuccess(w, "Login successful", resp)
	}
}

// CompleteRegistration handles POST /api/auth/complete-registration
func (h *AuthHandler) CompleteRegistration(w http.ResponseWriter, r *http.Request) {
	var req request.CompleteRegistrationRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	resp, err := h.service.CompleteRegistration(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "complete registration")
		return
	}

	utils.ResponseCreated(w, "Registration completed", resp)
}

// Refresh handles POST /api/auth/token/refresh
func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	var req request.RefreshTokenRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	resp, err := h.service.Refresh(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "refresh token")
		return
	}

	utils.ResponseSuccess(w, "Token refreshed", resp)
}

// Me handles GET /api/auth/me
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	principal, ok := utils.GetPrincipal(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	resp, err := h.service.Me(r.Context(), principal.ID)
	if err != nil {
		handleServiceError(w, h.log, err, "get profile")
		return
	}

	utils.ResponseSuccess(w, "Profile retrieved successfully", resp)
}

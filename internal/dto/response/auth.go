package response

import (
	"time"

	"realty-backend/internal/data/entity"
	"realty-backend/pkg/token"
)

type UserResponse struct {
	ID           string     `json:"id"`
	FirstName    string     `json:"first_name"`
	LastName     string     `json:"last_name"`
	Email        *string    `json:"email"`
	Mobile       string     `json:"mobile"`
	IsActive     bool       `json:"is_active"`
	IsRegistered bool       `json:"is_registered"`
	LastLoginAt  *time.Time `json:"last_login_at"`
	CreatedAt    time.Time  `json:"created_at"`
}

type TokenResponse struct {
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	TokenType    string    `json:"token_type"`
	ExpiresAt    time.Time `json:"expires_at"`
}

type SendOTPResponse struct {
	Mobile    string            `json:"mobile"`
	Purpose   entity.OTPPurpose `json:"purpose"`
	ExpiresAt time.Time         `json:"expires_at"`
	OTP       string            `json:"otp,omitempty"`
}

// VerifyOTPResponse covers the three verify outcomes. Only the fields of the
// matching outcome are set.
type VerifyOTPResponse struct {
	NeedsRegistration *bool         `json:"needs_registration,omitempty"`
	Verified          *bool         `json:"verified,omitempty"`
	Mobile            string        `json:"mobile,omitempty"`
	User              *UserResponse `json:"user,omitempty"`
	*TokenResponse
}

type AuthResponse struct {
	User UserResponse `json:"user"`
	TokenResponse
}

type StaffResponse struct {
	ID          string     `json:"id"`
	Username    string     `json:"username"`
	FullName    string     `json:"full_name"`
	IsActive    bool       `json:"is_active"`
	LastLoginAt *time.Time `json:"last_login_at"`
}

type AdminLoginResponse struct {
	Staff StaffResponse `json:"staff"`
	TokenResponse
}

// Helper converters
func UserToResponse(identity *entity.Identity) UserResponse {
	return UserResponse{
		ID:           identity.ID.String(),
		FirstName:    identity.FirstName,
		LastName:     identity.LastName,
		Email:        identity.Email,
		Mobile:       identity.Mobile,
		IsActive:     identity.IsActive,
		IsRegistered: identity.IsRegistered,
		LastLoginAt:  identity.LastLoginAt,
		CreatedAt:    identity.CreatedAt,
	}
}

func TokenToResponse(pair *token.Pair) TokenResponse {
	return TokenResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		TokenType:    pair.TokenType,
		ExpiresAt:    pair.ExpiresAt,
	}
}

func AuthToResponse(identity *entity.Identity, pair *token.Pair) AuthResponse {
	return AuthResponse{
		User:          UserToResponse(identity),
		TokenResponse: TokenToResponse(pair),
	}
}

func NeedsRegistration(mobile string) VerifyOTPResponse {
	yes := true
	return VerifyOTPResponse{NeedsRegistration: &yes, Mobile: mobile}
}

func ContactVerified(mobile string) VerifyOTPResponse {
	yes := true
	return VerifyOTPResponse{Verified: &yes, Mobile: mobile}
}

func LoginSuccess(identity *entity.Identity, pair *token.Pair) VerifyOTPResponse {
	no := false
	user := UserToResponse(identity)
	tokens := TokenToResponse(pair)
	return VerifyOTPResponse{NeedsRegistration: &no, User: &user, TokenResponse: &tokens}
}

func StaffToResponse(staff *entity.StaffUser) StaffResponse {
	return StaffResponse{
		ID:          staff.ID.String(),
		Username:    staff.Username,
		FullName:    staff.FullName,
		IsActive:    staff.IsActive,
		LastLoginAt: staff.LastLoginAt,
	}
}

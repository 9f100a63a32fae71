package request

type SendOTPRequest struct {
	Mobile  string `json:"mobile" validate:"required"`
	Purpose string `json:"purpose,omitempty" validate:"omitempty,oneof=signup login contact"`
}

type VerifyOTPRequest struct {
	Mobile    string  `json:"mobile" validate:"required"`
	OTPCode   string  `json:"otp_code" validate:"required"`
	Purpose   string  `json:"purpose,omitempty" validate:"omitempty,oneof=signup login contact"`
	FirstName string  `json:"first_name,omitempty" validate:"omitempty,max=100"`
	LastName  string  `json:"last_name,omitempty" validate:"omitempty,max=100"`
	Email     *string `json:"email,omitempty" validate:"omitempty,email"`
}

// HasProfile true kalau verify membawa data registrasi sekaligus
func (r *VerifyOTPRequest) HasProfile() bool {
	return r.FirstName != "" && r.LastName != ""
}

type CompleteRegistrationRequest struct {
	Mobile    string  `json:"mobile" validate:"required"`
	FirstName string  `json:"first_name" validate:"required,max=100"`
	LastName  string  `json:"last_name" validate:"required,max=100"`
	Email     *string `json:"email,omitempty" validate:"omitempty,email"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type AdminLoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

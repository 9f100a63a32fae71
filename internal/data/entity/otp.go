package entity

import "time"

type OTPPurpose string

const (
	OTPPurposeSignup  OTPPurpose = "signup"
	OTPPurposeLogin   OTPPurpose = "login"
	OTPPurposeContact OTPPurpose = "contact"
)

func (p OTPPurpose) Valid() bool {
	switch p {
	case OTPPurposeSignup, OTPPurposeLogin, OTPPurposeContact:
		return true
	}
	return false
}

// IsAuth true untuk purpose yang menyentuh identity (signup/login)
func (p OTPPurpose) IsAuth() bool {
	return p == OTPPurposeSignup || p == OTPPurposeLogin
}

// AuthPurposes are accepted by verify when the client omits the purpose.
var AuthPurposes = []OTPPurpose{OTPPurposeSignup, OTPPurposeLogin}

// OTP stores only the hash of the code. Rows are never deleted.
type OTP struct {
	BaseSimple
	Mobile     string     `db:"mobile"`
	CodeHash   string     `db:"code_hash"`
	Purpose    OTPPurpose `db:"purpose"`
	IsVerified bool       `db:"is_verified"`
	ExpiresAt  time.Time  `db:"expires_at"`
}

// ValidAt reports whether the code may still be consumed at t.
func (o *OTP) ValidAt(t time.Time) bool {
	return !o.IsVerified && t.Before(o.ExpiresAt)
}

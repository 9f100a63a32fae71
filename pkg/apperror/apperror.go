package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindInvalidOTP
	KindExpiredOTP // verification reports expiry as KindInvalidOTP
	KindNotFound
	KindUnauthorized
	KindForbidden
	KindConflict
	KindRateLimited
)

// Machine readable codes returned to clients
const (
	CodeMissingFields      = "MISSING_FIELDS"
	CodeValidation         = "VALIDATION_ERROR"
	CodeInvalidMobile      = "INVALID_MOBILE"
	CodeInvalidOTP         = "INVALID_OTP"
	CodeExpiredOTP         = "EXPIRED_OTP"
	CodeOTPThrottled       = "OTP_THROTTLED"
	CodeUserNotFound       = "USER_NOT_FOUND"
	CodeNotFound           = "NOT_FOUND"
	CodeUnauthorized       = "UNAUTHORIZED"
	CodeInvalidCredentials = "INVALID_CREDENTIALS"
	CodeInvalidToken       = "INVALID_TOKEN"
	CodeForbidden          = "FORBIDDEN"
	CodeAccountDisabled    = "ACCOUNT_DISABLED"
	CodeConflict           = "CONFLICT"
	CodeAlreadyRegistered  = "ALREADY_REGISTERED"
	CodeInternal           = "INTERNAL_ERROR"
)

// Error is the typed error returned by services. Handlers translate it into
// an HTTP response with errors.As.
type Error struct {
	Kind    Kind
	Code    string
	Message string
	Fields  map[string]string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) HTTPStatus() int {
	switch e.Kind {
	case KindValidation, KindInvalidOTP, KindExpiredOTP:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindConflict:
		return http.StatusConflict
	case KindRateLimited:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

// Is matches on kind so errors.Is(err, apperror.ErrNotFound) works for any
// not found error regardless of message.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && (t.Code == "" || t.Code == e.Code)
}

// Sentinels for errors.Is
var (
	ErrValidation   = &Error{Kind: KindValidation}
	ErrInvalidOTP   = &Error{Kind: KindInvalidOTP}
	ErrNotFound     = &Error{Kind: KindNotFound}
	ErrUnauthorized = &Error{Kind: KindUnauthorized}
	ErrForbidden    = &Error{Kind: KindForbidden}
	ErrConflict     = &Error{Kind: KindConflict}
	ErrRateLimited  = &Error{Kind: KindRateLimited}
	ErrInternal     = &Error{Kind: KindInternal}
)

func Validation(code, message string) *Error {
	if code == "" {
		code = CodeValidation
	}
	return &Error{Kind: KindValidation, Code: code, Message: message}
}

func ValidationFields(fields map[string]string) *Error {
	return &Error{Kind: KindValidation, Code: CodeValidation, Message: "Validation failed", Fields: fields}
}

func MissingFields(message string) *Error {
	return &Error{Kind: KindValidation, Code: CodeMissingFields, Message: message}
}

// InvalidOTP covers both a wrong and an expired code. The consume step is a
// single guarded delete, so verification cannot tell the two apart.
func InvalidOTP() *Error {
	return &Error{Kind: KindInvalidOTP, Code: CodeInvalidOTP, Message: "Invalid or expired OTP"}
}

// ExpiredOTP is not returned by OTP verification, which reports expiry as
// INVALID_OTP. Kept for clients that check expiry before submitting.
func ExpiredOTP() *Error {
	return &Error{Kind: KindExpiredOTP, Code: CodeExpiredOTP, Message: "OTP has expired"}
}

func NotFound(code, message string) *Error {
	if code == "" {
		code = CodeNotFound
	}
	return &Error{Kind: KindNotFound, Code: code, Message: message}
}

func Unauthorized(code, message string) *Error {
	if code == "" {
		code = CodeUnauthorized
	}
	return &Error{Kind: KindUnauthorized, Code: code, Message: message}
}

func Forbidden(code, message string) *Error {
	if code == "" {
		code = CodeForbidden
	}
	return &Error{Kind: KindForbidden, Code: code, Message: message}
}

func Conflict(message string, err error) *Error {
	return &Error{Kind: KindConflict, Code: CodeConflict, Message: message, Err: err}
}

func AlreadyRegistered() *Error {
	return &Error{Kind: KindConflict, Code: CodeAlreadyRegistered, Message: "Registration already completed"}
}

func RateLimited(code, message string) *Error {
	return &Error{Kind: KindRateLimited, Code: code, Message: message}
}

func Internal(message string, err error) *Error {
	return &Error{Kind: KindInternal, Code: CodeInternal, Message: message, Err: err}
}

// As extracts an *Error from any wrapped chain.
func As(err error) (*Error, bool) {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

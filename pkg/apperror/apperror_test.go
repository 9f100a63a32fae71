package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPStatus(t *testing.T) {
	cases := []struct {
		err  *Error
		want int
	}{
		{MissingFields("mobile is required"), http.StatusBadRequest},
		{InvalidOTP(), http.StatusBadRequest},
		{ExpiredOTP(), http.StatusBadRequest},
		{NotFound(CodeUserNotFound, "user not found"), http.StatusNotFound},
		{Unauthorized("", "nope"), http.StatusUnauthorized},
		{Forbidden(CodeAccountDisabled, "disabled"), http.StatusForbidden},
		{Conflict("duplicate", nil), http.StatusConflict},
		{RateLimited(CodeOTPThrottled, "slow down"), http.StatusTooManyRequests},
		{Internal("boom", errors.New("db")), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, tc.err.HTTPStatus(), tc.err.Code)
	}
}

func TestAsUnwrapsChain(t *testing.T) {
	wrapped := fmt.Errorf("verify otp: %w", InvalidOTP())

	appErr, ok := As(wrapped)
	require.True(t, ok)
	assert.Equal(t, CodeInvalidOTP, appErr.Code)
	assert.True(t, errors.Is(wrapped, ErrInvalidOTP))
	assert.False(t, errors.Is(wrapped, ErrNotFound))

	_, ok = As(errors.New("plain"))
	assert.False(t, ok)
}

func TestIsMatchesCodeWhenSet(t *testing.T) {
	err := NotFound(CodeUserNotFound, "user not found")

	assert.True(t, errors.Is(err, ErrNotFound))
	assert.True(t, errors.Is(err, &Error{Kind: KindNotFound, Code: CodeUserNotFound}))
	assert.False(t, errors.Is(err, &Error{Kind: KindNotFound, Code: CodeNotFound}))
}

func TestInternalKeepsCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := Internal("create otp", cause)

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "connection refused")
}

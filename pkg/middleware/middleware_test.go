package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"realty-backend/pkg/apperror"
	"realty-backend/pkg/token"
	"realty-backend/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubResolver struct{ err error }

func (s stubResolver) ResolvePrincipal(context.Context, utils.Principal) error { return s.err }

func testTokens() *token.Manager {
	return token.NewManager(utils.JWTConfig{
		Secret:     "0123456789abcdef0123456789abcdef",
		Issuer:     "realty-backend",
		Audience:   "realty-api",
		AccessTTL:  time.Minute,
		RefreshTTL: time.Hour,
	})
}

func okHandler(w http.ResponseWriter, r *http.Request) {
	p, _ := utils.GetPrincipal(r.Context())
	w.Header().Set("X-Principal-Kind", string(p.Kind))
	w.WriteHeader(http.StatusOK)
}

func chain(tokens *token.Manager, resolver PrincipalResolver, staff bool) http.Handler {
	var guard func(http.Handler) http.Handler
	if staff {
		guard = RequireStaff(resolver, zap.NewNop())
	} else {
		guard = RequireIdentity(resolver, zap.NewNop())
	}
	return Authenticate(tokens, zap.NewNop())(guard(http.HandlerFunc(okHandler)))
}

func call(t *testing.T, h http.Handler, authorization string) (*httptest.ResponseRecorder, utils.Response) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/api/test", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var body utils.Response
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	}
	return rec, body
}

func TestAuthenticateRejectsMissingAndMalformed(t *testing.T) {
	h := chain(testTokens(), stubResolver{}, false)

	rec, body := call(t, h, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, apperror.CodeUnauthorized, body.Code)

	rec, _ = call(t, h, "Token abc")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec, body = call(t, h, "Bearer not-a-jwt")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, apperror.CodeInvalidToken, body.Code)
}

func TestRequireIdentity(t *testing.T) {
	tokens := testTokens()
	h := chain(tokens, stubResolver{}, false)

	pair, err := tokens.Issue(utils.Principal{ID: uuid.New(), Kind: utils.PrincipalIdentity})
	require.NoError(t, err)
	rec, _ := call(t, h, "Bearer "+pair.AccessToken)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "identity", rec.Header().Get("X-Principal-Kind"))

	rec, _ = call(t, h, "bearer "+pair.AccessToken)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, _ = call(t, h, "Bearer "+pair.RefreshToken)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireStaff(t *testing.T) {
	tokens := testTokens()
	h := chain(tokens, stubResolver{}, true)

	customer, err := tokens.Issue(utils.Principal{ID: uuid.New(), Kind: utils.PrincipalIdentity})
	require.NoError(t, err)
	rec, body := call(t, h, "Bearer "+customer.AccessToken)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, apperror.CodeForbidden, body.Code)

	staff, err := tokens.Issue(utils.Principal{ID: uuid.New(), Kind: utils.PrincipalStaff})
	require.NoError(t, err)
	rec, _ = call(t, h, "Bearer "+staff.AccessToken)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireStaffRejectsDisabledAccount(t *testing.T) {
	tokens := testTokens()
	disabled := apperror.Forbidden(apperror.CodeAccountDisabled, "Account is disabled")
	h := chain(tokens, stubResolver{err: disabled}, true)

	staff, err := tokens.Issue(utils.Principal{ID: uuid.New(), Kind: utils.PrincipalStaff})
	require.NoError(t, err)
	rec, body := call(t, h, "Bearer "+staff.AccessToken)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, apperror.CodeAccountDisabled, body.Code)
}

func TestOptionalAuth(t *testing.T) {
	tokens := testTokens()
	h := OptionalAuth(tokens, stubResolver{}, zap.NewNop())(http.HandlerFunc(okHandler))

	rec, _ := call(t, h, "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Header().Get("X-Principal-Kind"))

	rec, _ = call(t, h, "Bearer garbage")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Header().Get("X-Principal-Kind"))

	staff, err := tokens.Issue(utils.Principal{ID: uuid.New(), Kind: utils.PrincipalStaff})
	require.NoError(t, err)
	rec, _ = call(t, h, "Bearer "+staff.AccessToken)
	assert.Equal(t, "staff", rec.Header().Get("X-Principal-Kind"))

	inactive := OptionalAuth(tokens, stubResolver{err: apperror.Forbidden("", "disabled")}, zap.NewNop())(http.HandlerFunc(okHandler))
	rec, _ = call(t, inactive, "Bearer "+staff.AccessToken)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Header().Get("X-Principal-Kind"))
}

func TestRecoverWritesEnvelope(t *testing.T) {
	h := Recover(zap.NewNop())(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	rec, body := call(t, h, "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.False(t, body.Status)
	assert.Equal(t, apperror.CodeInternal, body.Code)
}

func TestCORSPreflight(t *testing.T) {
	h := CORS([]string{"https://example.com"})(http.HandlerFunc(okHandler))

	req := httptest.NewRequest(http.MethodOptions, "/api/projects", nil)
	req.Header.Set("Origin", "https://example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, "https://example.com", rec.Header().Get("Access-Control-Allow-Origin"))
}

package wire

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"realty-backend/internal/data/repository"
	"realty-backend/internal/data/repository/memory"
	"realty-backend/internal/usecase"
	"realty-backend/pkg/apperror"
	"realty-backend/pkg/utils"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type testServer struct {
	t   *testing.T
	app *App
	srv *httptest.Server
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	repo := &repository.Repository{
		Identity: memory.NewIdentityRepository(),
		OTP:      memory.NewOTPRepository(),
		Staff:    memory.NewStaffRepository(),
		Contact:  memory.NewContactRepository(),
		City:     memory.NewCityRepository(),
		Review:   memory.NewReviewRepository(),
		Blog:     memory.NewBlogRepository(),
	}
	config := &utils.Config{
		App: utils.AppConfig{Name: "realty-backend", Env: "test", Timezone: "Asia/Kolkata"},
		JWT: utils.JWTConfig{
			Secret:     "0123456789abcdef0123456789abcdef",
			Issuer:     "realty-backend",
			Audience:   "realty-api",
			AccessTTL:  15 * time.Minute,
			RefreshTTL: time.Hour,
		},
		OTP:      utils.OTPConfig{ExpiryMinutes: 10, ReturnToClient: true},
		Security: utils.SecurityConfig{BcryptCost: 4},
	}

	app := Wiring(repo, config, usecase.Deps{}, zap.NewNop())
	srv := httptest.NewServer(app.Router)
	t.Cleanup(srv.Close)
	return &testServer{t: t, app: app, srv: srv}
}

func (s *testServer) do(method, path, bearer string, body any) (int, utils.Response) {
	s.t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(s.t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, s.srv.URL+path, reader)
	require.NoError(s.t, err)
	req.Header.Set("Content-Type", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	resp, err := s.srv.Client().Do(req)
	require.NoError(s.t, err)
	defer resp.Body.Close()

	var out utils.Response
	require.NoError(s.t, json.NewDecoder(resp.Body).Decode(&out))
	return resp.StatusCode, out
}

func dataMap(t *testing.T, r utils.Response) map[string]any {
	t.Helper()
	m, ok := r.Data.(map[string]any)
	require.True(t, ok, "data is %T", r.Data)
	return m
}

func (s *testServer) staffToken() string {
	s.t.Helper()
	_, err := s.app.Service.Admin.CreateStaff(context.Background(), "admin", "s3cret-pass", "Site Admin")
	require.NoError(s.t, err)

	code, body := s.do(http.MethodPost, "/api/admin/login", "", map[string]string{
		"username": "admin", "password": "s3cret-pass",
	})
	require.Equal(s.t, http.StatusOK, code)
	return dataMap(s.t, body)["access_token"].(string)
}

func TestSignupFlow(t *testing.T) {
	s := newTestServer(t)

	code, body := s.do(http.MethodPost, "/api/auth/send-otp", "", map[string]string{
		"mobile": "1234567890", "purpose": "signup",
	})
	require.Equal(t, http.StatusOK, code)
	otp, _ := dataMap(t, body)["otp"].(string)
	require.Len(t, otp, 6)

	code, body = s.do(http.MethodPost, "/api/auth/verify-otp", "", map[string]string{
		"mobile": "1234567890", "otp_code": otp, "purpose": "signup",
	})
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, true, dataMap(t, body)["needs_registration"])

	code, body = s.do(http.MethodPost, "/api/auth/complete-registration", "", map[string]string{
		"mobile": "1234567890", "first_name": "Asha", "last_name": "Patil",
	})
	require.Equal(t, http.StatusCreated, code)
	tokens := dataMap(t, body)
	access := tokens["access_token"].(string)
	require.NotEmpty(t, access)

	code, body = s.do(http.MethodGet, "/api/auth/me", access, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "1234567890", dataMap(t, body)["mobile"])

	// identity tokens cannot reach staff routes
	code, body = s.do(http.MethodGet, "/api/admin/leads/stats", access, nil)
	assert.Equal(t, http.StatusForbidden, code)
	assert.Equal(t, apperror.CodeForbidden, body.Code)

	code, body = s.do(http.MethodPost, "/api/auth/token/refresh", "", map[string]string{
		"refresh_token": tokens["refresh_token"].(string),
	})
	require.Equal(t, http.StatusOK, code)
	assert.NotEmpty(t, dataMap(t, body)["access_token"])
}

func TestVerifyRejectsWrongCode(t *testing.T) {
	s := newTestServer(t)

	code, _ := s.do(http.MethodPost, "/api/auth/send-otp", "", map[string]string{"mobile": "9876543210"})
	require.Equal(t, http.StatusOK, code)

	code, body := s.do(http.MethodPost, "/api/auth/verify-otp", "", map[string]string{
		"mobile": "9876543210", "otp_code": "000000x",
	})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, apperror.CodeInvalidOTP, body.Code)
	assert.False(t, body.Status)
}

func TestLeadGateway(t *testing.T) {
	s := newTestServer(t)

	code, _ := s.do(http.MethodGet, "/api/admin/leads/stats", "", nil)
	assert.Equal(t, http.StatusUnauthorized, code)

	code, body := s.do(http.MethodPost, "/api/contact", "", map[string]string{
		"name": "Kiran", "email": "kiran@example.com", "phone": "9876543210",
		"subject": "Site visit", "message": "Saturday?",
	})
	require.Equal(t, http.StatusCreated, code)
	leadID := dataMap(t, body)["id"].(string)

	staff := s.staffToken()

	code, body = s.do(http.MethodGet, "/api/admin/leads/stats", staff, nil)
	require.Equal(t, http.StatusOK, code)
	stats := dataMap(t, body)
	assert.Equal(t, float64(1), stats["today"])
	assert.Equal(t, float64(1), stats["unread"])

	code, body = s.do(http.MethodPost, "/api/admin/leads/"+uuid.NewString()+"/read", staff, nil)
	assert.Equal(t, http.StatusNotFound, code)
	assert.False(t, body.Status)

	code, _ = s.do(http.MethodPost, "/api/admin/leads/"+leadID+"/read", staff, nil)
	require.Equal(t, http.StatusOK, code)

	_, body = s.do(http.MethodGet, "/api/admin/leads/stats", staff, nil)
	assert.Equal(t, float64(0), dataMap(t, body)["unread"])

	code, _ = s.do(http.MethodGet, "/api/contact", "", nil)
	assert.Equal(t, http.StatusUnauthorized, code)
	code, _ = s.do(http.MethodGet, "/api/contact", staff, nil)
	assert.Equal(t, http.StatusOK, code)
}

func TestCatalogWritesRequireStaff(t *testing.T) {
	s := newTestServer(t)

	code, _ := s.do(http.MethodPost, "/api/cities", "", map[string]any{"name": "Pune"})
	assert.Equal(t, http.StatusUnauthorized, code)

	staff := s.staffToken()
	code, body := s.do(http.MethodPost, "/api/cities", staff, map[string]any{"name": "Pune"})
	require.Equal(t, http.StatusCreated, code)
	assert.Equal(t, "Maharashtra", dataMap(t, body)["state"])

	code, body = s.do(http.MethodGet, "/api/cities", "", nil)
	require.Equal(t, http.StatusOK, code)
	page := dataMap(t, body)
	assert.Len(t, page["data"], 1)

	code, _ = s.do(http.MethodGet, "/api/reviews/stats", "", nil)
	assert.Equal(t, http.StatusOK, code)
}

func TestHealthAndNotFound(t *testing.T) {
	s := newTestServer(t)

	code, body := s.do(http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, code)
	assert.True(t, body.Status)

	code, body = s.do(http.MethodGet, "/api/nope", "", nil)
	assert.Equal(t, http.StatusNotFound, code)
	assert.False(t, body.Status)
}

func TestMetricsEndpoint(t *testing.T) {
	s := newTestServer(t)
	s.do(http.MethodGet, "/health", "", nil)

	resp, err := s.srv.Client().Get(s.srv.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestHealthReportsDatabaseDown(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()
	mock.ExpectPing().WillReturnError(errors.New("connection refused"))

	rec := httptest.NewRecorder()
	repo := &repository.Repository{DB: mock}
	healthCheck(repo, zap.NewNop())(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

package utils

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"realty-backend/pkg/apperror"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeMobile(t *testing.T) {
	cases := []struct {
		in   string
		want string
		ok   bool
	}{
		{"1234567890", "1234567890", true},
		{"+91 98765-43210", "919876543210", true},
		{"(123) 456 7890", "1234567890", true},
		{"12345", "12345", false},
		{"", "", false},
		{"abc", "", false},
		{"1234567890123456", "1234567890123456", false},
	}

	for _, tc := range cases {
		got, ok := NormalizeMobile(tc.in)
		assert.Equal(t, tc.want, got, tc.in)
		assert.Equal(t, tc.ok, ok, tc.in)
	}
}

func TestGenerateOTPRange(t *testing.T) {
	for i := 0; i < 500; i++ {
		code, err := GenerateOTP()
		require.NoError(t, err)
		require.Len(t, code, 6)

		n, err := strconv.Atoi(code)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, n, 100000)
		assert.LessOrEqual(t, n, 999999)
	}
}

func TestHashOTP(t *testing.T) {
	a := HashOTP("123456")
	b := HashOTP("123456")
	c := HashOTP("654321")

	assert.Len(t, a, 64)
	assert.True(t, OTPEqual(a, b))
	assert.False(t, OTPEqual(a, c))
	assert.NotContains(t, a, "123456")
}

func TestSlugify(t *testing.T) {
	assert.Equal(t, "pune-west-launch-2025", Slugify("  Pune West: Launch 2025! "))
	assert.Equal(t, "a-b", Slugify("A -- B"))
	assert.Equal(t, "", Slugify("!!!"))
}

func TestParseHelpers(t *testing.T) {
	assert.Equal(t, 3, ParseInt("3", 1))
	assert.Equal(t, 1, ParseInt("-4", 1))
	assert.Equal(t, 1, ParseInt("x", 1))

	require.NotNil(t, ParseBoolPtr("TRUE"))
	assert.True(t, *ParseBoolPtr("1"))
	assert.Nil(t, ParseBoolPtr("maybe"))

	require.NotNil(t, ParseIntPtr("0"))
	assert.Equal(t, 0, *ParseIntPtr("0"))
	assert.Nil(t, ParseIntPtr(""))
	assert.Nil(t, StringPtr("   "))
}

func TestValidateStructUsesJSONNames(t *testing.T) {
	type req struct {
		Mobile string `json:"mobile" validate:"required,mobile"`
		Rating int    `json:"rating" validate:"min=1,max=5"`
	}

	errs := ValidateStruct(req{Mobile: "123", Rating: 9})
	assert.Equal(t, "Invalid mobile number", errs["mobile"])
	assert.Equal(t, "Maximum value is 5", errs["rating"])

	errs = ValidateStruct(req{Rating: 3})
	assert.True(t, HasRequiredError(errs))

	assert.Empty(t, ValidateStruct(req{Mobile: "98765 43210", Rating: 5}))
}

func TestPrincipalContext(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	_, ok := GetPrincipal(req.Context())
	assert.False(t, ok)
	assert.False(t, IsStaffRequest(req.Context()))

	ctx := SetPrincipal(req.Context(), Principal{ID: uuid.New(), Kind: PrincipalStaff})
	assert.True(t, IsStaffRequest(ctx))

	ctx = SetPrincipal(req.Context(), Principal{ID: uuid.New(), Kind: PrincipalIdentity})
	p, ok := GetPrincipal(ctx)
	require.True(t, ok)
	assert.True(t, p.IsIdentity())
	assert.False(t, IsStaffRequest(ctx))
}

func TestResponseErrorHidesInternalDetail(t *testing.T) {
	rec := httptest.NewRecorder()
	ResponseError(rec, apperror.Internal("insert otp", assert.AnError))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), assert.AnError.Error())
	assert.Contains(t, rec.Body.String(), `"code":"INTERNAL_ERROR"`)
}

func TestResponseErrorCarriesCode(t *testing.T) {
	rec := httptest.NewRecorder()
	ResponseError(rec, apperror.InvalidOTP())

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t,
		`{"status":false,"message":"Invalid or expired OTP","code":"INVALID_OTP","error":"Invalid or expired OTP"}`,
		rec.Body.String())
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("JWT_SECRET", "0123456789abcdef0123456789abcdef")
	t.Setenv("DB_NAME", "realty")
	t.Setenv("JWT_ACCESS_TTL", "5m")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, "Asia/Kolkata", cfg.App.Timezone)
	assert.Equal(t, 5*time.Minute, cfg.JWT.AccessTTL)
	assert.Equal(t, 168*time.Hour, cfg.JWT.RefreshTTL)
	assert.Equal(t, 10*time.Minute, cfg.OTP.Expiry())
	assert.False(t, cfg.OTP.ReturnToClient)
	assert.Equal(t, "realty", cfg.Database.Name)
	assert.Equal(t, []string{"*"}, cfg.App.CORSOrigins)
}

func TestLoadConfigRejectsOTPEchoInProduction(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("JWT_SECRET", "0123456789abcdef0123456789abcdef")
	t.Setenv("APP_ENV", "production")
	t.Setenv("OTP_RETURN_TO_CLIENT", "true")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "OTP_RETURN_TO_CLIENT")
}

func TestLoadConfigRequiresSecret(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("JWT_SECRET", "short")

	_, err := LoadConfig()
	require.Error(t, err)
}

func TestDatabaseURL(t *testing.T) {
	cfg := DatabaseConfig{Host: "db", Port: "5432", Name: "realty", User: "app", Password: "p@ss", SSLMode: "disable"}
	assert.Equal(t, "pgx5://app:p%40ss@db:5432/realty?sslmode=disable", cfg.URL())
}

package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMiddlewareUsesRoutePattern(t *testing.T) {
	m := New()
	r := chi.NewRouter()
	r.Use(m.Middleware)
	r.Get("/api/projects/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	for _, id := range []string{"a", "b"} {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/projects/"+id, nil))
	}

	assert.Equal(t, 2.0, testutil.ToFloat64(m.requests.WithLabelValues("GET", "/api/projects/{id}", "404")))
}

func TestOTPCounters(t *testing.T) {
	m := New()
	m.OTPIssued("signup")
	m.OTPIssued("signup")
	m.OTPVerified("invalid")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.otpIssued.WithLabelValues("signup")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.otpVerification.WithLabelValues("invalid")))
}

func TestHandlerExposesCollectors(t *testing.T) {
	m := New()
	m.OTPIssued("login")

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), `realty_otp_issued_total{purpose="login"} 1`))
}

package sms

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"realty-backend/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewPicksSender(t *testing.T) {
	log := zap.NewNop()
	assert.IsType(t, &LogSender{}, New(utils.SMSConfig{}, log))
	assert.IsType(t, &HTTPSender{}, New(utils.SMSConfig{GatewayURL: "http://sms.local"}, log))
}

func TestHTTPSenderPostsCode(t *testing.T) {
	var got gatewayRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "key-123", r.Header.Get("Authorization"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	s := NewHTTPSender(utils.SMSConfig{GatewayURL: server.URL, APIKey: "key-123", Sender: "REALTY"}, zap.NewNop())
	require.NoError(t, s.SendOTP(context.Background(), "9876543210", "123456"))

	assert.Equal(t, gatewayRequest{Route: "otp", Numbers: "9876543210", Variables: "123456", SenderID: "REALTY"}, got)
}

func TestHTTPSenderGatewayError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream down"))
	}))
	defer server.Close()

	s := NewHTTPSender(utils.SMSConfig{GatewayURL: server.URL}, zap.NewNop())
	err := s.SendOTP(context.Background(), "9876543210", "123456")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status=502")
}

func TestLogSenderNeverFails(t *testing.T) {
	assert.NoError(t, NewLogSender(zap.NewNop()).SendOTP(context.Background(), "9876543210", "123456"))
}

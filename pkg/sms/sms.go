// Package sms delivers one-time codes to phones.
package sms

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"realty-backend/pkg/utils"

	"go.uber.org/zap"
)

const defaultTimeout = 10 * time.Second

type Sender interface {
	SendOTP(ctx context.Context, mobile, code string) error
}

// New returns an HTTP gateway sender when a gateway URL is configured,
// otherwise a sender that only logs.
func New(cfg utils.SMSConfig, log *zap.Logger) Sender {
	if cfg.GatewayURL == "" {
		return NewLogSender(log)
	}
	return NewHTTPSender(cfg, log)
}

// LogSender logs the delivery without sending anything. The code itself is
// never logged.
type LogSender struct {
	log *zap.Logger
}

func NewLogSender(log *zap.Logger) *LogSender {
	return &LogSender{log: log.With(zap.String("component", "sms"))}
}

func (s *LogSender) SendOTP(_ context.Context, mobile, _ string) error {
	s.log.Info("SMS gateway not configured, OTP not delivered", zap.String("mobile", mobile))
	return nil
}

// HTTPSender posts the code as JSON to an SMS gateway.
type HTTPSender struct {
	url        string
	apiKey     string
	sender     string
	httpClient *http.Client
	log        *zap.Logger
}

func NewHTTPSender(cfg utils.SMSConfig, log *zap.Logger) *HTTPSender {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &HTTPSender{
		url:        cfg.GatewayURL,
		apiKey:     cfg.APIKey,
		sender:     cfg.Sender,
		httpClient: &http.Client{Timeout: timeout},
		log:        log.With(zap.String("component", "sms")),
	}
}

type gatewayRequest struct {
	Route     string `json:"route"`
	Numbers   string `json:"numbers"`
	Variables string `json:"variables"`
	SenderID  string `json:"sender_id,omitempty"`
}

func (s *HTTPSender) SendOTP(ctx context.Context, mobile, code string) error {
	raw, err := json.Marshal(gatewayRequest{
		Route:     "otp",
		Numbers:   mobile,
		Variables: code,
		SenderID:  s.sender,
	})
	if err != nil {
		return fmt.Errorf("encode sms request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewReader(raw))
	if err != nil {
		return fmt.Errorf("build sms request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if s.apiKey != "" {
		req.Header.Set("Authorization", s.apiKey)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		s.log.Error("SMS gateway unreachable", zap.Error(err), zap.String("mobile", mobile))
		return fmt.Errorf("send sms: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		s.log.Error("SMS gateway rejected request",
			zap.Int("status", resp.StatusCode),
			zap.String("mobile", mobile),
		)
		return fmt.Errorf("sms gateway status=%d body=%s", resp.StatusCode, string(body))
	}

	s.log.Info("OTP SMS sent", zap.String("mobile", mobile))
	return nil
}

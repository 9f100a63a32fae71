package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"realty-backend/internal/data/entity"
	"realty-backend/internal/data/repository"
	"realty-backend/internal/data/repository/memory"
	"realty-backend/internal/dto/request"
	"realty-backend/pkg/apperror"
	"realty-backend/pkg/metrics"
	"realty-backend/pkg/throttle"
	"realty-backend/pkg/token"
	"realty-backend/pkg/utils"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testMobile = "9876543210"

type fakeSender struct {
	mu    sync.Mutex
	codes map[string][]string
	err   error
}

func (f *fakeSender) SendOTP(_ context.Context, mobile, code string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.codes == nil {
		f.codes = map[string][]string{}
	}
	f.codes[mobile] = append(f.codes[mobile], code)
	return f.err
}

func (f *fakeSender) last(mobile string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	codes := f.codes[mobile]
	if len(codes) == 0 {
		return ""
	}
	return codes[len(codes)-1]
}

type stubLimiter struct{ allow bool }

func (l stubLimiter) Allow(context.Context, string) (bool, error) { return l.allow, nil }

type failingLimiter struct{}

func (failingLimiter) Allow(context.Context, string) (bool, error) {
	return false, errors.New("redis: connection refused")
}

type fixture struct {
	now        time.Time
	identities *memory.IdentityRepository
	otps       *memory.OTPRepository
	staff      *memory.StaffRepository
	contacts   *memory.ContactRepository
	sender     *fakeSender
	metrics    *metrics.Metrics
	config     *utils.Config
	repo       *repository.Repository
	tokens     *token.Manager
}

func testConfig() *utils.Config {
	return &utils.Config{
		App: utils.AppConfig{Env: "development", Timezone: "Asia/Kolkata"},
		JWT: utils.JWTConfig{
			Secret:     "0123456789abcdef0123456789abcdef",
			Issuer:     "realty-backend",
			Audience:   "realty-api",
			AccessTTL:  15 * time.Minute,
			RefreshTTL: 24 * time.Hour,
		},
		OTP:      utils.OTPConfig{ExpiryMinutes: 10},
		Security: utils.SecurityConfig{BcryptCost: 4},
	}
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		now:        time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC),
		identities: memory.NewIdentityRepository(),
		otps:       memory.NewOTPRepository(),
		staff:      memory.NewStaffRepository(),
		contacts:   memory.NewContactRepository(),
		sender:     &fakeSender{},
		metrics:    metrics.New(),
		config:     testConfig(),
	}
	f.repo = &repository.Repository{
		Identity: f.identities,
		OTP:      f.otps,
		Staff:    f.staff,
		Contact:  f.contacts,
		City:     memory.NewCityRepository(),
	}
	f.tokens = token.NewManager(f.config.JWT)
	return f
}

func (f *fixture) clock() time.Time { return f.now }

func (f *fixture) deps(limiter throttle.Limiter) Deps {
	return Deps{
		Tokens:  f.tokens,
		Sender:  f.sender,
		Limiter: limiter,
		Metrics: f.metrics,
		Now:     f.clock,
	}
}

func (f *fixture) auth() AuthService {
	return NewAuthService(f.repo, f.config, f.deps(throttle.Noop{}), zap.NewNop())
}

func requireKind(t *testing.T, err error, kind apperror.Kind, code string) {
	t.Helper()
	appErr, ok := apperror.As(err)
	require.True(t, ok, "expected *apperror.Error, got %v", err)
	assert.Equal(t, kind, appErr.Kind)
	if code != "" {
		assert.Equal(t, code, appErr.Code)
	}
}

func TestSendOTPStoresHashAndDelivers(t *testing.T) {
	f := newFixture(t)
	svc := f.auth()

	resp, err := svc.SendOTP(context.Background(), &request.SendOTPRequest{Mobile: "+91 98765-43210"})
	require.NoError(t, err)

	assert.Equal(t, "919876543210", resp.Mobile)
	assert.Equal(t, entity.OTPPurposeLogin, resp.Purpose)
	assert.Equal(t, f.now.Add(10*time.Minute), resp.ExpiresAt)
	assert.Empty(t, resp.OTP, "code must not be echoed by default")
	assert.Len(t, f.sender.last("919876543210"), 6)
	assert.Equal(t, 1, f.otps.Pending("919876543210", f.now))
	series, err := testutil.GatherAndCount(f.metrics.Registry(), "realty_otp_issued_total")
	require.NoError(t, err)
	assert.Equal(t, 1, series)
}

func TestSendOTPEchoesCodeWhenEnabled(t *testing.T) {
	f := newFixture(t)
	f.config.OTP.ReturnToClient = true

	resp, err := f.auth().SendOTP(context.Background(), &request.SendOTPRequest{Mobile: testMobile, Purpose: "signup"})
	require.NoError(t, err)
	assert.Equal(t, f.sender.last(testMobile), resp.OTP)
}

func TestSendOTPRejectsBadMobile(t *testing.T) {
	f := newFixture(t)

	_, err := f.auth().SendOTP(context.Background(), &request.SendOTPRequest{Mobile: "12345"})
	requireKind(t, err, apperror.KindValidation, apperror.CodeInvalidMobile)

	_, err = f.auth().SendOTP(context.Background(), &request.SendOTPRequest{})
	requireKind(t, err, apperror.KindValidation, apperror.CodeMissingFields)
}

func TestSendOTPThrottled(t *testing.T) {
	f := newFixture(t)
	svc := NewAuthService(f.repo, f.config, f.deps(stubLimiter{allow: false}), zap.NewNop())

	_, err := svc.SendOTP(context.Background(), &request.SendOTPRequest{Mobile: testMobile})
	requireKind(t, err, apperror.KindRateLimited, apperror.CodeOTPThrottled)
	assert.Zero(t, f.otps.Pending(testMobile, f.now))
}

func TestSendOTPFailsOpenWhenLimiterErrors(t *testing.T) {
	f := newFixture(t)
	svc := NewAuthService(f.repo, f.config, f.deps(failingLimiter{}), zap.NewNop())

	_, err := svc.SendOTP(context.Background(), &request.SendOTPRequest{Mobile: testMobile})
	require.NoError(t, err)
}

func TestSendOTPSurvivesDeliveryFailure(t *testing.T) {
	f := newFixture(t)
	f.sender.err = errors.New("gateway timeout")

	_, err := f.auth().SendOTP(context.Background(), &request.SendOTPRequest{Mobile: testMobile})
	require.NoError(t, err)
	assert.Equal(t, 1, f.otps.Pending(testMobile, f.now))
}

func TestNewCodeInvalidatesPrevious(t *testing.T) {
	f := newFixture(t)
	svc := f.auth()
	ctx := context.Background()

	_, err := svc.SendOTP(ctx, &request.SendOTPRequest{Mobile: testMobile})
	require.NoError(t, err)
	first := f.sender.last(testMobile)

	f.now = f.now.Add(30 * time.Second)
	_, err = svc.SendOTP(ctx, &request.SendOTPRequest{Mobile: testMobile})
	require.NoError(t, err)
	second := f.sender.last(testMobile)

	if first != second {
		_, err = svc.VerifyOTP(ctx, &request.VerifyOTPRequest{Mobile: testMobile, OTPCode: first})
		requireKind(t, err, apperror.KindInvalidOTP, apperror.CodeInvalidOTP)
	}

	resp, err := svc.VerifyOTP(ctx, &request.VerifyOTPRequest{Mobile: testMobile, OTPCode: second})
	require.NoError(t, err)
	require.NotNil(t, resp.NeedsRegistration)
	assert.True(t, *resp.NeedsRegistration)
}

func TestCodeIsSingleUse(t *testing.T) {
	f := newFixture(t)
	svc := f.auth()
	ctx := context.Background()

	_, err := svc.SendOTP(ctx, &request.SendOTPRequest{Mobile: testMobile})
	require.NoError(t, err)
	code := f.sender.last(testMobile)

	_, err = svc.VerifyOTP(ctx, &request.VerifyOTPRequest{Mobile: testMobile, OTPCode: code})
	require.NoError(t, err)

	_, err = svc.VerifyOTP(ctx, &request.VerifyOTPRequest{Mobile: testMobile, OTPCode: code})
	requireKind(t, err, apperror.KindInvalidOTP, apperror.CodeInvalidOTP)
}

func TestCodeExpiryBoundary(t *testing.T) {
	ctx := context.Background()

	t.Run("one second before expiry", func(t *testing.T) {
		f := newFixture(t)
		svc := f.auth()
		_, err := svc.SendOTP(ctx, &request.SendOTPRequest{Mobile: testMobile})
		require.NoError(t, err)

		f.now = f.now.Add(10*time.Minute - time.Second)
		_, err = svc.VerifyOTP(ctx, &request.VerifyOTPRequest{Mobile: testMobile, OTPCode: f.sender.last(testMobile)})
		require.NoError(t, err)
	})

	t.Run("one second after expiry", func(t *testing.T) {
		f := newFixture(t)
		svc := f.auth()
		_, err := svc.SendOTP(ctx, &request.SendOTPRequest{Mobile: testMobile})
		require.NoError(t, err)

		f.now = f.now.Add(10*time.Minute + time.Second)
		_, err = svc.VerifyOTP(ctx, &request.VerifyOTPRequest{Mobile: testMobile, OTPCode: f.sender.last(testMobile)})
		requireKind(t, err, apperror.KindInvalidOTP, apperror.CodeInvalidOTP)
	})
}

func TestVerifyPurposeScoping(t *testing.T) {
	f := newFixture(t)
	svc := f.auth()
	ctx := context.Background()

	_, err := svc.SendOTP(ctx, &request.SendOTPRequest{Mobile: testMobile, Purpose: "contact"})
	require.NoError(t, err)
	code := f.sender.last(testMobile)

	// tanpa purpose hanya signup/login yang dicocokkan
	_, err = svc.VerifyOTP(ctx, &request.VerifyOTPRequest{Mobile: testMobile, OTPCode: code})
	requireKind(t, err, apperror.KindInvalidOTP, "")

	resp, err := svc.VerifyOTP(ctx, &request.VerifyOTPRequest{Mobile: testMobile, OTPCode: code, Purpose: "contact"})
	require.NoError(t, err)
	require.NotNil(t, resp.Verified)
	assert.True(t, *resp.Verified)
	assert.Equal(t, testMobile, resp.Mobile)
	assert.Nil(t, resp.TokenResponse)

	identity, err := f.identities.FindByMobile(ctx, testMobile)
	require.NoError(t, err)
	assert.Nil(t, identity, "contact verification must not create an identity")
}

func TestSignupThenCompleteRegistration(t *testing.T) {
	f := newFixture(t)
	svc := f.auth()
	ctx := context.Background()

	_, err := svc.SendOTP(ctx, &request.SendOTPRequest{Mobile: testMobile, Purpose: "signup"})
	require.NoError(t, err)

	verified, err := svc.VerifyOTP(ctx, &request.VerifyOTPRequest{Mobile: testMobile, OTPCode: f.sender.last(testMobile)})
	require.NoError(t, err)
	require.NotNil(t, verified.NeedsRegistration)
	assert.Nil(t, verified.TokenResponse)

	email := "Asha@Example.com"
	done, err := svc.CompleteRegistration(ctx, &request.CompleteRegistrationRequest{
		Mobile:    testMobile,
		FirstName: " Asha ",
		LastName:  "Patil",
		Email:     &email,
	})
	require.NoError(t, err)
	assert.True(t, done.User.IsRegistered)
	assert.Equal(t, "Asha", done.User.FirstName)
	require.NotNil(t, done.User.Email)
	assert.Equal(t, "asha@example.com", *done.User.Email)
	assert.Equal(t, token.BearerType, done.TokenType)

	principal, err := f.tokens.Parse(done.AccessToken, token.TypeAccess)
	require.NoError(t, err)
	assert.Equal(t, utils.PrincipalIdentity, principal.Kind)
	assert.Equal(t, done.User.ID, principal.ID.String())

	_, err = svc.CompleteRegistration(ctx, &request.CompleteRegistrationRequest{
		Mobile: testMobile, FirstName: "Someone", LastName: "Else",
	})
	requireKind(t, err, apperror.KindConflict, apperror.CodeAlreadyRegistered)
}

func TestVerifyWithProfileRegistersInline(t *testing.T) {
	f := newFixture(t)
	svc := f.auth()
	ctx := context.Background()

	_, err := svc.SendOTP(ctx, &request.SendOTPRequest{Mobile: testMobile})
	require.NoError(t, err)

	resp, err := svc.VerifyOTP(ctx, &request.VerifyOTPRequest{
		Mobile:    testMobile,
		OTPCode:   f.sender.last(testMobile),
		FirstName: "Ravi",
		LastName:  "Kulkarni",
	})
	require.NoError(t, err)
	require.NotNil(t, resp.User)
	require.NotNil(t, resp.TokenResponse)
	assert.True(t, resp.User.IsRegistered)
}

func TestLoginForRegisteredIdentity(t *testing.T) {
	f := newFixture(t)
	svc := f.auth()
	ctx := context.Background()

	_, err := svc.SendOTP(ctx, &request.SendOTPRequest{Mobile: testMobile})
	require.NoError(t, err)
	_, err = svc.VerifyOTP(ctx, &request.VerifyOTPRequest{
		Mobile: testMobile, OTPCode: f.sender.last(testMobile), FirstName: "Ravi", LastName: "K",
	})
	require.NoError(t, err)

	f.now = f.now.Add(time.Hour)
	_, err = svc.SendOTP(ctx, &request.SendOTPRequest{Mobile: testMobile})
	require.NoError(t, err)
	resp, err := svc.VerifyOTP(ctx, &request.VerifyOTPRequest{Mobile: testMobile, OTPCode: f.sender.last(testMobile)})
	require.NoError(t, err)
	require.NotNil(t, resp.User)
	require.NotNil(t, resp.User.LastLoginAt)
	assert.Equal(t, f.now, *resp.User.LastLoginAt)
	assert.NotEmpty(t, resp.AccessToken)
}

func TestVerifyRejectsDisabledIdentity(t *testing.T) {
	f := newFixture(t)
	svc := f.auth()
	ctx := context.Background()

	identity, err := f.identities.EnsureByMobile(ctx, testMobile, f.now)
	require.NoError(t, err)
	f.identities.SetActive(identity.ID, false)

	_, err = svc.SendOTP(ctx, &request.SendOTPRequest{Mobile: testMobile})
	require.NoError(t, err)
	_, err = svc.VerifyOTP(ctx, &request.VerifyOTPRequest{Mobile: testMobile, OTPCode: f.sender.last(testMobile)})
	requireKind(t, err, apperror.KindForbidden, apperror.CodeAccountDisabled)
}

func TestCompleteRegistrationUnknownMobile(t *testing.T) {
	f := newFixture(t)

	_, err := f.auth().CompleteRegistration(context.Background(), &request.CompleteRegistrationRequest{
		Mobile: testMobile, FirstName: "A", LastName: "B",
	})
	requireKind(t, err, apperror.KindNotFound, apperror.CodeUserNotFound)
}

func TestRefreshAndResolvePrincipal(t *testing.T) {
	f := newFixture(t)
	svc := f.auth()
	ctx := context.Background()

	identity, err := f.identities.EnsureByMobile(ctx, testMobile, f.now)
	require.NoError(t, err)
	pair, err := f.tokens.Issue(utils.Principal{ID: identity.ID, Kind: utils.PrincipalIdentity})
	require.NoError(t, err)

	refreshed, err := svc.Refresh(ctx, &request.RefreshTokenRequest{RefreshToken: pair.RefreshToken})
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)

	_, err = svc.Refresh(ctx, &request.RefreshTokenRequest{RefreshToken: pair.AccessToken})
	requireKind(t, err, apperror.KindUnauthorized, apperror.CodeInvalidToken)

	f.identities.SetActive(identity.ID, false)
	_, err = svc.Refresh(ctx, &request.RefreshTokenRequest{RefreshToken: pair.RefreshToken})
	requireKind(t, err, apperror.KindForbidden, "")

	err = svc.ResolvePrincipal(ctx, utils.Principal{ID: identity.ID, Kind: utils.PrincipalStaff})
	requireKind(t, err, apperror.KindUnauthorized, apperror.CodeInvalidToken)
}

// barrierIdentities holds every FindByMobile until both callers have read the
// row, so both see the identity as unregistered.
type barrierIdentities struct {
	*memory.IdentityRepository
	reads sync.WaitGroup
}

func (b *barrierIdentities) FindByMobile(ctx context.Context, mobile string) (*entity.Identity, error) {
	identity, err := b.IdentityRepository.FindByMobile(ctx, mobile)
	b.reads.Done()
	b.reads.Wait()
	return identity, err
}

func TestConcurrentCompleteRegistrationRegistersOnce(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, err := f.identities.EnsureByMobile(ctx, "1234567890", f.now)
	require.NoError(t, err)

	gated := &barrierIdentities{IdentityRepository: f.identities}
	gated.reads.Add(2)
	f.repo.Identity = gated
	svc := f.auth()

	names := []string{"Alice", "Mallory"}
	results := make([]error, len(names))
	var wg sync.WaitGroup
	for i, name := range names {
		wg.Add(1)
		go func(i int, name string) {
			defer wg.Done()
			_, results[i] = svc.CompleteRegistration(ctx, &request.CompleteRegistrationRequest{
				Mobile: "1234567890", FirstName: name, LastName: "Doe",
			})
		}(i, name)
	}
	wg.Wait()

	winner := -1
	for i, err := range results {
		if err == nil {
			require.Equal(t, -1, winner, "both registrations succeeded")
			winner = i
			continue
		}
		requireKind(t, err, apperror.KindConflict, apperror.CodeAlreadyRegistered)
	}
	require.NotEqual(t, -1, winner)

	stored, err := f.identities.FindByMobile(ctx, "1234567890")
	require.NoError(t, err)
	assert.Equal(t, names[winner], stored.FirstName)
}

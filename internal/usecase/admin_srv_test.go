package usecase

import (
	"context"
	"testing"

	"realty-backend/internal/dto/request"
	"realty-backend/pkg/apperror"
	"realty-backend/pkg/throttle"
	"realty-backend/pkg/token"
	"realty-backend/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func (f *fixture) admin() AdminService {
	return NewAdminService(f.staff, f.config, f.deps(throttle.Noop{}), zap.NewNop())
}

func TestCreateStaffAndLogin(t *testing.T) {
	f := newFixture(t)
	svc := f.admin()
	ctx := context.Background()

	created, err := svc.CreateStaff(ctx, " admin ", "s3cret-pass", "Site Admin")
	require.NoError(t, err)
	assert.Equal(t, "admin", created.Username)
	assert.True(t, created.IsActive)

	stored, err := f.staff.FindByUsername(ctx, "admin")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-pass", stored.PasswordHash)

	resp, err := svc.Login(ctx, &request.AdminLoginRequest{Username: "admin", Password: "s3cret-pass"})
	require.NoError(t, err)
	require.NotNil(t, resp.Staff.LastLoginAt)
	assert.Equal(t, f.now, *resp.Staff.LastLoginAt)

	principal, err := f.tokens.Parse(resp.AccessToken, token.TypeAccess)
	require.NoError(t, err)
	assert.True(t, principal.IsStaff())
	assert.Equal(t, utils.PrincipalStaff, principal.Kind)
}

func TestAdminLoginRejectsBadCredentials(t *testing.T) {
	f := newFixture(t)
	svc := f.admin()
	ctx := context.Background()

	_, err := svc.CreateStaff(ctx, "admin", "s3cret-pass", "")
	require.NoError(t, err)

	_, err = svc.Login(ctx, &request.AdminLoginRequest{Username: "admin", Password: "wrong-pass"})
	requireKind(t, err, apperror.KindUnauthorized, apperror.CodeInvalidCredentials)

	_, err = svc.Login(ctx, &request.AdminLoginRequest{Username: "ghost", Password: "s3cret-pass"})
	requireKind(t, err, apperror.KindUnauthorized, apperror.CodeInvalidCredentials)

	_, err = svc.Login(ctx, &request.AdminLoginRequest{Username: "admin"})
	requireKind(t, err, apperror.KindValidation, apperror.CodeMissingFields)
}

func TestCreateStaffValidation(t *testing.T) {
	f := newFixture(t)
	svc := f.admin()
	ctx := context.Background()

	_, err := svc.CreateStaff(ctx, "", "s3cret-pass", "")
	requireKind(t, err, apperror.KindValidation, apperror.CodeMissingFields)

	_, err = svc.CreateStaff(ctx, "admin", "short", "")
	requireKind(t, err, apperror.KindValidation, apperror.CodeValidation)

	_, err = svc.CreateStaff(ctx, "admin", "s3cret-pass", "")
	require.NoError(t, err)
	_, err = svc.CreateStaff(ctx, "admin", "another-pass", "")
	requireKind(t, err, apperror.KindConflict, apperror.CodeConflict)
}

func TestStaffPrincipalResolves(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created, err := f.admin().CreateStaff(ctx, "admin", "s3cret-pass", "")
	require.NoError(t, err)
	staffID, err := utils.ParseUUID(created.ID)
	require.NoError(t, err)

	err = f.auth().ResolvePrincipal(ctx, utils.Principal{ID: staffID, Kind: utils.PrincipalStaff})
	assert.NoError(t, err)
}

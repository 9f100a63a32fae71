package token

import (
	"testing"
	"time"

	"realty-backend/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testManager() *Manager {
	return NewManager(utils.JWTConfig{
		Secret:     "0123456789abcdef0123456789abcdef",
		Issuer:     "realty-backend",
		Audience:   "realty-api",
		AccessTTL:  15 * time.Minute,
		RefreshTTL: 24 * time.Hour,
	})
}

func TestIssueAndParse(t *testing.T) {
	m := testManager()
	p := utils.Principal{ID: uuid.New(), Kind: utils.PrincipalIdentity}

	pair, err := m.Issue(p)
	require.NoError(t, err)
	assert.Equal(t, BearerType, pair.TokenType)
	assert.NotEqual(t, pair.AccessToken, pair.RefreshToken)

	got, err := m.Parse(pair.AccessToken, TypeAccess)
	require.NoError(t, err)
	assert.Equal(t, p, got)

	got, err = m.Parse(pair.RefreshToken, TypeRefresh)
	require.NoError(t, err)
	assert.Equal(t, p, got)
}

func TestParseRejectsWrongType(t *testing.T) {
	m := testManager()
	pair, err := m.Issue(utils.Principal{ID: uuid.New(), Kind: utils.PrincipalStaff})
	require.NoError(t, err)

	_, err = m.Parse(pair.RefreshToken, TypeAccess)
	assert.ErrorIs(t, err, ErrInvalidToken)
	_, err = m.Parse(pair.AccessToken, TypeRefresh)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseRejectsExpired(t *testing.T) {
	issuedAt := time.Now().Add(-time.Hour)
	m := testManager().WithClock(func() time.Time { return issuedAt })
	pair, err := m.Issue(utils.Principal{ID: uuid.New(), Kind: utils.PrincipalIdentity})
	require.NoError(t, err)

	_, err = testManager().Parse(pair.AccessToken, TypeAccess)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseRejectsForeignSecret(t *testing.T) {
	other := NewManager(utils.JWTConfig{
		Secret:     "ffffffffffffffffffffffffffffffff",
		Issuer:     "realty-backend",
		Audience:   "realty-api",
		AccessTTL:  time.Minute,
		RefreshTTL: time.Hour,
	})
	pair, err := other.Issue(utils.Principal{ID: uuid.New(), Kind: utils.PrincipalIdentity})
	require.NoError(t, err)

	_, err = testManager().Parse(pair.AccessToken, TypeAccess)
	assert.ErrorIs(t, err, ErrInvalidToken)
	_, err = testManager().Parse("not-a-jwt", TypeAccess)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

// Package token mints and validates the HS256 access/refresh pairs handed to
// identities and staff.
package token

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"realty-backend/pkg/utils"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// ErrInvalidToken is returned for any token that fails parsing or validation.
var ErrInvalidToken = errors.New("invalid token")

type Type string

const (
	TypeAccess  Type = "access"
	TypeRefresh Type = "refresh"
)

const BearerType = "Bearer"

type Claims struct {
	jwt.RegisteredClaims
	Kind utils.PrincipalKind `json:"kind"`
	Type Type                `json:"typ"`
}

// Pair is what clients receive after a successful login.
type Pair struct {
	AccessToken  string
	RefreshToken string
	TokenType    string
	ExpiresAt    time.Time
}

type Manager struct {
	secret     []byte
	issuer     string
	audience   string
	accessTTL  time.Duration
	refreshTTL time.Duration
	now        func() time.Time
}

func NewManager(cfg utils.JWTConfig) *Manager {
	return &Manager{
		secret:     []byte(cfg.Secret),
		issuer:     cfg.Issuer,
		audience:   cfg.Audience,
		accessTTL:  cfg.AccessTTL,
		refreshTTL: cfg.RefreshTTL,
		now:        time.Now,
	}
}

// WithClock returns a copy of m that reads time from now.
func (m *Manager) WithClock(now func() time.Time) *Manager {
	c := *m
	c.now = now
	return &c
}

// Issue mints an access and a refresh token bound to the principal.
func (m *Manager) Issue(p utils.Principal) (*Pair, error) {
	now := m.now()
	access, accessExp, err := m.sign(p, TypeAccess, now, m.accessTTL)
	if err != nil {
		return nil, err
	}
	refresh, _, err := m.sign(p, TypeRefresh, now, m.refreshTTL)
	if err != nil {
		return nil, err
	}
	return &Pair{
		AccessToken:  access,
		RefreshToken: refresh,
		TokenType:    BearerType,
		ExpiresAt:    accessExp,
	}, nil
}

func (m *Manager) sign(p utils.Principal, typ Type, now time.Time, ttl time.Duration) (string, time.Time, error) {
	expiresAt := now.Add(ttl)
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   p.ID.String(),
			Issuer:    m.issuer,
			Audience:  jwt.ClaimStrings{m.audience},
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
		Kind: p.Kind,
		Type: typ,
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign %s token: %w", typ, err)
	}
	return signed, expiresAt, nil
}

// Parse validates signature, expiry, issuer, audience and token type, and
// returns the principal it was minted for.
func (m *Manager) Parse(tokenString string, expected Type) (utils.Principal, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return m.secret, nil
	},
		jwt.WithIssuer(m.issuer),
		jwt.WithAudience(m.audience),
		jwt.WithTimeFunc(m.now),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil || !token.Valid {
		return utils.Principal{}, ErrInvalidToken
	}
	if claims.Type != expected {
		return utils.Principal{}, ErrInvalidToken
	}
	if !slices.Contains([]utils.PrincipalKind{utils.PrincipalIdentity, utils.PrincipalStaff}, claims.Kind) {
		return utils.Principal{}, ErrInvalidToken
	}
	id, err := uuid.Parse(claims.Subject)
	if err != nil {
		return utils.Principal{}, ErrInvalidToken
	}
	return utils.Principal{ID: id, Kind: claims.Kind}, nil
}

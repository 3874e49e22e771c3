package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/medvault/medvault-backend/internal/config"
)

// RoleAuthenticated is the role claim carried by signed-in users' tokens.
const RoleAuthenticated = "authenticated"

// ErrNotAuthenticated is returned for a valid token of a non-user role.
var ErrNotAuthenticated = errors.New("token does not belong to a signed-in user")

// JWTManager validates the identity provider's HS256 access tokens. It can
// also mint them, which tests and local tooling use.
type JWTManager struct {
	secret   []byte
	audience string
	issuer   string
}

// NewJWTManager creates a new JWT manager from the identity provider settings.
// The issuer is only enforced when the project URL is set.
func NewJWTManager(cfg config.SupabaseConfig) *JWTManager {
	m := &JWTManager{
		secret:   []byte(cfg.JWTSecret),
		audience: cfg.JWTAudience,
	}
	if cfg.URL != "" {
		m.issuer = cfg.URL + "/auth/v1"
	}
	return m
}

// accessClaims extends standard JWT claims with the provider's custom claims.
type accessClaims struct {
	jwt.RegisteredClaims
	Role  string `json:"role,omitempty"`
	Phone string `json:"phone,omitempty"`
}

// GenerateAccessToken creates a signed HS256 token for accountID.
func (m *JWTManager) GenerateAccessToken(accountID uuid.UUID, role string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := accessClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   accountID.String(),
			Issuer:    m.issuer,
			Audience:  jwt.ClaimStrings{m.audience},
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		Role: role,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	return signed, nil
}

// Parse verifies the token signature, expiry, audience and issuer and
// returns the identity it describes.
func (m *JWTManager) Parse(tokenString string) (Identity, error) {
	if tokenString == "" {
		return Identity{}, fmt.Errorf("token is empty")
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if m.audience != "" {
		opts = append(opts, jwt.WithAudience(m.audience))
	}
	if m.issuer != "" {
		opts = append(opts, jwt.WithIssuer(m.issuer))
	}

	token, err := jwt.ParseWithClaims(tokenString, &accessClaims{}, func(token *jwt.Token) (any, error) {
		return m.secret, nil
	}, opts...)
	if err != nil {
		return Identity{}, fmt.Errorf("parse token: %w", err)
	}

	claims, ok := token.Claims.(*accessClaims)
	if !ok || !token.Valid {
		return Identity{}, fmt.Errorf("invalid token claims")
	}

	accountID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return Identity{}, fmt.Errorf("invalid subject UUID: %w", err)
	}

	return Identity{AccountID: accountID, Role: claims.Role, Phone: claims.Phone}, nil
}

// ValidateToken returns the account id of a signed-in user's token.
func (m *JWTManager) ValidateToken(_ context.Context, tokenString string) (uuid.UUID, error) {
	id, err := m.Parse(tokenString)
	if err != nil {
		return uuid.Nil, err
	}
	if !id.IsAuthenticated() {
		return uuid.Nil, ErrNotAuthenticated
	}
	return id.AccountID, nil
}

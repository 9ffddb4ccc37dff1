package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/golang-jwt/jwt/v5"
)

// ErrNotConfigured is returned when issuing without a signing secret.
var ErrNotConfigured = errors.New("jwt secret not configured")

// Claims are the claims of an access token. The subject is the
// checksummed address that signed the login message.
type Claims struct {
	jwt.RegisteredClaims
}

// Address returns the subject as an address.
func (c *Claims) Address() common.Address {
	return common.HexToAddress(c.Subject)
}

// JWTValidator issues and validates HS256 access tokens
type JWTValidator struct {
	secret []byte
	issuer string
	ttl    time.Duration
	now    func() time.Time
}

// NewJWTValidator creates a new JWT validator. An empty secret leaves the
// validator unconfigured.
func NewJWTValidator(secret, issuer string, ttl time.Duration) *JWTValidator {
	return &JWTValidator{
		secret: []byte(secret),
		issuer: issuer,
		ttl:    ttl,
		now:    time.Now,
	}
}

// Issue signs a token for addr.
func (v *JWTValidator) Issue(addr common.Address) (string, time.Time, error) {
	if !v.IsConfigured() {
		return "", time.Time{}, ErrNotConfigured
	}
	now := v.now()
	expires := now.Add(v.ttl)
	claims := Claims{RegisteredClaims: jwt.RegisteredClaims{
		Subject:   addr.Hex(),
		Issuer:    v.issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expires),
	}}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(v.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}
	return token, expires, nil
}

// ValidateToken validates a JWT token and returns the claims
func (v *JWTValidator) ValidateToken(tokenString string) (*Claims, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(v.now),
		jwt.WithExpirationRequired(),
	}
	if v.issuer != "" {
		opts = append(opts, jwt.WithIssuer(v.issuer))
	}

	var claims Claims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(*jwt.Token) (any, error) {
		return v.secret, nil
	}, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	if !common.IsHexAddress(claims.Subject) {
		return nil, fmt.Errorf("invalid subject %q", claims.Subject)
	}
	return &claims, nil
}

// IsConfigured returns true if a signing secret is set
func (v *JWTValidator) IsConfigured() bool {
	return len(v.secret) > 0
}

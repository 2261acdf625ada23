package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Purpose separates sign-in link tokens from session tokens so one can
// never be replayed as the other.
type Purpose string

const (
	PurposeSession   Purpose = "session"
	PurposeMagicLink Purpose = "magic_link"
)

// Claims represents the identity contained in a JWT. Subject carries the
// user ID for sessions and is empty for sign-in links.
type Claims struct {
	Email   string  `json:"email"`
	Purpose Purpose `json:"purpose"`
	jwt.RegisteredClaims
}

var (
	errMissingSecret = errors.New("jwt secret not configured")
	ErrInvalidToken  = errors.New("invalid token")
)

// Issuer signs and verifies HS256 tokens.
type Issuer struct {
	secret []byte
	now    func() time.Time
}

// NewIssuer builds an issuer. Production requires an explicit secret; other
// environments fall back to a development secret.
func NewIssuer(secret, env string) (*Issuer, error) {
	secret = strings.TrimSpace(secret)
	if secret == "" {
		if env == "production" {
			return nil, fmt.Errorf("%w: JWT_SECRET required in production", errMissingSecret)
		}
		secret = "dev-secret"
	}
	return &Issuer{secret: []byte(secret), now: time.Now}, nil
}

// Sign issues a token for purpose valid for ttl. The generated token ID is
// returned in the claims.
func (i *Issuer) Sign(purpose Purpose, subject, email string, ttl time.Duration) (string, Claims, error) {
	if email == "" && subject == "" {
		return "", Claims{}, errors.New("subject or email is required")
	}
	now := i.now().UTC()
	claims := Claims{
		Email:   email,
		Purpose: purpose,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
	if err != nil {
		return "", Claims{}, fmt.Errorf("sign token: %w", err)
	}
	return token, claims, nil
}

// Verify checks signature, expiry and purpose.
func (i *Issuer) Verify(token string, purpose Purpose) (Claims, error) {
	if strings.TrimSpace(token) == "" {
		return Claims{}, ErrInvalidToken
	}
	claims := Claims{}
	parsed, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (interface{}, error) {
		return i.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(i.now),
	)
	if err != nil {
		return Claims{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !parsed.Valid || claims.Purpose != purpose {
		return Claims{}, ErrInvalidToken
	}
	if purpose == PurposeSession && claims.Subject == "" {
		return Claims{}, ErrInvalidToken
	}
	return claims, nil
}

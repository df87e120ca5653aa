package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/interviewmate/backend/pkg/kernel"
)

// TokenClaims is what a validated access token resolves to
type TokenClaims struct {
	UserID      kernel.UserID
	ExternalUID kernel.ExternalUID
	Email       kernel.Email
	Role        Role
	ExpiresAt   time.Time
}

// TokenService issues and validates access tokens
type TokenService interface {
	GenerateAccessToken(userID kernel.UserID, uid kernel.ExternalUID, email kernel.Email, role Role) (string, error)
	ValidateAccessToken(tokenString string) (*TokenClaims, error)
}

type jwtClaims struct {
	ExternalUID string `json:"uid"`
	Email       string `json:"email"`
	Role        string `json:"role"`
	jwt.RegisteredClaims
}

// JWTService implements TokenService with HMAC-signed JWTs
type JWTService struct {
	secretKey      []byte
	accessTokenTTL time.Duration
	issuer         string
}

// NewJWTService creates a new JWT token service
func NewJWTService(secretKey string, accessTokenTTL time.Duration, issuer string) *JWTService {
	return &JWTService{
		secretKey:      []byte(secretKey),
		accessTokenTTL: accessTokenTTL,
		issuer:         issuer,
	}
}

// GenerateAccessToken creates a signed token carrying identity and role
func (s *JWTService) GenerateAccessToken(userID kernel.UserID, uid kernel.ExternalUID, email kernel.Email, role Role) (string, error) {
	now := time.Now()
	claims := jwtClaims{
		ExternalUID: uid.String(),
		Email:       email.String(),
		Role:        role.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.accessTokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secretKey)
	if err != nil {
		return "", ErrTokenGeneration().WithCause(err)
	}

	return signed, nil
}

// ValidateAccessToken parses and verifies a token, returning its claims
func (s *JWTService) ValidateAccessToken(tokenString string) (*TokenClaims, error) {
	var claims jwtClaims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken().WithDetail("alg", t.Header["alg"])
		}
		return s.secretKey, nil
	}, jwt.WithIssuer(s.issuer))
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken().WithCause(err)
	}

	expiresAt := time.Time{}
	if claims.ExpiresAt != nil {
		expiresAt = claims.ExpiresAt.Time
	}

	return &TokenClaims{
		UserID:      kernel.UserID(claims.Subject),
		ExternalUID: kernel.ExternalUID(claims.ExternalUID),
		Email:       kernel.Email(claims.Email),
		Role:        Role(claims.Role),
		ExpiresAt:   expiresAt,
	}, nil
}

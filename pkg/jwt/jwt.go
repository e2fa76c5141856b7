package jwt

import (
	"errors"
	"time"

	jwtv5 "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/zainaaazz/FullStackWebApplication/config"
)

var (
	ErrTokenExpired = errors.New("token expired")
	ErrTokenInvalid = errors.New("token invalid")
)

const issuer = "hms"

// Claims HMS access token claims
type Claims struct {
	UserID     int    `json:"UserID"`
	UserNumber int    `json:"UserNumber"`
	UserRole   string `json:"UserRole"`
	CourseID   *int   `json:"CourseID,omitempty"`
	jwtv5.RegisteredClaims
}

// Subject identity encoded into a token
type Subject struct {
	UserID     int
	UserNumber int
	UserRole   string
	CourseID   *int
}

// Manager signs and verifies HS256 access tokens
type Manager struct {
	secret []byte
	ttl    time.Duration
}

// NewManager creates a Manager from the auth config
func NewManager(cfg *config.AuthConfig) *Manager {
	return &Manager{
		secret: []byte(cfg.JWTSecret),
		ttl:    cfg.AccessTokenTTL,
	}
}

// TTL access token lifetime
func (m *Manager) TTL() time.Duration { return m.ttl }

// GenerateAccessToken signs a token for the subject
func (m *Manager) GenerateAccessToken(sub Subject) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID:     sub.UserID,
		UserNumber: sub.UserNumber,
		UserRole:   sub.UserRole,
		CourseID:   sub.CourseID,
		RegisteredClaims: jwtv5.RegisteredClaims{
			ID:        uuid.New().String(),
			IssuedAt:  jwtv5.NewNumericDate(now),
			ExpiresAt: jwtv5.NewNumericDate(now.Add(m.ttl)),
			Issuer:    issuer,
		},
	}

	token := jwtv5.NewWithClaims(jwtv5.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// ParseToken verifies signature and expiry and returns the claims
func (m *Manager) ParseToken(tokenString string) (*Claims, error) {
	token, err := jwtv5.ParseWithClaims(tokenString, &Claims{}, func(t *jwtv5.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwtv5.SigningMethodHMAC); !ok {
			return nil, ErrTokenInvalid
		}
		return m.secret, nil
	})

	if err != nil {
		if errors.Is(err, jwtv5.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrTokenInvalid
	}

	return claims, nil
}

package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/raduapetrei/bookshelf-api/internal/config"
	"github.com/raduapetrei/bookshelf-api/internal/platform/logger"
)

// hmacJWTService implements JWTService using HMAC-SHA-512 signing.
// The signing key is injected at construction and lives for the process.
type hmacJWTService struct {
	signingKey    []byte
	tokenLifetime time.Duration
	timeFunc      func() time.Time // injectable for testing
}

var _ JWTService = (*hmacJWTService)(nil)

// NewJWTService creates a JWT service from auth configuration.
// The secret must be at least 32 characters.
func NewJWTService(cfg config.AuthConfig) (JWTService, error) {
	if len(cfg.JWTSecret) < 32 {
		return nil, fmt.Errorf("jwt secret must be at least 32 characters")
	}

	return &hmacJWTService{
		signingKey:    []byte(cfg.JWTSecret),
		tokenLifetime: time.Duration(cfg.TokenLifetimeMinutes) * time.Minute,
		timeFunc:      time.Now,
	}, nil
}

// GenerateToken creates a signed HS512 token with subject = username and an
// absolute expiration the configured lifetime past issuance.
func (s *hmacJWTService) GenerateToken(ctx context.Context, username string) (string, error) {
	log := logger.FromContext(ctx)
	now := s.timeFunc()

	claims := jwt.RegisteredClaims{
		Subject:   username,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenLifetime)),
		ID:        uuid.New().String(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS512, claims)
	signedToken, err := token.SignedString(s.signingKey)
	if err != nil {
		log.Error("failed to sign token",
			"error", err,
			"username", username,
			"signing_method", jwt.SigningMethodHS512.Name)
		return "", fmt.Errorf("failed to sign token with HMAC-SHA512: %w", err)
	}

	return signedToken, nil
}

// ValidateToken validates a token string and returns its claims if valid.
func (s *hmacJWTService) ValidateToken(ctx context.Context, tokenString string) (*Claims, error) {
	log := logger.FromContext(ctx)
	now := s.timeFunc()

	parserOpts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS512.Name}),
		jwt.WithTimeFunc(func() time.Time { return now }),
	}

	token, err := jwt.ParseWithClaims(
		tokenString,
		&jwt.RegisteredClaims{},
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return s.signingKey, nil
		},
		parserOpts...)
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			log.Debug("token validation failed: token expired", "error", err)
			return nil, ErrExpiredToken
		case errors.Is(err, jwt.ErrTokenNotValidYet):
			log.Debug("token validation failed: token not yet valid", "error", err)
			return nil, ErrTokenNotYetValid
		default:
			log.Debug("token validation failed", "error", err)
			return nil, ErrInvalidToken
		}
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid || claims.Subject == "" {
		log.Debug("token validation failed: invalid claims")
		return nil, ErrInvalidToken
	}

	out := &Claims{
		Username: claims.Subject,
		ID:       claims.ID,
	}
	if claims.IssuedAt != nil {
		out.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		out.ExpiresAt = claims.ExpiresAt.Time
	}

	return out, nil
}

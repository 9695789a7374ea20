package jwt

import (
	"errors"
	"strconv"
	"time"

	"shareit/internal/pkg/errs"

	"github.com/golang-jwt/jwt/v5"
)

// Issuer is stamped on every token and required on the way back in.
const Issuer = "shareit"

var (
	ErrInvalidToken = errs.New("invalid token")
	ErrExpiredToken = errs.New("token expired")
)

// Service issues and verifies HS256 tokens whose subject is the numeric user
// id. A service without a secret is disabled and verifies nothing.
type Service struct {
	secret []byte
	ttl    time.Duration
	parser *jwt.Parser
}

func NewService(secret string, ttl time.Duration) *Service {
	return &Service{
		secret: []byte(secret),
		ttl:    ttl,
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithIssuer(Issuer),
			jwt.WithExpirationRequired(),
			jwt.WithLeeway(5*time.Second),
		),
	}
}

func (s *Service) Enabled() bool {
	return len(s.secret) > 0
}

func (s *Service) GenerateToken(userID int64) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Issuer:    Issuer,
		Subject:   strconv.FormatInt(userID, 10),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// ValidateToken returns the user id carried by a valid token.
func (s *Service) ValidateToken(raw string) (int64, error) {
	if !s.Enabled() {
		return 0, ErrInvalidToken
	}

	var claims jwt.RegisteredClaims
	_, err := s.parser.ParseWithClaims(raw, &claims, func(*jwt.Token) (any, error) {
		return s.secret, nil
	})
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return 0, ErrExpiredToken
	case err != nil:
		return 0, errs.Mark(errs.Wrap(err, "parse bearer token"), ErrInvalidToken)
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil || userID <= 0 {
		return 0, ErrInvalidToken
	}
	return userID, nil
}

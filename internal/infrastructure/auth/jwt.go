package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/chamados/servicedesk/internal/shared/authorization"
	"github.com/chamados/servicedesk/internal/shared/clock"
	apperrors "github.com/chamados/servicedesk/internal/shared/errors"
)

// Claims carries the session identity. Changes to a user after login are not reflected until
// the token is reissued.
type Claims struct {
	ID   int64                  `json:"id"`
	Name string                 `json:"name"`
	Role authorization.UserRole `json:"role"`
	jwt.RegisteredClaims
}

func (c *Claims) Actor() authorization.Actor {
	return authorization.Actor{ID: c.ID, Name: c.Name, Role: c.Role}
}

type JWTService struct {
	secret []byte
	ttl    time.Duration
	clock  clock.Clock
}

func NewJWTService(secret string, ttl time.Duration, clk clock.Clock) *JWTService {
	return &JWTService{
		secret: []byte(secret),
		ttl:    ttl,
		clock:  clk,
	}
}

// Issue signs an HS256 token for the actor, valid for at least the configured TTL from now.
// NumericDate has whole-second precision, so the expiry is rounded up to the next second.
func (s *JWTService) Issue(actor authorization.Actor) (string, error) {
	now := s.clock.Now()
	claims := &Claims{
		ID:   actor.ID,
		Name: actor.Name,
		Role: actor.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(ceilSecond(now.Add(s.ttl))),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Verify returns the claims of a valid token. Expired tokens yield a token_expired AuthError,
// everything else a token_invalid one.
func (s *JWTService) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	},
		jwt.WithTimeFunc(s.clock.Now),
		jwt.WithExpirationRequired(),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)

	if errors.Is(err, jwt.ErrTokenExpired) {
		return nil, apperrors.NewTokenExpiredError()
	}
	if err != nil {
		return nil, apperrors.NewTokenInvalidError()
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || !claims.Role.IsValid() {
		return nil, apperrors.NewTokenInvalidError()
	}
	return claims, nil
}

func (s *JWTService) TTL() time.Duration {
	return s.ttl
}

func ceilSecond(t time.Time) time.Time {
	if floor := t.Truncate(time.Second); !floor.Equal(t) {
		return floor.Add(time.Second)
	}
	return t
}

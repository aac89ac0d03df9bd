package http

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"fooddelivery/internal/core/domain/model/account"
	"fooddelivery/internal/core/domain/model/kernel"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
)

const principalContextKey = "principal"

var (
	ErrTokenIsInvalid   = errors.New("token is invalid or expired")
	ErrMissingBearer    = errors.New("missing bearer token")
	ErrSecretIsRequired = errors.New("JWT secret is required")
)

// Principal is the authenticated caller resolved from a bearer token.
type Principal struct {
	AccountID kernel.UUID
	Role      account.Role
}

// TokenService issues and verifies HS256 bearer tokens carrying the account
// id and role.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenService creates a token service with the given signing secret and
// token lifetime.
func NewTokenService(secret string, ttl time.Duration) (*TokenService, error) {
	if strings.TrimSpace(secret) == "" {
		return nil, ErrSecretIsRequired
	}

	return &TokenService{secret: []byte(secret), ttl: ttl}, nil
}

// Issue signs a token for the account.
func (s *TokenService) Issue(accountID kernel.UUID, role account.Role) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  accountID.String(),
		"role": role.String(),
		"iat":  now.Unix(),
		"exp":  now.Add(s.ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Parse verifies a token string and returns the principal it carries.
func (s *TokenService) Parse(tokenStr string) (Principal, error) {
	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return Principal{}, ErrTokenIsInvalid
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return Principal{}, ErrTokenIsInvalid
	}

	sub, ok := claims["sub"].(string)
	if !ok {
		return Principal{}, ErrTokenIsInvalid
	}
	accountID, err := kernel.UUIDFromString(sub)
	if err != nil {
		return Principal{}, ErrTokenIsInvalid
	}

	roleStr, ok := claims["role"].(string)
	if !ok {
		return Principal{}, ErrTokenIsInvalid
	}
	role, err := account.RoleFromString(roleStr)
	if err != nil {
		return Principal{}, ErrTokenIsInvalid
	}

	return Principal{AccountID: accountID, Role: role}, nil
}

// Authenticate is an echo middleware that requires a valid bearer token and
// stores the resolved principal on the request context.
func (s *TokenService) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		tokenStr, err := bearerToken(ctx)
		if err != nil {
			return ctx.JSON(http.StatusUnauthorized, ErrorResponse{
				Code:    http.StatusUnauthorized,
				Message: err.Error(),
			})
		}

		principal, err := s.Parse(tokenStr)
		if err != nil {
			return ctx.JSON(http.StatusUnauthorized, ErrorResponse{
				Code:    http.StatusUnauthorized,
				Message: err.Error(),
			})
		}

		ctx.Set(principalContextKey, principal)
		return next(ctx)
	}
}

func bearerToken(ctx echo.Context) (string, error) {
	header := ctx.Request().Header.Get(echo.HeaderAuthorization)
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return "", ErrMissingBearer
	}
	return strings.TrimSpace(strings.TrimPrefix(header, prefix)), nil
}

func currentPrincipal(ctx echo.Context) (Principal, bool) {
	principal, ok := ctx.Get(principalContextKey).(Principal)
	return principal, ok
}

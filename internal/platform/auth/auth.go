// Package auth issues and verifies the signed session tokens that stand in
// for the original application's "current user" storage slot.
package auth

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

type contextKey string

const (
	AccountIDKey    contextKey = "account_id"
	AccountNameKey  contextKey = "account_name"
	AccountEmailKey contextKey = "account_email"
)

type Claims struct {
	jwt.RegisteredClaims
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Manager signs and verifies HS256 session tokens.
type Manager struct {
	secret []byte
	ttl    time.Duration
}

func NewManager(secret string, ttl time.Duration) *Manager {
	return &Manager{secret: []byte(secret), ttl: ttl}
}

// Issue returns a signed token for the given account.
func (m *Manager) Issue(accountID, name, email string) (string, error) {
	now := time.Now()
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   accountID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
		Name:  name,
		Email: email,
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
}

// Verify parses and validates a token string.
func (m *Manager) Verify(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		return m.secret, nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenUnverifiable
	}
	return claims, nil
}

// Middleware authenticates requests with a bearer token and places the
// account identity on the request context.
func (m *Manager) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization format")
			}

			claims, err := m.Verify(parts[1])
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			ctx := c.Request().Context()
			ctx = context.WithValue(ctx, AccountIDKey, claims.Subject)
			ctx = context.WithValue(ctx, AccountNameKey, claims.Name)
			ctx = context.WithValue(ctx, AccountEmailKey, claims.Email)
			c.SetRequest(c.Request().WithContext(ctx))

			return next(c)
		}
	}
}

// AccountIDFromContext returns the authenticated account id, if any.
func AccountIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(AccountIDKey).(string)
	return id
}

// NameFromContext returns the authenticated account name, if any.
func NameFromContext(ctx context.Context) string {
	name, _ := ctx.Value(AccountNameKey).(string)
	return name
}

// EmailFromContext returns the authenticated account email, if any.
func EmailFromContext(ctx context.Context) string {
	email, _ := ctx.Value(AccountEmailKey).(string)
	return email
}

package gateway

import (
	"errors"
	"net/http"
	"slices"
	"time"

	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
)

const (
	RoleStudent = "student"
	RoleAdmin   = "admin"

	DefaultTokenTTL = 24 * time.Hour

	tokenIssuer = "school-library"
	claimsKey   = "user"
)

var (
	ErrMissingSecret = errors.New("jwt secret must not be empty")

	errUnauthenticated = echo.NewHTTPError(http.StatusUnauthorized, "missing or invalid token")
	errForbidden       = echo.NewHTTPError(http.StatusForbidden, "access denied")
)

// Claims identify the account in Subject and its kind in Role.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// TokenIssuer signs HS256 tokens.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenIssuer(secret []byte, ttl time.Duration, now func() time.Time) (TokenIssuer, error) {
	if len(secret) == 0 {
		return TokenIssuer{}, ErrMissingSecret
	}

	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}

	if now == nil {
		now = time.Now
	}

	return TokenIssuer{secret: secret, ttl: ttl, now: now}, nil
}

func (i TokenIssuer) Issue(accountID, role string) (string, error) {
	now := i.now()
	claims := Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			Subject:   accountID,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
}

func (i TokenIssuer) TTL() time.Duration {
	return i.ttl
}

// authenticate verifies the token found by lookup, "header:Authorization:Bearer " or "query:token".
func (i TokenIssuer) authenticate(lookup string) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		SigningKey:    i.secret,
		SigningMethod: echojwt.AlgorithmHS256,
		ContextKey:    claimsKey,
		TokenLookup:   lookup,
		NewClaimsFunc: func(echo.Context) jwt.Claims { return new(Claims) },
		ErrorHandler: func(echo.Context, error) error {
			return errUnauthenticated
		},
	})
}

// RequireRole rejects callers whose token carries none of roles.
func RequireRole(roles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := claimsFrom(c)
			if !ok {
				return errUnauthenticated
			}

			if !slices.Contains(roles, claims.Role) {
				return errForbidden
			}

			return next(c)
		}
	}
}

func claimsFrom(c echo.Context) (*Claims, bool) {
	token, ok := c.Get(claimsKey).(*jwt.Token)
	if !ok || token == nil {
		return nil, false
	}

	claims, ok := token.Claims.(*Claims)

	return claims, ok && claims.Subject != ""
}

package http

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"autoservice/internal/core/domain/model/kernel"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
)

// Context keys set by the middleware in this file.
const (
	// UserIDContextKey holds the authenticated customer's kernel.UUID.
	UserIDContextKey = "userID"

	// VisitCountContextKey holds the visitor's landing page visit count.
	VisitCountContextKey = "visitCount"
)

const visitCookieName = "visits"

// AuthMiddleware authenticates requests with a bearer JWT. The subject claim
// carries the customer's identifier, which downstream handlers read from the
// request context.
type AuthMiddleware struct {
	secret []byte
}

// NewAuthMiddleware creates the JWT middleware with the HMAC signing secret.
func NewAuthMiddleware(secret string) *AuthMiddleware {
	return &AuthMiddleware{secret: []byte(secret)}
}

// Require rejects requests without a valid bearer token and puts the
// authenticated user ID into the echo context.
func (m *AuthMiddleware) Require() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			userID, err := m.authenticate(ctx)
			if err != nil {
				return ctx.JSON(http.StatusUnauthorized, ErrorResponse{
					Code:    http.StatusUnauthorized,
					Message: "Authentication required",
				})
			}

			ctx.Set(UserIDContextKey, userID)
			return next(ctx)
		}
	}
}

func (m *AuthMiddleware) authenticate(ctx echo.Context) (kernel.UUID, error) {
	header := ctx.Request().Header.Get(echo.HeaderAuthorization)
	rawToken, found := strings.CutPrefix(header, "Bearer ")
	if !found || rawToken == "" {
		return kernel.UUID{}, fmt.Errorf("missing bearer token")
	}

	token, err := jwt.Parse(rawToken, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return kernel.UUID{}, fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return kernel.UUID{}, fmt.Errorf("unexpected claims type")
	}

	subject, _ := claims["sub"].(string)
	if subject == "" {
		return kernel.UUID{}, fmt.Errorf("missing subject claim")
	}

	return kernel.UUIDFromString(subject)
}

// VisitCounter tracks how many times a visitor has opened the landing page,
// using a plain cookie. Best effort; a cleared cookie simply restarts the
// count.
func VisitCounter() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			visits := 0
			if cookie, err := ctx.Cookie(visitCookieName); err == nil {
				if parsed, parseErr := strconv.Atoi(cookie.Value); parseErr == nil && parsed >= 0 {
					visits = parsed
				}
			}
			visits++

			ctx.SetCookie(&http.Cookie{
				Name:     visitCookieName,
				Value:    strconv.Itoa(visits),
				Path:     "/",
				Expires:  time.Now().AddDate(1, 0, 0),
				HttpOnly: true,
			})
			ctx.Set(VisitCountContextKey, visits)

			return next(ctx)
		}
	}
}

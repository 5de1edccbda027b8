package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	"smartShop/pkg/logger"
	"smartShop/pkg/utils"

	jsonres "smartShop/pkg/response"

	"github.com/labstack/echo/v4"
)

// TokenValidator checks an issued token against the session store.
type TokenValidator interface {
	ValidateToken(ctx context.Context, token string) (string, error)
}

// AuthMiddleware basic JWT authentication without the session store
func AuthMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, tokenString, errResp := parseBearerToken(c)
			if errResp != nil {
				return errResp
			}

			c.Set("user_id", claims.UserID)
			c.Set("role", claims.Role)
			c.Set("token", tokenString)

			return next(c)
		}
	}
}

// AuthMiddlewareWithRedis JWT authentication with session-store validation
func AuthMiddlewareWithRedis(tokenValidator TokenValidator) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, tokenString, errResp := parseBearerToken(c)
			if errResp != nil {
				return errResp
			}

			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			userID, err := tokenValidator.ValidateToken(ctx, tokenString)
			if err != nil {
				logger.Error("Token not found in session store", err)
				return c.JSON(http.StatusUnauthorized, jsonres.Error(
					"UNAUTHORIZED", "Token expired or invalid", nil,
				))
			}

			if userID != claims.UserID {
				logger.Error("UserID mismatch between JWT and session store")
				return c.JSON(http.StatusUnauthorized, jsonres.Error(
					"UNAUTHORIZED", "Invalid token", nil,
				))
			}

			c.Set("user_id", claims.UserID)
			c.Set("role", claims.Role)
			c.Set("token", tokenString)

			return next(c)
		}
	}
}

func parseBearerToken(c echo.Context) (*utils.Claims, string, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return nil, "", c.JSON(http.StatusUnauthorized, jsonres.Error(
			"UNAUTHORIZED", "Missing authorization header", nil,
		))
	}

	tokenParts := strings.Split(authHeader, " ")
	if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
		return nil, "", c.JSON(http.StatusUnauthorized, jsonres.Error(
			"UNAUTHORIZED", "Invalid authorization format", nil,
		))
	}

	tokenString := tokenParts[1]

	claims, err := utils.ParseJWT(tokenString)
	if err != nil {
		return nil, "", c.JSON(http.StatusUnauthorized, jsonres.Error(
			"UNAUTHORIZED", "Invalid token", nil,
		))
	}

	expAt, err := claims.GetExpirationTime()
	if err != nil || time.Now().After(expAt.Time) {
		return nil, "", c.JSON(http.StatusForbidden, jsonres.Error(
			"FORBIDDEN", "Token expired", nil,
		))
	}

	return claims, tokenString, nil
}

func OwnerOnly() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, ok := c.Get("role").(string)
			if !ok || strings.ToLower(role) != "owner" {
				return c.JSON(http.StatusForbidden, jsonres.Error(
					"FORBIDDEN", "Owner access required", nil,
				))
			}

			return next(c)
		}
	}
}

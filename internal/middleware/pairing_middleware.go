package middleware

import (
	"context"
	"net/http"
	"time"

	jsonres "smartShop/pkg/response"

	"github.com/labstack/echo/v4"
)

// PairingVerifier checks the expiring code a paired detector device presents.
type PairingVerifier interface {
	VerifyPairing(ctx context.Context, code string) error
}

// PairedDeviceOnly guards endpoints the native detector bridge calls. Devices
// authenticate with a pairing code header instead of a user token.
func PairedDeviceOnly(verifier PairingVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			code := c.Request().Header.Get("X-Pairing-Code")
			if code == "" {
				return c.JSON(http.StatusUnauthorized, jsonres.Error(
					"UNAUTHORIZED", "Missing pairing code", nil,
				))
			}

			ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
			defer cancel()

			if err := verifier.VerifyPairing(ctx, code); err != nil {
				return c.JSON(http.StatusUnauthorized, jsonres.Error(
					"UNAUTHORIZED", err.Error(), nil,
				))
			}

			return next(c)
		}
	}
}

package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/x-xyz/royaltymarket/base/ctx"
	"github.com/x-xyz/royaltymarket/base/delivery"
	"github.com/x-xyz/royaltymarket/domain"
	"github.com/x-xyz/royaltymarket/domain/authority"
)

type AuthMiddleware struct {
	auth      domain.AuthUsecase
	authority authority.UseCase
	gate      authority.Gate
}

func New(auth domain.AuthUsecase, authority authority.UseCase, gate authority.Gate) *AuthMiddleware {
	return &AuthMiddleware{
		auth:      auth,
		authority: authority,
		gate:      gate,
	}
}

// Auth requires a bearer token and sets "address" on success
func (m *AuthMiddleware) Auth() echo.MiddlewareFunc {
	return middleware.KeyAuth(m.validateAuthToken)
}

func (m *AuthMiddleware) IsAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			address := c.Get("address").(domain.Address)
			if m.gate.IsAdmin(address) {
				return next(c)
			}
			return delivery.MakeJsonResp(c, http.StatusForbidden, "require admin privilege")
		}
	}
}

func (m *AuthMiddleware) IsManager() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Get("ctx").(ctx.Ctx)

			address := c.Get("address").(domain.Address)

			if res, err := m.authority.IsManager(ctx, address); err != nil {
				return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
			} else if !res {
				return delivery.MakeJsonResp(c, http.StatusForbidden, "require royalty manager privilege")
			} else {
				return next(c)
			}
		}
	}
}

func (m *AuthMiddleware) validateAuthToken(key string, c echo.Context) (bool, error) {
	ctx := c.Get("ctx").(ctx.Ctx)
	if ads, err := m.auth.ParseToken(ctx, key); err != nil {
		ctx.WithField("err", err).Warn("auth.ParseToken failed")
		return false, nil
	} else {
		c.Set("address", ads)
		return true, nil
	}
}

package http

import (
	"strings"

	"docflow/internal/core/domain/model/user"
	"docflow/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

const principalContextKey = "principal"

// AuthMiddleware returns an echo middleware that verifies the bearer token
// and stores the authenticated principal in the request context.
func AuthMiddleware(tokens TokenManager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			header := ctx.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" {
				return writeError(ctx, errs.NewUnauthenticatedError("missing authorization header"))
			}

			scheme, tokenString, found := strings.Cut(header, " ")
			if !found || !strings.EqualFold(scheme, "Bearer") {
				return writeError(ctx, errs.NewUnauthenticatedError("authorization header must use the Bearer scheme"))
			}

			principal, err := tokens.Parse(tokenString)
			if err != nil {
				return writeError(ctx, err)
			}

			ctx.Set(principalContextKey, principal)
			return next(ctx)
		}
	}
}

// principalFrom extracts the authenticated principal stored by AuthMiddleware.
func principalFrom(ctx echo.Context) (user.Principal, error) {
	principal, ok := ctx.Get(principalContextKey).(user.Principal)
	if !ok {
		return user.Principal{}, errs.NewUnauthenticatedError("request is not authenticated")
	}

	return principal, nil
}

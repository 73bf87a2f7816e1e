package handler

import (
	"encoding/base64"
	"net/http"
	"strings"

	"casetrack/internal/cms/metrics"
	"casetrack/internal/cms/model"
	"casetrack/internal/cms/policy"
	"casetrack/internal/cms/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// userContextKey is where the authenticated user lives in the echo context.
const userContextKey = "user"

func RequestIDMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		reqID := c.Request().Header.Get(echo.HeaderXRequestID)
		if reqID == "" {
			reqID = uuid.NewString()
		}
		c.Response().Header().Set(echo.HeaderXRequestID, reqID)
		return next(c)
	}
}

// BasicAuthMiddleware resolves the acting staff user from HTTP basic
// credentials and stores it in the request context.
func BasicAuthMiddleware(svc service.CaseService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" {
				return c.JSON(http.StatusUnauthorized, model.ErrorResponse{
					Error: model.ErrorDetail{Code: "unauthorized", Message: "Authorization header is required"},
				})
			}

			const prefix = "Basic "
			if !strings.HasPrefix(header, prefix) {
				return c.JSON(http.StatusUnauthorized, model.ErrorResponse{
					Error: model.ErrorDetail{Code: "unauthorized", Message: "only Basic authentication is supported"},
				})
			}

			decoded, err := base64.StdEncoding.DecodeString(header[len(prefix):])
			if err != nil {
				return c.JSON(http.StatusUnauthorized, model.ErrorResponse{
					Error: model.ErrorDetail{Code: "unauthorized", Message: "invalid basic auth encoding"},
				})
			}

			email, password, ok := strings.Cut(string(decoded), ":")
			if !ok {
				return c.JSON(http.StatusUnauthorized, model.ErrorResponse{
					Error: model.ErrorDetail{Code: "unauthorized", Message: "invalid basic auth credentials"},
				})
			}

			user, err := svc.Authenticate(c.Request().Context(), email, password)
			if err != nil {
				code, body := httpError(err)
				return c.JSON(code, body)
			}

			c.Set(userContextKey, user)
			return next(c)
		}
	}
}

// RoleGuard gates a route group by the role hierarchy: the named roles form a
// threshold, so every role dominating the least privileged one is allowed.
func RoleGuard(allowed ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user := currentUser(c)
			if user == nil {
				return c.JSON(http.StatusUnauthorized, model.ErrorResponse{
					Error: model.ErrorDetail{Code: "unauthorized", Message: "authentication required"},
				})
			}

			if !policy.Allowed(user.Role, allowed) {
				metrics.AuthzDenials.Inc()
				return c.JSON(http.StatusForbidden, model.ErrorResponse{
					Error: model.ErrorDetail{Code: "forbidden", Message: "access denied"},
				})
			}

			return next(c)
		}
	}
}

// currentUser returns the authenticated user, or nil outside the auth chain.
func currentUser(c echo.Context) *model.User {
	user, _ := c.Get(userContextKey).(*model.User)
	return user
}

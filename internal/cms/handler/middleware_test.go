package handler

import (
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"testing"

	"casetrack/internal/cms/model"
	"casetrack/internal/cms/service"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func basicAuthHeader(email, password string) string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(email+":"+password))
}

func performRequest(e *echo.Echo, method, target string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func okHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, model.MessageResponse{Message: "ok"})
}

func TestBasicAuthMiddleware(t *testing.T) {
	t.Run("missing authorization header returns 401", func(t *testing.T) {
		e := echo.New()
		mockSvc := new(MockCaseService)
		e.GET("/ping", okHandler, BasicAuthMiddleware(mockSvc))

		rec := performRequest(e, http.MethodGet, "/ping", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("non-basic scheme returns 401", func(t *testing.T) {
		e := echo.New()
		mockSvc := new(MockCaseService)
		e.GET("/ping", okHandler, BasicAuthMiddleware(mockSvc))

		rec := performRequest(e, http.MethodGet, "/ping", map[string]string{
			echo.HeaderAuthorization: "Bearer sometoken",
		})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("wrong password returns 401", func(t *testing.T) {
		e := echo.New()
		mockSvc := new(MockCaseService)
		mockSvc.On("Authenticate", mock.Anything, "admin@agency.gov", "wrong").
			Return(nil, service.ErrUnauthorized)
		e.GET("/ping", okHandler, BasicAuthMiddleware(mockSvc))

		rec := performRequest(e, http.MethodGet, "/ping", map[string]string{
			echo.HeaderAuthorization: basicAuthHeader("admin@agency.gov", "wrong"),
		})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("valid credentials reach the handler", func(t *testing.T) {
		e := echo.New()
		mockSvc := new(MockCaseService)
		mockSvc.On("Authenticate", mock.Anything, "admin@agency.gov", "s3cret").
			Return(&model.User{ID: 1, Email: "admin@agency.gov", Role: model.RoleAdmin}, nil)
		e.GET("/ping", okHandler, BasicAuthMiddleware(mockSvc))

		rec := performRequest(e, http.MethodGet, "/ping", map[string]string{
			echo.HeaderAuthorization: basicAuthHeader("admin@agency.gov", "s3cret"),
		})
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestRoleGuard(t *testing.T) {
	serve := func(actorRole string, allowed ...string) *httptest.ResponseRecorder {
		e := echo.New()
		setActor := func(next echo.HandlerFunc) echo.HandlerFunc {
			return func(c echo.Context) error {
				c.Set(userContextKey, &model.User{ID: 1, Role: actorRole})
				return next(c)
			}
		}
		e.GET("/guarded", okHandler, setActor, RoleGuard(allowed...))
		return performRequest(e, http.MethodGet, "/guarded", nil)
	}

	t.Run("naming officer admits every role above it", func(t *testing.T) {
		for _, role := range []string{model.RoleAdmin, model.RoleInvestigator, model.RoleOfficer} {
			rec := serve(role, model.RoleOfficer)
			assert.Equal(t, http.StatusOK, rec.Code, "role %s should pass", role)
		}
	})

	t.Run("auditor is below the officer threshold", func(t *testing.T) {
		rec := serve(model.RoleAuditor, model.RoleOfficer)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("investigator threshold keeps officers and auditors out", func(t *testing.T) {
		for _, role := range []string{model.RoleAdmin, model.RoleInvestigator} {
			rec := serve(role, model.RoleInvestigator)
			assert.Equal(t, http.StatusOK, rec.Code, "role %s should pass", role)
		}
		for _, role := range []string{model.RoleOfficer, model.RoleAuditor} {
			rec := serve(role, model.RoleInvestigator)
			assert.Equal(t, http.StatusForbidden, rec.Code, "role %s should be denied", role)
		}
	})

	t.Run("admin-only gate rejects everyone else", func(t *testing.T) {
		for _, role := range []string{model.RoleInvestigator, model.RoleOfficer, model.RoleAuditor} {
			rec := serve(role, model.RoleAdmin)
			assert.Equal(t, http.StatusForbidden, rec.Code, "role %s should be denied", role)
		}
		rec := serve(model.RoleAdmin, model.RoleAdmin)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("unknown role is denied", func(t *testing.T) {
		rec := serve("contractor", model.RoleAuditor)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("request without an authenticated user returns 401", func(t *testing.T) {
		e := echo.New()
		e.GET("/guarded", okHandler, RoleGuard(model.RoleAdmin))
		rec := performRequest(e, http.MethodGet, "/guarded", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestRequestIDMiddleware(t *testing.T) {
	t.Run("generates an id when absent", func(t *testing.T) {
		e := echo.New()
		e.GET("/ping", okHandler, RequestIDMiddleware)

		rec := performRequest(e, http.MethodGet, "/ping", nil)
		assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))
	})

	t.Run("keeps the caller-supplied id", func(t *testing.T) {
		e := echo.New()
		e.GET("/ping", okHandler, RequestIDMiddleware)

		rec := performRequest(e, http.MethodGet, "/ping", map[string]string{
			echo.HeaderXRequestID: "req-123",
		})
		assert.Equal(t, "req-123", rec.Header().Get(echo.HeaderXRequestID))
	})
}

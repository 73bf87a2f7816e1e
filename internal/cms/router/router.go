package router

import (
	"net/http"
	"time"

	"casetrack/internal/cms/handler"
	"casetrack/internal/cms/model"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"
)

func RegisterRoutes(e *echo.Echo, h *handler.Handler) {
	// Health check and metrics are open.
	e.GET("/health", handler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Citizen report intake does not require credentials.
	e.POST("/reports/submit", h.PostReport)
	e.GET("/reports/status/:reportId", h.GetReportStatus)

	// Everything else requires basic auth.
	api := e.Group("")
	api.Use(handler.RequestIDMiddleware)
	api.Use(handler.BasicAuthMiddleware(h.Service))

	// User management
	api.POST("/users", h.PostUser, handler.RoleGuard(model.RoleAdmin))
	api.PUT("/users/:userId", h.PutUser, handler.RoleGuard(model.RoleAdmin))
	api.GET("/users", h.GetUsers, handler.RoleGuard(model.RoleAdmin, model.RoleInvestigator))

	// Cases
	api.POST("/cases", h.PostCase, handler.RoleGuard(model.RoleAdmin, model.RoleInvestigator))
	api.PUT("/cases/:caseId", h.PutCase, handler.RoleGuard(model.RoleAdmin, model.RoleInvestigator))
	api.PATCH("/cases/:caseId/status", h.PatchCaseStatus, handler.RoleGuard(model.RoleOfficer))

	// Case assignment
	api.POST("/cases/:caseId/assign", h.PostAssignUser, handler.RoleGuard(model.RoleAdmin, model.RoleInvestigator))
	api.DELETE("/cases/:caseId/unassign", h.DeleteUnassignUser, handler.RoleGuard(model.RoleAdmin, model.RoleInvestigator))

	// Evidence
	api.GET("/cases/:caseId/evidence", h.GetCaseEvidence, handler.RoleGuard(model.RoleOfficer))
	api.POST("/cases/:caseId/evidence", h.PostCaseEvidence, handler.RoleGuard(model.RoleOfficer))
	api.GET("/cases/evidence/:evidenceId", h.GetEvidence, handler.RoleGuard(model.RoleOfficer))
	api.PATCH("/cases/evidence/:evidenceId/update", h.PatchEvidence, handler.RoleGuard(model.RoleOfficer))
	api.PATCH("/cases/evidence/:evidenceId/soft-delete", h.PatchEvidenceSoftDelete, handler.RoleGuard(model.RoleOfficer))

	// Irreversible hard-delete workflow, admin only.
	api.POST("/cases/evidence/:evidenceId/initiate-hard-delete", h.PostInitiateDeletion, handler.RoleGuard(model.RoleAdmin))
	api.POST("/cases/evidence/:evidenceId/confirm-hard-delete", h.PostConfirmDeletion, handler.RoleGuard(model.RoleAdmin))
	api.DELETE("/cases/evidence/:evidenceId", h.DeleteEvidenceHard, handler.RoleGuard(model.RoleAdmin))
	api.GET("/cases/evidence/:evidenceId/deletion-progress", h.GetDeletionProgress, handler.RoleGuard(model.RoleAdmin))

	// Audit logs
	api.GET("/cases/:caseId/audit-logs", h.GetCaseAuditLogs, handler.RoleGuard(model.RoleAdmin, model.RoleInvestigator))

	// Persons of interest
	api.GET("/cases/:caseId/persons", h.GetCasePersons, handler.RoleGuard(model.RoleOfficer))
	api.POST("/cases/:caseId/persons", h.PostCasePerson, handler.RoleGuard(model.RoleOfficer))
	api.PUT("/cases/persons/:personId", h.PutPerson, handler.RoleGuard(model.RoleInvestigator))

	// Case comments. Posting is limited to 5 per minute per user; officers
	// cannot delete comments.
	api.POST("/cases/:caseId/comments", h.PostCaseComment,
		handler.RoleGuard(model.RoleOfficer),
		commentRateLimiter())
	api.GET("/cases/:caseId/comments", h.GetCaseComments, handler.RoleGuard(model.RoleOfficer))
	api.DELETE("/cases/:caseId/comments/:commentId", h.DeleteCaseComment, handler.RoleGuard(model.RoleInvestigator))
}

// commentRateLimiter throttles comment creation per authenticated user.
func commentRateLimiter() echo.MiddlewareFunc {
	return middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
		Store: middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
			Rate:      rate.Limit(5.0 / 60.0),
			Burst:     5,
			ExpiresIn: 3 * time.Minute,
		}),
		IdentifierExtractor: func(c echo.Context) (string, error) {
			if u, ok := c.Get("user").(*model.User); ok {
				return u.Email, nil
			}
			return c.RealIP(), nil
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			return c.JSON(http.StatusTooManyRequests, model.ErrorResponse{
				Error: model.ErrorDetail{Code: "rate_limited", Message: "too many comments, slow down"},
			})
		},
	})
}

package handler

import (
	"net/http"

	"casetrack/internal/cms/model"

	"github.com/labstack/echo/v4"
)

// PostCase handles POST /cases
func (h *Handler) PostCase(c echo.Context) error {
	actor := currentUser(c)

	var req model.CreateCaseReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error: model.ErrorDetail{Code: "bad_request", Message: "Invalid body"},
		})
	}
	if err := req.Validate(); err != nil {
		return c.JSON(http.StatusBadRequest, validationError(err))
	}

	created, err := h.Service.CreateCase(c.Request().Context(), actor.ID, req)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	return c.JSON(http.StatusCreated, created)
}

// PutCase handles PUT /cases/:caseId
func (h *Handler) PutCase(c echo.Context) error {
	caseID, err := pathID(c, "caseId")
	if err != nil {
		return badPathParam(c, err)
	}

	var req model.UpdateCaseReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error: model.ErrorDetail{Code: "bad_request", Message: "Invalid body"},
		})
	}
	if err := req.Validate(); err != nil {
		return c.JSON(http.StatusBadRequest, validationError(err))
	}

	updated, err := h.Service.UpdateCase(c.Request().Context(), caseID, req)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	return c.JSON(http.StatusOK, updated)
}

// PatchCaseStatus handles PATCH /cases/:caseId/status
func (h *Handler) PatchCaseStatus(c echo.Context) error {
	actor := currentUser(c)

	caseID, err := pathID(c, "caseId")
	if err != nil {
		return badPathParam(c, err)
	}

	var req model.UpdateCaseStatusReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error: model.ErrorDetail{Code: "bad_request", Message: "Invalid body"},
		})
	}
	if err := req.Validate(); err != nil {
		return c.JSON(http.StatusBadRequest, validationError(err))
	}

	if err := h.Service.UpdateCaseStatus(c.Request().Context(), actor, caseID, req); err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	return c.JSON(http.StatusOK, model.MessageResponse{Message: "Case status updated successfully."})
}

// GetCaseAuditLogs handles GET /cases/:caseId/audit-logs
func (h *Handler) GetCaseAuditLogs(c echo.Context) error {
	caseID, err := pathID(c, "caseId")
	if err != nil {
		return badPathParam(c, err)
	}

	logs, err := h.Service.ListCaseAuditLogs(c.Request().Context(), caseID)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	return c.JSON(http.StatusOK, logs)
}

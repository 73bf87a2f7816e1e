package handler

import (
	"net/http"

	"casetrack/internal/cms/model"

	"github.com/labstack/echo/v4"
)

// GetCaseEvidence handles GET /cases/:caseId/evidence
func (h *Handler) GetCaseEvidence(c echo.Context) error {
	actor := currentUser(c)

	caseID, err := pathID(c, "caseId")
	if err != nil {
		return badPathParam(c, err)
	}

	evidence, err := h.Service.ListCaseEvidence(c.Request().Context(), actor, caseID)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	return c.JSON(http.StatusOK, evidence)
}

// PostCaseEvidence handles POST /cases/:caseId/evidence
func (h *Handler) PostCaseEvidence(c echo.Context) error {
	actor := currentUser(c)

	caseID, err := pathID(c, "caseId")
	if err != nil {
		return badPathParam(c, err)
	}

	var req model.CreateEvidenceReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error: model.ErrorDetail{Code: "bad_request", Message: "Invalid body"},
		})
	}
	if err := req.Validate(); err != nil {
		return c.JSON(http.StatusBadRequest, validationError(err))
	}

	created, err := h.Service.CreateEvidence(c.Request().Context(), actor, caseID, req)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	return c.JSON(http.StatusCreated, created)
}

// GetEvidence handles GET /cases/evidence/:evidenceId
func (h *Handler) GetEvidence(c echo.Context) error {
	actor := currentUser(c)

	evidenceID, err := pathID(c, "evidenceId")
	if err != nil {
		return badPathParam(c, err)
	}

	evidence, err := h.Service.GetEvidence(c.Request().Context(), actor, evidenceID)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	return c.JSON(http.StatusOK, evidence)
}

// PatchEvidence handles PATCH /cases/evidence/:evidenceId/update
func (h *Handler) PatchEvidence(c echo.Context) error {
	actor := currentUser(c)

	evidenceID, err := pathID(c, "evidenceId")
	if err != nil {
		return badPathParam(c, err)
	}

	var req model.UpdateEvidenceReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error: model.ErrorDetail{Code: "bad_request", Message: "Invalid body"},
		})
	}
	if err := req.Validate(); err != nil {
		return c.JSON(http.StatusBadRequest, validationError(err))
	}

	updated, err := h.Service.UpdateEvidence(c.Request().Context(), actor, evidenceID, req)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":  "Evidence updated successfully.",
		"evidence": updated,
	})
}

// PatchEvidenceSoftDelete handles PATCH /cases/evidence/:evidenceId/soft-delete
func (h *Handler) PatchEvidenceSoftDelete(c echo.Context) error {
	actor := currentUser(c)

	evidenceID, err := pathID(c, "evidenceId")
	if err != nil {
		return badPathParam(c, err)
	}

	deleted, err := h.Service.SoftDeleteEvidence(c.Request().Context(), actor, evidenceID)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":  "Evidence soft-deleted successfully.",
		"evidence": deleted,
	})
}

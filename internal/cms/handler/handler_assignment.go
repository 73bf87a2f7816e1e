package handler

import (
	"net/http"

	"casetrack/internal/cms/model"

	"github.com/labstack/echo/v4"
)

// PostAssignUser handles POST /cases/:caseId/assign
func (h *Handler) PostAssignUser(c echo.Context) error {
	caseID, err := pathID(c, "caseId")
	if err != nil {
		return badPathParam(c, err)
	}

	var req model.AssignUserReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error: model.ErrorDetail{Code: "bad_request", Message: "Invalid body"},
		})
	}
	if err := req.Validate(); err != nil {
		return c.JSON(http.StatusBadRequest, validationError(err))
	}

	if err := h.Service.AssignUser(c.Request().Context(), caseID, req.UserID); err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	return c.JSON(http.StatusCreated, model.MessageResponse{Message: "User assigned to case successfully"})
}

// DeleteUnassignUser handles DELETE /cases/:caseId/unassign
func (h *Handler) DeleteUnassignUser(c echo.Context) error {
	caseID, err := pathID(c, "caseId")
	if err != nil {
		return badPathParam(c, err)
	}

	var req model.AssignUserReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error: model.ErrorDetail{Code: "bad_request", Message: "Invalid body"},
		})
	}
	if err := req.Validate(); err != nil {
		return c.JSON(http.StatusBadRequest, validationError(err))
	}

	if err := h.Service.UnassignUser(c.Request().Context(), caseID, req.UserID); err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	return c.JSON(http.StatusOK, model.MessageResponse{Message: "User unassigned from case successfully"})
}

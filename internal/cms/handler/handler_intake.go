package handler

import (
	"net/http"
	"strings"

	"casetrack/internal/cms/model"

	"github.com/labstack/echo/v4"
)

// PostReport handles POST /reports/submit (public)
func (h *Handler) PostReport(c echo.Context) error {
	var req model.CreateReportReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error: model.ErrorDetail{Code: "bad_request", Message: "Invalid body"},
		})
	}
	if err := req.Validate(); err != nil {
		return c.JSON(http.StatusBadRequest, validationError(err))
	}

	reportID, err := h.Service.SubmitReport(c.Request().Context(), req)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	return c.JSON(http.StatusCreated, map[string]int64{"report_id": reportID})
}

// GetReportStatus handles GET /reports/status/:reportId (public)
func (h *Handler) GetReportStatus(c echo.Context) error {
	reportID, err := pathID(c, "reportId")
	if err != nil {
		return badPathParam(c, err)
	}

	report, err := h.Service.GetReport(c.Request().Context(), reportID)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	if report.CaseID == nil {
		return c.JSON(http.StatusOK, model.MessageResponse{
			Message: "A case has not yet been created in response to this report",
		})
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":  "A case has been opened in response to this report",
		"case_id": *report.CaseID,
	})
}

// GetCasePersons handles GET /cases/:caseId/persons
func (h *Handler) GetCasePersons(c echo.Context) error {
	actor := currentUser(c)

	caseID, err := pathID(c, "caseId")
	if err != nil {
		return badPathParam(c, err)
	}

	personType := strings.ToLower(strings.TrimSpace(c.QueryParam("type")))
	if personType != "" && !model.AllowedPersonTypes[personType] {
		return c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error: model.ErrorDetail{Code: "bad_request", Message: "type must be one of [suspect, victim, witness]"},
		})
	}

	persons, err := h.Service.ListCasePersons(c.Request().Context(), actor, caseID, personType)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	return c.JSON(http.StatusOK, persons)
}

// PostCasePerson handles POST /cases/:caseId/persons
func (h *Handler) PostCasePerson(c echo.Context) error {
	actor := currentUser(c)

	caseID, err := pathID(c, "caseId")
	if err != nil {
		return badPathParam(c, err)
	}

	var req model.CreatePersonReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error: model.ErrorDetail{Code: "bad_request", Message: "Invalid body"},
		})
	}
	if err := req.Validate(); err != nil {
		return c.JSON(http.StatusBadRequest, validationError(err))
	}

	person, err := h.Service.CreatePerson(c.Request().Context(), actor, caseID, req)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	return c.JSON(http.StatusCreated, person)
}

// PutPerson handles PUT /cases/persons/:personId
func (h *Handler) PutPerson(c echo.Context) error {
	personID, err := pathID(c, "personId")
	if err != nil {
		return badPathParam(c, err)
	}

	var req model.UpdatePersonReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error: model.ErrorDetail{Code: "bad_request", Message: "Invalid body"},
		})
	}
	if err := req.Validate(); err != nil {
		return c.JSON(http.StatusBadRequest, validationError(err))
	}

	person, err := h.Service.UpdatePerson(c.Request().Context(), personID, req)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	return c.JSON(http.StatusOK, person)
}

// PostCaseComment handles POST /cases/:caseId/comments
func (h *Handler) PostCaseComment(c echo.Context) error {
	actor := currentUser(c)

	caseID, err := pathID(c, "caseId")
	if err != nil {
		return badPathParam(c, err)
	}

	var req model.CreateCommentReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error: model.ErrorDetail{Code: "bad_request", Message: "Invalid body"},
		})
	}
	if err := req.Validate(); err != nil {
		return c.JSON(http.StatusBadRequest, validationError(err))
	}

	comment, err := h.Service.CreateComment(c.Request().Context(), actor, caseID, req)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	return c.JSON(http.StatusCreated, comment)
}

// GetCaseComments handles GET /cases/:caseId/comments
func (h *Handler) GetCaseComments(c echo.Context) error {
	actor := currentUser(c)

	caseID, err := pathID(c, "caseId")
	if err != nil {
		return badPathParam(c, err)
	}

	comments, err := h.Service.ListCaseComments(c.Request().Context(), actor, caseID)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	return c.JSON(http.StatusOK, comments)
}

// DeleteCaseComment handles DELETE /cases/:caseId/comments/:commentId
func (h *Handler) DeleteCaseComment(c echo.Context) error {
	caseID, err := pathID(c, "caseId")
	if err != nil {
		return badPathParam(c, err)
	}
	commentID, err := pathID(c, "commentId")
	if err != nil {
		return badPathParam(c, err)
	}

	if err := h.Service.DeleteComment(c.Request().Context(), caseID, commentID); err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	return c.JSON(http.StatusOK, model.MessageResponse{Message: "Comment deleted successfully."})
}

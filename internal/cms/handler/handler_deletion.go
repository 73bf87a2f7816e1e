package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"casetrack/internal/cms/model"

	"github.com/labstack/echo/v4"
)

// PostInitiateDeletion handles POST /cases/evidence/:evidenceId/initiate-hard-delete
func (h *Handler) PostInitiateDeletion(c echo.Context) error {
	actor := currentUser(c)

	evidenceID, err := pathID(c, "evidenceId")
	if err != nil {
		return badPathParam(c, err)
	}

	msg, err := h.Service.InitiateDeletion(c.Request().Context(), evidenceID, actor.ID)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	return c.JSON(http.StatusOK, model.MessageResponse{Message: msg})
}

// PostConfirmDeletion handles POST /cases/evidence/:evidenceId/confirm-hard-delete.
// The affirmation travels in the "query" query parameter; anything but the
// literal "yes" (including its absence) cancels the request.
func (h *Handler) PostConfirmDeletion(c echo.Context) error {
	actor := currentUser(c)

	evidenceID, err := pathID(c, "evidenceId")
	if err != nil {
		return badPathParam(c, err)
	}

	token := c.QueryParam("query")

	msg, err := h.Service.ConfirmDeletion(c.Request().Context(), evidenceID, actor.ID, token)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	return c.JSON(http.StatusOK, model.MessageResponse{Message: msg})
}

// DeleteEvidenceHard handles DELETE /cases/evidence/:evidenceId
func (h *Handler) DeleteEvidenceHard(c echo.Context) error {
	actor := currentUser(c)

	evidenceID, err := pathID(c, "evidenceId")
	if err != nil {
		return badPathParam(c, err)
	}

	msg, err := h.Service.FinalizeDeletion(c.Request().Context(), evidenceID, actor.ID)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	return c.JSON(http.StatusOK, model.MessageResponse{Message: msg})
}

// GetDeletionProgress handles GET /cases/evidence/:evidenceId/deletion-progress.
// It long-polls the status projection, bound to the caller's connection: a
// disconnect cancels the request context and stops the polling loop.
func (h *Handler) GetDeletionProgress(c echo.Context) error {
	evidenceID, err := pathID(c, "evidenceId")
	if err != nil {
		return badPathParam(c, err)
	}

	status, err := h.Service.PollDeletionStatus(c.Request().Context(), evidenceID, h.PollInterval, h.PollTimeout)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			// Caller went away; nothing to deliver.
			return nil
		}
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	httpStatus := http.StatusOK
	if status.Status == model.DeletionObservedFailed {
		httpStatus = http.StatusInternalServerError
	}
	return c.JSON(httpStatus, status)
}

// Long-poll defaults, used when the config does not override them.
const (
	DefaultPollInterval = time.Second
	DefaultPollTimeout  = 30 * time.Second
)

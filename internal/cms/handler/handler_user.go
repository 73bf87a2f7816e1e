package handler

import (
	"net/http"

	"casetrack/internal/cms/model"

	"github.com/labstack/echo/v4"
)

// PostUser handles POST /users
func (h *Handler) PostUser(c echo.Context) error {
	var req model.CreateUserReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error: model.ErrorDetail{Code: "bad_request", Message: "Invalid body"},
		})
	}
	if err := req.Validate(); err != nil {
		return c.JSON(http.StatusBadRequest, validationError(err))
	}

	user, err := h.Service.CreateUser(c.Request().Context(), req)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	return c.JSON(http.StatusCreated, user)
}

// PutUser handles PUT /users/:userId
func (h *Handler) PutUser(c echo.Context) error {
	userID, err := pathID(c, "userId")
	if err != nil {
		return badPathParam(c, err)
	}

	var req model.UpdateUserReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error: model.ErrorDetail{Code: "bad_request", Message: "Invalid body"},
		})
	}
	if err := req.Validate(); err != nil {
		return c.JSON(http.StatusBadRequest, validationError(err))
	}

	user, err := h.Service.UpdateUser(c.Request().Context(), userID, req)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	return c.JSON(http.StatusOK, user)
}

// GetUsers handles GET /users
func (h *Handler) GetUsers(c echo.Context) error {
	users, err := h.Service.ListUsers(c.Request().Context())
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}
	return c.JSON(http.StatusOK, users)
}

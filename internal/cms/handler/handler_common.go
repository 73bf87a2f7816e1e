package handler

import (
	"net/http"
	"strconv"
	"time"

	"casetrack/internal/cms/model"
	"casetrack/internal/cms/service"

	"github.com/labstack/echo/v4"
)

type Handler struct {
	Service service.CaseService

	// Long-poll settings for the deletion-progress endpoint.
	PollInterval time.Duration
	PollTimeout  time.Duration
}

func NewHandler(s service.CaseService) *Handler {
	return &Handler{
		Service:      s,
		PollInterval: DefaultPollInterval,
		PollTimeout:  DefaultPollTimeout,
	}
}

func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// pathID parses a positive numeric path parameter.
func pathID(c echo.Context, name string) (int64, error) {
	raw := c.Param(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, &model.ErrorDetail{Code: "bad_request", Message: "invalid " + name + " parameter"}
	}
	return id, nil
}

func badPathParam(c echo.Context, err error) error {
	return c.JSON(http.StatusBadRequest, validationError(err))
}

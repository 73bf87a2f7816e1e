package handler

import (
	"errors"
	"net/http"
	"strings"

	"casetrack/internal/cms/model"
	"casetrack/internal/cms/service"
	"casetrack/internal/cms/util"
)

// httpError maps service errors to HTTP status and body. The wrapped message
// is surfaced for client-addressable failures; internal errors are logged
// with their full context and returned generically.
func httpError(err error) (int, interface{}) {
	var code string
	var status int
	msg := err.Error()

	switch {
	case errors.Is(err, service.ErrUnauthorized):
		status = http.StatusUnauthorized
		code = "unauthorized"
		msg = trimSentinel(msg, service.ErrUnauthorized)
	case errors.Is(err, service.ErrForbidden):
		status = http.StatusForbidden
		code = "forbidden"
		msg = trimSentinel(msg, service.ErrForbidden)
	case errors.Is(err, service.ErrNotFound):
		status = http.StatusNotFound
		code = "not_found"
		msg = trimSentinel(msg, service.ErrNotFound)
	case errors.Is(err, service.ErrConflict):
		status = http.StatusConflict
		code = "conflict"
		msg = trimSentinel(msg, service.ErrConflict)
	case errors.Is(err, service.ErrBadRequest):
		status = http.StatusBadRequest
		code = "bad_request"
		msg = trimSentinel(msg, service.ErrBadRequest)
	default:
		util.GetLogger().Error("request failed", "error", err)
		status = http.StatusInternalServerError
		code = "internal_error"
		msg = "failed to process request"
	}

	return status, model.ErrorResponse{
		Error: model.ErrorDetail{Code: code, Message: msg},
	}
}

// trimSentinel drops the sentinel prefix from a wrapped error message so the
// client sees "assignment not found" rather than "not found: assignment not
// found".
func trimSentinel(msg string, sentinel error) string {
	return strings.TrimPrefix(msg, sentinel.Error()+": ")
}

// validationError wraps a request Validate() failure into the error body.
func validationError(err error) interface{} {
	var detail *model.ErrorDetail
	if errors.As(err, &detail) {
		return model.ErrorResponse{Error: *detail}
	}
	return model.ErrorResponse{
		Error: model.ErrorDetail{Code: "bad_request", Message: err.Error()},
	}
}

package model

import "strings"

// UpdateCaseReq carries a partial case update, optionally linking reports.
type UpdateCaseReq struct {
	CaseName    string  `json:"case_name" validate:"omitempty,min=1,max=200"`
	Description string  `json:"description" validate:"omitempty,min=1"`
	Area        string  `json:"area" validate:"omitempty,min=1,max=100"`
	City        string  `json:"city" validate:"omitempty,min=1,max=100"`
	Type        string  `json:"type" validate:"omitempty,min=1,max=100"`
	Clearance   string  `json:"clearance" validate:"omitempty"`
	Status      string  `json:"status" validate:"omitempty"`
	ReportIDs   []int64 `json:"report_ids" validate:"omitempty,dive,gt=0"`
}

func (r *UpdateCaseReq) Validate() error {
	r.CaseName = strings.TrimSpace(r.CaseName)
	r.Description = strings.TrimSpace(r.Description)
	r.Area = strings.TrimSpace(r.Area)
	r.City = strings.TrimSpace(r.City)
	r.Type = strings.ToLower(strings.TrimSpace(r.Type))
	r.Clearance = strings.ToLower(strings.TrimSpace(r.Clearance))
	r.Status = strings.ToLower(strings.TrimSpace(r.Status))

	if err := GetValidator().Struct(r); err != nil {
		return FormatValidationError(err)
	}

	if r.Clearance != "" && !AllowedClearances[r.Clearance] {
		return &ErrorDetail{Code: "bad_request", Message: "invalid clearance: must be one of [low, medium, high, critical]"}
	}
	if r.Status != "" && !AllowedCaseStatuses[r.Status] {
		return &ErrorDetail{Code: "bad_request", Message: "invalid status: must be one of [pending, ongoing, closed]"}
	}

	return nil
}

// HasCaseFields reports whether the update touches the case row itself, as
// opposed to only linking reports.
func (r *UpdateCaseReq) HasCaseFields() bool {
	return r.CaseName != "" || r.Description != "" || r.Area != "" ||
		r.City != "" || r.Type != "" || r.Clearance != "" || r.Status != ""
}

// UpdateCaseStatusReq carries the status-only patch.
type UpdateCaseStatusReq struct {
	Status string `json:"status" validate:"required"`
}

func (r *UpdateCaseStatusReq) Validate() error {
	r.Status = strings.ToLower(strings.TrimSpace(r.Status))

	if err := GetValidator().Struct(r); err != nil {
		return FormatValidationError(err)
	}

	if !AllowedCaseStatuses[r.Status] {
		return &ErrorDetail{Code: "bad_request", Message: "invalid status: allowed values are [pending, ongoing, closed]"}
	}

	return nil
}

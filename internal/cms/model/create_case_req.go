package model

import "strings"

type CreateCaseReq struct {
	CaseName    string  `json:"case_name" validate:"required,min=1,max=200"`
	Description string  `json:"description" validate:"required,min=1"`
	Area        string  `json:"area" validate:"required,min=1,max=100"`
	City        string  `json:"city" validate:"required,min=1,max=100"`
	Type        string  `json:"type" validate:"required,min=1,max=100"`
	Clearance   string  `json:"clearance" validate:"omitempty"`
	Status      string  `json:"status" validate:"omitempty"`
	ReportIDs   []int64 `json:"report_ids" validate:"omitempty,dive,gt=0"`
}

func (r *CreateCaseReq) Validate() error {
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

	// New cases default to the most restrictive clearance.
	if r.Clearance == "" {
		r.Clearance = ClearanceCritical
	}
	if !AllowedClearances[r.Clearance] {
		return &ErrorDetail{Code: "bad_request", Message: "invalid clearance: must be one of [low, medium, high, critical]"}
	}

	if r.Status == "" {
		r.Status = CaseStatusPending
	}
	if !AllowedCaseStatuses[r.Status] {
		return &ErrorDetail{Code: "bad_request", Message: "invalid status: must be one of [pending, ongoing, closed]"}
	}

	return nil
}

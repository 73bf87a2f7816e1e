package model

import "strings"

// UpdateUserReq carries a partial user update. Empty fields are left alone.
type UpdateUserReq struct {
	Email     string `json:"email" validate:"omitempty,email"`
	Password  string `json:"password" validate:"omitempty,min=6"`
	Name      string `json:"name" validate:"omitempty,min=1,max=100"`
	Role      string `json:"role" validate:"omitempty"`
	Clearance string `json:"clearance" validate:"omitempty"`
}

func (r *UpdateUserReq) Validate() error {
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.Name = strings.TrimSpace(r.Name)
	r.Role = strings.ToLower(strings.TrimSpace(r.Role))
	r.Clearance = strings.ToLower(strings.TrimSpace(r.Clearance))

	if err := GetValidator().Struct(r); err != nil {
		return FormatValidationError(err)
	}

	if r.Role != "" && !AllowedRoles[r.Role] {
		return &ErrorDetail{Code: "bad_request", Message: "invalid role: must be one of [admin, investigator, officer, auditor]"}
	}
	if r.Clearance != "" && !AllowedClearances[r.Clearance] {
		return &ErrorDetail{Code: "bad_request", Message: "invalid clearance: must be one of [low, medium, high, critical]"}
	}

	if r.Email == "" && r.Password == "" && r.Name == "" && r.Role == "" && r.Clearance == "" {
		return &ErrorDetail{Code: "bad_request", Message: "no fields to update"}
	}

	return nil
}

package model

import "strings"

type CreateUserReq struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=6"`
	Name      string `json:"name" validate:"required,min=1,max=100"`
	Role      string `json:"role" validate:"required"`
	Clearance string `json:"clearance" validate:"omitempty"`
}

func (r *CreateUserReq) Validate() error {
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.Name = strings.TrimSpace(r.Name)
	r.Role = strings.ToLower(strings.TrimSpace(r.Role))
	r.Clearance = strings.ToLower(strings.TrimSpace(r.Clearance))

	if err := GetValidator().Struct(r); err != nil {
		return FormatValidationError(err)
	}

	if !AllowedRoles[r.Role] {
		return &ErrorDetail{Code: "bad_request", Message: "invalid role: must be one of [admin, investigator, officer, auditor]"}
	}

	// Clearance is an officer attribute only.
	if r.Role == RoleOfficer {
		if !AllowedClearances[r.Clearance] {
			return &ErrorDetail{Code: "bad_request", Message: "officers require a clearance: one of [low, medium, high, critical]"}
		}
	} else if r.Clearance != "" {
		return &ErrorDetail{Code: "bad_request", Message: "clearance may only be set for officers"}
	}

	return nil
}

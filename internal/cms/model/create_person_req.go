package model

import "strings"

type CreatePersonReq struct {
	Type   string `json:"type" validate:"required"`
	Name   string `json:"name" validate:"required,min=1,max=100"`
	Age    int    `json:"age" validate:"gte=0,lte=150"`
	Gender string `json:"gender" validate:"required"`
	Role   string `json:"role" validate:"required,min=1,max=100"`
}

func (r *CreatePersonReq) Validate() error {
	r.Type = strings.ToLower(strings.TrimSpace(r.Type))
	r.Name = strings.TrimSpace(r.Name)
	r.Gender = strings.ToLower(strings.TrimSpace(r.Gender))
	r.Role = strings.TrimSpace(r.Role)

	if err := GetValidator().Struct(r); err != nil {
		return FormatValidationError(err)
	}

	if !AllowedPersonTypes[r.Type] {
		return &ErrorDetail{Code: "bad_request", Message: "type must be one of [suspect, victim, witness]"}
	}
	if r.Gender != "male" && r.Gender != "female" && r.Gender != "other" {
		return &ErrorDetail{Code: "bad_request", Message: "gender must be one of [male, female, other]"}
	}

	return nil
}

// UpdatePersonReq is a partial person update.
type UpdatePersonReq struct {
	Type   string `json:"type" validate:"omitempty"`
	Name   string `json:"name" validate:"omitempty,min=1,max=100"`
	Age    *int   `json:"age" validate:"omitempty,gte=0,lte=150"`
	Gender string `json:"gender" validate:"omitempty"`
	Role   string `json:"role" validate:"omitempty,min=1,max=100"`
}

func (r *UpdatePersonReq) Validate() error {
	r.Type = strings.ToLower(strings.TrimSpace(r.Type))
	r.Name = strings.TrimSpace(r.Name)
	r.Gender = strings.ToLower(strings.TrimSpace(r.Gender))
	r.Role = strings.TrimSpace(r.Role)

	if err := GetValidator().Struct(r); err != nil {
		return FormatValidationError(err)
	}

	if r.Type != "" && !AllowedPersonTypes[r.Type] {
		return &ErrorDetail{Code: "bad_request", Message: "type must be one of [suspect, victim, witness]"}
	}
	if r.Gender != "" && r.Gender != "male" && r.Gender != "female" && r.Gender != "other" {
		return &ErrorDetail{Code: "bad_request", Message: "gender must be one of [male, female, other]"}
	}
	if r.Type == "" && r.Name == "" && r.Age == nil && r.Gender == "" && r.Role == "" {
		return &ErrorDetail{Code: "bad_request", Message: "no fields to update"}
	}

	return nil
}

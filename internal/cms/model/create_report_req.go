package model

import "strings"

// CreateReportReq is the public citizen crime-report submission.
type CreateReportReq struct {
	Email       string `json:"email" validate:"required,email"`
	CivilID     string `json:"civil_id" validate:"required,min=1,max=50"`
	Name        string `json:"name" validate:"required,min=1,max=100"`
	Description string `json:"description" validate:"required,min=1"`
	Area        string `json:"area" validate:"required,min=1,max=100"`
	City        string `json:"city" validate:"required,min=1,max=100"`
}

func (r *CreateReportReq) Validate() error {
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.CivilID = strings.TrimSpace(r.CivilID)
	r.Name = strings.TrimSpace(r.Name)
	r.Description = strings.TrimSpace(r.Description)
	r.Area = strings.TrimSpace(r.Area)
	r.City = strings.TrimSpace(r.City)

	if err := GetValidator().Struct(r); err != nil {
		return FormatValidationError(err)
	}
	return nil
}

package model

import (
	"regexp"
	"strings"
)

// base64ImagePattern matches a data-URI encoded image payload.
var base64ImagePattern = regexp.MustCompile(`^data:image/(jpeg|png|gif|bmp|webp);base64,`)

type CreateEvidenceReq struct {
	Type    string `json:"type" validate:"required"`
	Content string `json:"content" validate:"required,min=1"`
	Remarks string `json:"remarks" validate:"omitempty,max=500"`
}

func (r *CreateEvidenceReq) Validate() error {
	r.Type = strings.ToLower(strings.TrimSpace(r.Type))
	r.Remarks = strings.TrimSpace(r.Remarks)

	if err := GetValidator().Struct(r); err != nil {
		return FormatValidationError(err)
	}

	switch r.Type {
	case EvidenceTypeImage:
		if !base64ImagePattern.MatchString(r.Content) {
			return &ErrorDetail{Code: "bad_request", Message: "invalid content: must be a Base64-encoded image data URI"}
		}
	case EvidenceTypeText:
		// No further constraints on text payloads.
	default:
		return &ErrorDetail{Code: "bad_request", Message: "evidence type must be either 'text' or 'image'"}
	}

	return nil
}

// UpdateEvidenceReq updates content and/or remarks of existing evidence.
type UpdateEvidenceReq struct {
	Content string `json:"content" validate:"omitempty,min=1"`
	Remarks string `json:"remarks" validate:"omitempty,max=500"`
}

func (r *UpdateEvidenceReq) Validate() error {
	r.Remarks = strings.TrimSpace(r.Remarks)

	if err := GetValidator().Struct(r); err != nil {
		return FormatValidationError(err)
	}

	if r.Content == "" && r.Remarks == "" {
		return &ErrorDetail{Code: "bad_request", Message: "at least one of 'content' or 'remarks' must be provided"}
	}

	return nil
}

package model

import (
	"regexp"
	"strings"
)

var (
	commentCharsPattern = regexp.MustCompile(`^[a-zA-Z0-9\s.,!?'"()-]+$`)
	htmlTagPattern      = regexp.MustCompile(`(?i)</?[a-z][\s\S]*>`)
)

type CreateCommentReq struct {
	Content string `json:"content" validate:"required,min=5,max=150"`
}

func (r *CreateCommentReq) Validate() error {
	r.Content = strings.TrimSpace(r.Content)

	if err := GetValidator().Struct(r); err != nil {
		return FormatValidationError(err)
	}

	if !commentCharsPattern.MatchString(r.Content) {
		return &ErrorDetail{Code: "bad_request", Message: "comment contains invalid characters: use only letters, numbers and basic punctuation"}
	}
	if htmlTagPattern.MatchString(r.Content) {
		return &ErrorDetail{Code: "bad_request", Message: "HTML tags are not allowed in comments"}
	}

	return nil
}

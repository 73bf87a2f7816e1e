package model

type AssignUserReq struct {
	UserID int64 `json:"user_id" validate:"required,gt=0"`
}

func (r *AssignUserReq) Validate() error {
	if err := GetValidator().Struct(r); err != nil {
		return FormatValidationError(err)
	}
	return nil
}

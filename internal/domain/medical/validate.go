package medical

import "github.com/ScriptedSpythoN/demoos/internal/pkg/validator"

func (r *ReviewRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.RequestID) {
		errs = append(errs, validator.ValidationError{
			Field:   "request_id",
			Message: "request id is required",
		})
	}
	if !validator.IsInSlice(r.Action, []string{"APPROVED", "REJECTED"}) {
		errs = append(errs, validator.ValidationError{
			Field:   "action",
			Message: "action must be APPROVED or REJECTED",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

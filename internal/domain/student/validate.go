package student

import "github.com/ScriptedSpythoN/demoos/internal/pkg/validator"

func (r *CreateStudentRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidRollNo(r.RollNo) {
		errs = append(errs, validator.ValidationError{
			Field:   "roll_no",
			Message: "roll number must be 4 to 16 letters and digits",
		})
	}
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if validator.IsEmpty(r.DepartmentID) {
		errs = append(errs, validator.ValidationError{
			Field:   "department_id",
			Message: "department id is required",
		})
	}
	if r.Semester < 1 || r.Semester > 8 {
		errs = append(errs, validator.ValidationError{
			Field:   "semester",
			Message: "semester must be between 1 and 8",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

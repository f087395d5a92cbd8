package subject

import "github.com/ScriptedSpythoN/demoos/internal/pkg/validator"

func (r *CreateSubjectRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Code) {
		errs = append(errs, validator.ValidationError{
			Field:   "code",
			Message: "subject code is required",
		})
	}
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "subject name is required",
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
	if validator.IsEmpty(r.FacultyID) {
		errs = append(errs, validator.ValidationError{
			Field:   "faculty_id",
			Message: "faculty id is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

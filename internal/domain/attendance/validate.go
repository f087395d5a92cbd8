package attendance

import "github.com/ScriptedSpythoN/demoos/internal/pkg/validator"

func (r *RollListRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.SubjectID) {
		errs = append(errs, validator.ValidationError{
			Field:   "subject_id",
			Message: "subject id is required",
		})
	}
	if validator.IsEmpty(r.FacultyID) {
		errs = append(errs, validator.ValidationError{
			Field:   "faculty_id",
			Message: "faculty id is required",
		})
	}
	if _, ok := validator.IsValidDate(r.SessionDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "session_date",
			Message: "session date must be in YYYY-MM-DD format",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func (r *SubmitRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.SessionID) {
		errs = append(errs, validator.ValidationError{
			Field:   "session_id",
			Message: "session id is required",
		})
	}
	if len(r.Entries) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "entries",
			Message: "at least one entry is required",
		})
	}
	for _, entry := range r.Entries {
		if !entry.Status.Valid() {
			errs = append(errs, validator.ValidationError{
				Field:   "entries",
				Message: "status must be PRESENT, ABSENT or MEDICAL_LEAVE",
			})
			break
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

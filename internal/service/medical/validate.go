package medical

import "time"

// SemesterBounds derives the semester window from the declared from-date's
// year: January 1 through June 30.
func SemesterBounds(from time.Time) (time.Time, time.Time) {
	start := time.Date(from.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(from.Year(), time.June, 30, 0, 0, 0, 0, time.UTC)
	return start, end
}

// ValidateDates decides whether the dates mined from the document support
// the declared leave interval. Either extracted date missing means
// rejection; otherwise the extracted interval must equal the declared one
// exactly, with no tolerance window.
//
// semesterStart and semesterEnd are accepted for interface parity but do
// not currently participate in the decision.
func ValidateDates(declaredFrom, declaredTo time.Time, extractedFrom, extractedTo *time.Time, semesterStart, semesterEnd time.Time) bool {
	if extractedFrom == nil || extractedTo == nil {
		return false
	}
	return sameDay(declaredFrom, *extractedFrom) && sameDay(declaredTo, *extractedTo)
}

// sameDay compares calendar dates, ignoring clock time and location.
func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

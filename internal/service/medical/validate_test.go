package medical

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestValidateDates(t *testing.T) {
	day := func(y int, m time.Month, d int) time.Time {
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	}
	declaredFrom := day(2024, time.March, 12)
	declaredTo := day(2024, time.March, 15)
	semStart, semEnd := SemesterBounds(declaredFrom)

	tests := []struct {
		name          string
		extractedFrom *time.Time
		extractedTo   *time.Time
		want          bool
	}{
		{
			name:          "exact match",
			extractedFrom: ptr(declaredFrom),
			extractedTo:   ptr(declaredTo),
			want:          true,
		},
		{
			name:          "match despite clock time difference",
			extractedFrom: ptr(time.Date(2024, time.March, 12, 9, 30, 0, 0, time.UTC)),
			extractedTo:   ptr(time.Date(2024, time.March, 15, 17, 0, 0, 0, time.UTC)),
			want:          true,
		},
		{
			name: "both missing",
		},
		{
			name:          "to missing",
			extractedFrom: ptr(declaredFrom),
		},
		{
			name:        "from missing",
			extractedTo: ptr(declaredTo),
		},
		{
			name:          "from off by one day",
			extractedFrom: ptr(day(2024, time.March, 11)),
			extractedTo:   ptr(declaredTo),
		},
		{
			name:          "to off by one day",
			extractedFrom: ptr(declaredFrom),
			extractedTo:   ptr(day(2024, time.March, 16)),
		},
		{
			name:          "interval swapped",
			extractedFrom: ptr(declaredTo),
			extractedTo:   ptr(declaredFrom),
		},
		{
			name:          "subset interval rejected",
			extractedFrom: ptr(day(2024, time.March, 13)),
			extractedTo:   ptr(day(2024, time.March, 14)),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ValidateDates(declaredFrom, declaredTo, tt.extractedFrom, tt.extractedTo, semStart, semEnd)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSemesterBounds(t *testing.T) {
	start, end := SemesterBounds(time.Date(2024, time.March, 12, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2024, time.June, 30, 0, 0, 0, 0, time.UTC), end)
}

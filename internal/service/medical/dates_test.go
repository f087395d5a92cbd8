package medical

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractDates(t *testing.T) {
	day := func(y int, m time.Month, d int) time.Time {
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	}

	tests := []struct {
		name     string
		text     string
		wantFrom *time.Time
		wantTo   *time.Time
	}{
		{
			name:     "slash separated pair",
			text:     "Rest advised from 12/03/2024 to 15/03/2024.",
			wantFrom: ptr(day(2024, time.March, 12)),
			wantTo:   ptr(day(2024, time.March, 15)),
		},
		{
			name:     "dash separated pair",
			text:     "Period: 12-03-2024 until 15-03-2024",
			wantFrom: ptr(day(2024, time.March, 12)),
			wantTo:   ptr(day(2024, time.March, 15)),
		},
		{
			name:     "mixed separators",
			text:     "From 1-2-2024 through 3/2/2024",
			wantFrom: ptr(day(2024, time.February, 1)),
			wantTo:   ptr(day(2024, time.February, 3)),
		},
		{
			name:     "first two of many",
			text:     "Issued 01/03/2024. Valid 02/03/2024. Review 09/03/2024.",
			wantFrom: ptr(day(2024, time.March, 1)),
			wantTo:   ptr(day(2024, time.March, 2)),
		},
		{
			name: "single date only",
			text: "Seen on 12/03/2024, bed rest advised.",
		},
		{
			name: "no dates",
			text: "Patient advised one week of bed rest.",
		},
		{
			name: "empty text",
			text: "",
		},
		{
			name: "two digit year fails to parse",
			text: "From 12/03/24 to 15/03/24",
		},
		{
			name: "impossible calendar date",
			text: "From 32/03/2024 to 15/03/2024",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			from, to := ExtractDates(tt.text)
			if tt.wantFrom == nil {
				assert.Nil(t, from)
				assert.Nil(t, to)
				return
			}
			require.NotNil(t, from)
			require.NotNil(t, to)
			assert.True(t, tt.wantFrom.Equal(*from), "from: want %v got %v", tt.wantFrom, from)
			assert.True(t, tt.wantTo.Equal(*to), "to: want %v got %v", tt.wantTo, to)
		})
	}
}

func TestExtractDatesOutOfOrderPassedThrough(t *testing.T) {
	from, to := ExtractDates("Valid 15/03/2024 back to 12/03/2024")
	require.NotNil(t, from)
	require.NotNil(t, to)
	// Ordering is the validator's concern, not the miner's.
	assert.True(t, to.Before(*from))
}

func ptr(t time.Time) *time.Time { return &t }

package medical

import (
	"regexp"
	"strings"
	"time"
)

// datePattern matches day/month/year shaped substrings: 1-2 digit day,
// 1-2 digit month, 2-4 digit year, separated by / or -.
var datePattern = regexp.MustCompile(`\d{1,2}[-/]\d{1,2}[-/]\d{2,4}`)

// dateLayout requires a 4-digit year, so 2-digit-year matches fail the
// parse below and the whole extraction returns nothing.
const dateLayout = "2/1/2006"

// ExtractDates scans text for the first two date-shaped substrings in
// document order and parses them as day/month/year. It returns (nil, nil)
// when fewer than two matches are found or either fails to parse as a
// calendar date.
//
// Out-of-order or identical dates are returned as-is; judging the
// interval is the validator's job, not the miner's.
func ExtractDates(text string) (*time.Time, *time.Time) {
	matches := datePattern.FindAllString(text, 2)
	if len(matches) < 2 {
		return nil, nil
	}

	first, err := parseMinedDate(matches[0])
	if err != nil {
		return nil, nil
	}
	second, err := parseMinedDate(matches[1])
	if err != nil {
		return nil, nil
	}

	return &first, &second
}

func parseMinedDate(match string) (time.Time, error) {
	normalized := strings.ReplaceAll(match, "-", "/")
	return time.Parse(dateLayout, normalized)
}

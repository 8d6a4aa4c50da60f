package services

import (
	"regexp"
	"strconv"
	"strings"
)

var fitPercentagePattern = regexp.MustCompile(`(?i)(fit percentage|alignment):\s*(\d{1,3})%`)

// ExtractFitPercentage recovers the fit percentage from an alignment
// completion, best effort. The completion is split on blank lines; only the
// first section mentioning "fit percentage" is inspected. A failed match or
// an out-of-range value yields nil rather than a clamped number, and nil is
// a valid outcome, not an error: the surrounding report is still rendered.
func ExtractFitPercentage(completion string) *int {
	sections := strings.Split(completion, "\n\n")
	for _, section := range sections {
		if !strings.Contains(strings.ToLower(section), "fit percentage") {
			continue
		}
		match := fitPercentagePattern.FindStringSubmatch(section)
		if match == nil {
			return nil
		}
		percentage, err := strconv.Atoi(match[2])
		if err != nil || percentage < 0 || percentage > 100 {
			return nil
		}
		return &percentage
	}
	return nil
}

package usecase

import (
	"regexp"
	"strconv"
	"strings"
)

var salaryNumber = regexp.MustCompile(`\d+(?:\.\d+)?`)

type SalaryRange struct {
	Min float64
	Max float64
}

// ParseSalaryRange extracts every number from free-text salary such as
// "$15-18/hour" or "$45,000 - $55,000/year". ok is false when the text holds
// no number at all.
func ParseSalaryRange(text string) (r SalaryRange, ok bool) {
	matches := salaryNumber.FindAllString(strings.ReplaceAll(text, ",", ""), -1)
	for _, m := range matches {
		v, err := strconv.ParseFloat(m, 64)
		if err != nil {
			continue
		}
		if !ok {
			r = SalaryRange{Min: v, Max: v}
			ok = true
			continue
		}
		if v < r.Min {
			r.Min = v
		}
		if v > r.Max {
			r.Max = v
		}
	}
	return r, ok
}

// SalaryBounds is the optional min_salary/max_salary pair of a listing
// request. Both bounds are compared against the top of the job's range.
type SalaryBounds struct {
	Min *float64
	Max *float64
}

func (b SalaryBounds) Active() bool {
	return b.Min != nil || b.Max != nil
}

// Admits reports whether a job with the given salary text passes the bounds.
// Empty salary never passes active bounds; text without numbers always does.
func (b SalaryBounds) Admits(salary *string) bool {
	if !b.Active() {
		return true
	}
	if salary == nil || *salary == "" {
		return false
	}

	r, ok := ParseSalaryRange(*salary)
	if !ok {
		return true
	}
	if b.Min != nil && r.Max < *b.Min {
		return false
	}
	if b.Max != nil && r.Max > *b.Max {
		return false
	}
	return true
}

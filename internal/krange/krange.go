// Package krange parses the user supplied k specification and expands it
// into the concrete sequence of neighbor counts to evaluate.
//
// The grammar accepts a fixed value "3", an inclusive range "3-10" and a
// range with an explicit step "2-10,3". The upper bound is clamped to the
// number of available records when the sequence is produced, so the same
// parsed value can be reused against datasets of different sizes.
package krange

import (
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrMalformedLow  = fmt.Errorf("failed to parse low value for k range")
	ErrMalformedHigh = fmt.Errorf("failed to parse high value for k range")
	ErrMalformedStep = fmt.Errorf("failed to parse step size for k value")
	ErrZeroLow       = fmt.Errorf("low value for k range cannot be 0")
	ErrZeroK         = fmt.Errorf("k value cannot be 0")
	ErrZeroStep      = fmt.Errorf("step size must be larger than 0")
	ErrLowAboveHigh  = fmt.Errorf("low value for k range cannot be greater than the high value")
	ErrStepNoRange   = fmt.Errorf("you must specify a range when using a step size")
	ErrInvalid       = fmt.Errorf("invalid k value specified")
)

// Range is an immutable half-open interval [low, high) traversed with a
// positive step. A fixed k is stored as [k, k+1) with step 1.
type Range struct {
	low  int
	high int
	step int
}

func Parse(given string) (Range, error) {
	if rangePart, stepPart, ok := strings.Cut(given, ","); ok {
		step, err := strconv.Atoi(stepPart)
		if err != nil {
			return Range{}, ErrMalformedStep
		}
		if step <= 0 {
			return Range{}, ErrZeroStep
		}
		low, high, ok, err := parseRange(rangePart)
		if err != nil {
			return Range{}, err
		}
		if !ok {
			return Range{}, ErrStepNoRange
		}
		return Range{low: low, high: high, step: step}, nil
	}

	if low, high, ok, err := parseRange(given); err != nil {
		return Range{}, err
	} else if ok {
		return Range{low: low, high: high, step: 1}, nil
	}

	value, err := strconv.Atoi(given)
	if err != nil {
		return Range{}, ErrInvalid
	}
	if value <= 0 {
		return Range{}, ErrZeroK
	}
	return Range{low: value, high: value + 1, step: 1}, nil
}

// parseRange recognizes "<low>-<high>". The inclusive high bound is stored
// as exclusive high+1. The third result reports whether the input contained
// a range separator at all.
func parseRange(given string) (int, int, bool, error) {
	lowPart, highPart, ok := strings.Cut(given, "-")
	if !ok {
		return 0, 0, false, nil
	}
	low, err := strconv.Atoi(lowPart)
	if err != nil {
		return 0, 0, false, ErrMalformedLow
	}
	high, err := strconv.Atoi(highPart)
	if err != nil {
		return 0, 0, false, ErrMalformedHigh
	}
	if low <= 0 {
		return 0, 0, false, ErrZeroLow
	}
	if low > high {
		return 0, 0, false, ErrLowAboveHigh
	}
	return low, high + 1, true, nil
}

// Values expands the range into the ascending k sequence, clamping the
// exclusive upper bound to the number of available records.
func (r Range) Values(total int) []int {
	high := r.high
	if total < high {
		high = total
	}
	var values []int
	for k := r.low; k < high; k += r.step {
		values = append(values, k)
	}
	return values
}

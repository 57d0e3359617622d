package krange

import (
	"errors"
	"reflect"
	"testing"
)

func TestParse_Values(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		given    string
		total    int
		expected []int
	}{
		{name: "fixed", given: "3", total: 100, expected: []int{3}},
		{name: "range", given: "3-5", total: 100, expected: []int{3, 4, 5}},
		{name: "range_step", given: "2-10,3", total: 100, expected: []int{2, 5, 8}},
		{name: "clamped", given: "5-10", total: 7, expected: []int{5, 6}},
		{name: "fixed_clamped_out", given: "5", total: 3, expected: nil},
		{name: "single_point_range", given: "4-4", total: 100, expected: []int{4}},
		{name: "empty_dataset", given: "1-3", total: 0, expected: nil},
	}
	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			r, err := Parse(test.given)
			if err != nil {
				t.Fatalf("parse %q, the error should not be returned: %v", test.given, err)
			}
			got := r.Values(test.total)
			if !reflect.DeepEqual(got, test.expected) {
				t.Errorf("values for %q with total %d, got: %v, expected: %v",
					test.given, test.total, got, test.expected)
			}
		})
	}
}

func TestParse_Errors(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name        string
		given       string
		expectedErr error
	}{
		{name: "zero_k", given: "0", expectedErr: ErrZeroK},
		{name: "zero_low", given: "0-5", expectedErr: ErrZeroLow},
		{name: "low_above_high", given: "5-2", expectedErr: ErrLowAboveHigh},
		{name: "zero_step", given: "1-5,0", expectedErr: ErrZeroStep},
		{name: "step_without_range", given: "5,2", expectedErr: ErrStepNoRange},
		{name: "malformed_low", given: "x-5", expectedErr: ErrMalformedLow},
		{name: "malformed_high", given: "1-y", expectedErr: ErrMalformedHigh},
		{name: "malformed_step", given: "1-5,z", expectedErr: ErrMalformedStep},
		{name: "garbage", given: "abc", expectedErr: ErrInvalid},
		{name: "negative", given: "-3", expectedErr: ErrMalformedLow},
	}
	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			_, err := Parse(test.given)
			if !errors.Is(err, test.expectedErr) {
				t.Errorf("parse %q, got: %v, expected: %v", test.given, err, test.expectedErr)
			}
		})
	}
}

func TestRange_Reevaluate(t *testing.T) {
	t.Parallel()
	r, err := Parse("3-10")
	if err != nil {
		t.Fatalf("the error should not be returned: %v", err)
	}
	if got := r.Values(100); !reflect.DeepEqual(got, []int{3, 4, 5, 6, 7, 8, 9, 10}) {
		t.Errorf("unexpected sequence for total 100: %v", got)
	}
	// the same parsed range is legal to evaluate against another total
	if got := r.Values(5); !reflect.DeepEqual(got, []int{3, 4}) {
		t.Errorf("unexpected sequence for total 5: %v", got)
	}
}

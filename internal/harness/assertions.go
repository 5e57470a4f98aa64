package harness

import (
	"fmt"
	"sort"
	"strings"
)

// AssertionError is returned when an assertion fails.
// It includes enough context to debug the failure without rerunning.
type AssertionError struct {
	Type     string // Assertion type for categorization
	Expected string // Human-readable expected outcome
	Actual   string // Human-readable actual outcome
}

// Error implements the error interface.
func (e *AssertionError) Error() string {
	var buf strings.Builder
	fmt.Fprintf(&buf, "Assertion failed: %s\n", e.Type)
	fmt.Fprintf(&buf, "  Expected: %s\n", e.Expected)
	fmt.Fprintf(&buf, "  Actual: %s", e.Actual)
	return buf.String()
}

// EvaluateAssertions evaluates all assertions against the result.
// Returns a slice of error messages for failed assertions.
func EvaluateAssertions(result *Result, assertions []Assertion) []string {
	var errs []string

	for i, assertion := range assertions {
		var err error

		switch assertion.Type {
		case AssertOutputContains:
			err = assertContains("output_contains", result.Transcript, assertion.Text)
		case AssertLogContains:
			err = assertContains("log_contains", result.Log, assertion.Text)
		case AssertOutputOrder:
			err = assertOutputOrder(result.Transcript, assertion)
		case AssertRecordCount:
			err = assertRecordCount(result, assertion)
		case AssertFinalState:
			err = assertFinalState(result, assertion)
		case AssertRecordAbsent:
			err = assertRecordAbsent(result, assertion)
		default:
			err = fmt.Errorf("assertion[%d]: unknown assertion type %q", i, assertion.Type)
		}

		if err != nil {
			errs = append(errs, err.Error())
		}
	}

	return errs
}

func assertContains(kind, haystack, text string) error {
	if strings.Contains(haystack, text) {
		return nil
	}
	return &AssertionError{
		Type:     kind,
		Expected: fmt.Sprintf("text %q", text),
		Actual:   "not found",
	}
}

// assertOutputOrder checks that texts appear in order. They need not be
// adjacent; each search starts after the previous match.
func assertOutputOrder(transcript string, assertion Assertion) error {
	offset := 0
	for i, text := range assertion.Texts {
		idx := strings.Index(transcript[offset:], text)
		if idx < 0 {
			return &AssertionError{
				Type:     "output_order",
				Expected: fmt.Sprintf("%q in order", assertion.Texts),
				Actual:   fmt.Sprintf("%q (position %d) not found after previous match", text, i),
			}
		}
		offset += idx + len(text)
	}
	return nil
}

func assertRecordCount(result *Result, assertion Assertion) error {
	if len(result.Records) == assertion.Count {
		return nil
	}
	return &AssertionError{
		Type:     "record_count",
		Expected: fmt.Sprintf("%d records", assertion.Count),
		Actual:   fmt.Sprintf("%d records", len(result.Records)),
	}
}

func assertFinalState(result *Result, assertion Assertion) error {
	rec, ok := result.find(assertion.ID)
	if !ok {
		return &AssertionError{
			Type:     "final_state",
			Expected: fmt.Sprintf("record %s", assertion.ID),
			Actual:   "no such record",
		}
	}

	actual := map[string]string{
		"name":     rec.Name,
		"salary":   rec.Salary,
		"describe": rec.Describe,
	}

	keys := make([]string, 0, len(assertion.Expect))
	for k := range assertion.Expect {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var mismatches []string
	for _, k := range keys {
		want := assertion.Expect[k]
		got, known := actual[k]
		if !known {
			mismatches = append(mismatches, fmt.Sprintf("%s: unknown key", k))
			continue
		}
		if got != want {
			mismatches = append(mismatches, fmt.Sprintf("%s: want %q, got %q", k, want, got))
		}
	}
	if len(mismatches) == 0 {
		return nil
	}
	return &AssertionError{
		Type:     "final_state",
		Expected: fmt.Sprintf("record %s matches %v", assertion.ID, assertion.Expect),
		Actual:   strings.Join(mismatches, "; "),
	}
}

func assertRecordAbsent(result *Result, assertion Assertion) error {
	if _, ok := result.find(assertion.ID); !ok {
		return nil
	}
	return &AssertionError{
		Type:     "record_absent",
		Expected: fmt.Sprintf("no record %s", assertion.ID),
		Actual:   "record present",
	}
}

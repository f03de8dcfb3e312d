package testutils

import (
	"fmt"
	"strings"
	"testing"
	"text/tabwriter"
)

// TestCase represents a single unit test scenario.
type TestCase struct {
	Name     string
	Input    string
	Expected string
	Actual   string
	Pass     bool
}

// PrintTestTable logs a formatted table of comparison results.
// Failing rows are marked with > and < and fail the test.
func PrintTestTable(t *testing.T, cases []TestCase) {
	t.Helper()

	var sb strings.Builder
	w := tabwriter.NewWriter(&sb, 0, 0, 3, ' ', 0)
	fmt.Fprintf(w, "  Input\tExpected Value\tReturned Value\t\n")

	anyFailed := false
	for _, tc := range cases {
		leftPtr, rightPtr := " ", " "
		if !tc.Pass {
			anyFailed = true
			leftPtr, rightPtr = ">", "<"
		}
		fmt.Fprintf(w, "%s %q\t%q\t%q\t%s\n", leftPtr, tc.Input, tc.Expected, tc.Actual, rightPtr)
	}
	w.Flush()

	if anyFailed {
		t.Errorf("comparison failures:\n%s", sb.String())
		return
	}
	t.Log("\n" + sb.String())
}

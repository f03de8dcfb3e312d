package console

import (
	"kytos-utils/internal/testutils"
	"testing"
)

func TestStrip(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Hello World", "Hello World"},
		{"{{_NApp_}}kytos/of_core{{|-|}}", "kytos/of_core"},
		{"{{_Unknown_}}text", "text"},
		{"{{|red|}}red{{|-|}} plain", "red plain"},
		{CodeGreen + "green" + CodeReset, "green"},
		{"{{_File_}}/etc/kytos{{|-|}} and {{_Var_}}enabled_path{{|-|}}", "/etc/kytos and enabled_path"},
	}

	var cases []testutils.TestCase
	for _, tt := range tests {
		actual := Strip(tt.input)
		cases = append(cases, testutils.TestCase{
			Input:    tt.input,
			Expected: tt.expected,
			Actual:   actual,
			Pass:     actual == tt.expected,
		})
	}

	testutils.PrintTestTable(t, cases)
}

func TestToANSI(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"plain", "plain"},
		{"{{_NApp_}}a/b{{|-|}}", CodeCyan + "a/b" + CodeReset},
		{"{{|red|}}x", CodeRed + "x"},
		{"{{_Nope_}}x{{|nope|}}", "x"},
	}

	var cases []testutils.TestCase
	for _, tt := range tests {
		actual := ToANSI(tt.input)
		cases = append(cases, testutils.TestCase{
			Input:    tt.input,
			Expected: tt.expected,
			Actual:   actual,
			Pass:     actual == tt.expected,
		})
	}

	testutils.PrintTestTable(t, cases)
}

func TestParseWithoutTTYStrips(t *testing.T) {
	old := SetTTY(false)
	defer SetTTY(old)

	if got := Parse("{{_NApp_}}a/b{{|-|}}"); got != "a/b" {
		t.Errorf("Parse() = %q; want %q", got, "a/b")
	}
}
